package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效资源ID
const (
	SoundHit   = "SOUND_HIT"   // 命中船/鸭/靶
	SoundBomb  = "SOUND_BOMB"  // 命中炸弹
	SoundStart = "SOUND_START" // 回合开始
	SoundOver  = "SOUND_OVER"  // 回合结束
)

// AudioSampleRate 音频采样率
const AudioSampleRate = 48000

// soundDuration 合成音效时长（秒）
const soundDuration = 0.15

// SoundPlayer 播放音效的最小接口
// 系统只依赖此接口，测试时可传 nil 或记录调用的替身
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 从 SettingsManager 读取音量和开关
//   - 音效按配置中的音高即时合成，不依赖音频文件
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	tones           map[string]float64       // 音效ID -> 音高（Hz）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 全局音频上下文（可为 nil，此时所有播放调用均为空操作）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - tones: 音效ID -> 音高（Hz）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, tones map[string]float64) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		tones:           tones,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil {
		if !am.settingsManager.GetSettings().SoundEnabled {
			return false
		}
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// PreloadSounds 预先合成所有配置的音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds() {
	for soundID := range am.tones {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	if am.audioContext == nil {
		return nil
	}

	freq, ok := am.tones[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	pcm := SynthesizeTone(AudioSampleRate, freq, soundDuration)
	player := am.audioContext.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

// SynthesizeTone 合成一段线性衰减的正弦波
// 输出为 16 位有符号小端、双声道 PCM（ebiten audio 的默认格式）
func SynthesizeTone(sampleRate int, freq, duration float64) []byte {
	samples := int(float64(sampleRate) * duration)
	if samples <= 0 || freq <= 0 {
		return []byte{}
	}

	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		envelope := 1.0 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * envelope * 0.5
		sample := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}
