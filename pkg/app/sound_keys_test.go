package app

import (
	"math"
	"os"
	"testing"

	"github.com/gonewx/carnival/pkg/game"
	"github.com/quasilyte/gdata/v2"
)

func newTestSettings(t *testing.T) *game.SettingsManager {
	t.Helper()
	sm, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	return sm
}

func TestApplySoundKeys(t *testing.T) {
	tests := []struct {
		name        string
		presses     []soundKeys
		wantEnabled bool
		wantVolume  float64
		wantChanged bool // 最后一次按键是否改变了设置
	}{
		{"no keys", []soundKeys{{}}, true, 0.8, false},
		{"mute", []soundKeys{{Toggle: true}}, false, 0.8, true},
		{"mute then unmute", []soundKeys{{Toggle: true}, {Toggle: true}}, true, 0.8, true},
		{"volume up", []soundKeys{{VolumeUp: true}}, true, 0.9, true},
		{"volume up clamps at 1", []soundKeys{{VolumeUp: true}, {VolumeUp: true}, {VolumeUp: true}}, true, 1.0, false},
		{"volume down", []soundKeys{{VolumeDown: true}, {VolumeDown: true}}, true, 0.6, true},
		{"both volume keys cancel", []soundKeys{{VolumeUp: true, VolumeDown: true}}, true, 0.8, false},
		{"mute and volume together", []soundKeys{{Toggle: true, VolumeDown: true}}, false, 0.7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := newTestSettings(t)

			changed := false
			for _, keys := range tt.presses {
				changed = applySoundKeys(sm, keys)
			}

			settings := sm.GetSettings()
			if settings.SoundEnabled != tt.wantEnabled {
				t.Errorf("SoundEnabled = %v, want %v", settings.SoundEnabled, tt.wantEnabled)
			}
			if math.Abs(settings.SoundVolume-tt.wantVolume) > 1e-9 {
				t.Errorf("SoundVolume = %v, want %v", settings.SoundVolume, tt.wantVolume)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

// TestApplySoundKeysRepeatedStepsStayRounded 多次调节后音量不累积浮点误差
func TestApplySoundKeysRepeatedStepsStayRounded(t *testing.T) {
	sm := newTestSettings(t)

	for i := 0; i < 8; i++ {
		applySoundKeys(sm, soundKeys{VolumeDown: true})
	}
	if got := sm.GetSettings().SoundVolume; got != 0 {
		t.Errorf("SoundVolume after 8 steps down = %v, want 0", got)
	}

	for i := 0; i < 3; i++ {
		applySoundKeys(sm, soundKeys{VolumeUp: true})
	}
	if got := sm.GetSettings().SoundVolume; got != 0.3 {
		t.Errorf("SoundVolume after 3 steps up = %v, want 0.3", got)
	}
}

// TestApplySoundKeysPersists 快捷键修改的设置立即写入 gdata
func TestApplySoundKeysPersists(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: "carnival_test_sound_keys",
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}

	sm1, err := game.NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	applySoundKeys(sm1, soundKeys{Toggle: true, VolumeUp: true})

	// 不调用 Save，直接重新加载
	sm2, err := game.NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	settings := sm2.GetSettings()
	if settings.SoundEnabled {
		t.Error("SoundEnabled after reload = true, want false")
	}
	if settings.SoundVolume != 0.9 {
		t.Errorf("SoundVolume after reload = %v, want 0.9", settings.SoundVolume)
	}
}
