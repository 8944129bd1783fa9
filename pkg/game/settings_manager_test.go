package game

import (
	"testing"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("Degraded mode SoundVolume: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}

	// 降级模式下保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	manager := openTestGdata(t, "carnival_test_settings")

	sm1, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetSoundVolume(0.5)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.SoundVolume != 0.5 {
		t.Errorf("SoundVolume after reload: got %v, want 0.5", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("SoundEnabled after reload: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Fullscreen after reload: got false, want true")
	}
}

// TestSetSoundVolumeClamp 测试音量限制
func TestSetSoundVolumeClamp(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.3, 0.3},
		{1.0, 1.0},
		{1.7, 1.0},
	}

	sm, _ := NewSettingsManager(nil)
	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if got := sm.GetSettings().SoundVolume; got != tt.want {
			t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestToggleSound(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if sm.ToggleSound() {
		t.Error("First toggle should disable sound")
	}
	if !sm.ToggleSound() {
		t.Error("Second toggle should enable sound")
	}
}
