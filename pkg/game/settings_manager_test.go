package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 使用临时 HOME 创建 gdata manager
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.Persistent() {
		t.Error("Persistent() should be false without gdata")
	}
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if !sm.GetSettings().Fullscreen {
		t.Error("in-memory Fullscreen should be true after SetFullscreen(true)")
	}

	// 降级模式下 Load 会重置为默认值
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode error: %v", err)
	}
	if sm.GetSettings().Fullscreen {
		t.Error("Load() in degraded mode should reset to defaults")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestStorage(t, "test_glmenu_settings")

	sm1 := NewSettingsManager(gdataManager)
	if !sm1.Persistent() {
		t.Error("Persistent() should be true with gdata")
	}
	if sm1.GetSettings().Fullscreen {
		t.Error("fresh storage should start with defaults")
	}

	sm1.SetFullscreen(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	if !sm2.GetSettings().Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadCorrupt 测试存储数据损坏时回退到默认设置
func TestSettingsLoadCorrupt(t *testing.T) {
	gdataManager := openTestStorage(t, "test_glmenu_settings_corrupt")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if sm.GetSettings().Fullscreen {
		t.Error("corrupt data should fall back to defaults")
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report unmarshal error for corrupt data")
	}
}
