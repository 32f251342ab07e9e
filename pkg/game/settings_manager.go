package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName 是 gdata 存储使用的应用名（决定用户数据目录）
const AppName = "glmenu"

// MenuSettings 菜单程序的用户偏好
type MenuSettings struct {
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *MenuSettings {
	return &MenuSettings{
		Fullscreen: false,
	}
}

// SettingsManager 设置管理器
// 负责用户偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *MenuSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "menu"
)

// OpenSettingsStorage 打开 gdata 存储
// 失败时返回 nil 和错误，调用方可以继续以降级模式运行
func OpenSettingsStorage() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings storage: %w", err)
	}
	return m, nil
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，会记录日志并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[Settings] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Persistent 返回设置是否会被持久化
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded MenuSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[Settings] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[Settings] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *MenuSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}
