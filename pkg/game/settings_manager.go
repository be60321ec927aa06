package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings 演示程序的查看偏好
// 注意：只保存宿主的显示偏好,固定视角大小控制器本身不持久化任何状态
type ViewerSettings struct {
	// 显示设置
	ShowHUD    bool `yaml:"showHud"`    // 是否显示状态面板
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏

	// 视点运动
	DollyEnabled    bool    `yaml:"dollyEnabled"`    // 启动时视点是否自动往返
	DollySpeedScale float64 `yaml:"dollySpeedScale"` // 视点速度倍率 0.1 ~ 4.0
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ViewerSettings {
	return &ViewerSettings{
		ShowHUD:         true,
		Fullscreen:      false,
		DollyEnabled:    true,
		DollySpeedScale: 1.0,
	}
}

// 速度倍率范围
const (
	MinDollySpeedScale = 0.1
	MaxDollySpeedScale = 4.0
)

// SettingsManager 设置管理器
// 负责查看偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ViewerSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// OpenStorage 打开 gdata 存储
//
// 打开失败时返回 nil 并记录日志,调用方进入降级模式（仅内存设置）
func OpenStorage(appName string) *gdata.Manager {
	if err := ensureStorageDir(appName); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方,加载失败不会返回错误
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
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

	// 缺失字段保持默认值
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.DollySpeedScale = clampSpeedScale(loaded.DollySpeedScale)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
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

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ViewerSettings {
	return sm.settings
}

// SetShowHUD 设置状态面板开关
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetShowHUD(show bool) {
	sm.settings.ShowHUD = show
}

// SetFullscreen 设置全屏模式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetDollyEnabled 设置视点自动往返开关
func (sm *SettingsManager) SetDollyEnabled(enabled bool) {
	sm.settings.DollyEnabled = enabled
}

// SetDollySpeedScale 设置视点速度倍率
//
// 倍率会被限制在 MinDollySpeedScale ~ MaxDollySpeedScale 范围内
func (sm *SettingsManager) SetDollySpeedScale(scale float64) {
	sm.settings.DollySpeedScale = clampSpeedScale(scale)
}

// clampSpeedScale 将速度倍率限制在允许范围内
func clampSpeedScale(scale float64) float64 {
	if scale < MinDollySpeedScale {
		return MinDollySpeedScale
	}
	if scale > MaxDollySpeedScale {
		return MaxDollySpeedScale
	}
	return scale
}
