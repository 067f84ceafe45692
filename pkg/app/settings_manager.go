package app

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ExporterSettings 导出器的持久化用户设置
type ExporterSettings struct {
	ExportDir   string `yaml:"exportDir"`   // 最近一次成功导出的目录
	LastLibrary string `yaml:"lastLibrary"` // 最近一次使用的效果库文件
	LastEffect  string `yaml:"lastEffect"`  // 最近一次导出的效果名
}

// SettingsManager 设置管理器
// 负责导出器设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     ExporterSettings
}

// 存储路径常量
const (
	settingsObject   = "exporter"
	settingsProperty = "settings"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不影响创建，只记录警告并使用空设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// OpenSettingsManager 打开应用的 gdata 存储并创建设置管理器
// 存储不可用时退化为仅内存模式
func OpenSettingsManager(appName string) *SettingsManager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: Settings storage unavailable: %v (settings will not persist)", err)
		return NewSettingsManager(nil)
	}
	return NewSettingsManager(m)
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或设置不存在，使用空设置
func (sm *SettingsManager) Load() error {
	sm.settings = ExporterSettings{}

	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded ExporterSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded (exportDir=%q)", loaded.ExportDir)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// Settings 返回当前设置的副本
func (sm *SettingsManager) Settings() ExporterSettings {
	return sm.settings
}

// ExportDir 返回已保存的导出目录，未保存时返回空字符串
func (sm *SettingsManager) ExportDir() string {
	return sm.settings.ExportDir
}

// RecordExport 记录一次成功的导出
// 相对路径按当前工作目录转换为绝对路径，避免下次从其他目录运行时指向别处
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) RecordExport(dir, library, effect string) {
	sm.settings.ExportDir = absPath(dir)
	sm.settings.LastLibrary = absPath(library)
	sm.settings.LastEffect = effect
}

// absPath 返回 p 的绝对路径，无法解析时原样返回
func absPath(p string) string {
	if p == "" {
		return p
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		log.Printf("[SettingsManager] Warning: cannot resolve %s: %v", p, err)
		return p
	}
	return abs
}
