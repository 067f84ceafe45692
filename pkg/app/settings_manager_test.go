package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	// 使用临时目录隔离 gdata 存储
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm == nil {
		t.Fatal("NewSettingsManager(nil) returned nil")
	}

	if sm.ExportDir() != "" {
		t.Errorf("ExportDir: got %q, want empty", sm.ExportDir())
	}

	sm.RecordExport("/tmp/out", "/tmp/effects.yaml", "Explosion")
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: got %v, want nil", err)
	}
	if sm.ExportDir() != "/tmp/out" {
		t.Errorf("ExportDir after RecordExport: got %q, want /tmp/out", sm.ExportDir())
	}
}

// TestRecordExportAbsolute 测试相对路径按工作目录保存为绝对路径
func TestRecordExportAbsolute(t *testing.T) {
	t.Chdir(t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}

	sm := NewSettingsManager(nil)
	sm.RecordExport("out", "fx/effects.yaml", "Explosion")

	want := ExporterSettings{
		ExportDir:   filepath.Join(wd, "out"),
		LastLibrary: filepath.Join(wd, "fx", "effects.yaml"),
		LastEffect:  "Explosion",
	}
	if got := sm.Settings(); got != want {
		t.Errorf("Settings: got %+v, want %+v", got, want)
	}
}

// TestSettingsLoadSave 测试 Save() 后重新加载
func TestSettingsLoadSave(t *testing.T) {
	m := openTestGdata(t, "gpart_test_settings")

	sm1 := NewSettingsManager(m)
	if sm1.ExportDir() != "" {
		t.Fatalf("fresh storage ExportDir: got %q, want empty", sm1.ExportDir())
	}

	sm1.RecordExport("/tmp/effects", "/tmp/lib.yaml", "Smoke")
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(m)
	got := sm2.Settings()
	want := ExporterSettings{ExportDir: "/tmp/effects", LastLibrary: "/tmp/lib.yaml", LastEffect: "Smoke"}
	if got != want {
		t.Errorf("Loaded settings: got %+v, want %+v", got, want)
	}
}

// TestSettingsLoadCorrupted 测试存储内容损坏时回退为空设置
func TestSettingsLoadCorrupted(t *testing.T) {
	m := openTestGdata(t, "gpart_test_settings_corrupt")

	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("exportDir: [")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm := NewSettingsManager(nil)
	sm.gdataManager = m
	if err := sm.Load(); err == nil {
		t.Error("Load() of corrupted settings should fail")
	}
	if sm.ExportDir() != "" {
		t.Errorf("ExportDir after failed load: got %q, want empty", sm.ExportDir())
	}
}
