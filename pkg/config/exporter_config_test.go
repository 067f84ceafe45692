package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exporter.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// TestLoadExporterConfig 测试加载完整配置
func TestLoadExporterConfig(t *testing.T) {
	path := writeConfig(t, `
outputDir: build/effects
extension: .json
textureDir: art
exportTextures: false
`)

	config, err := LoadExporterConfig(path)
	if err != nil {
		t.Fatalf("LoadExporterConfig failed: %v", err)
	}

	if config.OutputDir != "build/effects" {
		t.Errorf("OutputDir: got %q, want %q", config.OutputDir, "build/effects")
	}
	if config.Extension != ".json" {
		t.Errorf("Extension: got %q, want %q", config.Extension, ".json")
	}
	if config.TextureDir != "art" {
		t.Errorf("TextureDir: got %q, want %q", config.TextureDir, "art")
	}
	if config.ExportTextures {
		t.Error("ExportTextures: got true, want false")
	}
}

// TestLoadExporterConfig_Defaults 测试省略字段时保留默认值
func TestLoadExporterConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "textureDir: art\n")

	config, err := LoadExporterConfig(path)
	if err != nil {
		t.Fatalf("LoadExporterConfig failed: %v", err)
	}

	defaults := DefaultExporterConfig()
	if config.OutputDir != defaults.OutputDir {
		t.Errorf("OutputDir: got %q, want %q", config.OutputDir, defaults.OutputDir)
	}
	if config.Extension != ".gpart" {
		t.Errorf("Extension: got %q, want .gpart", config.Extension)
	}
	if !config.ExportTextures {
		t.Error("ExportTextures: got false, want true")
	}
}

// TestLoadExporterConfig_Invalid 测试非法配置
func TestLoadExporterConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty output dir", `outputDir: ""`, "outputDir"},
		{"extension without dot", "extension: gpart", "extension"},
		{"bare dot", `extension: "."`, "extension"},
		{"extension with separator", "extension: ./x", "separators"},
		{"malformed yaml", "outputDir: [", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadExporterConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadExporterConfig_MissingFile(t *testing.T) {
	_, err := LoadExporterConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
