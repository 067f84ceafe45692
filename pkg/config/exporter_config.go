package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/gonewx/gpart/pkg/gpart"
	"gopkg.in/yaml.v3"
)

// ExporterConfig 导出器配置
type ExporterConfig struct {
	OutputDir      string `yaml:"outputDir"`      // 默认导出目录（未指定 -out 且无已保存目录时使用）
	Extension      string `yaml:"extension"`      // 导出文件扩展名，必须以 "." 开头
	TextureDir     string `yaml:"textureDir"`     // 贴图目录，为空时使用效果库中的 textureDir
	ExportTextures bool   `yaml:"exportTextures"` // 是否同时导出渲染器贴图
}

// DefaultExporterConfig 返回默认配置
func DefaultExporterConfig() *ExporterConfig {
	return &ExporterConfig{
		OutputDir:      "export",
		Extension:      gpart.Extension,
		ExportTextures: true,
	}
}

// LoadExporterConfig 从 YAML 文件加载导出器配置
// 文件中省略的字段保留默认值
//
// 参数：
//
//	path - 配置文件路径
//
// 返回：
//
//	*ExporterConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadExporterConfig(path string) (*ExporterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exporter config file %s: %w", path, err)
	}

	config := DefaultExporterConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse exporter config YAML from %s: %w", path, err)
	}

	if err := validateExporterConfig(config); err != nil {
		return nil, fmt.Errorf("invalid exporter config in %s: %w", path, err)
	}

	return config, nil
}

// validateExporterConfig 验证导出器配置的合法性
func validateExporterConfig(config *ExporterConfig) error {
	if config.OutputDir == "" {
		return fmt.Errorf("outputDir cannot be empty")
	}

	if !strings.HasPrefix(config.Extension, ".") || len(config.Extension) < 2 {
		return fmt.Errorf("extension must start with '.' and name a suffix, got %q", config.Extension)
	}

	if strings.ContainsAny(config.Extension, `/\`) {
		return fmt.Errorf("extension cannot contain path separators, got %q", config.Extension)
	}

	return nil
}
