// Package app 提供导出工具的命令行应用包装器
//
// main.go 只负责解析参数并调用 NewApp()/Run()，便于测试。
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gonewx/gpart/internal/particle"
	"github.com/gonewx/gpart/pkg/config"
	"github.com/gonewx/gpart/pkg/exporter"
	"github.com/gonewx/gpart/pkg/gpart"
	"github.com/gonewx/gpart/pkg/watch"
)

// AppName 是 gdata 存储使用的应用名
const AppName = "gpart_exporter"

// 进程退出码
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitNoSelection = 2
	ExitModuleRead  = 3
	ExitIO          = 4
	ExitEncode      = 5
)

// ErrUsage 表示命令行参数或配置错误
var ErrUsage = errors.New("usage error")

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool

	LibraryPath string // 效果库 YAML 文件
	Effect      string // 要导出的效果名
	OutDir      string // 导出目录，为空时使用已保存目录或配置中的 outputDir
	ConfigPath  string // 导出器配置文件，为空时使用默认配置
	TextureDir  string // 贴图目录，覆盖配置和效果库中的设置

	Watch   bool   // 效果库变化时重新导出
	DryRun  bool   // 只输出文档内容，不写文件
	List    bool   // 列出效果库中的效果
	Inspect string // 查看已有 .gpart 文件的结构

	// Settings 为空时打开默认 gdata 存储
	Settings *SettingsManager

	Stdout io.Writer
	Stderr io.Writer
}

// App 是导出工具的应用包装器
type App struct {
	cfg         Config
	exporterCfg *config.ExporterConfig
	settings    *SettingsManager
	stdout      io.Writer
	stderr      io.Writer
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	exporterCfg := config.DefaultExporterConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadExporterConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		exporterCfg = loaded
		log.Printf("[Config] Loaded exporter config from %s", cfg.ConfigPath)
	}

	settings := cfg.Settings
	if settings == nil {
		settings = OpenSettingsManager(AppName)
	}

	a := &App{
		cfg:         cfg,
		exporterCfg: exporterCfg,
		settings:    settings,
		stdout:      cfg.Stdout,
		stderr:      cfg.Stderr,
	}
	if a.stdout == nil {
		a.stdout = os.Stdout
	}
	if a.stderr == nil {
		a.stderr = os.Stderr
	}
	return a, nil
}

// Run 执行配置中选择的操作
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Inspect != "" {
		return a.inspect(a.cfg.Inspect)
	}
	if a.cfg.LibraryPath == "" {
		return fmt.Errorf("%w: -library is required", ErrUsage)
	}
	if a.cfg.List {
		return a.list()
	}
	if a.cfg.Watch {
		return a.watch(ctx)
	}
	return a.exportOnce()
}

// ExitCode 将 Run 返回的错误映射为进程退出码
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch exporter.Kind(err) {
	case exporter.ErrNoSelection:
		return ExitNoSelection
	case exporter.ErrModuleRead:
		return ExitModuleRead
	case exporter.ErrIO:
		return ExitIO
	case exporter.ErrEncode:
		return ExitEncode
	}
	return ExitUsage
}

func (a *App) loadLibrary() (*particle.Library, error) {
	lib, err := particle.LoadLibrary(a.cfg.LibraryPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	log.Printf("[App] Loaded %d effects from %s", len(lib.Names()), a.cfg.LibraryPath)
	return lib, nil
}

// selectEffect 返回要导出的效果；未指定效果名时返回 nil
func (a *App) selectEffect(lib *particle.Library) (particle.Source, error) {
	if a.cfg.Effect == "" {
		return nil, nil
	}
	e, err := lib.Effect(a.cfg.Effect)
	if err != nil {
		return nil, &exporter.ExportError{Kind: exporter.ErrNoSelection, Err: err}
	}
	return e, nil
}

func (a *App) newExporter(lib *particle.Library) *exporter.Exporter {
	x := exporter.New()
	x.Extension = a.exporterCfg.Extension

	textureDir := a.cfg.TextureDir
	if textureDir == "" {
		textureDir = a.exporterCfg.TextureDir
	}
	if textureDir == "" {
		textureDir = lib.TextureDir
	}
	if a.exporterCfg.ExportTextures && textureDir != "" {
		x.Textures = exporter.NewPNGTextureExporter(textureDir)
	}
	return x
}

// outputDir 按优先级选择导出目录：-out、已保存目录、配置默认值
func (a *App) outputDir() string {
	if a.cfg.OutDir != "" {
		return a.cfg.OutDir
	}
	if dir := a.settings.ExportDir(); dir != "" {
		return dir
	}
	return a.exporterCfg.OutputDir
}

func (a *App) exportOnce() error {
	lib, err := a.loadLibrary()
	if err != nil {
		return err
	}
	src, err := a.selectEffect(lib)
	if err != nil {
		return err
	}
	x := a.newExporter(lib)

	if a.cfg.DryRun {
		data, err := x.Encode(src)
		if err != nil {
			return err
		}
		_, err = a.stdout.Write(data)
		return err
	}

	dir := a.outputDir()
	path, err := x.Export(src, dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, path)

	a.settings.RecordExport(dir, a.cfg.LibraryPath, a.cfg.Effect)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: could not remember export directory: %v", err)
	}
	return nil
}

func (a *App) list() error {
	lib, err := a.loadLibrary()
	if err != nil {
		return err
	}
	for _, name := range lib.Names() {
		fmt.Fprintln(a.stdout, name)
	}
	return nil
}

func (a *App) inspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := gpart.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	sections, err := gpart.Sections(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintf(a.stdout, "name:     %s\n", doc.Metadata.Name)
	fmt.Fprintf(a.stdout, "version:  %s\n", doc.Metadata.Version)
	fmt.Fprintf(a.stdout, "exported: %s by %s\n", doc.Metadata.ExportDate, doc.Metadata.Exporter)
	fmt.Fprintf(a.stdout, "sections: %s\n", strings.Join(sections, ", "))
	if doc.Emission != nil {
		fmt.Fprintf(a.stdout, "bursts:   %d\n", len(doc.Emission.Bursts))
	}
	if doc.Renderer == nil {
		fmt.Fprintln(a.stdout, "renderer: none")
	} else {
		fmt.Fprintf(a.stdout, "renderer: %s (texture %q)\n", doc.Renderer.RenderMode, doc.Renderer.Texture)
	}
	for _, s := range doc.SubEmitters {
		fmt.Fprintf(a.stdout, "sub:      %s -> %s\n", s.Type, s.Name)
	}
	return nil
}

// watch 先导出一次，然后在效果库文件变化时重新导出，直到 ctx 结束
// 导出失败只报告，不退出
func (a *App) watch(ctx context.Context) error {
	w, err := watch.NewWatcher(a.cfg.LibraryPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	defer w.Close()

	a.reexport()
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			log.Printf("[Watch] %s changed", path)
			a.reexport()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(a.stderr, "watch error: %v\n", err)
		}
	}
}

func (a *App) reexport() {
	if err := a.exportOnce(); err != nil {
		fmt.Fprintf(a.stderr, "export failed: %v\n", err)
	}
}
