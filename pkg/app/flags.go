package app

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags 解析命令行参数
// 参数错误返回包装了 ErrUsage 的错误（退出码 1），不调用 os.Exit
func ParseFlags(args []string, stderr io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("gpart-export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.LibraryPath, "library", "", "effect library YAML file")
	fs.StringVar(&cfg.Effect, "effect", "", "name of the effect to export")
	fs.StringVar(&cfg.OutDir, "out", "", "output directory (default: last export directory, then config outputDir)")
	fs.StringVar(&cfg.ConfigPath, "config", "", "exporter config YAML file")
	fs.StringVar(&cfg.TextureDir, "textures", "", "texture directory (overrides config and library)")
	fs.BoolVar(&cfg.Watch, "watch", false, "re-export whenever the library file changes")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "print the document instead of writing it")
	fs.BoolVar(&cfg.List, "list", false, "list the effects in the library")
	fs.StringVar(&cfg.Inspect, "inspect", "", "print a summary of an existing .gpart file")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable verbose logging (default off)")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}
	if cfg.Watch && cfg.DryRun {
		return Config{}, fmt.Errorf("%w: -watch and -dry-run cannot be combined", ErrUsage)
	}
	return cfg, nil
}
