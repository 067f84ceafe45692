// Command gpart-export writes particle effect definitions from a YAML effect
// library as .gpart documents.
//
// Usage:
//
//	gpart-export -library effects.yaml -effect Explosion [-out DIR] [-config exporter.yaml]
//	             [-textures DIR] [-watch] [-dry-run] [-verbose]
//	gpart-export -library effects.yaml -list
//	gpart-export -inspect Explosion.gpart
//
// Exit codes: 0 success, 1 usage or configuration error, 2 no effect
// selected, 3 module read failure, 4 I/O failure, 5 encode failure.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gonewx/gpart/pkg/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := app.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return app.ExitOK
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return app.ExitUsage
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return app.ExitCode(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return app.ExitCode(err)
	}
	return app.ExitOK
}
