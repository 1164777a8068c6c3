// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command ndtree loads YAML or JSON documents of nested mappings with
// numeric leaves and runs tree operations on them.
//
//	ndtree print farm.yaml
//	ndtree get farm.yaml T1.blade.Mx
//	ndtree extract farm.yaml '*.tower'
//	ndtree json farm.yaml T1
//	ndtree stats --pattern '*.*.Mx' farm.yaml
//	ndtree --decimal calc --op // --scalar 3 farm.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := &cli.App{
		Name:      "ndtree",
		Usage:     "inspect and compute on nested numeric documents",
		Version:   versioninfo.Short(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "separator",
				Aliases: []string{"s"},
				Usage:   "token separator in paths and patterns",
				Value:   ".",
				EnvVars: []string{"NDTREE_SEPARATOR"},
			},
			&cli.BoolFlag{
				Name:    "decimal",
				Usage:   "exact decimal leaves instead of float64",
				EnvVars: []string{"NDTREE_DECIMAL"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"NDTREE_LOG_LEVEL"},
			},
		},
		Before: configLogger,
	}

	app.Commands = []*cli.Command{
		cmdPrint,
		cmdLeaves,
		cmdGet,
		cmdExtract,
		cmdJSON,
		cmdStats,
		cmdCalc,
	}

	return app
}

func configLogger(cctx *cli.Context) error {
	lvl := new(slog.LevelVar)
	if err := lvl.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}

	if cctx.App.Metadata == nil {
		cctx.App.Metadata = make(map[string]any)
	}
	cctx.App.Metadata["logger"] = slog.New(slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{
		Level: lvl,
	}))
	return nil
}

// logger returns the logger set up by configLogger.
func logger(cctx *cli.Context) *slog.Logger {
	if l, ok := cctx.App.Metadata["logger"].(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
