// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command boxdump lays out a widget tree described in YAML and prints
// its render list, for inspecting layouts outside of a window system.
//
//	boxdump --size 800x600 --style app.css tree.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"cogentcore.org/boxcore/logx"
	"github.com/spf13/cobra"
)

func main() {
	logx.Init()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "boxdump [flags] tree.yaml",
		Short: "Lay out a YAML widget tree and print its render list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.tree = args[0]
			if cfg.watch {
				return watch(cmd.Context(), cfg, cmd.OutOrStdout())
			}
			return dump(cfg, cmd.OutOrStdout())
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&cfg.size, "size", "800x600", "window size as WIDTHxHEIGHT")
	fl.StringSliceVar(&cfg.styles, "style", nil, "style sheet files, applied in order")
	fl.StringVar(&cfg.settings, "settings", "", "settings TOML file")
	fl.StringVar(&cfg.font, "font", "", "measure with an OpenType font file instead of the cell grid; \"go\" for Go Regular")
	fl.BoolVar(&cfg.ops, "ops", false, "print the rasterizer operations instead of the entries")
	fl.BoolVar(&cfg.noColor, "no-color", false, "disable colored output")
	fl.BoolVarP(&cfg.watch, "watch", "w", false, "dump again whenever an input file changes")
	cmd.SetErrPrefix("boxdump:")
	cmd.SilenceUsage = true
	return cmd
}

// config are the command line options.
type config struct {
	tree     string
	size     string
	styles   []string
	settings string
	font     string
	ops      bool
	noColor  bool
	watch    bool
}

// files returns the input files of the dump.
func (c *config) files() []string {
	fs := append([]string{c.tree}, c.styles...)
	if c.settings != "" {
		fs = append(fs, c.settings)
	}
	return fs
}

func parseSize(s string) (w, h float32, err error) {
	if _, err = fmt.Sscanf(s, "%gx%g", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	return w, h, nil
}
