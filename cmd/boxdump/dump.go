// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/boxcore/decl"
	"cogentcore.org/boxcore/logx"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/render"
	"cogentcore.org/boxcore/settings"
	"cogentcore.org/boxcore/styles"
	"cogentcore.org/boxcore/text"
	"cogentcore.org/boxcore/widget"
	"cogentcore.org/boxcore/window"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
)

// dump lays out the tree once and writes the result to out.
func dump(cfg *config, out io.Writer) error {
	w, err := load(cfg)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Update(); err != nil {
		return err
	}
	if cfg.ops {
		rec := &render.Recorder{}
		w.List.Draw(rec)
		_, err := rec.WriteTo(out)
		return err
	}
	p := termenv.NewOutput(out)
	if cfg.noColor {
		p = termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	}
	for _, e := range w.List.Entries {
		fmt.Fprintln(out, entry(p, w.Store, &e))
	}
	return nil
}

// load builds a window with the tree, styles and settings of cfg.
func load(cfg *config) (*window.Window, error) {
	st := settings.Default()
	if cfg.settings != "" {
		var err error
		if st, err = settings.Open(cfg.settings); err != nil {
			return nil, err
		}
	}
	if err := logx.SetLevel(st.LogLevel); err != nil {
		slog.Warn("boxdump: ignoring log level", "err", err)
	}
	ww, wh, err := parseSize(cfg.size)
	if err != nil {
		return nil, err
	}
	ts, err := textService(cfg.font)
	if err != nil {
		return nil, err
	}
	w := window.New(st, ts, math32.Vec2(ww, wh))
	for _, fn := range cfg.styles {
		b, err := os.ReadFile(fn)
		if err != nil {
			return nil, err
		}
		sh, err := styles.ParseSheet(string(b))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
		w.Sheets = append(w.Sheets, sh)
	}
	sp, err := decl.Open(cfg.tree)
	if err != nil {
		return nil, err
	}
	if err := w.Layout(widget.Root, sp); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.tree, err)
	}
	return w, nil
}

func textService(font string) (text.Service, error) {
	switch font {
	case "":
		return &text.Mono{}, nil
	case "go":
		return text.NewFaces(nil)
	}
	b, err := os.ReadFile(font)
	if err != nil {
		return nil, err
	}
	return text.NewFaces(b)
}

var kindColors = map[render.EntryKinds]string{
	render.EntryBox:       "4",
	render.EntryItem:      "2",
	render.EntryCaret:     "5",
	render.EntrySelection: "6",
}

// entry formats one render entry, indented by its level.
func entry(p *termenv.Output, s *widget.Store, e *render.Entry) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", e.Level))
	name := "?"
	if n := s.Node(e.Widget); n != nil {
		name = n.String()
	}
	kind := "box"
	switch e.Kind {
	case render.EntryItem:
		kind = e.ItemKind.String()
	case render.EntryCaret:
		kind = "caret"
	case render.EntrySelection:
		kind = "selection"
	}
	b.WriteString(p.String(kind).Foreground(p.Color(kindColors[e.Kind])).Bold().String())
	fmt.Fprintf(&b, " %s %v", name, e.Rect)
	if e.Clip != e.Rect {
		b.WriteString(p.String(fmt.Sprintf(" clip %v", e.Clip)).Faint().String())
	}
	if e.Text != "" {
		fmt.Fprintf(&b, " %q", e.Text)
	}
	if e.Overlay {
		b.WriteString(" overlay")
	}
	return b.String()
}

// watch dumps the tree, then again on every change of an input file,
// until the context is done.
func watch(ctx context.Context, cfg *config, out io.Writer) error {
	wt, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer wt.Close()
	// editors replace files on save, so watch the directories
	files := map[string]bool{}
	for _, fn := range cfg.files() {
		abs, err := filepath.Abs(fn)
		if err != nil {
			return err
		}
		files[abs] = true
		if err := wt.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}
	report := func() {
		if err := dump(cfg, out); err != nil {
			fmt.Fprintln(out, "boxdump:", err)
		}
		fmt.Fprintln(out)
	}
	report()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-wt.Events:
			if !ok {
				return nil
			}
			if files[ev.Name] && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				report()
			}
		case err, ok := <-wt.Errors:
			if !ok {
				return nil
			}
			slog.Warn("boxdump: watch", "err", err)
		}
	}
}
