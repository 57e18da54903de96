// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/boxcore/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tree = `
type: container
layout: vbox
children:
  - type: label
    attrs: {value: hello, name: title}
  - type: list
    attrs: {weight: 3}
    items: [{text: one}, {text: two}]
`

func write(t *testing.T, dir, name, content string) string {
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	cfg := &config{
		tree:     write(t, dir, "tree.yaml", tree),
		size:     "200x100",
		styles:   []string{write(t, dir, "app.css", "#title { padding: 2px }")},
		settings: write(t, dir, "settings.toml", "scroll_bar_width = 12\nlog_level = \"warn\"\n"),
		noColor:  true,
	}
	var out bytes.Buffer
	require.NoError(t, dump(cfg, &out))
	s := out.String()
	assert.Contains(t, s, "box window#0 "+math32.B2(0, 0, 200, 100).String())
	assert.Contains(t, s, `"hello"`)
	assert.Contains(t, s, `"two"`)
	assert.NotContains(t, s, "\x1b[", "no escapes without color")

	cfg.ops = true
	out.Reset()
	require.NoError(t, dump(cfg, &out))
	assert.True(t, strings.HasPrefix(out.String(), "fill") || strings.HasPrefix(out.String(), "text"), out.String())
	assert.Contains(t, out.String(), `text`)
	assert.Contains(t, out.String(), `"hello"`)
}

func TestDumpErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := &config{tree: write(t, dir, "tree.yaml", "type: gizmo"), size: "10x10"}
	assert.Error(t, dump(cfg, &bytes.Buffer{}))

	cfg.tree = write(t, dir, "ok.yaml", "type: label")
	cfg.size = "wide"
	assert.Error(t, dump(cfg, &bytes.Buffer{}))

	cfg.size = "10x10"
	assert.Equal(t, []string{cfg.tree}, cfg.files())
	cfg.settings = "s.toml"
	assert.Len(t, cfg.files(), 2)
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	fn := write(t, dir, "tree.yaml", "type: button\nattrs: {value: ok}")
	cmd := newCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--size", "100x50", "--no-color", fn})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"ok"`)

	cmd = newCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}
