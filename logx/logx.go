// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging through log/slog,
// with a user-settable level whose default depends on build tags.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [SetLevel] from the settings. It defaults to
// [slog.LevelInfo], or Debug / Warn under the debug / release tags.
var UserLevel slog.LevelVar

func init() {
	UserLevel.Set(defaultUserLevel)
}

// Init installs a text handler writing to stderr as the default
// slog logger, gated by [UserLevel].
func Init() {
	InitTo(os.Stderr)
}

// InitTo installs a text handler writing to w as the default
// slog logger, gated by [UserLevel].
func InitTo(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: &UserLevel})
	slog.SetDefault(slog.New(h))
}

// SetLevel sets [UserLevel] from a level name: debug, info, warn or error.
// An empty name leaves the level unchanged.
func SetLevel(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return nil
	case "debug":
		UserLevel.Set(slog.LevelDebug)
	case "info":
		UserLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		UserLevel.Set(slog.LevelWarn)
	case "error":
		UserLevel.Set(slog.LevelError)
	default:
		return fmt.Errorf("logx: unknown log level %q", name)
	}
	return nil
}
