// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	prev := UserLevel.Level()
	defer UserLevel.Set(prev)

	assert.NoError(t, SetLevel("debug"))
	assert.Equal(t, slog.LevelDebug, UserLevel.Level())
	assert.NoError(t, SetLevel("Warning"))
	assert.Equal(t, slog.LevelWarn, UserLevel.Level())
	assert.NoError(t, SetLevel(""))
	assert.Equal(t, slog.LevelWarn, UserLevel.Level())
	assert.Error(t, SetLevel("loud"))
}

func TestInitTo(t *testing.T) {
	prevLevel := UserLevel.Level()
	prev := slog.Default()
	defer func() {
		UserLevel.Set(prevLevel)
		slog.SetDefault(prev)
	}()

	var buf bytes.Buffer
	InitTo(&buf)
	UserLevel.Set(slog.LevelWarn)
	slog.Info("hidden")
	slog.Warn("shown", "id", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "id=3")
}
