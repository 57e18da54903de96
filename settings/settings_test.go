// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
scroll_bar_width = 12
repeat_delay = "1s"
log_level = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, float32(12), s.ScrollBarWidth)
	assert.Equal(t, Duration(time.Second), s.RepeatDelay)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, float32(20), s.ScrollStep)
	assert.Equal(t, 0.9, s.PriorityDecay)

	_, err = Parse([]byte(`repeat_delay = "soon"`))
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	s := Default()
	s.Indent = 24
	require.NoError(t, s.Save(fn))
	o, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, s, o)
}
