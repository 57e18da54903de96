// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, err))
	assert.Equal(t, "x", Ignore1("x", err))
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, Is(wrapped, err))
}
