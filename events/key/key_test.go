// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChordDecode(t *testing.T) {
	for _, ch := range []Chord{"a", "Control+a", "ReturnEnter", "Shift+Home", "Backspace", "Shift+Control+z", "+"} {
		r, code, mods, err := ch.Decode()
		require.NoError(t, err, ch)
		assert.Equal(t, ch, NewChord(r, code, mods))
	}
	_, _, _, err := Chord("Hyper+a").Decode()
	assert.Error(t, err)
	_, _, _, err = Chord("ab").Decode()
	assert.Error(t, err)
}

func TestModifiers(t *testing.T) {
	m := Mods(Shift, Meta)
	assert.True(t, m.Has(Shift))
	assert.True(t, m.Has(Control, Meta))
	assert.False(t, m.Has(Control))
	assert.Equal(t, "Shift+Meta", m.String())
	assert.Equal(t, Chord("Control+z"), NewChord('z', CodeUnknown, Mods(Control)))
}
