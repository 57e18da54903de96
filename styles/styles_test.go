// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"
	"testing"

	"cogentcore.org/boxcore/styles/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testElement struct {
	typ, name, inline string
}

func (e testElement) StyleType() string   { return e.typ }
func (e testElement) StyleName() string   { return e.name }
func (e testElement) InlineStyle() string { return e.inline }

func TestSheetResolver(t *testing.T) {
	sh, err := ParseSheet(`
		* { font-size: 12pt; }
		list { padding: 2px 4px; border: 1px solid red; visibility: inherit; }
		#main { margin-top: 10%; color: #336699; }
		label { display: none; }
		@media print { list { display: none; } }
	`)
	require.NoError(t, err)

	var r SheetResolver
	pr, err := r.Resolve(testElement{typ: "list", name: "main", inline: "padding-left: 1em; position: absolute"}, []*Sheet{sh})
	require.NoError(t, err)
	assert.Equal(t, DisplayBlock, pr.Display)
	assert.Equal(t, PositionAbsolute, pr.Position)
	assert.Equal(t, VisibilityInherit, pr.Visibility)
	assert.Equal(t, units.Pt(12), pr.FontSize)
	assert.Equal(t, units.Px(2), pr.Padding.Top)
	assert.Equal(t, units.Px(4), pr.Padding.Right)
	assert.Equal(t, units.Em(1), pr.Padding.Left)
	assert.Equal(t, units.Px(1), pr.Border.Bottom)
	assert.Equal(t, units.Pct(10), pr.Margin.Top)
	assert.Equal(t, color.RGBA{0x33, 0x66, 0x99, 0xff}, pr.Color)

	pr, err = r.Resolve(testElement{typ: "label"}, []*Sheet{sh})
	require.NoError(t, err)
	assert.Equal(t, DisplayNone, pr.Display)
	assert.Nil(t, pr.Color)
}

func TestImportantWins(t *testing.T) {
	sh, err := ParseSheet(`list { display: none !important; } list { display: block; }`)
	require.NoError(t, err)
	pr, err := SheetResolver{}.Resolve(testElement{typ: "list"}, []*Sheet{sh})
	require.NoError(t, err)
	assert.Equal(t, DisplayNone, pr.Display)
}

func TestParseColor(t *testing.T) {
	tests := map[string]color.RGBA{
		"#fff":        {255, 255, 255, 255},
		"#10203040":   {0x10, 0x20, 0x30, 0x40},
		"red":         {255, 0, 0, 255},
		"transparent": {},
	}
	for s, want := range tests {
		c, err := ParseColor(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, c, s)
	}
	_, err := ParseColor("#12")
	assert.Error(t, err)
	_, err = ParseColor("blurple")
	assert.Error(t, err)
}

func TestEnums(t *testing.T) {
	var p Positions
	require.NoError(t, p.SetString("Fixed"))
	assert.Equal(t, PositionFixed, p)
	assert.Equal(t, "fixed", p.String())
	var v Visibilities
	assert.Error(t, v.SetString("maybe"))
	var d Displays
	require.NoError(t, d.SetString("flex"))
	assert.Equal(t, DisplayBlock, d)
}
