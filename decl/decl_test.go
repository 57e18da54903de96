// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decl

import (
	"testing"

	"cogentcore.org/boxcore/databind"
	"cogentcore.org/boxcore/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tree = `
type: splitter
layout: vbox
attrs:
  weight: 2
  name: main
children:
  - type: tree
    attrs: {vscroll: auto}
    items:
      - text: a
        collapsed: true
        children: [{text: a1}]
      - {text: b, selected: true}
  - type: line-edit
    attrs:
      value: hello
      enabled: false
`

func TestBuild(t *testing.T) {
	sp, err := Parse([]byte(tree))
	require.NoError(t, err)
	assert.Equal(t, Attrs{{"weight", "2"}, {"name", "main"}}, sp.Attrs)

	s := widget.NewStore()
	b := &databind.Binder{}
	id, err := sp.Build(s, widget.Root, -1, b)
	require.NoError(t, err)
	n := s.Node(id)
	assert.Equal(t, widget.TypeSplitter, n.Type)
	assert.Equal(t, widget.LayoutVBox, n.Layout)
	w, ok := n.AttrNumber(widget.KeyWeight)
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
	require.Len(t, n.Children, 2)

	tr := s.Node(n.Children[0])
	m := b.Model(tr.ID)
	require.NotNil(t, m)
	rows, err := databind.Flatten(m, true)
	require.NoError(t, err)
	require.Len(t, rows, 2, "collapsed node does not recurse")
	assert.True(t, rows[1].Node.Flags.Has(databind.Selected))

	le := s.Node(n.Children[1])
	assert.Equal(t, "hello", le.Value())
	assert.False(t, le.Is(widget.Enabled))
}

func TestBuildErrors(t *testing.T) {
	sp, err := Parse([]byte("type: gizmo"))
	require.NoError(t, err)
	_, err = sp.Build(widget.NewStore(), widget.Root, -1, nil)
	assert.Error(t, err)

	_, err = Parse([]byte("type: label\nattrs: [1, 2]"))
	assert.Error(t, err)

	sp, _ = Parse([]byte("type: label\nattrs: {colour: red}"))
	_, err = sp.Build(widget.NewStore(), widget.Root, -1, nil)
	assert.Error(t, err)

	sp, _ = Parse([]byte("type: label"))
	_, err = sp.Build(widget.NewStore(), 99, -1, nil)
	assert.ErrorIs(t, err, widget.ErrInvalidReference)
}

func TestBuildNestedErrorInsertsNothing(t *testing.T) {
	sp, err := Parse([]byte(`
type: container
layout: hbox
children:
  - {type: label}
  - type: container
    children: [{type: label, attrs: {colour: red}}]
`))
	require.NoError(t, err)
	assert.Error(t, sp.Validate())

	s := widget.NewStore()
	_, err = sp.Build(s, widget.Root, -1, nil)
	assert.Error(t, err)
	assert.Empty(t, s.Root().Children)

	assert.Error(t, sp.BuildInto(s, widget.Root, nil))
	assert.Equal(t, widget.LayoutVBox, s.Root().Layout, "root left untouched")
}
