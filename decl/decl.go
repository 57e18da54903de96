// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decl reads declarative widget subtrees from YAML and builds
// them into a [widget.Store]:
//
//	type: splitter
//	layout: vbox
//	attrs:
//	  weight: 1
//	children:
//	  - type: list
//	    attrs: {vscroll: auto}
//	    items: [{text: a, children: [{text: a1}]}, {text: b}]
package decl

import (
	"fmt"
	"os"

	"cogentcore.org/boxcore/databind"
	"cogentcore.org/boxcore/widget"
	"gopkg.in/yaml.v3"
)

// Spec is a declarative widget subtree.
type Spec struct {
	Type     string  `yaml:"type"`
	Layout   string  `yaml:"layout"`
	Attrs    Attrs   `yaml:"attrs"`
	Children []*Spec `yaml:"children"`

	// Items are the rows of the data model bound to a view widget.
	Items []*Item `yaml:"items"`
}

// Item is a node of a bound data model.
type Item struct {
	Text      string  `yaml:"text"`
	Row       string  `yaml:"row"`
	Col       string  `yaml:"col"`
	Selected  bool    `yaml:"selected"`
	Collapsed bool    `yaml:"collapsed"`
	Children  []*Item `yaml:"children"`
}

// Attr is one attribute, in its YAML scalar form.
type Attr struct {
	Key   string
	Value string
}

// Attrs are attributes in the order given.
type Attrs []Attr

// UnmarshalYAML decodes a mapping, keeping the order of its keys.
func (as *Attrs) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attrs must be a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: attribute %q must be a scalar", v.Line, k.Value)
		}
		*as = append(*as, Attr{Key: k.Value, Value: v.Value})
	}
	return nil
}

// Parse parses a spec from YAML.
func Parse(b []byte) (*Spec, error) {
	sp := &Spec{}
	if err := yaml.Unmarshal(b, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// Open reads a spec from a YAML file.
func Open(filename string) (*Spec, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sp, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sp, nil
}

// Validate checks the types, layout modes and attribute keys of sp
// and its descendants, so that building it cannot fail part way.
func (sp *Spec) Validate() error {
	if sp.Type != "" {
		var typ widget.Types
		if err := typ.SetString(sp.Type); err != nil {
			return err
		}
	}
	if sp.Layout != "" {
		var lm widget.LayoutModes
		if err := lm.SetString(sp.Layout); err != nil {
			return err
		}
	}
	for _, a := range sp.Attrs {
		var k widget.Keys
		if err := k.SetString(a.Key); err != nil {
			return err
		}
	}
	for i, c := range sp.Children {
		if c.Type == "" {
			return fmt.Errorf("child %d: missing type", i)
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}

// Apply sets the layout mode and attributes of sp on an
// existing widget.
func (sp *Spec) Apply(s *widget.Store, id widget.ID) error {
	n, err := s.Lookup(id)
	if err != nil {
		return err
	}
	if sp.Layout != "" {
		if err := n.Layout.SetString(sp.Layout); err != nil {
			return err
		}
	}
	for _, a := range sp.Attrs {
		var k widget.Keys
		if err := k.SetString(a.Key); err != nil {
			return err
		}
		if err := s.Modify(id, k, widget.ParseAttribute(a.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Build inserts sp as a new subtree under parent at offset,
// binding item models with b, which may be nil. Nothing is
// inserted if sp does not validate.
func (sp *Spec) Build(s *widget.Store, parent widget.ID, offset int, b *databind.Binder) (widget.ID, error) {
	if err := sp.Validate(); err != nil {
		return widget.NoID, err
	}
	return sp.build(s, parent, offset, b)
}

func (sp *Spec) build(s *widget.Store, parent widget.ID, offset int, b *databind.Binder) (widget.ID, error) {
	var typ widget.Types
	if err := typ.SetString(sp.Type); err != nil {
		return widget.NoID, err
	}
	id, err := s.Insert(parent, offset, typ, widget.LayoutNone)
	if err != nil {
		return widget.NoID, err
	}
	return id, sp.buildInto(s, id, b)
}

// BuildInto applies sp to the existing widget id, builds its
// children after any existing ones, and binds its items.
// The widget is left untouched if sp does not validate.
func (sp *Spec) BuildInto(s *widget.Store, id widget.ID, b *databind.Binder) error {
	if err := sp.Validate(); err != nil {
		return err
	}
	return sp.buildInto(s, id, b)
}

func (sp *Spec) buildInto(s *widget.Store, id widget.ID, b *databind.Binder) error {
	if err := sp.Apply(s, id); err != nil {
		return err
	}
	for _, c := range sp.Children {
		if _, err := c.build(s, id, -1, b); err != nil {
			return err
		}
	}
	if len(sp.Items) == 0 || b == nil {
		return nil
	}
	tr := databind.NewTree()
	if err := addItems(tr, tr.Root(), sp.Items); err != nil {
		return err
	}
	b.Bind(id, tr)
	return nil
}

func addItems(tr *databind.Tree, parent databind.NodeID, items []*Item) error {
	for _, it := range items {
		id, err := tr.Add(parent, it.Text)
		if err != nil {
			return err
		}
		if it.Row != "" || it.Col != "" {
			if err := tr.SetHeaders(id, it.Row, it.Col); err != nil {
				return err
			}
		}
		if it.Selected {
			if err := tr.SetState(id, true, databind.Selected); err != nil {
				return err
			}
		}
		if it.Collapsed {
			if err := tr.SetState(id, true, databind.Collapsed); err != nil {
				return err
			}
		}
		if err := addItems(tr, id, it.Children); err != nil {
			return err
		}
	}
	return nil
}
