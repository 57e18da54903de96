// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings has the engine settings, stored as TOML.
package settings

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Duration is a [time.Duration] stored as a string such as "300ms".
type Duration time.Duration

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Settings are the sizes, timings and limits of the engine.
type Settings struct {

	// ScrollBarWidth is the thickness of scrollbars and the minimum thumb size.
	ScrollBarWidth float32 `toml:"scroll_bar_width"`

	// ScrollStep is the scroll amount of an end button, arrow key or wheel notch.
	ScrollStep float32 `toml:"scroll_step"`

	// SplitterWidth is the thickness of splitter bars.
	SplitterWidth float32 `toml:"splitter_width"`

	// TabStripHeight is the height of the tab strip of a tabs widget.
	TabStripHeight float32 `toml:"tab_strip_height"`

	// Indent is the per-level indent of tree rows.
	Indent float32 `toml:"indent"`

	// Gap is the default gap between children of a box layout.
	Gap float32 `toml:"gap"`

	FontSize float32 `toml:"font_size"`

	// LineHeight is the root line height; zero derives it from the font size.
	LineHeight float32 `toml:"line_height"`

	RepeatDelay    Duration `toml:"repeat_delay"`
	RepeatInterval Duration `toml:"repeat_interval"`
	BlinkInterval  Duration `toml:"blink_interval"`

	// PriorityDecay scales constraint priorities per nesting level.
	PriorityDecay float64 `toml:"priority_decay"`

	// MaxVariables and MaxConstraints limit the solver; zero is unlimited.
	MaxVariables   int `toml:"max_variables"`
	MaxConstraints int `toml:"max_constraints"`

	// LogLevel is one of debug, info, warn and error.
	LogLevel string `toml:"log_level"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		ScrollBarWidth: 10,
		ScrollStep:     20,
		SplitterWidth:  6,
		TabStripHeight: 24,
		Indent:         16,
		FontSize:       16,
		RepeatDelay:    Duration(300 * time.Millisecond),
		RepeatInterval: Duration(50 * time.Millisecond),
		BlinkInterval:  Duration(500 * time.Millisecond),
		PriorityDecay:  0.9,
		LogLevel:       "info",
	}
}

// Open reads settings from a TOML file. Fields missing from the file
// keep their defaults.
func Open(filename string) (*Settings, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse parses settings from TOML. Fields missing keep their defaults.
func Parse(b []byte) (*Settings, error) {
	s := Default()
	if err := toml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return s, nil
}

// Save writes the settings to a TOML file.
func (s *Settings) Save(filename string) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
