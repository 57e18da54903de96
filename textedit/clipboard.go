// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textedit

import "sync"

// Clipboard is the system clipboard, reduced to plain text.
type Clipboard interface {
	Read() (string, error)
	Write(s string) error
}

// Memory is an in-process [Clipboard].
type Memory struct {
	mu sync.Mutex
	s  string
}

func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, nil
}

func (m *Memory) Write(s string) error {
	m.mu.Lock()
	m.s = s
	m.mu.Unlock()
	return nil
}
