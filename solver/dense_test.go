// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eq(t *testing.T, s Solver, prio float64, k float64, terms ...Term) {
	c, err := s.NewConstraint(prio)
	require.NoError(t, err)
	for _, tm := range terms {
		c.AddTerm(tm.Var, tm.Coeff)
	}
	c.AddConstant(k)
	require.NoError(t, s.Add(c))
}

func TestDenseStrongerWins(t *testing.T) {
	s := NewDense(Limits{})
	a, _ := s.NewVariable()
	b, _ := s.NewVariable()
	require.NoError(t, s.Suggest(a, 400, Required))
	// b = a/2 weakly, b = 100 at user priority
	eq(t, s, Dynamic, 0, Term{b, 1}, Term{a, -0.5})
	eq(t, s, User, -100, Term{b, 1})
	require.NoError(t, s.Solve())
	assert.Equal(t, float32(400), s.Value(a))
	assert.Equal(t, float32(100), s.Value(b))
}

func TestDenseInequality(t *testing.T) {
	s := NewDense(Limits{})
	a, _ := s.NewVariable()
	b, _ := s.NewVariable()
	require.NoError(t, s.Suggest(a, 10, Required))
	eq(t, s, Dynamic, 0, Term{b, 1}, Term{a, -0.5})
	c, _ := s.NewConstraint(System)
	c.AddTerm(b, 1).AddConstant(-30).SetRelation(GE)
	require.NoError(t, s.Add(c))
	require.NoError(t, s.Solve())
	assert.Equal(t, float32(30), s.Value(b))

	require.NoError(t, s.Suggest(a, 100, Required))
	require.NoError(t, s.Solve())
	assert.Equal(t, float32(50), s.Value(b))
}

func TestDenseLimits(t *testing.T) {
	s := NewDense(Limits{MaxVariables: 1, MaxConstraints: 1})
	_, err := s.NewVariable()
	require.NoError(t, err)
	_, err = s.NewVariable()
	assert.ErrorIs(t, err, ErrOutOfMemory)

	eq(t, s, Weak, 1, Term{0, 1})
	_, err = s.NewConstraint(Weak)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	s.Reset()
	v, err := s.NewVariable()
	require.NoError(t, err)
	assert.Equal(t, Variable(0), v)
	assert.Equal(t, float32(0), s.Value(5))
}

func TestConstraintString(t *testing.T) {
	c := &Constraint{Priority: Weak}
	c.AddTerm(1, 2).AddConstant(-3).SetRelation(LE)
	assert.Equal(t, "2*v1 + -3 <= 0 @1", c.String())
}
