// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver defines the contract of the linear constraint solver
// used by box layout: variables, prioritized linear constraints,
// suggested values, and a fallible Solve.
package solver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfMemory is returned when the solver cannot allocate
// another variable or constraint, or runs out of room while solving.
var ErrOutOfMemory = errors.New("solver: out of memory")

// Variable is a handle to a solver variable.
type Variable int32

// NoVariable is the zero handle that refers to no variable.
const NoVariable Variable = -1

// Priority bands, from weakest to strongest. Constraints of a
// stronger band always win over any number of weaker ones.
const (
	Weak     = 1.0
	Medium   = 1e3
	Strong   = 1e6
	Required = 1e9
)

// Layout bands layered on the priority bands: explicit sizing
// always beats proportional distribution, and containment always wins.
const (
	Dynamic = Weak
	User    = Medium
	System  = Strong
)

// Relations are the relations between a constraint expression and zero.
type Relations int32

const (
	// EQ is expression == 0
	EQ Relations = iota

	// LE is expression <= 0
	LE

	// GE is expression >= 0
	GE
)

// String returns the relation operator.
func (r Relations) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	}
	return "=="
}

// Term is one coefficient times variable term of an expression.
type Term struct {
	Var   Variable
	Coeff float64
}

// Constraint is the linear constraint:
//
//	sum(Terms) + Constant  Relation  0
//
// at the given Priority. It is built with [Constraint.AddTerm],
// [Constraint.SetRelation] and [Constraint.AddConstant],
// then added to a solver with [Solver.Add].
type Constraint struct {
	Terms    []Term
	Constant float64
	Relation Relations
	Priority float64
}

// AddTerm adds coeff*v to the expression.
func (c *Constraint) AddTerm(v Variable, coeff float64) *Constraint {
	c.Terms = append(c.Terms, Term{v, coeff})
	return c
}

// SetRelation sets the relation of the expression to zero.
func (c *Constraint) SetRelation(r Relations) *Constraint {
	c.Relation = r
	return c
}

// AddConstant adds k to the constant of the expression.
func (c *Constraint) AddConstant(k float64) *Constraint {
	c.Constant += k
	return c
}

// Eval returns the value of the expression for the given variable values.
func (c *Constraint) Eval(value func(Variable) float64) float64 {
	sum := c.Constant
	for _, t := range c.Terms {
		sum += t.Coeff * value(t.Var)
	}
	return sum
}

// String implements the fmt.Stringer interface.
func (c *Constraint) String() string {
	var b strings.Builder
	for i, t := range c.Terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%g*v%d", t.Coeff, t.Var)
	}
	fmt.Fprintf(&b, " + %g %v 0 @%g", c.Constant, c.Relation, c.Priority)
	return b.String()
}

// Solver is a prioritized linear constraint solver.
// One solver is used per window; it is not safe for concurrent use.
type Solver interface {

	// NewVariable allocates a new variable.
	NewVariable() (Variable, error)

	// NewConstraint allocates a new, empty constraint at the given priority.
	// It is not in effect until passed to Add.
	NewConstraint(priority float64) (*Constraint, error)

	// Add puts the constraint into effect.
	Add(c *Constraint) error

	// Suggest requests that v take the given value, at the given priority.
	// A new suggestion for the same variable replaces the previous one.
	Suggest(v Variable, value, priority float64) error

	// Solve computes the values of all variables.
	Solve() error

	// Value returns the solved value of v.
	Value(v Variable) float32

	// Reset removes all variables, constraints and suggestions.
	Reset()
}
