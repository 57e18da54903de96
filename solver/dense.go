// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Limits bound the allocations of a [Dense] solver; zero is unlimited.
type Limits struct {
	MaxVariables   int
	MaxConstraints int
}

// Dense is a small reference [Solver] for layouts of modest size.
// Equalities are accepted strongest first into a reduced row echelon
// system; one that conflicts with the stronger ones already accepted
// is dropped. Violated inequalities are then promoted to equalities
// at their own priority, strongest first, until all hold or the
// remaining ones conflict with stronger constraints.
// Variables that no constraint determines solve to zero.
type Dense struct {
	Limits Limits

	nvars   int
	cons    []*Constraint
	suggest map[Variable]suggestion
	values  []float64
}

type suggestion struct {
	value, priority float64
	order           int
}

// NewDense returns a new dense solver with the given limits.
func NewDense(lim Limits) *Dense {
	return &Dense{Limits: lim}
}

const epsilon = 1e-7

func (d *Dense) NewVariable() (Variable, error) {
	if d.Limits.MaxVariables > 0 && d.nvars >= d.Limits.MaxVariables {
		return NoVariable, fmt.Errorf("%w: variable limit %d reached", ErrOutOfMemory, d.Limits.MaxVariables)
	}
	v := Variable(d.nvars)
	d.nvars++
	return v, nil
}

func (d *Dense) NewConstraint(priority float64) (*Constraint, error) {
	if d.Limits.MaxConstraints > 0 && len(d.cons)+len(d.suggest) >= d.Limits.MaxConstraints {
		return nil, fmt.Errorf("%w: constraint limit %d reached", ErrOutOfMemory, d.Limits.MaxConstraints)
	}
	return &Constraint{Priority: priority}, nil
}

func (d *Dense) Add(c *Constraint) error {
	if c == nil {
		return nil
	}
	for _, t := range c.Terms {
		if t.Var < 0 || int(t.Var) >= d.nvars {
			return fmt.Errorf("solver: constraint %v uses unknown variable %d", c, t.Var)
		}
	}
	if d.Limits.MaxConstraints > 0 && len(d.cons)+len(d.suggest) >= d.Limits.MaxConstraints {
		return fmt.Errorf("%w: constraint limit %d reached", ErrOutOfMemory, d.Limits.MaxConstraints)
	}
	d.cons = append(d.cons, c)
	return nil
}

func (d *Dense) Suggest(v Variable, value, priority float64) error {
	if v < 0 || int(v) >= d.nvars {
		return fmt.Errorf("solver: suggestion for unknown variable %d", v)
	}
	if d.suggest == nil {
		d.suggest = make(map[Variable]suggestion)
	}
	s, has := d.suggest[v]
	if !has {
		s.order = len(d.cons) + len(d.suggest)
	}
	s.value, s.priority = value, priority
	d.suggest[v] = s
	return nil
}

func (d *Dense) Value(v Variable) float32 {
	if v < 0 || int(v) >= len(d.values) {
		return 0
	}
	return float32(d.values[v])
}

func (d *Dense) Reset() {
	d.nvars = 0
	d.cons = nil
	d.suggest = nil
	d.values = nil
}

// equation is sum(coeffs[i] * x[i]) == rhs.
type equation struct {
	coeffs   []float64
	rhs      float64
	priority float64
	order    int
}

func (d *Dense) equation(c *Constraint, order int) equation {
	eq := equation{coeffs: make([]float64, d.nvars), rhs: -c.Constant, priority: c.Priority, order: order}
	for _, t := range c.Terms {
		eq.coeffs[t.Var] += t.Coeff
	}
	return eq
}

func (d *Dense) Solve() error {
	var eqs []equation
	var ineqs []int
	for i, c := range d.cons {
		if c.Relation == EQ {
			eqs = append(eqs, d.equation(c, i))
		} else {
			ineqs = append(ineqs, i)
		}
	}
	for v, s := range d.suggest {
		eq := equation{coeffs: make([]float64, d.nvars), rhs: s.value, priority: s.priority, order: s.order}
		eq.coeffs[v] = 1
		eqs = append(eqs, eq)
	}
	slices.SortStableFunc(ineqs, func(a, b int) int {
		return cmp.Compare(d.cons[b].Priority, d.cons[a].Priority)
	})
	promoted := make(map[int]bool)
	for {
		x := eliminate(eqs, d.nvars)
		value := func(v Variable) float64 { return x[v] }
		violated := -1
		for _, ci := range ineqs {
			if promoted[ci] {
				continue
			}
			c := d.cons[ci]
			e := c.Eval(value)
			if (c.Relation == LE && e > epsilon) || (c.Relation == GE && e < -epsilon) {
				violated = ci
				break
			}
		}
		if violated < 0 {
			d.values = x
			return nil
		}
		promoted[violated] = true
		eqs = append(eqs, d.equation(d.cons[violated], violated))
	}
}

// eliminate accepts the equations strongest first (ties in insertion order)
// into a reduced row echelon system, dropping conflicting ones,
// and returns the solution with undetermined variables at zero.
func eliminate(eqs []equation, nvars int) []float64 {
	order := slices.Clone(eqs)
	slices.SortStableFunc(order, func(a, b equation) int {
		if c := cmp.Compare(b.priority, a.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
	type row struct {
		coeffs []float64
		rhs    float64
		pivot  int
	}
	var rows []row
	for _, eq := range order {
		v := slices.Clone(eq.coeffs)
		r := eq.rhs
		for _, rw := range rows {
			if f := v[rw.pivot]; f != 0 {
				for j := range v {
					v[j] -= f * rw.coeffs[j]
				}
				r -= f * rw.rhs
			}
		}
		p, pmax := -1, epsilon
		for j, c := range v {
			if a := math.Abs(c); a > pmax {
				p, pmax = j, a
			}
		}
		if p < 0 {
			continue // redundant or conflicting with stronger equations
		}
		f := v[p]
		for j := range v {
			v[j] /= f
		}
		r /= f
		for i := range rows {
			if g := rows[i].coeffs[p]; g != 0 {
				for j := range v {
					rows[i].coeffs[j] -= g * v[j]
				}
				rows[i].rhs -= g * r
			}
		}
		rows = append(rows, row{v, r, p})
	}
	x := make([]float64, nvars)
	for _, rw := range rows {
		x[rw.pivot] = rw.rhs
	}
	return x
}
