// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// StringToValue converts a string to a value representation.
// A bare number is taken as px.
func StringToValue(str string) (Value, error) {
	vals, err := ParseValues(str)
	if err != nil {
		return Value{}, err
	}
	if len(vals) != 1 {
		return Value{}, fmt.Errorf("units: expected one value in %q, got %d", str, len(vals))
	}
	return vals[0], nil
}

// ParseValues parses a whitespace separated list of length values,
// as used in shorthand properties like margin and padding.
func ParseValues(str string) ([]Value, error) {
	var vals []Value
	l := css.NewLexer(parse.NewInputString(str))
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return vals, nil
		case css.WhitespaceToken:
			continue
		case css.NumberToken:
			f, err := strconv.ParseFloat(string(data), 32)
			if err != nil {
				return nil, err
			}
			vals = append(vals, Px(float32(f)))
		case css.PercentageToken:
			f, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 32)
			if err != nil {
				return nil, err
			}
			vals = append(vals, Pct(float32(f)))
		case css.DimensionToken:
			v, err := parseDimension(string(data))
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		default:
			return nil, fmt.Errorf("units: unexpected token %q in %q", data, str)
		}
	}
}

// parseDimension parses a number followed by a unit name, such as 12pt.
func parseDimension(s string) (Value, error) {
	i := 0
	for i < len(s) {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			i++
			continue
		}
		if (c == 'e' || c == 'E') && i+1 < len(s) && (s[i+1] >= '0' && s[i+1] <= '9' || s[i+1] == '-' || s[i+1] == '+') {
			i++
			continue
		}
		break
	}
	f, err := strconv.ParseFloat(s[:i], 32)
	if err != nil {
		return Value{}, fmt.Errorf("units: invalid number in %q: %w", s, err)
	}
	name := strings.ToLower(s[i:])
	for u, un := range UnitNames {
		if un == name {
			return New(float32(f), Units(u)), nil
		}
	}
	return Value{}, fmt.Errorf("units: unknown unit %q in %q", name, s)
}
