// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vld implements the validation of physical quantities given as text or numbers
package vld

import (
	"math"
	"strconv"
	"strings"
)

// Bound defines a lower limit for a quantity
type Bound struct {
	Limit  float64 // lower limit
	Strict bool    // value must be greater than Limit instead of greater than or equal
	Kind   Kind    // kind of error reported on violation; Concept if zero
}

// Positive requires values > 0
var Positive = Bound{Limit: 0, Strict: true}

// NonNegative requires values ≥ 0
var NonNegative = Bound{Limit: 0, Strict: false}

// ParseFloat parses a decimal number given as text.
// Surrounding spaces are ignored and commas are taken as decimal separators.
func ParseFloat(name, raw string) (float64, error) {
	s := strings.Replace(strings.TrimSpace(raw), ",", ".", -1)
	if s == "" {
		return 0, Errorf(InvalidNumber, name, "Input value must be a valid number, not: null")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(v, 0) {
		return 0, Errorf(InvalidNumber, name, "Input value must be a valid number, not: %s", s)
	}
	return Float(name, v)
}

// Float checks that a number is finite
func Float(name string, value float64) (float64, error) {
	if math.IsNaN(value) {
		return 0, Errorf(InvalidNumber, name, "Input value must be a valid number, not: nan")
	}
	if math.IsInf(value, 0) {
		return 0, Errorf(InfiniteValue, name, "Input value must be a valid number, not: infinite")
	}
	return value, nil
}

// ParseIndex parses a zero-based option index given as text
func ParseIndex(name, raw string) (int, error) {
	v, err := ParseFloat(name, raw)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, Errorf(InvalidNumber, name, "Input value must be an integer index, not: %g", v)
	}
	return int(v), nil
}

// LowerLimit checks that value is greater than limit (strict) or greater than or equal to limit
func LowerLimit(name string, value, limit float64, strict bool) error {
	return Bound{Limit: limit, Strict: strict}.check(name, value)
}

// Check checks that value is finite and satisfies the bound
func Check(name string, value float64, b Bound) (float64, error) {
	v, err := Float(name, value)
	if err != nil {
		return 0, err
	}
	if err = b.check(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

// CheckText parses raw and checks the result against the bound
func CheckText(name, raw string, b Bound) (float64, error) {
	v, err := ParseFloat(name, raw)
	if err != nil {
		return 0, err
	}
	if err = b.check(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

// Set validates value and, only if valid, stores it in dst
func Set(dst *float64, name string, value float64, b Bound) error {
	v, err := Check(name, value, b)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// SetText parses and validates raw and, only if valid, stores the result in dst
func SetText(dst *float64, name, raw string, b Bound) error {
	v, err := CheckText(name, raw, b)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (o Bound) check(name string, value float64) error {
	kind := o.Kind
	if kind == 0 {
		kind = Concept
	}
	if o.Strict {
		if value <= o.Limit {
			return Errorf(kind, name, "Input value must be greater than %g", o.Limit)
		}
		return nil
	}
	if value < o.Limit {
		return Errorf(kind, name, "Input value must be greater than or equal to %g", o.Limit)
	}
	return nil
}
