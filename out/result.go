// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"
)

// Result holds one computed quantity ready for display
type Result struct {
	Label string  // name of quantity; e.g. "Viscosity Index"
	Value float64 // computed value
	Unit  string  // unit; e.g. "cSt". may be empty
	Text  string  // textual value replacing Value; e.g. "laminar"
}

// Results holds all quantities computed by one calculation
type Results []*Result

// Num returns a new numeric result
func Num(label string, value float64, unit string) *Result {
	return &Result{Label: label, Value: value, Unit: unit}
}

// Txt returns a new textual result
func Txt(label, text string) *Result {
	return &Result{Label: label, Text: text}
}

// Formatted returns the value as text, without exponent and with the fewest digits
func (o *Result) Formatted() string {
	if o.Text != "" {
		return o.Text
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

// String returns "label = value unit"
func (o *Result) String() string {
	if o.Unit == "" {
		return io.Sf("%s = %s", o.Label, o.Formatted())
	}
	return io.Sf("%s = %s %s", o.Label, o.Formatted(), o.Unit)
}

// String returns one line per result
func (o Results) String() string {
	lines := make([]string, len(o))
	for i, r := range o {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// Values returns the numeric values
func (o Results) Values() []float64 {
	v := make([]float64, len(o))
	for i, r := range o {
		v[i] = r.Value
	}
	return v
}
