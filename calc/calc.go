// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package calc implements calculators taking raw text inputs; e.g. from forms of a front end
package calc

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/lpozo/lubricalc/out"
	"github.com/lpozo/lubricalc/vld"
)

// Input describes one input field of a calculator
type Input struct {
	Key     string   // key in map of inputs; e.g. "v40"
	Label   string   // label; e.g. "Kinematic Viscosity at 40°C (cSt)"
	Options []string // labels of options if the input is a selection; input is then a zero-based index or an option
	Default string   // value used when the input is missing or blank. empty means required
}

// Calculator performs one calculation
type Calculator interface {
	Name() string                                            // name of calculator; e.g. "viscosity-index"
	Inputs() []*Input                                        // description of inputs
	Calculate(inputs map[string]string) (out.Results, error) // validates inputs and computes results
}

// calculator implements Calculator with a function over parsed arguments
type calculator struct {
	name   string
	inputs []*Input
	run    func(a *args) (out.Results, error)
}

// Name returns the name of calculator
func (o *calculator) Name() string { return o.name }

// Inputs returns the description of inputs
func (o *calculator) Inputs() []*Input { return o.inputs }

// Calculate validates inputs and computes results
func (o *calculator) Calculate(inputs map[string]string) (out.Results, error) {
	return o.run(&args{calc: o, raw: inputs})
}

// input returns the description of an input
func (o *calculator) input(key string) *Input {
	for _, in := range o.inputs {
		if in.Key == key {
			return in
		}
	}
	chk.Panic("calculator %q has no input named %q", o.name, key)
	return nil
}

// args gives access to raw inputs
type args struct {
	calc *calculator
	raw  map[string]string
}

// text returns the raw input or its default if missing or blank
func (o *args) text(key string) string {
	s := strings.TrimSpace(o.raw[key])
	if s == "" {
		return o.calc.input(key).Default
	}
	return s
}

// float parses a number
func (o *args) float(key string) (float64, error) {
	return vld.ParseFloat(label(o.calc.input(key)), o.text(key))
}

// index parses a selection given either as zero-based index or as the label of an option
func (o *args) index(key string) (int, error) {
	in := o.calc.input(key)
	s := o.text(key)
	for i, opt := range in.Options {
		if strings.EqualFold(s, opt) {
			return i, nil
		}
	}
	return vld.ParseIndex(label(in), s)
}

// choice returns the selected option, given either as index or as the option itself
func (o *args) choice(key string) (string, error) {
	in := o.calc.input(key)
	s := o.text(key)
	for _, opt := range in.Options {
		if s == opt {
			return opt, nil
		}
	}
	i, err := vld.ParseIndex(label(in), s)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(in.Options) {
		return "", vld.Errorf(vld.Lookup, label(in), "option %q is not available. options are %q", s, in.Options)
	}
	return in.Options[i], nil
}

// label returns the label of an input without units
func label(in *Input) string {
	if i := strings.Index(in.Label, " ("); i > 0 {
		return in.Label[:i]
	}
	return in.Label
}
