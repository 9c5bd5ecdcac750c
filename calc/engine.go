// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/lpozo/lubricalc/out"
)

// Outcome holds the results or the error of one calculator
type Outcome struct {
	Results out.Results
	Err     error
}

// Engine runs several calculators over the same inputs
type Engine struct {
	calcs []Calculator
}

// NewEngine returns a new engine with the given calculators; e.g. NewEngine("viscosity-index", "viscosity-40")
func NewEngine(names ...string) (o *Engine, err error) {
	o = new(Engine)
	for _, name := range names {
		c, err := New(name)
		if err != nil {
			return nil, err
		}
		o.Register(c)
	}
	return
}

// Register adds a calculator. Calculators run in the order they are registered.
// It panics if a calculator with the same name is already registered
func (o *Engine) Register(c Calculator) {
	for _, existing := range o.calcs {
		if existing.Name() == c.Name() {
			chk.Panic("calc: calculator %q already registered", c.Name())
		}
	}
	o.calcs = append(o.calcs, c)
}

// Names returns the names of registered calculators in order
func (o *Engine) Names() (names []string) {
	for _, c := range o.calcs {
		names = append(names, c.Name())
	}
	return
}

// Run runs all registered calculators. Failing calculators do not stop the others
func (o *Engine) Run(inputs map[string]string) map[string]*Outcome {
	res := make(map[string]*Outcome, len(o.calcs))
	for _, c := range o.calcs {
		r, err := c.Calculate(inputs)
		res[c.Name()] = &Outcome{r, err}
	}
	return res
}
