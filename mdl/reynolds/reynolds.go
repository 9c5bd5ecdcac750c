// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package reynolds implements the Reynolds number and the flow regime of fluids
package reynolds

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/lpozo/lubricalc/out"
	"github.com/lpozo/lubricalc/vld"
)

// Flow defines the flow regime
type Flow int

// flow regimes
const (
	Laminar Flow = iota
	Mixed
	Turbulent
)

// limits of flow regimes
const (
	LaminarMax   = 2000.0 // Re ≤ LaminarMax  ⇒ laminar
	TurbulentMin = 4000.0 // Re ≥ TurbulentMin ⇒ turbulent
)

// String returns the name of the regime
func (o Flow) String() string {
	switch o {
	case Laminar:
		return "laminar"
	case Mixed:
		return "mixed"
	case Turbulent:
		return "turbulent"
	}
	return "unknown"
}

// Model computes the Reynolds number (Re) of a flow
//
//          V ⋅ Lc
//    Re = --------
//            ν
//
//  where:
//    V  -- mean velocity [m/s]
//    Lc -- characteristic length [m]. circular section: Lc = D;
//          square section: Lc = L; rectangular section: Lc = 2⋅a⋅b/(a+b)
//    ν  -- kinematic viscosity [m²/s]
type Model struct {
	V  float64 // velocity
	Lc float64 // characteristic length
	ν  float64 // kinematic viscosity
}

// Init initialises model
func (o *Model) Init(prms dbf.Params) (err error) {
	var V, Lc, ν float64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "v":
			err = vld.Set(&V, "Velocity", p.V, vld.Positive)
		case "lc":
			err = vld.Set(&Lc, "Length", p.V, vld.Positive)
		case "nu":
			err = vld.Set(&ν, "Viscosity", p.V, vld.Positive)
		default:
			return chk.Err("reynolds: parameter named %q is incorrect\n", p.N)
		}
		if err != nil {
			return
		}
	}
	if V == 0 || Lc == 0 || ν == 0 {
		return chk.Err("reynolds: parameters \"V\", \"Lc\" and \"nu\" are required\n")
	}
	o.V, o.Lc, o.ν = V, Lc, ν
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "V", V: 15},       // [m/s]
			&dbf.P{N: "Lc", V: 0.01},    // [m]
			&dbf.P{N: "nu", V: 0.00015}, // [m²/s]
		}
	}
	return dbf.Params{
		&dbf.P{N: "V", V: o.V},
		&dbf.P{N: "Lc", V: o.Lc},
		&dbf.P{N: "nu", V: o.ν},
	}
}

// Viscosity returns the last validated kinematic viscosity
func (o Model) Viscosity() float64 {
	return o.ν
}

// Re computes the Reynolds number with the current (validated) data
func (o Model) Re() float64 {
	return out.Round(o.V*o.Lc/o.ν, 1)
}

// Regime returns the flow regime corresponding to the Reynolds number
func (o Model) Regime() Flow {
	return Classify(o.Re())
}

// Number validates the operands and computes the Reynolds number rounded to 1 decimal place
func (o *Model) Number(velocity, length, viscosity float64) (float64, error) {
	if err := vld.Set(&o.ν, "Viscosity", viscosity, vld.Positive); err != nil {
		return 0, err
	}
	if err := vld.Set(&o.V, "Velocity", velocity, vld.Positive); err != nil {
		return 0, err
	}
	if err := vld.Set(&o.Lc, "Length", length, vld.Positive); err != nil {
		return 0, err
	}
	return o.Re(), nil
}

// FlowType computes the Reynolds number and returns the flow regime
func (o *Model) FlowType(velocity, length, viscosity float64) (Flow, error) {
	re, err := o.Number(velocity, length, viscosity)
	if err != nil {
		return Laminar, err
	}
	return Classify(re), nil
}

// Classify returns the flow regime of a given Reynolds number
func Classify(re float64) Flow {
	if re <= LaminarMax {
		return Laminar
	}
	if re >= TurbulentMin {
		return Turbulent
	}
	return Mixed
}
