// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bearing implements re-lubrication calculations of rolling bearings
package bearing

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/lpozo/lubricalc/out"
	"github.com/lpozo/lubricalc/vld"
)

// names of quantities
const (
	NameOuter = "Outer Diameter"
	NameInner = "Inner Diameter"
	NameWidth = "Width"
	NameRpm   = "Rotation Velocity"
)

// Bearing holds the geometry [mm] and rotation velocity [rpm] of a rolling bearing
type Bearing struct {
	D float64 // outer diameter
	d float64 // inner diameter
	B float64 // total width
	n float64 // rotation velocity
}

// Init initialises bearing. Parameters are "D", "d", "B" and "n"; names are case-sensitive
func (o *Bearing) Init(prms dbf.Params) (err error) {
	var D, d, B, n float64
	for _, p := range prms {
		switch p.N {
		case "D":
			err = vld.Set(&D, NameOuter, p.V, vld.Positive)
		case "d":
			err = vld.Set(&d, NameInner, p.V, vld.Positive)
		case "B":
			err = vld.Set(&B, NameWidth, p.V, vld.Positive)
		case "n":
			err = vld.Set(&n, NameRpm, p.V, vld.Positive)
		default:
			return chk.Err("bearing: parameter named %q is incorrect\n", p.N)
		}
		if err != nil {
			return
		}
	}
	if D > 0 && d > 0 {
		if err = checkDiameters(D, d); err != nil {
			return
		}
	}
	o.D, o.d, o.B, o.n = D, d, B, n
	return
}

// GetPrms gets (an example) of parameters
func (o Bearing) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "D", V: 58},   // [mm]
			&dbf.P{N: "d", V: 45},   // [mm]
			&dbf.P{N: "B", V: 60},   // [mm]
			&dbf.P{N: "n", V: 3000}, // [rpm]
		}
	}
	return dbf.Params{
		&dbf.P{N: "D", V: o.D},
		&dbf.P{N: "d", V: o.d},
		&dbf.P{N: "B", V: o.B},
		&dbf.P{N: "n", V: o.n},
	}
}

// InnerDiameter returns the inner diameter
func (o Bearing) InnerDiameter() float64 { return o.d }

// Rpm returns the rotation velocity
func (o Bearing) Rpm() float64 { return o.n }

// GreaseAmount computes the amount of grease [g] needed for re-lubrication
//
//    Gg = 0.005 ⋅ D ⋅ B
//
//  Input:
//   outerDiameter -- D: outer diameter [mm]
//   width         -- B: total width [mm]
func (o *Bearing) GreaseAmount(outerDiameter, width float64) (float64, error) {
	if err := vld.Set(&o.D, NameOuter, outerDiameter, vld.Positive); err != nil {
		return 0, err
	}
	if err := vld.Set(&o.B, NameWidth, width, vld.Positive); err != nil {
		return 0, err
	}
	return out.Round(0.005*o.D*o.B, 2), nil
}

// Frequency computes the re-lubrication frequency [hours]
//
//                  14000000
//    T = K ⋅ ( ------------ - 4 ⋅ d )      with     K = Ft⋅Fc⋅Fh⋅Fv⋅Fp⋅Fd
//                n ⋅ √d
//
//  Input:
//   rpm           -- n: rotation velocity [rpm]
//   innerDiameter -- d: inner diameter [mm]
//   factors       -- selected conditions of correction factors
func (o *Bearing) Frequency(rpm, innerDiameter float64, factors Factors) (int, error) {
	if err := vld.Set(&o.n, NameRpm, rpm, vld.Positive); err != nil {
		return 0, err
	}
	if err := vld.Set(&o.d, NameInner, innerDiameter, vld.Positive); err != nil {
		return 0, err
	}
	K, err := factors.K()
	if err != nil {
		return 0, err
	}
	T := K * (14000000/(o.n*math.Sqrt(o.d)) - 4*o.d)
	return out.RoundInt(T), nil
}

// VelocityFactor computes the velocity factor [mm/min]
//
//    A = n ⋅ dm     with     dm = (D + d) / 2
//
//  Input:
//   outerDiameter -- D: outer diameter [mm]
//   innerDiameter -- d: inner diameter [mm]; must be lower than D
//   rpm           -- n: rotation velocity [rpm]
func (o *Bearing) VelocityFactor(outerDiameter, innerDiameter, rpm float64) (float64, error) {
	if err := vld.Set(&o.D, NameOuter, outerDiameter, vld.Positive); err != nil {
		return 0, err
	}
	if err := vld.Set(&o.d, NameInner, innerDiameter, vld.Positive); err != nil {
		return 0, err
	}
	if err := checkDiameters(o.D, o.d); err != nil {
		return 0, err
	}
	if err := vld.Set(&o.n, NameRpm, rpm, vld.Positive); err != nil {
		return 0, err
	}
	return float64(out.RoundInt(o.n * (o.D + o.d) / 2)), nil
}

// SpeedFactor is an alias of VelocityFactor
func (o *Bearing) SpeedFactor(outerDiameter, innerDiameter, rpm float64) (float64, error) {
	return o.VelocityFactor(outerDiameter, innerDiameter, rpm)
}

func checkDiameters(D, d float64) error {
	if d >= D {
		return vld.Errorf(vld.Concept, "", "%s must be lower than %s", NameInner, NameOuter)
	}
	return nil
}

// ParseFactor returns the factor with given name; e.g. "ft", "Humidity"
func ParseFactor(name string) (Factor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ft", "temperature":
		return Temperature, nil
	case "fc", "contamination":
		return Contamination, nil
	case "fh", "humidity":
		return Humidity, nil
	case "fv", "vibration":
		return Vibration, nil
	case "fp", "position":
		return Position, nil
	case "fd", "design", "bearing design":
		return Design, nil
	}
	return 0, vld.Errorf(vld.Lookup, "Factor", "factor %q is not available", name)
}
