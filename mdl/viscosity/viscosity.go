// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package viscosity implements the viscosity index of oils by ASTM D2270 and its inverses
//  References:
//   [1] ASTM D2270-10 Standard Practice for Calculating Viscosity Index from Kinematic
//       Viscosity at 40 and 100°C
package viscosity

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/lpozo/lubricalc/out"
	"github.com/lpozo/lubricalc/vld"
)

// constants
const (
	MinViscosity = 2.0   // lowest kinematic viscosity covered by the ASTM D2270 table [cSt]
	MinIndex     = 0.0   // lowest admissible viscosity index
	MaxIndex     = 300.0 // highest admissible viscosity index
)

// search parameters
const (
	Step40   = 0.05   // increment of KV40 when searching for KV40
	Max40    = 2000.0 // upper bound of KV40 when searching for KV40
	Step100  = 0.01   // increment of KV100 when searching for KV100
	Start100 = 2.0    // starting KV100 when searching for KV100
	Max100   = 500.0  // upper bound of KV100 when searching for KV100
)

// names of quantities
const (
	Name40    = "Viscosity at 40°C"
	Name100   = "Viscosity at 100°C"
	NameIndex = "Viscosity Index"
)

// viscosity bound: ≥ 2 cSt
var table = vld.Bound{Limit: MinViscosity, Kind: vld.TooLowViscosity}

// Model holds kinematic viscosities [cSt] and viscosity index of an oil
type Model struct {
	KV40  float64 // kinematic viscosity at 40°C
	KV100 float64 // kinematic viscosity at 100°C
	VI    float64 // viscosity index
}

// Init initialises model. Parameters are "kv40", "kv100" and (optionally) "vi"
func (o *Model) Init(prms dbf.Params) (err error) {
	var kv40, kv100, vi float64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "kv40":
			err = vld.Set(&kv40, Name40, p.V, table)
		case "kv100":
			err = vld.Set(&kv100, Name100, p.V, table)
		case "vi":
			err = setIndex(&vi, p.V)
		default:
			return chk.Err("viscosity: parameter named %q is incorrect\n", p.N)
		}
		if err != nil {
			return
		}
	}
	if kv40 < kv100 {
		return inverted()
	}
	o.KV40, o.KV100, o.VI = kv40, kv100, vi
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "kv40", V: 22.83}, // [cSt]
			&dbf.P{N: "kv100", V: 5.05}, // [cSt]
			&dbf.P{N: "vi", V: 156},     // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "kv40", V: o.KV40},
		&dbf.P{N: "kv100", V: o.KV100},
		&dbf.P{N: "vi", V: o.VI},
	}
}

// Index computes the viscosity index by ASTM D2270
//  Input:
//   kv40  -- kinematic viscosity at 40°C [cSt]; must be ≥ kv100
//   kv100 -- kinematic viscosity at 100°C [cSt]
//  Note: both viscosities must be ≥ 2 cSt and the result must lie within [0, 300]
func (o *Model) Index(kv40, kv100 float64) (vi int, err error) {
	if err = vld.Set(&o.KV40, Name40, kv40, table); err != nil {
		return
	}
	if err = vld.Set(&o.KV100, Name100, kv100, table); err != nil {
		return
	}
	if o.KV100 > o.KV40 {
		return 0, inverted()
	}
	vi = rawIndex(o.KV40, o.KV100)
	if err = checkIndex(float64(vi)); err != nil {
		return 0, err
	}
	o.VI = float64(vi)
	return
}

// At40 computes the kinematic viscosity at 40°C of an oil with given viscosity at
// 100°C and viscosity index. KV40 is increased from kv100 in steps of 0.05 cSt until
// the index falls below the target
func (o *Model) At40(kv100, index float64) (kv40 float64, err error) {
	if err = vld.Set(&o.KV100, Name100, kv100, table); err != nil {
		return
	}
	if err = setIndex(&o.VI, index); err != nil {
		return
	}
	n := o.KV100
	vi := o.VI
	for vi >= o.VI && n <= Max40 {
		vi = float64(rawIndex(n, o.KV100))
		n += Step40
	}
	if vi >= o.VI {
		return 0, vld.Errorf(vld.NoConvergence, Name40, "cannot find a viscosity up to %g cSt with index %g", Max40, o.VI)
	}
	o.KV40 = out.Round(n, 2)
	return o.KV40, nil
}

// At100 computes the kinematic viscosity at 100°C of an oil with given viscosity at
// 40°C and viscosity index. KV100 is increased from 2 cSt in steps of 0.01 cSt until
// the index exceeds the target
func (o *Model) At100(kv40, index float64) (kv100 float64, err error) {
	if err = vld.Set(&o.KV40, Name40, kv40, table); err != nil {
		return
	}
	if err = setIndex(&o.VI, index); err != nil {
		return
	}
	n := Start100
	vi := o.VI
	for vi <= o.VI && n <= Max100 {
		vi = float64(rawIndex(o.KV40, n))
		n += Step100
	}
	if vi <= o.VI {
		return 0, vld.Errorf(vld.NoConvergence, Name100, "cannot find a viscosity up to %g cSt with index %g", Max100, o.VI)
	}
	o.KV100 = out.Round(n, 2)
	return o.KV100, nil
}

// setIndex validates and sets a target viscosity index
func setIndex(dst *float64, index float64) error {
	vi, err := vld.Check(NameIndex, index, vld.Positive)
	if err != nil {
		return err
	}
	if err = checkIndex(vi); err != nil {
		return err
	}
	*dst = vi
	return nil
}

// checkIndex checks that vi lies within [MinIndex, MaxIndex]
func checkIndex(vi float64) error {
	if vi < MinIndex || vi > MaxIndex {
		return vld.Errorf(vld.Concept, NameIndex, "not defined")
	}
	return nil
}

func inverted() error {
	return vld.Errorf(vld.InvertedViscosity, "", "%s must be greater than %s", Name40, Name100)
}
