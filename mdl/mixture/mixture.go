// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mixture implements the viscosity of blends of two base oils
package mixture

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/lpozo/lubricalc/out"
	"github.com/lpozo/lubricalc/vld"
)

// MinViscosity is the lowest admissible viscosity of components [cSt]
const MinViscosity = 2.0

// temperatures holds the keys of the mixing constants in display order
var temperatures = []string{"100", "40", "-5"}

// constants holds the mixing constant K for each temperature [°C]
var constants = map[string]float64{
	"100": 1.8,
	"40":  4.1,
	"-5":  1.9,
}

// bounds
var (
	component = vld.Bound{Limit: MinViscosity, Kind: vld.TooLowViscosity}
	percent   = vld.NonNegative
)

// Temperatures returns the temperatures with known mixing constants
func Temperatures() []string {
	return append([]string{}, temperatures...)
}

// Constant returns the mixing constant K for a given temperature key
func Constant(temperature string) (float64, error) {
	K, ok := constants[strings.TrimSpace(temperature)]
	if !ok {
		return 0, vld.Errorf(vld.Lookup, "Temperature", "temperature %q is not available. options are %q", temperature, temperatures)
	}
	return K, nil
}

// Model holds the viscosities [cSt] of two base oils and their mixture
//
//  Mixing law with x0 = P0/100:
//
//    ln(KVm + K) = ln(KV1 + K) ⋅ (ln(KV0 + K) / ln(KV1 + K))^x0
//
//  where K is a constant depending on the temperature of the viscosities
type Model struct {
	KV0 float64 // viscosity of first oil
	KV1 float64 // viscosity of second oil
	KVm float64 // viscosity of mixture
	P0  float64 // percentage of first oil in mixture
}

// Init initialises model. Parameters are "kv0", "kv1", "kvm" and "p0"
func (o *Model) Init(prms dbf.Params) (err error) {
	var kv0, kv1, kvm, p0 float64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "kv0":
			err = vld.Set(&kv0, "Viscosity of 1st. Oil", p.V, component)
		case "kv1":
			err = vld.Set(&kv1, "Viscosity of 2nd. Oil", p.V, component)
		case "kvm":
			err = vld.Set(&kvm, "Mixture Viscosity", p.V, component)
		case "p0":
			err = setPercent(&p0, p.V)
		default:
			return chk.Err("mixture: parameter named %q is incorrect\n", p.N)
		}
		if err != nil {
			return
		}
	}
	o.KV0, o.KV1, o.KVm, o.P0 = kv0, kv1, kvm, p0
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "kv0", V: 680},  // [cSt]
			&dbf.P{N: "kv1", V: 220},  // [cSt]
			&dbf.P{N: "kvm", V: 460},  // [cSt]
			&dbf.P{N: "p0", V: 67.32}, // [%]
		}
	}
	return dbf.Params{
		&dbf.P{N: "kv0", V: o.KV0},
		&dbf.P{N: "kv1", V: o.KV1},
		&dbf.P{N: "kvm", V: o.KVm},
		&dbf.P{N: "p0", V: o.P0},
	}
}

// Viscosity computes the viscosity of a mixture of two oils rounded to 2 decimal places
//  Input:
//   kv0         -- viscosity of first oil
//   kv1         -- viscosity of second oil
//   oil0Percent -- percentage of first oil in mixture
//   temperature -- "100", "40" or "-5"
func (o *Model) Viscosity(kv0, kv1, oil0Percent float64, temperature string) (float64, error) {
	K, err := Constant(temperature)
	if err != nil {
		return 0, err
	}
	if err = o.setComponents(kv0, kv1); err != nil {
		return 0, err
	}
	if err = setPercent(&o.P0, oil0Percent); err != nil {
		return 0, err
	}
	x0 := o.P0 / 100.0
	a := math.Log(o.KV1 + K)
	b := math.Log(o.KV0 + K)
	o.KVm = out.Round(math.Exp(a*math.Exp(x0*math.Log(b/a)))-K, 2)
	return o.KVm, nil
}

// Proportions computes the percentages of two oils to obtain a mixture with given viscosity
//  Input:
//   kv0         -- viscosity of first oil
//   kv1         -- viscosity of second oil
//   kvm         -- viscosity of mixture; strictly between kv0 and kv1
//   temperature -- "100", "40" or "-5"
//  Output:
//   p0 -- percentage of first oil
//   p1 -- percentage of second oil; p1 = 100 - p0
func (o *Model) Proportions(kv0, kv1, kvm float64, temperature string) (p0, p1 float64, err error) {
	K, err := Constant(temperature)
	if err != nil {
		return
	}
	if err = o.setComponents(kv0, kv1); err != nil {
		return
	}
	if err = vld.Set(&o.KVm, "Mixture Viscosity", kvm, component); err != nil {
		return
	}
	lo, hi := math.Min(o.KV0, o.KV1), math.Max(o.KV0, o.KV1)
	if o.KVm <= lo || o.KVm >= hi {
		return 0, 0, vld.Errorf(vld.Interval, "Mixture Viscosity", "Input value must be between %g and %g", lo, hi)
	}
	a := math.Log(o.KVm + K)
	b := math.Log(o.KV0 + K)
	c := math.Log(o.KV1 + K)
	x0 := 100.0 * math.Log(a/c) / math.Log(b/c)
	p0 = out.Round(x0, 2)
	p1 = out.Round(100.0-x0, 2)
	o.P0 = p0
	return
}

func (o *Model) setComponents(kv0, kv1 float64) error {
	if err := vld.Set(&o.KV0, "Viscosity of 1st. Oil", kv0, component); err != nil {
		return err
	}
	return vld.Set(&o.KV1, "Viscosity of 2nd. Oil", kv1, component)
}

func setPercent(dst *float64, value float64) error {
	v, err := vld.Check("Percentage of 1st. Oil", value, percent)
	if err != nil {
		return err
	}
	if v > 100 {
		return vld.Errorf(vld.Concept, "Percentage of 1st. Oil", "Input value must be lower than or equal to 100")
	}
	*dst = v
	return nil
}
