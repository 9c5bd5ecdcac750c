// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/lpozo/lubricalc/mdl/bearing"
	"github.com/lpozo/lubricalc/mdl/blend"
	"github.com/lpozo/lubricalc/mdl/mixture"
	"github.com/lpozo/lubricalc/mdl/reynolds"
	"github.com/lpozo/lubricalc/mdl/viscosity"
	"github.com/lpozo/lubricalc/out"
)

// units
const (
	cSt      = "cSt"
	pct      = "%"
	pctMass  = "% by mass"
	grams    = "g"
	hours    = "hours"
	mmPerMin = "mm/min"
)

// catalog holds the allocators of all calculators in display order
var catalog = []func() *calculator{
	newReynolds,
	newFlowType,
	newViscosityIndex,
	newViscosity40,
	newViscosity100,
	newMixViscosity,
	newMixProportions,
	newAdditiveMass,
	newTotalAsh,
	newGreaseAmount,
	newRelubricationFrequency,
	newVelocityFactor,
}

// New returns a new calculator
func New(name string) (Calculator, error) {
	for _, allocator := range catalog {
		if c := allocator(); c.name == name {
			return c, nil
		}
	}
	return nil, chk.Err("calculator %q is not available in 'calc' database", name)
}

// Names returns the names of all calculators
func Names() (names []string) {
	for _, allocator := range catalog {
		names = append(names, allocator().name)
	}
	return
}

// All returns new instances of all calculators
func All() (calcs []Calculator) {
	for _, allocator := range catalog {
		calcs = append(calcs, allocator())
	}
	return
}

// reynolds ///////////////////////////////////////////////////////////////////////////////////////

func flowInputs() []*Input {
	return []*Input{
		{Key: "velocity", Label: "Velocity (m/s)"},
		{Key: "length", Label: "Characteristic Length (m)"},
		{Key: "viscosity", Label: "Kinematic Viscosity (m²/s)"},
	}
}

func flowOperands(a *args) (V, Lc, ν float64, err error) {
	if V, err = a.float("velocity"); err != nil {
		return
	}
	if Lc, err = a.float("length"); err != nil {
		return
	}
	ν, err = a.float("viscosity")
	return
}

func newReynolds() *calculator {
	return &calculator{"reynolds", flowInputs(), func(a *args) (out.Results, error) {
		V, Lc, ν, err := flowOperands(a)
		if err != nil {
			return nil, err
		}
		var m reynolds.Model
		re, err := m.Number(V, Lc, ν)
		if err != nil {
			return nil, err
		}
		return out.Results{out.Num("Reynolds Number", re, "")}, nil
	}}
}

func newFlowType() *calculator {
	return &calculator{"flow-type", flowInputs(), func(a *args) (out.Results, error) {
		V, Lc, ν, err := flowOperands(a)
		if err != nil {
			return nil, err
		}
		var m reynolds.Model
		flow, err := m.FlowType(V, Lc, ν)
		if err != nil {
			return nil, err
		}
		return out.Results{
			out.Num("Reynolds Number", m.Re(), ""),
			out.Txt("Flow Type", flow.String()),
		}, nil
	}}
}

// viscosity //////////////////////////////////////////////////////////////////////////////////////

func newViscosityIndex() *calculator {
	return &calculator{"viscosity-index", []*Input{
		{Key: "v40", Label: "Kinematic Viscosity at 40°C (cSt)"},
		{Key: "v100", Label: "Kinematic Viscosity at 100°C (cSt)"},
	}, func(a *args) (out.Results, error) {
		v40, err := a.float("v40")
		if err != nil {
			return nil, err
		}
		v100, err := a.float("v100")
		if err != nil {
			return nil, err
		}
		var m viscosity.Model
		vi, err := m.Index(v40, v100)
		if err != nil {
			return nil, err
		}
		return out.Results{out.Num("Viscosity Index", float64(vi), "")}, nil
	}}
}

func newViscosity40() *calculator {
	return &calculator{"viscosity-40", []*Input{
		{Key: "v100", Label: "Kinematic Viscosity at 100°C (cSt)"},
		{Key: "vi", Label: "Viscosity Index"},
	}, func(a *args) (out.Results, error) {
		v100, err := a.float("v100")
		if err != nil {
			return nil, err
		}
		vi, err := a.float("vi")
		if err != nil {
			return nil, err
		}
		var m viscosity.Model
		v40, err := m.At40(v100, vi)
		if err != nil {
			return nil, err
		}
		return out.Results{out.Num("Kinematic Viscosity at 40°C", v40, cSt)}, nil
	}}
}

func newViscosity100() *calculator {
	return &calculator{"viscosity-100", []*Input{
		{Key: "v40", Label: "Kinematic Viscosity at 40°C (cSt)"},
		{Key: "vi", Label: "Viscosity Index"},
	}, func(a *args) (out.Results, error) {
		v40, err := a.float("v40")
		if err != nil {
			return nil, err
		}
		vi, err := a.float("vi")
		if err != nil {
			return nil, err
		}
		var m viscosity.Model
		v100, err := m.At100(v40, vi)
		if err != nil {
			return nil, err
		}
		return out.Results{out.Num("Kinematic Viscosity at 100°C", v100, cSt)}, nil
	}}
}

// mixture ////////////////////////////////////////////////////////////////////////////////////////

func temperatureInput() *Input {
	return &Input{Key: "temperature", Label: "Temperature (°C)", Options: mixture.Temperatures(), Default: "40"}
}

func oils(a *args) (kv0, kv1 float64, temperature string, err error) {
	if temperature, err = a.choice("temperature"); err != nil {
		return
	}
	if kv0, err = a.float("v0"); err != nil {
		return
	}
	kv1, err = a.float("v1")
	return
}

func newMixViscosity() *calculator {
	return &calculator{"mix-viscosity", []*Input{
		temperatureInput(),
		{Key: "v0", Label: "1st. Oil Kinematic Viscosity (cSt)"},
		{Key: "v1", Label: "2nd. Oil Kinematic Viscosity (cSt)"},
		{Key: "p0", Label: "1st. Oil Proportion in Mixture (%)"},
	}, func(a *args) (out.Results, error) {
		kv0, kv1, temperature, err := oils(a)
		if err != nil {
			return nil, err
		}
		p0, err := a.float("p0")
		if err != nil {
			return nil, err
		}
		var m mixture.Model
		kvm, err := m.Viscosity(kv0, kv1, p0, temperature)
		if err != nil {
			return nil, err
		}
		return out.Results{out.Num("Mixture Kinematic Viscosity", kvm, cSt)}, nil
	}}
}

func newMixProportions() *calculator {
	return &calculator{"mix-proportions", []*Input{
		temperatureInput(),
		{Key: "v0", Label: "1st. Oil Kinematic Viscosity (cSt)"},
		{Key: "v1", Label: "2nd. Oil Kinematic Viscosity (cSt)"},
		{Key: "vm", Label: "Mixture Kinematic Viscosity (cSt)"},
	}, func(a *args) (out.Results, error) {
		kv0, kv1, temperature, err := oils(a)
		if err != nil {
			return nil, err
		}
		kvm, err := a.float("vm")
		if err != nil {
			return nil, err
		}
		var m mixture.Model
		p0, p1, err := m.Proportions(kv0, kv1, kvm, temperature)
		if err != nil {
			return nil, err
		}
		return out.Results{
			out.Num("1st. Oil Proportion in Mixture", p0, pct),
			out.Num("2nd. Oil Proportion in Mixture", p1, pct),
		}, nil
	}}
}

// blend //////////////////////////////////////////////////////////////////////////////////////////

func additive(a *args) (*blend.Blend, error) {
	x, err := a.float("additive")
	if err != nil {
		return nil, err
	}
	return blend.New(x)
}

func newAdditiveMass() *calculator {
	return &calculator{"additive-mass", []*Input{
		{Key: "additive", Label: "Additive (% by volume)"},
		{Key: "additive-density", Label: "Additive Density (kg/L)"},
		{Key: "oil-density", Label: "Oil Density (kg/L)"},
	}, func(a *args) (out.Results, error) {
		b, err := additive(a)
		if err != nil {
			return nil, err
		}
		ρa, err := a.float("additive-density")
		if err != nil {
			return nil, err
		}
		ρo, err := a.float("oil-density")
		if err != nil {
			return nil, err
		}
		x, err := b.AdditivePercentMass(ρa, ρo)
		if err != nil {
			return nil, err
		}
		return out.Results{out.Num("Additive", x, pctMass)}, nil
	}}
}

func newTotalAsh() *calculator {
	inputs := []*Input{{Key: "additive", Label: "Additive (% by volume)"}}
	for _, metal := range blend.Metals() {
		inputs = append(inputs, &Input{Key: metal, Label: strings.Title(metal) + " (% by mass)", Default: "0"})
	}
	return &calculator{"total-ash", inputs, func(a *args) (out.Results, error) {
		b, err := additive(a)
		if err != nil {
			return nil, err
		}
		contents := make(map[string]float64)
		for _, metal := range blend.Metals() {
			if contents[metal], err = a.float(metal); err != nil {
				return nil, err
			}
		}
		ash, err := b.TotalAsh(contents)
		if err != nil {
			return nil, err
		}
		return out.Results{out.Num("Total Ash", ash, pctMass)}, nil
	}}
}

// bearing ////////////////////////////////////////////////////////////////////////////////////////

// factorKeys holds the input keys of correction factors; indices follow bearing.Factor
var factorKeys = []string{"ft", "fc", "fh", "fv", "fp", "fd"}

func newGreaseAmount() *calculator {
	return &calculator{"grease-amount", []*Input{
		{Key: "D", Label: "Outer Diameter (mm)"},
		{Key: "B", Label: "Width (mm)"},
	}, func(a *args) (out.Results, error) {
		D, err := a.float("D")
		if err != nil {
			return nil, err
		}
		B, err := a.float("B")
		if err != nil {
			return nil, err
		}
		var b bearing.Bearing
		G, err := b.GreaseAmount(D, B)
		if err != nil {
			return nil, err
		}
		return out.Results{out.Num("Amount of Grease for Re-lubrication", G, grams)}, nil
	}}
}

func newRelubricationFrequency() *calculator {
	inputs := []*Input{
		{Key: "n", Label: "Rotation Velocity (rpm)"},
		{Key: "d", Label: "Inner Diameter (mm)"},
	}
	for f, key := range factorKeys {
		factor := bearing.Factor(f)
		inputs = append(inputs, &Input{Key: key, Label: factor.String(), Options: bearing.Options(factor), Default: "0"})
	}
	return &calculator{"relubrication-frequency", inputs, func(a *args) (out.Results, error) {
		n, err := a.float("n")
		if err != nil {
			return nil, err
		}
		d, err := a.float("d")
		if err != nil {
			return nil, err
		}
		idx := make([]int, len(factorKeys))
		for f, key := range factorKeys {
			if idx[f], err = a.index(key); err != nil {
				return nil, err
			}
		}
		factors := bearing.Factors{
			Temperature:   idx[bearing.Temperature],
			Contamination: idx[bearing.Contamination],
			Humidity:      idx[bearing.Humidity],
			Vibration:     idx[bearing.Vibration],
			Position:      idx[bearing.Position],
			Design:        idx[bearing.Design],
		}
		var b bearing.Bearing
		T, err := b.Frequency(n, d, factors)
		if err != nil {
			return nil, err
		}
		return out.Results{out.Num("Re-lubrication Frequency", float64(T), hours)}, nil
	}}
}

func newVelocityFactor() *calculator {
	return &calculator{"velocity-factor", []*Input{
		{Key: "D", Label: "Outer Diameter (mm)"},
		{Key: "d", Label: "Inner Diameter (mm)"},
		{Key: "n", Label: "Rotation Velocity (rpm)"},
	}, func(a *args) (out.Results, error) {
		D, err := a.float("D")
		if err != nil {
			return nil, err
		}
		d, err := a.float("d")
		if err != nil {
			return nil, err
		}
		n, err := a.float("n")
		if err != nil {
			return nil, err
		}
		var b bearing.Bearing
		A, err := b.VelocityFactor(D, d, n)
		if err != nil {
			return nil, err
		}
		return out.Results{out.Num("Velocity Factor", A, mmPerMin)}, nil
	}}
}
