// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package blend implements additive and sulfated ash calculations for motor oil blends
package blend

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/lpozo/lubricalc/out"
	"github.com/lpozo/lubricalc/vld"
)

// metals holds the names of metals in display order
var metals = []string{
	"zinc",
	"barium",
	"sodium",
	"calcium",
	"magnesium",
	"lead",
	"boron",
	"potassium",
	"manganese",
	"molybdenum",
	"copper",
}

// contributions maps metals to their contribution to sulfated ash
var contributions = map[string]float64{
	"zinc":       1.50,
	"barium":     1.70,
	"sodium":     3.09,
	"calcium":    3.40,
	"magnesium":  4.95,
	"lead":       1.464,
	"boron":      3.22,
	"potassium":  2.23,
	"manganese":  1.291,
	"molybdenum": 1.5,
	"copper":     1.252,
}

// Metals returns the names of metals with known contribution to sulfated ash
func Metals() []string {
	return append([]string{}, metals...)
}

// Contribution returns the contribution to sulfated ash of a metal. Names are case-insensitive
func Contribution(metal string) (float64, error) {
	c, ok := contributions[strings.ToLower(strings.TrimSpace(metal))]
	if !ok {
		return 0, vld.Errorf(vld.Lookup, "Metal", "metal %q is not available", metal)
	}
	return c, nil
}

// Blend holds the additive package of a motor oil
type Blend struct {
	Additive float64 // additive package [% by volume]
}

// New returns a new blend with given additive package [% by volume]
func New(additivePercent float64) (o *Blend, err error) {
	o = new(Blend)
	if err = vld.Set(&o.Additive, "Additive", additivePercent, vld.Positive); err != nil {
		return nil, err
	}
	return
}

// NewText returns a new blend with additive package given as text
func NewText(additivePercent string) (o *Blend, err error) {
	o = new(Blend)
	if err = vld.SetText(&o.Additive, "Additive", additivePercent, vld.Positive); err != nil {
		return nil, err
	}
	return
}

// Init initialises blend. The only parameter is "additive"
func (o *Blend) Init(prms dbf.Params) (err error) {
	var additive float64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "additive":
			err = vld.Set(&additive, "Additive", p.V, vld.Positive)
		default:
			return chk.Err("blend: parameter named %q is incorrect\n", p.N)
		}
		if err != nil {
			return
		}
	}
	if additive == 0 {
		return chk.Err("blend: parameter \"additive\" is required\n")
	}
	o.Additive = additive
	return
}

// GetPrms gets (an example) of parameters
func (o Blend) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "additive", V: 8.5}} // [% by volume]
	}
	return dbf.Params{&dbf.P{N: "additive", V: o.Additive}}
}

// AdditivePercentMass computes the percentage by mass of additive in the oil
//
//                          additive density ⋅ additive (% by volume)
//    additive (% mass) = --------------------------------------------
//                               density of finished oil
//
func (o Blend) AdditivePercentMass(additiveDensity, oilDensity float64) (float64, error) {
	ρa, err := vld.Check("Additive Density", additiveDensity, vld.Positive)
	if err != nil {
		return 0, err
	}
	ρo, err := vld.Check("Oil Density", oilDensity, vld.Positive)
	if err != nil {
		return 0, err
	}
	return out.Round(ρa*o.Additive/ρo, 2), nil
}

// SulfatedAsh computes the sulfated ash due to one metal rounded to 3 decimal places
//
//          metal content (% mass) ⋅ contribution ⋅ additive (% by volume)
//    SA = ----------------------------------------------------------------
//                                    100
//
func (o Blend) SulfatedAsh(metal string, content float64) (float64, error) {
	c, err := Contribution(metal)
	if err != nil {
		return 0, err
	}
	m, err := vld.Check(strings.Title(strings.ToLower(metal)), content, vld.NonNegative)
	if err != nil {
		return 0, err
	}
	return out.Round(m*c*o.Additive/100, 3), nil
}

// TotalAsh computes the total sulfated ash rounded to 2 decimal places.
// contents maps metal names to contents [% by mass]; missing metals contribute nothing
func (o Blend) TotalAsh(contents map[string]float64) (float64, error) {
	names := make([]string, 0, len(contents))
	for name := range contents {
		names = append(names, name)
	}
	sort.Strings(names)
	sum := 0.0
	for _, name := range names {
		sa, err := o.SulfatedAsh(name, contents[name])
		if err != nil {
			return 0, err
		}
		sum += sa
	}
	return out.Round(sum, 2), nil
}

// TotalAshText computes the total sulfated ash with contents given as text. Blank contents are zero
func (o Blend) TotalAshText(contents map[string]string) (float64, error) {
	values := make(map[string]float64, len(contents))
	for name, raw := range contents {
		if _, err := Contribution(name); err != nil {
			return 0, err
		}
		if strings.TrimSpace(raw) == "" {
			values[name] = 0
			continue
		}
		v, err := vld.ParseFloat(strings.Title(strings.ToLower(name)), raw)
		if err != nil {
			return 0, err
		}
		values[name] = v
	}
	return o.TotalAsh(values)
}
