// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import "github.com/lpozo/lubricalc/vld"

// Factor defines a correction factor of the re-lubrication frequency
type Factor int

// correction factors
const (
	Temperature   Factor = iota // Ft: temperature of bearing housing
	Contamination               // Fc: solid contamination
	Humidity                    // Fh: moisture
	Vibration                   // Fv: vibrations
	Position                    // Fp: shaft position
	Design                      // Fd: bearing design
)

// option holds one selectable condition and its factor value
type option struct {
	Label string
	Value float64
}

// tables holds the options of each factor. indices follow Factor
var tables = [][]option{
	{ // Ft
		{"< 65°C", 1.0},
		{"65 to 80°C", 0.5},
		{"80 to 93°C", 0.2},
		{"> 93°C", 0.1},
	},
	{ // Fc
		{"Light, no abrasive dust", 1.0},
		{"Severe, no abrasive dust", 0.7},
		{"Light, abrasive dust", 0.4},
		{"Severe, abrasive dust", 0.2},
	},
	{ // Fh
		{"Relative Humidity < 80 %", 1.0},
		{"Relative Humidity from 80 to 90 %", 0.7},
		{"Occasional condensation", 0.4},
		{"Water Presence", 0.1},
	},
	{ // Fv
		{"Top velocity < 0.5 cm/s", 1.0},
		{"Top velocity from 0.5 to 1.0 cm/s", 0.6},
		{"Top velocity > 1.0 cm/s", 0.3},
	},
	{ // Fp
		{"Horizontal", 1.0},
		{"45 Degrees", 0.5},
		{"Vertical", 0.3},
	},
	{ // Fd
		{"Ball bearing", 10.0},
		{"Cylinder/Needle roller bearing", 5.0},
		{"Conical roller bearing", 1.0},
	},
}

// String returns the name of the factor
func (o Factor) String() string {
	switch o {
	case Temperature:
		return "Temperature"
	case Contamination:
		return "Contamination"
	case Humidity:
		return "Humidity"
	case Vibration:
		return "Vibration"
	case Position:
		return "Position"
	case Design:
		return "Bearing Design"
	}
	return "Unknown"
}

// Options returns the labels of the conditions of a factor
func Options(f Factor) []string {
	if f < Temperature || f > Design {
		return nil
	}
	labels := make([]string, len(tables[f]))
	for i, opt := range tables[f] {
		labels[i] = opt.Label
	}
	return labels
}

// Value returns the value of a factor for the selected condition (zero-based index)
func Value(f Factor, index int) (float64, error) {
	if f < Temperature || f > Design {
		return 0, vld.Errorf(vld.Lookup, f.String(), "factor is not available")
	}
	if index < 0 || index >= len(tables[f]) {
		return 0, vld.Errorf(vld.Lookup, f.String(), "option index %d is out of range [0, %d]", index, len(tables[f])-1)
	}
	return tables[f][index].Value, nil
}

// Factors holds the selected conditions (zero-based indices into Options)
type Factors struct {
	Temperature   int // Ft
	Contamination int // Fc
	Humidity      int // Fh
	Vibration     int // Fv
	Position      int // Fp
	Design        int // Fd
}

// K computes the product of correction factors: K = Ft⋅Fc⋅Fh⋅Fv⋅Fp⋅Fd
func (o Factors) K() (K float64, err error) {
	K = 1.0
	for f, index := range o.indices() {
		v, err := Value(Factor(f), index)
		if err != nil {
			return 0, err
		}
		K *= v
	}
	return
}

func (o Factors) indices() []int {
	return []int{o.Temperature, o.Contamination, o.Humidity, o.Vibration, o.Position, o.Design}
}
