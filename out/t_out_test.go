// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_round01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("round01")

	chk.Float64(tst, "8.70828", 1e-15, Round(0.959*8/0.881, 2), 8.71)
	chk.Float64(tst, "1000.04", 1e-15, Round(1000.04, 1), 1000.0)
	chk.Float64(tst, "0.13583", 1e-15, Round(0.47*3.4*8.5/100, 3), 0.136)
	chk.Float64(tst, "negative", 1e-15, Round(-2.346, 2), -2.35)
	chk.Int(tst, "0.5", RoundInt(0.5), 0)
	chk.Int(tst, "1.5", RoundInt(1.5), 2)
	chk.Int(tst, "2.5", RoundInt(2.5), 2)
	chk.Int(tst, "-7.6", RoundInt(-7.6), -8)
	chk.Int(tst, "507.7", RoundInt(507.7), 508)
}

func Test_result01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("result01")

	res := Results{
		Num("Kinematic Viscosity at 40°C", 119.6, "cSt"),
		Num("Viscosity Index", 156, ""),
		Num("Velocity Factor", 1.545e6, "mm/min"),
		Txt("Flow Type", "laminar"),
	}
	chk.String(tst, res[0].String(), "Kinematic Viscosity at 40°C = 119.6 cSt")
	chk.String(tst, res[1].String(), "Viscosity Index = 156")
	chk.String(tst, res[2].String(), "Velocity Factor = 1545000 mm/min")
	chk.String(tst, res[3].String(), "Flow Type = laminar")
	chk.String(tst, res.String(), "Kinematic Viscosity at 40°C = 119.6 cSt\nViscosity Index = 156\nVelocity Factor = 1545000 mm/min\nFlow Type = laminar")
	for i, v := range []float64{119.6, 156, 1.545e6, 0} {
		chk.Float64(tst, res[i].Label, 1e-15, res.Values()[i], v)
	}
}
