// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/lpozo/lubricalc/vld"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_grease01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grease01. amount of grease")

	var brg Bearing
	g, err := brg.GreaseAmount(25, 60)
	if err != nil {
		tst.Errorf("GreaseAmount failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Gg", 1e-12, g, 7.5)

	if _, err = brg.GreaseAmount(0, 60); !errors.Is(err, vld.ErrConcept) {
		tst.Errorf("zero diameter should fail. err = %v\n", err)
	}
	chk.Float64(tst, "D untouched", 1e-15, brg.D, 25)
}

func Test_freq01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("freq01. re-lubrication frequency")

	var brg Bearing
	T, err := brg.Frequency(1750, 18, Factors{Temperature: 0, Contamination: 1, Humidity: 2, Vibration: 0, Position: 0, Design: 2})
	if err != nil {
		tst.Errorf("Frequency failed: %v\n", err)
		return
	}
	io.Pforan("T = %d hours\n", T)
	chk.Int(tst, "T", T, 508)

	// most favourable conditions
	T, err = brg.Frequency(1750, 18, Factors{})
	if err != nil {
		tst.Errorf("Frequency failed: %v\n", err)
		return
	}
	chk.Int(tst, "T(K=10)", T, 18136)

	for _, f := range []Factors{
		{Temperature: 4},
		{Contamination: -1},
		{Humidity: 4},
		{Vibration: 3},
		{Position: 3},
		{Design: 3},
	} {
		if _, err = brg.Frequency(1750, 18, f); !errors.Is(err, vld.ErrLookup) {
			tst.Errorf("%+v should fail with lookup error. err = %v\n", f, err)
		}
	}
	if _, err = brg.Frequency(-1750, 18, Factors{}); !errors.Is(err, vld.ErrConcept) {
		tst.Errorf("negative rpm should fail. err = %v\n", err)
	}
}

func Test_velocity01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("velocity01. velocity factor")

	var brg Bearing
	A, err := brg.VelocityFactor(58, 45, 3000)
	if err != nil {
		tst.Errorf("VelocityFactor failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A", 1e-15, A, 154500)

	A, err = brg.SpeedFactor(58, 45, 3000)
	if err != nil {
		tst.Errorf("SpeedFactor failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A", 1e-15, A, 154500)

	_, err = brg.VelocityFactor(45, 60, 3000)
	if !errors.Is(err, vld.ErrConcept) {
		tst.Errorf("inner diameter ≥ outer diameter should fail. err = %v\n", err)
		return
	}
	chk.String(tst, err.Error(), "Inner Diameter must be lower than Outer Diameter")
	if _, err = brg.VelocityFactor(45, 45, 3000); !errors.Is(err, vld.ErrConcept) {
		tst.Errorf("equal diameters should fail. err = %v\n", err)
	}
}

func Test_factors01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factors01. tables of factors")

	values := [][]float64{
		{1.0, 0.5, 0.2, 0.1},
		{1.0, 0.7, 0.4, 0.2},
		{1.0, 0.7, 0.4, 0.1},
		{1.0, 0.6, 0.3},
		{1.0, 0.5, 0.3},
		{10.0, 5.0, 1.0},
	}
	for f := Temperature; f <= Design; f++ {
		chk.Int(tst, f.String(), len(Options(f)), len(values[f]))
		for i, correct := range values[f] {
			v, err := Value(f, i)
			if err != nil {
				tst.Errorf("Value failed: %v\n", err)
				return
			}
			chk.Float64(tst, Options(f)[i], 1e-15, v, correct)
		}
	}
	if Options(Factor(6)) != nil {
		tst.Errorf("there are only 6 factors\n")
	}
	if _, err := Value(Factor(-1), 0); !errors.Is(err, vld.ErrLookup) {
		tst.Errorf("unknown factor should fail. err = %v\n", err)
	}

	f, err := ParseFactor(" FH ")
	if err != nil {
		tst.Errorf("ParseFactor failed: %v\n", err)
		return
	}
	chk.String(tst, f.String(), "Humidity")
	if _, err = ParseFactor("fx"); !errors.Is(err, vld.ErrLookup) {
		tst.Errorf("unknown factor name should fail. err = %v\n", err)
	}
}

func Test_prms01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prms01. parameters")

	var brg Bearing
	if err := brg.Init(brg.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "D", 1e-15, brg.D, 58)
	chk.Float64(tst, "d", 1e-15, brg.InnerDiameter(), 45)
	chk.Float64(tst, "n", 1e-15, brg.Rpm(), 3000)

	err := brg.Init(dbf.Params{&dbf.P{N: "D", V: 45}, &dbf.P{N: "d", V: 60}})
	if !errors.Is(err, vld.ErrConcept) {
		tst.Errorf("inverted diameters should fail. err = %v\n", err)
	}
	chk.Float64(tst, "D untouched", 1e-15, brg.D, 58)
	if err = brg.Init(dbf.Params{&dbf.P{N: "rpm", V: 1}}); err == nil {
		tst.Errorf("unknown parameter should fail\n")
	}
}
