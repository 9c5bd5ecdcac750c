// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"errors"
	"math"
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

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01. contiguous bands")

	chk.Float64(tst, "first Lo", 1e-15, Table[0].Lo, MinViscosity)
	for i := 1; i < len(Table); i++ {
		chk.Float64(tst, io.Sf("band %d", i), 1e-15, Table[i].Lo, Table[i-1].Hi)
	}
	if !math.IsInf(Table[len(Table)-1].Hi, 1) {
		tst.Errorf("last band must be unbounded\n")
	}

	if FindBand(1.99) != nil {
		tst.Errorf("there is no band below 2 cSt\n")
	}
	chk.Float64(tst, "band(2)", 1e-15, FindBand(2).Lo, 2)
	chk.Float64(tst, "band(3.8)", 1e-15, FindBand(3.8).Lo, 3.8)
	chk.Float64(tst, "band(69.99)", 1e-15, FindBand(69.99).Lo, 55)
	chk.Float64(tst, "band(1e6)", 1e-15, FindBand(1e6).Lo, 70)
}

func Test_index01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("index01. ASTM D2270 examples")

	for _, c := range []struct {
		kv40, kv100 float64
		vi          int
	}{
		{22.83, 5.05, 156},
		{73.3, 8.86, 92},
		{138.9, 18.1, 145},
	} {
		var mdl Model
		vi, err := mdl.Index(c.kv40, c.kv100)
		if err != nil {
			tst.Errorf("Index failed: %v\n", err)
			return
		}
		io.Pforan("KV40 = %6g  KV100 = %6g  VI = %d\n", c.kv40, c.kv100, vi)
		chk.Int(tst, "VI", vi, c.vi)
		chk.Float64(tst, "VI stored", 1e-15, mdl.VI, float64(c.vi))
	}
}

func Test_index02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("index02. invalid data")

	var mdl Model
	if _, err := mdl.Index(5, 8); !errors.Is(err, vld.ErrInvertedViscosity) {
		tst.Errorf("KV40 < KV100 should fail with inverted viscosity. err = %v\n", err)
	}
	if _, err := mdl.Index(22.83, 1.9); !errors.Is(err, vld.ErrTooLowViscosity) {
		tst.Errorf("KV100 < 2 should fail with too low viscosity. err = %v\n", err)
	}
	if _, err := mdl.Index(1.5, 1.2); !errors.Is(err, vld.ErrTooLowViscosity) {
		tst.Errorf("KV40 < 2 should fail with too low viscosity. err = %v\n", err)
	}
	if _, err := mdl.Index(math.Inf(1), 5); !errors.Is(err, vld.ErrInfiniteValue) {
		tst.Errorf("infinite KV40 should fail. err = %v\n", err)
	}

	// index out of [0, 300]
	_, err := mdl.Index(15, 15)
	if !errors.Is(err, vld.ErrConcept) {
		tst.Errorf("VI > 300 should fail with concept error. err = %v\n", err)
	}
	chk.String(tst, err.Error(), "Viscosity Index: not defined")
	if _, err = mdl.Index(1000, 5); !errors.Is(err, vld.ErrConcept) {
		tst.Errorf("VI < 0 should fail with concept error. err = %v\n", err)
	}
}

func Test_at01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("at01. viscosity at 40°C and 100°C")

	var mdl Model
	kv40, err := mdl.At40(15, 130)
	if err != nil {
		tst.Errorf("At40 failed: %v\n", err)
		return
	}
	chk.Float64(tst, "KV40", 1e-12, kv40, 119.6)

	kv100, err := mdl.At100(112, 140)
	if err != nil {
		tst.Errorf("At100 failed: %v\n", err)
		return
	}
	chk.Float64(tst, "KV100", 1e-12, kv100, 15.12)
}

func Test_at02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("at02. round trip")

	var mdl Model
	for _, kv100 := range []float64{5.5, 6.7, 7.3, 8, 10, 13, 16, 20, 25, 30, 45} {
		for _, target := range []int{95, 100, 130, 150} {
			kv40, err := mdl.At40(kv100, float64(target))
			if err != nil {
				tst.Errorf("At40 failed: %v\n", err)
				return
			}
			vi, err := mdl.Index(kv40, kv100)
			if err != nil {
				tst.Errorf("Index failed: %v\n", err)
				return
			}
			io.Pforan("KV100 = %4g  target = %3d  KV40 = %8g  VI = %d\n", kv100, target, kv40, vi)
			if vi < target-1 || vi > target+1 {
				tst.Errorf("round trip failed: KV100=%g target=%d KV40=%g VI=%d\n", kv100, target, kv40, vi)
			}
		}
	}
}

func Test_at03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("at03. invalid data and exhausted searches")

	var mdl Model
	if _, err := mdl.At40(15, 0); !errors.Is(err, vld.ErrConcept) {
		tst.Errorf("zero index should fail. err = %v\n", err)
	}
	if _, err := mdl.At40(15, 301); !errors.Is(err, vld.ErrConcept) {
		tst.Errorf("index > 300 should fail. err = %v\n", err)
	}
	if _, err := mdl.At100(1, 100); !errors.Is(err, vld.ErrTooLowViscosity) {
		tst.Errorf("KV40 < 2 should fail. err = %v\n", err)
	}
	if _, err := mdl.At40(80, 50); !errors.Is(err, vld.ErrNoConvergence) {
		tst.Errorf("search for KV40 should not converge. err = %v\n", err)
	}
	if _, err := mdl.At100(1e9, 100); !errors.Is(err, vld.ErrNoConvergence) {
		tst.Errorf("search for KV100 should not converge. err = %v\n", err)
	}
}

func Test_prms01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prms01. parameters")

	var mdl Model
	if err := mdl.Init(mdl.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "KV40", 1e-15, mdl.KV40, 22.83)
	chk.Float64(tst, "KV100", 1e-15, mdl.KV100, 5.05)
	chk.Float64(tst, "VI", 1e-15, mdl.VI, 156)

	err := mdl.Init(dbf.Params{&dbf.P{N: "kv40", V: 5}, &dbf.P{N: "kv100", V: 8}})
	if !errors.Is(err, vld.ErrInvertedViscosity) {
		tst.Errorf("inverted viscosities should fail. err = %v\n", err)
	}
	chk.Float64(tst, "KV40 untouched", 1e-15, mdl.KV40, 22.83)
	if err = mdl.Init(dbf.Params{&dbf.P{N: "kv50", V: 5}}); err == nil {
		tst.Errorf("unknown parameter should fail\n")
	}
}
