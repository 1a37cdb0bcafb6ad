// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"errors"
	"math"
	"testing"

	"github.com/InsuvaiK/moody/mdl/friction"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_classify01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("classify01")

	for _, c := range []struct {
		Re     float64
		regime Regime
	}{
		{0, Laminar},
		{997, Laminar},
		{1999.999, Laminar},
		{2000, Transition},
		{3000, Transition},
		{4000, Transition},
		{4000.001, Turbulent},
		{99700, Turbulent},
	} {
		chk.String(tst, Classify(c.Re).String(), c.regime.String())
	}
}

func Test_factor01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factor01. laminar and turbulent branches")

	for _, Re := range []float64{1, 10, 640, 997, 1500, 1999.5} {
		res, err := Evaluate(Re)
		if err != nil {
			tst.Errorf("Evaluate failed: %v\n", err)
			return
		}
		f, ok := res.Factor.Value()
		if !ok || res.Regime != Laminar {
			tst.Errorf("Re = %g must be laminar with determined factor\n", Re)
			return
		}
		chk.Float64(tst, io.Sf("f(%g)", Re), 1e-15, f, 64/Re)
	}

	for _, Re := range []float64{4001, 1e4, 99700, 1e6, 1e8} {
		res, err := Evaluate(Re)
		if err != nil {
			tst.Errorf("Evaluate failed: %v\n", err)
			return
		}
		f, ok := res.Factor.Value()
		if !ok || res.Regime != Turbulent {
			tst.Errorf("Re = %g must be turbulent with determined factor\n", Re)
			return
		}
		chk.Float64(tst, io.Sf("f(%g)", Re), 1e-15, f, 0.316*math.Pow(Re, -0.25))
	}
}

func Test_factor02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factor02. transition band is undetermined")

	for _, Re := range []float64{2000, 2500, 3000, 3999, 4000} {
		res, err := Evaluate(Re)
		if err != nil {
			tst.Errorf("Evaluate failed: %v\n", err)
			return
		}
		if res.Factor.Determined() {
			tst.Errorf("factor for Re = %g must be undetermined\n", Re)
		}
		chk.String(tst, res.Factor.String(), Uncertain)
	}
}

func Test_factor03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factor03. invalid Reynolds numbers")

	for _, Re := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Evaluate(Re)
		if !errors.Is(err, ErrInvalidReynolds) {
			tst.Errorf("Re = %g should give ErrInvalidReynolds. err = %v\n", Re, err)
		}
	}

	_, err := FrictionFactor(1000, Regime(7))
	if err == nil {
		tst.Errorf("unknown regime should fail\n")
	}
}

func Test_calc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("calc01. default water sample")

	var sample Sample
	err := sample.Init(sample.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	res, err := Calc(sample)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	io.Pforan("Re = %v  f = %v\n", res.Reynolds, res.Factor)
	chk.Float64(tst, "Re", 1e-9, res.Reynolds, 99700)
	chk.String(tst, res.Regime.String(), "turbulent")
	f, _ := res.Factor.Value()
	chk.Float64(tst, "f", 1e-4, f, 0.01776)
	chk.Float64(tst, "f", 1e-15, f, 0.316/math.Pow(99700, 0.25))

	sample.Velocity = 0.01
	res, err = Calc(sample)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Re", 1e-10, res.Reynolds, 997)
	chk.String(tst, res.Regime.String(), "laminar")
	f, _ = res.Factor.Value()
	chk.Float64(tst, "f", 1e-5, f, 0.06419)

	// Re = 3000
	sample.Velocity = 0.03009027081243731
	res, err = Calc(sample)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Re", 1e-9, res.Reynolds, 3000)
	chk.String(tst, res.Regime.String(), "transition")
	chk.String(tst, res.Factor.String(), "uncertain")
}

func Test_calc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("calc02. Reynolds number scaling")

	s := Sample{Viscosity: 0.001, Density: 997, Velocity: 1, Diameter: 0.1}
	Re, _ := s.Reynolds()

	s2 := s
	s2.Velocity *= 2
	Re2, _ := s2.Reynolds()
	chk.Float64(tst, "2V", 1e-9, Re2, 2*Re)

	s2 = s
	s2.Density *= 2
	Re2, _ = s2.Reynolds()
	chk.Float64(tst, "2ρ", 1e-9, Re2, 2*Re)

	s2 = s
	s2.Diameter *= 2
	Re2, _ = s2.Reynolds()
	chk.Float64(tst, "2D", 1e-9, Re2, 2*Re)

	s2 = s
	s2.Viscosity *= 2
	Re2, _ = s2.Reynolds()
	chk.Float64(tst, "2μ", 1e-9, Re2, Re/2)
}

func Test_calc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("calc03. invalid inputs")

	for i, s := range []Sample{
		{Viscosity: 0, Density: 997, Velocity: 1, Diameter: 0.1},
		{Viscosity: 0.001, Density: 997, Velocity: 0, Diameter: 0.1},
		{Viscosity: 0.001, Density: 0, Velocity: 1, Diameter: 0.1},
		{Viscosity: 0.001, Density: 997, Velocity: 1, Diameter: 0},
		{Viscosity: 0.001, Density: 997, Velocity: -1, Diameter: 0.1},
		{Viscosity: math.NaN(), Density: 997, Velocity: 1, Diameter: 0.1},
		{Viscosity: 0.001, Density: 1e200, Velocity: 1e200, Diameter: 0.1},
		{Viscosity: 1e-300, Density: 1e100, Velocity: 1e100, Diameter: 1},
	} {
		_, err := Calc(s)
		if !errors.Is(err, ErrInvalidInput) {
			tst.Errorf("sample %d should be invalid. err = %v\n", i, err)
		}
	}

	var s Sample
	err := s.Init(dbf.Params{&dbf.P{N: "viscosity", V: 0}, &dbf.P{N: "diameter", V: 1}})
	if !errors.Is(err, ErrInvalidInput) {
		tst.Errorf("Init should fail with zero viscosity\n")
	}
}

func Test_factor04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factor04. models from database")

	lam, ok := laminar.(*friction.Laminar)
	if !ok {
		tst.Errorf("laminar model has wrong type %T\n", laminar)
		return
	}
	chk.Float64(tst, "C", 1e-17, lam.C, 64)

	bla, ok := turbulent.(*friction.Blasius)
	if !ok {
		tst.Errorf("turbulent model has wrong type %T\n", turbulent)
		return
	}
	chk.Float64(tst, "C", 1e-17, bla.C, 0.316)
	chk.Float64(tst, "N", 1e-17, bla.N, 0.25)
}
