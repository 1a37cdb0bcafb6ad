// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"fmt"
	"math"
	"strconv"

	"github.com/InsuvaiK/moody/mdl/friction"
	"github.com/cpmech/gosl/chk"
)

// Uncertain is the text shown for a friction factor in the transition band
const Uncertain = "uncertain"

// Factor holds a friction factor which may be undetermined
type Factor struct {
	value      float64
	determined bool
}

// Determined returns a factor with a known value
func Determined(f float64) Factor {
	return Factor{value: f, determined: true}
}

// Undetermined returns a factor without value
func Undetermined() Factor {
	return Factor{}
}

// Value returns the friction factor and whether it is determined
func (o Factor) Value() (f float64, ok bool) {
	return o.value, o.determined
}

// Determined tells whether the factor has a value
func (o Factor) Determined() bool {
	return o.determined
}

// String returns the shortest representation of the value or "uncertain"
func (o Factor) String() string {
	if !o.determined {
		return Uncertain
	}
	return strconv.FormatFloat(o.value, 'g', -1, 64)
}

// Result holds the outcome of the calculator
type Result struct {
	Reynolds float64
	Regime   Regime
	Factor   Factor
}

// models used by the calculator
var (
	laminar   = newModel("laminar")
	turbulent = newModel("blasius")
)

// newModel allocates a friction model from the database with its standard parameters
func newModel(name string) friction.Model {
	mdl, err := friction.New(name)
	if err != nil {
		chk.Panic("%v", err)
	}
	if err = mdl.Init(mdl.GetPrms(true)); err != nil {
		chk.Panic("cannot initialise %q friction model:\n%v", name, err)
	}
	return mdl
}

// FrictionFactor computes the friction factor for Re in the given regime
//  Laminar:    f = 64/Re
//  Turbulent:  f = 0.316/Re^0.25  (smooth pipes; roughness is not considered)
//  Transition: undetermined
func FrictionFactor(Re float64, regime Regime) (f Factor, err error) {
	if Re <= 0 || math.IsNaN(Re) || math.IsInf(Re, 0) {
		return f, fmt.Errorf("%w: Re = %g", ErrInvalidReynolds, Re)
	}
	switch regime {
	case Laminar:
		return Determined(laminar.F(Re)), nil
	case Turbulent:
		return Determined(turbulent.F(Re)), nil
	case Transition:
		return Undetermined(), nil
	}
	return f, fmt.Errorf("cannot compute friction factor: regime %d is unknown", regime)
}

// Evaluate classifies Re and computes its friction factor
func Evaluate(Re float64) (res Result, err error) {
	res.Reynolds = Re
	res.Regime = Classify(Re)
	res.Factor, err = FrictionFactor(Re, res.Regime)
	return
}
