// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements the classification of pipe flows and the friction factor calculator
package flow

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

var (
	// ErrInvalidInput is returned when fluid properties cannot define a Reynolds number
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidReynolds is returned when the friction factor is requested for Re ≤ 0
	ErrInvalidReynolds = errors.New("invalid Reynolds number")
)

// Sample holds the properties of a fluid flowing in a pipe
type Sample struct {
	Viscosity float64 // dynamic viscosity μ [Pa·s]
	Density   float64 // density ρ [kg/m³]
	Velocity  float64 // mean velocity V [m/s]
	Diameter  float64 // hydraulic diameter D [m]
}

// Init initialises this structure
func (o *Sample) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "viscosity":
			o.Viscosity = p.V
		case "density":
			o.Density = p.V
		case "velocity":
			o.Velocity = p.V
		case "diameter":
			o.Diameter = p.V
		}
	}
	return o.Check()
}

// GetPrms gets (an example) of parameters
//  Input:
//   example -- returns water at room temperature in a 0.1 m pipe; otherwise returns current parameters
func (o Sample) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "viscosity", V: 0.001}, // [Pa·s]
			&dbf.P{N: "density", V: 997},     // [kg/m³]
			&dbf.P{N: "velocity", V: 1},      // [m/s]
			&dbf.P{N: "diameter", V: 0.1},    // [m]
		}
	}
	return dbf.Params{
		&dbf.P{N: "viscosity", V: o.Viscosity},
		&dbf.P{N: "density", V: o.Density},
		&dbf.P{N: "velocity", V: o.Velocity},
		&dbf.P{N: "diameter", V: o.Diameter},
	}
}

// Check validates the properties
func (o Sample) Check() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"viscosity", o.Viscosity},
		{"density", o.Density},
		{"velocity", o.Velocity},
		{"diameter", o.Diameter},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, v.name)
		}
		if v.val < 0 {
			return fmt.Errorf("%w: %s must not be negative. %s = %g", ErrInvalidInput, v.name, v.name, v.val)
		}
	}
	if o.Viscosity == 0 {
		return fmt.Errorf("%w: viscosity must be positive", ErrInvalidInput)
	}
	if o.Diameter == 0 {
		return fmt.Errorf("%w: diameter must be positive", ErrInvalidInput)
	}
	return nil
}

// Reynolds computes Re = ρ・V・D / μ
func (o Sample) Reynolds() (Re float64, err error) {
	if err = o.Check(); err != nil {
		return
	}
	return o.Density * o.Velocity * o.Diameter / o.Viscosity, nil
}

// Calc computes the Reynolds number, the flow regime and the friction factor
func Calc(sample Sample) (res Result, err error) {
	Re, err := sample.Reynolds()
	if err != nil {
		return
	}
	if Re == 0 {
		return res, fmt.Errorf("%w: Reynolds number is zero; velocity and density must be positive", ErrInvalidInput)
	}
	if math.IsInf(Re, 0) {
		return res, fmt.Errorf("%w: Reynolds number overflows. ρ・V・D/μ is too large", ErrInvalidInput)
	}
	return Evaluate(Re)
}
