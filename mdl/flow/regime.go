// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

// Regime defines the flow regime
type Regime int

const (
	Laminar    Regime = iota // Re < 2000
	Transition               // 2000 ≤ Re ≤ 4000
	Turbulent                // Re > 4000
)

// limits of the transition band. Both are inclusive
const (
	ReLaminarMax   = 2000.0
	ReTurbulentMin = 4000.0
)

// Classify returns the flow regime corresponding to Re
func Classify(Re float64) Regime {
	switch {
	case Re < ReLaminarMax:
		return Laminar
	case Re > ReTurbulentMin:
		return Turbulent
	}
	return Transition
}

// String returns the name of the regime
func (r Regime) String() string {
	switch r {
	case Laminar:
		return "laminar"
	case Transition:
		return "transition"
	case Turbulent:
		return "turbulent"
	}
	return "unknown"
}

// Describe returns a sentence about the regime
func (r Regime) Describe() string {
	switch r {
	case Laminar:
		return "Laminar flow regime"
	case Transition:
		return "Transition state/flow regime"
	case Turbulent:
		return "Turbulent flow regime"
	}
	return "Unknown flow regime"
}
