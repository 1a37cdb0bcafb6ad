// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/InsuvaiK/moody/mdl/friction"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// Scan holds the settings of the transition line solver
type Scan struct {
	N       int     // number of roughness values
	Seed    float64 // initial guess of Re for the first roughness value
	Ratio   float64 // f = Ratio・fT on the transition line
	ReMax   float64 // solutions above ReMax are discarded
	Verbose bool    // print summary

	Roughness []float64 // roughness values to solve, in increasing order. ScanRoughness(N) if empty
}

// DefaultScan returns the default settings
func DefaultScan() Scan {
	return Scan{N: 100000, Seed: 1e7, Ratio: 1.011, ReMax: ReTurbMax}
}

// TransitionCurve holds the line separating transitionally and fully turbulent flows
type TransitionCurve struct {
	Roughness []float64 // ε/D of each point
	Points    []Point   // (Re, Ratio・fT) ordered by increasing roughness
	Failed    int       // number of roughness values where the solver failed
	Discarded int       // number of solutions with Re > ReMax
}

// ReRange returns the min and max Re on the curve
func (o TransitionCurve) ReRange() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, p := range o.Points {
		min = math.Min(min, p.Re)
		max = math.Max(max, p.Re)
	}
	return
}

// FRange returns the min and max f on the curve
func (o TransitionCurve) FRange() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, p := range o.Points {
		min = math.Min(min, p.F)
		max = math.Max(max, p.F)
	}
	return
}

// ScanRoughness returns n roughness values from R[1]-R[1]/3 to R[last]+R[last]/3
func ScanRoughness(n int) []float64 {
	r0 := RelativeRoughness[1]
	r1 := RelativeRoughness[len(RelativeRoughness)-1]
	return utl.LinSpace(r0-r0/3, r1+r1/3, n)
}

// SolveTransition computes the transition line
//
//   g(Re, r) = Ratio・fT(r) - f(Re, r) = 0
//
//  where f is the Haaland correlation and fT its fully rough limit. The roughness values
//  are solved in increasing order and each solution seeds the next one (continuation)
func SolveTransition(scan Scan) (curve *TransitionCurve, err error) {
	rs := scan.Roughness
	if len(rs) == 0 {
		if scan.N < 2 {
			return nil, chk.Err("transition scan needs at least 2 roughness values. N = %d is invalid", scan.N)
		}
		rs = ScanRoughness(scan.N)
	}
	if scan.Seed <= 0 || scan.Ratio <= 1 {
		return nil, chk.Err("transition scan needs Seed > 0 and Ratio > 1. Seed = %g, Ratio = %g", scan.Seed, scan.Ratio)
	}
	curve = new(TransitionCurve)
	seed := scan.Seed
	for _, r := range rs {
		var Re float64
		Re, err = Step(seed, r, scan.Ratio)
		if err != nil {
			if scan.Verbose {
				io.PfRed("ε/D = %g skipped: %v\n", r, err)
			}
			curve.Failed++
			continue
		}
		seed = Re
		if Re > scan.ReMax {
			curve.Discarded++
			continue
		}
		curve.Roughness = append(curve.Roughness, r)
		curve.Points = append(curve.Points, Point{Re, scan.Ratio * fullyRough(r)})
	}
	err = nil
	if scan.Verbose {
		io.Pforan("transition line: %d points, %d discarded, %d failed\n", len(curve.Points), curve.Discarded, curve.Failed)
	}
	if len(curve.Points) == 0 {
		return nil, chk.Err("transition line has no points within Re ≤ %g", scan.ReMax)
	}
	return
}

// bounds of x = log10(Re) when bracketing a root
const (
	xBracketMin = 0.0
	xBracketMax = 16.0
)

// Step solves g(Re, r) = 0 for one roughness value r starting from a previous solution
//  Note: the root is found in x = log10(Re) within a bracket around log10(RePrev)
func Step(RePrev, r, ratio float64) (Re float64, err error) {
	mdl, err := roughPipe(r)
	if err != nil {
		return
	}
	target := ratio * mdl.FullyRough()
	if target <= 0 {
		return 0, chk.Err("fully rough friction factor is not positive for ε/D = %g", r)
	}
	g := func(x float64) float64 {
		return target - mdl.F(math.Pow(10, x))
	}
	xa, xb, err := bracket(g, math.Log10(RePrev))
	if err != nil {
		return
	}
	x, err := brentRoot(g, xa, xb)
	if err != nil {
		return
	}
	if math.IsNaN(x) || x < xa || x > xb {
		return 0, chk.Err("root finder returned x = %g outside bracket [%g, %g]", x, xa, xb)
	}
	return math.Pow(10, x), nil
}

// bracket widens an interval around x0 until g changes sign. g is increasing in x
func bracket(g fun.Ss, x0 float64) (xa, xb float64, err error) {
	d := 0.05
	xa, xb = x0-d, x0+d
	for g(xa) > 0 {
		d *= 2
		xa = x0 - d
		if xa < xBracketMin {
			return 0, 0, chk.Err("cannot bracket root below x0 = %g", x0)
		}
	}
	d = 0.05
	for g(xb) < 0 {
		d *= 2
		xb = x0 + d
		if xb > xBracketMax {
			return 0, 0, chk.Err("cannot bracket root above x0 = %g", x0)
		}
	}
	return
}

// brentRoot runs Brent's method converting panics into errors
func brentRoot(g fun.Ss, xa, xb float64) (x float64, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = chk.Err("Brent's method failed in [%g, %g]: %v", xa, xb, e)
		}
	}()
	solver := num.NewBrent(g, nil)
	solver.Tol = 1e-13
	solver.MaxIt = 200
	x = solver.Root(xa, xb)
	return
}

// fullyRough returns fT of a relative roughness already accepted by Step
func fullyRough(r float64) float64 {
	return friction.Haaland{Rr: r}.FullyRough()
}
