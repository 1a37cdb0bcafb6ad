// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements the curves of the Moody chart
package ana

import (
	"math"

	"github.com/InsuvaiK/moody/mdl/friction"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// RelativeRoughness holds the ε/D values drawn on the chart
var RelativeRoughness = []float64{0, 0.00001, 0.00005, 0.0001, 0.0002, 0.0004, 0.0006, 0.0008, 0.001, 0.002,
	0.004, 0.006, 0.008, 0.01, 0.015, 0.02, 0.03, 0.04, 0.05}

// limits of the branches along Re
const (
	ReLamMin  = 64.0 / 0.1 // laminar line starts at f = 0.1
	ReCritMin = 2000.0     // start of critical zone
	ReCritMax = 4500.0     // end of critical zone and start of turbulent curves
	ReTurbMax = 1e8        // end of turbulent curves
)

// Point holds a (Re, f) pair
type Point struct {
	Re float64
	F  float64
}

// Grid holds the number of samples along each branch
type Grid struct {
	NumTurbulent int // log-spaced samples in [4500, 1e8]
	NumCritical  int // linear samples in [2000, 4500]
	NumLaminar   int // linear samples in [640, 2000]
}

// DefaultGrid returns the default sampling
func DefaultGrid() Grid {
	return Grid{NumTurbulent: 2000, NumCritical: 500, NumLaminar: 500}
}

// Check checks the number of samples
func (o Grid) Check() error {
	if o.NumTurbulent < 2 || o.NumCritical < 2 || o.NumLaminar < 2 {
		return chk.Err("grid needs at least 2 samples per branch. turbulent = %d, critical = %d, laminar = %d", o.NumTurbulent, o.NumCritical, o.NumLaminar)
	}
	return nil
}

// RoughnessCurve holds the friction factor of one relative roughness
type RoughnessCurve struct {
	Roughness float64 // ε/D
	Turbulent []Point // Haaland correlation in [4500, 1e8]
	Critical  []Point // dashed continuation in [2000, 4500]
}

// Min returns the point with the smallest friction factor on the turbulent branch
func (o RoughnessCurve) Min() (p Point) {
	p.F = math.Inf(1)
	for _, q := range o.Turbulent {
		if q.F < p.F {
			p = q
		}
	}
	return
}

// LogSpace returns n values from a to b, equally spaced in log10 scale
func LogSpace(a, b float64, n int) (res []float64) {
	res = utl.LinSpace(math.Log10(a), math.Log10(b), n)
	for i, x := range res {
		res[i] = math.Pow(10, x)
	}
	res[0], res[n-1] = a, b
	return
}

// SampleCurves computes one roughness curve for each value in RelativeRoughness
func SampleCurves(grid Grid) (curves []*RoughnessCurve, err error) {
	if err = grid.Check(); err != nil {
		return
	}
	ReTurb := LogSpace(ReCritMax, ReTurbMax, grid.NumTurbulent)
	ReCrit := utl.LinSpace(ReCritMin, ReCritMax, grid.NumCritical)
	curves = make([]*RoughnessCurve, len(RelativeRoughness))
	for i, r := range RelativeRoughness {
		var mdl *friction.Haaland
		if mdl, err = roughPipe(r); err != nil {
			return nil, err
		}
		c := &RoughnessCurve{
			Roughness: r,
			Turbulent: make([]Point, len(ReTurb)),
			Critical:  make([]Point, len(ReCrit)),
		}
		for j, Re := range ReTurb {
			c.Turbulent[j] = Point{Re, mdl.F(Re)}
		}
		for j, Re := range ReCrit {
			c.Critical[j] = Point{Re, mdl.Critical(Re)}
		}
		curves[i] = c
	}
	return
}

// LaminarLine computes f = 64/Re in [640, 2000] (solid) and [2000, 4500] (dashed)
func LaminarLine(grid Grid) (solid, dashed []Point, err error) {
	if err = grid.Check(); err != nil {
		return
	}
	mdl, err := friction.New("laminar")
	if err != nil {
		return
	}
	if err = mdl.Init(mdl.GetPrms(true)); err != nil {
		return
	}
	for _, Re := range utl.LinSpace(ReLamMin, ReCritMin, grid.NumLaminar) {
		solid = append(solid, Point{Re, mdl.F(Re)})
	}
	for _, Re := range utl.LinSpace(ReCritMin, ReCritMax, grid.NumCritical) {
		dashed = append(dashed, Point{Re, mdl.F(Re)})
	}
	return
}

// roughPipe returns the Haaland model for the relative roughness r
func roughPipe(r float64) (mdl *friction.Haaland, err error) {
	mdl = new(friction.Haaland)
	err = mdl.Init(dbf.Params{&dbf.P{N: "rr", V: r}})
	return
}
