// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the Moody chart and its renderers
package out

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/InsuvaiK/moody/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ChartConfig holds the input of NewChart
type ChartConfig struct {
	SavePdf bool     // SavePDF writes files only if SavePdf is true
	LastRe  *float64 // Reynolds number of the last calculation; optional
	LastF   *float64 // friction factor of the last calculation; optional
	Grid    ana.Grid // samples along each branch
	Scan    ana.Scan // transition line solver settings
	Verbose bool     // show messages
}

// DefaultChartConfig returns the default settings
func DefaultChartConfig() ChartConfig {
	return ChartConfig{Grid: ana.DefaultGrid(), Scan: ana.DefaultScan()}
}

// Entity holds a polyline of the chart
type Entity struct {
	Alias string    // alias; e.g. "laminar"
	Key   string    // legend key; empty means not in legend
	X     []float64 // Re values
	Y     []float64 // f values
	Style Style     // style
}

// Region holds a filled polygon of the chart
type Region struct {
	Key   string    // legend key
	X     []float64 // Re values
	Y     []float64 // f values
	Style Style     // style
}

// Label holds a text placed on the chart
type Label struct {
	X, Y  float64 // position
	Text  string  // text
	Ha    string  // horizontal alignment
	Va    string  // vertical alignment
	Small bool    // use small font
}

// Interval holds a double-headed arrow spanning a range of Re at constant f
type Interval struct {
	Name   string  // e.g. "Laminar"
	Re0    float64 // left end
	Re1    float64 // right end
	F      float64 // height
	LabelF float64 // height of label
}

// Chart holds all data of the Moody chart
type Chart struct {
	Title      string
	Xlbl       string
	Ylbl       string
	Xrange     []float64 // [min, max] of Re
	Yrange     []float64 // [min, max] of f
	MajorTicks []float64 // f ticks
	MinorTicks []float64 // f ticks
	Entities   []*Entity
	Regions    []*Region
	Intervals  []*Interval
	Labels     []*Label
	Point      *ana.Point // last calculated point; may be nil
	SavePdf    bool

	Curves     []*ana.RoughnessCurve
	Transition *ana.TransitionCurve
}

// chart constants
const (
	fBottom   = 0.007 // lower limit of f axis
	fTop      = 0.1   // upper limit of f axis
	ReRight   = 4e8   // upper limit of Re axis
	ReLabel   = 1.2e8 // horizontal position of roughness labels
	fInterval = 0.088 // height of interval arrows
	maxPoints = 4000  // max number of points of drawn polylines
)

// legend keys
const (
	KeyLaminar    = "f = 64/Re"
	KeyRoughness  = "ε/D"
	KeyTransition = "Transition Line"
	KeyTransTurb  = "Transitionally Turbulent"
	KeyFullyTurb  = "Fully Turbulent"
)

// NewChart computes all curves and assembles the chart
func NewChart(cfg ChartConfig) (o *Chart, err error) {

	// curves
	solid, dashed, err := ana.LaminarLine(cfg.Grid)
	if err != nil {
		return
	}
	curves, err := ana.SampleCurves(cfg.Grid)
	if err != nil {
		return
	}
	scan := cfg.Scan
	scan.Verbose = cfg.Verbose
	trans, err := ana.SolveTransition(scan)
	if err != nil {
		return nil, chk.Err("cannot compute transition line:\n%v", err)
	}

	// chart
	o = &Chart{
		Title:      "Moody Chart",
		Xlbl:       "Reynolds number  Re = ρVD/μ",
		Ylbl:       "Friction factor  f = -(dP/dx)·D/(ρV²/2)",
		Xrange:     []float64{ana.ReLamMin, ReRight},
		Yrange:     []float64{fBottom, fTop},
		MajorTicks: []float64{0.01, 0.02, 0.03, 0.04, 0.05, 0.06, 0.07, 0.08, 0.09, 0.1},
		MinorTicks: []float64{0.008, 0.009, 0.0125, 0.015, 0.025},
		SavePdf:    cfg.SavePdf,
		Curves:     curves,
		Transition: trans,
	}

	// laminar line
	o.addEntity("laminar", KeyLaminar, solid, Styles["laminar"])
	o.addEntity("laminar-dashed", "", dashed, Styles["laminar-dashed"])

	// roughness curves
	for i, c := range curves {
		key := ""
		if i == 0 {
			key = KeyRoughness
		}
		o.addEntity(io.Sf("rr=%g", c.Roughness), key, c.Turbulent, Styles["roughness"])
		o.addEntity(io.Sf("rr=%g-crit", c.Roughness), "", c.Critical, Styles["roughness-crit"])
		va := "center"
		if c.Roughness == 0.001 { // too close to 0.0008
			va = "bottom"
		}
		o.Labels = append(o.Labels, &Label{X: ReLabel, Y: c.Min().F, Text: RoughnessLabel(c.Roughness), Ha: "left", Va: va})
	}

	// transition line and regions
	o.addEntity("transition", KeyTransition, trans.Points, Styles["transition"])
	o.addRegions(trans)

	// intervals
	for _, iv := range []struct {
		name     string
		Re0, Re1 float64
	}{
		{"Laminar", ana.ReLamMin, ana.ReCritMin},
		{"Critical", ana.ReCritMin, ana.ReCritMax},
		{"Turbulent", ana.ReCritMax, ana.ReTurbMax},
	} {
		o.Intervals = append(o.Intervals, &Interval{Name: iv.name, Re0: iv.Re0, Re1: iv.Re1, F: fInterval, LabelF: fInterval + 0.002})
		o.Labels = append(o.Labels, &Label{X: math.Sqrt(iv.Re0 * iv.Re1), Y: fInterval + 0.002, Text: iv.name, Ha: "center", Va: "bottom", Small: true})
	}

	// last calculated point
	if cfg.LastRe != nil && cfg.LastF != nil {
		o.Point = &ana.Point{Re: *cfg.LastRe, F: *cfg.LastF}
	}
	return
}

// Legend returns the legend keys in order
func (o *Chart) Legend() []string {
	return []string{KeyLaminar, KeyRoughness, KeyTransition, KeyTransTurb, KeyFullyTurb}
}

// Ticks returns all f ticks sorted, with labels
func (o *Chart) Ticks() (values []float64, labels []string) {
	values = append(append(values, o.MinorTicks...), o.MajorTicks...)
	sort.Float64s(values)
	for _, v := range values {
		labels = append(labels, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return
}

// RoughnessLabel formats ε/D with 5 decimals and without trailing zeros
func RoughnessLabel(r float64) string {
	return strings.TrimRight(strconv.FormatFloat(r, 'f', 5, 64), "0")
}

func (o *Chart) addEntity(alias, key string, pts []ana.Point, sty Style) {
	pts = thin(pts, maxPoints)
	e := &Entity{Alias: alias, Key: key, X: make([]float64, len(pts)), Y: make([]float64, len(pts)), Style: sty}
	for i, p := range pts {
		e.X[i], e.Y[i] = p.Re, p.F
	}
	o.Entities = append(o.Entities, e)
}

// addRegions adds the transitionally turbulent zone (between Re = 4500 and the transition
// line) and the fully turbulent zone (between the transition line and its max Re)
func (o *Chart) addRegions(trans *ana.TransitionCurve) {
	_, ReMax := trans.ReRange()
	fMin, fMax := trans.FRange()
	n := len(trans.Points)

	tt := &Region{Key: KeyTransTurb, Style: Styles["trans-turbulent"]}
	ft := &Region{Key: KeyFullyTurb, Style: Styles["fully-turbulent"]}
	for _, p := range thin(trans.Points, maxPoints) {
		tt.X, tt.Y = append(tt.X, p.Re), append(tt.Y, p.F)
		ft.X, ft.Y = append(ft.X, p.Re), append(ft.Y, p.F)
	}
	tt.X = append(tt.X, ana.ReCritMax, ana.ReCritMax, ReMax)
	tt.Y = append(tt.Y, fMax, fBottom, fBottom)
	ft.X = append(ft.X, ReMax, ReMax)
	ft.Y = append(ft.Y, fMax, fMin)
	if n > 0 {
		o.Regions = append(o.Regions, tt, ft)
	}
}

// thin returns at most n points of pts keeping the first and last ones
func thin(pts []ana.Point, n int) []ana.Point {
	if len(pts) <= n || n < 2 {
		return pts
	}
	res := make([]ana.Point, 0, n)
	step := float64(len(pts)-1) / float64(n-1)
	for i := 0; i < n; i++ {
		res = append(res, pts[int(float64(i)*step+0.5)])
	}
	res[n-1] = pts[len(pts)-1]
	return res
}
