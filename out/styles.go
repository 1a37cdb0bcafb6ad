// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"strconv"

	"github.com/cpmech/gosl/plt"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// colors of the chart
const (
	ColorLaminar    = "#800000" // maroon
	ColorRoughness  = "#000000" // black
	ColorArrows     = "#00bfff" // deepskyblue
	ColorTransition = "#a9a9a9" // darkgrey
	ColorTransTurb  = "#00bfff" // deepskyblue
	ColorFullyTurb  = "#804000" // brown
	ColorPoint      = "#ff0000" // red
)

// Style holds the line or fill style of a chart entity
type Style struct {
	C  string  // color in #rrggbb format
	Ls string  // line style: "-", "--", "-." or "none"
	Lw float64 // line width in points
	M  string  // marker: "" or "o"
	A  float64 // fill transparency; 0 means opaque
}

// Styles holds the styles of the chart entities
var Styles = map[string]Style{
	"laminar":         {C: ColorLaminar, Ls: "-", Lw: 1},
	"laminar-dashed":  {C: ColorLaminar, Ls: "--", Lw: 1},
	"roughness":       {C: ColorRoughness, Ls: "-", Lw: 0.8},
	"roughness-crit":  {C: ColorRoughness, Ls: "--", Lw: 0.8},
	"transition":      {C: ColorTransition, Ls: "-.", Lw: 1.2},
	"arrow":           {C: ColorArrows, Ls: "-", Lw: 1.5, M: "|"},
	"trans-turbulent": {C: ColorTransTurb, Ls: "none", A: 0.1},
	"fully-turbulent": {C: ColorFullyTurb, Ls: "none", A: 0.1},
	"point":           {C: ColorPoint, Ls: "none", M: "o"},
}

// RGBA converts the color of the style; alpha is applied if A > 0
func (o Style) RGBA() color.NRGBA {
	c := color.NRGBA{A: 255}
	if len(o.C) == 7 && o.C[0] == '#' {
		v, err := strconv.ParseUint(o.C[1:], 16, 32)
		if err == nil {
			c.R, c.G, c.B = uint8(v>>16), uint8(v>>8), uint8(v)
		}
	}
	if o.A > 0 {
		c.A = uint8(o.A * 255)
	}
	return c
}

// LineStyle returns the style for gonum/plot
func (o Style) LineStyle() (l draw.LineStyle) {
	l.Color = o.RGBA()
	l.Width = vg.Points(o.Lw)
	switch o.Ls {
	case "--":
		l.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	case "-.":
		l.Dashes = []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}
	case "none":
		l.Width = 0
	}
	return
}

// Args returns the arguments for gosl/plt (matplotlib)
func (o Style) Args(label string) *plt.A {
	a := &plt.A{C: o.C, Ls: o.Ls, Lw: o.Lw, M: o.M, L: label}
	if o.Ls == "none" {
		a.Ls = "None"
	}
	return a
}
