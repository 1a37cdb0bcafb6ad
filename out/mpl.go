// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotMpl draws the chart with matplotlib and saves <dirout>/<fnkey>.png
//  Note: requires python3 with matplotlib
func (o *Chart) PlotMpl(dirout, fnkey string) {

	plt.Reset(true, &plt.A{WidthPt: 792, Prop: 8.5 / 11, Dpi: 150})

	// regions
	for _, r := range o.Regions {
		P := make([][]float64, len(r.X))
		for i := range r.X {
			P[i] = []float64{r.X[i], r.Y[i]}
		}
		c := r.Style.RGBA()
		plt.Polyline(P, &plt.A{Fc: lighten(r.Style.C, c.A), Ec: "none", Closed: true, L: r.Key})
	}

	// lines
	for _, ent := range o.Entities {
		plt.Plot(ent.X, ent.Y, ent.Style.Args(ent.Key))
	}

	// intervals and labels
	sty := Styles["arrow"]
	for _, iv := range o.Intervals {
		plt.Plot([]float64{iv.Re0, iv.Re1}, []float64{iv.F, iv.F}, sty.Args(""))
	}
	for _, l := range o.Labels {
		fsz := 8.0
		if l.Small {
			fsz = 7.0
		}
		plt.Text(l.X, l.Y, l.Text, &plt.A{Ha: l.Ha, Va: l.Va, Fsz: fsz})
	}

	// point
	if o.Point != nil {
		plt.Plot([]float64{o.Point.Re}, []float64{o.Point.F}, Styles["point"].Args(""))
	}

	// axes
	plt.SetXlog()
	plt.SetYlog()
	plt.AxisRange(o.Xrange[0], o.Xrange[1], o.Yrange[0], o.Yrange[1])
	plt.Title(o.Title, nil)
	plt.Gll(o.Xlbl, o.Ylbl, &plt.A{LegOut: true, LegNcol: 5})
	plt.Save(dirout, fnkey)
}

// lighten blends a #rrggbb color with white according to alpha (0..255)
func lighten(hex string, alpha uint8) string {
	c := Style{C: hex}.RGBA()
	a := float64(alpha) / 255
	mix := func(v uint8) uint8 { return uint8(float64(v)*a + 255*(1-a)) }
	return io.Sf("#%02x%02x%02x", mix(c.R), mix(c.G), mix(c.B))
}
