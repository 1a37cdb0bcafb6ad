// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// names of the PDF files
const (
	FnVertical   = "vertical_moody_chart.pdf"
	FnHorizontal = "horizontal_moody_chart.pdf"
)

// sizes of the figures
var (
	SizeVertical   = [2]vg.Length{8.5 * vg.Inch, 11 * vg.Inch}
	SizeHorizontal = [2]vg.Length{11 * vg.Inch, 8.5 * vg.Inch}
	SizeWeb        = [2]vg.Length{11 * vg.Inch, 8.5 * vg.Inch}
)

// Draw draws the chart using gonum/plot
func (o *Chart) Draw() (p *plot.Plot, err error) {

	// axes
	p = plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.Xlbl
	p.Y.Label.Text = o.Ylbl
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	values, labels := o.Ticks()
	ticks := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: labels[i]}
	}
	p.Y.Tick.Marker = ticks

	// grid
	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(grid)

	// regions
	thumbs := make(map[string]plot.Thumbnailer)
	for _, r := range o.Regions {
		poly, e := plotter.NewPolygon(toXYs(r.X, r.Y))
		if e != nil {
			return nil, chk.Err("cannot draw region %q:\n%v", r.Key, e)
		}
		poly.Color = r.Style.RGBA()
		poly.LineStyle.Width = 0
		p.Add(poly)
		thumbs[r.Key] = poly
	}

	// lines
	for _, ent := range o.Entities {
		line, e := plotter.NewLine(toXYs(ent.X, ent.Y))
		if e != nil {
			return nil, chk.Err("cannot draw line %q:\n%v", ent.Alias, e)
		}
		line.LineStyle = ent.Style.LineStyle()
		p.Add(line)
		if ent.Key != "" {
			thumbs[ent.Key] = line
		}
	}

	// intervals
	sty := Styles["arrow"]
	for _, iv := range o.Intervals {
		pts := toXYs([]float64{iv.Re0, iv.Re1}, []float64{iv.F, iv.F})
		line, ends, e := plotter.NewLinePoints(pts)
		if e != nil {
			return nil, chk.Err("cannot draw interval %q:\n%v", iv.Name, e)
		}
		line.LineStyle = sty.LineStyle()
		ends.GlyphStyle = draw.GlyphStyle{Color: sty.RGBA(), Radius: vg.Points(2), Shape: draw.BoxGlyph{}}
		p.Add(line, ends)
	}

	// labels
	if len(o.Labels) > 0 {
		xy := plotter.XYLabels{XYs: make(plotter.XYs, len(o.Labels)), Labels: make([]string, len(o.Labels))}
		for i, l := range o.Labels {
			xy.XYs[i].X, xy.XYs[i].Y = l.X, l.Y
			xy.Labels[i] = l.Text
		}
		lbls, e := plotter.NewLabels(xy)
		if e != nil {
			return nil, chk.Err("cannot draw labels:\n%v", e)
		}
		for i, l := range o.Labels {
			lbls.TextStyle[i].XAlign = xAlign(l.Ha)
			lbls.TextStyle[i].YAlign = yAlign(l.Va)
			lbls.TextStyle[i].Font.Size = vg.Points(8)
			if l.Small {
				lbls.TextStyle[i].Font.Size = vg.Points(7)
			}
		}
		p.Add(lbls)
	}

	// point
	if o.Point != nil {
		sc, e := plotter.NewScatter(plotter.XYs{{X: o.Point.Re, Y: o.Point.F}})
		if e != nil {
			return nil, chk.Err("cannot draw point:\n%v", e)
		}
		ps := Styles["point"]
		sc.GlyphStyle = draw.GlyphStyle{Color: ps.RGBA(), Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
		p.Add(sc)
	}

	// legend
	for _, key := range o.Legend() {
		if t, ok := thumbs[key]; ok {
			p.Legend.Add(key, t)
		}
	}
	p.Legend.Top = true
	p.Legend.Left = true

	// ranges must be set after adding plotters
	p.X.Min, p.X.Max = o.Xrange[0], o.Xrange[1]
	p.Y.Min, p.Y.Max = o.Yrange[0], o.Yrange[1]
	return
}

// WriteSVG writes the chart in SVG format
func (o *Chart) WriteSVG(w goio.Writer) (err error) {
	p, err := o.Draw()
	if err != nil {
		return
	}
	wt, err := p.WriterTo(SizeWeb[0], SizeWeb[1], "svg")
	if err != nil {
		return
	}
	_, err = wt.WriteTo(w)
	return
}

// SavePDF saves the vertical (8.5×11) and horizontal (11×8.5) PDF files into dirout
//  Note: nothing is written if SavePdf is false
func (o *Chart) SavePDF(dirout string) (fnames []string, err error) {
	if !o.SavePdf {
		return
	}
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return nil, chk.Err("cannot create directory for PDF files:\n%v", err)
	}
	p, err := o.Draw()
	if err != nil {
		return
	}
	for _, f := range []struct {
		fn   string
		size [2]vg.Length
	}{
		{FnVertical, SizeVertical},
		{FnHorizontal, SizeHorizontal},
	} {
		fn := filepath.Join(dirout, f.fn)
		if err = p.Save(f.size[0], f.size[1], fn); err != nil {
			return nil, chk.Err("cannot save %q:\n%v", fn, err)
		}
		io.Pf("file <%s> written\n", fn)
		fnames = append(fnames, fn)
	}
	return
}

func toXYs(X, Y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(X))
	for i := range X {
		pts[i].X, pts[i].Y = X[i], Y[i]
	}
	return pts
}

func xAlign(ha string) draw.XAlignment {
	switch ha {
	case "center":
		return draw.XCenter
	case "right":
		return draw.XRight
	}
	return draw.XLeft
}

func yAlign(va string) draw.YAlignment {
	switch va {
	case "center":
		return draw.YCenter
	case "top":
		return draw.YTop
	}
	return draw.YBottom
}
