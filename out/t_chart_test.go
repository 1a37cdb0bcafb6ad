// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/InsuvaiK/moody/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func smallConfig() ChartConfig {
	cfg := DefaultChartConfig()
	cfg.Grid = ana.Grid{NumTurbulent: 101, NumCritical: 21, NumLaminar: 21}
	cfg.Scan.N = 500
	return cfg
}

func Test_chart01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chart01. chart model")

	cfg := smallConfig()
	o, err := NewChart(cfg)
	if err != nil {
		tst.Errorf("NewChart failed: %v\n", err)
		return
	}

	// 2 laminar + 2 per roughness + transition
	chk.Int(tst, "entities", len(o.Entities), 2+2*len(ana.RelativeRoughness)+1)
	chk.Int(tst, "regions", len(o.Regions), 2)
	chk.Int(tst, "intervals", len(o.Intervals), 3)
	chk.Int(tst, "labels", len(o.Labels), len(ana.RelativeRoughness)+3)
	chk.Int(tst, "curves", len(o.Curves), len(ana.RelativeRoughness))
	if o.Point != nil {
		tst.Errorf("point must be nil\n")
	}

	// legend keys are all available
	keys := make(map[string]bool)
	for _, e := range o.Entities {
		if e.Key != "" {
			keys[e.Key] = true
		}
	}
	for _, r := range o.Regions {
		keys[r.Key] = true
	}
	for _, k := range o.Legend() {
		if !keys[k] {
			tst.Errorf("legend key %q has no entity\n", k)
		}
	}

	// transitionally turbulent region is closed at Re = 4500 and f = 0.007
	tt := o.Regions[0]
	n := len(tt.X)
	chk.Float64(tst, "x", 1e-15, tt.X[n-3], ana.ReCritMax)
	chk.Float64(tst, "y", 1e-15, tt.Y[n-2], 0.007)

	// ticks
	values, labels := o.Ticks()
	chk.Int(tst, "nticks", len(values), 15)
	chk.Float64(tst, "first tick", 1e-15, values[0], 0.008)
	chk.String(tst, labels[len(labels)-1], "0.1")
}

func Test_chart02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chart02. roughness labels")

	chk.String(tst, RoughnessLabel(0), "0.")
	chk.String(tst, RoughnessLabel(0.00001), "0.00001")
	chk.String(tst, RoughnessLabel(0.0008), "0.0008")
	chk.String(tst, RoughnessLabel(0.015), "0.015")
	chk.String(tst, RoughnessLabel(0.05), "0.05")
}

func Test_chart03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chart03. files are written only if requested")

	cfg := smallConfig()
	Re, f := 99700.0, 0.0178
	cfg.LastRe, cfg.LastF = &Re, &f
	o, err := NewChart(cfg)
	if err != nil {
		tst.Errorf("NewChart failed: %v\n", err)
		return
	}
	chk.Float64(tst, "point Re", 1e-15, o.Point.Re, Re)

	dirout := tst.TempDir()
	fnames, err := o.SavePDF(dirout)
	if err != nil {
		tst.Errorf("SavePDF failed: %v\n", err)
		return
	}
	chk.Int(tst, "no files", len(fnames), 0)
	entries, _ := os.ReadDir(dirout)
	chk.Int(tst, "empty dir", len(entries), 0)

	o.SavePdf = true
	fnames, err = o.SavePDF(dirout)
	if err != nil {
		tst.Errorf("SavePDF failed: %v\n", err)
		return
	}
	chk.Int(tst, "two files", len(fnames), 2)
	for _, fn := range []string{FnVertical, FnHorizontal} {
		b, err := os.ReadFile(filepath.Join(dirout, fn))
		if err != nil {
			tst.Errorf("cannot read %s: %v\n", fn, err)
			return
		}
		if !bytes.HasPrefix(b, []byte("%PDF")) {
			tst.Errorf("%s is not a PDF file\n", fn)
		}
	}
}

func Test_chart04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chart04. svg")

	o, err := NewChart(smallConfig())
	if err != nil {
		tst.Errorf("NewChart failed: %v\n", err)
		return
	}
	var buf bytes.Buffer
	err = o.WriteSVG(&buf)
	if err != nil {
		tst.Errorf("WriteSVG failed: %v\n", err)
		return
	}
	io.Pforan("svg size = %d\n", buf.Len())
	if !strings.Contains(buf.String(), "<svg") {
		tst.Errorf("output is not svg\n")
	}

	if chk.Verbose {
		o.PlotMpl("/tmp/moody", "chart04")
	}
}

func Test_chart05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chart05. thin")

	pts := make([]ana.Point, 10001)
	for i := range pts {
		pts[i].Re = float64(i)
	}
	res := thin(pts, 100)
	chk.Int(tst, "n", len(res), 100)
	chk.Float64(tst, "first", 1e-15, res[0].Re, 0)
	chk.Float64(tst, "last", 1e-15, res[99].Re, 10000)
	chk.Int(tst, "untouched", len(thin(pts[:50], 100)), 50)
}

func Test_styles01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("styles01")

	c := Styles["laminar"].RGBA()
	chk.Int(tst, "R", int(c.R), 0x80)
	chk.Int(tst, "A", int(c.A), 255)
	c = Styles["fully-turbulent"].RGBA()
	chk.Int(tst, "A", int(c.A), 25)
	chk.String(tst, lighten("#000000", 0), "#ffffff")
	chk.String(tst, lighten("#804000", 255), "#804000")
}
