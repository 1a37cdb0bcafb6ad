// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.mdy) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/InsuvaiK/moody/ana"
	"github.com/InsuvaiK/moody/mdl/flow"
	"github.com/InsuvaiK/moody/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// ChartData holds the sampling of the chart
type ChartData struct {
	NumTurb int     `json:"nturb"` // samples along turbulent curves
	NumCrit int     `json:"ncrit"` // samples along critical zone
	NumLam  int     `json:"nlam"`  // samples along laminar line
	NumScan int     `json:"nscan"` // roughness values when solving the transition line
	Seed    float64 `json:"seed"`  // initial guess of Re for the transition line
}

// Config holds all settings of the application
type Config struct {
	Desc     string     `json:"desc"`     // description
	DirOut   string     `json:"dirout"`   // directory for PDF files
	Addr     string     `json:"addr"`     // address of web server
	SavePdf  bool       `json:"savepdf"`  // save PDF files of the chart
	Verbose  bool       `json:"verbose"`  // show messages
	Chart    ChartData  `json:"chart"`    // chart sampling
	Defaults dbf.Params `json:"defaults"` // default inputs of the calculator

	// derived
	Key string // filename key of configuration file; "default" if not read from file
}

// DefaultConfig returns the default settings
func DefaultConfig() *Config {
	var sample flow.Sample
	grid := ana.DefaultGrid()
	scan := ana.DefaultScan()
	return &Config{
		Desc:    "Moody chart",
		DirOut:  "/tmp/moody",
		Addr:    ":8080",
		Verbose: true,
		Chart: ChartData{
			NumTurb: grid.NumTurbulent,
			NumCrit: grid.NumCritical,
			NumLam:  grid.NumLaminar,
			NumScan: scan.N,
			Seed:    scan.Seed,
		},
		Defaults: sample.GetPrms(true),
		Key:      "default",
	}
}

// ReadConfig reads configuration file. Values missing in the file keep their defaults.
//  Note: an empty path returns the defaults
func ReadConfig(path string) (o *Config, err error) {
	o = DefaultConfig()
	if path == "" {
		return
	}
	b, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, chk.Err("cannot read configuration file %q:\n%v", path, err)
	}
	defaults := o.Defaults
	o.Defaults = nil
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot unmarshal configuration file %q:\n%v", path, err)
	}
	o.Defaults = mergeParams(defaults, o.Defaults)
	o.Key = io.FnKey(filepath.Base(path))
	if err = o.Check(); err != nil {
		return nil, err
	}
	return
}

// Check checks the settings
func (o *Config) Check() error {
	if err := o.Grid().Check(); err != nil {
		return err
	}
	if o.Chart.NumScan < 2 {
		return chk.Err("chart: nscan must be at least 2. nscan = %d is invalid", o.Chart.NumScan)
	}
	if o.Chart.Seed <= 0 {
		return chk.Err("chart: seed must be positive. seed = %g is invalid", o.Chart.Seed)
	}
	for _, p := range o.Defaults {
		switch p.N {
		case "viscosity", "density", "velocity", "diameter":
		default:
			return chk.Err("defaults: parameter %q is unknown", p.N)
		}
	}
	_, err := o.Sample()
	return err
}

// Sample returns the default fluid sample
func (o *Config) Sample() (s flow.Sample, err error) {
	if err = s.Init(o.Defaults); err != nil {
		return s, chk.Err("defaults: %v", err)
	}
	return
}

// Grid returns the sampling of the chart curves
func (o *Config) Grid() ana.Grid {
	return ana.Grid{NumTurbulent: o.Chart.NumTurb, NumCritical: o.Chart.NumCrit, NumLaminar: o.Chart.NumLam}
}

// ChartConfig returns the input of out.NewChart
func (o *Config) ChartConfig() out.ChartConfig {
	scan := ana.DefaultScan()
	scan.N = o.Chart.NumScan
	scan.Seed = o.Chart.Seed
	return out.ChartConfig{
		SavePdf: o.SavePdf,
		Grid:    o.Grid(),
		Scan:    scan,
		Verbose: o.Verbose,
	}
}

// mergeParams returns a copy of defaults with values replaced by those in prms
func mergeParams(defaults, prms dbf.Params) (res dbf.Params) {
	for _, d := range defaults {
		p := &dbf.P{N: d.N, V: d.V}
		for _, q := range prms {
			if q.N == p.N {
				p.V = q.V
			}
		}
		res = append(res, p)
	}
	for _, q := range prms {
		found := false
		for _, p := range res {
			if p.N == q.N {
				found = true
			}
		}
		if !found {
			res = append(res, q)
		}
	}
	return
}
