// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/InsuvaiK/moody/ana"
	"github.com/InsuvaiK/moody/mdl/flow"
	"github.com/InsuvaiK/moody/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// page holds the data of a rendered section
type page struct {
	Section    *Section
	Sections   []Section
	References []string

	// calculation
	Sample     flow.Sample
	Error      string
	Reynolds   string
	Regime     string
	Friction   string
	Determined bool

	// plot
	Point *ana.Point // nil if not given or invalid
}

// CalcResult is the response of /api/calc
type CalcResult struct {
	Reynolds   float64  `json:"reynolds"`
	Regime     string   `json:"regime"`
	Friction   *float64 `json:"friction"` // null if undetermined
	Determined bool     `json:"determined"`
	Text       string   `json:"text"` // friction factor or "uncertain"
	Error      string   `json:"error,omitempty"`
}

func (o *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/section/"+Sections[0].Key, http.StatusFound)
}

// handleNav receives the radio button selection
func (o *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if findSection(name) == nil {
		name = Sections[0].Key
	}
	http.Redirect(w, r, "/section/"+name, http.StatusFound)
}

func (o *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	sec := findSection(r.PathValue("name"))
	if sec == nil {
		http.NotFound(w, r)
		return
	}
	p := &page{Section: sec, Sections: Sections, References: References}
	switch sec.Key {
	case "calculation":
		o.calculation(p, r.URL.Query())
	case "plot":
		pt, err := parsePoint(r.URL.Query())
		if err != nil {
			p.Error = err.Error()
		}
		p.Point = pt
	}
	var buf bytes.Buffer
	if err := templates[sec.Key].Execute(&buf, p); err != nil {
		io.PfRed("cannot render section %q: %v\n", sec.Key, err)
		http.Error(w, "cannot render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// calculation fills the calculator part of the page
func (o *Server) calculation(p *page, q url.Values) {
	defaults, err := o.cfg.Sample()
	if err != nil {
		p.Error = err.Error()
		return
	}
	sample, err := parseSample(q, defaults)
	p.Sample = sample
	if err != nil {
		p.Error = err.Error()
		return
	}
	res, err := flow.Calc(sample)
	if err != nil {
		p.Error = err.Error()
		return
	}
	p.Reynolds = strconv.FormatFloat(res.Reynolds, 'g', -1, 64)
	p.Regime = res.Regime.Describe()
	p.Friction = res.Factor.String()
	p.Determined = res.Factor.Determined()
}

func (o *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	var resp CalcResult
	status := http.StatusOK
	sample, err := o.cfg.Sample()
	if err == nil {
		sample, err = parseSample(r.URL.Query(), sample)
	}
	if err == nil {
		var res flow.Result
		res, err = flow.Calc(sample)
		if err == nil {
			resp.Reynolds = res.Reynolds
			resp.Regime = res.Regime.String()
			resp.Text = res.Factor.String()
			if f, ok := res.Factor.Value(); ok {
				resp.Friction = &f
				resp.Determined = true
			}
		}
	}
	if err != nil {
		resp.Error = err.Error()
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		io.PfRed("cannot encode calculation result: %v\n", err)
	}
}

func (o *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	cfg := o.cfg.ChartConfig()
	cfg.SavePdf = false
	cfg.Verbose = false
	pt, err := parsePoint(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pt != nil {
		cfg.LastRe, cfg.LastF = &pt.Re, &pt.F
	}
	chart, err := out.NewChart(cfg)
	if err != nil {
		io.PfRed("cannot compute chart: %v\n", err)
		http.Error(w, "cannot compute chart", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err = chart.WriteSVG(&buf); err != nil {
		io.PfRed("cannot draw chart: %v\n", err)
		http.Error(w, "cannot draw chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	buf.WriteTo(w)
}

// parseSample reads the four numeric fields; missing fields take the default values
func parseSample(q url.Values, defaults flow.Sample) (s flow.Sample, err error) {
	s = defaults
	for _, f := range []struct {
		key string
		v   *float64
	}{
		{"viscosity", &s.Viscosity},
		{"density", &s.Density},
		{"velocity", &s.Velocity},
		{"diameter", &s.Diameter},
	} {
		txt := q.Get(f.key)
		if txt == "" {
			continue
		}
		v, e := strconv.ParseFloat(txt, 64)
		if e != nil {
			return s, fmt.Errorf("%w: %s must be a number. %q is invalid", flow.ErrInvalidInput, f.key, txt)
		}
		*f.v = v
	}
	return
}

// parsePoint reads re and f. Returns nil if any is missing
func parsePoint(q url.Values) (p *ana.Point, err error) {
	if q.Get("re") == "" || q.Get("f") == "" {
		return
	}
	Re, err := strconv.ParseFloat(q.Get("re"), 64)
	if err != nil || Re <= 0 {
		return nil, chk.Err("re must be a positive number")
	}
	f, err := strconv.ParseFloat(q.Get("f"), 64)
	if err != nil || f <= 0 {
		return nil, chk.Err("f must be a positive number")
	}
	return &ana.Point{Re: Re, F: f}, nil
}
