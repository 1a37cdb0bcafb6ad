// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package friction

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Haaland implements the explicit turbulent friction factor correlation of [1]
//
//              0.3086
//   f = ─────────────────────────────────
//       log10(6.9/Re + (ε/D / 3.7)^1.11)²
//
//  Rr is the relative roughness ε/D
type Haaland struct {
	Rr float64
}

// add model to factory
func init() {
	allocators["haaland"] = func() Model { return new(Haaland) }
}

// Init initialises this structure
func (o *Haaland) Init(prms dbf.Params) (err error) {
	p := prms.Find("rr")
	if p == nil {
		return chk.Err("Haaland model: relative roughness 'rr' must be given")
	}
	if p.V < 0 {
		return chk.Err("Haaland model: relative roughness must be non-negative. rr = %g is invalid", p.V)
	}
	o.Rr = p.V
	return
}

// GetPrms gets (an example) of parameters
func (o Haaland) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rr", V: 0.001},
		}
	}
	return dbf.Params{
		&dbf.P{N: "rr", V: o.Rr},
	}
}

// F computes f
func (o Haaland) F(Re float64) float64 {
	l := math.Log10(6.9/Re + o.term())
	return 0.3086 / (l * l)
}

// Critical computes the dashed continuation across the critical zone (2000 ≤ Re ≤ 4500)
//
//   f = (1 / (-1.8 log10((ε/D / 3.7)^1.11 + 6.9/Re)))²
//
func (o Haaland) Critical(Re float64) float64 {
	d := 1.0 / (-1.8 * math.Log10(o.term()+6.9/Re))
	return d * d
}

// FullyRough computes the asymptotic friction factor as Re → ∞
//
//   fT = 0.3086 / (1.11 log10(ε/D / 3.7))²
//
//  Note: returns 0 for a smooth pipe (Rr = 0) since there is no rough asymptote
func (o Haaland) FullyRough() float64 {
	if o.Rr <= 0 {
		return 0
	}
	l := 1.11 * math.Log10(o.Rr/3.7)
	return 0.3086 / (l * l)
}

func (o Haaland) term() float64 {
	return math.Pow(o.Rr/3.7, 1.11)
}
