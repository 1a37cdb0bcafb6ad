// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package friction

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Blasius implements the smooth-pipe turbulent correlation
//
//   f = C / Re^N    with C = 0.316 and N = 0.25
//
type Blasius struct {
	C float64
	N float64
}

// add model to factory
func init() {
	allocators["blasius"] = func() Model { return &Blasius{C: 0.316, N: 0.25} }
}

// Init initialises this structure
func (o *Blasius) Init(prms dbf.Params) (err error) {
	o.C, o.N = 0.316, 0.25
	for _, p := range prms {
		switch p.N {
		case "c":
			o.C = p.V
		case "n":
			o.N = p.V
		}
	}
	if o.N <= 0 {
		return chk.Err("Blasius model: exponent n must be positive. n = %g is invalid", o.N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Blasius) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "c", V: 0.316},
		&dbf.P{N: "n", V: 0.25},
	}
}

// F computes f
func (o Blasius) F(Re float64) float64 {
	return o.C / math.Pow(Re, o.N)
}
