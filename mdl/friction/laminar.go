// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package friction

import "github.com/cpmech/gosl/fun/dbf"

// Laminar implements the Hagen-Poiseuille friction factor
//
//   f = C / Re    with C = 64 for circular pipes
//
type Laminar struct {
	C float64
}

// add model to factory
func init() {
	allocators["laminar"] = func() Model { return &Laminar{C: 64} }
}

// Init initialises this structure
func (o *Laminar) Init(prms dbf.Params) (err error) {
	o.C = 64
	if p := prms.Find("c"); p != nil {
		o.C = p.V
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Laminar) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "c", V: 64},
	}
}

// F computes f. Re must be positive
func (o Laminar) F(Re float64) float64 {
	return o.C / Re
}
