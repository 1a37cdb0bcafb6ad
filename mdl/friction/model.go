// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package friction implements correlations for the Darcy friction factor in pipes
//  References:
//   [1] Haaland SE (1983) Simple and explicit formulas for the friction factor in turbulent
//       pipe flow. Journal of Fluids Engineering, 105(1), 89-90
//   [2] Moody LF (1944) Friction factors for pipe flow. Transactions of the ASME, 66(8), 671-684
package friction

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines friction factor models
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	F(Re float64) float64            // computes the Darcy friction factor
}

// New returns a new friction model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'friction' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
