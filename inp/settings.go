// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Settings holds generation settings. Every optional entry and its default
// is enumerated here explicitly; validation happens once, not per access.
type Settings struct {
	Unsteady    bool      `json:"unsteady"`    // unsteady run: preallocate time steps
	NumSteps    int       `json:"num_steps"`   // number of time steps for unsteady runs
	Orientation []float64 `json:"orientation"` // [4] initial body orientation quaternion
}

// SetDefault sets default values
func (o *Settings) SetDefault() {
	o.Unsteady = false
	o.NumSteps = 0
	o.Orientation = []float64{1, 0, 0, 0}
}

// Check validates settings
func (o *Settings) Check() (err error) {
	if len(o.Orientation) != 4 {
		return chk.Err("orientation quaternion must have 4 components; got %d", len(o.Orientation))
	}
	sum := 0.0
	for _, q := range o.Orientation {
		sum += q * q
	}
	if math.Sqrt(sum) < 1e-12 {
		return chk.Err("orientation quaternion has zero norm")
	}
	if o.Unsteady && o.NumSteps < 1 {
		return chk.Err("unsteady run requires num_steps ≥ 1; got %d", o.NumSteps)
	}
	return
}
