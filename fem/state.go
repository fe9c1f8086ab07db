// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// State holds one structural snapshot of the time-step sequence: nodal
// positions, element-node rotation vectors, body orientation and applied
// forces. Snapshots never share backing arrays; see GetCopy.
type State struct {
	Pos          [][]float64   // [nn][3] nodal positions
	Psi          [][][]float64 // [ne][nne][3] rotation vectors per element-node
	Quat         []float64     // [4] body orientation quaternion
	SteadyForces [][]float64   // [nn][6] steady applied forces
}

// NewState allocates a zeroed snapshot
func NewState(numNode, numElem, numNodeElem int) (o *State) {
	o = new(State)
	o.Pos = utl.Alloc(numNode, 3)
	o.Psi = utl.Deep3alloc(numElem, numNodeElem, 3)
	o.Quat = []float64{1, 0, 0, 0}
	o.SteadyForces = utl.Alloc(numNode, 6)
	return
}

// GetCopy returns a deep copy of this snapshot
func (o *State) GetCopy() (c *State) {
	c = NewState(len(o.Pos), len(o.Psi), len(o.Psi[0]))
	for i := range o.Pos {
		copy(c.Pos[i], o.Pos[i])
		copy(c.SteadyForces[i], o.SteadyForces[i])
	}
	for ie := range o.Psi {
		for in := range o.Psi[ie] {
			copy(c.Psi[ie][in], o.Psi[ie][in])
		}
	}
	copy(c.Quat, o.Quat)
	return
}

// UpdateOrientation normalises quat and stores it as the body orientation.
// quat must have 4 components and a nonzero norm; Settings.Check enforces
// this at the input boundary
func (o *State) UpdateOrientation(quat []float64) {
	if len(quat) != 4 {
		chk.Panic("orientation quaternion must have 4 components; got %d", len(quat))
	}
	sum := 0.0
	for _, q := range quat {
		sum += q * q
	}
	norm := math.Sqrt(sum)
	if norm < 1e-12 {
		chk.Panic("orientation quaternion has zero norm")
	}
	for i := 0; i < 4; i++ {
		o.Quat[i] = quat[i] / norm
	}
}
