// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/chk"

// boundary condition codes
const (
	BcFree      = 0  // node carries both velocity and force unknowns
	BcKinematic = -1 // velocity unknowns only; excluded from the force space
	BcForce     = 1  // force unknowns only; motion is prescribed
)

// NumberDofs assigns the two independent DOF numbering spaces from the
// per-node boundary condition codes. vdof[n] and fdof[n] are packed
// 0-based indices, or -1 when node n does not participate in that space.
// The total count is six scalar unknowns per node of the velocity space.
func NumberDofs(bcs []int) (vdof, fdof []int, numDof int, err error) {
	nn := len(bcs)
	vdof = make([]int, nn)
	fdof = make([]int, nn)
	vcounter := -1
	fcounter := -1
	for n, bc := range bcs {
		vdof[n] = -1
		fdof[n] = -1
		switch bc {
		case BcFree:
			vcounter++
			fcounter++
			vdof[n] = vcounter
			fdof[n] = fcounter
		case BcKinematic:
			vcounter++
			vdof[n] = vcounter
		case BcForce:
			fcounter++
			fdof[n] = fcounter
		default:
			return nil, nil, 0, chk.Err("unknown boundary condition code %d of node %d", bc, n)
		}
	}
	if vcounter < 0 {
		return nil, nil, 0, chk.Err("no node carries velocity unknowns; the model cannot be solved")
	}
	numDof = 6 * (vcounter + 1)
	return
}
