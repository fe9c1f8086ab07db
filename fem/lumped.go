// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/rafapalacios/gobeam/ele"
	"github.com/rafapalacios/gobeam/inp"
)

// RigidBodyBlock transports a point mass m with offset r and rotational
// inertia j (about its own centroid) to the reference frame of the
// attachment node, as a spatial 6x6 inertia block:
//
//	M[0:3,0:3] = m I
//	M[0:3,3:6] = m skew(r)ᵀ
//	M[3:6,0:3] = m skew(r)
//	M[3:6,3:6] = j + m skew(r)ᵀ skew(r)
func RigidBodyBlock(m float64, r []float64, j [][]float64) (blk *la.Matrix) {
	blk = la.NewMatrix(6, 6)
	s := ele.Skew(r)
	for i := 0; i < 3; i++ {
		blk.Set(i, i, m)
	}
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			blk.Set(i, 3+k, m*s.Get(k, i))
			blk.Set(3+i, k, m*s.Get(i, k))
		}
	}
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			sts := 0.0
			for p := 0; p < 3; p++ {
				sts += s.Get(p, i) * s.Get(p, k)
			}
			blk.Set(3+i, 3+k, j[i][k]+m*sts)
		}
	}
	return
}

// lumpMasses folds every lumped mass record into the rigid-body mass block
// of the master (element, local node) occurrence of its attachment node.
// Contributions accumulate, so consolidation is order independent.
func (o *Domain) lumpMasses(m *inp.Model) (err error) {
	for k := range m.LumpedMass {
		node := m.LumpedMassNodes[k]
		ref := o.NodeMaster[node]
		if ref.Elem < 0 {
			// the node->master map should cover every connected node
			return chk.Err("lumped mass %d attaches to node %d which has no master element", k, node)
		}
		blk := RigidBodyBlock(m.LumpedMass[k], m.LumpedMassPosition[k], m.LumpedMassInertia[k])
		o.Elems[ref.Elem].AddRBMass(ref.Node, blk)
	}
	return
}
