// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/rafapalacios/gobeam/inp"
)

// zero3x3 returns a zeroed 3x3 inertia tensor
func zero3x3() [][]float64 { return utl.Alloc(3, 3) }

func Test_lumped01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lumped01. point mass with offset, no rotational inertia")

	m := 2.0
	r := []float64{1, 0, 0}
	blk := RigidBodyBlock(m, r, zero3x3())

	chk.Deep2(tst, "block", 1e-15, blk.GetDeep2(), [][]float64{
		{2, 0, 0, 0, 0, 0},
		{0, 2, 0, 0, 0, 2},
		{0, 0, 2, 0, -2, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, -2, 0, 2, 0},
		{0, 2, 0, 0, 0, 2},
	})
}

func Test_lumped02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lumped02. consolidation is linear and order independent")

	generate := func(order []int) *Domain {
		// two lumped masses on the shared node 1 of a two-element chain
		m := twoElemModel()
		masses := []float64{1.5, 0.5}
		inertia := [][][]float64{zero3x3(), zero3x3()}
		inertia[1][2][2] = 0.04
		position := [][]float64{{0.2, 0, 0}, {0, -0.1, 0.3}}

		m.LumpedMass = []float64{masses[order[0]], masses[order[1]]}
		m.LumpedMassNodes = []int{1, 1}
		m.LumpedMassInertia = [][][]float64{inertia[order[0]], inertia[order[1]]}
		m.LumpedMassPosition = [][]float64{position[order[0]], position[order[1]]}

		set := new(inp.Settings)
		set.SetDefault()
		dom, err := NewDomain(m, set)
		if err != nil {
			tst.Errorf("NewDomain failed:\n%v", err)
			return nil
		}
		return dom
	}

	a := generate([]int{0, 1})
	b := generate([]int{1, 0})
	if a == nil || b == nil {
		return
	}

	// node 1 masters at (elem 0, local node 1)
	ba := a.Elems[0].RBMass[1]
	bb := b.Elems[0].RBMass[1]
	chk.Deep2(tst, "accumulated block", 1e-15, ba.GetDeep2(), bb.GetDeep2())

	// total translational mass on the diagonal
	chk.Float64(tst, "m total", 1e-15, ba.Get(0, 0), 2.0)

	// slave occurrence carries no block
	if a.Elems[1].RBMass != nil {
		tst.Errorf("element 1 should carry no rigid-body mass blocks")
	}
}

func Test_lumped03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lumped03. inertia tensor adds to the rotational block")

	m := 3.0
	r := []float64{0, 0, 0}
	j := zero3x3()
	j[0][0] = 0.1
	j[1][1] = 0.2
	j[2][2] = 0.3
	blk := RigidBodyBlock(m, r, j)

	// zero offset: no coupling, rotational block is j itself
	for i := 0; i < 3; i++ {
		chk.Float64(tst, "translational diag", 1e-15, blk.Get(i, i), m)
		chk.Float64(tst, "rotational diag", 1e-15, blk.Get(3+i, 3+i), j[i][i])
		for k := 0; k < 3; k++ {
			chk.Float64(tst, "coupling ul", 1e-15, blk.Get(i, 3+k), 0)
			chk.Float64(tst, "coupling ll", 1e-15, blk.Get(3+i, k), 0)
		}
	}
}

func Test_lumped04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lumped04. mass on a node with no master is rejected")

	m := twoElemModel()
	m.NumNode = 4 // node 3 exists but no element references it
	m.Coordinates = append(m.Coordinates, []float64{3, 0, 0})
	m.StructuralTwist = append(m.StructuralTwist, 0)
	m.BoundaryConditions = append(m.BoundaryConditions, 0)
	m.AppForces = nil
	m.Defaults()
	m.LumpedMass = []float64{1.0}
	m.LumpedMassNodes = []int{3}
	m.LumpedMassInertia = [][][]float64{zero3x3()}
	m.LumpedMassPosition = [][]float64{{0, 0, 0}}

	set := new(inp.Settings)
	set.SetDefault()
	_, err := NewDomain(m, set)
	if err == nil {
		tst.Errorf("NewDomain should have failed: node 3 has no master element")
	}
}
