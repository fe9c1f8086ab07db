// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the geometric beam finite element: connectivity,
// initial geometry, element-local reference frame and nodal rotation vectors
package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// Beam represents one beam finite element of an assembled flexible body.
//
//	          e1 (frame delta direction, normal to axis)
//	           ^
//	           |
//	  (0)======+==========(2)======(1)---> e0 (element axis)
//
// Local nodes 0 and 1 are the element ends; middle nodes, if any, come
// after them in the connectivity row.
type Beam struct {

	// input data
	Id       int         // index of this element
	Nnodes   int         // number of nodes of this element
	Conn     []int       // [nnodes] global node indices (local-to-global map)
	X        [][]float64 // [nnodes][3] initial coordinates
	Delta    [][]float64 // [nnodes][3] frame-of-reference delta vectors
	Twist    []float64   // [nnodes] initial structural twist
	BeamNum  int         // beam group tag
	StiffIdx int         // index into stiffness database
	MassIdx  int         // index into mass database

	// derived
	L      float64     // length of element (distance between end nodes)
	PsiIni [][]float64 // [nnodes][3] initial Cartesian rotation vector per local node

	// lumped contributions; nil unless a lumped mass attaches here
	RBMass []*la.Matrix // [nnodes] 6x6 rigid-body mass blocks

	// unit vectors aligned with beam element
	e0 []float64 // [3] along element axis
	e1 []float64 // [3] along projected frame delta
	e2 []float64 // [3] e0 cross e1
}

// NewBeam creates a beam element, deriving its length and the initial
// rotation vector of each local node from the element tangent, the
// frame-of-reference delta and the structural twist
func NewBeam(id int, conn []int, x, delta [][]float64, twist []float64, beamNum, stiffIdx, massIdx int) (o *Beam, err error) {

	// basic data
	o = new(Beam)
	o.Id = id
	o.Nnodes = len(conn)
	o.Conn = make([]int, o.Nnodes)
	copy(o.Conn, conn)
	o.X = utl.Alloc(o.Nnodes, 3)
	o.Delta = utl.Alloc(o.Nnodes, 3)
	o.Twist = make([]float64, o.Nnodes)
	for i := 0; i < o.Nnodes; i++ {
		copy(o.X[i], x[i])
		copy(o.Delta[i], delta[i])
		o.Twist[i] = twist[i]
	}
	o.BeamNum = beamNum
	o.StiffIdx = stiffIdx
	o.MassIdx = massIdx

	// element axis. local nodes 0 and 1 are the end nodes
	o.e0 = make([]float64, 3)
	o.e1 = make([]float64, 3)
	o.e2 = make([]float64, 3)
	for i := 0; i < 3; i++ {
		o.e0[i] = o.X[1][i] - o.X[0][i]
	}
	o.L = floats.Norm(o.e0, 2)
	if o.L < 1e-14 {
		return nil, chk.Err("beam %d has zero length: end nodes %d and %d coincide", id, conn[0], conn[1])
	}
	for i := 0; i < 3; i++ {
		o.e0[i] /= o.L
	}

	// initial rotation vectors
	o.PsiIni = utl.Alloc(o.Nnodes, 3)
	for in := 0; in < o.Nnodes; in++ {
		err = o.nodeTriad(in)
		if err != nil {
			return nil, err
		}
	}
	return
}

// nodeTriad builds the local triad at node in and stores its CRV.
// e1 is the frame delta projected onto the plane normal to the axis,
// then the triad is rotated about e0 by the structural twist.
func (o *Beam) nodeTriad(in int) (err error) {

	// project delta onto plane normal to element axis
	d := o.Delta[in]
	dt := floats.Dot(d, o.e0)
	for i := 0; i < 3; i++ {
		o.e1[i] = d[i] - dt*o.e0[i]
	}
	n1 := floats.Norm(o.e1, 2)
	if n1 < 1e-12 {
		return chk.Err("beam %d: frame delta of local node %d is parallel to the element axis", o.Id, in)
	}
	for i := 0; i < 3; i++ {
		o.e1[i] /= n1
	}
	Cross3(o.e2, o.e0, o.e1)

	// rotation matrix with columns [e0 e1 e2], twisted about e0
	r := la.NewMatrix(3, 3)
	c := math.Cos(o.Twist[in])
	s := math.Sin(o.Twist[in])
	for i := 0; i < 3; i++ {
		r.Set(i, 0, o.e0[i])
		r.Set(i, 1, c*o.e1[i]+s*o.e2[i])
		r.Set(i, 2, -s*o.e1[i]+c*o.e2[i])
	}
	copy(o.PsiIni[in], MatToCRV(r))
	return
}

// AddRBMass accumulates a 6x6 rigid-body mass block into local node lnode,
// allocating the per-node block array on first use. Contributions add up;
// they are never overwritten.
func (o *Beam) AddRBMass(lnode int, blk *la.Matrix) {
	if o.RBMass == nil {
		o.RBMass = make([]*la.Matrix, o.Nnodes)
	}
	if o.RBMass[lnode] == nil {
		o.RBMass[lnode] = la.NewMatrix(6, 6)
	}
	m := o.RBMass[lnode]
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			m.Set(i, j, m.Get(i, j)+blk.Get(i, j))
		}
	}
}
