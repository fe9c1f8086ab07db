// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the cross-section property database: tables of
// 6x6 stiffness and mass matrices shared by the beam elements
package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// Sections holds the cross-section database. Elements reference entries by
// index; many elements may share one entry. Stiffness inverses are computed
// once, on construction, for use as flexibility matrices by the solver.
type Sections struct {
	Stiffness    []*la.Matrix // [nstiff] 6x6 stiffness matrices
	InvStiffness []*la.Matrix // [nstiff] 6x6 inverted stiffness matrices
	Mass         []*la.Matrix // [nmass] 6x6 mass matrices
}

// NewSections builds the database from raw stiffness and mass tables and
// inverts every stiffness entry. A singular stiffness matrix is a fatal
// input error identifying the offending index.
func NewSections(stiffDb, massDb [][][]float64) (o *Sections, err error) {
	o = new(Sections)
	o.Stiffness = make([]*la.Matrix, len(stiffDb))
	o.InvStiffness = make([]*la.Matrix, len(stiffDb))
	o.Mass = make([]*la.Matrix, len(massDb))
	for k, s := range stiffDb {
		o.Stiffness[k] = la.NewMatrixDeep2(s)
		o.InvStiffness[k], err = invert6(o.Stiffness[k])
		if err != nil {
			return nil, chk.Err("stiffness matrix %d cannot be inverted: %v", k, err)
		}
	}
	for k, m := range massDb {
		o.Mass[k] = la.NewMatrixDeep2(m)
	}
	return
}

// Nstiff returns the number of stiffness entries
func (o *Sections) Nstiff() int { return len(o.Stiffness) }

// Nmass returns the number of mass entries
func (o *Sections) Nmass() int { return len(o.Mass) }

// invert6 inverts one 6x6 section matrix
func invert6(a *la.Matrix) (ai *la.Matrix, err error) {
	d := mat.NewDense(6, 6, nil)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			d.Set(i, j, a.Get(i, j))
		}
	}
	var di mat.Dense
	err = di.Inverse(d)
	if err != nil {
		return
	}
	ai = la.NewMatrix(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			ai.Set(i, j, di.At(i, j))
		}
	}
	return
}
