// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/la"

// Export holds the model arrays in the convention of the external
// structural solver: 1-based index arrays (a 0 in an index array means
// "absent") and flat float64 arrays in column-major (Fortran) order.
// The internal model stays 0-based; only this boundary applies the
// external convention.
type Export struct {

	// per-element integers
	NumNodes         []int32 // [ne] nodes per element
	StiffnessIndices []int32 // [ne] 1-based stiffness database indices
	MassIndices      []int32 // [ne] 1-based mass database indices

	// topology, 1-based
	Conn           []int32 // (ne,nne) connectivities
	Master         []int32 // (ne,nne,2) master element/local-node per occurrence
	NodeMasterElem []int32 // (nn,2) master element/local-node per global node

	// DOF maps, 1-based; 0 means the node has no slot in that space
	Vdof []int32 // [nn]
	Fdof []int32 // [nn]

	// geometry and properties, column-major
	Length         []float64 // [ne]
	PosIni         []float64 // (nn,3)
	PsiIni         []float64 // (ne,nne,3)
	FrameDelta     []float64 // (ne,nne,3)
	Stiffness      []float64 // (nstiff,6,6)
	InvStiffness   []float64 // (nstiff,6,6)
	Mass           []float64 // (nmass,6,6)
	RBMass         []float64 // (ne,nne,6,6) rigid-body lumped mass blocks
}

// fidx2 returns the flat column-major index of a[i][j], dims (n1,_)
func fidx2(i, j, n1 int) int { return i + n1*j }

// fidx3 returns the flat column-major index of a[i][j][k], dims (n1,n2,_)
func fidx3(i, j, k, n1, n2 int) int { return i + n1*(j+n2*k) }

// fidx4 returns the flat column-major index of a[i][j][k][l], dims (n1,n2,n3,_)
func fidx4(i, j, k, l, n1, n2, n3 int) int { return i + n1*(j+n2*(k+n3*l)) }

// GenerateFortran marshals the assembled model into the external solver's
// layout. The returned arrays are fresh copies; mutating them does not
// affect the model.
func (o *Domain) GenerateFortran() (f *Export) {
	ne := o.NumElem
	nn := o.NumNode
	nne := o.NumNodeElem
	f = new(Export)

	// per-element integers
	f.NumNodes = make([]int32, ne)
	f.StiffnessIndices = make([]int32, ne)
	f.MassIndices = make([]int32, ne)
	f.Length = make([]float64, ne)
	for ie, e := range o.Elems {
		f.NumNodes[ie] = int32(e.Nnodes)
		f.StiffnessIndices[ie] = int32(e.StiffIdx) + 1
		f.MassIndices[ie] = int32(e.MassIdx) + 1
		f.Length[ie] = e.L
	}

	// topology
	f.Conn = make([]int32, ne*nne)
	f.Master = make([]int32, ne*nne*2)
	for ie := 0; ie < ne; ie++ {
		for in := 0; in < nne; in++ {
			f.Conn[fidx2(ie, in, ne)] = int32(o.Conn[ie][in]) + 1
			f.Master[fidx3(ie, in, 0, ne, nne)] = int32(o.Master[ie][in].Elem) + 1
			f.Master[fidx3(ie, in, 1, ne, nne)] = int32(o.Master[ie][in].Node) + 1
		}
	}
	f.NodeMasterElem = make([]int32, nn*2)
	for n := 0; n < nn; n++ {
		f.NodeMasterElem[fidx2(n, 0, nn)] = int32(o.NodeMaster[n].Elem) + 1
		f.NodeMasterElem[fidx2(n, 1, nn)] = int32(o.NodeMaster[n].Node) + 1
	}

	// DOF maps
	f.Vdof = make([]int32, nn)
	f.Fdof = make([]int32, nn)
	for n := 0; n < nn; n++ {
		f.Vdof[n] = int32(o.Vdof[n]) + 1
		f.Fdof[n] = int32(o.Fdof[n]) + 1
	}

	// geometry
	f.PosIni = make([]float64, nn*3)
	for n := 0; n < nn; n++ {
		for j := 0; j < 3; j++ {
			f.PosIni[fidx2(n, j, nn)] = o.IniState.Pos[n][j]
		}
	}
	f.PsiIni = make([]float64, ne*nne*3)
	f.FrameDelta = make([]float64, ne*nne*3)
	for ie, e := range o.Elems {
		for in := 0; in < nne; in++ {
			for j := 0; j < 3; j++ {
				f.PsiIni[fidx3(ie, in, j, ne, nne)] = e.PsiIni[in][j]
				f.FrameDelta[fidx3(ie, in, j, ne, nne)] = e.Delta[in][j]
			}
		}
	}

	// cross-section databases
	f.Stiffness = flattenDb(o.Sections.Stiffness)
	f.InvStiffness = flattenDb(o.Sections.InvStiffness)
	f.Mass = flattenDb(o.Sections.Mass)

	// rigid-body mass blocks; elements without lumped mass stay zero
	f.RBMass = make([]float64, ne*nne*6*6)
	for ie, e := range o.Elems {
		if e.RBMass == nil {
			continue
		}
		for in := 0; in < e.Nnodes; in++ {
			if e.RBMass[in] == nil {
				continue
			}
			for i := 0; i < 6; i++ {
				for j := 0; j < 6; j++ {
					f.RBMass[fidx4(ie, in, i, j, ne, nne, 6)] = e.RBMass[in].Get(i, j)
				}
			}
		}
	}
	return
}

// flattenDb marshals a database of 6x6 matrices into one column-major
// array of dimensions (len(db),6,6)
func flattenDb(db []*la.Matrix) (flat []float64) {
	n := len(db)
	flat = make([]float64, n*6*6)
	for k, m := range db {
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				flat[fidx3(k, i, j, n, 6)] = m.Get(i, j)
			}
		}
	}
	return
}
