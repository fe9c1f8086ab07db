// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem assembles the structural model of a flexible beam-like body:
// element topology, master/slave node occurrences, DOF numbering spaces,
// lumped-mass consolidation and the time-step state sequence
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/rafapalacios/gobeam/ele"
	"github.com/rafapalacios/gobeam/inp"
	"github.com/rafapalacios/gobeam/mdl"
)

// Domain holds the assembled beam model. All members except States are
// immutable after NewDomain returns; States is append-only and States[0]
// (the initial/steady snapshot) is never mutated afterwards.
type Domain struct {

	// basic info
	NumNodeElem int           // nodes per element
	NumNode     int           // total number of nodes
	NumElem     int           // total number of elements
	Set         *inp.Settings // generation settings

	// model data
	Conn       [][]int       // [ne][nne] connectivity
	BeamNumber []int         // [ne] beam group tags
	Sections   *mdl.Sections // cross-section database
	Elems      []*ele.Beam   // [ne] beam elements

	// topology
	Master     [][]NodeRef // [ne][nne] master/slave relation
	NodeMaster []NodeRef   // [nn] node -> master (element, local node)

	// DOF numbering
	Vdof   []int // [nn] velocity-space indices; -1 if absent
	Fdof   []int // [nn] force-space indices; -1 if absent
	NumDof int   // total number of scalar unknowns

	// time stepping
	IniState  *State        // initial/steady snapshot
	States    []*State      // append-only sequence; States[0] is the steady state
	DynForces [][][]float64 // [nsteps][nn][6] dynamic force input for unsteady runs
}

// NewDomain builds the whole model from validated input arrays. Sequence:
// section database -> elements -> topology -> lumped masses -> DOF maps ->
// initial snapshot.
func NewDomain(m *inp.Model, set *inp.Settings) (o *Domain, err error) {

	// settings must be valid before the orientation reaches the snapshots
	err = set.Check()
	if err != nil {
		return nil, err
	}

	// basic info
	o = new(Domain)
	o.NumNodeElem = m.NumNodeElem
	o.NumNode = m.NumNode
	o.NumElem = m.NumElem
	o.Set = set

	// connectivity and tags
	o.Conn = make([][]int, o.NumElem)
	for ie := range o.Conn {
		o.Conn[ie] = make([]int, o.NumNodeElem)
		copy(o.Conn[ie], m.Connectivities[ie])
	}
	o.BeamNumber = make([]int, o.NumElem)
	copy(o.BeamNumber, m.BeamNumber)

	// cross-section database (with stiffness inverses)
	o.Sections, err = mdl.NewSections(m.StiffnessDb, m.MassDb)
	if err != nil {
		return nil, err
	}

	// elements
	o.Elems = make([]*ele.Beam, o.NumElem)
	x := utl.Alloc(o.NumNodeElem, 3)
	twist := make([]float64, o.NumNodeElem)
	for ie := 0; ie < o.NumElem; ie++ {
		for in, n := range o.Conn[ie] {
			copy(x[in], m.Coordinates[n])
			twist[in] = m.StructuralTwist[n]
		}
		o.Elems[ie], err = ele.NewBeam(ie, o.Conn[ie], x, m.FrameOfReferenceDelta[ie], twist,
			m.BeamNumber[ie], m.ElemStiffness[ie], m.ElemMass[ie])
		if err != nil {
			return nil, err
		}
	}

	// master/slave topology and inverse map
	o.Master = ResolveMasters(o.Conn)
	o.NodeMaster = NodeMasters(o.Conn, o.Master, o.NumNode)

	// lumped masses need the node -> master map
	err = o.lumpMasses(m)
	if err != nil {
		return nil, err
	}

	// DOF numbering spaces
	o.Vdof, o.Fdof, o.NumDof, err = NumberDofs(m.BoundaryConditions)
	if err != nil {
		return nil, err
	}

	// initial snapshot
	o.IniState = NewState(o.NumNode, o.NumElem, o.NumNodeElem)
	for n := 0; n < o.NumNode; n++ {
		copy(o.IniState.Pos[n], m.Coordinates[n])
		copy(o.IniState.SteadyForces[n], m.AppForces[n])
	}
	for ie, e := range o.Elems {
		for in := 0; in < e.Nnodes; in++ {
			copy(o.IniState.Psi[ie][in], e.PsiIni[in])
		}
	}
	o.IniState.UpdateOrientation(set.Orientation)
	o.States = []*State{o.IniState.GetCopy()}
	return
}

// NextStep appends a new snapshot to the sequence, starting as a deep copy
// of the previous one with the steady forces reset from the initial state
func (o *Domain) NextStep() {
	s := o.States[len(o.States)-1].GetCopy()
	for n := 0; n < o.NumNode; n++ {
		copy(s.SteadyForces[n], o.IniState.SteadyForces[n])
	}
	o.States = append(o.States, s)
}

// AddUnsteady preallocates numSteps snapshots and the per-step dynamic
// force tables. dynForces may be nil, in which case zero forces are used;
// otherwise it must provide one [nn][6] table per step.
func (o *Domain) AddUnsteady(dynForces [][][]float64, numSteps int) (err error) {
	if dynForces != nil && len(dynForces) != numSteps {
		return chk.Err("dynamic forces must have %d steps; got %d", numSteps, len(dynForces))
	}
	for it := 0; it < numSteps; it++ {
		o.NextStep()
	}
	o.DynForces = make([][][]float64, numSteps)
	for it := 0; it < numSteps; it++ {
		o.DynForces[it] = utl.Alloc(o.NumNode, 6)
		if dynForces != nil {
			for n := 0; n < o.NumNode; n++ {
				copy(o.DynForces[it][n], dynForces[it][n])
			}
		}
	}
	return
}

// UpdateOrientation sets the body orientation of snapshot ts; ts < 0
// addresses the last snapshot
func (o *Domain) UpdateOrientation(quat []float64, ts int) {
	if ts < 0 {
		ts = len(o.States) - 1
	}
	o.States[ts].UpdateOrientation(quat)
}
