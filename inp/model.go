// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.fem) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Model holds the raw arrays defining one beam assembly. Required fields
// must be present in the input file; optional fields get well-defined
// zero/empty defaults (see Defaults).
type Model struct {

	// basic info
	NumNodeElem int `json:"num_node_elem"` // nodes per element
	NumNode     int `json:"num_node"`      // total number of nodes
	NumElem     int `json:"num_elem"`      // total number of elements

	// node info
	Coordinates        [][]float64 `json:"coordinates"`         // [nn][3] initial positions
	StructuralTwist    []float64   `json:"structural_twist"`    // [nn] initial twist angle
	BoundaryConditions []int       `json:"boundary_conditions"` // [nn] codes: 0, -1 or 1

	// element info
	Connectivities        [][]int       `json:"connectivities"`           // [ne][nne] global node indices
	ElemStiffness         []int         `json:"elem_stiffness"`           // [ne] stiffness database indices
	ElemMass              []int         `json:"elem_mass"`                // [ne] mass database indices
	FrameOfReferenceDelta [][][]float64 `json:"frame_of_reference_delta"` // [ne][nne][3]

	// cross-section databases
	StiffnessDb [][][]float64 `json:"stiffness_db"` // [nstiff][6][6]
	MassDb      [][][]float64 `json:"mass_db"`      // [nmass][6][6]

	// optional fields
	BeamNumber []int       `json:"beam_number"` // [ne] beam group tags; default zeros
	AppForces  [][]float64 `json:"app_forces"`  // [nn][6] steady applied forces; default zeros

	// optional lumped masses
	LumpedMass         []float64     `json:"lumped_mass"`          // [nl] mass values
	LumpedMassNodes    []int         `json:"lumped_mass_nodes"`    // [nl] attachment nodes
	LumpedMassInertia  [][][]float64 `json:"lumped_mass_inertia"`  // [nl][3][3] inertia tensors
	LumpedMassPosition [][]float64   `json:"lumped_mass_position"` // [nl][3] offsets from node
}

// ReadModel reads a model from a .fem JSON file, applies the defaults of
// optional fields and validates dimensions
func ReadModel(path string) (o *Model, err error) {
	o = new(Model)
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal model file %q: %v", path, err)
	}
	o.Defaults()
	err = o.Check()
	if err != nil {
		return nil, err
	}
	return
}

// readFile wraps io.ReadFile, converting its panic on a missing or
// unreadable file into an error so malformed input propagates to the caller
func readFile(path string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = chk.Err("cannot read model file %q", path)
		}
	}()
	b = io.ReadFile(path)
	return
}

// Defaults fills absent optional fields with their zero/empty defaults.
// Required fields are never defaulted here; Check rejects them if absent.
func (o *Model) Defaults() {
	if o.BeamNumber == nil {
		o.BeamNumber = make([]int, o.NumElem)
	}
	if o.AppForces == nil {
		o.AppForces = utl.Alloc(o.NumNode, 6)
	}
	if o.LumpedMass == nil {
		o.LumpedMass = []float64{}
		o.LumpedMassNodes = []int{}
		o.LumpedMassInertia = [][][]float64{}
		o.LumpedMassPosition = [][]float64{}
	}
}

// Nlumped returns the number of lumped masses
func (o *Model) Nlumped() int { return len(o.LumpedMass) }

// Check verifies presence of required fields and dimension consistency
func (o *Model) Check() (err error) {

	// basic info
	if o.NumNode < 1 {
		return chk.Err("num_node is missing or invalid: %d", o.NumNode)
	}
	if o.NumElem < 1 {
		return chk.Err("num_elem is missing or invalid: %d", o.NumElem)
	}
	if o.NumNodeElem < 2 {
		return chk.Err("num_node_elem is missing or invalid: %d", o.NumNodeElem)
	}

	// per-node arrays
	if len(o.Coordinates) != o.NumNode {
		return chk.Err("coordinates must have %d rows; got %d", o.NumNode, len(o.Coordinates))
	}
	for i, x := range o.Coordinates {
		if len(x) != 3 {
			return chk.Err("coordinates row %d must have 3 components; got %d", i, len(x))
		}
	}
	if len(o.StructuralTwist) != o.NumNode {
		return chk.Err("structural_twist must have %d entries; got %d", o.NumNode, len(o.StructuralTwist))
	}
	if len(o.BoundaryConditions) != o.NumNode {
		return chk.Err("boundary_conditions must have %d entries; got %d", o.NumNode, len(o.BoundaryConditions))
	}
	for i, bc := range o.BoundaryConditions {
		if bc < -1 || bc > 1 {
			return chk.Err("boundary condition code of node %d must be -1, 0 or 1; got %d", i, bc)
		}
	}

	// per-element arrays
	if len(o.Connectivities) != o.NumElem {
		return chk.Err("connectivities must have %d rows; got %d", o.NumElem, len(o.Connectivities))
	}
	for ie, conn := range o.Connectivities {
		if len(conn) != o.NumNodeElem {
			return chk.Err("connectivities row %d must have %d entries; got %d", ie, o.NumNodeElem, len(conn))
		}
		for _, n := range conn {
			if n < 0 || n >= o.NumNode {
				return chk.Err("element %d references node %d out of range [0,%d)", ie, n, o.NumNode)
			}
		}
	}
	if len(o.FrameOfReferenceDelta) != o.NumElem {
		return chk.Err("frame_of_reference_delta must have %d rows; got %d", o.NumElem, len(o.FrameOfReferenceDelta))
	}
	for ie, deltas := range o.FrameOfReferenceDelta {
		if len(deltas) != o.NumNodeElem {
			return chk.Err("frame_of_reference_delta row %d must have %d entries; got %d", ie, o.NumNodeElem, len(deltas))
		}
	}
	if len(o.BeamNumber) != o.NumElem {
		return chk.Err("beam_number must have %d entries; got %d", o.NumElem, len(o.BeamNumber))
	}
	if len(o.AppForces) != o.NumNode {
		return chk.Err("app_forces must have %d rows; got %d", o.NumNode, len(o.AppForces))
	}

	// cross-section databases
	if len(o.StiffnessDb) < 1 {
		return chk.Err("stiffness_db is missing")
	}
	if len(o.MassDb) < 1 {
		return chk.Err("mass_db is missing")
	}
	err = checkDb("stiffness_db", o.StiffnessDb)
	if err != nil {
		return
	}
	err = checkDb("mass_db", o.MassDb)
	if err != nil {
		return
	}
	if len(o.ElemStiffness) != o.NumElem {
		return chk.Err("elem_stiffness must have %d entries; got %d", o.NumElem, len(o.ElemStiffness))
	}
	for ie, k := range o.ElemStiffness {
		if k < 0 || k >= len(o.StiffnessDb) {
			return chk.Err("element %d references stiffness entry %d out of range [0,%d)", ie, k, len(o.StiffnessDb))
		}
	}
	if len(o.ElemMass) != o.NumElem {
		return chk.Err("elem_mass must have %d entries; got %d", o.NumElem, len(o.ElemMass))
	}
	for ie, k := range o.ElemMass {
		if k < 0 || k >= len(o.MassDb) {
			return chk.Err("element %d references mass entry %d out of range [0,%d)", ie, k, len(o.MassDb))
		}
	}

	// lumped masses
	nl := len(o.LumpedMass)
	if len(o.LumpedMassNodes) != nl || len(o.LumpedMassInertia) != nl || len(o.LumpedMassPosition) != nl {
		return chk.Err("lumped mass arrays must all have %d entries; got nodes=%d inertia=%d position=%d",
			nl, len(o.LumpedMassNodes), len(o.LumpedMassInertia), len(o.LumpedMassPosition))
	}
	for k, n := range o.LumpedMassNodes {
		if n < 0 || n >= o.NumNode {
			return chk.Err("lumped mass %d attaches to node %d out of range [0,%d)", k, n, o.NumNode)
		}
	}
	return
}

// checkDb verifies that every entry of a section database is 6x6
func checkDb(name string, db [][][]float64) (err error) {
	for k, entry := range db {
		if len(entry) != 6 {
			return chk.Err("%s entry %d must be 6x6; got %d rows", name, k, len(entry))
		}
		for i, row := range entry {
			if len(row) != 6 {
				return chk.Err("%s entry %d row %d must have 6 columns; got %d", name, k, i, len(row))
			}
		}
	}
	return
}
