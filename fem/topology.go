// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// NodeRef locates one (element, local node) occurrence of a global node.
// {-1,-1} marks the occurrence as the master of that node.
type NodeRef struct {
	Elem int // element index
	Node int // local node index within element
}

// IsMaster tells whether this reference marks a master occurrence
func (o NodeRef) IsMaster() bool { return o.Elem < 0 }

// ResolveMasters derives the master/slave relation among all
// (element, local node) pairs sharing a global node. The first occurrence
// in ascending element order is the master; every later occurrence points
// back to it. A hash map keyed by global node keeps this near linear while
// preserving the first-occurrence tie-break of the quadratic scan: lookups
// for element ie only see nodes introduced by strictly earlier elements,
// so a node repeated within one element masters both of its occurrences.
func ResolveMasters(conn [][]int) (master [][]NodeRef) {
	first := make(map[int]NodeRef)
	master = make([][]NodeRef, len(conn))
	for ie, nodes := range conn {
		master[ie] = make([]NodeRef, len(nodes))
		for in, n := range nodes {
			if ref, seen := first[n]; seen {
				master[ie][in] = ref
			} else {
				master[ie][in] = NodeRef{-1, -1}
			}
		}
		for in, n := range nodes {
			if _, seen := first[n]; !seen {
				first[n] = NodeRef{ie, in}
			}
		}
	}
	return
}

// NodeMasters builds the inverse map: for every global node, the
// (element, local node) pair holding its master occurrence. Nodes not
// referenced by any element map to {-1,-1}.
func NodeMasters(conn [][]int, master [][]NodeRef, numNode int) (nodeMaster []NodeRef) {
	nodeMaster = make([]NodeRef, numNode)
	for i := range nodeMaster {
		nodeMaster[i] = NodeRef{-1, -1}
	}
	for ie := range conn {
		for in, n := range conn[ie] {
			if master[ie][in].IsMaster() {
				nodeMaster[n] = NodeRef{ie, in}
			}
		}
	}
	return
}
