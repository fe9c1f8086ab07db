// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/rafapalacios/gobeam/fem"
	"github.com/rafapalacios/gobeam/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".fem", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGobeam -- flexible beam structural model generator\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"model filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read model
	model, err := inp.ReadModel(fnamepath)
	if err != nil {
		chk.Panic("cannot read model:\n%v", err)
	}

	// settings
	set := new(inp.Settings)
	set.SetDefault()

	// generate domain
	dom, err := fem.NewDomain(model, set)
	if err != nil {
		chk.Panic("model generation failed:\n%v", err)
	}

	// report
	if verbose {
		io.Pf(">> Number of nodes      = %d\n", dom.NumNode)
		io.Pf(">> Number of elements   = %d\n", dom.NumElem)
		io.Pf(">> Nodes per element    = %d\n", dom.NumNodeElem)
		io.Pf(">> Stiffness entries    = %d\n", dom.Sections.Nstiff())
		io.Pf(">> Mass entries         = %d\n", dom.Sections.Nmass())
		io.Pf(">> Lumped masses        = %d\n", model.Nlumped())
		io.Pf(">> Degrees of freedom   = %d\n", dom.NumDof)
	}

	// solver boundary arrays
	f := dom.GenerateFortran()
	if verbose {
		io.Pf(">> Export arrays ready (conn=%d, rbmass=%d entries)\n", len(f.Conn), len(f.RBMass))
	}
}
