// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// ident6 is the 6x6 identity
var ident6 = [][]float64{
	{1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0},
	{0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 1, 0},
	{0, 0, 0, 0, 0, 1},
}

func Test_sections01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections01. inverses")

	stiff := [][][]float64{
		{
			{4, 1, 0, 0, 0, 0},
			{1, 3, 0, 0, 0, 0},
			{0, 0, 5, 0, 0, 1},
			{0, 0, 0, 2, 0, 0},
			{0, 0, 0, 0, 7, 0},
			{0, 0, 1, 0, 0, 6},
		},
		{
			{1e6, 0, 0, 0, 0, 0},
			{0, 1e5, 0, 0, 0, 0},
			{0, 0, 1e5, 0, 0, 0},
			{0, 0, 0, 1e4, 0, 0},
			{0, 0, 0, 0, 2e4, 0},
			{0, 0, 0, 0, 0, 2e4},
		},
	}
	mass := [][][]float64{ident6}

	sec, err := NewSections(stiff, mass)
	if err != nil {
		tst.Errorf("NewSections failed:\n%v", err)
		return
	}
	chk.Int(tst, "nstiff", sec.Nstiff(), 2)
	chk.Int(tst, "nmass", sec.Nmass(), 1)

	// S · inv(S) = I for every entry
	for k := 0; k < sec.Nstiff(); k++ {
		s := sec.Stiffness[k]
		si := sec.InvStiffness[k]
		prod := make([][]float64, 6)
		for i := 0; i < 6; i++ {
			prod[i] = make([]float64, 6)
			for j := 0; j < 6; j++ {
				for p := 0; p < 6; p++ {
					prod[i][j] += s.Get(i, p) * si.Get(p, j)
				}
			}
		}
		chk.Deep2(tst, io.Sf("S%d · inv(S%d)", k, k), 1e-9, prod, ident6)
	}
}

func Test_sections02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections02. singular stiffness entry")

	singular := make([][]float64, 6)
	for i := range singular {
		singular[i] = make([]float64, 6)
	}
	singular[0][0] = 1 // rank 1

	stiff := [][][]float64{ident6, singular}
	mass := [][][]float64{ident6}

	_, err := NewSections(stiff, mass)
	if err == nil {
		tst.Errorf("NewSections should have failed for singular entry")
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.Contains(err.Error(), "1") {
		tst.Errorf("error should identify the offending index; got: %v", err)
	}
}
