// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_skew01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("skew01")

	s := Skew([]float64{1, 2, 3})
	chk.Deep2(tst, "skew", 1e-15, s.GetDeep2(), [][]float64{
		{0, -3, 2},
		{3, 0, -1},
		{-2, 1, 0},
	})

	// skew(r)·v == r cross v
	r := []float64{0.3, -1.2, 0.8}
	v := []float64{-0.5, 0.4, 2.0}
	w := make([]float64, 3)
	Cross3(w, r, v)
	s = Skew(r)
	for i := 0; i < 3; i++ {
		sv := 0.0
		for j := 0; j < 3; j++ {
			sv += s.Get(i, j) * v[j]
		}
		chk.Float64(tst, io.Sf("(skew(r) v)[%d]", i), 1e-15, sv, w[i])
	}
}

func Test_crv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("crv01. rotation matrix to rotation vector")

	// rotation of θ about z
	θ := 0.7
	c, s := math.Cos(θ), math.Sin(θ)
	r := la.NewMatrixDeep2([][]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	})
	chk.Array(tst, "crv (z rotation)", 1e-14, MatToCRV(r), []float64{0, 0, θ})

	// identity gives a zero vector
	r = la.NewMatrixDeep2([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	chk.Array(tst, "crv (identity)", 1e-15, MatToCRV(r), []float64{0, 0, 0})

	// rotation of π about x
	r = la.NewMatrixDeep2([][]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}})
	chk.Array(tst, "crv (π about x)", 1e-12, MatToCRV(r), []float64{math.Pi, 0, 0})
}
