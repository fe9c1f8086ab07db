// Copyright 2018 The Gobeam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/floats"
)

// Skew returns the 3x3 skew-symmetric (cross-product) matrix of w
//
//	        ┌  0  -wz   wy ┐
//	skew(w)=│  wz   0  -wx │
//	        └ -wy   wx   0 ┘
func Skew(w []float64) (s *la.Matrix) {
	s = la.NewMatrix(3, 3)
	s.Set(0, 1, -w[2])
	s.Set(0, 2, w[1])
	s.Set(1, 0, w[2])
	s.Set(1, 2, -w[0])
	s.Set(2, 0, -w[1])
	s.Set(2, 1, w[0])
	return
}

// Cross3 computes w = u cross v (3D)
func Cross3(w, u, v []float64) {
	w[0] = u[1]*v[2] - u[2]*v[1]
	w[1] = u[2]*v[0] - u[0]*v[2]
	w[2] = u[0]*v[1] - u[1]*v[0]
}

// MatToCRV converts the 3x3 rotation matrix r to a Cartesian rotation
// vector (rotation axis scaled by the rotation angle)
func MatToCRV(r *la.Matrix) (crv []float64) {
	crv = make([]float64, 3)
	tr := r.Get(0, 0) + r.Get(1, 1) + r.Get(2, 2)
	c := (tr - 1.0) / 2.0
	if c > 1.0 {
		c = 1.0
	}
	if c < -1.0 {
		c = -1.0
	}
	θ := math.Acos(c)

	// axial vector of the antisymmetric part of r
	a := []float64{
		r.Get(2, 1) - r.Get(1, 2),
		r.Get(0, 2) - r.Get(2, 0),
		r.Get(1, 0) - r.Get(0, 1),
	}

	switch {

	// small rotation: first order approximation
	case θ < 1e-12:
		for i := 0; i < 3; i++ {
			crv[i] = a[i] / 2.0
		}

	// rotation close to π: axial part vanishes; recover axis from diagonal
	case math.Pi-θ < 1e-7:
		axis := make([]float64, 3)
		for i := 0; i < 3; i++ {
			axis[i] = math.Sqrt(math.Max(0, (r.Get(i, i)+1.0)/2.0))
		}
		if r.Get(0, 1) < 0 {
			axis[1] = -axis[1]
		}
		if r.Get(0, 2) < 0 {
			axis[2] = -axis[2]
		}
		n := floats.Norm(axis, 2)
		for i := 0; i < 3; i++ {
			crv[i] = θ * axis[i] / n
		}

	default:
		f := θ / (2.0 * math.Sin(θ))
		for i := 0; i < 3; i++ {
			crv[i] = f * a[i]
		}
	}
	return
}
