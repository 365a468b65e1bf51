// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions of reference problems for testing the solvers
package ana

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Dottie is the fixed point of the cosine map u ← cos(u)
const Dottie = 0.7390851332151607

// CosMap is the scalar contraction u ← cos(u); its unique fixed point is Dottie
type CosMap struct{}

// Apply computes x ← cos(u), component-wise
func (o CosMap) Apply(x, u []float64) {
	for i := range u {
		x[i] = math.Cos(u[i])
	}
}

// LinSys holds a diagonally-dominant linear system A・x = b with known solution. Driven as
// the Jacobi splitting x ← D⁻¹・(b − (A−D)・x), it is a contraction whose fixed point is the
// solution of the system.
type LinSys struct {
	A [][]float64 // coefficients
	B []float64   // right-hand side
	X []float64   // known solution
}

// NewLinSys returns the reference 3×3 system with solution {1, 2, 3}
func NewLinSys() (o *LinSys) {
	o = new(LinSys)
	o.A = [][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 4},
	}
	o.X = []float64{1, 2, 3}
	o.B = make([]float64, 3)
	for i := range o.A {
		for j, a := range o.A[i] {
			o.B[i] += a * o.X[j]
		}
	}
	return
}

// JacobiApply computes one Jacobi fixed-point application: x ← D⁻¹・(b − (A−D)・u)
func (o *LinSys) JacobiApply(x, u []float64) {
	for i := range o.A {
		s := o.B[i]
		for j, a := range o.A[i] {
			if j != i {
				s -= a * u[j]
			}
		}
		x[i] = s / o.A[i][i]
	}
}

// ResidualNorm returns the Euclidean norm of b − A・u
func (o *LinSys) ResidualNorm(u []float64) float64 {
	r := make([]float64, len(o.B))
	for i := range o.A {
		r[i] = o.B[i]
		for j, a := range o.A[i] {
			r[i] -= a * u[j]
		}
	}
	return la.VecNorm(r)
}
