// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_ana01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ana01. Dottie number is the fixed point of the cosine map")

	chk.Float64(tst, "cos(Dottie)", 1e-15, math.Cos(Dottie), Dottie)

	var cosmap CosMap
	x := make([]float64, 1)
	cosmap.Apply(x, []float64{Dottie})
	chk.Float64(tst, "Apply at fixed point", 1e-15, x[0], Dottie)
}

func Test_ana02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ana02. reference linear system is consistent")

	lin := NewLinSys()

	// b was built from the known solution
	chk.Vector(tst, "b", 1e-17, lin.B, []float64{2, 4, 10})

	// the known solution is a fixed point of the Jacobi application
	x := make([]float64, 3)
	lin.JacobiApply(x, lin.X)
	chk.Vector(tst, "Jacobi at solution", 1e-15, x, lin.X)

	// zero residual at the solution, nonzero elsewhere
	chk.Float64(tst, "residual at solution", 1e-14, lin.ResidualNorm(lin.X), 0)
	if lin.ResidualNorm([]float64{0, 0, 0}) < 1 {
		tst.Errorf("residual away from the solution must be large")
	}
}
