// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
)

// LUdecomp computes the LU decomposition of the n×n matrix 'a', in place, using row partial
// pivoting. 'prm' (len = n) receives the row permutation performed during pivoting. An error
// is returned if 'a' is singular to working precision; i.e. a zero pivot shows up even after
// pivoting.
func LUdecomp(a [][]float64, prm []int) (err error) {
	n := len(a)
	for k := 0; k < n; k++ {

		// find pivot
		p, big := k, math.Abs(a[k][k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a[i][k]); v > big {
				p, big = i, v
			}
		}
		if big == 0 {
			return chk.Err("dense system is singular: zero pivot in column %d", k)
		}

		// swap rows
		if p != k {
			a[p], a[k] = a[k], a[p]
		}
		prm[k] = p

		// eliminate rows below pivot
		for i := k + 1; i < n; i++ {
			a[i][k] /= a[k][k]
			for j := k + 1; j < n; j++ {
				a[i][j] -= a[i][k] * a[k][j]
			}
		}
	}
	return
}

// LUsolve solves a linear system given the LU factors and permutation computed by LUdecomp.
// 'b' is overwritten with the solution.
func LUsolve(a [][]float64, prm []int, b []float64) {
	n := len(a)

	// forward substitution with permutation
	for k := 0; k < n; k++ {
		if p := prm[k]; p != k {
			b[p], b[k] = b[k], b[p]
		}
		for i := k + 1; i < n; i++ {
			b[i] -= a[i][k] * b[k]
		}
	}

	// back substitution
	for i := n - 1; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			b[i] -= a[i][j] * b[j]
		}
		b[i] /= a[i][i]
	}
}

// DenSolve solves the small dense system a・x = b, in place: 'a' is replaced by its LU
// factors and 'b' by the solution vector.
func DenSolve(a [][]float64, b []float64) (err error) {
	prm := make([]int, len(a))
	if err = LUdecomp(a, prm); err != nil {
		return
	}
	LUsolve(a, prm, b)
	return
}

// LUdecompC is the complex-valued version of LUdecomp. Pivoting compares moduli.
func LUdecompC(a [][]complex128, prm []int) (err error) {
	n := len(a)
	for k := 0; k < n; k++ {

		// find pivot
		p, big := k, cmplx.Abs(a[k][k])
		for i := k + 1; i < n; i++ {
			if v := cmplx.Abs(a[i][k]); v > big {
				p, big = i, v
			}
		}
		if big == 0 {
			return chk.Err("dense complex system is singular: zero pivot in column %d", k)
		}

		// swap rows
		if p != k {
			a[p], a[k] = a[k], a[p]
		}
		prm[k] = p

		// eliminate rows below pivot
		for i := k + 1; i < n; i++ {
			a[i][k] /= a[k][k]
			for j := k + 1; j < n; j++ {
				a[i][j] -= a[i][k] * a[k][j]
			}
		}
	}
	return
}

// LUsolveC is the complex-valued version of LUsolve
func LUsolveC(a [][]complex128, prm []int, b []complex128) {
	n := len(a)
	for k := 0; k < n; k++ {
		if p := prm[k]; p != k {
			b[p], b[k] = b[k], b[p]
		}
		for i := k + 1; i < n; i++ {
			b[i] -= a[i][k] * b[k]
		}
	}
	for i := n - 1; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			b[i] -= a[i][j] * b[j]
		}
		b[i] /= a[i][i]
	}
}

// DenSolveC solves the small dense complex system a・x = b, in place
func DenSolveC(a [][]complex128, b []complex128) (err error) {
	prm := make([]int, len(a))
	if err = LUdecompC(a, prm); err != nil {
		return
	}
	LUsolveC(a, prm, b)
	return
}
