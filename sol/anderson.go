// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"github.com/cpmech/gosl/la"
)

// anderson accelerates the fixed-point iteration by mixing the last kmax iterates with
// least-squares-optimal weights. It owns the rotating history and the scratch memory for the
// normal-equations system; everything is allocated once per solve.
type anderson struct {
	beta   float64     // damping factor; 1 means undamped
	hist   *History    // last kmax iterates
	coeffs []float64   // kmax-1 mixing coefficients
	rn     []float64   // newest residual difference (scratch)
	diff   [][]float64 // deviations of the older residual differences from rn (scratch)
	mat    [][]float64 // (kmax-2)×(kmax-2) normal-equations matrix (scratch)
	rhs    []float64   // right-hand side / solved coefficients (scratch)
	prm    []int       // pivoting permutation (scratch)
}

// newAnderson allocates the history and scratch memory for kmax vectors of length dim
func newAnderson(kmax, dim int, beta float64) (o *anderson) {
	o = new(anderson)
	o.beta = beta
	o.hist = NewHistory(kmax, dim)
	o.coeffs = make([]float64, kmax-1)
	o.rn = make([]float64, dim)
	if n := kmax - 2; n > 0 {
		o.diff = la.MatAlloc(n, dim)
		o.mat = la.MatAlloc(n, n)
		o.rhs = make([]float64, n)
		o.prm = make([]int, n)
	}
	return
}

// update stores u in the history and, once the buffer is full, overwrites u with the damped
// mixed combination of the stored iterates. The history itself is never mutated by mixing.
func (o *anderson) update(u []float64) (err error) {
	o.hist.Append(u)
	if !o.hist.Full() {
		return
	}
	if err = o.calcCoeffs(); err != nil {
		return
	}
	o.mix(u)
	return
}

// calcCoeffs computes the kmax-1 mixing coefficients from the residual differences across the
// history. The first kmax-2 come from the least-squares normal equations; the last one closes
// the affine combination so that all coefficients sum to one.
func (o *anderson) calcCoeffs() (err error) {

	// with two vectors there is a single residual difference and a single coefficient: 1
	kmax := o.hist.Len()
	if kmax == 2 {
		o.coeffs[0] = 1.0
		return
	}

	// newest residual difference and the deviations of the older ones from it
	n := kmax - 2
	dim := len(o.rn)
	for k := 0; k < dim; k++ {
		o.rn[k] = o.hist.At(n+1)[k] - o.hist.At(n)[k]
	}
	for i := 0; i < n; i++ {
		hi, hj := o.hist.At(i), o.hist.At(i+1)
		for k := 0; k < dim; k++ {
			o.diff[i][k] = o.rn[k] - (hj[k] - hi[k])
		}
	}

	// normal equations
	for i := 0; i < n; i++ {
		o.rhs[i] = la.VecDot(o.rn, o.diff[i])
		for j := i; j < n; j++ {
			v := la.VecDot(o.diff[i], o.diff[j])
			o.mat[i][j] = v
			o.mat[j][i] = v
		}
	}

	// solve and close the affine combination
	if err = LUdecomp(o.mat, o.prm); err != nil {
		return errNumerical("Anderson mixing failed: %v", err)
	}
	LUsolve(o.mat, o.prm, o.rhs)
	sum := 0.0
	for i := 0; i < n; i++ {
		o.coeffs[i] = o.rhs[i]
		sum += o.rhs[i]
	}
	o.coeffs[n] = 1.0 - sum
	return
}

// mix overwrites u with the damped weighted combination of the stored iterates. beta equal
// to one gives the plain Anderson update; smaller values blend each term toward the
// un-accelerated direction.
func (o *anderson) mix(u []float64) {
	kmax := o.hist.Len()
	for i := range u {
		u[i] = 0
		for j := 1; j < kmax; j++ {
			c := o.coeffs[j-1]
			hj, hi := o.hist.At(j), o.hist.At(j-1)
			u[i] += c*hj[i] - (1.0-o.beta)*c*(hj[i]-hi[i])
		}
	}
}

// AndersonCoeffsC computes the mixing coefficients for a complex-valued history given in
// oldest-to-newest order (len(hist) = K ≥ 2, len(coeffs) = K-1). Inner products are plain
// component sums, without conjugation, consistent with the scalar field of the iteration.
func AndersonCoeffsC(hist [][]complex128, coeffs []complex128) (err error) {

	kmax := len(hist)
	if kmax == 2 {
		coeffs[0] = 1.0
		return
	}

	n := kmax - 2
	dim := len(hist[0])
	rn := make([]complex128, dim)
	diff := make([][]complex128, n)
	for k := 0; k < dim; k++ {
		rn[k] = hist[n+1][k] - hist[n][k]
	}
	for i := 0; i < n; i++ {
		diff[i] = make([]complex128, dim)
		for k := 0; k < dim; k++ {
			diff[i][k] = rn[k] - (hist[i+1][k] - hist[i][k])
		}
	}

	mat := make([][]complex128, n)
	rhs := make([]complex128, n)
	for i := 0; i < n; i++ {
		mat[i] = make([]complex128, n)
	}
	for i := 0; i < n; i++ {
		for k := 0; k < dim; k++ {
			rhs[i] += rn[k] * diff[i][k]
		}
		for j := i; j < n; j++ {
			var v complex128
			for k := 0; k < dim; k++ {
				v += diff[i][k] * diff[j][k]
			}
			mat[i][j] = v
			mat[j][i] = v
		}
	}

	if err = DenSolveC(mat, rhs); err != nil {
		return errNumerical("Anderson mixing failed: %v", err)
	}
	var sum complex128
	for i := 0; i < n; i++ {
		coeffs[i] = rhs[i]
		sum += rhs[i]
	}
	coeffs[n] = 1.0 - sum
	return
}
