// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// histTestVectors is a generic well-conditioned history for coefficient tests
var histTestVectors = [][]float64{
	{0, 0, 0, 0},
	{1, 0, 1, 0},
	{1, 2, 0, 0},
	{0, 1, 3, 1},
	{2, -1, 1, 3},
}

func Test_anderson01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("anderson01. two vectors give a single unit coefficient")

	a := newAnderson(2, 3, 1.0)
	a.hist.Append([]float64{1, 2, 3})
	a.hist.Append([]float64{4, 5, 6})

	err := a.calcCoeffs()
	if err != nil {
		tst.Errorf("calcCoeffs failed:\n%v", err)
		return
	}
	chk.Vector(tst, "coeffs", 1e-17, a.coeffs, []float64{1})

	// with beta=1 the mixed iterate is exactly the newest vector
	u := []float64{-1, -1, -1}
	a.mix(u)
	chk.Vector(tst, "mixed u", 1e-17, u, []float64{4, 5, 6})
}

func Test_anderson02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("anderson02. coefficients sum to one")

	for _, kmax := range []int{3, 4, 5} {
		for _, beta := range utl.LinSpace(0.1, 1.0, 10) {
			a := newAnderson(kmax, 4, beta)
			for i := 0; i < kmax; i++ {
				a.hist.Append(histTestVectors[i])
			}
			err := a.calcCoeffs()
			if err != nil {
				tst.Errorf("calcCoeffs failed (kmax=%d):\n%v", kmax, err)
				return
			}
			sum := 0.0
			for _, c := range a.coeffs {
				sum += c
			}
			chk.Float64(tst, io.Sf("sum of coeffs (kmax=%d, beta=%g)", kmax, beta), 1e-14, sum, 1.0)
		}
	}
}

func Test_anderson03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("anderson03. duplicated history vectors give a singular system")

	a := newAnderson(4, 3, 1.0)
	for i := 0; i < 4; i++ {
		a.hist.Append([]float64{1, 2, 3})
	}

	err := a.calcCoeffs()
	if err == nil {
		tst.Errorf("calcCoeffs must fail with linearly dependent residual differences")
		return
	}
	kind, ok := Kind(err)
	if !ok || kind != ErrNumerical {
		tst.Errorf("failure must be of numerical kind. got %v", err)
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_anderson04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("anderson04. mixing is an affine combination of the history")

	// with beta=1 the mixed iterate must equal the coefficient-weighted combination of the
	// stored vectors (skipping the oldest), computed here independently
	kmax := 4
	a := newAnderson(kmax, 4, 1.0)
	for i := 0; i < kmax; i++ {
		a.hist.Append(histTestVectors[i])
	}
	err := a.calcCoeffs()
	if err != nil {
		tst.Errorf("calcCoeffs failed:\n%v", err)
		return
	}

	u := make([]float64, 4)
	a.mix(u)
	expected := make([]float64, 4)
	for j := 1; j < kmax; j++ {
		for i := range expected {
			expected[i] += a.coeffs[j-1] * a.hist.At(j)[i]
		}
	}
	chk.Vector(tst, "mixed u", 1e-14, u, expected)
}

func Test_anderson05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("anderson05. complex coefficients match the real path on a real history")

	kmax := 4
	a := newAnderson(kmax, 4, 1.0)
	histC := make([][]complex128, kmax)
	for i := 0; i < kmax; i++ {
		a.hist.Append(histTestVectors[i])
		histC[i] = make([]complex128, 4)
		for k, v := range histTestVectors[i] {
			histC[i][k] = complex(v, 0)
		}
	}
	err := a.calcCoeffs()
	if err != nil {
		tst.Errorf("calcCoeffs failed:\n%v", err)
		return
	}

	coeffsC := make([]complex128, kmax-1)
	err = AndersonCoeffsC(histC, coeffsC)
	if err != nil {
		tst.Errorf("AndersonCoeffsC failed:\n%v", err)
		return
	}
	for i, c := range a.coeffs {
		chk.Float64(tst, io.Sf("re(c%d)", i), 1e-14, real(coeffsC[i]), c)
		chk.Float64(tst, io.Sf("im(c%d)", i), 1e-14, imag(coeffsC[i]), 0)
	}
}
