// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// ConvergenceState is the outcome of evaluating the stopping predicate after an iteration
type ConvergenceState int

const (
	NotConverged ConvergenceState = iota
	Converged
	AboveMaxIterations
	Error
)

// String returns the state name
func (o ConvergenceState) String() string {
	switch o {
	case NotConverged:
		return "NotConverged"
	case Converged:
		return "Converged"
	case AboveMaxIterations:
		return "AboveMaxIterations"
	}
	return "Error"
}

// tolerance kinds; both act on the norm of the change between successive iterates
const (
	TolAbs = "abs" // stop when the solution-change norm is within tolerance
	TolRel = "rel" // stop when the solution-change norm over the solution norm is within tolerance
)

// Tracker records the norm series of one solve and evaluates the stopping predicate. The
// series are cleared at the beginning of each solve and grow by one entry per iteration.
type Tracker struct {
	Snorms []float64 // solution norms; the first entry is the norm of the initial guess
	Cnorms []float64 // norms of the change between successive iterates
	Rnorms []float64 // residual norms reported by the linear-system collaborator
}

// Reset clears the series for a new solve
func (o *Tracker) Reset() {
	o.Snorms = o.Snorms[:0]
	o.Cnorms = o.Cnorms[:0]
	o.Rnorms = o.Rnorms[:0]
}

// PushInitial records the norm of the initial guess, before any solve step
func (o *Tracker) PushInitial(snorm float64) (err error) {
	if !isfinite(snorm) {
		return errNumerical("non-finite norm of initial guess: %v", snorm)
	}
	o.Snorms = append(o.Snorms, snorm)
	return
}

// Push records the norms produced by one iteration. Non-finite values are fatal.
func (o *Tracker) Push(snorm, cnorm, rnorm float64) (err error) {
	if !isfinite(snorm) || !isfinite(cnorm) || !isfinite(rnorm) {
		return errNumerical("non-finite norm: solution=%v change=%v residual=%v", snorm, cnorm, rnorm)
	}
	o.Snorms = append(o.Snorms, snorm)
	o.Cnorms = append(o.Cnorms, cnorm)
	o.Rnorms = append(o.Rnorms, rnorm)
	return
}

// State evaluates the stopping predicate for iteration counter 'it'. The tolerance check
// comes first, so a solve satisfying the tolerance exactly at the last allowed iteration
// still reports Converged.
func (o *Tracker) State(it, nmaxit int, tol float64, tolkind string) ConvergenceState {
	if len(o.Cnorms) < 1 || len(o.Snorms) < 1 {
		return Error
	}
	cnorm := o.Cnorms[len(o.Cnorms)-1]
	snorm := o.Snorms[len(o.Snorms)-1]
	switch tolkind {
	case TolAbs:
		if cnorm <= tol {
			return Converged
		}
	case TolRel:
		if cnorm == 0 || cnorm/snorm <= tol {
			return Converged
		}
	default:
		return Error
	}
	if it >= nmaxit {
		return AboveMaxIterations
	}
	return NotConverged
}

// Report formats the norm series as a table, one line per iteration
func (o *Tracker) Report() (l string) {
	l = io.Sf("%4s%23s%23s%23s\n", "it", "‖u‖", "‖Δu‖", "‖r‖")
	for i, cnorm := range o.Cnorms {
		l += io.Sf("%4d%23.15e%23.15e%23.15e\n", i+1, o.Snorms[i+1], cnorm, o.Rnorms[i])
	}
	return
}

func isfinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
