// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sol implements nonlinear solvers based on accelerated fixed-point iterations
package sol

import (
	"github.com/cjmcclellan/hermes/inp"
)

// LinSystem is the external collaborator assembling and solving the linearised system.
// The engine treats its calls as blocking and performs no retry; failures are surfaced to
// the caller as linear-solver errors.
type LinSystem interface {

	// Dim returns the number of unknowns
	Dim() int

	// Assemble builds (or updates) the matrix and right-hand side at the iterate u. With
	// reuse set, the Jacobian is known unchanged and the previous structure/factorisation
	// must be kept; only the right-hand side needs to be rebuilt.
	Assemble(u []float64, reuse bool) error

	// Solve solves the assembled system into x. guess holds the previous iterate and may
	// be used as initial guess by iterative solvers.
	Solve(x, guess []float64) error

	// Rnorm returns the residual norm corresponding to the last solve
	Rnorm() float64
}

// Hooks bundles the lifecycle callbacks of a solve. Any field may be nil. The step hooks
// return false to abort the solve; an abort is not an error and keeps the last consistent
// iterate as the answer.
type Hooks struct {
	BeforeInit    func(o *Picard)      // called once, after allocation, before the initial step
	AfterInitStep func(o *Picard) bool // called after the initial step; false aborts
	BeforeStep    func(o *Picard) bool // called at the beginning of each steady step; false aborts
	AfterStep     func(o *Picard) bool // called at the end of each steady step; false aborts
	AfterFinish   func(o *Picard)      // always called at finalisation, whatever the exit state
}

// Solver runs a nonlinear solution procedure on a linear-system collaborator
type Solver interface {
	Solve(guess []float64) error
}

// allocators holds all available nonlinear solvers
var allocators = make(map[string]func(sys LinSystem, dat *inp.SolverData, hks *Hooks) Solver)

// New allocates a nonlinear solver given the type name in dat; e.g. "picard"
func New(sys LinSystem, dat *inp.SolverData, hks *Hooks) (Solver, error) {
	alloc, ok := allocators[dat.Type]
	if !ok {
		return nil, errConfiguration("cannot find nonlinear solver type named %q", dat.Type)
	}
	return alloc(sys, dat, hks), nil
}
