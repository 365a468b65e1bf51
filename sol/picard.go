// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"time"

	"github.com/cjmcclellan/hermes/inp"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Picard implements the fixed-point (Picard) iteration engine with optional Anderson
// acceleration. Each call to Solve owns its iterate, history and scratch memory, so separate
// instances may run concurrently but a single instance must not.
type Picard struct {

	// input
	sys LinSystem       // external assembler + linear solver
	dat *inp.SolverData // configuration; read-only during a solve
	hks *Hooks          // lifecycle callbacks; may be nil

	// solution state
	Dim      int              // number of unknowns
	U        []float64        // working iterate; holds the answer after Solve returns
	It       int              // iteration counter; the initial step counts as 1
	Track    Tracker          // norm series of the current solve
	State    ConvergenceState // last evaluated convergence state
	Aborted  bool             // a hook aborted the last solve
	Duration time.Duration    // wall time of the last solve

	// auxiliary
	acc      *anderson // acceleration memory; nil when acceleration is off
	x        []float64 // new iterate returned by the linear solve (scratch)
	reusable bool      // the Jacobian from the previous assembly can be reused
}

// set factory
func init() {
	allocators["picard"] = func(sys LinSystem, dat *inp.SolverData, hks *Hooks) Solver {
		return NewPicard(sys, dat, hks)
	}
}

// NewPicard returns a new engine operating on the given linear-system collaborator
func NewPicard(sys LinSystem, dat *inp.SolverData, hks *Hooks) (o *Picard) {
	o = new(Picard)
	o.sys = sys
	o.dat = dat
	o.hks = hks
	return
}

// Solve runs the fixed-point iteration starting from guess (zeros if nil). The answer is
// left in o.U. Failures carry a kind (see ErrKind): configuration errors abort before any
// iteration; numerical and linear-solver errors are fatal to the current solve; reaching the
// maximum number of iterations returns a convergence failure with the last iterate and the
// norm series retained for inspection. An abort requested by a hook is not an error.
func (o *Picard) Solve(guess []float64) (err error) {

	// check input data eagerly, before any allocation
	if err = o.dat.Validate(); err != nil {
		return errConfiguration("%v", err)
	}

	// per-solve memory
	t0 := time.Now()
	o.Dim = o.sys.Dim()
	o.U = make([]float64, o.Dim)
	o.x = make([]float64, o.Dim)
	if guess != nil {
		la.VecCopy(o.U, 1, guess)
	}
	o.It = 1
	o.State = NotConverged
	o.Aborted = false
	o.Track.Reset()
	o.reusable = false
	if o.dat.Anderson {
		o.acc = newAnderson(o.dat.Nvectors, o.Dim, o.dat.Beta)
		o.acc.hist.Append(o.U) // the initial guess is the first stored iterate
	}

	// finalise on every exit: stop timing, release per-solve memory, fire the last hook
	defer func() {
		o.Duration = time.Since(t0)
		o.acc = nil
		o.x = nil
		if o.hks != nil && o.hks.AfterFinish != nil {
			o.hks.AfterFinish(o)
		}
	}()

	// hook: before initial step
	if o.hks != nil && o.hks.BeforeInit != nil {
		o.hks.BeforeInit(o)
	}

	// initial step
	if err = o.Track.PushInitial(la.VecNorm(o.U)); err != nil {
		return
	}
	if err = o.step(); err != nil {
		return
	}
	if o.State = o.Track.State(o.It, o.dat.NmaxIt, o.dat.Tol, o.dat.TolKind); o.State != NotConverged {
		return o.terminal()
	}
	if o.hks != nil && o.hks.AfterInitStep != nil && !o.hks.AfterInitStep(o) {
		o.abort()
		return
	}
	o.It++

	// steady iterations
	for {

		// hook: beginning of step
		if o.hks != nil && o.hks.BeforeStep != nil && !o.hks.BeforeStep(o) {
			o.abort()
			return
		}

		// assembly, linear solve, mixing, norms
		if err = o.step(); err != nil {
			return
		}

		// convergence
		if o.State = o.Track.State(o.It, o.dat.NmaxIt, o.dat.Tol, o.dat.TolKind); o.State != NotConverged {
			return o.terminal()
		}

		// hook: end of step
		if o.hks != nil && o.hks.AfterStep != nil && !o.hks.AfterStep(o) {
			o.abort()
			return
		}
		o.It++
	}
}

// step performs one residual assembly and linear solve, accepts the new iterate (mixing it
// with the history when the buffer is full) and updates the norm series
func (o *Picard) step() (err error) {

	// assemble the linearised system; rebuild the Jacobian only when it is not reusable
	reuse := o.reusable && o.dat.CteTg
	if err = o.sys.Assemble(o.U, reuse); err != nil {
		return errLinSolver("assembly failed: %v", err)
	}
	o.reusable = true

	// solve, giving the current iterate as initial guess
	if err = o.sys.Solve(o.x, o.U); err != nil {
		return errLinSolver("linear solver failed: %v", err)
	}

	// norms; o.U still holds the previous iterate here
	snorm := la.VecNorm(o.x)
	cnorm := la.VecNormDiff(o.x, o.U)
	if err = o.Track.Push(snorm, cnorm, o.sys.Rnorm()); err != nil {
		return
	}

	// accept the new iterate and mix once the history is full
	la.VecCopy(o.U, 1, o.x)
	if o.acc != nil {
		if err = o.acc.update(o.U); err != nil {
			return
		}
	}

	// message
	if o.dat.ShowR {
		io.Pf("picard: it=%3d  ‖Δu‖ = %23.15e (%g%%)\n", o.It, cnorm, 100*cnorm/snorm)
	}
	return
}

// terminal maps the final convergence state to the caller-visible result
func (o *Picard) terminal() (err error) {
	switch o.State {
	case Converged:
		if o.dat.ShowR {
			io.Pf("picard: done. it=%d\n", o.It)
		}
		return nil
	case AboveMaxIterations:
		return errConvergence("max number of iterations reached: it = %d", o.It)
	}
	return errNumerical("inconsistent convergence state: %v", o.State)
}

// abort finalises after a hook requested early termination; the working iterate keeps the
// last consistent value
func (o *Picard) abort() {
	o.Aborted = true
	if o.dat.ShowR {
		io.Pf("picard: aborted at it=%d\n", o.It)
	}
}
