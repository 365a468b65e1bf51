// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"github.com/cpmech/gosl/io"
)

// ErrKind distinguishes how a nonlinear solve can fail
type ErrKind int

const (
	ErrConfiguration ErrKind = iota // invalid input data, detected before any iteration
	ErrNumerical                    // singular mixing system or non-finite norm
	ErrLinSolver                    // propagated from the linear-system collaborator
	ErrConvergence                  // tolerance not met within the allowed iterations
)

// SolveError carries the failure kind so callers can react without parsing messages.
// A ErrConvergence failure leaves the last iterate and the norm series available on the
// engine for inspection.
type SolveError struct {
	Kind ErrKind
	msg  string
}

// Error returns the message
func (o *SolveError) Error() string { return o.msg }

func errConfiguration(msg string, prm ...interface{}) *SolveError {
	return &SolveError{ErrConfiguration, io.Sf(msg, prm...)}
}

func errNumerical(msg string, prm ...interface{}) *SolveError {
	return &SolveError{ErrNumerical, io.Sf(msg, prm...)}
}

func errLinSolver(msg string, prm ...interface{}) *SolveError {
	return &SolveError{ErrLinSolver, io.Sf(msg, prm...)}
}

func errConvergence(msg string, prm ...interface{}) *SolveError {
	return &SolveError{ErrConvergence, io.Sf(msg, prm...)}
}

// Kind extracts the failure kind from an error returned by Solve. ok is false when err was
// not produced by this package.
func Kind(err error) (kind ErrKind, ok bool) {
	if e, isa := err.(*SolveError); isa {
		return e.Kind, true
	}
	return
}
