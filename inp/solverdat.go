// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SolverData holds the nonlinear solver input data. It is immutable during a solve.
type SolverData struct {
	Type     string  `json:"type"`     // nonlinear solver type; e.g. "picard"
	NmaxIt   int     `json:"nmaxit"`   // max number of iterations
	Tol      float64 `json:"tol"`      // convergence tolerance
	TolKind  string  `json:"tolkind"`  // tolerance kind: "abs" or "rel" (on the solution change)
	Anderson bool    `json:"anderson"` // use Anderson acceleration
	Nvectors int     `json:"nvectors"` // number of last vectors kept by the acceleration; must be at least 2
	Beta     float64 `json:"beta"`     // Anderson damping factor within (0, 1]; 1 means undamped
	CteTg    bool    `json:"ctetg"`    // constant tangent: reuse the Jacobian after the first assembly
	ShowR    bool    `json:"showr"`    // show residuals and convergence values during iterations
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Type = "picard"
	o.NmaxIt = 15
	o.Tol = 1e-3
	o.TolKind = "rel"
	o.Anderson = false
	o.Nvectors = 3
	o.Beta = 1.0
}

// Validate checks the input data. It runs before any per-solve allocation so that invalid
// data leaves no partial state behind.
func (o *SolverData) Validate() (err error) {
	if o.NmaxIt < 1 {
		return chk.Err("nmaxit must be at least 1. %d is invalid", o.NmaxIt)
	}
	if !(o.Tol > 0) {
		return chk.Err("tolerance must be positive. %v is invalid", o.Tol)
	}
	if o.TolKind != "abs" && o.TolKind != "rel" {
		return chk.Err("tolerance kind must be \"abs\" or \"rel\". %q is invalid", o.TolKind)
	}
	if o.Anderson {
		if o.Nvectors < 2 {
			return chk.Err("number of last vectors used must be at least 2. %d is invalid", o.Nvectors)
		}
		if !(o.Beta > 0 && o.Beta <= 1) {
			return chk.Err("beta must be within (0, 1]. %v is invalid", o.Beta)
		}
	}
	return
}

// Data holds global data for simulations
type Data struct {
	Desc string `json:"desc"` // description of simulation
}

// Simulation holds all simulation input data
type Simulation struct {
	Data   Data       `json:"data"`   // global data
	Solver SolverData `json:"solver"` // solver parameters
}

// ReadSim reads a simulation input file. Defaults are set before decoding, so the file only
// needs the values it wants to override.
func ReadSim(simfilepath string) (o *Simulation) {
	b := io.ReadFile(simfilepath)
	o = new(Simulation)
	o.Solver.SetDefault()
	err := json.Unmarshal(b, o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}
	return
}
