// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cjmcclellan/hermes/ana"
	"github.com/cjmcclellan/hermes/inp"
	"github.com/cjmcclellan/hermes/sol"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// demoSystem drives the reference diagonally-dominant linear system as a fixed-point
// problem: each "linear solve" is one Jacobi application
type demoSystem struct {
	lin *ana.LinSys
	at  []float64 // assembly point
}

func newDemoSystem() (o *demoSystem) {
	o = new(demoSystem)
	o.lin = ana.NewLinSys()
	o.at = make([]float64, len(o.lin.B))
	return
}

func (o *demoSystem) Dim() int { return len(o.lin.B) }

func (o *demoSystem) Assemble(u []float64, reuse bool) error {
	copy(o.at, u)
	return nil
}

func (o *demoSystem) Solve(x, guess []float64) error {
	o.lin.JacobiApply(x, o.at)
	return nil
}

func (o *demoSystem) Rnorm() float64 { return o.lin.ResidualNorm(o.at) }

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// input data
	simfn := io.ArgToFilename(0, "inp/data/picard01", ".sim", false)
	sim := inp.ReadSim(simfn)
	sim.Solver.ShowR = true

	// allocate solver
	sys := newDemoSystem()
	solver, err := sol.New(sys, &sim.Solver, nil)
	if err != nil {
		chk.Panic("cannot allocate solver:\n%v", err)
	}

	// run
	io.Pf("%s\n\n", sim.Data.Desc)
	err = solver.Solve(nil)
	if err != nil {
		chk.Panic("solver failed:\n%v", err)
	}

	// report
	engine := solver.(*sol.Picard)
	io.Pf("\n%s", engine.Track.Report())
	io.Pf("\nsolution: %v\n", engine.U)
	io.Pf("known:    %v\n", sys.lin.X)
	io.Pf("duration: %v\n", engine.Duration)
}
