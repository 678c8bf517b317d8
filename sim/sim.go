// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the top-level orchestrator (§4.6): a Phase A
// that advances the uniform particle grid one output step at a time, writing
// a step flow map per step, followed by a Phase B that, for every
// requested output horizon, composes the step maps already on disk and
// writes the resulting FTLE field
package sim

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/george9932/LCS-FTLE-Optimized/advect"
	"github.com/george9932/LCS-FTLE-Optimized/cfg"
	"github.com/george9932/LCS-FTLE-Optimized/flowmap"
	"github.com/george9932/LCS-FTLE-Optimized/ftle"
	"github.com/george9932/LCS-FTLE-Optimized/grid"
	"github.com/george9932/LCS-FTLE-Optimized/recon"
	"github.com/george9932/LCS-FTLE-Optimized/textio"
	"github.com/george9932/LCS-FTLE-Optimized/velocity"
)

// Orchestrator runs one complete FTLE computation according to a Config
type Orchestrator struct {
	Cfg      *cfg.Config
	DataGrid *grid.Grid // velocity data grid, read from Cfg.DataNx/DataNy and domain bounds
	OutGrid  *grid.Grid // output (FTLE) grid, read from Cfg.Nx/Ny and domain bounds

	ShowMsg bool // print progress to stdout
}

// NewOrchestrator builds an Orchestrator from a loaded configuration
func NewOrchestrator(c *cfg.Config, showMsg bool) *Orchestrator {
	o := new(Orchestrator)
	o.Cfg = c
	o.DataGrid = grid.NewGrid(c.DataNx, c.DataNy, c.Xmin, c.Xmax, c.Ymin, c.Ymax)
	o.OutGrid = grid.NewGrid(c.Nx, c.Ny, c.Xmin, c.Xmax, c.Ymin, c.Ymax)
	o.ShowMsg = showMsg
	return o
}

// Run executes Phase A then Phase B, reporting success or failure the
// way a long FEM run does: a timed, colour-coded final message
func (o *Orchestrator) Run() (err error) {
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	if o.ShowMsg {
		io.Pf("> Phase A: advancing step flow maps\n")
	}
	if err = o.phaseA(); err != nil {
		return
	}

	if o.ShowMsg {
		io.Pf("> Phase B: composing flow maps and computing FTLE\n")
	}
	err = o.phaseB()
	return
}

// phaseA advances the uniform grid one output step Δt at a time from
// t_min to t_max (or the reverse, for a backward run), writing one step
// flow map per step, keyed by the step's end time, and resetting to a
// fresh uniform grid before the next step. No identity map is written
// for t_min itself: Phase B starts from a fresh uniform grid and never
// reads one (§9 open question — resolved by omitting that write)
func (o *Orchestrator) phaseA() error {
	c := o.Cfg
	sign := c.Sign()
	dt := (c.Tmax - c.Tmin) / float64(c.Steps)

	cache := velocity.NewCache(o.DataGrid, c.DataDir, c.FilePrefix, c.Tmin, c.Tmax, c.DataDeltaT, flowmap.Precision(c.DataDeltaT, 12))

	tStart := c.Tmin
	if sign < 0 {
		tStart = c.Tmax
	}

	// step maps are stored and later resampled at output-grid resolution
	// (recon reads them against OutGrid); only the velocity sampler reads
	// the separate, possibly coarser, data grid
	p := grid.NewPositionField(o.OutGrid, tStart)

	for step := 0; step < c.Steps; step++ {
		tNext := p.T + float64(sign)*dt

		next, errS := advect.Step(p, cache, float64(sign)*dt, c.DataDeltaT)
		if errS != nil {
			return chk.Err("sim: cannot advect step %d at t=%g: %v", step+1, p.T, errS)
		}

		path := flowmap.Filename(c.StepMapDir, c.FilePrefix, sign, tNext, flowmap.Precision(c.DataDeltaT, 12))
		if err := flowmap.Write(path, next); err != nil {
			return chk.Err("sim: cannot write step flow map for t=%g: %v", tNext, err)
		}

		if o.ShowMsg {
			io.Pf("  step %3d/%d  t=%g -> %g\n", step+1, c.Steps, p.T, tNext)
		}

		p = grid.NewPositionField(o.OutGrid, next.T)
	}
	return nil
}

// phaseB reconstructs the finite-horizon flow map for every output
// horizon reachable from t_min (or t_max, backward) in multiples of
// Δt, and writes its FTLE field
func (o *Orchestrator) phaseB() error {
	c := o.Cfg
	sign := c.Sign()
	dt := (c.Tmax - c.Tmin) / float64(c.Steps)

	tOrigin := c.Tmin
	if sign < 0 {
		tOrigin = c.Tmax
	}

	r := &recon.Reconstructor{
		OutGrid:    o.OutGrid,
		StepMapDir: c.StepMapDir,
		FilePrefix: c.FilePrefix,
		Sign:       sign,
		Precision:  flowmap.Precision(c.DataDeltaT, 12),
		Dt:         dt,
	}

	psi := grid.NewPositionField(o.OutGrid, tOrigin)

	for n := 1; n <= c.Steps; n++ {
		tFinal := tOrigin + float64(sign)*float64(n)*dt

		var err error
		psi, err = r.Advance(psi)
		if err != nil {
			return chk.Err("sim: cannot reconstruct flow map for horizon t=%g: %v", tFinal, err)
		}

		field := ftle.Compute(psi, tOrigin, tFinal)

		path := io.Sf("%s/%sftle_%g.txt", c.OutDir, c.FilePrefix, tFinal)
		if err := textio.WriteFTLE(path, field, tOrigin, tFinal); err != nil {
			return chk.Err("sim: cannot write FTLE field for horizon t=%g: %v", tFinal, err)
		}

		if o.ShowMsg {
			io.Pf("  horizon %3d/%d  t=%g -> %g written\n", n, c.Steps, tOrigin, tFinal)
		}
	}
	return nil
}

// onexit prints the final success/failure message with elapsed time
func (o *Orchestrator) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Since(cputime))
		} else {
			io.PfRed("> Failed: %v\n", prevErr)
		}
	}
	err = prevErr
	return
}
