// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package advect implements the single-step advector (§4.2): it carries
// a position field forward or backward by exactly one output step Δt,
// using fixed-step RK4 substeps aligned to the data cadence. Cells are
// independent, so the (i,j) loop is split across a bounded worker pool;
// results are bit-invariant under any split since every cell only reads
// read-only inputs (one velocity sampler per substep, shared by every
// cell and built before any goroutine starts).
package advect

import (
	"math"
	"runtime"
	"sync"

	"github.com/george9932/LCS-FTLE-Optimized/grid"
	"github.com/george9932/LCS-FTLE-Optimized/velocity"
)

// Step advects p forward by dtStep = sign·Δt (sign ∈ {+1,-1}), using RK4
// substeps of size dtSub = dtData, or dtStep/⌈|dtStep|/dtData⌉ when Δt >
// dtData (§4.2). The substep size never exceeds dtData, so velocity
// temporal interpolation error stays bounded by the data cadence.
//
// Every cell advances through the same sequence of substep start times,
// so the bracketing snapshot pair for each substep is fetched from
// cache once, up front, at the substep's midpoint time (so that forward
// and backward substeps alike get the data interval they span), and
// shared read-only by every cell — this
// keeps every substep sampling the bracket that actually contains its
// evaluation time (§4.1) instead of the stale pair fetched for the
// start of the whole step, and it keeps Cache's internal state free of
// concurrent access from the worker pool below.
//
// Returns a new PositionField; p itself is left untouched.
func Step(p *grid.PositionField, cache *velocity.Cache, dtStep, dtData float64) (next *grid.PositionField, err error) {

	nsub := int(math.Ceil(math.Abs(dtStep) / dtData))
	if nsub < 1 {
		nsub = 1
	}
	dtSub := dtStep / float64(nsub)

	samplers := make([]*velocity.Sampler, nsub)
	t := p.T
	for s := 0; s < nsub; s++ {
		s0, s1, errB := cache.Bracket(t + 0.5*dtSub)
		if errB != nil {
			err = errB
			return
		}
		sampler := velocity.NewSampler(cache.DataGrid)
		sampler.SetBracket(s0, s1)
		samplers[s] = sampler
		t += dtSub
	}

	next = p.Clone()
	g := p.G

	nWorkers := runtime.GOMAXPROCS(0)
	if nWorkers > g.Nx {
		nWorkers = g.Nx
	}
	if nWorkers < 1 {
		nWorkers = 1
	}

	var wg sync.WaitGroup
	rows := make(chan int, g.Nx)
	for i := 0; i < g.Nx; i++ {
		rows <- i
	}
	close(rows)

	for w := 0; w < nWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				for j := 0; j < g.Ny; j++ {
					advectCell(next, i, j, samplers, dtSub, nsub)
				}
			}
		}()
	}
	wg.Wait()

	next.T = p.T + dtStep
	return
}

// advectCell integrates the single cell (i,j) through nsub RK4 substeps
// of size dtSub, starting from next's current position and time stamp
// (copied from the source field p), sampling substep s's velocity
// bracket from samplers[s]. The out-of-bounds flag is decided once,
// after the full output step, by testing the resulting position
// against the domain rectangle (§4.2) — not per RK4 substage: the
// velocity sampler already clamps intermediate queries on its own terms
// (§4.1) so the integrator never fails mid-step.
func advectCell(next *grid.PositionField, i, j int, samplers []*velocity.Sampler, dtSub float64, nsub int) {
	x, y := next.Get(i, j)
	t := next.T
	for s := 0; s < nsub; s++ {
		x, y, t, _ = rk4Substep(samplers[s], x, y, t, dtSub)
	}
	cx, cy, oob := next.G.Clamp(x, y)
	next.Set(i, j, cx, cy)
	if oob {
		next.MarkOOB(next.G.Index(i, j))
	}
}

// rk4Substep performs one classical Runge-Kutta-4 step (four stage
// evaluations of the sampled velocity field), advancing (x,y,t) by dt
func rk4Substep(sampler *velocity.Sampler, x, y, t, dt float64) (xn, yn, tn float64, oob bool) {
	k1x, k1y, o1 := sampler.Sample(x, y, t)
	k2x, k2y, o2 := sampler.Sample(x+0.5*dt*k1x, y+0.5*dt*k1y, t+0.5*dt)
	k3x, k3y, o3 := sampler.Sample(x+0.5*dt*k2x, y+0.5*dt*k2y, t+0.5*dt)
	k4x, k4y, o4 := sampler.Sample(x+dt*k3x, y+dt*k3y, t+dt)

	xn = x + dt/6*(k1x+2*k2x+2*k3x+k4x)
	yn = y + dt/6*(k1y+2*k2y+2*k3y+k4y)
	tn = t + dt
	oob = o1 || o2 || o3 || o4
	return
}
