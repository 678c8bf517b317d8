// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package velocity implements the bilinear-in-space / linear-in-time
// velocity sampler (§4.1) and the lazy, bounded snapshot cache (§2.3)
// that keeps the two bracketing snapshots resident.
package velocity

import (
	"github.com/george9932/LCS-FTLE-Optimized/grid"
)

// Snapshot is one velocity field sample (t_k, V_k) on the data grid
type Snapshot struct {
	T float64
	V *grid.Vector2Field
}

// Sampler serves v(x,y,t) by bilinearly interpolating in space and
// linearly interpolating in time between the two snapshots it currently
// holds. It does not itself read files: the Cache is responsible for
// keeping S0/S1 bracketing the requested time.
type Sampler struct {
	DataGrid *grid.Grid
	S0, S1   *Snapshot // S0.T ≤ S1.T, bracketing the current integration time
}

// NewSampler returns a Sampler over the given data grid, with no
// snapshots loaded yet
func NewSampler(dataGrid *grid.Grid) *Sampler {
	return &Sampler{DataGrid: dataGrid}
}

// SetBracket installs the two snapshots that bracket the time range
// currently being integrated
func (o *Sampler) SetBracket(s0, s1 *Snapshot) {
	o.S0, o.S1 = s0, s1
}

// Sample returns v(x,y,t) by bilinear spatial interpolation of S0 and S1
// followed by linear interpolation in time. (x,y) may lie outside the
// domain: it is clamped and oob reports whether it was. If t coincides
// exactly with S0.T or S1.T, that snapshot is used verbatim.
func (o *Sampler) Sample(x, y, t float64) (u, v float64, oob bool) {
	if t == o.S0.T {
		u, v, oob = o.S0.V.Sample(x, y)
		return
	}
	if t == o.S1.T {
		u, v, oob = o.S1.V.Sample(x, y)
		return
	}
	u0, v0, oob0 := o.S0.V.Sample(x, y)
	u1, v1, oob1 := o.S1.V.Sample(x, y)
	oob = oob0 || oob1
	frac := (t - o.S0.T) / (o.S1.T - o.S0.T)
	u = u0 + frac*(u1-u0)
	v = v0 + frac*(v1-v0)
	return
}
