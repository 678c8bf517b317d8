// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestGridCoord(tst *testing.T) {

	chk.PrintTitle("GridCoord. basic metadata and indexing")

	g := NewGrid(5, 3, 0, 2, 0, 1)
	chk.Scalar(tst, "dx", 1e-15, g.Dx, 0.5)
	chk.Scalar(tst, "dy", 1e-15, g.Dy, 0.5)

	x, y := g.Coord(2, 1)
	chk.Scalar(tst, "x(2,1)", 1e-15, x, 1.0)
	chk.Scalar(tst, "y(2,1)", 1e-15, y, 0.5)

	if g.Index(2, 1) != 2*g.Ny+1 {
		tst.Errorf("Index convention changed: got %d", g.Index(2, 1))
	}
}

func TestGridClamp(tst *testing.T) {

	chk.PrintTitle("GridClamp. out-of-domain points pin to the boundary")

	g := NewGrid(5, 3, 0, 2, 0, 1)
	xc, yc, oob := g.Clamp(-1, 0.3)
	chk.Scalar(tst, "xc", 1e-15, xc, 0)
	chk.Scalar(tst, "yc", 1e-15, yc, 0.3)
	if !oob {
		tst.Errorf("expected out-of-bounds flag")
	}

	xc, yc, oob = g.Clamp(1, 0.3)
	chk.Scalar(tst, "xc-in", 1e-15, xc, 1)
	chk.Scalar(tst, "yc-in", 1e-15, yc, 0.3)
	if oob {
		tst.Errorf("expected in-bounds point")
	}
}

func TestVector2FieldResetUniform(tst *testing.T) {

	chk.PrintTitle("Vector2FieldResetUniform. identity map equals grid coordinates")

	g := NewGrid(4, 4, 0, 3, 0, 3)
	v := NewVector2Field(g)
	v.ResetUniform()
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			x, y := g.Coord(i, j)
			vx, vy := v.Get(i, j)
			chk.Scalar(tst, "vx", 1e-15, vx, x)
			chk.Scalar(tst, "vy", 1e-15, vy, y)
		}
	}
}

func TestPositionFieldOOB(tst *testing.T) {

	chk.PrintTitle("PositionFieldOOB. OOB mask sticks once set")

	g := NewGrid(3, 3, 0, 1, 0, 1)
	p := NewPositionField(g, 0.0)
	k := g.Index(0, 0)
	p.MarkOOB(k)
	if !p.IsOOB(0, 0) {
		tst.Errorf("expected OOB cell 0,0 to be flagged")
	}
	p.ResetToUniform(1.0)
	// reset clears the mask entirely (new uniform grid, new origin time)
	if p.IsOOB(0, 0) {
		tst.Errorf("expected OOB mask cleared after ResetToUniform")
	}
	chk.Scalar(tst, "t0", 1e-15, p.T0, 1.0)
	chk.Scalar(tst, "t", 1e-15, p.T, 1.0)
}
