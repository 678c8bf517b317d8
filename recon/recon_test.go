// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recon

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/george9932/LCS-FTLE-Optimized/flowmap"
	"github.com/george9932/LCS-FTLE-Optimized/grid"
)

// writeTranslationStep writes a step map that is a pure uniform
// translation of the identity grid by (dx,dy)
func writeTranslationStep(dir, prefix string, sign int, tEnd float64, g *grid.Grid, precision int, dx, dy float64) {
	p := grid.NewPositionField(g, tEnd)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			x, y := g.Coord(i, j)
			p.Set(i, j, x+dx, y+dy)
		}
	}
	path := flowmap.Filename(dir, prefix, sign, tEnd, precision)
	if err := flowmap.Write(path, p); err != nil {
		panic(err)
	}
}

func TestReconstructComposesTranslations(tst *testing.T) {

	chk.PrintTitle("ReconstructComposesTranslations. composition is exact for linear maps")

	g := grid.NewGrid(5, 5, 0, 10, 0, 10)
	dir := tst.TempDir()

	writeTranslationStep(dir, "dg_", +1, 0.1, g, 1, 0.1, 0.05)
	writeTranslationStep(dir, "dg_", +1, 0.2, g, 1, 0.1, 0.05)

	r := &Reconstructor{OutGrid: g, StepMapDir: dir, FilePrefix: "dg_", Sign: +1, Precision: 1, Dt: 0.1}
	psi, err := r.Reconstruct(0.0, 0.2)
	if err != nil {
		tst.Fatalf("Reconstruct failed: %v", err)
	}

	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			x, y := g.Coord(i, j)
			px, py := psi.Get(i, j)
			// cells pushed past the upper edge are clamped to it
			chk.Scalar(tst, "px", 1e-9, px, math.Min(x+0.2, g.Xmax))
			chk.Scalar(tst, "py", 1e-9, py, math.Min(y+0.1, g.Ymax))
		}
	}
	chk.Scalar(tst, "psi.T", 1e-15, psi.T, 0.2)
}

func TestReconstructZeroStepsIsIdentity(tst *testing.T) {

	chk.PrintTitle("ReconstructZeroStepsIsIdentity. steps=0 reproduces the uniform grid")

	g := grid.NewGrid(4, 4, 0, 1, 0, 1)
	r := &Reconstructor{OutGrid: g, StepMapDir: tst.TempDir(), FilePrefix: "dg_", Sign: +1, Precision: 1, Dt: 0.1}
	psi, err := r.Reconstruct(1.0, 1.0)
	if err != nil {
		tst.Fatalf("Reconstruct failed: %v", err)
	}
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			x, y := g.Coord(i, j)
			px, py := psi.Get(i, j)
			chk.Scalar(tst, "px", 1e-15, px, x)
			chk.Scalar(tst, "py", 1e-15, py, y)
		}
	}
}

func TestReconstructOOBSticks(tst *testing.T) {

	chk.PrintTitle("ReconstructOOBSticks. a cell that leaves the domain stays flagged")

	g := grid.NewGrid(3, 3, 0, 1, 0, 1)
	dir := tst.TempDir()

	// first step pushes everything far outside the domain
	writeTranslationStep(dir, "dg_", +1, 0.1, g, 1, 5.0, 0.0)
	// second step is a no-op translation
	writeTranslationStep(dir, "dg_", +1, 0.2, g, 1, 0.0, 0.0)

	r := &Reconstructor{OutGrid: g, StepMapDir: dir, FilePrefix: "dg_", Sign: +1, Precision: 1, Dt: 0.1}
	psi, err := r.Reconstruct(0.0, 0.2)
	if err != nil {
		tst.Fatalf("Reconstruct failed: %v", err)
	}
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			if !psi.IsOOB(i, j) {
				tst.Errorf("expected cell (%d,%d) to be flagged OOB", i, j)
			}
		}
	}
}
