// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ftle implements the FTLE kernel (§4.5): the 2×2 deformation
// gradient of a composed flow map is formed by finite differences, the
// Cauchy-Green tensor's largest eigenvalue is read off in closed form
// from its trace and determinant, and the FTLE scalar follows directly.
// No generic eigensolver is needed or wanted here: the closed form is
// exact for a 2×2 symmetric matrix and avoids a LAPACK round-trip per
// grid cell in what is the hottest loop in the whole pipeline.
package ftle

import (
	"math"
	"runtime"
	"sync"

	"github.com/george9932/LCS-FTLE-Optimized/grid"
)

// Sentinel is the value recorded for cells whose finite-difference
// stencil touches an out-of-bounds neighbour (§4.5 step 6, §9 open
// question — fixed to NaN so it propagates visibly through any
// downstream numeric reduction instead of silently reading as zero).
var Sentinel = math.NaN()

// Compute derives the FTLE scalar field from the composed flow map psi,
// with origin time tOrigin and final time tFinal
func Compute(psi *grid.PositionField, tOrigin, tFinal float64) *grid.ScalarField {
	g := psi.G
	out := grid.NewScalarField(g)
	capT := math.Abs(tFinal - tOrigin)

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
					out.Set(i, j, cellFTLE(psi, i, j, capT))
				}
			}
		}()
	}
	wg.Wait()
	return out
}

// cellFTLE computes the FTLE value at cell (i,j): centered differences
// in the interior, one-sided at the boundary (§4.5 steps 1-2)
func cellFTLE(psi *grid.PositionField, i, j int, capT float64) float64 {
	g := psi.G

	if psi.IsOOB(i, j) {
		return Sentinel
	}

	var dPxDx, dPyDx float64
	switch {
	case i > 0 && i < g.Nx-1:
		if psi.IsOOB(i-1, j) || psi.IsOOB(i+1, j) {
			return Sentinel
		}
		xm, ym := psi.Get(i-1, j)
		xp, yp := psi.Get(i+1, j)
		dPxDx = (xp - xm) / (2 * g.Dx)
		dPyDx = (yp - ym) / (2 * g.Dx)
	case i == 0:
		if psi.IsOOB(i+1, j) {
			return Sentinel
		}
		x0, y0 := psi.Get(i, j)
		x1, y1 := psi.Get(i+1, j)
		dPxDx = (x1 - x0) / g.Dx
		dPyDx = (y1 - y0) / g.Dx
	default: // i == nx-1
		if psi.IsOOB(i-1, j) {
			return Sentinel
		}
		xm, ym := psi.Get(i-1, j)
		x0, y0 := psi.Get(i, j)
		dPxDx = (x0 - xm) / g.Dx
		dPyDx = (y0 - ym) / g.Dx
	}

	var dPxDy, dPyDy float64
	switch {
	case j > 0 && j < g.Ny-1:
		if psi.IsOOB(i, j-1) || psi.IsOOB(i, j+1) {
			return Sentinel
		}
		xm, ym := psi.Get(i, j-1)
		xp, yp := psi.Get(i, j+1)
		dPxDy = (xp - xm) / (2 * g.Dy)
		dPyDy = (yp - ym) / (2 * g.Dy)
	case j == 0:
		if psi.IsOOB(i, j+1) {
			return Sentinel
		}
		x0, y0 := psi.Get(i, j)
		x1, y1 := psi.Get(i, j+1)
		dPxDy = (x1 - x0) / g.Dy
		dPyDy = (y1 - y0) / g.Dy
	default: // j == ny-1
		if psi.IsOOB(i, j-1) {
			return Sentinel
		}
		xm, ym := psi.Get(i, j-1)
		x0, y0 := psi.Get(i, j)
		dPxDy = (x0 - xm) / g.Dy
		dPyDy = (y0 - ym) / g.Dy
	}

	// deformation gradient DΨ = [[dPxDx, dPxDy], [dPyDx, dPyDy]]
	// Cauchy-Green tensor C = DΨᵀ·DΨ
	c11 := dPxDx*dPxDx + dPyDx*dPyDx
	c12 := dPxDx*dPxDy + dPyDx*dPyDy
	c22 := dPxDy*dPxDy + dPyDy*dPyDy

	tr := c11 + c22
	det := c11*c22 - c12*c12
	disc := tr*tr - 4*det
	if disc < 0 {
		disc = 0 // guards against rounding noise; C is PSD so disc ≥ 0 analytically
	}
	lambdaMax := 0.5 * (tr + math.Sqrt(disc))

	if lambdaMax <= 0 || capT == 0 {
		return 0
	}
	return 1.0 / (2.0 * capT) * 0.5 * math.Log(lambdaMax)
}
