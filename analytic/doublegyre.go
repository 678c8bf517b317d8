// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package analytic provides the double-gyre test velocity field (§8):
// a closed-form, time-periodic flow with a known Lagrangian coherent
// structure, used to exercise the pipeline end to end without needing
// externally supplied data files.
package analytic

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/george9932/LCS-FTLE-Optimized/flowmap"
	"github.com/george9932/LCS-FTLE-Optimized/grid"
	"github.com/george9932/LCS-FTLE-Optimized/textio"
)

// DoubleGyre holds the parameters of the classic Shadden/Lekien/Marsden
// double-gyre flow (§8): A is the stream-function amplitude, Omega the
// angular frequency of the side-to-side oscillation, and Eps its
// amplitude
type DoubleGyre struct {
	A     float64
	Omega float64
	Eps   float64
}

// NewDoubleGyre returns the double-gyre with the textbook parameters
// A=0.1, ω=2π/10, ε=0.25
func NewDoubleGyre() *DoubleGyre {
	return &DoubleGyre{A: 0.1, Omega: 2.0 * math.Pi / 10.0, Eps: 0.25}
}

// Velocity evaluates (u,v) at (x,y,t)
func (o *DoubleGyre) Velocity(x, y, t float64) (u, v float64) {
	a := o.Eps * math.Sin(o.Omega*t)
	b := 1.0 - 2.0*a
	f := a*x*x + b*x
	dfdx := 2.0*a*x + b
	u = -math.Pi * o.A * math.Sin(math.Pi*f) * math.Cos(math.Pi*y)
	v = math.Pi * o.A * math.Cos(math.Pi*f) * math.Sin(math.Pi*y) * dfdx
	return
}

// WriteSnapshots samples the double-gyre velocity field onto dataGrid
// at every multiple of dtData between tMin and tMax inclusive, writing
// one snapshot file per sample via textio.WriteSnapshot. filePrefix and
// dir, together with the fixed decimal precision derived from dtData,
// follow the same {dir}/{prefix}{t:.Pf}.txt convention that
// velocity.Cache uses to find these same files back
func (o *DoubleGyre) WriteSnapshots(dir, filePrefix string, dataGrid *grid.Grid, tMin, tMax, dtData float64) (err error) {
	precision := flowmap.Precision(dtData, 12)
	n := int(math.Round((tMax-tMin)/dtData)) + 1
	for k := 0; k < n; k++ {
		t := tMin + float64(k)*dtData
		v := grid.NewVector2Field(dataGrid)
		for i := 0; i < dataGrid.Nx; i++ {
			for j := 0; j < dataGrid.Ny; j++ {
				x, y := dataGrid.Coord(i, j)
				u, w := o.Velocity(x, y, t)
				v.Set(i, j, u, w)
			}
		}
		format := io.Sf("%%s/%%s%%.%df.txt", precision)
		path := io.Sf(format, dir, filePrefix, t)
		if err = textio.WriteSnapshot(path, v, t); err != nil {
			return
		}
	}
	return
}
