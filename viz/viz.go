// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package viz provides a thin gosl/plt adapter for inspecting an FTLE
// field. It is never called from the core pipeline: it exists purely
// to let a user look at a result after the fact
package viz

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/george9932/LCS-FTLE-Optimized/grid"
)

// nbands is the number of intensity bands the FTLE range is split into
// for the scatter-based heatmap below
const nbands = 12

// PlotHeatmap renders the scalar field l as a banded scatter plot (band
// colours run from blue for the lowest FTLE values to red for the
// highest) and saves it to dirout/fname. Ridges of large FTLE values --
// the LCS candidates -- stand out as the reddest band
func PlotHeatmap(l *grid.ScalarField, dirout, fname, title string) (err error) {
	g := l.G

	lo, hi := finiteRange(l)
	if hi <= lo {
		hi = lo + 1
	}

	xs := make([][]float64, nbands)
	ys := make([][]float64, nbands)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			v := l.Get(i, j)
			if v != v { // NaN: outside the domain of validity, skip
				continue
			}
			b := band(v, lo, hi)
			x, y := g.Coord(i, j)
			xs[b] = append(xs[b], x)
			ys[b] = append(ys[b], y)
		}
	}

	for b := 0; b < nbands; b++ {
		if len(xs[b]) == 0 {
			continue
		}
		shade := float64(b) / float64(nbands-1)
		args := io.Sf("'s', color=(%g,%g,%g), markersize=3, lw=0", shade, 0.2, 1.0-shade)
		plt.Plot(xs[b], ys[b], args)
	}
	plt.Gll("$x$", "$y$", nil)
	plt.SaveD(dirout, fname)
	return
}

// band returns the intensity band index of v within [lo,hi]
func band(v, lo, hi float64) int {
	frac := (v - lo) / (hi - lo)
	b := int(frac * float64(nbands))
	if b < 0 {
		b = 0
	}
	if b >= nbands {
		b = nbands - 1
	}
	return b
}

// finiteRange returns the min and max of every non-NaN value in l
func finiteRange(l *grid.ScalarField) (lo, hi float64) {
	first := true
	for _, v := range l.Data {
		if v != v {
			continue
		}
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return
}
