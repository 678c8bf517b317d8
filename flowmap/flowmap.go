// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flowmap implements the step-flow-map store (§4.3): it persists
// each single-step end-position field to a binary file keyed by
// (sign, time) and reloads it for reuse by the compositional
// reconstructor. Files are read with a single buffered pass rather than
// a true mmap: this is the documented, semantically-equivalent fallback
// for platforms without mmap support (§4.3, §9).
package flowmap

import (
	"bufio"
	"encoding/binary"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/george9932/LCS-FTLE-Optimized/grid"
)

// headerInt32s is the number of int32 fields in the fixed header (nx, ny)
const headerInt32s = 2

// headerFloat64s is the number of float64 fields in the fixed header (t0, t)
const headerFloat64s = 2

// SignPrefix returns the filename sign component of a step-map file: §6
func SignPrefix(sign int) string {
	if sign < 0 {
		return "negative_"
	}
	return "positive_"
}

// Precision returns the smallest non-negative integer P such that
// dtData·10^P is integral, capped at max (§4.3)
func Precision(dtData float64, max int) int {
	for p := 0; p <= max; p++ {
		scaled := dtData * math.Pow(10, float64(p))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			return p
		}
	}
	return max
}

// Filename returns {dir}/{filePrefix}{signPrefix}{t:.Pf}.bin (§6)
func Filename(dir, filePrefix string, sign int, t float64, precision int) string {
	format := io.Sf("%%s/%%s%%s%%.%df.bin", precision)
	return io.Sf(format, dir, filePrefix, SignPrefix(sign), t)
}

// Write persists p's position field (the flow map Φ_s) to path: a small
// fixed-layout header (nx, ny, t0, t) followed by nx·ny little-endian
// (x,y) float64 pairs in (i,j) order
func Write(path string, p *grid.PositionField) (err error) {
	f, errC := os.Create(path)
	if errC != nil {
		err = chk.Err("flowmap: cannot create %q: %v", path, errC)
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if e := binary.Write(w, binary.LittleEndian, int32(p.G.Nx)); e != nil {
		err = chk.Err("flowmap: write header nx failed: %v", e)
		return
	}
	if e := binary.Write(w, binary.LittleEndian, int32(p.G.Ny)); e != nil {
		err = chk.Err("flowmap: write header ny failed: %v", e)
		return
	}
	if e := binary.Write(w, binary.LittleEndian, p.T0); e != nil {
		err = chk.Err("flowmap: write header t0 failed: %v", e)
		return
	}
	if e := binary.Write(w, binary.LittleEndian, p.T); e != nil {
		err = chk.Err("flowmap: write header t failed: %v", e)
		return
	}
	n := p.G.Size()
	for k := 0; k < n; k++ {
		if e := binary.Write(w, binary.LittleEndian, p.X[k]); e != nil {
			err = chk.Err("flowmap: write x[%d] failed: %v", k, e)
			return
		}
		if e := binary.Write(w, binary.LittleEndian, p.Y[k]); e != nil {
			err = chk.Err("flowmap: write y[%d] failed: %v", k, e)
			return
		}
	}
	if e := w.Flush(); e != nil {
		err = chk.Err("flowmap: flush %q failed: %v", path, e)
	}
	return
}

// Read loads a step flow map from path onto the given output grid g. The
// OOB mask is not stored on disk (§6): it is recomputed by the
// reconstructor as it resamples this map, since it depends on the path
// taken to reach this step, not on this step's geometry alone.
func Read(path string, g *grid.Grid) (p *grid.PositionField, err error) {
	f, errO := os.Open(path)
	if errO != nil {
		err = chk.Err("flowmap: cannot open %q: %v", path, errO)
		return
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var nx, ny int32
	if e := binary.Read(r, binary.LittleEndian, &nx); e != nil {
		err = chk.Err("flowmap: read header nx failed: %v", e)
		return
	}
	if e := binary.Read(r, binary.LittleEndian, &ny); e != nil {
		err = chk.Err("flowmap: read header ny failed: %v", e)
		return
	}
	if int(nx) != g.Nx || int(ny) != g.Ny {
		err = chk.Err("flowmap: %q header (%d,%d) does not match output grid (%d,%d)", path, nx, ny, g.Nx, g.Ny)
		return
	}
	var t0, t float64
	if e := binary.Read(r, binary.LittleEndian, &t0); e != nil {
		err = chk.Err("flowmap: read header t0 failed: %v", e)
		return
	}
	if e := binary.Read(r, binary.LittleEndian, &t); e != nil {
		err = chk.Err("flowmap: read header t failed: %v", e)
		return
	}

	p = &grid.PositionField{Vector2Field: grid.NewVector2Field(g), T0: t0, T: t, OOB: make([]bool, g.Size())}
	n := g.Size()
	for k := 0; k < n; k++ {
		var x, y float64
		if e := binary.Read(r, binary.LittleEndian, &x); e != nil {
			err = chk.Err("flowmap: %q truncated at x[%d]: %v", path, k, e)
			return
		}
		if e := binary.Read(r, binary.LittleEndian, &y); e != nil {
			err = chk.Err("flowmap: %q truncated at y[%d]: %v", path, k, e)
			return
		}
		p.X[k] = x
		p.Y[k] = y
	}
	return
}
