// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package textio implements the text-format readers and writers for
// velocity snapshots and FTLE output grids (§6 of the specification).
// These are thin adapters: no algorithmic content lives here.
package textio

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/george9932/LCS-FTLE-Optimized/grid"
)

// ReadSnapshot reads a velocity snapshot text file:
//
//	line 1: nx_data
//	line 2: ny_data
//	line 3: t
//	then, for i=0..nx-1, for j=0..ny-1: u on one line, v on the next
//
// g carries the data grid's coordinate metadata (x_min,x_max,y_min,y_max come
// from configuration, never from the snapshot file); a mismatch between g's
// (nx,ny) and the file's is reported as an error.
func ReadSnapshot(path string, g *grid.Grid) (v *grid.Vector2Field, t float64, err error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		err = chk.Err("cannot open snapshot file %q: %v", path, errOpen)
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 64*1024*1024)

	readLine := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	l1, ok := readLine()
	if !ok {
		err = chk.Err("snapshot file %q: missing nx_data line", path)
		return
	}
	nx, errA := strconv.Atoi(l1)
	if errA != nil {
		err = chk.Err("snapshot file %q: invalid nx_data %q", path, l1)
		return
	}

	l2, ok := readLine()
	if !ok {
		err = chk.Err("snapshot file %q: missing ny_data line", path)
		return
	}
	ny, errB := strconv.Atoi(l2)
	if errB != nil {
		err = chk.Err("snapshot file %q: invalid ny_data %q", path, l2)
		return
	}

	if nx != g.Nx || ny != g.Ny {
		err = chk.Err("snapshot file %q: grid mismatch: got (%d,%d), expected (%d,%d)", path, nx, ny, g.Nx, g.Ny)
		return
	}

	l3, ok := readLine()
	if !ok {
		err = chk.Err("snapshot file %q: missing t line", path)
		return
	}
	t, errC := strconv.ParseFloat(l3, 64)
	if errC != nil {
		err = chk.Err("snapshot file %q: invalid t %q", path, l3)
		return
	}

	v = grid.NewVector2Field(g)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			lu, ok := readLine()
			if !ok {
				err = chk.Err("snapshot file %q: truncated at i=%d j=%d (u)", path, i, j)
				return
			}
			u, e := strconv.ParseFloat(lu, 64)
			if e != nil {
				err = chk.Err("snapshot file %q: invalid u at i=%d j=%d: %q", path, i, j, lu)
				return
			}
			lv, ok := readLine()
			if !ok {
				err = chk.Err("snapshot file %q: truncated at i=%d j=%d (v)", path, i, j)
				return
			}
			w, e := strconv.ParseFloat(lv, 64)
			if e != nil {
				err = chk.Err("snapshot file %q: invalid v at i=%d j=%d: %q", path, i, j, lv)
				return
			}
			v.Set(i, j, u, w)
		}
	}
	return
}

// WriteSnapshot writes a velocity snapshot text file in the format read by
// ReadSnapshot. Used by the analytic test-fixture generator (§1).
func WriteSnapshot(path string, v *grid.Vector2Field, t float64) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "%d\n%d\n%.15g\n", v.G.Nx, v.G.Ny, t)
	for i := 0; i < v.G.Nx; i++ {
		for j := 0; j < v.G.Ny; j++ {
			u, w := v.Get(i, j)
			io.Ff(&buf, "%.15g\n%.15g\n", u, w)
		}
	}
	errW := io.WriteFileV(path, &buf)
	if errW != nil {
		err = chk.Err("cannot write snapshot file %q: %v", path, errW)
	}
	return
}

// WriteFTLE writes the FTLE output text file (§6):
//
//	line 1: nx, line 2: ny, line 3: t_origin, line 4: t_final
//	then nx·ny scalar values, one per line, in (i,j) order
func WriteFTLE(path string, l *grid.ScalarField, tOrigin, tFinal float64) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "%d\n%d\n%.15g\n%.15g\n", l.G.Nx, l.G.Ny, tOrigin, tFinal)
	for _, v := range l.Data {
		io.Ff(&buf, "%.15g\n", v)
	}
	errW := io.WriteFileV(path, &buf)
	if errW != nil {
		err = chk.Err("cannot write FTLE file %q: %v", path, errW)
	}
	return
}
