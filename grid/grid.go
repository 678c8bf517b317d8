// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the uniform structured grid and the scalar,
// vector and position fields that live on it
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid holds the metadata of a uniform rectangular (nx, ny) grid
//
//	cell (i,j) with 0 ≤ i < nx, 0 ≤ j < ny corresponds to
//	  x = Xmin + i·Dx
//	  y = Ymin + j·Dy
//
// Flat storage uses the order k = i·ny + j (i outer, j inner), matching
// the velocity snapshot text format (§6 of the specification).
type Grid struct {
	Nx, Ny     int     // number of cells along x and y
	Xmin, Xmax float64 // x extent
	Ymin, Ymax float64 // y extent
	Dx, Dy     float64 // derived cell sizes
}

// NewGrid allocates a new Grid and computes Dx, Dy
func NewGrid(nx, ny int, xmin, xmax, ymin, ymax float64) (o *Grid) {
	if nx < 2 || ny < 2 {
		chk.Panic("grid must have at least 2x2 cells: got nx=%d ny=%d", nx, ny)
	}
	o = new(Grid)
	o.Nx, o.Ny = nx, ny
	o.Xmin, o.Xmax = xmin, xmax
	o.Ymin, o.Ymax = ymin, ymax
	o.Dx = (xmax - xmin) / float64(nx-1)
	o.Dy = (ymax - ymin) / float64(ny-1)
	return
}

// Index returns the flat index k of cell (i,j)
func (o *Grid) Index(i, j int) int {
	return i*o.Ny + j
}

// Coord returns the coordinates (x,y) of cell (i,j)
func (o *Grid) Coord(i, j int) (x, y float64) {
	return o.Xmin + float64(i)*o.Dx, o.Ymin + float64(j)*o.Dy
}

// Size returns the total number of cells nx·ny
func (o *Grid) Size() int {
	return o.Nx * o.Ny
}

// SameAs returns whether o and other share (nx,ny) and coordinate metadata
func (o *Grid) SameAs(other *Grid) bool {
	return o.Nx == other.Nx && o.Ny == other.Ny &&
		o.Xmin == other.Xmin && o.Xmax == other.Xmax &&
		o.Ymin == other.Ymin && o.Ymax == other.Ymax
}

// Clamp pins (x,y) to the domain rectangle, returning whether clamping occurred
func (o *Grid) Clamp(x, y float64) (xc, yc float64, oob bool) {
	xc, yc = x, y
	if xc < o.Xmin {
		xc = o.Xmin
		oob = true
	} else if xc > o.Xmax {
		xc = o.Xmax
		oob = true
	}
	if yc < o.Ymin {
		yc = o.Ymin
		oob = true
	} else if yc > o.Ymax {
		yc = o.Ymax
		oob = true
	}
	return
}

// CellFrac locates the lower-left cell (i,j) and fractional offsets (fx,fy) ∈ [0,1]
// for the point (x,y), after clamping to the grid. Ties (on a grid line) resolve to
// the lower-indexed cell, per §4.4.
func (o *Grid) CellFrac(x, y float64) (i, j int, fx, fy float64) {
	xc, yc, _ := o.Clamp(x, y)
	fi := (xc - o.Xmin) / o.Dx
	fj := (yc - o.Ymin) / o.Dy
	i = int(math.Ceil(fi)) - 1
	j = int(math.Ceil(fj)) - 1
	if i >= o.Nx-1 {
		i = o.Nx - 2
	}
	if j >= o.Ny-1 {
		j = o.Ny - 2
	}
	if i < 0 {
		i = 0
	}
	if j < 0 {
		j = 0
	}
	fx = fi - float64(i)
	fy = fj - float64(j)
	return
}

// ScalarField is a scalar value over a Grid, flat-stored in (i,j) order
type ScalarField struct {
	G    *Grid
	Data []float64
}

// NewScalarField allocates a zeroed scalar field over g
func NewScalarField(g *Grid) *ScalarField {
	return &ScalarField{G: g, Data: utl.Alloc(1, g.Size())[0]}
}

// Get returns the value at cell (i,j)
func (o *ScalarField) Get(i, j int) float64 {
	return o.Data[o.G.Index(i, j)]
}

// Set assigns the value at cell (i,j)
func (o *ScalarField) Set(i, j int, v float64) {
	o.Data[o.G.Index(i, j)] = v
}

// Fill sets every cell to v
func (o *ScalarField) Fill(v float64) {
	for k := range o.Data {
		o.Data[k] = v
	}
}

// Vector2Field is a ℝ² vector field over a Grid: two parallel flat slices
// in (i,j) order, one for the x component and one for the y component
type Vector2Field struct {
	G    *Grid
	X, Y []float64
}

// NewVector2Field allocates a zeroed vector field over g
func NewVector2Field(g *Grid) *Vector2Field {
	n := g.Size()
	return &Vector2Field{G: g, X: make([]float64, n), Y: make([]float64, n)}
}

// Get returns the vector at cell (i,j)
func (o *Vector2Field) Get(i, j int) (x, y float64) {
	k := o.G.Index(i, j)
	return o.X[k], o.Y[k]
}

// Set assigns the vector at cell (i,j)
func (o *Vector2Field) Set(i, j int, x, y float64) {
	k := o.G.Index(i, j)
	o.X[k] = x
	o.Y[k] = y
}

// ResetUniform overwrites every cell with the coordinates of its own grid
// point, i.e. makes this field represent the identity map U on g
func (o *Vector2Field) ResetUniform() {
	for i := 0; i < o.G.Nx; i++ {
		for j := 0; j < o.G.Ny; j++ {
			x, y := o.G.Coord(i, j)
			o.Set(i, j, x, y)
		}
	}
}

// LoadFrom bulk-copies values from flat (i,j)-ordered slices x, y
func (o *Vector2Field) LoadFrom(x, y []float64) {
	copy(o.X, x)
	copy(o.Y, y)
}

// StoreTo bulk-copies this field's values into flat (i,j)-ordered slices x, y
func (o *Vector2Field) StoreTo(x, y []float64) {
	copy(x, o.X)
	copy(y, o.Y)
}

// PositionField is a Vector2Field that additionally tracks the time at
// which it represented a uniform grid (T0), the current integration time
// (T), and an out-of-bounds mask: once a particle leaves the domain its
// cell is pinned to the boundary and flagged as degraded (§3)
type PositionField struct {
	*Vector2Field
	T0  float64
	T   float64
	OOB []bool
}

// NewPositionField allocates a position field over g, initialised to the
// uniform grid U at time t0
func NewPositionField(g *Grid, t0 float64) (o *PositionField) {
	o = &PositionField{Vector2Field: NewVector2Field(g), T0: t0, T: t0}
	o.ResetUniform()
	o.OOB = make([]bool, g.Size())
	return
}

// ResetToUniform re-initialises this field to the identity map U, clearing
// the out-of-bounds mask and stamping both T0 and T at t
func (o *PositionField) ResetToUniform(t float64) {
	o.ResetUniform()
	o.T0 = t
	o.T = t
	for k := range o.OOB {
		o.OOB[k] = false
	}
}

// MarkOOB flags cell k as out-of-bounds; once set it stays set until
// ResetToUniform clears the whole mask
func (o *PositionField) MarkOOB(k int) {
	o.OOB[k] = true
}

// IsOOB returns whether cell (i,j) has been flagged out-of-bounds
func (o *PositionField) IsOOB(i, j int) bool {
	return o.OOB[o.G.Index(i, j)]
}

// Clone returns a deep copy of o
func (o *PositionField) Clone() (c *PositionField) {
	c = &PositionField{
		Vector2Field: &Vector2Field{G: o.G, X: make([]float64, len(o.X)), Y: make([]float64, len(o.Y))},
		T0:           o.T0,
		T:            o.T,
		OOB:          make([]bool, len(o.OOB)),
	}
	copy(c.X, o.X)
	copy(c.Y, o.Y)
	copy(c.OOB, o.OOB)
	return
}
