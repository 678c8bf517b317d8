// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// bilinear returns the four corner weights for fractional offsets (fx,fy) ∈ [0,1]²
// in the order (i,j), (i+1,j), (i,j+1), (i+1,j+1)
func bilinear(fx, fy float64) (w00, w10, w01, w11 float64) {
	w00 = (1 - fx) * (1 - fy)
	w10 = fx * (1 - fy)
	w01 = (1 - fx) * fy
	w11 = fx * fy
	return
}

// SampleScalar bilinearly interpolates o at (x,y), clamping to the domain.
// Sampling at an exact grid point returns that point's value exactly.
func (o *ScalarField) SampleScalar(x, y float64) float64 {
	i, j, fx, fy := o.G.CellFrac(x, y)
	w00, w10, w01, w11 := bilinear(fx, fy)
	return w00*o.Get(i, j) + w10*o.Get(i+1, j) + w01*o.Get(i, j+1) + w11*o.Get(i+1, j+1)
}

// Sample bilinearly interpolates o at (x,y), clamping to the domain, and
// reports whether (x,y) fell outside the domain rectangle. Sampling at an
// exact grid point returns that point's value exactly.
func (o *Vector2Field) Sample(x, y float64) (vx, vy float64, oob bool) {
	_, _, oob = o.G.Clamp(x, y)
	i, j, fx, fy := o.G.CellFrac(x, y)
	w00, w10, w01, w11 := bilinear(fx, fy)
	x00, y00 := o.Get(i, j)
	x10, y10 := o.Get(i+1, j)
	x01, y01 := o.Get(i, j+1)
	x11, y11 := o.Get(i+1, j+1)
	vx = w00*x00 + w10*x10 + w01*x01 + w11*x11
	vy = w00*y00 + w10*y10 + w01*y01 + w11*y11
	return
}
