// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analytic

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// Trajectory integrates a single particle through the double-gyre
// field from (x0,y0) at time t0 to time t1, using an independent
// implicit solver (Radau5) as a reference against which the fixed-step
// RK4 advector's output can be cross-checked in tests
func (o *DoubleGyre) Trajectory(x0, y0, t0, t1 float64) (x1, y1 float64, err error) {

	fcn := func(f []float64, dx, x float64, y []float64) error {
		t := t0 + x*(t1-t0)
		u, v := o.Velocity(y[0], y[1], t)
		f[0] = u * (t1 - t0)
		f[1] = v * (t1 - t0)
		return nil
	}
	jac := func(dfdy *la.Triplet, dx, x float64, y []float64) error {
		if dfdy.Max() == 0 {
			dfdy.Init(2, 2, 4)
		}
		dfdy.Start()
		return nil
	}

	var solver ode.Solver
	solver.Init("Radau5", 2, fcn, jac, nil, nil)
	solver.SetTol(1e-12, 1e-10)
	solver.Distr = false

	y := []float64{x0, y0}
	errS := solver.Solve(y, 0, 1, 1, false)
	if errS != nil {
		err = chk.Err("analytic: trajectory integration failed: %v", errS)
		return
	}
	x1, y1 = y[0], y[1]
	return
}
