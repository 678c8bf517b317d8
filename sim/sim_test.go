// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/george9932/LCS-FTLE-Optimized/analytic"
	"github.com/george9932/LCS-FTLE-Optimized/cfg"
	"github.com/george9932/LCS-FTLE-Optimized/grid"
)

func TestOrchestratorEndToEndForward(tst *testing.T) {

	chk.PrintTitle("OrchestratorEndToEndForward. full run over the double gyre produces finite FTLE output")

	root := tst.TempDir()
	dataDir := filepath.Join(root, "data")
	stepDir := filepath.Join(root, "steps")
	outDir := filepath.Join(root, "out")
	for _, d := range []string{dataDir, stepDir, outDir} {
		if err := os.MkdirAll(d, 0777); err != nil {
			tst.Fatalf("cannot create %s: %v", d, err)
		}
	}

	c := &cfg.Config{
		Xmin: 0, Xmax: 2, Ymin: 0, Ymax: 1,
		Nx: 21, Ny: 11,
		DataNx: 41, DataNy: 21,
		Tmin: 0, Tmax: 2, DataDeltaT: 0.1,
		Steps:      4,
		FilePrefix: "dg_",
		Direction:  "forward",
		DataDir:    dataDir, StepMapDir: stepDir, OutDir: outDir,
	}

	dg := analytic.NewDoubleGyre()
	dataGrid := grid.NewGrid(c.DataNx, c.DataNy, c.Xmin, c.Xmax, c.Ymin, c.Ymax)
	if err := dg.WriteSnapshots(dataDir, c.FilePrefix, dataGrid, c.Tmin, c.Tmax, c.DataDeltaT); err != nil {
		tst.Fatalf("WriteSnapshots failed: %v", err)
	}

	o := NewOrchestrator(c, false)
	if err := o.Run(); err != nil {
		tst.Fatalf("Run failed: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		tst.Fatalf("ReadDir(out) failed: %v", err)
	}
	if len(entries) != c.Steps {
		tst.Errorf("expected %d FTLE output files, got %d", c.Steps, len(entries))
	}

	for _, e := range entries {
		b, errR := os.ReadFile(filepath.Join(outDir, e.Name()))
		if errR != nil {
			tst.Fatalf("cannot read output %s: %v", e.Name(), errR)
		}
		if len(b) == 0 {
			tst.Errorf("output file %s is empty", e.Name())
		}
	}

	stepEntries, err := os.ReadDir(stepDir)
	if err != nil {
		tst.Fatalf("ReadDir(steps) failed: %v", err)
	}
	if len(stepEntries) != c.Steps {
		tst.Errorf("expected %d step flow map files, got %d", c.Steps, len(stepEntries))
	}
}

func TestOrchestratorBackwardRunWritesOppositeSignFiles(tst *testing.T) {

	chk.PrintTitle("OrchestratorBackwardRunWritesOppositeSignFiles. backward run keys files by negative_ prefix")

	root := tst.TempDir()
	dataDir := filepath.Join(root, "data")
	stepDir := filepath.Join(root, "steps")
	outDir := filepath.Join(root, "out")
	for _, d := range []string{dataDir, stepDir, outDir} {
		if err := os.MkdirAll(d, 0777); err != nil {
			tst.Fatalf("cannot create %s: %v", d, err)
		}
	}

	c := &cfg.Config{
		Xmin: 0, Xmax: 2, Ymin: 0, Ymax: 1,
		Nx: 11, Ny: 6,
		DataNx: 21, DataNy: 11,
		Tmin: 0, Tmax: 1, DataDeltaT: 0.1,
		Steps:      2,
		FilePrefix: "dg_",
		Direction:  "backward",
		DataDir:    dataDir, StepMapDir: stepDir, OutDir: outDir,
	}

	dg := analytic.NewDoubleGyre()
	dataGrid := grid.NewGrid(c.DataNx, c.DataNy, c.Xmin, c.Xmax, c.Ymin, c.Ymax)
	if err := dg.WriteSnapshots(dataDir, c.FilePrefix, dataGrid, c.Tmin, c.Tmax, c.DataDeltaT); err != nil {
		tst.Fatalf("WriteSnapshots failed: %v", err)
	}

	o := NewOrchestrator(c, false)
	if err := o.Run(); err != nil {
		tst.Fatalf("Run failed: %v", err)
	}

	stepEntries, err := os.ReadDir(stepDir)
	if err != nil {
		tst.Fatalf("ReadDir(steps) failed: %v", err)
	}
	for _, e := range stepEntries {
		if !containsNegative(e.Name()) {
			tst.Errorf("expected backward step map filename to carry the negative_ prefix, got %s", e.Name())
		}
	}
}

func containsNegative(name string) bool {
	for i := 0; i+len("negative_") <= len(name); i++ {
		if name[i:i+len("negative_")] == "negative_" {
			return true
		}
	}
	return false
}
