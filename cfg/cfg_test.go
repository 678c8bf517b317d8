// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const sampleJSON = `{
	"x_min": 0, "x_max": 2, "y_min": 0, "y_max": 1,
	"nx": 101, "ny": 51,
	"data_nx": 101, "data_ny": 51,
	"t_min": 0, "t_max": 10, "data_delta_t": 0.1,
	"steps": 20,
	"file_prefix": "dg_",
	"direction": "forward",
	"data_dir": "/tmp/data",
	"stepmap_dir": "/tmp/stepmaps",
	"out_dir": "/tmp/out"
}`

func writeTmp(tst *testing.T, content string) string {
	dir := tst.TempDir()
	path := filepath.Join(dir, "run.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatalf("cannot write temp config: %v", err)
	}
	return path
}

func TestReadValidConfig(tst *testing.T) {

	chk.PrintTitle("ReadValidConfig. a well-formed file parses and validates")

	path := writeTmp(tst, sampleJSON)
	o, err := Read(path)
	if err != nil {
		tst.Fatalf("Read failed: %v", err)
	}
	chk.IntAssert(o.Nx, 101)
	chk.IntAssert(o.Ny, 51)
	chk.Scalar(tst, "data_delta_t", 1e-15, o.DataDeltaT, 0.1)
	chk.IntAssert(o.Sign(), +1)
}

func TestReadBackwardDirection(tst *testing.T) {

	chk.PrintTitle("ReadBackwardDirection. Sign reflects the backward direction")

	path := writeTmp(tst, `{
		"x_min": 0, "x_max": 1, "y_min": 0, "y_max": 1,
		"nx": 2, "ny": 2, "data_nx": 2, "data_ny": 2,
		"t_min": 0, "t_max": 1, "data_delta_t": 0.5,
		"steps": 1, "file_prefix": "p_", "direction": "backward",
		"data_dir": "d", "stepmap_dir": "s", "out_dir": "o"
	}`)
	o, err := Read(path)
	if err != nil {
		tst.Fatalf("Read failed: %v", err)
	}
	chk.IntAssert(o.Sign(), -1)
}

func TestReadRejectsUnknownField(tst *testing.T) {

	chk.PrintTitle("ReadRejectsUnknownField. a typo'd key is a hard error, not silently dropped")

	path := writeTmp(tst, `{
		"x_min": 0, "x_max": 1, "y_min": 0, "y_max": 1,
		"nx": 2, "ny": 2, "data_nx": 2, "data_ny": 2,
		"t_min": 0, "t_max": 1, "data_delta_t": 0.5,
		"steps": 1, "file_prefix": "p_", "direction": "forward",
		"data_dir": "d", "stepmap_dir": "s", "out_dir": "o",
		"directon": "oops"
	}`)
	_, err := Read(path)
	if err == nil {
		tst.Fatalf("expected Read to reject an unknown field")
	}
}

func TestReadRejectsNonDividingDataDeltaT(tst *testing.T) {

	chk.PrintTitle("ReadRejectsNonDividingDataDeltaT. data_delta_t must divide t_max-t_min evenly")

	path := writeTmp(tst, `{
		"x_min": 0, "x_max": 1, "y_min": 0, "y_max": 1,
		"nx": 2, "ny": 2, "data_nx": 2, "data_ny": 2,
		"t_min": 0, "t_max": 1, "data_delta_t": 0.3,
		"steps": 1, "file_prefix": "p_", "direction": "forward",
		"data_dir": "d", "stepmap_dir": "s", "out_dir": "o"
	}`)
	_, err := Read(path)
	if err == nil {
		tst.Fatalf("expected Read to reject data_delta_t=0.3 not dividing t_max-t_min=1")
	}
}

func TestReadRejectsBadDomain(tst *testing.T) {

	chk.PrintTitle("ReadRejectsBadDomain. x_max <= x_min is invalid")

	path := writeTmp(tst, `{
		"x_min": 1, "x_max": 1, "y_min": 0, "y_max": 1,
		"nx": 2, "ny": 2, "data_nx": 2, "data_ny": 2,
		"t_min": 0, "t_max": 1, "data_delta_t": 0.5,
		"steps": 1, "file_prefix": "p_", "direction": "forward",
		"data_dir": "d", "stepmap_dir": "s", "out_dir": "o"
	}`)
	_, err := Read(path)
	if err == nil {
		tst.Fatalf("expected Read to reject x_max <= x_min")
	}
}
