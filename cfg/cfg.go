// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cfg implements the run configuration read from a JSON file
// (§6): domain and grid geometry, the velocity data cadence, the output
// horizon schedule, and the direction of integration.
package cfg

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Config holds everything needed to run one FTLE computation
type Config struct {
	Xmin float64 `json:"x_min"` // output grid lower x bound
	Xmax float64 `json:"x_max"` // output grid upper x bound
	Ymin float64 `json:"y_min"` // output grid lower y bound
	Ymax float64 `json:"y_max"` // output grid upper y bound

	Nx int `json:"nx"` // output grid points in x
	Ny int `json:"ny"` // output grid points in y

	DataNx int `json:"data_nx"` // velocity data grid points in x
	DataNy int `json:"data_ny"` // velocity data grid points in y

	Tmin       float64 `json:"t_min"`        // first available data snapshot time
	Tmax       float64 `json:"t_max"`        // last available data snapshot time
	DataDeltaT float64 `json:"data_delta_t"` // data cadence Δt_data

	Steps int `json:"steps"` // number of output horizons between t_min and t_max

	FilePrefix string `json:"file_prefix"` // shared prefix for velocity snapshot and step-map filenames
	Direction  string `json:"direction"`   // "forward" or "backward"

	DataDir    string `json:"data_dir"`     // directory holding velocity snapshot files
	StepMapDir string `json:"stepmap_dir"`  // directory for intermediate step-flow-map files
	OutDir     string `json:"out_dir"`      // directory for FTLE field outputs
}

// Sign returns +1 for a forward run, -1 for backward
func (o *Config) Sign() int {
	if o.Direction == "backward" {
		return -1
	}
	return +1
}

// Read loads and validates a configuration from a JSON file. Unknown
// and missing keys are rejected rather than silently ignored or zeroed,
// since a typo'd key here means a silently-wrong physical setup rather
// than a parse error
func Read(path string) (o *Config, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		err = chk.Err("cfg: cannot read configuration file %q: %v", path, err)
		return
	}

	o = new(Config)
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if errD := dec.Decode(o); errD != nil {
		err = chk.Err("cfg: cannot parse configuration file %q: %v", path, errD)
		o = nil
		return
	}

	var raw map[string]json.RawMessage
	if errM := json.Unmarshal(b, &raw); errM == nil {
		ct := reflect.TypeOf(*o)
		for f := 0; f < ct.NumField(); f++ {
			key := ct.Field(f).Tag.Get("json")
			if _, ok := raw[key]; !ok {
				err = chk.Err("cfg: configuration file %q is missing key %q", path, key)
				o = nil
				return
			}
		}
	}

	if errV := o.validate(); errV != nil {
		err = errV
		o = nil
		return
	}
	return
}

// validate checks that every field required to run the pipeline is
// present and consistent
func (o *Config) validate() (err error) {
	if o.Nx < 2 || o.Ny < 2 {
		return chk.Err("cfg: nx and ny must each be at least 2 (got nx=%d ny=%d)", o.Nx, o.Ny)
	}
	if o.DataNx < 2 || o.DataNy < 2 {
		return chk.Err("cfg: data_nx and data_ny must each be at least 2 (got data_nx=%d data_ny=%d)", o.DataNx, o.DataNy)
	}
	if o.Xmax <= o.Xmin || o.Ymax <= o.Ymin {
		return chk.Err("cfg: domain bounds must satisfy x_max>x_min and y_max>y_min")
	}
	if o.DataDeltaT <= 0 {
		return chk.Err("cfg: data_delta_t must be positive (got %g)", o.DataDeltaT)
	}
	if o.Tmax <= o.Tmin {
		return chk.Err("cfg: t_max must be greater than t_min")
	}
	nSnaps := (o.Tmax - o.Tmin) / o.DataDeltaT
	if math.Abs(nSnaps-math.Round(nSnaps)) > 1e-6 {
		return chk.Err("cfg: data_delta_t (%g) must divide t_max-t_min (%g) evenly", o.DataDeltaT, o.Tmax-o.Tmin)
	}
	if o.Steps < 1 {
		return chk.Err("cfg: steps must be at least 1 (got %d)", o.Steps)
	}
	if o.FilePrefix == "" {
		return chk.Err("cfg: file_prefix must not be empty")
	}
	if o.Direction != "forward" && o.Direction != "backward" {
		return chk.Err("cfg: direction must be \"forward\" or \"backward\" (got %q)", o.Direction)
	}
	if o.DataDir == "" || o.StepMapDir == "" || o.OutDir == "" {
		return chk.Err("cfg: data_dir, stepmap_dir and out_dir must all be set")
	}
	return nil
}
