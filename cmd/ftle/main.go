// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/george9932/LCS-FTLE-Optimized/cfg"
	"github.com/george9932/LCS-FTLE-Optimized/sim"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// message
	io.PfWhite("\nLCS-FTLE -- unidirectional flow-map composition\n\n")

	// configuration filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("please provide a configuration filename. Ex.: run.json")
	}

	// profiling?
	defer utl.DoProf(false)()

	// read configuration
	c, err := cfg.Read(fnamepath)
	if err != nil {
		chk.Panic("cannot read configuration: %v", err)
	}

	// create output directories
	for _, d := range []string{c.StepMapDir, c.OutDir} {
		if err := os.MkdirAll(d, 0777); err != nil {
			chk.Panic("cannot create directory %q: %v", d, err)
		}
	}

	// run
	o := sim.NewOrchestrator(c, true)
	if err := o.Run(); err != nil {
		os.Exit(1)
	}
}
