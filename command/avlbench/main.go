// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/benchmark"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "order", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "compare", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'C'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s\n%s", program, err, usage(program))
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("%s", usage(program))
	}

	theConfiguration, err := getConfiguration(options, arguments)
	if nil != err {
		exitwithstatus.Message("%s: error: %s\n%s", program, err, usage(program))
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %+v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	reporter := benchmark.NewTextReporter(os.Stdout)

	_, err = benchmark.Run(&theConfiguration.Benchmark, reporter, logger.New("benchmark"))
	if nil != err {
		log.Criticalf("benchmark error: %s", err)
		exitwithstatus.Message("%s: benchmark error: %s", program, err)
	}

	if len(theConfiguration.Benchmark.Baselines) > 0 {
		err = benchmark.Compare(&theConfiguration.Benchmark, reporter, logger.New("compare"))
		if nil != err {
			log.Criticalf("compare error: %s", err)
			exitwithstatus.Message("%s: compare error: %s", program, err)
		}
	}
}

func usage(program string) string {
	return "usage: " + program + " [--help] [--version] [--verbose] [--check]" +
		" [--order=ascending|descending|random] [--seed=N] [--compare=NAME|all]..." +
		" [--config-file=FILE] height"
}
