// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/baseline"
	"github.com/bitmark-inc/avltree/benchmark"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults, log directory is relative to the configuration
// file if one is given
const (
	defaultLogFile  = "avlbench.log"
	defaultLogCount = 10          //  number of log files retained
	defaultLogSize  = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultLogLevel = "info"

	// compare against every baseline
	compareAll = "all"
)

// Configuration - everything for one invocation
type Configuration struct {
	Benchmark benchmark.Configuration `gluamapper:"benchmark" json:"benchmark"`
	Logging   logger.Configuration    `gluamapper:"logging" json:"logging"`
}

// combine defaults, optional configuration file and command-line
// options, the command-line has the final say
func getConfiguration(options map[string][]string, arguments []string) (*Configuration, error) {

	if 1 != len(arguments) {
		return nil, fault.ErrInvalidArgumentCount
	}

	conf := &Configuration{
		Benchmark: benchmark.Configuration{
			Order: benchmark.Ascending,
			Seed:  time.Now().UnixNano(),
		},
		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: defaultLogLevel,
			},
		},
	}

	switch n := len(options["config-file"]); n {
	case 0:
	case 1:
		if err := readConfigurationFile(options["config-file"][0], arguments[0], conf); nil != err {
			return nil, err
		}
	default:
		return nil, errors.New(fmt.Sprintf("only one config-file option is allowed, %d were detected", n))
	}

	count, err := strconv.Atoi(arguments[0])
	if nil != err || count < 0 {
		return nil, fault.ErrInvalidCount
	}
	conf.Benchmark.Count = count

	if len(options["verbose"]) > 0 {
		conf.Benchmark.Verbose = true
	}
	if len(options["check"]) > 0 {
		conf.Benchmark.Check = true
	}
	if n := len(options["order"]); n > 0 {
		conf.Benchmark.Order = options["order"][n-1]
	}
	if n := len(options["seed"]); n > 0 {
		seed, err := strconv.ParseInt(options["seed"][n-1], 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidSeed
		}
		conf.Benchmark.Seed = seed
	}
	for _, name := range options["compare"] {
		if compareAll == name {
			conf.Benchmark.Baselines = baseline.Names()
			break
		}
		conf.Benchmark.Baselines = append(conf.Benchmark.Baselines, name)
	}

	if err := conf.Benchmark.Validate(); nil != err {
		return nil, err
	}

	// done
	return conf, nil
}

// the height argument is visible to the script as the global "height"
func readConfigurationFile(fileName string, height string, options *Configuration) error {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return err
	}

	variables := map[string]string{
		"height": height,
	}
	if err := configuration.ParseConfigurationFile(fileName, variables, options); nil != err {
		return err
	}

	// relative log directory is beside the configuration file
	if !filepath.IsAbs(options.Logging.Directory) {
		directory, _ := filepath.Split(fileName)
		options.Logging.Directory = filepath.Join(directory, options.Logging.Directory)
	}
	options.Logging.Directory = filepath.Clean(options.Logging.Directory)

	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return errors.New(fmt.Sprintf("Files: %q is not plain name", options.Logging.File))
	}

	return os.MkdirAll(options.Logging.Directory, 0700)
}
