// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/dxfcodec/background"
	"github.com/bitmark-inc/dxfcodec/configuration"
	"github.com/bitmark-inc/dxfcodec/itemstore"
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
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--watch] --config-file=FILE [input-files...]", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := configuration.GetConversion(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// extra inputs from the command line
	for _, a := range arguments {
		masterConfiguration.Inputs = append(masterConfiguration.Inputs, configuration.EnsureAbsolute(".", a))
	}

	// start logging
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	if 0 == len(masterConfiguration.Inputs) {
		log.Critical("no input files")
		exitwithstatus.Message("%s: no input files", program)
	}

	c := &converter{
		version:     masterConfiguration.TargetVersion,
		emitHandles: masterConfiguration.EmitHandles,
		workers:     masterConfiguration.Workers,
		output:      masterConfiguration.OutputDirectory,
		log:         logger.New(converterLoggerPrefix),
	}

	if masterConfiguration.Store.Enabled {
		store, err := itemstore.Open(masterConfiguration.Store.Name, itemstore.ReadWrite, logger.New("itemstore"))
		if nil != err {
			log.Criticalf("item store: %q  error: %s", masterConfiguration.Store.Name, err)
			exitwithstatus.Message("%s: item store: %q  error: %s", program, masterConfiguration.Store.Name, err)
		}
		defer store.Close()
		c.store = store
	}

	// initial conversion of everything
	failures := c.convertAll(context.Background(), masterConfiguration.Inputs)
	if 0 == len(options["quiet"]) {
		fmt.Printf("converted: %d of %d files to %s\n", len(masterConfiguration.Inputs)-failures, len(masterConfiguration.Inputs), c.version)
	}

	if 0 == len(options["watch"]) {
		if 0 != failures {
			exitwithstatus.Exit(1)
		}
		return
	}

	watcher, err := newFileWatcher(masterConfiguration.Inputs, logger.New(watcherLoggerPrefix))
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}

	// list of background processes to start
	processes := background.Processes{
		watcher,
		&reconverter{
			c:       c,
			changes: watcher.Changes(),
			settle:  defaultSettleTime,
			limiter: rate.NewLimiter(reconvertRate, reconvertBurst),
			log:     logger.New("reconvert"),
		},
	}
	p := background.Start(processes, nil)
	defer p.Stop()

	// wait for CTRL-C before shutting down
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nWaiting for changes, CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM) to stop…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}
}
