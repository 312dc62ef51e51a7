// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dxfcodec/dxfversion"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory   = "" // this will error; use "." for the same directory as the config file
	defaultOutputDirectory = "output"
	defaultVersion         = "R2018"

	defaultStoreDirectory = "data"
	defaultStoreName      = "items.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "dxfconv.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// StoreType - optional item database
type StoreType struct {
	Enabled   bool   `gluamapper:"enabled" json:"enabled"`
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Conversion - the batch converter configuration
type Conversion struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile         string               `gluamapper:"pidfile" json:"pidfile"`
	Inputs          []string             `gluamapper:"inputs" json:"inputs"`
	OutputDirectory string               `gluamapper:"output_directory" json:"output_directory"`
	Version         string               `gluamapper:"version" json:"version"`
	EmitHandles     bool                 `gluamapper:"emit_handles" json:"emit_handles"`
	Workers         int                  `gluamapper:"workers" json:"workers"`
	Store           StoreType            `gluamapper:"store" json:"store"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`

	// set from Version after parsing
	TargetVersion dxfversion.Version `gluamapper:"-" json:"-"`
}

// GetConversion - read, decode and verify the converter configuration
func GetConversion(configurationFileName string) (*Conversion, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Conversion{
		DataDirectory:   defaultDataDirectory,
		PidFile:         "", // no PidFile by default
		OutputDirectory: defaultOutputDirectory,
		Version:         defaultVersion,
		EmitHandles:     true,
		Workers:         runtime.NumCPU(),

		Store: StoreType{
			Enabled:   false,
			Directory: defaultStoreDirectory,
			Name:      defaultStoreName,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.TargetVersion, err = dxfversion.Parse(options.Version)
	if nil != err {
		return nil, fmt.Errorf("Version: %q: %s", options.Version, err)
	}

	if options.Workers < 1 {
		options.Workers = 1
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.OutputDirectory,
		&options.Store.Directory,
		&options.Logging.Directory,
	}
	if "" != options.PidFile {
		mustBeAbsolute = append(mustBeAbsolute, &options.PidFile)
	}
	for i := range options.Inputs {
		mustBeAbsolute = append(mustBeAbsolute, &options.Inputs[i])
	}
	for _, f := range mustBeAbsolute {
		*f = EnsureAbsolute(options.DataDirectory, *f)
	}

	// fail if any of these are not simple file names i.e. must not contain path seperator
	// then add the correct directory prefix, file item is first and corresponding directory is second
	mustNotBePaths := [][2]*string{
		{&options.Store.Name, &options.Store.Directory},
		{&options.Logging.File, &options.Logging.Directory},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			*f[0] = EnsureAbsolute(*f[1], *f[0])
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	directories := []string{options.OutputDirectory, options.Logging.Directory}
	if options.Store.Enabled {
		directories = append(directories, options.Store.Directory)
	}
	for _, d := range directories {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// EnsureAbsolute - join a relative path onto a directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
