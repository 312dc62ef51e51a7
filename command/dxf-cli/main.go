// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	store   string
	verbose bool
	r       io.Reader
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(r io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "dxf-cli"
	app.Usage = "inspect and convert DXF drawings"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	versionFlag := cli.StringFlag{
		Name:  "target, t",
		Value: "R2018",
		Usage: " write at drawing `VERSION` [R12…R2018 or AC1009…AC1032]",
	}
	inputFlag := cli.StringFlag{
		Name:  "input, i",
		Value: "-",
		Usage: " read drawing from `FILE` [- = stdin]",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "store, s",
			Value: "",
			Usage: " item database `DIRECTORY`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "convert",
			Usage:     "read a drawing and write it at another version",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				inputFlag,
				cli.StringFlag{
					Name:  "output, o",
					Value: "-",
					Usage: " write drawing to `FILE` [- = stdout]",
				},
				versionFlag,
				cli.BoolFlag{
					Name:  "no-handles, n",
					Usage: " do not write item handles",
				},
			},
			Action: runConvert,
		},
		{
			Name:      "dump",
			Usage:     "list the items of a drawing as JSON",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				inputFlag,
			},
			Action: runDump,
		},
		{
			Name:      "digest",
			Usage:     "digest of every item and the drawing root",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				inputFlag,
				versionFlag,
			},
			Action: runDigest,
		},
		{
			Name:      "index",
			Usage:     "store the items of a drawing in the item database",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				inputFlag,
				versionFlag,
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*drawing `NAME`",
				},
			},
			Action: runIndex,
		},
		{
			Name:      "show",
			Usage:     "show stored drawings, handles or item pairs",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: " drawing `NAME` [list drawings if omitted]",
				},
				cli.StringFlag{
					Name:  "handle, H",
					Value: "",
					Usage: " item `HANDLE` in hex [list handles if omitted]",
				},
			},
			Action: runShow,
		},
		{
			Name:      "version",
			Usage:     "display dxf-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			store:   c.GlobalString("store"),
			verbose: c.GlobalBool("verbose"),
			r:       r,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
