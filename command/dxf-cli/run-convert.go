// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/dxfcodec/pairio"
)

func runConvert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := parseVersion(c.String("target"))
	if nil != err {
		return err
	}

	d, _, err := readDrawing(m, c.String("input"))
	if nil != err {
		return err
	}

	out := d.Write(target, !c.Bool("no-handles"), nil)

	w, closer, err := createOutput(m, c.String("output"))
	if nil != err {
		return err
	}
	err = pairio.WriteAll(w, out)
	if closeErr := closer(); nil == err {
		err = closeErr
	}
	if nil != err {
		return err
	}

	if m.verbose {
		stats := d.Stats()
		fmt.Fprintf(m.e, "written: %d pairs at %s  unwritten items: %d\n", len(out), target, stats.Unwritten)
	}
	return nil
}
