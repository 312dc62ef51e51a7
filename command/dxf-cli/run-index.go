// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/dxfcodec/itemstore"
)

type indexReply struct {
	Record  itemstore.Record `json:"record"`
	Skipped int              `json:"skipped"`
}

func runIndex(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("drawing name is required")
	}

	target, err := parseVersion(c.String("target"))
	if nil != err {
		return err
	}

	d, _, err := readDrawing(m, c.String("input"))
	if nil != err {
		return err
	}

	store, err := openStore(m, itemstore.ReadWrite)
	if nil != err {
		return err
	}
	defer store.Close()

	record, skipped, err := store.PutDrawing(name, target, d.Items())
	if nil != err {
		return err
	}
	return printJson(m.w, indexReply{
		Record:  record,
		Skipped: skipped,
	})
}
