// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/itemstore"
	"github.com/bitmark-inc/dxfcodec/pairio"
)

type handlesReply struct {
	Record  itemstore.Record `json:"record"`
	Handles []handle.Handle  `json:"handles"`
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	store, err := openStore(m, itemstore.ReadOnly)
	if nil != err {
		return err
	}
	defer store.Close()

	name := c.String("name")
	if "" == name {
		records, err := store.Drawings()
		if nil != err {
			return err
		}
		return printJson(m.w, records)
	}

	record, found, err := store.Drawing(name)
	if nil != err {
		return err
	}
	if !found {
		return fault.ErrDrawingNotFound
	}

	if "" == c.String("handle") {
		handles, err := store.Handles(name)
		if nil != err {
			return err
		}
		return printJson(m.w, handlesReply{
			Record:  record,
			Handles: handles,
		})
	}

	h, err := handle.Parse(c.String("handle"))
	if nil != err {
		return err
	}
	pairs, err := store.Pairs(name, h)
	if nil != err {
		return err
	}
	return pairio.WriteAll(m.w, pairs)
}
