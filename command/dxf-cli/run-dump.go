// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/dxfcodec/document"
	"github.com/bitmark-inc/dxfcodec/handle"
)

type dumpItem struct {
	Handle handle.Handle `json:"handle"`
	Type   string        `json:"type"`
	Owner  handle.Handle `json:"owner"`
}

type dumpReply struct {
	Version     string         `json:"version"`
	Stats       document.Stats `json:"stats"`
	Diagnostics []string       `json:"diagnostics"`
	Items       []dumpItem     `json:"items"`
}

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	d, collector, err := readDrawing(m, c.String("input"))
	if nil != err {
		return err
	}

	reply := dumpReply{
		Version:     d.Version.String(),
		Stats:       d.Stats(),
		Diagnostics: make([]string, 0, len(collector.Diagnostics)),
		Items:       make([]dumpItem, 0),
	}
	for _, diagnostic := range collector.Diagnostics {
		reply.Diagnostics = append(reply.Diagnostics, diagnostic.String())
	}
	for _, o := range d.Items() {
		reply.Items = append(reply.Items, dumpItem{
			Handle: o.Handle(),
			Type:   o.Descriptor().Name,
			Owner:  o.ItemBase().OwnerHandle(),
		})
	}

	return printJson(m.w, reply)
}
