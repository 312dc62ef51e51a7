// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/dxfcodec/digest"
	"github.com/bitmark-inc/dxfcodec/document"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
)

type digestReply struct {
	Version dxfversion.Version    `json:"version"`
	Root    digest.Digest         `json:"root"`
	Items   []document.ItemDigest `json:"items"`
}

func runDigest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := parseVersion(c.String("target"))
	if nil != err {
		return err
	}

	d, _, err := readDrawing(m, c.String("input"))
	if nil != err {
		return err
	}

	root, items := d.Digests(target, nil)
	return printJson(m.w, digestReply{
		Version: target,
		Root:    root,
		Items:   items,
	})
}
