// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bitflag - boolean views over the bits of integer fields,
// named by the flags a type descriptor declares
package bitflag

import (
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// resolve a flag name to its mask and integer storage
func lookup(o schema.Object, name string) (schema.IntegerAccessor, int64, error) {
	t := o.Descriptor()
	flag, err := t.Flag(name)
	if nil != err {
		return nil, 0, err
	}
	f, err := t.Field(flag.Field)
	if nil != err {
		return nil, 0, err
	}
	access, ok := f.Access.(schema.IntegerAccessor)
	if !ok {
		return nil, 0, fault.ErrNotScalarField
	}
	return access, flag.Mask, nil
}

// Get - true if every bit of the flag's mask is set
func Get(o schema.Object, name string) (bool, error) {
	access, mask, err := lookup(o, name)
	if nil != err {
		return false, err
	}
	return mask == access.Int(o)&mask, nil
}

// Set - set or clear the flag's bits, leaving all other bits alone
func Set(o schema.Object, name string, value bool) error {
	access, mask, err := lookup(o, name)
	if nil != err {
		return err
	}
	v := access.Int(o)
	if value {
		v |= mask
	} else {
		v &^= mask
	}
	access.SetInt(o, v)
	return nil
}

// MustGet - Get for flags known to exist
func MustGet(o schema.Object, name string) bool {
	b, err := Get(o, name)
	fault.PanicIfError("bitflag get: "+name, err)
	return b
}

// MustSet - Set for flags known to exist
func MustSet(o schema.Object, name string, value bool) {
	fault.PanicIfError("bitflag set: "+name, Set(o, name, value))
}

// All - the state of every flag of an object, keyed by name
func All(o schema.Object) map[string]bool {
	names := o.Descriptor().FlagNames()
	flags := make(map[string]bool, len(names))
	for _, name := range names {
		if b, err := Get(o, name); nil == err {
			flags[name] = b
		}
	}
	return flags
}
