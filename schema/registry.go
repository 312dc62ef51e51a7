// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/dxfcodec/fault"
)

// Registry - tag and name lookup of type descriptors
//
// populated during package initialisation, read only once sealed
type Registry struct {
	sync.RWMutex
	byTag  map[string]*Type
	byName map[string]*Type
	sealed bool
}

// Default - the registry the descriptor packages register into
var Default = NewRegistry()

// NewRegistry - an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byTag:  make(map[string]*Type),
		byName: make(map[string]*Type),
	}
}

// Register - add a type to the default registry, panics on conflict
func Register(t *Type) *Type {
	fault.PanicIfError("register: "+t.Name, Default.Register(t))
	return t
}

// Register - add a type and its tags
//
// types without tags are only reachable by name, e.g. subtypes
// selected by redispatch
func (r *Registry) Register(t *Type) error {
	r.Lock()
	defer r.Unlock()

	if r.sealed {
		return fault.ErrRegistrySealed
	}
	if _, ok := r.byName[t.Name]; ok {
		return fault.ErrDuplicateTypeName
	}
	for _, tag := range t.Tags {
		if _, ok := r.byTag[tag]; ok {
			return fault.ErrDuplicateTag
		}
	}

	t.prepare()

	r.byName[t.Name] = t
	for _, tag := range t.Tags {
		r.byTag[tag] = t
	}
	return nil
}

// Alias - an additional dispatch tag for a registered type
func (r *Registry) Alias(tag string, name string) error {
	r.Lock()
	defer r.Unlock()

	if r.sealed {
		return fault.ErrRegistrySealed
	}
	t, ok := r.byName[name]
	if !ok {
		return fault.ErrDescriptorNotFound
	}
	if _, ok := r.byTag[tag]; ok {
		return fault.ErrDuplicateTag
	}
	r.byTag[tag] = t
	return nil
}

// Seal - reject further registration
func (r *Registry) Seal() {
	r.Lock()
	r.sealed = true
	r.Unlock()
}

// IsSealed - true once sealed
func (r *Registry) IsSealed() bool {
	r.RLock()
	defer r.RUnlock()
	return r.sealed
}

// ForTag - the concrete type dispatched by a tag
func (r *Registry) ForTag(tag string) (*Type, bool) {
	r.RLock()
	t, ok := r.byTag[tag]
	r.RUnlock()
	return t, ok
}

// Lookup - a type by name
func (r *Registry) Lookup(name string) (*Type, error) {
	r.RLock()
	t, ok := r.byName[name]
	r.RUnlock()
	if !ok {
		return nil, fault.ErrDescriptorNotFound
	}
	return t, nil
}

// Tags - every dispatch tag, sorted
func (r *Registry) Tags() []string {
	r.RLock()
	tags := make([]string, 0, len(r.byTag))
	for tag := range r.byTag {
		tags = append(tags, tag)
	}
	r.RUnlock()
	sort.Strings(tags)
	return tags
}

// Types - every registered type, sorted by name
func (r *Registry) Types() []*Type {
	r.RLock()
	types := make([]*Type, 0, len(r.byName))
	for _, t := range r.byName {
		types = append(types, t)
	}
	r.RUnlock()
	sort.Slice(types, func(i, j int) bool {
		return types[i].Name < types[j].Name
	})
	return types
}
