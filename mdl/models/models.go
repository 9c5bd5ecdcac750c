// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package models implements a database of lubrication models initialised by parameters
package models

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/lpozo/lubricalc/mdl/bearing"
	"github.com/lpozo/lubricalc/mdl/blend"
	"github.com/lpozo/lubricalc/mdl/mixture"
	"github.com/lpozo/lubricalc/mdl/reynolds"
	"github.com/lpozo/lubricalc/mdl/viscosity"
)

// Model defines lubrication models
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
}

// New allocates a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'models' database", name)
	}
	return allocator(), nil
}

// Names returns the sorted names of available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{
	"reynolds":  func() Model { return new(reynolds.Model) },
	"viscosity": func() Model { return new(viscosity.Model) },
	"mixture":   func() Model { return new(mixture.Model) },
	"blend":     func() Model { return new(blend.Blend) },
	"bearing":   func() Model { return new(bearing.Bearing) },
}
