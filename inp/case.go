// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of batches of calculations (cases) from JSON, YAML or TOML files
package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lpozo/lubricalc/calc"
	"github.com/lpozo/lubricalc/out"
	"gopkg.in/yaml.v3"
)

// Case holds the data of one calculation
type Case struct {

	// input
	Name       string            `json:"name" yaml:"name" toml:"name" validate:"required"`                     // name of case
	Calculator string            `json:"calculator" yaml:"calculator" toml:"calculator" validate:"calculator"` // name of calculator; e.g. "viscosity-index"
	Extra      string            `json:"extra" yaml:"extra" toml:"extra"`                                      // extra information about this case
	Inputs     map[string]string `json:"inputs" yaml:"inputs" toml:"inputs" validate:"required"`               // inputs as text; e.g. {"v40": "22.83"}

	// derived
	Calc calc.Calculator `json:"-" yaml:"-" toml:"-"` // allocated calculator
}

// Outcome holds the results of one case
type Outcome struct {
	Case    *Case       // case
	Results out.Results // results; nil if Err != nil
	Err     error       // calculation error
}

// CaseDb implements a database of cases
type CaseDb struct {
	Cases []*Case `json:"cases" yaml:"cases" toml:"cases" validate:"required,dive"` // all cases
}

// ReadCases reads all cases from a file. The format follows the extension: ".json", ".yaml", ".yml" or ".toml"
func ReadCases(dir, fn string) (cdb *CaseDb, err error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	cdb, err = DecodeCases(b, filepath.Ext(fn))
	if err != nil {
		return nil, chk.Err("cannot read cases file %q:\n%v", fn, err)
	}
	return
}

// DecodeCases decodes cases given in the format indicated by ext; e.g. ".json"
func DecodeCases(b []byte, ext string) (cdb *CaseDb, err error) {

	// decode
	cdb = new(CaseDb)
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(b, cdb)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cdb)
	case ".toml":
		err = toml.Unmarshal(b, cdb)
	default:
		return nil, chk.Err("format %q is incorrect; options are \".json\", \".yaml\", \".yml\" and \".toml\"", ext)
	}
	if err != nil {
		return nil, err
	}

	// check
	if err = validate.check(cdb); err != nil {
		return nil, err
	}
	names := make(map[string]bool)
	for _, c := range cdb.Cases {
		if names[c.Name] {
			return nil, chk.Err("case named %q is duplicated", c.Name)
		}
		names[c.Name] = true
	}

	// alloc
	for _, c := range cdb.Cases {
		c.Calc, err = calc.New(c.Calculator)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Get returns the case with given name or nil if not found
func (o *CaseDb) Get(name string) *Case {
	for _, c := range o.Cases {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Run runs all cases in order. Failing cases do not stop the others
func (o *CaseDb) Run() (res []*Outcome) {
	for _, c := range o.Cases {
		r, err := c.Calc.Calculate(c.Inputs)
		res = append(res, &Outcome{c, r, err})
		if io.Verbose {
			if err != nil {
				io.PfRed("%-20s: %v\n", c.Name, err)
				continue
			}
			io.Pfgreen("%-20s: %s\n", c.Name, strings.Replace(r.String(), "\n", "; ", -1))
		}
	}
	return
}

// Failed returns the outcomes with errors
func Failed(res []*Outcome) (failed []*Outcome) {
	for _, o := range res {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return
}
