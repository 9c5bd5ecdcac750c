// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/go-playground/validator/v10"
	"github.com/lpozo/lubricalc/calc"
)

// rule registers one custom validation
type rule func(v *validator.Validate)

// checker wraps the struct validator and its custom rules
type checker struct {
	v *validator.Validate
}

// validate checks case databases
var validate = newChecker(calculatorRule)

func newChecker(rules ...rule) *checker {
	o := &checker{v: validator.New()}
	for _, r := range rules {
		r(o.v)
	}
	return o
}

// calculatorRule checks that names of calculators are available
func calculatorRule(v *validator.Validate) {
	v.RegisterValidation("calculator", func(fl validator.FieldLevel) bool {
		name, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		for _, n := range calc.Names() {
			if n == name {
				return true
			}
		}
		return false
	})
}

// check validates the database and converts the failures into one message
func (o *checker) check(cdb *CaseDb) error {
	err := o.v.Struct(cdb)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "calculator":
			msgs[i] = io.Sf("%s: calculator %q is not available; options are %q", fe.Namespace(), fe.Value(), calc.Names())
		default:
			msgs[i] = io.Sf("%s: failed on %q rule", fe.Namespace(), fe.Tag())
		}
	}
	return chk.Err("invalid cases:\n%s", strings.Join(msgs, "\n"))
}
