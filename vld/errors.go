// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vld

import "github.com/cpmech/gosl/io"

// Kind classifies validation and calculation failures
type Kind int

// kinds of failures
const (
	InvalidNumber     Kind = iota + 1 // text is not a valid decimal number
	InfiniteValue                     // value is +∞ or -∞
	Concept                           // value violates its physical meaning
	TooLowViscosity                   // viscosity below the 2 cSt floor of the ASTM tables
	InvertedViscosity                 // viscosity at 40°C lower than viscosity at 100°C
	Interval                          // value outside a required open interval
	Lookup                            // unknown key, name or option index
	NoConvergence                     // search ran out of range
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case InvalidNumber:
		return "invalid number"
	case InfiniteValue:
		return "infinite value"
	case Concept:
		return "concept error"
	case TooLowViscosity:
		return "too low viscosity"
	case InvertedViscosity:
		return "inverted viscosity"
	case Interval:
		return "interval error"
	case Lookup:
		return "lookup error"
	case NoConvergence:
		return "no convergence"
	}
	return io.Sf("kind(%d)", int(k))
}

// Error holds a failure concerning a named quantity
type Error struct {
	Kind Kind   // classification
	Name string // name of quantity; e.g. "Outer Diameter"
	Msg  string // human-readable description
}

// sentinels to be used with errors.Is
var (
	ErrInvalidNumber     = &Error{Kind: InvalidNumber}
	ErrInfiniteValue     = &Error{Kind: InfiniteValue}
	ErrConcept           = &Error{Kind: Concept}
	ErrTooLowViscosity   = &Error{Kind: TooLowViscosity}
	ErrInvertedViscosity = &Error{Kind: InvertedViscosity}
	ErrInterval          = &Error{Kind: Interval}
	ErrLookup            = &Error{Kind: Lookup}
	ErrNoConvergence     = &Error{Kind: NoConvergence}
)

// Errorf returns a new error of given kind
func Errorf(kind Kind, name, msg string, prm ...interface{}) *Error {
	return &Error{Kind: kind, Name: name, Msg: io.Sf(msg, prm...)}
}

// Error implements the error interface
func (o *Error) Error() string {
	if o.Name == "" {
		return o.Msg
	}
	return o.Name + ": " + o.Msg
}

// Is reports whether target is a sentinel of the same kind.
// Viscosity and interval failures are also concept errors.
func (o *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == o.Kind {
		return true
	}
	if t.Kind == Concept {
		switch o.Kind {
		case TooLowViscosity, InvertedViscosity, Interval:
			return true
		}
	}
	return false
}
