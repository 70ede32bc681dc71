// Copyright 2026 The pep-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package funcs provides the public API for function classes.
//
// A function class is any implementation of the Class interface: a
// rule turning recorded oracle samples into the pairwise interpolation
// constraints that characterize membership. Classes self-register
// under a name; problems declare functions from a class value or
// through the registry.
//
// Example:
//
//	problem := pep.New()
//	f := problem.DeclareFunction(funcs.ConvexQG{L: 1})
//	g, fx := f.Oracle(problem.SetInitialPoint())
package funcs

import (
	"github.com/pep-go/pep/internal/funcs"
)

// Function owns the append-only oracle log of one declared function.
type Function = funcs.Function

// Class is the interpolation-constraint capability a function class
// implements.
type Class = funcs.Class

// Triple is one recorded (location, subgradient, value) oracle sample.
type Triple = funcs.Triple

// ConvexQG is the class of convex functions with quadratic-growth
// upper bound L.
type ConvexQG = funcs.ConvexQG

// Convex is the class of closed convex functions.
type Convex = funcs.Convex

// Option configures a Function at declaration time.
type Option = funcs.Option

// Factory builds a Class from named parameters.
type Factory = funcs.Factory

// WithReuseGradient makes repeated oracle queries at a known point
// return the stored subgradient instead of a fresh one.
func WithReuseGradient() Option {
	return funcs.WithReuseGradient()
}

// Register adds a class factory to the registry.
func Register(name string, factory Factory) {
	funcs.Register(name, factory)
}

// New builds a registered class by name.
func New(name string, params map[string]float64) (Class, error) {
	return funcs.New(name, params)
}

// Classes returns the registered class names, sorted.
func Classes() []string {
	return funcs.Classes()
}
