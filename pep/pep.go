// Copyright 2026 The pep-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pep provides the public API for building and solving
// performance-estimation problems.
//
// A performance-estimation problem (PEP) computes the exact worst-case
// guarantee of an iterative first-order method over a declared
// function class, by compiling the class's interpolation conditions
// into a semidefinite program.
//
// Example:
//
//	problem := pep.New()
//	f := problem.DeclareFunction(funcs.ConvexQG{L: 1})
//
//	xs := f.StationaryPoint()
//	fs := f.Value(xs)
//	x0 := problem.SetInitialPoint()
//	problem.SetInitialCondition(x0.Sub(xs).NormSq().LessEqualConst(1))
//
//	g0, _ := f.Oracle(x0)
//	x1 := x0.Sub(g0.Scale(0.5))
//	problem.SetPerformanceMetric(f.Value(x1).Sub(fs))
//
//	tau, err := problem.Solve(pep.Quiet)
package pep

import (
	"github.com/pep-go/pep/internal/algebra"
	"github.com/pep-go/pep/internal/pep"
)

// Problem is one performance-estimation instance: declared functions,
// initial conditions, performance metrics and the solve entry point.
type Problem = pep.Problem

// Point is an abstract vector: a linear combination of leaf basis
// vectors (iterates, subgradients).
type Point = algebra.Point

// Expression is an abstract scalar: an affine combination of function
// values and inner products of Points.
type Expression = algebra.Expression

// Constraint is a scalar inequality or equality between Expressions.
type Constraint = algebra.Constraint

// Verbosity levels for Problem.Solve.
const (
	Silent = pep.Silent // no output at all
	Quiet  = pep.Quiet  // caller-level output only
	Info   = pep.Info   // harness setup and status lines
	Debug  = pep.Debug  // solver iteration progress
)

// New returns an empty problem.
func New() *Problem {
	return pep.New()
}

// Const returns the constant expression c.
func Const(c float64) *Expression {
	return algebra.Const(c)
}
