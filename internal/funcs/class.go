package funcs

import (
	"fmt"
	"sort"

	"github.com/pep-go/pep/internal/algebra"
)

// Class is a function class: any implementation that can express
// membership as a finite set of pairwise interpolation constraints
// over recorded oracle samples.
//
// InterpolationConstraints receives the full sample log and the
// stationary sub-list. It must be pure: no state, no validation that
// stationary ⊆ points (a caller precondition), output fully determined
// by its inputs.
type Class interface {
	// Name identifies the class in the registry.
	Name() string

	// InterpolationConstraints emits the inequalities any function of
	// the class interpolating the samples must satisfy.
	InterpolationConstraints(points, stationary []Triple) []*algebra.Constraint
}

// Factory builds a Class from named parameters.
type Factory func(params map[string]float64) (Class, error)

var registry = map[string]Factory{}

// Register adds a class factory under the given name. Registering the
// same name twice panics; classes are registered from init functions.
func Register(name string, factory Factory) {
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("funcs: class %q already registered", name))
	}
	registry[name] = factory
}

// New builds a registered class by name.
func New(name string, params map[string]float64) (Class, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("funcs: unknown function class %q", name)
	}
	return factory(params)
}

// Classes returns the registered class names, sorted.
func Classes() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
