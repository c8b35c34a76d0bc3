package container

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicateDefinition is matched by DuplicateDefinitionError.
	ErrDuplicateDefinition = errors.New("container: duplicate definition")

	// ErrUnresolvedDependency is matched by UnresolvedDependencyError.
	ErrUnresolvedDependency = errors.New("container: unresolved dependency")

	// ErrCyclicDependency is matched by CyclicDependencyError.
	ErrCyclicDependency = errors.New("container: cyclic dependency")

	// ErrUnknownType is matched by UnknownTypeError.
	ErrUnknownType = errors.New("container: unknown type")

	// ErrAlreadyBuilt is returned when a definition is added after Build.
	ErrAlreadyBuilt = errors.New("container: already built")

	// ErrNilFactory is returned when a definition is registered without a
	// construction rule.
	ErrNilFactory = errors.New("container: nil factory")

	// ErrEmptyAbstract is returned when a definition or alias has no name.
	ErrEmptyAbstract = errors.New("container: empty abstract")
)

// DuplicateDefinitionError is returned when an abstract is registered twice.
type DuplicateDefinitionError struct{ Abstract string }

func (e DuplicateDefinitionError) Error() string {
	// Example: container: duplicate definition for [multiplier]
	return "container: duplicate definition for [" + e.Abstract + "]"
}

// Is reports whether target is ErrDuplicateDefinition.
func (e DuplicateDefinitionError) Is(target error) bool { return target == ErrDuplicateDefinition }

// UnresolvedDependencyError is returned when a definition declares a
// dependency that has no definition of its own.
type UnresolvedDependencyError struct {
	// Abstract is the definition declaring the dependency.
	Abstract string

	// Dependency is the missing abstract.
	Dependency string
}

func (e UnresolvedDependencyError) Error() string {
	// Example: container: [squarer] depends on unregistered [multiplier]
	return "container: [" + e.Abstract + "] depends on unregistered [" + e.Dependency + "]"
}

// Is reports whether target is ErrUnresolvedDependency.
func (e UnresolvedDependencyError) Is(target error) bool { return target == ErrUnresolvedDependency }

// CyclicDependencyError is returned when resolution revisits an abstract that
// is still being resolved. Chain starts and ends with the repeated abstract.
type CyclicDependencyError struct{ Chain []string }

func (e CyclicDependencyError) Error() string {
	// Example: container: cyclic dependency [a -> b -> a]
	return "container: cyclic dependency [" + strings.Join(e.Chain, " -> ") + "]"
}

// Is reports whether target is ErrCyclicDependency.
func (e CyclicDependencyError) Is(target error) bool { return target == ErrCyclicDependency }

// UnknownTypeError is returned when an abstract that was never registered is
// resolved.
type UnknownTypeError struct{ Abstract string }

func (e UnknownTypeError) Error() string {
	// Example: container: no definition registered for [divider]
	return "container: no definition registered for [" + e.Abstract + "]"
}

// Is reports whether target is ErrUnknownType.
func (e UnknownTypeError) Is(target error) bool { return target == ErrUnknownType }

// DependencyTypeError is returned when a resolved value does not have the Go
// type the consumer asked for.
type DependencyTypeError struct {
	Abstract string
	Want     string
	Got      string
}

func (e DependencyTypeError) Error() string {
	return "container: [" + e.Abstract + "] resolved to " + e.Got + ", want " + e.Want
}

// ConstructionError wraps an error returned by a definition's factory.
type ConstructionError struct {
	Abstract string
	Err      error
}

func (e *ConstructionError) Error() string {
	return "container: constructing [" + e.Abstract + "]: " + e.Err.Error()
}

func (e *ConstructionError) Unwrap() error { return e.Err }
