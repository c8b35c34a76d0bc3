package container

import (
	"fmt"
	"strconv"
)

// Factory builds an instance from its resolved dependencies. deps holds one
// value per declared dependency, in declaration order. A factory never sees
// the container itself.
//
//	c.Singleton("multiplier", []string{"adder"}, func(deps ...any) (any, error) {
//	    return calculator.NewMultiplier(deps[0].(*calculator.Adder)), nil
//	})
type Factory func(deps ...any) (any, error)

// ArgumentTypeError is returned by the typed factory adapters when a resolved
// dependency does not match the constructor's parameter type.
type ArgumentTypeError struct {
	// Index is the position of the dependency in the declaration.
	Index int
	Want  string
	Got   string
}

func (e ArgumentTypeError) Error() string {
	return "container: dependency #" + strconv.Itoa(e.Index) + " is " + e.Got + ", want " + e.Want
}

// ArityError is returned by the typed factory adapters when the number of
// declared dependencies differs from the constructor's parameter count.
type ArityError struct {
	Want int
	Got  int
}

func (e ArityError) Error() string {
	return "container: factory takes " + strconv.Itoa(e.Want) + " dependencies, got " + strconv.Itoa(e.Got)
}

// Factory0 adapts a constructor without dependencies.
//
//	c.Singleton("adder", nil, container.Factory0(calculator.NewAdder))
func Factory0[T any](ctor func() T) Factory {
	return func(deps ...any) (any, error) {
		if len(deps) != 0 {
			return nil, ArityError{Want: 0, Got: len(deps)}
		}
		return ctor(), nil
	}
}

// Factory1 adapts a constructor taking one dependency.
//
//	c.Singleton("multiplier", []string{"adder"}, container.Factory1(calculator.NewMultiplier))
func Factory1[T, D1 any](ctor func(D1) T) Factory {
	return func(deps ...any) (any, error) {
		if len(deps) != 1 {
			return nil, ArityError{Want: 1, Got: len(deps)}
		}
		d1, err := arg[D1](deps, 0)
		if err != nil {
			return nil, err
		}
		return ctor(d1), nil
	}
}

// Factory2 adapts a constructor taking two dependencies.
func Factory2[T, D1, D2 any](ctor func(D1, D2) T) Factory {
	return func(deps ...any) (any, error) {
		if len(deps) != 2 {
			return nil, ArityError{Want: 2, Got: len(deps)}
		}
		d1, err := arg[D1](deps, 0)
		if err != nil {
			return nil, err
		}
		d2, err := arg[D2](deps, 1)
		if err != nil {
			return nil, err
		}
		return ctor(d1, d2), nil
	}
}

func arg[D any](deps []any, i int) (D, error) {
	d, ok := deps[i].(D)
	if !ok {
		var zero D
		return zero, ArgumentTypeError{Index: i, Want: fmt.Sprintf("%T", &zero)[1:], Got: fmt.Sprintf("%T", deps[i])}
	}
	return d, nil
}
