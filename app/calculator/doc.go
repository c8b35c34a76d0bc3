// Package calculator holds the arithmetic components wired by the
// container: an Adder, a Multiplier built on the Adder, and a Squarer built
// on the Multiplier.
//
// Components never reach back into the container. Their dependencies are
// handed to their constructors and never reassigned.
package calculator

// Abstracts the components are registered under.
const (
	AdderKey      = "adder"
	MultiplierKey = "multiplier"
	SquarerKey    = "squarer"
)
