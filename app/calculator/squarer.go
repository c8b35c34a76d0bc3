package calculator

// Squarer squares numbers with a Multiplier.
type Squarer struct {
	multiplier *Multiplier
}

// NewSquarer returns a Squarer that multiplies with multiplier.
func NewSquarer(multiplier *Multiplier) *Squarer {
	return &Squarer{multiplier: multiplier}
}

// Multiplier returns the injected Multiplier.
func (s *Squarer) Multiplier() *Multiplier { return s.multiplier }

// Square returns x*x. It fails for the same operands Multiply does.
func (s *Squarer) Square(x float64) (float64, error) {
	return s.multiplier.Multiply(x, x)
}
