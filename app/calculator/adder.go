package calculator

// Adder adds numbers.
type Adder struct{}

// NewAdder returns an Adder.
func NewAdder() *Adder { return &Adder{} }

// Add returns a + b.
func (*Adder) Add(a, b float64) float64 {
	return a + b
}
