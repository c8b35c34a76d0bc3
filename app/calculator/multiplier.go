package calculator

import (
	"errors"
	"math"
	"strconv"
)

// MaxRepetitions bounds the count operand of Multiply.
const MaxRepetitions = 1 << 24

// ErrInvalidOperand is matched by InvalidOperandError.
var ErrInvalidOperand = errors.New("calculator: invalid operand")

// InvalidOperandError is returned by Multiply when the count operand is not a
// finite integer within ±MaxRepetitions.
type InvalidOperandError struct {
	Operand float64
	Reason  string
}

func (e InvalidOperandError) Error() string {
	return "calculator: invalid operand " + strconv.FormatFloat(e.Operand, 'g', -1, 64) + ": " + e.Reason
}

// Is reports whether target is ErrInvalidOperand.
func (e InvalidOperandError) Is(target error) bool { return target == ErrInvalidOperand }

// Multiplier multiplies by repeated addition.
type Multiplier struct {
	adder *Adder
}

// NewMultiplier returns a Multiplier that adds with adder.
func NewMultiplier(adder *Adder) *Multiplier {
	return &Multiplier{adder: adder}
}

// Adder returns the injected Adder.
func (m *Multiplier) Adder() *Adder { return m.adder }

// Multiply returns a*b, computed by adding a to an accumulator |b| times.
// A negative b adds -a instead. b must be an integer no larger than
// MaxRepetitions in magnitude.
func (m *Multiplier) Multiply(a, b float64) (float64, error) {
	if err := checkCount(b); err != nil {
		return 0, err
	}

	step, n := a, int64(b)
	if n < 0 {
		step, n = -a, -n
	}

	var result float64
	for i := int64(0); i < n; i++ {
		result = m.adder.Add(result, step)
	}
	return result, nil
}

func checkCount(b float64) error {
	switch {
	case math.IsNaN(b) || math.IsInf(b, 0):
		return InvalidOperandError{Operand: b, Reason: "not finite"}
	case b != math.Trunc(b):
		return InvalidOperandError{Operand: b, Reason: "not an integer"}
	case math.Abs(b) > MaxRepetitions:
		return InvalidOperandError{Operand: b, Reason: "exceeds " + strconv.Itoa(MaxRepetitions) + " repetitions"}
	}
	return nil
}
