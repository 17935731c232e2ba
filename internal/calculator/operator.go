package calculator

import (
	"math"
	"strconv"
)

// Operator is one of the four binary operations offered by the keypad
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return "?"
	}
}

// Apply evaluates lhs op rhs. Division by zero yields 0.
func (o Operator) Apply(lhs, rhs float64) float64 {
	return Apply(o, lhs, rhs)
}

// Apply evaluates op on both operands. Unknown operators return rhs.
func Apply(op Operator, lhs, rhs float64) float64 {
	switch op {
	case Add:
		return lhs + rhs
	case Subtract:
		return lhs - rhs
	case Multiply:
		return lhs * rhs
	case Divide:
		if rhs == 0 {
			return 0
		}
		return lhs / rhs
	default:
		return rhs
	}
}

// Format renders a value for the readout: integral values without a decimal
// point, everything else in shortest %g form.
func Format(value float64) string {
	if value == 0 {
		return "0"
	}
	if _, frac := math.Modf(value); frac == 0 && !math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}
