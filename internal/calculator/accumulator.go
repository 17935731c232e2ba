package calculator

import (
	"math"
	"strconv"
)

const initialDisplay = "0"

// Accumulator is the calculator state machine: one entry buffer, one stored
// operand and one pending operator. It is not safe for concurrent use; the
// presentation layer drives it from its event loop.
type Accumulator struct {
	display          string
	stored           float64
	hasStored        bool
	pending          Operator
	hasPending       bool
	resetOnNextDigit bool

	maxDigits int
}

// State is a copy of the accumulator fields, suitable for rendering and comparison.
type State struct {
	Display          string
	Stored           float64
	HasStored        bool
	Pending          Operator
	HasPending       bool
	ResetOnNextDigit bool
}

// Option configures an Accumulator
type Option func(*Accumulator)

// WithMaxDigits caps the number of digits accepted into the entry buffer.
// Zero or a negative value leaves entry unbounded.
func WithMaxDigits(n int) Option {
	return func(a *Accumulator) {
		if n < 0 {
			n = 0
		}
		a.maxDigits = n
	}
}

// New returns an accumulator in its initial state
func New(opts ...Option) *Accumulator {
	a := &Accumulator{display: initialDisplay}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Display returns the current readout
func (a *Accumulator) Display() string {
	return a.display
}

// Snapshot returns the current state by value
func (a *Accumulator) Snapshot() State {
	return State{
		Display:          a.display,
		Stored:           a.stored,
		HasStored:        a.hasStored,
		Pending:          a.pending,
		HasPending:       a.hasPending,
		ResetOnNextDigit: a.resetOnNextDigit,
	}
}

// MaxDigits reports the configured entry cap, 0 when unbounded
func (a *Accumulator) MaxDigits() int {
	return a.maxDigits
}

// SetMaxDigits changes the entry cap; it never truncates the current buffer
func (a *Accumulator) SetMaxDigits(n int) {
	WithMaxDigits(n)(a)
}

// InputDigit replaces or extends the entry buffer with d (0-9). Other values
// are ignored, as are digits past the configured cap.
func (a *Accumulator) InputDigit(d int) {
	if d < 0 || d > 9 {
		return
	}
	digit := strconv.Itoa(d)

	if a.resetOnNextDigit || a.display == initialDisplay {
		a.display = digit
		a.resetOnNextDigit = false
		return
	}

	if a.maxDigits > 0 && digitCount(a.display) >= a.maxDigits {
		return
	}
	a.display += digit
}

// SelectOperator stores the current entry as the left operand and arms op.
// If an operator is already pending, it is applied first so that chained
// input evaluates left to right.
func (a *Accumulator) SelectOperator(op Operator) {
	current, ok := a.current()
	if !ok {
		return
	}

	if a.hasPending && a.hasStored {
		result := settle(Apply(a.pending, a.stored, current))
		a.display = Format(result)
		a.stored = result
	} else {
		a.stored = current
	}
	a.hasStored = true

	a.pending = op
	a.hasPending = true
	a.resetOnNextDigit = true
}

// Evaluate applies the pending operator to the stored operand and the
// current entry. Without a pending operator it does nothing.
func (a *Accumulator) Evaluate() {
	if !a.hasPending || !a.hasStored {
		return
	}
	current, ok := a.current()
	if !ok {
		return
	}

	result := settle(Apply(a.pending, a.stored, current))
	a.display = Format(result)
	a.stored = 0
	a.hasStored = false
	a.pending = Add
	a.hasPending = false
	a.resetOnNextDigit = true
}

// Clear returns the accumulator to its initial state. The digit cap is kept.
func (a *Accumulator) Clear() {
	a.display = initialDisplay
	a.stored = 0
	a.hasStored = false
	a.pending = Add
	a.hasPending = false
	a.resetOnNextDigit = false
}

func (a *Accumulator) current() (float64, bool) {
	v, err := strconv.ParseFloat(a.display, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// settle keeps the buffer finite: overflowed results collapse to 0.
func settle(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
