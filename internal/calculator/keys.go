package calculator

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKey = errors.New("unknown key")

// KeyKind identifies which accumulator operation a key drives
type KeyKind int

const (
	DigitKey KeyKind = iota
	OperatorKey
	EqualsKey
	ClearKey
)

// Key is one parsed keypad input
type Key struct {
	Kind     KeyKind
	Digit    int
	Operator Operator
}

// Label returns the canonical keypad label for k
func (k Key) Label() string {
	switch k.Kind {
	case DigitKey:
		return string(rune('0' + k.Digit))
	case OperatorKey:
		return k.Operator.String()
	case EqualsKey:
		return "="
	case ClearKey:
		return "C"
	default:
		return ""
	}
}

// ParseKey maps a keypad label, or a keyboard alias of one, onto a Key.
func ParseKey(label string) (Key, error) {
	s := strings.TrimSpace(label)
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return Key{Kind: DigitKey, Digit: int(s[0] - '0')}, nil
	}

	switch s {
	case "+":
		return Key{Kind: OperatorKey, Operator: Add}, nil
	case "-", "−":
		return Key{Kind: OperatorKey, Operator: Subtract}, nil
	case "×", "*", "x", "X":
		return Key{Kind: OperatorKey, Operator: Multiply}, nil
	case "÷", "/", ":":
		return Key{Kind: OperatorKey, Operator: Divide}, nil
	case "=":
		return Key{Kind: EqualsKey}, nil
	case "C", "c":
		return Key{Kind: ClearKey}, nil
	}

	return Key{}, fmt.Errorf("parse key %q: %w", label, ErrUnknownKey)
}

// Press routes a key to the matching accumulator operation
func (a *Accumulator) Press(k Key) {
	switch k.Kind {
	case DigitKey:
		a.InputDigit(k.Digit)
	case OperatorKey:
		a.SelectOperator(k.Operator)
	case EqualsKey:
		a.Evaluate()
	case ClearKey:
		a.Clear()
	}
}
