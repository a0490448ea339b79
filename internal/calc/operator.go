package calc

import (
	"fmt"
	"strings"
)

// Operator is one of the four arithmetic operations.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

// Operators lists every operator in declaration order.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

var operatorLabels = [...]string{
	Add:      "plus",
	Subtract: "moins",
	Multiply: "fois",
	Divide:   "divisé",
}

var operatorSymbols = [...]string{
	Add:      "+",
	Subtract: "−",
	Multiply: "×",
	Divide:   "÷",
}

// Valid reports whether op is a member of the enumeration.
func (op Operator) Valid() bool {
	return op >= Add && op <= Divide
}

// Label is the display label shown in the operator carousel.
func (op Operator) Label() string {
	if !op.Valid() {
		return "?"
	}
	return operatorLabels[op]
}

// Symbol is the single-character operator sign.
func (op Operator) Symbol() string {
	if !op.Valid() {
		return "?"
	}
	return operatorSymbols[op]
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// ParseOperator accepts a name, a label or a symbol.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "plus", "+":
		return Add, nil
	case "subtract", "sub", "moins", "-", "−":
		return Subtract, nil
	case "multiply", "mul", "fois", "x", "*", "×":
		return Multiply, nil
	case "divide", "div", "divisé", "divise", "/", "÷":
		return Divide, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOperator, s)
}
