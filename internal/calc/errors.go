package calc

import "errors"

// Reasons a result is absent.
var (
	// ErrMissingOperand indicates one of the operands is absent.
	ErrMissingOperand = errors.New("calc: missing operand")

	// ErrDivisionByZero indicates a Divide with a zero divisor.
	ErrDivisionByZero = errors.New("calc: division by zero")

	// ErrInvalidOperator indicates an operator outside the enumeration.
	ErrInvalidOperator = errors.New("calc: invalid operator")

	// ErrNonDigit indicates operand text containing something other than 0-9.
	ErrNonDigit = errors.New("calc: operand must be digits only")

	// ErrNotFinite indicates the computation overflowed to Inf or NaN.
	ErrNotFinite = errors.New("calc: result is not finite")
)
