// Package calc implements the arithmetic behind the calculator widget.
//
// Inputs arrive as free-form text and are parsed into [Operand] values; an
// operand that does not match the digit-only pattern is absent. [Compute]
// combines two operands with an [Operator] and yields a [Result] that is
// absent whenever the computation is undefined:
//
//   - an operand is missing
//   - the operator is Divide and the divisor is zero
//   - the operator is outside the enumeration
//   - the value overflowed to a non-finite number
//
// None of these conditions is surfaced to the user. [Evaluate] reports the
// reason as one of the sentinel errors in this package so callers can log it.
//
// # Precision
//
// Division results are rounded to max(digits(a), digits(b), 9) fractional
// digits under [PrecisionRounded]. [PrecisionRaw] keeps the float64 quotient.
package calc
