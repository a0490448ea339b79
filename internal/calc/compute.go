package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Precision selects how division results are normalized.
type Precision int

const (
	// PrecisionRounded rounds quotients to max(digits(a), digits(b), 9)
	// fractional digits.
	PrecisionRounded Precision = iota
	// PrecisionRaw keeps the raw float64 quotient.
	PrecisionRaw
)

// MinFractionDigits is the floor of the rounded division precision.
const MinFractionDigits = 9

func (p Precision) String() string {
	if p == PrecisionRaw {
		return "raw"
	}
	return "rounded"
}

// ParsePrecision maps "rounded" and "raw" to a Precision.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(s) {
	case "", "rounded", "round":
		return PrecisionRounded, nil
	case "raw":
		return PrecisionRaw, nil
	}
	return 0, fmt.Errorf("calc: unknown precision %q", s)
}

// Result is an optional computed value.
type Result struct {
	Value float64
	Valid bool
}

// None is the absent result.
var None = Result{}

// Engine computes results under a fixed precision policy.
type Engine struct {
	Precision Precision
}

// NewEngine returns an engine using p for division.
func NewEngine(p Precision) *Engine {
	return &Engine{Precision: p}
}

// Compute evaluates a op b with the default rounded precision.
func Compute(a, b Operand, op Operator) Result {
	return (&Engine{}).Compute(a, b, op)
}

// Evaluate is Compute that reports why the result is absent.
func Evaluate(a, b Operand, op Operator) (float64, error) {
	return (&Engine{}).Evaluate(a, b, op)
}

// Compute evaluates a op b. Undefined computations yield None.
func (e *Engine) Compute(a, b Operand, op Operator) Result {
	v, err := e.Evaluate(a, b, op)
	if err != nil {
		return None
	}
	return Result{Value: v, Valid: true}
}

// Evaluate evaluates a op b, returning one of the package sentinel errors
// when the result is undefined.
func (e *Engine) Evaluate(a, b Operand, op Operator) (float64, error) {
	if !a.Valid || !b.Valid {
		return 0, ErrMissingOperand
	}

	var v float64
	switch op {
	case Add:
		v = a.Value + b.Value
	case Subtract:
		v = a.Value - b.Value
	case Multiply:
		v = a.Value * b.Value
	case Divide:
		if b.Value == 0 {
			return 0, ErrDivisionByZero
		}
		v = a.Value / b.Value
		if e.Precision == PrecisionRounded {
			v = roundTo(v, divisionPrecision(a, b))
		}
	default:
		return 0, ErrInvalidOperator
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotFinite
	}
	return v, nil
}

func divisionPrecision(a, b Operand) int {
	return max(operandDigits(a), operandDigits(b), MinFractionDigits)
}

func operandDigits(o Operand) int {
	if o.Digits > 0 {
		return o.Digits
	}
	return digitCount(o.Value)
}

// roundTo rounds through the decimal representation so large precisions do
// not overflow a scale factor.
func roundTo(v float64, digits int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Format renders r as plain decimal text. The absent result renders empty.
func Format(r Result) string {
	if !r.Valid {
		return ""
	}
	if r.Value == 0 {
		return "0"
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}
