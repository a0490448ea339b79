package calc

import (
	"regexp"
	"strconv"
)

var operandPattern = regexp.MustCompile(`^[0-9]*$`)

// Operand is an optional non-negative number parsed from text input.
type Operand struct {
	Value float64
	Valid bool
	// Digits is the number of significant decimal digits of Value.
	Digits int
}

// Absent is the missing operand.
var Absent = Operand{}

// Num returns a valid operand holding v.
func Num(v float64) Operand {
	return Operand{Value: v, Valid: true, Digits: digitCount(v)}
}

// ParseOperand parses digit-only text. Empty or non-matching text yields
// an absent operand.
func ParseOperand(text string) Operand {
	if text == "" || !operandPattern.MatchString(text) {
		return Absent
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Absent
	}
	return Operand{Value: v, Valid: true, Digits: digitCount(v)}
}

// ValidateOperand returns ErrNonDigit when text can never become an operand.
// Empty text is accepted; it is an absent operand, not a malformed one.
func ValidateOperand(text string) error {
	if !operandPattern.MatchString(text) {
		return ErrNonDigit
	}
	return nil
}

// AcceptsRune reports whether r may appear in operand text.
func AcceptsRune(r rune) bool {
	return r >= '0' && r <= '9'
}

func (o Operand) String() string {
	if !o.Valid {
		return ""
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

func digitCount(v float64) int {
	if v < 0 {
		v = -v
	}
	n := 0
	for _, c := range strconv.FormatFloat(v, 'f', -1, 64) {
		if c >= '0' && c <= '9' {
			n++
		}
	}
	return n
}
