package calc

import (
	"errors"
	"math"
	"testing"
)

func TestParseOperand(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		valid bool
	}{
		{"empty", "", 0, false},
		{"zero", "0", 0, true},
		{"digits", "42", 42, true},
		{"leading zeros", "007", 7, true},
		{"negative", "-3", 0, false},
		{"decimal", "1.5", 0, false},
		{"letters", "12a", 0, false},
		{"space", " 1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOperand(tt.text)
			if got.Valid != tt.valid {
				t.Fatalf("ParseOperand(%q).Valid = %v, want %v", tt.text, got.Valid, tt.valid)
			}
			if got.Valid && got.Value != tt.want {
				t.Errorf("ParseOperand(%q) = %v, want %v", tt.text, got.Value, tt.want)
			}
		})
	}
}

func TestParseOperand_Digits(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"7", 1},
		{"007", 1},
		{"000000000007", 1},
		{"0", 1},
		{"000", 1},
		{"1234567890", 10},
	}

	for _, tt := range tests {
		got := ParseOperand(tt.text)
		if got.Digits != tt.want {
			t.Errorf("ParseOperand(%q).Digits = %d, want %d", tt.text, got.Digits, tt.want)
		}
		if num := Num(got.Value); num.Digits != got.Digits {
			t.Errorf("ParseOperand(%q).Digits = %d, Num gives %d", tt.text, got.Digits, num.Digits)
		}
	}
}

func TestValidateOperand(t *testing.T) {
	for _, ok := range []string{"", "0", "42", "007"} {
		if err := ValidateOperand(ok); err != nil {
			t.Errorf("ValidateOperand(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"-3", "1.5", "12a", " 1"} {
		if err := ValidateOperand(bad); !errors.Is(err, ErrNonDigit) {
			t.Errorf("ValidateOperand(%q) = %v, want ErrNonDigit", bad, err)
		}
	}
}

func TestCompute_Arithmetic(t *testing.T) {
	pairs := [][2]float64{{0, 0}, {1, 2}, {10, 3}, {999, 1}, {123456, 789}}

	for _, p := range pairs {
		a, b := Num(p[0]), Num(p[1])
		if got := Compute(a, b, Add); !got.Valid || got.Value != p[0]+p[1] {
			t.Errorf("%v + %v = %+v", p[0], p[1], got)
		}
		if got := Compute(a, b, Subtract); !got.Valid || got.Value != p[0]-p[1] {
			t.Errorf("%v - %v = %+v", p[0], p[1], got)
		}
		if got := Compute(a, b, Multiply); !got.Valid || got.Value != p[0]*p[1] {
			t.Errorf("%v * %v = %+v", p[0], p[1], got)
		}
	}
}

func TestCompute_MissingOperand(t *testing.T) {
	for _, op := range Operators {
		if got := Compute(Absent, Num(1), op); got.Valid {
			t.Errorf("absent %s 1 should be absent, got %v", op, got.Value)
		}
		if got := Compute(Num(1), Absent, op); got.Valid {
			t.Errorf("1 %s absent should be absent, got %v", op, got.Value)
		}
	}

	_, err := Evaluate(Absent, Absent, Add)
	if !errors.Is(err, ErrMissingOperand) {
		t.Errorf("expected ErrMissingOperand, got %v", err)
	}
}

func TestCompute_Divide(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"10", "3", "3.333333333"},
		{"1", "4", "0.25"},
		{"7", "7", "1"},
		{"2", "3", "0.666666667"},
		{"0", "5", "0"},
		{"1234567890", "3", "411522630"},
		{"000000000007", "3", "2.333333333"},
		{"0000000000001", "3", "0.333333333"},
	}

	for _, tt := range tests {
		r := Compute(ParseOperand(tt.a), ParseOperand(tt.b), Divide)
		if got := Format(r); got != tt.want {
			t.Errorf("%s / %s = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompute_DivisionByZero(t *testing.T) {
	r := Compute(Num(5), Num(0), Divide)
	if r.Valid {
		t.Fatalf("5 / 0 should be absent, got %v", r.Value)
	}
	if Format(r) != "" {
		t.Errorf("absent result should format empty, got %q", Format(r))
	}

	_, err := Evaluate(Num(5), Num(0), Divide)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestCompute_RawDivision(t *testing.T) {
	e := NewEngine(PrecisionRaw)
	r := e.Compute(Num(10), Num(3), Divide)
	if !r.Valid || r.Value != 10.0/3.0 {
		t.Errorf("raw 10 / 3 = %+v, want %v", r, 10.0/3.0)
	}
}

func TestCompute_InvalidOperator(t *testing.T) {
	for _, op := range []Operator{-1, 4, 99} {
		if r := Compute(Num(1), Num(2), op); r.Valid {
			t.Errorf("operator %d should yield absent, got %v", op, r.Value)
		}
		if _, err := Evaluate(Num(1), Num(2), op); !errors.Is(err, ErrInvalidOperator) {
			t.Errorf("operator %d: expected ErrInvalidOperator, got %v", op, err)
		}
	}
}

func TestCompute_NotFinite(t *testing.T) {
	_, err := Evaluate(Num(math.MaxFloat64), Num(10), Multiply)
	if !errors.Is(err, ErrNotFinite) {
		t.Errorf("expected ErrNotFinite, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{None, ""},
		{Result{Value: 0, Valid: true}, "0"},
		{Result{Value: math.Copysign(0, -1), Valid: true}, "0"},
		{Result{Value: 42, Valid: true}, "42"},
		{Result{Value: -7, Valid: true}, "-7"},
		{Result{Value: 0.5, Valid: true}, "0.5"},
		{Result{Value: 1e21, Valid: true}, "1000000000000000000000"},
	}

	for _, tt := range tests {
		if got := Format(tt.r); got != tt.want {
			t.Errorf("Format(%+v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestParseOperator(t *testing.T) {
	tests := map[string]Operator{
		"+": Add, "plus": Add, "moins": Subtract, "-": Subtract,
		"x": Multiply, "fois": Multiply, "/": Divide, "divisé": Divide, "÷": Divide,
	}
	for in, want := range tests {
		got, err := ParseOperator(in)
		if err != nil || got != want {
			t.Errorf("ParseOperator(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseOperator("mod"); !errors.Is(err, ErrInvalidOperator) {
		t.Errorf("expected ErrInvalidOperator, got %v", err)
	}
}

func TestOperatorLabels(t *testing.T) {
	want := []string{"plus", "moins", "fois", "divisé"}
	for i, op := range Operators {
		if op.Label() != want[i] {
			t.Errorf("%s label = %q, want %q", op, op.Label(), want[i])
		}
	}
	if Operator(7).Label() != "?" {
		t.Error("invalid operator should have placeholder label")
	}
}
