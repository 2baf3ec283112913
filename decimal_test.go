package orc

import (
	"math"
	"testing"
)

func TestParseDecimalMalformed(t *testing.T) {
	if _, ok := ParseDecimal("not-a-number"); ok {
		t.Fatalf("expected malformed literal to fail parsing")
	}
}

func TestParseDecimalRoundTrip(t *testing.T) {
	d, ok := ParseDecimal("-123.45")
	if !ok {
		t.Fatalf("expected valid literal to parse")
	}
	if d.Signum() != -1 {
		t.Fatalf("expected negative sign")
	}
	if d.IntPart() != -123 {
		t.Fatalf("got IntPart=%d, want -123", d.IntPart())
	}
	if d.StringFixed(2) != "-123.45" {
		t.Fatalf("got %q", d.StringFixed(2))
	}
}

func TestFitPrecisionScaleOverflow(t *testing.T) {
	d, _ := ParseDecimal("99999.0001")
	if _, ok := FitPrecisionScale(d, 5, 2); ok {
		t.Fatalf("99999.0001 rescaled to scale 2 is 7 digits, must overflow precision 5")
	}
}

func TestFitPrecisionScaleFits(t *testing.T) {
	d, _ := ParseDecimal("123.456")
	rescaled, ok := FitPrecisionScale(d, 5, 2)
	if !ok {
		t.Fatalf("123.46 at precision 5 scale 2 should fit")
	}
	if rescaled.StringFixed(2) != "123.46" {
		t.Fatalf("got %q, want 123.46", rescaled.StringFixed(2))
	}
}

func TestDoubleToDecimalStringRejectsNonFinite(t *testing.T) {
	if _, ok := DoubleToDecimalString(math.NaN()); ok {
		t.Fatalf("NaN must not have a decimal string representation")
	}
}

func TestDoubleToDecimalStringFinite(t *testing.T) {
	s, ok := DoubleToDecimalString(3.5)
	if !ok {
		t.Fatalf("3.5 should convert to a decimal string")
	}
	if s != "3.5" {
		t.Fatalf("got %q, want 3.5", s)
	}
}

func TestFitPrecisionScaleFractionalOnlyFitsExactScale(t *testing.T) {
	d, _ := ParseDecimal("0.5")
	rescaled, ok := FitPrecisionScale(d, 1, 1)
	if !ok {
		t.Fatalf("0.5 should fit DECIMAL(1,1), not overflow on its rendered leading zero")
	}
	if rescaled.StringFixed(1) != "0.5" {
		t.Fatalf("got %q, want 0.5", rescaled.StringFixed(1))
	}

	d, _ = ParseDecimal("0.01")
	if _, ok := FitPrecisionScale(d, 2, 2); !ok {
		t.Fatalf("0.01 should fit DECIMAL(2,2)")
	}
}

func TestFitPrecisionScaleZeroFitsExactScale(t *testing.T) {
	if _, ok := FitPrecisionScale(NewDecimalFromInt64(0), 3, 3); !ok {
		t.Fatalf("0 should fit DECIMAL(3,3)")
	}
}

