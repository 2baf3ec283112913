package orc

import "testing"

func TestColumnVectorSetNullMaterializesMask(t *testing.T) {
	v := &ColumnVector{NoNulls: true, Len: 3}
	v.SetNull(1)
	if v.NoNulls {
		t.Fatalf("SetNull must clear NoNulls")
	}
	if v.Null(0) || !v.Null(1) || v.Null(2) {
		t.Fatalf("only index 1 should be null")
	}
}

func TestColumnVectorRepeatingNullAppliesToEveryIndex(t *testing.T) {
	v := &ColumnVector{NoNulls: true, IsRepeating: true, Len: 5}
	v.SetNull(3)
	if !v.Null(0) || !v.Null(4) {
		t.Fatalf("repeating null must apply to every logical index")
	}
}

func TestColumnVectorReset(t *testing.T) {
	v := &ColumnVector{NoNulls: false, IsRepeating: true, IsNull: []bool{true}}
	v.reset(4)
	if v.IsRepeating {
		t.Fatalf("reset must clear IsRepeating")
	}
	if !v.NoNulls {
		t.Fatalf("reset must set NoNulls")
	}
	if v.Len != 4 {
		t.Fatalf("got Len=%d, want 4", v.Len)
	}
}

func TestDecimal64ColumnVectorSetAndRoundTrip(t *testing.T) {
	v := NewDecimal64ColumnVector(2, 10, 2)
	d, _ := ParseDecimal("42.5")
	v.Set(0, d)
	if v.Null(0) {
		t.Fatalf("42.5 should fit precision 10 scale 2")
	}
	if v.Decimal(0).StringFixed(2) != "42.50" {
		t.Fatalf("got %q, want 42.50", v.Decimal(0).StringFixed(2))
	}
}

func TestDecimal64ColumnVectorSetOverflowsToNull(t *testing.T) {
	v := NewDecimal64ColumnVector(1, 3, 1)
	d, _ := ParseDecimal("12345.6")
	v.Set(0, d)
	if !v.Null(0) {
		t.Fatalf("12345.6 at precision 3 scale 1 should overflow to null")
	}
}

func TestDecimalColumnVectorSetOverflowsToNull(t *testing.T) {
	v := NewDecimalColumnVector(1, 3, 1)
	d, _ := ParseDecimal("12345.6")
	v.Set(0, d)
	if !v.Null(0) {
		t.Fatalf("12345.6 at precision 3 scale 1 should overflow to null")
	}
}

func TestBytesVectorElementBytes(t *testing.T) {
	v := NewBytesColumnVector(1)
	v.SetString(0, "hello")
	if string(v.Elements[0].Bytes()) != "hello" {
		t.Fatalf("got %q", v.Elements[0].Bytes())
	}
}
