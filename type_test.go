package orc

import "testing"

func TestDecimalTypeInvalidPrecisionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for precision 0")
		}
	}()
	DecimalType(0, 0)
}

func TestDecimalTypeInvalidScalePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for scale > precision")
		}
	}()
	DecimalType(5, 6)
}

func TestDecimalTypeValid(t *testing.T) {
	d := DecimalType(10, 2)
	if d.Precision() != 10 || d.Scale() != 2 {
		t.Fatalf("got precision=%d scale=%d, want 10,2", d.Precision(), d.Scale())
	}
	if d.String() != "decimal(10,2)" {
		t.Fatalf("got %q", d.String())
	}
}

func TestCharTypeInvalidMaxLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-positive max length")
		}
	}()
	CharType(0)
}

func TestVarcharTypeValid(t *testing.T) {
	v := VarcharType(255)
	if v.Category() != Varchar || v.MaxLength() != 255 {
		t.Fatalf("got category=%s maxLength=%d", v.Category(), v.MaxLength())
	}
	if v.String() != "varchar(255)" {
		t.Fatalf("got %q", v.String())
	}
}

func TestTypesAreEqualDecimalRequiresExactMatch(t *testing.T) {
	if !typesAreEqual(DecimalType(10, 2), DecimalType(10, 2)) {
		t.Fatalf("identical decimal types should be equal")
	}
	if typesAreEqual(DecimalType(10, 2), DecimalType(10, 3)) {
		t.Fatalf("decimals with different scale should not be equal")
	}
}

func TestTypesAreEqualCharRequiresExactMaxLength(t *testing.T) {
	if typesAreEqual(CharType(5), CharType(10)) {
		t.Fatalf("CHAR types with different max length should not be equal")
	}
	if !typesAreEqual(VarcharType(8), VarcharType(8)) {
		t.Fatalf("identical varchar types should be equal")
	}
}

func TestTypesAreEqualDifferentCategory(t *testing.T) {
	if typesAreEqual(IntType(), LongType()) {
		t.Fatalf("INT and LONG are different categories")
	}
}
