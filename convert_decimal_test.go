package orc

import "testing"

func TestDecimalFromDecimalOverflowNulls(t *testing.T) {
	source := decimalVectorOf(10, 4, []string{"123.4567", "99999.0001"})
	decoder := &fakeDecimalDecoder{source: source}
	reader := &decimalFromDecimalReader{
		baseConvertReader: baseConvertReader{decoder: decoder},
		decoder:           decoder,
		filePrecision:     10,
		fileScale:         4,
	}
	output := NewDecimalColumnVector(2, 5, 2)
	if err := reader.NextBatch(output, 2); err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	if output.Null(0) {
		t.Fatalf("123.4567 rescaled to precision 5 scale 2 should fit")
	}
	if output.Values[0].StringFixed(2) != "123.46" {
		t.Fatalf("expected 123.4567 rounded to scale 2 as 123.46, got %s", output.Values[0].StringFixed(2))
	}
	if !output.Null(1) {
		t.Fatalf("99999.0001 at scale 2 has 7 digits, should overflow precision 5")
	}
}

func TestDecimalFromIntegerSet(t *testing.T) {
	source := longVectorOf([]int64{42, -7})
	decoder := &fakeLongDecoder{source: source}
	reader := &decimalFromIntegerReader{
		baseConvertReader: baseConvertReader{decoder: decoder},
		decoder:           decoder,
	}
	output := NewDecimal64ColumnVector(2, 10, 2)
	if err := reader.NextBatch(output, 2); err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	if output.Null(0) || output.Decimal(0).StringFixed(2) != "42.00" {
		t.Fatalf("index 0: got null=%v", output.Null(0))
	}
	if output.Null(1) || output.Decimal(1).StringFixed(2) != "-7.00" {
		t.Fatalf("index 1: got null=%v", output.Null(1))
	}
}

func TestDecimalFromIntegerZeroFitsPrecisionEqualsScale(t *testing.T) {
	source := longVectorOf([]int64{0})
	decoder := &fakeLongDecoder{source: source}
	reader := &decimalFromIntegerReader{
		baseConvertReader: baseConvertReader{decoder: decoder},
		decoder:           decoder,
	}
	output := NewDecimalColumnVector(1, 3, 3)
	if err := reader.NextBatch(output, 1); err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	if output.Null(0) {
		t.Fatalf("0 must fit DECIMAL(3,3), not overflow")
	}
	if output.Values[0].StringFixed(3) != "0.000" {
		t.Fatalf("got %q, want 0.000", output.Values[0].StringFixed(3))
	}
}

func TestStringFromDecimalFormatting(t *testing.T) {
	source := decimalVectorOf(5, 2, []string{"123.45", "99.99", "-0.01"})
	decoder := &fakeDecimalDecoder{source: source}
	reader := &stringFromDecimalReader{
		baseConvertReader: baseConvertReader{decoder: decoder},
		decoder:           decoder,
		target:            String,
		filePrecision:     5,
		fileScale:         2,
	}
	output := NewBytesColumnVector(3)
	if err := reader.NextBatch(output, 3); err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	want := []string{"123.45", "99.99", "-0.01"}
	for i, w := range want {
		if got := string(output.Elements[i].Bytes()); got != w {
			t.Fatalf("index %d: got %q, want %q", i, got, w)
		}
	}
}
