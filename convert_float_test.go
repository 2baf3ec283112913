package orc

import (
	"math"
	"testing"
)

func TestDoubleFromStringStrictParse(t *testing.T) {
	source := bytesVectorOf([]string{"3.14", "nope", "", " 2.0"})
	decoder := &fakeBytesDecoder{source: source}
	reader := &doubleFromStringReader{
		baseConvertReader: baseConvertReader{decoder: decoder},
		decoder:           decoder,
	}
	output := NewDoubleColumnVector(4)
	if err := reader.NextBatch(output, 4); err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	if output.Null(0) || output.Values[0] != 3.14 {
		t.Fatalf("index 0 expected 3.14, got null=%v value=%v", output.Null(0), output.Values[0])
	}
	for _, i := range []int{1, 2, 3} {
		if !output.Null(i) {
			t.Fatalf("index %d expected null (malformed or leading space), got %v", i, output.Values[i])
		}
	}
}

func TestFloatFromDoubleExactRoundTrip(t *testing.T) {
	values := []float64{0, -0.0, 1.5, math.Inf(1), math.Inf(-1), 1e38, 1e40}
	source := doubleVectorOf(values)
	decoder := &fakeDoubleDecoder{source: source}
	reader := &floatFromDoubleReader{
		baseConvertReader: baseConvertReader{decoder: decoder},
		decoder:           decoder,
	}
	output := NewDoubleColumnVector(len(values))
	if err := reader.NextBatch(output, len(values)); err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	for i, v := range values {
		want := float64(float32(v))
		if output.Values[i] != want {
			t.Fatalf("index %d: got %v, want %v", i, output.Values[i], want)
		}
	}
	// 1e40 overflows float32 range and must saturate to +Inf, not null.
	if output.Null(len(values) - 1) {
		t.Fatalf("float32 overflow must saturate to infinity, not null")
	}
	if !math.IsInf(output.Values[len(values)-1], 1) {
		t.Fatalf("expected +Inf for 1e40 narrowed to float32, got %v", output.Values[len(values)-1])
	}
}

func TestIntegerFromDoubleNaNAndInfinityNull(t *testing.T) {
	source := doubleVectorOf([]float64{math.NaN(), math.Inf(1), math.Inf(-1)})
	decoder := &fakeDoubleDecoder{source: source}
	reader := &integerFromDoubleReader{
		baseConvertReader: baseConvertReader{decoder: decoder},
		decoder:           decoder,
		target:            Long,
	}
	output := NewLongColumnVector(3)
	if err := reader.NextBatch(output, 3); err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	for i := 0; i < 3; i++ {
		if !output.Null(i) {
			t.Fatalf("index %d expected null for non-finite source", i)
		}
	}
}
