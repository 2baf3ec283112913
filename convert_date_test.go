package orc

import (
	"testing"
	"time"
)

func TestDateFromTimestampScenario(t *testing.T) {
	// Spec scenario: TIMESTAMP [1970-01-01T00:00:01Z, 1969-12-31T23:59:59Z]
	// converts to DATE [0, -1] -- one second into the epoch day still floors
	// to day 0, one second before the epoch floors to day -1.
	values := []time.Time{
		time.Date(1970, 1, 1, 0, 0, 1, 0, time.UTC),
		time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	source := timestampVectorOf(values)
	decoder := &fakeTimestampDecoder{source: source}
	reader := &dateFromTimestampReader{
		baseConvertReader: baseConvertReader{decoder: decoder},
		decoder:           decoder,
	}
	output := NewLongColumnVector(2)
	if err := reader.NextBatch(output, 2); err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	want := []int64{0, -1}
	for i, w := range want {
		if output.Null(i) || output.Values[i] != w {
			t.Fatalf("index %d: got null=%v value=%d, want %d", i, output.Null(i), output.Values[i], w)
		}
	}
}

func TestDateFromStringStrictParse(t *testing.T) {
	source := bytesVectorOf([]string{"2020-01-15", "not-a-date", "1969-12-31"})
	decoder := &fakeBytesDecoder{source: source}
	reader := &dateFromStringReader{
		baseConvertReader: baseConvertReader{decoder: decoder},
		decoder:           decoder,
	}
	output := NewLongColumnVector(3)
	if err := reader.NextBatch(output, 3); err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	if output.Null(0) || output.Values[0] != 18276 {
		t.Fatalf("2020-01-15: got null=%v value=%d, want 18276", output.Null(0), output.Values[0])
	}
	if !output.Null(1) {
		t.Fatalf("malformed date literal should null")
	}
	if output.Null(2) || output.Values[2] != -1 {
		t.Fatalf("1969-12-31: got null=%v value=%d, want -1", output.Null(2), output.Values[2])
	}
}
