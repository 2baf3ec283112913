package orc

import "testing"

func TestBinaryFromStringCopiesRawBytes(t *testing.T) {
	source := bytesVectorOf([]string{"hello", "world"})
	decoder := &fakeBytesDecoder{source: source}
	reader := &binaryFromStringReader{
		baseConvertReader: baseConvertReader{decoder: decoder},
		decoder:           decoder,
	}
	output := NewBytesColumnVector(2)
	if err := reader.NextBatch(output, 2); err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	want := []string{"hello", "world"}
	for i, w := range want {
		if got := string(output.Elements[i].Bytes()); got != w {
			t.Fatalf("index %d: got %q, want %q", i, got, w)
		}
	}
}
