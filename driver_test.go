package orc

import "testing"

func TestConvertVectorRepeatingNonNull(t *testing.T) {
	output := NewLongColumnVector(4)
	called := 0
	convertVector(true, true, nil, &output.ColumnVector, 4, func(i int) {
		called++
		output.Values[i] = 7
	})
	if called != 1 {
		t.Fatalf("expected convert_element called once for repeating input, got %d", called)
	}
	if !output.IsRepeating {
		t.Fatalf("expected output to remain repeating")
	}
	if output.Values[0] != 7 {
		t.Fatalf("expected converted value 7, got %d", output.Values[0])
	}
}

func TestConvertVectorRepeatingNull(t *testing.T) {
	output := NewLongColumnVector(4)
	mask := []bool{true}
	called := 0
	convertVector(false, true, mask, &output.ColumnVector, 4, func(i int) {
		called++
	})
	if called != 0 {
		t.Fatalf("expected convert_element not called for repeating null input")
	}
	if !output.IsRepeating {
		t.Fatalf("expected output to remain repeating")
	}
	if output.NoNulls || !output.Null(0) {
		t.Fatalf("expected output index 0 to be null")
	}
}

func TestConvertVectorNoNulls(t *testing.T) {
	output := NewLongColumnVector(5)
	convertVector(true, false, nil, &output.ColumnVector, 5, func(i int) {
		output.Values[i] = int64(i * 2)
	})
	for i := 0; i < 5; i++ {
		if output.Null(i) {
			t.Fatalf("index %d unexpectedly null", i)
		}
		if output.Values[i] != int64(i*2) {
			t.Fatalf("index %d = %d, want %d", i, output.Values[i], i*2)
		}
	}
}

func TestConvertVectorPropagatesNulls(t *testing.T) {
	output := NewLongColumnVector(4)
	mask := []bool{false, true, false, true}
	convertVector(false, false, mask, &output.ColumnVector, 4, func(i int) {
		output.Values[i] = 9
	})
	for i, wantNull := range mask {
		if output.Null(i) != wantNull {
			t.Fatalf("index %d: null = %v, want %v", i, output.Null(i), wantNull)
		}
	}
	if output.Values[0] != 9 || output.Values[2] != 9 {
		t.Fatalf("non-null slots were not converted")
	}
}
