package orc

import "time"

// Fake decoders used by conversion-reader tests: each wraps a pre-built
// scratch vector and copies it into the caller-supplied output on
// NextBatch, standing in for the primitive decoders this layer wraps.

type noopStreamDecoder struct{}

func (noopStreamDecoder) CheckEncoding(ColumnEncoding) error       { return nil }
func (noopStreamDecoder) StartStripe(StreamSet, StripeFooter) error { return nil }
func (noopStreamDecoder) Seek(PositionProvider) error               { return nil }
func (noopStreamDecoder) SkipRows(int64) error                      { return nil }

type fakeLongDecoder struct {
	noopStreamDecoder
	source *LongColumnVector
}

func (d *fakeLongDecoder) NextBatch(output *LongColumnVector, batchSize int) error {
	output.ensure(batchSize)
	output.NoNulls = d.source.NoNulls
	output.IsRepeating = d.source.IsRepeating
	output.IsNull = d.source.IsNull
	output.Len = batchSize
	copy(output.Values, d.source.Values)
	return nil
}

type fakeDoubleDecoder struct {
	noopStreamDecoder
	source *DoubleColumnVector
}

func (d *fakeDoubleDecoder) NextBatch(output *DoubleColumnVector, batchSize int) error {
	output.ensure(batchSize)
	output.NoNulls = d.source.NoNulls
	output.IsRepeating = d.source.IsRepeating
	output.IsNull = d.source.IsNull
	output.Len = batchSize
	copy(output.Values, d.source.Values)
	return nil
}

type fakeBytesDecoder struct {
	noopStreamDecoder
	source *BytesColumnVector
}

func (d *fakeBytesDecoder) NextBatch(output *BytesColumnVector, batchSize int) error {
	output.ensure(batchSize)
	output.NoNulls = d.source.NoNulls
	output.IsRepeating = d.source.IsRepeating
	output.IsNull = d.source.IsNull
	output.Len = batchSize
	copy(output.Elements, d.source.Elements)
	return nil
}

type fakeDecimalDecoder struct {
	noopStreamDecoder
	source *DecimalColumnVector
}

func (d *fakeDecimalDecoder) NextBatch(output *DecimalColumnVector, batchSize int) error {
	output.ensure(batchSize)
	output.NoNulls = d.source.NoNulls
	output.IsRepeating = d.source.IsRepeating
	output.IsNull = d.source.IsNull
	output.Len = batchSize
	copy(output.Values, d.source.Values)
	return nil
}

type fakeTimestampDecoder struct {
	noopStreamDecoder
	source *TimestampColumnVector
}

func (d *fakeTimestampDecoder) NextBatch(output *TimestampColumnVector, batchSize int) error {
	output.ensure(batchSize)
	output.NoNulls = d.source.NoNulls
	output.IsRepeating = d.source.IsRepeating
	output.IsNull = d.source.IsNull
	output.Len = batchSize
	copy(output.Values, d.source.Values)
	return nil
}

// longVectorOf builds a non-repeating, non-null LongColumnVector from
// literal values, except where index i appears in nullAt.
func longVectorOf(values []int64, nullAt ...int) *LongColumnVector {
	v := NewLongColumnVector(len(values))
	copy(v.Values, values)
	v.Len = len(values)
	if len(nullAt) == 0 {
		v.NoNulls = true
		return v
	}
	v.NoNulls = false
	v.IsNull = make([]bool, len(values))
	for _, i := range nullAt {
		v.IsNull[i] = true
	}
	return v
}

func doubleVectorOf(values []float64) *DoubleColumnVector {
	v := NewDoubleColumnVector(len(values))
	copy(v.Values, values)
	v.Len = len(values)
	v.NoNulls = true
	return v
}

func decimalVectorOf(precision, scale int, values []string) *DecimalColumnVector {
	v := NewDecimalColumnVector(len(values), precision, scale)
	for i, s := range values {
		d, ok := ParseDecimal(s)
		if !ok {
			panic("decimalVectorOf: malformed literal " + s)
		}
		v.Values[i] = d
	}
	v.Len = len(values)
	v.NoNulls = true
	return v
}

func timestampVectorOf(values []time.Time) *TimestampColumnVector {
	v := NewTimestampColumnVector(len(values))
	copy(v.Values, values)
	v.Len = len(values)
	v.NoNulls = true
	return v
}

func bytesVectorOf(values []string) *BytesColumnVector {
	v := NewBytesColumnVector(len(values))
	for i, s := range values {
		v.SetString(i, s)
	}
	v.Len = len(values)
	v.NoNulls = true
	return v
}
