package orc

// integerFromIntegerReader implements BOOLEAN/BYTE/SHORT/INT/LONG conversion
// from another integer-family category. When the target outranks the
// source no narrowing is needed and values pass through unchanged; when it
// narrows, each value is down-cast with a range check. BOOLEAN is a special
// case that never nulls: any non-zero value maps to 1.
type integerFromIntegerReader struct {
	baseConvertReader
	decoder LongDecoder
	target  Category
	scratch *LongColumnVector
}

func (r *integerFromIntegerReader) NextBatch(output *LongColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewLongColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		v := r.scratch.Values[i]
		if r.target == Boolean {
			output.Values[i] = boolFromInteger(v)
			return
		}
		n, ok := downCastInteger(v, r.target)
		if !ok {
			output.SetNull(i)
			return
		}
		output.Values[i] = n
	})
	return nil
}

// integerFromDoubleReader implements Integer-family conversion from
// FLOAT/DOUBLE: out-of-range values (outside representable int64 magnitude,
// or NaN/Inf) null the slot; otherwise the value truncates toward zero and
// is down-cast to the target width.
type integerFromDoubleReader struct {
	baseConvertReader
	decoder DoubleDecoder
	target  Category
	scratch *DoubleColumnVector
}

func (r *integerFromDoubleReader) NextBatch(output *LongColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewDoubleColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		v := r.scratch.Values[i]
		if !doubleFitsInLong(v) {
			output.SetNull(i)
			return
		}
		n := truncateToInt64(v)
		if r.target == Boolean {
			output.Values[i] = boolFromInteger(n)
			return
		}
		dc, ok := downCastInteger(n, r.target)
		if !ok {
			output.SetNull(i)
			return
		}
		output.Values[i] = dc
	})
	return nil
}

// integerFromDecimalReader implements Integer-family conversion from
// DECIMAL: the decimal's integer part (truncated toward zero) is checked
// against the target's range. BOOLEAN follows the decimal's sign instead.
type integerFromDecimalReader struct {
	baseConvertReader
	decoder       DecimalDecoder
	target        Category
	filePrecision int
	fileScale     int
	scratch       *DecimalColumnVector
}

func (r *integerFromDecimalReader) NextBatch(output *LongColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewDecimalColumnVector(batchSize, r.filePrecision, r.fileScale)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		d := r.scratch.Values[i]
		if r.target == Boolean {
			if d.Signum() == 0 {
				output.Values[i] = 0
			} else {
				output.Values[i] = 1
			}
			return
		}
		n, ok := downCastInteger(d.IntPart(), r.target)
		if !ok {
			output.SetNull(i)
			return
		}
		output.Values[i] = n
	})
	return nil
}

// integerFromStringReader implements Integer-family conversion from
// STRING/CHAR/VARCHAR: a strict base-10 parse, down-cast to the target
// width. Any parse failure nulls the slot.
type integerFromStringReader struct {
	baseConvertReader
	decoder BytesDecoder
	target  Category
	scratch *BytesColumnVector
}

func (r *integerFromStringReader) NextBatch(output *LongColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewBytesColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		n, ok := parseLong(string(r.scratch.Elements[i].Bytes()))
		if !ok {
			output.SetNull(i)
			return
		}
		if r.target == Boolean {
			output.Values[i] = boolFromInteger(n)
			return
		}
		dc, ok := downCastInteger(n, r.target)
		if !ok {
			output.SetNull(i)
			return
		}
		output.Values[i] = dc
	})
	return nil
}

// integerFromTimestampReader implements Integer-family conversion from
// TIMESTAMP: the instant is floored to whole seconds, then down-cast.
type integerFromTimestampReader struct {
	baseConvertReader
	decoder TimestampDecoder
	target  Category
	scratch *TimestampColumnVector
}

func (r *integerFromTimestampReader) NextBatch(output *LongColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewTimestampColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		secs := millisToSeconds(timestampToMillis(r.scratch.Values[i]))
		if r.target == Boolean {
			output.Values[i] = boolFromInteger(secs)
			return
		}
		n, ok := downCastInteger(secs, r.target)
		if !ok {
			output.SetNull(i)
			return
		}
		output.Values[i] = n
	})
	return nil
}
