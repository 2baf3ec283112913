package orc

// timestampFromIntegerReader implements TIMESTAMP conversion from an
// integer-family file column: the i64 is treated as milliseconds since the
// epoch.
type timestampFromIntegerReader struct {
	baseConvertReader
	decoder LongDecoder
	scratch *LongColumnVector
}

func (r *timestampFromIntegerReader) NextBatch(output *TimestampColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewLongColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		output.Values[i] = millisToTimestamp(r.scratch.Values[i])
	})
	return nil
}

// timestampFromDoubleReader implements TIMESTAMP conversion from FLOAT/
// DOUBLE: integer part as seconds, fractional part as nanoseconds. Non
// finite input nulls the slot.
type timestampFromDoubleReader struct {
	baseConvertReader
	decoder DoubleDecoder
	scratch *DoubleColumnVector
}

func (r *timestampFromDoubleReader) NextBatch(output *TimestampColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewDoubleColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		t, ok := doubleToTimestamp(r.scratch.Values[i])
		if !ok {
			output.SetNull(i)
			return
		}
		output.Values[i] = t
	})
	return nil
}

// timestampFromDecimalReader implements TIMESTAMP conversion from DECIMAL,
// derived from the decimal value treated as seconds since the epoch.
type timestampFromDecimalReader struct {
	baseConvertReader
	decoder       DecimalDecoder
	filePrecision int
	fileScale     int
	scratch       *DecimalColumnVector
}

func (r *timestampFromDecimalReader) NextBatch(output *TimestampColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewDecimalColumnVector(batchSize, r.filePrecision, r.fileScale)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		t, ok := decimalToTimestamp(r.scratch.Values[i])
		if !ok {
			output.SetNull(i)
			return
		}
		output.Values[i] = t
	})
	return nil
}

// timestampFromStringReader implements TIMESTAMP conversion from STRING/
// CHAR/VARCHAR: a strict ISO-ish parse; null on failure.
type timestampFromStringReader struct {
	baseConvertReader
	decoder BytesDecoder
	scratch *BytesColumnVector
}

func (r *timestampFromStringReader) NextBatch(output *TimestampColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewBytesColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		t, ok := parseTimestamp(string(r.scratch.Elements[i].Bytes()))
		if !ok {
			output.SetNull(i)
			return
		}
		output.Values[i] = t
	})
	return nil
}

// timestampFromDateReader implements TIMESTAMP conversion from DATE (a day
// count stored in a LONG-shaped vector): midnight of that day, in UTC.
type timestampFromDateReader struct {
	baseConvertReader
	decoder LongDecoder
	scratch *LongColumnVector
}

func (r *timestampFromDateReader) NextBatch(output *TimestampColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewLongColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		output.Values[i] = millisToTimestamp(daysToMillis(r.scratch.Values[i]))
	})
	return nil
}
