package orc

// doubleFromIntegerReader implements FLOAT/DOUBLE conversion from an
// integer-family file column: a plain widening cast to float64. When the
// reader requested FLOAT, the value is additionally narrowed to float32
// precision and widened back, matching the FLOAT vector's storage.
type doubleFromIntegerReader struct {
	baseConvertReader
	decoder LongDecoder
	isFloat bool
	scratch *LongColumnVector
}

func (r *doubleFromIntegerReader) NextBatch(output *DoubleColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewLongColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		v := float64(r.scratch.Values[i])
		output.Values[i] = narrowIfFloat(v, r.isFloat)
	})
	return nil
}

// doubleFromDecimalReader implements FLOAT/DOUBLE conversion from DECIMAL
// via the decimal's nearest float64 representation.
type doubleFromDecimalReader struct {
	baseConvertReader
	decoder       DecimalDecoder
	isFloat       bool
	filePrecision int
	fileScale     int
	scratch       *DecimalColumnVector
}

func (r *doubleFromDecimalReader) NextBatch(output *DoubleColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewDecimalColumnVector(batchSize, r.filePrecision, r.fileScale)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		output.Values[i] = narrowIfFloat(r.scratch.Values[i].Float64(), r.isFloat)
	})
	return nil
}

// doubleFromStringReader implements FLOAT/DOUBLE conversion from
// STRING/CHAR/VARCHAR: a strict parse accepting signed, decimal, scientific
// notation, and the literals NaN/Infinity. Parse failure nulls the slot.
type doubleFromStringReader struct {
	baseConvertReader
	decoder BytesDecoder
	isFloat bool
	scratch *BytesColumnVector
}

func (r *doubleFromStringReader) NextBatch(output *DoubleColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewBytesColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		v, ok := parseDouble(string(r.scratch.Elements[i].Bytes()))
		if !ok {
			output.SetNull(i)
			return
		}
		output.Values[i] = narrowIfFloat(v, r.isFloat)
	})
	return nil
}

// doubleFromTimestampReader implements FLOAT/DOUBLE conversion from
// TIMESTAMP: seconds since the epoch as a float64, including fractional
// nanoseconds.
type doubleFromTimestampReader struct {
	baseConvertReader
	decoder TimestampDecoder
	isFloat bool
	scratch *TimestampColumnVector
}

func (r *doubleFromTimestampReader) NextBatch(output *DoubleColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewTimestampColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		output.Values[i] = narrowIfFloat(timestampToDouble(r.scratch.Values[i]), r.isFloat)
	})
	return nil
}

// floatFromDoubleReader implements FLOAT conversion from a DOUBLE file
// column: each value narrows to float32 precision (round to nearest even)
// and widens back. Magnitudes beyond float32 range saturate to signed
// infinity rather than nulling.
type floatFromDoubleReader struct {
	baseConvertReader
	decoder DoubleDecoder
	scratch *DoubleColumnVector
}

func (r *floatFromDoubleReader) NextBatch(output *DoubleColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewDoubleColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		output.Values[i] = float64(float32(r.scratch.Values[i]))
	})
	return nil
}

// doubleWideningReader implements DOUBLE conversion from a FLOAT file
// column: the stored value is already a float64 rounded through float32, so
// widening to DOUBLE is a verbatim copy.
type doubleWideningReader struct {
	baseConvertReader
	decoder DoubleDecoder
	scratch *DoubleColumnVector
}

func (r *doubleWideningReader) NextBatch(output *DoubleColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewDoubleColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		output.Values[i] = r.scratch.Values[i]
	})
	return nil
}

// narrowIfFloat optionally round-trips v through float32, the storage width
// of the FLOAT category; DOUBLE passes v through unchanged.
func narrowIfFloat(v float64, isFloat bool) float64 {
	if isFloat {
		return float64(float32(v))
	}
	return v
}
