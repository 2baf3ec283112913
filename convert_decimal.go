package orc

// decimalFromIntegerReader implements DECIMAL conversion from an
// integer-family file column: the integer becomes a scale-0 decimal, then
// the sink enforces the target precision/scale, nulling on overflow.
type decimalFromIntegerReader struct {
	baseConvertReader
	decoder LongDecoder
	scratch *LongColumnVector
}

func (r *decimalFromIntegerReader) NextBatch(output DecimalSink, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewLongColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, output.base(), batchSize, func(i int) {
		output.Set(i, NewDecimalFromInt64(r.scratch.Values[i]))
	})
	return nil
}

// decimalFromDoubleReader implements DECIMAL conversion from FLOAT/DOUBLE:
// the double is formatted through its canonical decimal string
// representation and re-parsed, nulling on NaN/Inf or parse failure.
type decimalFromDoubleReader struct {
	baseConvertReader
	decoder DoubleDecoder
	scratch *DoubleColumnVector
}

func (r *decimalFromDoubleReader) NextBatch(output DecimalSink, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewDoubleColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, output.base(), batchSize, func(i int) {
		s, ok := DoubleToDecimalString(r.scratch.Values[i])
		if !ok {
			output.SetNull(i)
			return
		}
		d, ok := ParseDecimal(s)
		if !ok {
			output.SetNull(i)
			return
		}
		output.Set(i, d)
	})
	return nil
}

// decimalFromStringReader implements DECIMAL conversion from
// STRING/CHAR/VARCHAR: a strict decimal parse, null on failure.
type decimalFromStringReader struct {
	baseConvertReader
	decoder BytesDecoder
	scratch *BytesColumnVector
}

func (r *decimalFromStringReader) NextBatch(output DecimalSink, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewBytesColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, output.base(), batchSize, func(i int) {
		d, ok := ParseDecimal(string(r.scratch.Elements[i].Bytes()))
		if !ok {
			output.SetNull(i)
			return
		}
		output.Set(i, d)
	})
	return nil
}

// decimalFromTimestampReader implements DECIMAL conversion from TIMESTAMP:
// same path as Decimal-from-Double, derived from the instant's seconds.
type decimalFromTimestampReader struct {
	baseConvertReader
	decoder TimestampDecoder
	scratch *TimestampColumnVector
}

func (r *decimalFromTimestampReader) NextBatch(output DecimalSink, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewTimestampColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, output.base(), batchSize, func(i int) {
		s, ok := DoubleToDecimalString(timestampToDouble(r.scratch.Values[i]))
		if !ok {
			output.SetNull(i)
			return
		}
		d, ok := ParseDecimal(s)
		if !ok {
			output.SetNull(i)
			return
		}
		output.Set(i, d)
	})
	return nil
}

// decimalFromDecimalReader implements DECIMAL-to-DECIMAL rescaling when the
// file and reader decimal types differ in precision or scale; the sink
// enforces the new bounds, nulling on overflow.
type decimalFromDecimalReader struct {
	baseConvertReader
	decoder       DecimalDecoder
	filePrecision int
	fileScale     int
	scratch       *DecimalColumnVector
}

func (r *decimalFromDecimalReader) NextBatch(output DecimalSink, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewDecimalColumnVector(batchSize, r.filePrecision, r.fileScale)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, output.base(), batchSize, func(i int) {
		output.Set(i, r.scratch.Values[i])
	})
	return nil
}
