package orc

// assignStringGroup applies the target category's trim/truncate rule to a
// freshly formatted value before it is stored: STRING passes bytes through
// unchanged, CHAR right-trims trailing spaces then truncates to maxLength
// UTF-8 code units, VARCHAR only truncates.
func assignStringGroup(target Category, maxLength int, b []byte) []byte {
	switch target {
	case Char:
		return truncateUTF8(trimTrailingSpaces(b), maxLength)
	case Varchar:
		return truncateUTF8(b, maxLength)
	default:
		return b
	}
}

// stringFromIntegerReader implements STRING/CHAR/VARCHAR conversion from an
// integer-family file column. A BOOLEAN source formats as the literal
// "TRUE"/"FALSE"; everything else formats as base-10 ASCII.
type stringFromIntegerReader struct {
	baseConvertReader
	decoder      LongDecoder
	fileCategory Category
	target       Category
	maxLength    int
	scratch      *LongColumnVector
}

func (r *stringFromIntegerReader) NextBatch(output *BytesColumnVector, batchSize int) error {
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
		var s string
		if r.fileCategory == Boolean {
			if v != 0 {
				s = "TRUE"
			} else {
				s = "FALSE"
			}
		} else {
			s = formatLong(v)
		}
		output.SetBytes(i, assignStringGroup(r.target, r.maxLength, []byte(s)))
	})
	return nil
}

// stringFromDoubleReader implements STRING/CHAR/VARCHAR conversion from
// FLOAT/DOUBLE: the canonical textual form; NaN has no representation and
// nulls the slot.
type stringFromDoubleReader struct {
	baseConvertReader
	decoder   DoubleDecoder
	target    Category
	maxLength int
	scratch   *DoubleColumnVector
}

func (r *stringFromDoubleReader) NextBatch(output *BytesColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewDoubleColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		s, ok := formatDouble(r.scratch.Values[i])
		if !ok {
			output.SetNull(i)
			return
		}
		output.SetBytes(i, assignStringGroup(r.target, r.maxLength, []byte(s)))
	})
	return nil
}

// stringFromDecimalReader implements STRING/CHAR/VARCHAR conversion from
// DECIMAL: the decimal's fixed-scale textual form.
type stringFromDecimalReader struct {
	baseConvertReader
	decoder       DecimalDecoder
	target        Category
	maxLength     int
	filePrecision int
	fileScale     int
	scratch       *DecimalColumnVector
}

func (r *stringFromDecimalReader) NextBatch(output *BytesColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewDecimalColumnVector(batchSize, r.filePrecision, r.fileScale)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		s := r.scratch.Values[i].StringFixed(int32(r.fileScale))
		output.SetBytes(i, assignStringGroup(r.target, r.maxLength, []byte(s)))
	})
	return nil
}

// stringFromTimestampReader implements STRING/CHAR/VARCHAR conversion from
// TIMESTAMP: the ISO-ish textual form of the instant.
type stringFromTimestampReader struct {
	baseConvertReader
	decoder   TimestampDecoder
	target    Category
	maxLength int
	scratch   *TimestampColumnVector
}

func (r *stringFromTimestampReader) NextBatch(output *BytesColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewTimestampColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		s := formatTimestamp(r.scratch.Values[i])
		output.SetBytes(i, assignStringGroup(r.target, r.maxLength, []byte(s)))
	})
	return nil
}

// stringFromDateReader implements STRING/CHAR/VARCHAR conversion from DATE
// (stored as a day count in a LONG-shaped vector): YYYY-MM-DD form.
type stringFromDateReader struct {
	baseConvertReader
	decoder   LongDecoder
	target    Category
	maxLength int
	scratch   *LongColumnVector
}

func (r *stringFromDateReader) NextBatch(output *BytesColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewLongColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		s := formatDate(r.scratch.Values[i])
		output.SetBytes(i, assignStringGroup(r.target, r.maxLength, []byte(s)))
	})
	return nil
}

// stringFromBinaryReader implements STRING/CHAR/VARCHAR conversion from
// BINARY: lowercase hex pairs separated by single spaces.
type stringFromBinaryReader struct {
	baseConvertReader
	decoder   BytesDecoder
	target    Category
	maxLength int
	scratch   *BytesColumnVector
}

func (r *stringFromBinaryReader) NextBatch(output *BytesColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewBytesColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		s := binaryToHexString(r.scratch.Elements[i].Bytes())
		output.SetBytes(i, assignStringGroup(r.target, r.maxLength, []byte(s)))
	})
	return nil
}

// stringFromStringReader implements conversion between the STRING/CHAR/
// VARCHAR categories themselves: the decoder already produced raw bytes,
// so this reader only re-applies the target's trim/truncate rule.
type stringFromStringReader struct {
	baseConvertReader
	decoder   BytesDecoder
	target    Category
	maxLength int
	scratch   *BytesColumnVector
}

func (r *stringFromStringReader) NextBatch(output *BytesColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewBytesColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		output.SetBytes(i, assignStringGroup(r.target, r.maxLength, r.scratch.Elements[i].Bytes()))
	})
	return nil
}
