package orc

// dateFromStringReader implements DATE conversion from STRING/CHAR/VARCHAR:
// a strict YYYY-MM-DD parse, null on failure. DATE values are stored as a
// day count in a LONG-shaped vector.
type dateFromStringReader struct {
	baseConvertReader
	decoder BytesDecoder
	scratch *BytesColumnVector
}

func (r *dateFromStringReader) NextBatch(output *LongColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewBytesColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		days, ok := parseDate(string(r.scratch.Elements[i].Bytes()))
		if !ok {
			output.SetNull(i)
			return
		}
		output.Values[i] = days
	})
	return nil
}

// dateFromTimestampReader implements DATE conversion from TIMESTAMP: the
// instant floors to a whole day count since the epoch.
type dateFromTimestampReader struct {
	baseConvertReader
	decoder TimestampDecoder
	scratch *TimestampColumnVector
}

func (r *dateFromTimestampReader) NextBatch(output *LongColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewTimestampColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		output.Values[i] = millisToDays(timestampToMillis(r.scratch.Values[i]))
	})
	return nil
}
