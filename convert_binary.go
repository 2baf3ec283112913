package orc

// binaryFromStringReader implements BINARY conversion from STRING: the
// underlying string decoder already produces raw bytes, so the conversion
// is a trivial copy with no reinterpretation. No other source category
// converts to BINARY.
type binaryFromStringReader struct {
	baseConvertReader
	decoder BytesDecoder
	scratch *BytesColumnVector
}

func (r *binaryFromStringReader) NextBatch(output *BytesColumnVector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewBytesColumnVector(batchSize)
	}
	r.scratch.ensure(batchSize)
	if err := r.decoder.NextBatch(r.scratch, batchSize); err != nil {
		return err
	}
	output.ensure(batchSize)
	convertVector(r.scratch.NoNulls, r.scratch.IsRepeating, r.scratch.IsNull, &output.ColumnVector, batchSize, func(i int) {
		output.SetBytes(i, r.scratch.Elements[i].Bytes())
	})
	return nil
}
