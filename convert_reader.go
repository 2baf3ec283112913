package orc

// ConvertReader is the common capability every conversion reader offers: the
// pass-through stripe/stream lifecycle. The batch-filling half of the
// contract is split by output vector shape (see LongConvertReader,
// DoubleConvertReader, and friends below) since Go has no single "fill this
// batch" signature that covers every vector type. A caller that invoked
// CreateConvertReader already knows the reader type it asked for, and so
// knows which of these narrower interfaces to assert the result to.
type ConvertReader interface {
	StreamDecoder
}

type (
	LongConvertReader interface {
		ConvertReader
		NextBatch(output *LongColumnVector, batchSize int) error
	}
	DoubleConvertReader interface {
		ConvertReader
		NextBatch(output *DoubleColumnVector, batchSize int) error
	}
	BytesConvertReader interface {
		ConvertReader
		NextBatch(output *BytesColumnVector, batchSize int) error
	}
	TimestampConvertReader interface {
		ConvertReader
		NextBatch(output *TimestampColumnVector, batchSize int) error
	}
	DecimalConvertReader interface {
		ConvertReader
		NextBatch(output DecimalSink, batchSize int) error
	}
)

// baseConvertReader implements the pass-through lifecycle every conversion
// reader forwards unchanged to the decoder it wraps.
type baseConvertReader struct {
	decoder StreamDecoder
}

func (r *baseConvertReader) CheckEncoding(e ColumnEncoding) error {
	return r.decoder.CheckEncoding(e)
}

func (r *baseConvertReader) StartStripe(s StreamSet, f StripeFooter) error {
	return r.decoder.StartStripe(s, f)
}

func (r *baseConvertReader) Seek(p PositionProvider) error {
	return r.decoder.Seek(p)
}

func (r *baseConvertReader) SkipRows(n int64) error {
	return r.decoder.SkipRows(n)
}
