package orc

// The types below model the stripe/stream plumbing the conversion layer
// forwards unchanged. The conversion layer never inspects their contents;
// it only passes them through to the wrapped decoder, so they are kept
// intentionally thin here — the real definitions belong to the surrounding
// file reader, an external collaborator.
type (
	ColumnEncoding  struct{ Kind int }
	StreamSet       struct{}
	StripeFooter    struct{}
	PositionProvider struct{ Positions []int64 }
)

// StreamDecoder is the pass-through lifecycle contract every primitive
// decoder implements, and that every ConvertReader forwards unchanged to
// the decoder it wraps.
type StreamDecoder interface {
	CheckEncoding(encoding ColumnEncoding) error
	StartStripe(streams StreamSet, footer StripeFooter) error
	Seek(positions PositionProvider) error
	SkipRows(n int64) error
}

// The NextBatch side of the decoder contract is split by the vector shape
// it fills, since Go has no covariant "batch" type to share a single
// signature across storage shapes.
type (
	LongDecoder interface {
		StreamDecoder
		NextBatch(output *LongColumnVector, batchSize int) error
	}
	DoubleDecoder interface {
		StreamDecoder
		NextBatch(output *DoubleColumnVector, batchSize int) error
	}
	BytesDecoder interface {
		StreamDecoder
		NextBatch(output *BytesColumnVector, batchSize int) error
	}
	DecimalDecoder interface {
		StreamDecoder
		NextBatch(output *DecimalColumnVector, batchSize int) error
	}
	Decimal64Decoder interface {
		StreamDecoder
		NextBatch(output *Decimal64ColumnVector, batchSize int) error
	}
	TimestampDecoder interface {
		StreamDecoder
		NextBatch(output *TimestampColumnVector, batchSize int) error
	}
)

// SchemaEvolution maps a reader column id to the type it is actually stored
// as in the file. It is an external collaborator the conversion layer only
// consults at construction time.
type SchemaEvolution interface {
	FileType(readerColumnID int) Type
}
