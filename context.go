package orc

import "github.com/oudp/orc-go/compress"

const (
	// DefaultBatchSize is the BatchSize a Context carries when the caller
	// doesn't override it.
	DefaultBatchSize = 1024
)

// Context carries the decoder construction parameters shared across a
// stripe read: the schema-evolution map, the compression codec, and the
// use-UTC / Decimal64-preference flags. The conversion layer never acts on
// Compression, UseUTC, PreferDecimal64 or BatchSize itself — they are
// settings for the primitive decoder this layer wraps and for the
// surrounding reader, and Context only threads them through; see
// WithUseUTC, WithCompression, WithPreferDecimal64 and WithBatchSize.
type Context struct {
	SchemaEvolution SchemaEvolution
	Compression     compress.Codec
	UseUTC          bool
	PreferDecimal64 bool
	BatchSize       int
}

// ContextOption configures a Context, following the functional-options
// pattern used elsewhere in this module's configuration types.
type ContextOption func(*Context)

// NewContext builds a Context from the given options, defaulting BatchSize
// to DefaultBatchSize when unset.
func NewContext(schemaEvolution SchemaEvolution, options ...ContextOption) *Context {
	c := &Context{
		SchemaEvolution: schemaEvolution,
		BatchSize:       DefaultBatchSize,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// WithCompression sets the compression codec handle carried through to the
// wrapped decoder.
func WithCompression(codec compress.Codec) ContextOption {
	return func(c *Context) { c.Compression = codec }
}

// WithUseUTC sets the use-UTC flag passed through to the primitive
// timestamp decoder this layer wraps. The conversion layer's own
// STRING<->TIMESTAMP kernels (parseTimestamp/formatTimestamp in scalar.go)
// always operate in UTC regardless of this setting — timestamp
// localization is out of scope for this layer — so toggling it changes
// only what the wrapped decoder does before this layer ever sees a value,
// the same external-collaborator pass-through WithCompression provides for
// Compression.
func WithUseUTC(useUTC bool) ContextOption {
	return func(c *Context) { c.UseUTC = useUTC }
}

// WithPreferDecimal64 sets the flag saying whether DECIMAL columns of
// precision <= 18 are to be backed by the packed Decimal64ColumnVector
// rather than DecimalColumnVector. This layer does not read it: the decimal
// conversion readers write into whichever DecimalSink the caller passes.
func WithPreferDecimal64(prefer bool) ContextOption {
	return func(c *Context) { c.PreferDecimal64 = prefer }
}

// WithBatchSize overrides the batch-size hint the Context carries. The
// conversion readers do not read it: each allocates its scratch vector on
// the first NextBatch call, sized to that call's batchSize.
func WithBatchSize(n int) ContextOption {
	return func(c *Context) { c.BatchSize = n }
}
