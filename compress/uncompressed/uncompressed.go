// Package uncompressed implements the no-op compress.Codec.
package uncompressed

import (
	"io"

	"github.com/oudp/orc-go/compress"
)

type Codec struct{}

func (c *Codec) Kind() compress.Kind {
	return compress.None
}

func (c *Codec) NewReader(r io.Reader) (compress.Reader, error) {
	return &reader{r}, nil
}

func (c *Codec) NewWriter(w io.Writer) (compress.Writer, error) {
	return &writer{w}, nil
}

type reader struct{ io.Reader }

func (r *reader) Close() error             { return nil }
func (r *reader) Reset(rr io.Reader) error { r.Reader = rr; return nil }

type writer struct{ io.Writer }

func (w *writer) Close() error             { return nil }
func (w *writer) Reset(ww io.Writer) error { w.Writer = ww; return nil }
