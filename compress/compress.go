// Package compress provides the generic codec interface that the conversion
// layer's Context carries through to the underlying stripe decoder.
//
// The conversion layer never calls Encode/Decode itself: compression is an
// external collaborator. This package exists so that Context can hold a
// concrete, typed codec handle selected by the surrounding file reader
// instead of an untyped interface{}.
package compress

import (
	"bytes"
	"io"
	"sync"
)

// Kind identifies a compression codec by the code the file format would
// store it under. It carries no behavior of its own.
type Kind uint8

const (
	None Kind = iota
	Snappy
	Gzip
	Zstd
	Lz4
	Brotli
)

func (k Kind) String() string {
	switch k {
	case None:
		return "NONE"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case Zstd:
		return "ZSTD"
	case Lz4:
		return "LZ4"
	case Brotli:
		return "BROTLI"
	default:
		return "UNKNOWN"
	}
}

// Codec is implemented by the compress sub-packages. Codec instances must be
// safe to use concurrently from multiple goroutines.
type Codec interface {
	// Kind returns the codec's identity.
	Kind() Kind

	NewReader(r io.Reader) (Reader, error)
	NewWriter(w io.Writer) (Writer, error)
}

type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}

type Writer interface {
	io.WriteCloser
	Reset(io.Writer) error
}

// Compressor and Decompressor are reusable across calls through a sync.Pool,
// matching the pattern the sub-packages are built on.
type Compressor struct {
	writers sync.Pool
}

func (c *Compressor) Encode(dst, src []byte, newWriter func(io.Writer) (Writer, error)) ([]byte, error) {
	output := bytes.NewBuffer(dst[:0])

	w, _ := c.writers.Get().(Writer)
	if w != nil {
		w.Reset(output)
	} else {
		var err error
		if w, err = newWriter(output); err != nil {
			return dst, err
		}
	}
	defer c.writers.Put(w)
	defer w.Reset(io.Discard)

	if _, err := w.Write(src); err != nil {
		return output.Bytes(), err
	}
	if err := w.Close(); err != nil {
		return output.Bytes(), err
	}
	return output.Bytes(), nil
}

type Decompressor struct {
	readers sync.Pool
}

func (d *Decompressor) Decode(dst, src []byte, newReader func(io.Reader) (Reader, error)) ([]byte, error) {
	input := bytes.NewReader(src)

	r, _ := d.readers.Get().(Reader)
	if r != nil {
		if err := r.Reset(input); err != nil {
			return dst, err
		}
	} else {
		var err error
		if r, err = newReader(input); err != nil {
			return dst, err
		}
	}

	defer func() {
		if err := r.Reset(nil); err == nil {
			d.readers.Put(r)
		}
	}()

	output := bytes.NewBuffer(dst[:0])
	_, err := output.ReadFrom(r)
	return output.Bytes(), err
}
