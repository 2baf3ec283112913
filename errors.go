package orc

import "fmt"

// UnsupportedConversionError is returned by CreateConvertReader when the
// (file type, reader type) pair is not in the support matrix — either
// because one side is a complex type, or because the pair is explicitly
// disallowed (e.g. DECIMAL to BINARY) — and also when the supplied decoder
// does not implement the decoder interface the chosen kernel needs.
//
// This is a static, unrecoverable failure raised at reader construction: a
// caller that hits it made a programming error by calling
// CreateConvertReader without first checking CanConvert.
type UnsupportedConversionError struct {
	FileType   Type
	ReaderType Type
	Reason     string
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("orc: unsupported conversion from %s to %s: %s", e.FileType, e.ReaderType, e.Reason)
}

// NoConversionNeededError is returned by CreateConvertReader when the file
// type and reader type are identical — the caller should not have invoked
// the conversion layer at all for that column.
type NoConversionNeededError struct {
	Type Type
}

func (e *NoConversionNeededError) Error() string {
	return fmt.Sprintf("orc: no conversion needed for %s", e.Type)
}
