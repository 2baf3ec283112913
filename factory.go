package orc

import "github.com/rs/zerolog/log"

// CreateConvertReader consults ctx.SchemaEvolution to find the on-disk type
// backing readerColumnID, then dispatches to one of seven sub-factories by
// that file type's category, each of which dispatches again on the reader
// type's category. decoder must implement the decoder interface the chosen
// kernel needs (LongDecoder, DoubleDecoder, BytesDecoder, DecimalDecoder or
// TimestampDecoder) — a mismatch is reported as an UnsupportedConversionError
// rather than a panic, since it is still a caller programming error, just
// one this layer can observe directly.
func CreateConvertReader(readerColumnID int, readerType Type, decoder StreamDecoder, ctx *Context) (ConvertReader, error) {
	fileType := ctx.SchemaEvolution.FileType(readerColumnID)

	if fileType.Category().IsComplex() || readerType.Category().IsComplex() {
		return nil, &UnsupportedConversionError{
			FileType:   fileType,
			ReaderType: readerType,
			Reason:     "complex types are not convertible by this layer",
		}
	}

	log.Debug().
		Int("reader_column_id", readerColumnID).
		Str("file_type", fileType.String()).
		Str("reader_type", readerType.String()).
		Msg("orc: dispatching conversion reader")

	switch fileType.Category() {
	case Boolean, Byte, Short, Int, Long:
		return createFromInteger(fileType, readerType, decoder)
	case Float, Double:
		return createFromFloat(fileType, readerType, decoder)
	case Decimal:
		return createFromDecimal(fileType, readerType, decoder)
	case String, Char, Varchar:
		return createFromString(fileType, readerType, decoder)
	case Timestamp:
		return createFromTimestamp(fileType, readerType, decoder)
	case Date:
		return createFromDate(fileType, readerType, decoder)
	case Binary:
		return createFromBinary(fileType, readerType, decoder)
	default:
		return nil, &UnsupportedConversionError{fileType, readerType, "unrecognized file type category"}
	}
}

func badDecoder(fileType, readerType Type, want string) error {
	return &UnsupportedConversionError{fileType, readerType, "decoder does not implement " + want}
}

func createFromInteger(fileType, readerType Type, decoder StreamDecoder) (ConvertReader, error) {
	fileCategory := fileType.Category()
	switch readerType.Category() {
	case Boolean, Byte, Short, Int, Long:
		if typesAreEqual(fileType, readerType) {
			return nil, &NoConversionNeededError{fileType}
		}
		d, ok := decoder.(LongDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "LongDecoder")
		}
		return &integerFromIntegerReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d, target: readerType.Category()}, nil
	case Float, Double:
		d, ok := decoder.(LongDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "LongDecoder")
		}
		return &doubleFromIntegerReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d, isFloat: readerType.Category() == Float}, nil
	case Decimal:
		d, ok := decoder.(LongDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "LongDecoder")
		}
		return &decimalFromIntegerReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	case String, Char, Varchar:
		d, ok := decoder.(LongDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "LongDecoder")
		}
		return &stringFromIntegerReader{
			baseConvertReader: baseConvertReader{decoder: d},
			decoder:           d,
			fileCategory:      fileCategory,
			target:            readerType.Category(),
			maxLength:         readerType.MaxLength(),
		}, nil
	case Timestamp:
		d, ok := decoder.(LongDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "LongDecoder")
		}
		return &timestampFromIntegerReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	default:
		return nil, &UnsupportedConversionError{fileType, readerType, "numeric source cannot convert to BINARY or DATE"}
	}
}

func createFromFloat(fileType, readerType Type, decoder StreamDecoder) (ConvertReader, error) {
	switch readerType.Category() {
	case Boolean, Byte, Short, Int, Long:
		d, ok := decoder.(DoubleDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "DoubleDecoder")
		}
		return &integerFromDoubleReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d, target: readerType.Category()}, nil
	case Float, Double:
		if typesAreEqual(fileType, readerType) {
			return nil, &NoConversionNeededError{fileType}
		}
		d, ok := decoder.(DoubleDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "DoubleDecoder")
		}
		if fileType.Category() == Double && readerType.Category() == Float {
			return &floatFromDoubleReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
		}
		return &doubleWideningReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	case Decimal:
		d, ok := decoder.(DoubleDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "DoubleDecoder")
		}
		return &decimalFromDoubleReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	case String, Char, Varchar:
		d, ok := decoder.(DoubleDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "DoubleDecoder")
		}
		return &stringFromDoubleReader{
			baseConvertReader: baseConvertReader{decoder: d},
			decoder:           d,
			target:            readerType.Category(),
			maxLength:         readerType.MaxLength(),
		}, nil
	case Timestamp:
		d, ok := decoder.(DoubleDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "DoubleDecoder")
		}
		return &timestampFromDoubleReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	default:
		return nil, &UnsupportedConversionError{fileType, readerType, "float/double source cannot convert to BINARY or DATE"}
	}
}

func createFromDecimal(fileType, readerType Type, decoder StreamDecoder) (ConvertReader, error) {
	filePrecision, fileScale := fileType.Precision(), fileType.Scale()
	switch readerType.Category() {
	case Boolean, Byte, Short, Int, Long:
		d, ok := decoder.(DecimalDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "DecimalDecoder")
		}
		return &integerFromDecimalReader{
			baseConvertReader: baseConvertReader{decoder: d},
			decoder:           d,
			target:            readerType.Category(),
			filePrecision:     filePrecision,
			fileScale:         fileScale,
		}, nil
	case Float, Double:
		d, ok := decoder.(DecimalDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "DecimalDecoder")
		}
		return &doubleFromDecimalReader{
			baseConvertReader: baseConvertReader{decoder: d},
			decoder:           d,
			isFloat:           readerType.Category() == Float,
			filePrecision:     filePrecision,
			fileScale:         fileScale,
		}, nil
	case Decimal:
		if typesAreEqual(fileType, readerType) {
			return nil, &NoConversionNeededError{fileType}
		}
		d, ok := decoder.(DecimalDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "DecimalDecoder")
		}
		return &decimalFromDecimalReader{
			baseConvertReader: baseConvertReader{decoder: d},
			decoder:           d,
			filePrecision:     filePrecision,
			fileScale:         fileScale,
		}, nil
	case String, Char, Varchar:
		d, ok := decoder.(DecimalDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "DecimalDecoder")
		}
		return &stringFromDecimalReader{
			baseConvertReader: baseConvertReader{decoder: d},
			decoder:           d,
			target:            readerType.Category(),
			maxLength:         readerType.MaxLength(),
			filePrecision:     filePrecision,
			fileScale:         fileScale,
		}, nil
	case Timestamp:
		d, ok := decoder.(DecimalDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "DecimalDecoder")
		}
		return &timestampFromDecimalReader{
			baseConvertReader: baseConvertReader{decoder: d},
			decoder:           d,
			filePrecision:     filePrecision,
			fileScale:         fileScale,
		}, nil
	default:
		return nil, &UnsupportedConversionError{fileType, readerType, "numeric source cannot convert to BINARY or DATE"}
	}
}

func createFromString(fileType, readerType Type, decoder StreamDecoder) (ConvertReader, error) {
	switch readerType.Category() {
	case Boolean, Byte, Short, Int, Long:
		d, ok := decoder.(BytesDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "BytesDecoder")
		}
		return &integerFromStringReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d, target: readerType.Category()}, nil
	case Float, Double:
		d, ok := decoder.(BytesDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "BytesDecoder")
		}
		return &doubleFromStringReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d, isFloat: readerType.Category() == Float}, nil
	case Decimal:
		d, ok := decoder.(BytesDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "BytesDecoder")
		}
		return &decimalFromStringReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	case String, Char, Varchar:
		if typesAreEqual(fileType, readerType) {
			return nil, &NoConversionNeededError{fileType}
		}
		d, ok := decoder.(BytesDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "BytesDecoder")
		}
		return &stringFromStringReader{
			baseConvertReader: baseConvertReader{decoder: d},
			decoder:           d,
			target:            readerType.Category(),
			maxLength:         readerType.MaxLength(),
		}, nil
	case Timestamp:
		d, ok := decoder.(BytesDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "BytesDecoder")
		}
		return &timestampFromStringReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	case Date:
		d, ok := decoder.(BytesDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "BytesDecoder")
		}
		return &dateFromStringReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	case Binary:
		d, ok := decoder.(BytesDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "BytesDecoder")
		}
		return &binaryFromStringReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	default:
		return nil, &UnsupportedConversionError{fileType, readerType, "string-group source cannot convert to this target"}
	}
}

func createFromTimestamp(fileType, readerType Type, decoder StreamDecoder) (ConvertReader, error) {
	switch readerType.Category() {
	case Boolean, Byte, Short, Int, Long:
		d, ok := decoder.(TimestampDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "TimestampDecoder")
		}
		return &integerFromTimestampReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d, target: readerType.Category()}, nil
	case Float, Double:
		d, ok := decoder.(TimestampDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "TimestampDecoder")
		}
		return &doubleFromTimestampReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d, isFloat: readerType.Category() == Float}, nil
	case Decimal:
		d, ok := decoder.(TimestampDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "TimestampDecoder")
		}
		return &decimalFromTimestampReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	case String, Char, Varchar:
		d, ok := decoder.(TimestampDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "TimestampDecoder")
		}
		return &stringFromTimestampReader{
			baseConvertReader: baseConvertReader{decoder: d},
			decoder:           d,
			target:            readerType.Category(),
			maxLength:         readerType.MaxLength(),
		}, nil
	case Date:
		d, ok := decoder.(TimestampDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "TimestampDecoder")
		}
		return &dateFromTimestampReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	case Timestamp:
		return nil, &NoConversionNeededError{fileType}
	default:
		return nil, &UnsupportedConversionError{fileType, readerType, "timestamp source cannot convert to BINARY"}
	}
}

func createFromDate(fileType, readerType Type, decoder StreamDecoder) (ConvertReader, error) {
	switch readerType.Category() {
	case String, Char, Varchar:
		d, ok := decoder.(LongDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "LongDecoder")
		}
		return &stringFromDateReader{
			baseConvertReader: baseConvertReader{decoder: d},
			decoder:           d,
			target:            readerType.Category(),
			maxLength:         readerType.MaxLength(),
		}, nil
	case Timestamp:
		d, ok := decoder.(LongDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "LongDecoder")
		}
		return &timestampFromDateReader{baseConvertReader: baseConvertReader{decoder: d}, decoder: d}, nil
	case Date:
		return nil, &NoConversionNeededError{fileType}
	default:
		return nil, &UnsupportedConversionError{fileType, readerType, "date source only converts to STRING/CHAR/VARCHAR/TIMESTAMP"}
	}
}

func createFromBinary(fileType, readerType Type, decoder StreamDecoder) (ConvertReader, error) {
	switch readerType.Category() {
	case String, Char, Varchar:
		d, ok := decoder.(BytesDecoder)
		if !ok {
			return nil, badDecoder(fileType, readerType, "BytesDecoder")
		}
		return &stringFromBinaryReader{
			baseConvertReader: baseConvertReader{decoder: d},
			decoder:           d,
			target:            readerType.Category(),
			maxLength:         readerType.MaxLength(),
		}, nil
	case Binary:
		return nil, &NoConversionNeededError{fileType}
	default:
		return nil, &UnsupportedConversionError{fileType, readerType, "binary source only converts to STRING/CHAR/VARCHAR"}
	}
}
