package orc

// CanConvert mirrors CreateConvertReader's support matrix without
// allocating a reader: false for any complex type on either side, false
// when fileType and readerType already name the same conversion (the
// factory would reject that as "no conversion needed"), and otherwise
// following the disallowed-pair table by file category.
func CanConvert(fileType, readerType Type) bool {
	if fileType.Category().IsComplex() || readerType.Category().IsComplex() {
		return false
	}
	if typesAreEqual(fileType, readerType) {
		return false
	}

	fc, rc := fileType.Category(), readerType.Category()
	switch {
	case fc.IsNumeric():
		return rc != Binary && rc != Date
	case fc == Timestamp:
		return rc != Binary
	case fc == Date:
		switch rc {
		case String, Char, Varchar, Timestamp, Date:
			return true
		default:
			return false
		}
	case fc == Binary:
		switch rc {
		case String, Char, Varchar, Binary:
			return true
		default:
			return false
		}
	case fc.IsStringGroup():
		return true
	default:
		return false
	}
}
