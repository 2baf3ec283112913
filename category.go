package orc

// Category is the closed enumeration of logical column categories a Type can
// carry, primitive and complex alike.
type Category uint8

const (
	Boolean Category = iota
	Byte
	Short
	Int
	Long
	Float
	Double
	Decimal
	String
	Char
	Varchar
	Binary
	Date
	Timestamp
	Struct
	List
	Map
	Union
)

func (c Category) String() string {
	switch c {
	case Boolean:
		return "BOOLEAN"
	case Byte:
		return "BYTE"
	case Short:
		return "SHORT"
	case Int:
		return "INT"
	case Long:
		return "LONG"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case Decimal:
		return "DECIMAL"
	case String:
		return "STRING"
	case Char:
		return "CHAR"
	case Varchar:
		return "VARCHAR"
	case Binary:
		return "BINARY"
	case Date:
		return "DATE"
	case Timestamp:
		return "TIMESTAMP"
	case Struct:
		return "STRUCT"
	case List:
		return "LIST"
	case Map:
		return "MAP"
	case Union:
		return "UNION"
	default:
		return "UNKNOWN"
	}
}

// IsComplex reports whether the category is one of the container types the
// conversion layer explicitly refuses to convert.
func (c Category) IsComplex() bool {
	switch c {
	case Struct, List, Map, Union:
		return true
	default:
		return false
	}
}

// IsStringGroup reports whether the category belongs to the STRING/CHAR/
// VARCHAR family that shares byte storage but differs in trim/truncate
// semantics.
func (c Category) IsStringGroup() bool {
	switch c {
	case String, Char, Varchar:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether the category is one of the scalar numeric kinds
// used by the convertibility matrix.
func (c Category) IsNumeric() bool {
	switch c {
	case Boolean, Byte, Short, Int, Long, Float, Double, Decimal:
		return true
	default:
		return false
	}
}

// rank orders the numeric categories BOOLEAN < BYTE < ... < DECIMAL. The
// integer conversion readers do not consult it: downCastInteger range-checks
// every value against the target's width, which leaves widening conversions
// unchanged. It is a compile-time constant indexed by Category's
// discriminant, deliberately not a mutable map built at init time.
var rank = [...]int8{
	Boolean: 0,
	Byte:    1,
	Short:   2,
	Int:     3,
	Long:    4,
	Float:   5,
	Double:  6,
	Decimal: 7,
}

// Rank returns the numeric rank of c, or -1 if c is not one of the ranked
// numeric categories.
func Rank(c Category) int {
	if int(c) >= len(rank) {
		return -1
	}
	return int(rank[c])
}
