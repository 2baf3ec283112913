package orc

import "fmt"

// Type describes a column's logical type: its Category plus the extra
// parameters CHAR/VARCHAR (MaxLength) and DECIMAL (Precision, Scale) carry.
type Type interface {
	// Category returns the type's category.
	Category() Category
	// MaxLength returns the CHAR/VARCHAR bounded width, or 0 for any other
	// category.
	MaxLength() int
	// Precision returns the DECIMAL precision, or 0 for any other category.
	Precision() int
	// Scale returns the DECIMAL scale, or 0 for any other category.
	Scale() int
	// String returns a human-readable rendering of the type, e.g.
	// "decimal(10,2)" or "varchar(255)".
	String() string
}

type primitiveType struct{ category Category }

func (t primitiveType) Category() Category { return t.category }
func (t primitiveType) MaxLength() int     { return 0 }
func (t primitiveType) Precision() int     { return 0 }
func (t primitiveType) Scale() int         { return 0 }
func (t primitiveType) String() string     { return t.category.String() }

var (
	booleanType   Type = primitiveType{Boolean}
	byteType      Type = primitiveType{Byte}
	shortType     Type = primitiveType{Short}
	intType       Type = primitiveType{Int}
	longType      Type = primitiveType{Long}
	floatType     Type = primitiveType{Float}
	doubleType    Type = primitiveType{Double}
	stringType    Type = primitiveType{String}
	binaryType    Type = primitiveType{Binary}
	dateType      Type = primitiveType{Date}
	timestampType Type = primitiveType{Timestamp}
)

// BooleanType, ByteType, ... return the shared Type value for their
// respective category; these categories carry no extra parameters so a
// single immutable instance suffices.
func BooleanType() Type   { return booleanType }
func ByteType() Type      { return byteType }
func ShortType() Type     { return shortType }
func IntType() Type       { return intType }
func LongType() Type      { return longType }
func FloatType() Type     { return floatType }
func DoubleType() Type    { return doubleType }
func StringType() Type    { return stringType }
func BinaryType() Type    { return binaryType }
func DateType() Type      { return dateType }
func TimestampType() Type { return timestampType }

// MaxPrecision is the upper bound on DECIMAL precision.
const MaxPrecision = 38

type decimalType struct {
	precision int
	scale     int
}

func (t decimalType) Category() Category { return Decimal }
func (t decimalType) MaxLength() int      { return 0 }
func (t decimalType) Precision() int      { return t.precision }
func (t decimalType) Scale() int          { return t.scale }
func (t decimalType) String() string {
	return fmt.Sprintf("decimal(%d,%d)", t.precision, t.scale)
}

// DecimalType constructs a DECIMAL type with the given precision and scale.
// It panics if 1 <= precision <= 38 or 0 <= scale <= precision do not hold.
func DecimalType(precision, scale int) Type {
	if precision < 1 || precision > MaxPrecision {
		panic(fmt.Sprintf("orc: invalid decimal precision %d: must satisfy 1 <= precision <= %d", precision, MaxPrecision))
	}
	if scale < 0 || scale > precision {
		panic(fmt.Sprintf("orc: invalid decimal scale %d: must satisfy 0 <= scale <= %d", scale, precision))
	}
	return decimalType{precision: precision, scale: scale}
}

type charType struct {
	category  Category
	maxLength int
}

func (t charType) Category() Category { return t.category }
func (t charType) MaxLength() int     { return t.maxLength }
func (t charType) Precision() int     { return 0 }
func (t charType) Scale() int         { return 0 }
func (t charType) String() string {
	name := "char"
	if t.category == Varchar {
		name = "varchar"
	}
	return fmt.Sprintf("%s(%d)", name, t.maxLength)
}

// CharType constructs a CHAR(maxLength) type.
func CharType(maxLength int) Type {
	if maxLength <= 0 {
		panic(fmt.Sprintf("orc: invalid char max length %d", maxLength))
	}
	return charType{category: Char, maxLength: maxLength}
}

// VarcharType constructs a VARCHAR(maxLength) type.
func VarcharType(maxLength int) Type {
	if maxLength <= 0 {
		panic(fmt.Sprintf("orc: invalid varchar max length %d", maxLength))
	}
	return charType{category: Varchar, maxLength: maxLength}
}

// complexType is a placeholder Type for STRUCT/LIST/MAP/UNION columns. The
// conversion layer never looks past Category() for these (they are rejected
// outright), so no child-type information is modeled here; that belongs to
// the schema-evolution map, an external collaborator.
type complexType struct{ category Category }

func (t complexType) Category() Category { return t.category }
func (t complexType) MaxLength() int     { return 0 }
func (t complexType) Precision() int     { return 0 }
func (t complexType) Scale() int         { return 0 }
func (t complexType) String() string     { return t.category.String() }

func StructType() Type { return complexType{Struct} }
func ListType() Type   { return complexType{List} }
func MapType() Type    { return complexType{Map} }
func UnionType() Type  { return complexType{Union} }

// typesAreEqual reports whether to and from name the same conversion
// "no-op" category, i.e. the factory must refuse to build a conversion
// reader between them.
func typesAreEqual(to, from Type) bool {
	if to.Category() != from.Category() {
		return false
	}
	switch to.Category() {
	case Decimal:
		return to.Precision() == from.Precision() && to.Scale() == from.Scale()
	case Char, Varchar:
		return to.MaxLength() == from.MaxLength()
	default:
		return true
	}
}
