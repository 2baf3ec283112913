package orc

import "time"

// ColumnVector is the shared null-mask and repetition state every vector
// shape carries.
//
//	Invariant: NoNulls implies every entry of IsNull is false.
//	A vector is repeating when IsRepeating is true, in which case only
//	index 0 is authoritative for Len logical elements.
type ColumnVector struct {
	NoNulls     bool
	IsNull      []bool
	IsRepeating bool
	Len         int
}

// Null reports whether the logical element at i is null.
func (v *ColumnVector) Null(i int) bool {
	if v.NoNulls {
		return false
	}
	if v.IsRepeating {
		i = 0
	}
	return isNull(v.IsNull, i)
}

// SetNull marks the logical element at i as null, materializing IsNull if
// the vector previously claimed to have no nulls.
func (v *ColumnVector) SetNull(i int) {
	if v.NoNulls {
		v.NoNulls = false
		if cap(v.IsNull) < v.Len {
			v.IsNull = make([]bool, v.Len)
		} else {
			v.IsNull = v.IsNull[:v.Len]
			for j := range v.IsNull {
				v.IsNull[j] = false
			}
		}
	}
	if v.IsRepeating {
		i = 0
	}
	if i >= len(v.IsNull) {
		grown := make([]bool, i+1)
		copy(grown, v.IsNull)
		v.IsNull = grown
	}
	v.IsNull[i] = true
}

// reset prepares the vector to receive batchSize fresh logical elements:
// clears the repeating flag and marks every slot non-null.
func (v *ColumnVector) reset(batchSize int) {
	v.IsRepeating = false
	v.NoNulls = true
	v.Len = batchSize
}

// LongColumnVector backs BOOLEAN/BYTE/SHORT/INT/LONG/DATE columns.
type LongColumnVector struct {
	ColumnVector
	Values []int64
}

func NewLongColumnVector(capacity int) *LongColumnVector {
	return &LongColumnVector{Values: make([]int64, capacity)}
}

func (v *LongColumnVector) ensure(n int) {
	if cap(v.Values) < n {
		v.Values = make([]int64, n)
	} else {
		v.Values = v.Values[:n]
	}
}

// DoubleColumnVector backs FLOAT/DOUBLE columns.
type DoubleColumnVector struct {
	ColumnVector
	Values []float64
}

func NewDoubleColumnVector(capacity int) *DoubleColumnVector {
	return &DoubleColumnVector{Values: make([]float64, capacity)}
}

func (v *DoubleColumnVector) ensure(n int) {
	if cap(v.Values) < n {
		v.Values = make([]float64, n)
	} else {
		v.Values = v.Values[:n]
	}
}

// BytesVectorElement is a (buffer, start, length) slice reference.
// Start/Length index into Buffer so repeated writes can reuse backing
// storage.
type BytesVectorElement struct {
	Buffer []byte
	Start  int
	Length int
}

// Bytes returns the slice the element refers to.
func (e BytesVectorElement) Bytes() []byte {
	return e.Buffer[e.Start : e.Start+e.Length]
}

// BytesColumnVector backs STRING/CHAR/VARCHAR/BINARY columns.
type BytesColumnVector struct {
	ColumnVector
	Elements []BytesVectorElement
}

func NewBytesColumnVector(capacity int) *BytesColumnVector {
	return &BytesColumnVector{Elements: make([]BytesVectorElement, capacity)}
}

func (v *BytesColumnVector) ensure(n int) {
	if cap(v.Elements) < n {
		v.Elements = make([]BytesVectorElement, n)
	} else {
		v.Elements = v.Elements[:n]
	}
}

// SetBytes stores a copy of b as the value at index i. Conversion readers
// always write freshly formatted/truncated byte slices, so a copy-on-write
// scheme is unnecessary here.
func (v *BytesColumnVector) SetBytes(i int, b []byte) {
	v.Elements[i] = BytesVectorElement{Buffer: b, Start: 0, Length: len(b)}
}

// SetString stores s as the value at index i.
func (v *BytesColumnVector) SetString(i int, s string) {
	v.SetBytes(i, []byte(s))
}

// TimestampColumnVector backs TIMESTAMP columns with nanosecond resolution.
type TimestampColumnVector struct {
	ColumnVector
	Values []time.Time
}

func NewTimestampColumnVector(capacity int) *TimestampColumnVector {
	return &TimestampColumnVector{Values: make([]time.Time, capacity)}
}

func (v *TimestampColumnVector) ensure(n int) {
	if cap(v.Values) < n {
		v.Values = make([]time.Time, n)
	} else {
		v.Values = v.Values[:n]
	}
}

// DecimalColumnVector backs DECIMAL columns of any precision with
// arbitrary-precision Decimal values; the decimal conversion readers use it
// as their scratch vector for every file precision. Decimal64ColumnVector is
// the packed alternative for precision <= 18; which of the two a caller
// passes as a decimal output vector is the caller's choice.
type DecimalColumnVector struct {
	ColumnVector
	Precision int
	Scale     int
	Values    []Decimal
}

func NewDecimalColumnVector(capacity, precision, scale int) *DecimalColumnVector {
	return &DecimalColumnVector{Precision: precision, Scale: scale, Values: make([]Decimal, capacity)}
}

func (v *DecimalColumnVector) ensure(n int) {
	if cap(v.Values) < n {
		v.Values = make([]Decimal, n)
	} else {
		v.Values = v.Values[:n]
	}
}

// Set writes d into index i, enforcing the vector's precision/scale; on
// overflow it nulls the slot instead.
func (v *DecimalColumnVector) Set(i int, d Decimal) {
	fit, ok := FitPrecisionScale(d, v.Precision, v.Scale)
	if !ok {
		v.SetNull(i)
		return
	}
	v.Values[i] = fit
}

// Decimal64ColumnVector is the packed fixed-point representation used when
// precision <= 18: each logical value is an int64 unscaled integer at a
// fixed Scale.
type Decimal64ColumnVector struct {
	ColumnVector
	Precision int
	Scale     int
	Values    []int64
}

func NewDecimal64ColumnVector(capacity, precision, scale int) *Decimal64ColumnVector {
	return &Decimal64ColumnVector{Precision: precision, Scale: scale, Values: make([]int64, capacity)}
}

func (v *Decimal64ColumnVector) ensure(n int) {
	if cap(v.Values) < n {
		v.Values = make([]int64, n)
	} else {
		v.Values = v.Values[:n]
	}
}

// Set writes d into index i at the vector's fixed scale, nulling the slot
// if the rescaled value no longer fits an int64 or overflows precision.
func (v *Decimal64ColumnVector) Set(i int, d Decimal) {
	fit, ok := FitPrecisionScale(d, v.Precision, v.Scale)
	if !ok {
		v.SetNull(i)
		return
	}
	unscaled := fit.v.Shift(int32(v.Scale))
	if !unscaled.IsInteger() {
		v.SetNull(i)
		return
	}
	n := unscaled.IntPart()
	if n > 999999999999999999 || n < -999999999999999999 {
		v.SetNull(i)
		return
	}
	v.Values[i] = n
}

// Decimal returns the logical decimal value stored at index i.
func (v *Decimal64ColumnVector) Decimal(i int) Decimal {
	return Decimal{v: decimalFromUnscaled(v.Values[i], v.Scale)}
}

// DecimalSink is the common write surface of DecimalColumnVector and
// Decimal64ColumnVector, letting decimal conversion readers target either
// representation without a runtime type switch per element.
type DecimalSink interface {
	Set(i int, d Decimal)
	SetNull(i int)
	reset(batchSize int)
	ensure(n int)
	base() *ColumnVector
}

func (v *DecimalColumnVector) base() *ColumnVector   { return &v.ColumnVector }
func (v *Decimal64ColumnVector) base() *ColumnVector { return &v.ColumnVector }
