package orc

import (
	"github.com/shopspring/decimal"
)

// Decimal wraps shopspring/decimal.Decimal, the arbitrary-precision decimal
// type used for DecimalColumnVector elements and as the value written
// through DecimalSink.Set. The conversion
// layer relies on shopspring/decimal instead of hand-rolling big-decimal
// string formatting and arithmetic (see DESIGN.md).
type Decimal struct {
	v decimal.Decimal
}

// NewDecimalFromInt64 builds a scale-0 decimal from v.
func NewDecimalFromInt64(v int64) Decimal {
	return Decimal{v: decimal.NewFromInt(v)}
}

// ParseDecimal parses s as a decimal number, returning ok=false on any
// malformed input.
func ParseDecimal(s string) (Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, false
	}
	return Decimal{v: d}, true
}

// Signum returns -1, 0 or 1 according to the sign of d.
func (d Decimal) Signum() int { return d.v.Sign() }

// IntPart returns the integer part of d, truncated toward zero.
func (d Decimal) IntPart() int64 { return d.v.IntPart() }

// Float64 converts d to its nearest float64 representation.
func (d Decimal) Float64() float64 {
	f, _ := d.v.Float64()
	return f
}

// StringFixed renders d with exactly scale digits after the decimal point,
// the canonical textual form used when converting a decimal to a string.
func (d Decimal) StringFixed(scale int32) string {
	return d.v.StringFixed(scale)
}

// digits returns the number of decimal digits of d's unscaled coefficient,
// used to check precision overflow. This must count digits of the
// coefficient itself rather than scan the rendered string: String() always
// prints a leading "0" before the point for |d| < 1 (e.g. "0.5", "0.01"),
// which would overcount the digits of a fractional-only value by one.
func (d Decimal) digits() int {
	return d.v.NumDigits()
}

// FitPrecisionScale rescales d to scale and reports whether the rescaled
// value's digit count still fits within precision. This backs the vector
// "set" enforcement shared by DecimalColumnVector and Decimal64ColumnVector.
func FitPrecisionScale(d Decimal, precision, scale int) (Decimal, bool) {
	rescaled := Decimal{v: d.v.Round(int32(scale))}
	if rescaled.digits() > precision {
		return Decimal{}, false
	}
	return rescaled, true
}

// decimalFromUnscaled builds a decimal.Decimal value from a packed
// unscaled int64 and its fixed scale, the inverse of Decimal64ColumnVector's
// packing.
func decimalFromUnscaled(unscaled int64, scale int) decimal.Decimal {
	return decimal.New(unscaled, -int32(scale))
}

// DoubleToDecimalString formats v using the canonical decimal string
// representation used to build a Decimal from a float64. NaN and
// infinities have no decimal representation and return ok=false.
func DoubleToDecimalString(v float64) (string, bool) {
	if isNaNOrInf(v) {
		return "", false
	}
	return decimal.NewFromFloat(v).String(), true
}
