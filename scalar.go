package orc

import (
	"math"
	"strconv"
	"time"
	"unicode/utf8"
)

// This file holds the scalar conversion primitives: small, allocation-light
// functions with no knowledge of vectors or batching. Every conversion
// reader in convert_*.go is built out of these.

// minLongAsDouble and maxLongAsDoublePlusOne are the Guava-style bounds used
// by doubleFitsInLong to decide whether a double value is representable as
// an int64.
const (
	minLongAsDouble        = -9223372036854775808.0 // math.MinInt64 as float64
	maxLongAsDoublePlusOne = 9223372036854775808.0   // 2^63
	millisPerDay           = 86400000
	millisPerSecond        = 1000
	nanosPerSecond         = 1e9
)

func isNaNOrInf(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// doubleFitsInLong reports whether v can be represented exactly as an int64
// once truncated toward zero. NaN and magnitudes at or beyond 2^63 fail.
func doubleFitsInLong(v float64) bool {
	return minLongAsDouble-v < 1.0 && v < maxLongAsDoublePlusOne
}

// parseLong attempts a strict base-10 parse of s as an int64.
func parseLong(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDouble attempts a strict parse of s as a float64, accepting signed,
// decimal, scientific notation, and the literals NaN/Infinity.
func parseDouble(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatLong formats n in base-10 ASCII.
func formatLong(n int64) string {
	return strconv.FormatInt(n, 10)
}

// formatDouble renders v using Go's shortest round-trip representation (see
// DESIGN.md for why this stands in for a platform default double-to-string
// conversion). NaN has no textual form and returns ok=false.
func formatDouble(v float64) (string, bool) {
	if math.IsNaN(v) {
		return "", false
	}
	return strconv.FormatFloat(v, 'g', -1, 64), true
}

// downCastInteger narrows value to the width of target, returning ok=false
// when the round trip through that narrower width does not reproduce value.
func downCastInteger(value int64, target Category) (int64, bool) {
	switch target {
	case Byte:
		n := int64(int8(value))
		return n, n == value
	case Short:
		n := int64(int16(value))
		return n, n == value
	case Int:
		n := int64(int32(value))
		return n, n == value
	case Long:
		return value, true
	default:
		return value, true
	}
}

// boolFromInteger maps any non-zero value to 1 and zero to 0; this
// conversion never nulls.
func boolFromInteger(value int64) int64 {
	if value != 0 {
		return 1
	}
	return 0
}

// truncateToInt64 truncates v toward zero.
func truncateToInt64(v float64) int64 {
	return int64(v)
}

// daysToMillis converts a day count to milliseconds since the epoch,
// midnight of that day in UTC.
func daysToMillis(days int64) int64 {
	return days * millisPerDay
}

// millisToSeconds floors millis to whole seconds toward negative infinity.
func millisToSeconds(millis int64) int64 {
	if millis >= 0 {
		return millis / millisPerSecond
	}
	q := millis / millisPerSecond
	if millis%millisPerSecond != 0 {
		q--
	}
	return q
}

// millisToDays floors millis to whole days toward negative infinity.
func millisToDays(millis int64) int64 {
	if millis >= 0 {
		return millis / millisPerDay
	}
	q := millis / millisPerDay
	if millis%millisPerDay != 0 {
		q--
	}
	return q
}

// millisToTimestamp builds an instant from milliseconds since the epoch.
func millisToTimestamp(millis int64) time.Time {
	sec := millisToSeconds(millis)
	remainder := millis - sec*millisPerSecond
	return time.Unix(sec, remainder*1e6).UTC()
}

// timestampToMillis returns the instant in milliseconds since the epoch,
// truncating sub-millisecond precision.
func timestampToMillis(t time.Time) int64 {
	return t.Unix()*millisPerSecond + int64(t.Nanosecond())/1e6
}

// timestampToDouble returns seconds since the epoch as a float64, including
// fractional nanoseconds.
func timestampToDouble(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/nanosPerSecond
}

// doubleToTimestamp builds an instant from seconds-since-epoch, integer part
// as seconds and fractional part as nanoseconds. Non-finite input returns
// ok=false.
func doubleToTimestamp(v float64) (time.Time, bool) {
	if isNaNOrInf(v) {
		return time.Time{}, false
	}
	sec := math.Floor(v)
	nanos := math.Round((v - sec) * nanosPerSecond)
	return time.Unix(int64(sec), int64(nanos)).UTC(), true
}

// decimalToTimestamp derives an instant from a decimal number of seconds
// since the epoch.
func decimalToTimestamp(d Decimal) (time.Time, bool) {
	return doubleToTimestamp(d.Float64())
}

// parseTimestamp attempts a strict ISO-ish parse of s. The Hive/ORC
// convention of a space separator between date and time is tried first,
// then RFC 3339.
func parseTimestamp(s string) (time.Time, bool) {
	layouts := []string{
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999999Z07:00",
		"2006-01-02T15:04:05Z07:00",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// formatTimestamp renders t in ISO-ish form, omitting the fractional part
// when it is exactly zero.
func formatTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond() == 0 {
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("2006-01-02 15:04:05.999999999")
}

// parseDate attempts a strict YYYY-MM-DD parse, returning the day count
// since the epoch.
func parseDate(s string) (int64, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, false
	}
	return millisToDays(t.UnixMilli()), true
}

// formatDate renders a day count as YYYY-MM-DD.
func formatDate(days int64) string {
	t := time.UnixMilli(daysToMillis(days)).UTC()
	return t.Format("2006-01-02")
}

// binaryToHexString hex-encodes b as lowercase pairs separated by single
// spaces: exact output length 3*n-1 for n>0, empty for n=0.
func binaryToHexString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 0, 3*len(b)-1)
	for i, c := range b {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, hexDigits[c>>4], hexDigits[c&0x0f])
	}
	return string(out)
}

// trimTrailingSpaces strips trailing ASCII space (0x20) bytes, the CHAR
// right-trim step applied before comparison or re-encoding.
func trimTrailingSpaces(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == ' ' {
		i--
	}
	return b[:i]
}

// truncateUTF8 truncates b to at most maxLength bytes without splitting a
// multi-byte UTF-8 sequence.
func truncateUTF8(b []byte, maxLength int) []byte {
	if len(b) <= maxLength {
		return b
	}
	end := maxLength
	for end > 0 && !utf8.RuneStart(b[end]) {
		end--
	}
	return b[:end]
}
