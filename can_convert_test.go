package orc

import "testing"

func TestCanConvertRejectsComplexAndIdentical(t *testing.T) {
	if CanConvert(StructType(), StringType()) {
		t.Fatalf("complex file type must never be convertible")
	}
	if CanConvert(IntType(), ListType()) {
		t.Fatalf("complex reader type must never be convertible")
	}
	if CanConvert(IntType(), IntType()) {
		t.Fatalf("identical types require no conversion reader")
	}
	if CanConvert(DecimalType(10, 2), DecimalType(10, 2)) {
		t.Fatalf("identical decimal types require no conversion reader")
	}
}

func TestCanConvertNumericExcludesBinaryAndDate(t *testing.T) {
	if CanConvert(IntType(), BinaryType()) {
		t.Fatalf("numeric source must not convert to BINARY")
	}
	if CanConvert(IntType(), DateType()) {
		t.Fatalf("numeric source must not convert to DATE")
	}
	if !CanConvert(IntType(), StringType()) {
		t.Fatalf("numeric source should convert to STRING")
	}
	if !CanConvert(IntType(), TimestampType()) {
		t.Fatalf("numeric source should convert to TIMESTAMP")
	}
}

func TestCanConvertTimestampExcludesBinary(t *testing.T) {
	if CanConvert(TimestampType(), BinaryType()) {
		t.Fatalf("TIMESTAMP must not convert to BINARY")
	}
	if !CanConvert(TimestampType(), DateType()) {
		t.Fatalf("TIMESTAMP should convert to DATE")
	}
}

func TestCanConvertDateRestrictedSet(t *testing.T) {
	if !CanConvert(DateType(), StringType()) {
		t.Fatalf("DATE should convert to STRING")
	}
	if !CanConvert(DateType(), TimestampType()) {
		t.Fatalf("DATE should convert to TIMESTAMP")
	}
	if CanConvert(DateType(), IntType()) {
		t.Fatalf("DATE must not convert to INT")
	}
	if CanConvert(DateType(), BinaryType()) {
		t.Fatalf("DATE must not convert to BINARY")
	}
}

func TestCanConvertBinaryRestrictedSet(t *testing.T) {
	if !CanConvert(BinaryType(), StringType()) {
		t.Fatalf("BINARY should convert to STRING")
	}
	if !CanConvert(BinaryType(), VarcharType(8)) {
		t.Fatalf("BINARY should convert to VARCHAR")
	}
	if CanConvert(BinaryType(), IntType()) {
		t.Fatalf("BINARY must not convert to INT")
	}
	if CanConvert(BinaryType(), TimestampType()) {
		t.Fatalf("BINARY must not convert to TIMESTAMP")
	}
}

func TestCanConvertStringGroupConvertsToAnything(t *testing.T) {
	targets := []Type{IntType(), DoubleType(), DecimalType(10, 2), TimestampType(), DateType(), BinaryType(), VarcharType(8)}
	for _, target := range targets {
		if !CanConvert(StringType(), target) {
			t.Fatalf("STRING should convert to %s", target.String())
		}
	}
}
