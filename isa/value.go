package isa

import (
	"fmt"
)

// Value is an immediate operand.
type Value struct {
	width Width
	value uint16
}

// ByteValue returns an 8-bit immediate.
func ByteValue(value uint8) Value {
	return Value{width: WIDTH_BYTE, value: uint16(value)}
}

// WordValue returns a 16-bit immediate.
func WordValue(value uint16) Value {
	return Value{width: WIDTH_WORD, value: value}
}

// Width returns the width of the immediate.
func (v Value) Width() Width {
	return v.width
}

// Uint16 returns the magnitude of the immediate.
func (v Value) Uint16() uint16 {
	return v.value
}

// Byte returns the idx-th little-endian byte of the immediate.
// Only bytes 0 and 1 exist.
func (v Value) Byte(idx int) uint8 {
	if idx < 0 || idx > 1 {
		panic(fmt.Sprintf("isa: value byte %d out of range", idx))
	}
	return uint8(v.value >> (8 * idx))
}

// String returns the immediate in hex, padded to its width.
func (v Value) String() string {
	if v.width == WIDTH_WORD {
		return fmt.Sprintf("0x%04x", v.value)
	}
	return fmt.Sprintf("0x%02x", v.value)
}
