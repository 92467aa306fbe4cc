package isa

// Width is the bit size of an operand.
type Width int

//go:generate go tool stringer -linecomment -type=Width
const (
	WIDTH_BYTE = Width(0) // byte
	WIDTH_WORD = Width(1) // word
)

// Bits returns the number of bits in the width.
func (w Width) Bits() uint {
	if w == WIDTH_WORD {
		return 16
	}
	return 8
}
