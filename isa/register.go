package isa

import (
	"fmt"
	"strconv"
	"strings"
)

// Register is a CPU visible storage location together with the width it
// is addressed at. The low nibble holds the slot id, and regByteView marks
// the byte view of a general-purpose register.
type Register uint8

const (
	regSlotMask  = Register(0x0f)
	regByteView  = Register(0x10)
	regGeneral   = 6  // Slot id of r0.
	regGeneralNr = 10 // Number of general-purpose registers.
)

// Control registers. They are always word wide and never writable.
const (
	REG_RINFO = Register(0) // CPU information flags.
	REG_RIP   = Register(1) // Instruction pointer.
	REG_RINT  = Register(2) // Interrupt handler pointer.
	REG_FLAGS = Register(3) // Flags.
	REG_RSB   = Register(4) // Stack base.
	REG_RSH   = Register(5) // Stack head.
)

// General-purpose registers, word view.
const (
	REG_R0 = Register(regGeneral + iota)
	REG_R1
	REG_R2
	REG_R3
	REG_R4
	REG_R5
	REG_R6
	REG_R7
	REG_R8
	REG_R9
)

// General-purpose registers, byte view.
const (
	REG_RB0 = regByteView | Register(regGeneral+iota)
	REG_RB1
	REG_RB2
	REG_RB3
	REG_RB4
	REG_RB5
	REG_RB6
	REG_RB7
	REG_RB8
	REG_RB9
)

var controlNames = [regGeneral]string{
	REG_RINFO: "rinfo",
	REG_RIP:   "rip",
	REG_RINT:  "rint",
	REG_FLAGS: "flags",
	REG_RSB:   "rsb",
	REG_RSH:   "rsh",
}

// NewRegister returns general-purpose register number at the given width.
func NewRegister(width Width, number uint8) (reg Register, err error) {
	if number >= regGeneralNr {
		err = ErrRegisterNumber(uint64(number))
		return
	}

	reg = Register(regGeneral + number).View(width)
	return
}

func (r Register) slot() uint8 {
	return uint8(r & regSlotMask)
}

// Width returns the width the register is addressed at.
func (r Register) Width() Width {
	if r&regByteView != 0 {
		return WIDTH_BYTE
	}
	return WIDTH_WORD
}

// Writable returns true if the register may be an instruction destination.
func (r Register) Writable() bool {
	return r.slot() >= regGeneral
}

// Number returns the index of a general-purpose register.
func (r Register) Number() (number uint8, ok bool) {
	if !r.Writable() {
		return
	}

	return r.slot() - regGeneral, true
}

// View returns the same physical register addressed at width.
// Control registers only have a word view.
func (r Register) View(width Width) Register {
	if !r.Writable() {
		return r
	}

	r &= regSlotMask
	if width == WIDTH_BYTE {
		r |= regByteView
	}
	return r
}

// CompileSrc returns the 4-bit slot id of the register.
func (r Register) CompileSrc() uint8 {
	return r.slot()
}

// CompileDest returns the slot id in the high nibble.
func (r Register) CompileDest() uint8 {
	return r.CompileSrc() << 4
}

// CompileWith packs r as the source and dest as the destination into one byte.
func (r Register) CompileWith(dest Register) uint8 {
	return r.CompileSrc() | dest.CompileDest()
}

// FromSrc decodes the register in the low nibble of code.
func FromSrc(width Width, code uint8) Register {
	return Register(code & 0x0f).View(width)
}

// FromDest decodes the register in the high nibble of code.
func FromDest(width Width, code uint8) Register {
	return FromSrc(width, code>>4)
}

// String returns the assembly name of the register.
func (r Register) String() string {
	number, ok := r.Number()
	switch {
	case !ok:
		return controlNames[r.slot()]
	case r.Width() == WIDTH_BYTE:
		return fmt.Sprintf("rb%d", number)
	default:
		return fmt.Sprintf("r%d", number)
	}
}

// ParseRegister parses a register name, ignoring case.
func ParseRegister(name string) (reg Register, err error) {
	word := strings.ToLower(name)

	for n, control := range controlNames {
		if word == control {
			reg = Register(n)
			return
		}
	}

	width := WIDTH_WORD
	digits, ok := strings.CutPrefix(word, "rb")
	if ok {
		width = WIDTH_BYTE
	} else {
		digits, ok = strings.CutPrefix(word, "r")
	}
	if !ok || len(digits) == 0 {
		err = ErrRegisterName(name)
		return
	}

	number, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		err = ErrRegisterName(name)
		return
	}

	if number >= regGeneralNr {
		err = ErrRegisterNumber(number)
		return
	}

	return NewRegister(width, uint8(number))
}
