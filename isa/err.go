package isa

import (
	"errors"

	"github.com/ezrec/isa16/translate"
)

var f = translate.From

var (
	// Operand errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrValueRange      = errors.New(f("value out of range"))

	// Text errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))

	// Program errors
	ErrProgramFull = errors.New(f("program exceeds address space"))
)

// ErrOperandMismatch is returned when the operands of an instruction
// have illegal widths or an unwritable destination.
type ErrOperandMismatch Instruction

func (eo ErrOperandMismatch) Error() string {
	return f("operand mismatch '%v'", Instruction(eo).String())
}

func (eo ErrOperandMismatch) Is(err error) (ok bool) {
	_, ok = err.(ErrOperandMismatch)
	return
}

// ErrRegisterNumber is returned for an out of range general-purpose register.
type ErrRegisterNumber uint64

func (er ErrRegisterNumber) Error() string {
	return f("invalid register number (expected number between 0 and %d, found: %d)", regGeneralNr-1, uint64(er))
}

func (er ErrRegisterNumber) Unwrap() error {
	return ErrRegisterInvalid
}

// ErrRegisterName is returned for an unknown register name.
type ErrRegisterName string

func (er ErrRegisterName) Error() string {
	return f("'%v' is not a register", string(er))
}

func (er ErrRegisterName) Unwrap() error {
	return ErrRegisterInvalid
}

// ErrMnemonic is returned for an unknown instruction name.
type ErrMnemonic string

func (em ErrMnemonic) Error() string {
	return f("'%v' is not an instruction", string(em))
}

func (em ErrMnemonic) Unwrap() error {
	return ErrInstructionInvalid
}

// ErrParseNumber is returned for an operand that is not a number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression is returned for a $() expression that is not an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an error in program text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
