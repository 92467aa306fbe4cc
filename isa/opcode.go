package isa

import (
	"fmt"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP     = Op(0)  // nop
	OP_RET     = Op(1)  // ret
	OP_MOV_C2R = Op(2)  // movc2r
	OP_MOV_R2R = Op(3)  // movr2r
	OP_MOV_M2R = Op(4)  // movm2r
	OP_MOV_R2M = Op(5)  // movr2m
	OP_PUSH    = Op(6)  // push
	OP_POP     = Op(7)  // pop
	OP_ADD_C2R = Op(8)  // addc2r
	OP_ADD_R2R = Op(9)  // addr2r
	OP_SUB_C2R = Op(10) // subc2r
	OP_SUB_R2R = Op(11) // subr2r
	OP_NOT     = Op(12) // not
	OP_AND_C2R = Op(13) // andc2r
	OP_AND_R2R = Op(14) // andr2r
	OP_OR_C2R  = Op(15) // orc2r
	OP_OR_R2R  = Op(16) // orr2r
	OP_SHL     = Op(17) // shl
	OP_SHR     = Op(18) // shr
	OP_SHRE    = Op(19) // shre
	OP_CMP_C2R = Op(20) // cmpc2r
	OP_CMP_R2R = Op(21) // cmpr2r
	OP_AJMP    = Op(22) // ajmp
	OP_JMP     = Op(23) // jmp
	OP_JEQ     = Op(24) // jeq
	OP_JNEQ    = Op(25) // jneq
	OP_JLT     = Op(26) // jlt
	OP_JGT     = Op(27) // jgt
	OP_JLEQ    = Op(28) // jleq
	OP_JGEQ    = Op(29) // jgeq
	OP_JO      = Op(30) // jo
	OP_JNO     = Op(31) // jno
	OP_CALL_C  = Op(32) // callc
	OP_CALL_R  = Op(33) // callr
	OP_INT     = Op(34) // int
	OP_STI     = Op(35) // sti
	OP_CLI     = Op(36) // cli
	OP_DB      = Op(37) // db
)

// OPCODE_ESCAPE prefixes a literal data byte. It lies above every
// operation opcode, so a literal can never be mistaken for one.
const OPCODE_ESCAPE = uint8(0xff)

// shape is the operand layout of an operation.
type shape int

const (
	shapeNone     = shape(iota) // op 00
	shapeLiteral                // esc byte
	shapeRegPair                // op dest:src
	shapeReg                    // op src
	shapeConstReg               // op dest:0 lo hi
	shapeShift                  // op dest:count
	shapeConst                  // op 00 lo hi
)

// opInfo describes the encoding and the operand rule of an operation.
type opInfo struct {
	opcode uint8 // Opcode of the byte form, or the only opcode.
	poly   bool  // Set if the word form is opcode+1.
	shape  shape
	valid  func(inst Instruction) bool
}

var opTable = [...]opInfo{
	OP_NOP:     {0x00, false, shapeNone, validAlways},
	OP_RET:     {0x01, false, shapeNone, validAlways},
	OP_MOV_C2R: {0x02, true, shapeConstReg, validConstReg},
	OP_MOV_R2R: {0x04, true, shapeRegPair, validRegPair},
	OP_MOV_M2R: {0x06, false, shapeRegPair, validLoad},
	OP_MOV_R2M: {0x07, false, shapeRegPair, validStore},
	OP_PUSH:    {0x08, false, shapeReg, validWordReg},
	OP_POP:     {0x09, false, shapeReg, validWordDest},
	OP_ADD_C2R: {0x0a, true, shapeConstReg, validConstReg},
	OP_ADD_R2R: {0x0c, true, shapeRegPair, validRegPair},
	OP_SUB_C2R: {0x0e, true, shapeConstReg, validConstReg},
	OP_SUB_R2R: {0x10, true, shapeRegPair, validRegPair},
	OP_NOT:     {0x12, true, shapeReg, validDest},
	OP_AND_C2R: {0x14, true, shapeConstReg, validConstReg},
	OP_AND_R2R: {0x16, true, shapeRegPair, validRegPair},
	OP_OR_C2R:  {0x18, true, shapeConstReg, validConstReg},
	OP_OR_R2R:  {0x1a, true, shapeRegPair, validRegPair},
	OP_SHL:     {0x1c, true, shapeShift, validShift},
	OP_SHR:     {0x1e, true, shapeShift, validShift},
	OP_SHRE:    {0x20, true, shapeShift, validShift},
	OP_CMP_C2R: {0x22, true, shapeConstReg, validConstReg},
	OP_CMP_R2R: {0x24, true, shapeRegPair, validRegPair},
	OP_AJMP:    {0x26, false, shapeReg, validWordReg},
	OP_JMP:     {0x27, false, shapeReg, validWordReg},
	OP_JEQ:     {0x28, false, shapeReg, validWordReg},
	OP_JNEQ:    {0x29, false, shapeReg, validWordReg},
	OP_JLT:     {0x2a, false, shapeReg, validWordReg},
	OP_JGT:     {0x2b, false, shapeReg, validWordReg},
	OP_JLEQ:    {0x2c, false, shapeReg, validWordReg},
	OP_JGEQ:    {0x2d, false, shapeReg, validWordReg},
	OP_JO:      {0x2e, false, shapeReg, validWordReg},
	OP_JNO:     {0x2f, false, shapeReg, validWordReg},
	OP_CALL_C:  {0x30, false, shapeConst, validWordConst},
	OP_CALL_R:  {0x31, false, shapeReg, validWordReg},
	OP_INT:     {0x32, false, shapeReg, validWordReg},
	OP_STI:     {0x33, false, shapeReg, validWordReg},
	OP_CLI:     {0x34, false, shapeNone, validAlways},
	OP_DB:      {OPCODE_ESCAPE, false, shapeLiteral, validAlways},
}

// info returns the table entry of an operation.
func (op Op) info() *opInfo {
	if op < 0 || int(op) >= len(opTable) {
		panic(fmt.Sprintf("isa: unknown operation %v", op))
	}
	return &opTable[op]
}

// Polymorphic returns true if the operation has both a byte and a word form.
func (op Op) Polymorphic() bool {
	return op.info().poly
}

// Opcode returns the opcode of the operation at width.
func (op Op) Opcode(width Width) uint8 {
	info := op.info()
	if info.poly && width == WIDTH_WORD {
		return info.opcode + 1
	}
	return info.opcode
}

// Ops returns every operation.
func Ops() []Op {
	ops := make([]Op, len(opTable))
	for n := range opTable {
		ops[n] = Op(n)
	}
	return ops
}

// opcodeEntry is the decoded form of an opcode byte.
type opcodeEntry struct {
	op    Op
	width Width
	ok    bool
}

var opcodeMap [256]opcodeEntry

func init() {
	for _, op := range Ops() {
		widths := []Width{WIDTH_WORD}
		if op.Polymorphic() {
			widths = []Width{WIDTH_BYTE, WIDTH_WORD}
		}
		for _, width := range widths {
			code := op.Opcode(width)
			if opcodeMap[code].ok {
				panic(fmt.Sprintf("isa: opcode 0x%02x used by %v and %v", code, opcodeMap[code].op, op))
			}
			opcodeMap[code] = opcodeEntry{op: op, width: width, ok: true}
		}
	}
}

// LookupOpcode returns the operation and operand width of an opcode byte.
// Width-fixed operations report their natural width, which is
// WIDTH_WORD for everything except the literal byte.
func LookupOpcode(code uint8) (op Op, width Width, ok bool) {
	entry := opcodeMap[code]
	if !entry.ok {
		return
	}

	op, width, ok = entry.op, entry.width, true
	if op == OP_DB {
		width = WIDTH_BYTE
	}
	return
}
