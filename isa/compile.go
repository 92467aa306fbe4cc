package isa

import (
	"fmt"
)

// Len returns the size in bytes of the encoded instruction.
func (inst Instruction) Len() int {
	switch inst.op.info().shape {
	case shapeConstReg, shapeConst:
		return 4
	case shapeNone, shapeLiteral, shapeRegPair, shapeReg, shapeShift:
		return 2
	}
	panic(fmt.Sprintf("isa: %v has no encoding", inst.op))
}

// Compile returns the binary encoding of the instruction.
func (inst Instruction) Compile() []byte {
	return inst.AppendCompile(make([]byte, 0, 4))
}

// AppendCompile appends the binary encoding of the instruction to code.
func (inst Instruction) AppendCompile(code []byte) []byte {
	opcode := inst.Opcode()

	switch inst.op.info().shape {
	case shapeNone:
		return append(code, opcode, 0x00)
	case shapeLiteral:
		return append(code, opcode, inst.value.Byte(0))
	case shapeRegPair:
		return append(code, opcode, inst.src.CompileWith(inst.dest))
	case shapeReg:
		return append(code, opcode, inst.src.CompileSrc())
	case shapeConstReg:
		return append(code, opcode, inst.dest.CompileDest(), inst.value.Byte(0), inst.value.Byte(1))
	case shapeShift:
		return append(code, opcode, inst.dest.CompileDest()|(inst.value.Byte(0)&0x0f))
	case shapeConst:
		return append(code, opcode, 0x00, inst.value.Byte(0), inst.value.Byte(1))
	}
	panic(fmt.Sprintf("isa: %v has no encoding", inst.op))
}
