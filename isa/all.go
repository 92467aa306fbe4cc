package isa

import (
	"fmt"
	"iter"

	"github.com/ezrec/isa16/internal"
)

// sample returns a valid instruction of op at width.
func sample(op Op, width Width) Instruction {
	r0 := REG_R0.View(width)
	r1 := REG_R1.View(width)
	zero := ByteValue(0)
	if width == WIDTH_WORD {
		zero = WordValue(0)
	}

	var inst Instruction
	var err error

	switch op {
	case OP_MOV_M2R:
		inst, err = MovM2R(REG_R0, REG_RB1)
	case OP_MOV_R2M:
		inst, err = MovR2M(REG_RB0, REG_R1)
	default:
		switch op.info().shape {
		case shapeNone:
			inst = Instruction{op: op}
		case shapeLiteral:
			inst = Db(0)
		case shapeRegPair:
			inst, err = buildRegPair(op, r0, r1)
		case shapeReg:
			inst, err = buildReg(op, r0)
		case shapeConstReg:
			inst, err = buildConstReg(op, zero, r1)
		case shapeShift:
			count := ByteValue(1)
			if width == WIDTH_WORD {
				count = WordValue(1)
			}
			inst, err = buildConstReg(op, count, r1)
		case shapeConst:
			inst, err = build(op, WordValue(0), 0, 0)
		}
	}
	if err != nil {
		panic(fmt.Sprintf("isa: no sample of %v: %v", op, err))
	}

	return inst
}

// ofWidth yields a sample of every polymorphic operation at width.
func ofWidth(width Width) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, op := range Ops() {
			if op.Polymorphic() && !yield(sample(op, width)) {
				return
			}
		}
	}
}

// fixed yields a sample of every width-fixed operation.
func fixed() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, op := range Ops() {
			if !op.Polymorphic() && !yield(sample(op, WIDTH_WORD)) {
				return
			}
		}
	}
}

// All yields one instruction for every operation and operand width
// combination, so every opcode is represented exactly once.
func All() iter.Seq[Instruction] {
	return internal.IterSeqConcat(fixed(), ofWidth(WIDTH_BYTE), ofWidth(WIDTH_WORD))
}
