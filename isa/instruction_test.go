package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type constRegFunc func(Value, Register) (Instruction, error)
type regPairFunc func(Register, Register) (Instruction, error)
type regFunc func(Register) (Instruction, error)

func must(inst Instruction, err error) Instruction {
	if err != nil {
		panic(err)
	}
	return inst
}

func TestInstruction_ConstReg(t *testing.T) {
	assert := assert.New(t)

	tests := map[Op]constRegFunc{
		OP_MOV_C2R: MovC2R,
		OP_ADD_C2R: AddC2R,
		OP_SUB_C2R: SubC2R,
		OP_AND_C2R: AndC2R,
		OP_OR_C2R:  OrC2R,
		OP_CMP_C2R: CmpC2R,
	}

	for op, fn := range tests {
		_, err := fn(ByteValue(0), REG_RB1)
		assert.NoError(err, op.String())
		_, err = fn(WordValue(0), REG_R1)
		assert.NoError(err, op.String())

		_, err = fn(ByteValue(0), REG_R1)
		assert.Equal(ErrOperandMismatch(Instruction{op: op, value: ByteValue(0), dest: REG_R1}), err, op.String())
		_, err = fn(WordValue(0), REG_RB1)
		assert.Equal(ErrOperandMismatch(Instruction{op: op, value: WordValue(0), dest: REG_RB1}), err, op.String())
		_, err = fn(WordValue(0), REG_RSB)
		assert.Equal(ErrOperandMismatch(Instruction{op: op, value: WordValue(0), dest: REG_RSB}), err, op.String())
	}
}

func TestInstruction_RegPair(t *testing.T) {
	assert := assert.New(t)

	tests := map[Op]regPairFunc{
		OP_MOV_R2R: MovR2R,
		OP_ADD_R2R: AddR2R,
		OP_SUB_R2R: SubR2R,
		OP_AND_R2R: AndR2R,
		OP_OR_R2R:  OrR2R,
		OP_CMP_R2R: CmpR2R,
	}

	for op, fn := range tests {
		_, err := fn(REG_RB0, REG_RB1)
		assert.NoError(err, op.String())
		_, err = fn(REG_R0, REG_R1)
		assert.NoError(err, op.String())
		_, err = fn(REG_RIP, REG_R1)
		assert.NoError(err, op.String())

		_, err = fn(REG_RB0, REG_R1)
		assert.Equal(ErrOperandMismatch(Instruction{op: op, src: REG_RB0, dest: REG_R1}), err, op.String())
		_, err = fn(REG_R0, REG_RB1)
		assert.Equal(ErrOperandMismatch(Instruction{op: op, src: REG_R0, dest: REG_RB1}), err, op.String())
		_, err = fn(REG_R0, REG_FLAGS)
		assert.Equal(ErrOperandMismatch(Instruction{op: op, src: REG_R0, dest: REG_FLAGS}), err, op.String())
	}
}

func TestInstruction_WidthMismatch(t *testing.T) {
	assert := assert.New(t)

	inst, err := AddR2R(REG_RB0, REG_R1)
	assert.Equal(Instruction{}, inst)
	assert.Equal(ErrOperandMismatch(Instruction{op: OP_ADD_R2R, src: REG_RB0, dest: REG_R1}), err)
	assert.True(errors.Is(err, ErrOperandMismatch{}))

	var mismatch ErrOperandMismatch
	assert.True(errors.As(err, &mismatch))
	assert.Equal(OP_ADD_R2R, Instruction(mismatch).Op())
	assert.False(Instruction(mismatch).Valid())
}

func TestInstruction_Memory(t *testing.T) {
	assert := assert.New(t)

	_, err := MovM2R(REG_R0, REG_RB1)
	assert.NoError(err)
	for _, pair := range [][2]Register{{REG_R0, REG_R1}, {REG_RB0, REG_RB1}, {REG_RB0, REG_R1}, {REG_R0, REG_RINFO}} {
		_, err = MovM2R(pair[0], pair[1])
		assert.Equal(ErrOperandMismatch(Instruction{op: OP_MOV_M2R, src: pair[0], dest: pair[1]}), err)
	}

	_, err = MovR2M(REG_RB0, REG_R1)
	assert.NoError(err)
	_, err = MovR2M(REG_RB0, REG_RSH)
	assert.NoError(err)
	for _, pair := range [][2]Register{{REG_R0, REG_R1}, {REG_RB0, REG_RB1}, {REG_R0, REG_RB1}} {
		_, err = MovR2M(pair[0], pair[1])
		assert.Equal(ErrOperandMismatch(Instruction{op: OP_MOV_R2M, src: pair[0], dest: pair[1]}), err)
	}
}

func TestInstruction_WordReg(t *testing.T) {
	assert := assert.New(t)

	tests := map[Op]regFunc{
		OP_PUSH:   Push,
		OP_AJMP:   AJmp,
		OP_JMP:    Jmp,
		OP_JEQ:    Jeq,
		OP_JNEQ:   Jneq,
		OP_JLT:    Jlt,
		OP_JGT:    Jgt,
		OP_JLEQ:   Jleq,
		OP_JGEQ:   Jgeq,
		OP_JO:     Jo,
		OP_JNO:    Jno,
		OP_CALL_R: CallR,
		OP_INT:    Int,
		OP_STI:    Sti,
	}

	for op, fn := range tests {
		_, err := fn(REG_R0)
		assert.NoError(err, op.String())
		_, err = fn(REG_RIP)
		assert.NoError(err, op.String())

		_, err = fn(REG_RB0)
		assert.Equal(ErrOperandMismatch(Instruction{op: op, src: REG_RB0}), err, op.String())
	}
}

func TestInstruction_Pop(t *testing.T) {
	assert := assert.New(t)

	_, err := Pop(REG_R0)
	assert.NoError(err)

	_, err = Pop(REG_RB0)
	assert.Equal(ErrOperandMismatch(Instruction{op: OP_POP, src: REG_RB0}), err)
	_, err = Pop(REG_RIP)
	assert.Equal(ErrOperandMismatch(Instruction{op: OP_POP, src: REG_RIP}), err)
}

func TestInstruction_Not(t *testing.T) {
	assert := assert.New(t)

	b := must(Not(REG_RB0))
	w := must(Not(REG_R0))
	assert.NotEqual(b.Opcode(), w.Opcode())
	assert.Equal(b.Opcode()+1, w.Opcode())

	_, err := Not(REG_FLAGS)
	assert.Equal(ErrOperandMismatch(Instruction{op: OP_NOT, src: REG_FLAGS}), err)
}

func TestInstruction_CallC(t *testing.T) {
	assert := assert.New(t)

	_, err := CallC(WordValue(0))
	assert.NoError(err)

	_, err = CallC(ByteValue(0))
	assert.Equal(ErrOperandMismatch(Instruction{op: OP_CALL_C, value: ByteValue(0)}), err)
}

func TestInstruction_Shift(t *testing.T) {
	assert := assert.New(t)

	for _, fn := range []constRegFunc{Shl, Shr, Shre} {
		for count := range uint8(9) {
			_, err := fn(ByteValue(count), REG_RB2)
			if count == 0 {
				assert.Error(err)
			} else {
				assert.NoError(err, count)
			}
		}
		_, err := fn(ByteValue(9), REG_RB2)
		assert.True(errors.Is(err, ErrOperandMismatch{}))
		_, err = fn(ByteValue(0xff), REG_RB2)
		assert.True(errors.Is(err, ErrOperandMismatch{}))

		for count := range uint16(17) {
			_, err := fn(WordValue(count), REG_R2)
			if count == 0 {
				assert.Error(err)
			} else {
				assert.NoError(err, count)
			}
		}
		_, err = fn(WordValue(17), REG_R2)
		assert.True(errors.Is(err, ErrOperandMismatch{}))

		_, err = fn(WordValue(4), REG_RB2)
		assert.True(errors.Is(err, ErrOperandMismatch{}))
		_, err = fn(WordValue(4), REG_RINT)
		assert.True(errors.Is(err, ErrOperandMismatch{}))
	}
}

func TestInstruction_Infallible(t *testing.T) {
	assert := assert.New(t)

	for _, inst := range []Instruction{Nop(), Ret(), Cli(), Db(0), Db(0xff)} {
		assert.True(inst.Valid(), inst.String())
	}
	assert.Equal(Nop(), Instruction{})
}

func TestInstruction_Accessors(t *testing.T) {
	assert := assert.New(t)

	inst := must(SubR2R(REG_RB4, REG_RB5))
	assert.Equal(OP_SUB_R2R, inst.Op())
	assert.Equal(REG_RB4, inst.Src())
	assert.Equal(REG_RB5, inst.Dest())
	assert.Equal(WIDTH_BYTE, inst.Width())

	inst = must(OrC2R(WordValue(0x8000), REG_R6))
	assert.Equal(WordValue(0x8000), inst.Value())
	assert.Equal(REG_R6, inst.Dest())
	assert.Equal(WIDTH_WORD, inst.Width())

	inst = must(Jgt(REG_R8))
	assert.Equal(REG_R8, inst.Src())
}

func TestInstruction_AllDifferentOpcodes(t *testing.T) {
	assert := assert.New(t)

	all := []Instruction{
		Nop(),

		must(MovC2R(ByteValue(0), REG_RB1)),
		must(MovC2R(WordValue(0), REG_R1)),
		must(MovR2R(REG_RB0, REG_RB1)),
		must(MovR2R(REG_R0, REG_R1)),
		must(MovM2R(REG_R0, REG_RB1)),
		must(MovR2M(REG_RB0, REG_R1)),
		must(Push(REG_R0)),
		must(Pop(REG_R0)),

		must(AddC2R(ByteValue(0), REG_RB1)),
		must(AddC2R(WordValue(0), REG_R1)),
		must(AddR2R(REG_RB0, REG_RB1)),
		must(AddR2R(REG_R0, REG_R1)),
		must(SubC2R(ByteValue(0), REG_RB1)),
		must(SubC2R(WordValue(0), REG_R1)),
		must(SubR2R(REG_RB0, REG_RB1)),
		must(SubR2R(REG_R0, REG_R1)),
		must(Not(REG_RB0)),
		must(Not(REG_R0)),
		must(AndC2R(ByteValue(0), REG_RB1)),
		must(AndC2R(WordValue(0), REG_R1)),
		must(AndR2R(REG_RB0, REG_RB1)),
		must(AndR2R(REG_R0, REG_R1)),
		must(OrC2R(ByteValue(0), REG_RB1)),
		must(OrC2R(WordValue(0), REG_R1)),
		must(OrR2R(REG_RB0, REG_RB1)),
		must(OrR2R(REG_R0, REG_R1)),
		must(Shl(ByteValue(1), REG_RB1)),
		must(Shl(WordValue(1), REG_R1)),
		must(Shr(ByteValue(1), REG_RB1)),
		must(Shr(WordValue(1), REG_R1)),
		must(Shre(ByteValue(1), REG_RB1)),
		must(Shre(WordValue(1), REG_R1)),
		must(CmpC2R(ByteValue(0), REG_RB1)),
		must(CmpC2R(WordValue(0), REG_R1)),
		must(CmpR2R(REG_RB0, REG_RB1)),
		must(CmpR2R(REG_R0, REG_R1)),

		must(AJmp(REG_R0)),
		must(Jmp(REG_R0)),
		must(Jeq(REG_R0)),
		must(Jneq(REG_R0)),
		must(Jlt(REG_R0)),
		must(Jgt(REG_R0)),
		must(Jleq(REG_R0)),
		must(Jgeq(REG_R0)),
		must(Jo(REG_R0)),
		must(Jno(REG_R0)),
		must(CallC(WordValue(0))),
		must(CallR(REG_R0)),
		Ret(),
		must(Int(REG_R0)),
		must(Sti(REG_R0)),
		Cli(),
		Db(0),
	}

	for _, inst0 := range all {
		for _, inst1 := range all {
			if inst0 != inst1 {
				assert.NotEqual(inst0.Opcode(), inst1.Opcode(), "%v %v", inst0, inst1)
			}
		}
	}

	var sampled []Instruction
	for inst := range All() {
		sampled = append(sampled, inst)
	}
	assert.ElementsMatch(all, sampled)
}

func TestInstruction_DbNeverCollides(t *testing.T) {
	assert := assert.New(t)

	for data := range 0x100 {
		db := Db(uint8(data))
		assert.Equal(OPCODE_ESCAPE, db.Opcode())
		for inst := range All() {
			if inst.Op() != OP_DB {
				assert.NotEqual(db.Opcode(), inst.Opcode(), inst.String())
			}
		}
	}
}
