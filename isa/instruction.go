package isa

// Instruction is a single machine operation with its operands.
// Instructions are comparable; two instructions are equal when their
// operation and operands are equal.
//
// Single register operations carry their register in Src.
type Instruction struct {
	op    Op
	value Value
	src   Register
	dest  Register
}

// Op returns the operation.
func (inst Instruction) Op() Op {
	return inst.op
}

// Value returns the immediate operand.
func (inst Instruction) Value() Value {
	return inst.value
}

// Src returns the source register, or the only register of single
// register operations.
func (inst Instruction) Src() Register {
	return inst.src
}

// Dest returns the destination register.
func (inst Instruction) Dest() Register {
	return inst.dest
}

// Width returns the operand width that selects the opcode of a
// polymorphic operation.
func (inst Instruction) Width() Width {
	switch inst.op.info().shape {
	case shapeRegPair, shapeReg:
		return inst.src.Width()
	case shapeConstReg, shapeShift:
		return inst.dest.Width()
	case shapeLiteral:
		return WIDTH_BYTE
	}
	return WIDTH_WORD
}

// Valid returns true if the operands are legal for the operation.
func (inst Instruction) Valid() bool {
	return inst.op.info().valid(inst)
}

// Opcode returns the leading byte of the encoded instruction.
func (inst Instruction) Opcode() uint8 {
	return inst.op.Opcode(inst.Width())
}

func validAlways(inst Instruction) bool {
	return true
}

func validRegPair(inst Instruction) bool {
	return inst.src.Width() == inst.dest.Width() && inst.dest.Writable()
}

func validConstReg(inst Instruction) bool {
	return inst.value.Width() == inst.dest.Width() && inst.dest.Writable()
}

// validLoad checks a byte load through a word address register.
func validLoad(inst Instruction) bool {
	return inst.src.Width() == WIDTH_WORD && inst.dest.Width() == WIDTH_BYTE && inst.dest.Writable()
}

// validStore checks a byte store through a word address register.
func validStore(inst Instruction) bool {
	return inst.src.Width() == WIDTH_BYTE && inst.dest.Width() == WIDTH_WORD
}

func validWordReg(inst Instruction) bool {
	return inst.src.Width() == WIDTH_WORD
}

func validWordDest(inst Instruction) bool {
	return inst.src.Width() == WIDTH_WORD && inst.src.Writable()
}

func validDest(inst Instruction) bool {
	return inst.src.Writable()
}

func validWordConst(inst Instruction) bool {
	return inst.value.Width() == WIDTH_WORD
}

// validShift bounds the count to 1..bits of the destination. A zero
// count is rejected, as nibble 0 encodes a full 16 bit word shift.
func validShift(inst Instruction) bool {
	count := uint(inst.value.Uint16())
	return validConstReg(inst) && count >= 1 && count <= inst.dest.Width().Bits()
}

// build checks a candidate instruction.
func build(op Op, value Value, src, dest Register) (inst Instruction, err error) {
	candidate := Instruction{op: op, value: value, src: src, dest: dest}
	if !candidate.Valid() {
		err = ErrOperandMismatch(candidate)
		return
	}

	inst = candidate
	return
}

func buildRegPair(op Op, src, dest Register) (Instruction, error) {
	return build(op, Value{}, src, dest)
}

func buildConstReg(op Op, value Value, dest Register) (Instruction, error) {
	return build(op, value, 0, dest)
}

func buildReg(op Op, reg Register) (Instruction, error) {
	return build(op, Value{}, reg, 0)
}

// Nop does nothing.
func Nop() Instruction {
	return Instruction{op: OP_NOP}
}

// Db places a literal data byte in the instruction stream.
func Db(data uint8) Instruction {
	return Instruction{op: OP_DB, value: ByteValue(data)}
}

// MovC2R moves a constant to a register.
func MovC2R(value Value, dest Register) (Instruction, error) {
	return buildConstReg(OP_MOV_C2R, value, dest)
}

// MovR2R moves a register to a register.
func MovR2R(src, dest Register) (Instruction, error) {
	return buildRegPair(OP_MOV_R2R, src, dest)
}

// MovM2R loads the byte addressed by src into dest.
func MovM2R(src, dest Register) (Instruction, error) {
	return buildRegPair(OP_MOV_M2R, src, dest)
}

// MovR2M stores src into the byte addressed by dest.
func MovR2M(src, dest Register) (Instruction, error) {
	return buildRegPair(OP_MOV_R2M, src, dest)
}

// Push pushes a register onto the stack.
func Push(reg Register) (Instruction, error) {
	return buildReg(OP_PUSH, reg)
}

// Pop pops the stack into a register.
func Pop(reg Register) (Instruction, error) {
	return buildReg(OP_POP, reg)
}

// AddC2R adds a constant to a register.
func AddC2R(value Value, dest Register) (Instruction, error) {
	return buildConstReg(OP_ADD_C2R, value, dest)
}

// AddR2R adds src to dest.
func AddR2R(src, dest Register) (Instruction, error) {
	return buildRegPair(OP_ADD_R2R, src, dest)
}

// SubC2R subtracts a constant from a register.
func SubC2R(value Value, dest Register) (Instruction, error) {
	return buildConstReg(OP_SUB_C2R, value, dest)
}

// SubR2R subtracts src from dest.
func SubR2R(src, dest Register) (Instruction, error) {
	return buildRegPair(OP_SUB_R2R, src, dest)
}

// Not inverts a register.
func Not(reg Register) (Instruction, error) {
	return buildReg(OP_NOT, reg)
}

// AndC2R masks a register with a constant.
func AndC2R(value Value, dest Register) (Instruction, error) {
	return buildConstReg(OP_AND_C2R, value, dest)
}

// AndR2R masks dest with src.
func AndR2R(src, dest Register) (Instruction, error) {
	return buildRegPair(OP_AND_R2R, src, dest)
}

// OrC2R sets the bits of a constant in a register.
func OrC2R(value Value, dest Register) (Instruction, error) {
	return buildConstReg(OP_OR_C2R, value, dest)
}

// OrR2R sets the bits of src in dest.
func OrR2R(src, dest Register) (Instruction, error) {
	return buildRegPair(OP_OR_R2R, src, dest)
}

// Shl shifts a register left by count bits. The count must be between 1
// and the bit width of dest.
func Shl(count Value, dest Register) (Instruction, error) {
	return buildConstReg(OP_SHL, count, dest)
}

// Shr shifts a register right by count bits, filling with zeros. The count
// must be between 1 and the bit width of dest.
func Shr(count Value, dest Register) (Instruction, error) {
	return buildConstReg(OP_SHR, count, dest)
}

// Shre shifts a register right by count bits, extending the sign bit. The
// count must be between 1 and the bit width of dest.
func Shre(count Value, dest Register) (Instruction, error) {
	return buildConstReg(OP_SHRE, count, dest)
}

// CmpC2R compares a register with a constant.
func CmpC2R(value Value, dest Register) (Instruction, error) {
	return buildConstReg(OP_CMP_C2R, value, dest)
}

// CmpR2R compares dest with src.
func CmpR2R(src, dest Register) (Instruction, error) {
	return buildRegPair(OP_CMP_R2R, src, dest)
}

// AJmp jumps to the absolute address in a register.
func AJmp(reg Register) (Instruction, error) {
	return buildReg(OP_AJMP, reg)
}

// Jmp jumps by the offset in a register.
func Jmp(reg Register) (Instruction, error) {
	return buildReg(OP_JMP, reg)
}

// Jeq jumps if the last comparison was equal.
func Jeq(reg Register) (Instruction, error) {
	return buildReg(OP_JEQ, reg)
}

// Jneq jumps if the last comparison was not equal.
func Jneq(reg Register) (Instruction, error) {
	return buildReg(OP_JNEQ, reg)
}

// Jlt jumps if the last comparison was less than.
func Jlt(reg Register) (Instruction, error) {
	return buildReg(OP_JLT, reg)
}

// Jgt jumps if the last comparison was greater than.
func Jgt(reg Register) (Instruction, error) {
	return buildReg(OP_JGT, reg)
}

// Jleq jumps if the last comparison was less or equal.
func Jleq(reg Register) (Instruction, error) {
	return buildReg(OP_JLEQ, reg)
}

// Jgeq jumps if the last comparison was greater or equal.
func Jgeq(reg Register) (Instruction, error) {
	return buildReg(OP_JGEQ, reg)
}

// Jo jumps on overflow.
func Jo(reg Register) (Instruction, error) {
	return buildReg(OP_JO, reg)
}

// Jno jumps if there was no overflow.
func Jno(reg Register) (Instruction, error) {
	return buildReg(OP_JNO, reg)
}

// CallC calls a constant address.
func CallC(value Value) (Instruction, error) {
	return build(OP_CALL_C, value, 0, 0)
}

// CallR calls the address in a register.
func CallR(reg Register) (Instruction, error) {
	return buildReg(OP_CALL_R, reg)
}

// Ret returns from a call.
func Ret() Instruction {
	return Instruction{op: OP_RET}
}

// Int raises the interrupt numbered by a register.
func Int(reg Register) (Instruction, error) {
	return buildReg(OP_INT, reg)
}

// Sti enables interrupts, with the handler address in a register.
func Sti(reg Register) (Instruction, error) {
	return buildReg(OP_STI, reg)
}

// Cli disables interrupts.
func Cli() Instruction {
	return Instruction{op: OP_CLI}
}
