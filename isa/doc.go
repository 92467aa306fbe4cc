// Package isa implements the instruction set and binary encoder of the
// isa16 processor.
//
// The processor has six 16-bit control registers (rinfo, rip, rint, flags,
// rsb, rsh) and ten general-purpose registers (r0-r9), each of which may be
// addressed as a full word (r<N>) or as its low byte (rb<N>). Memory is
// byte wide and addressed by 16-bit pointers.
//
// Instructions are built with one validating constructor per operation and
// encode to frames of two or four bytes: an opcode byte, followed by either
// a packed register byte or a destination byte and a little-endian
// immediate. Width-polymorphic operations occupy two consecutive opcodes,
// byte form first, so the opcode alone identifies both the operation and
// its operand width.
package isa
