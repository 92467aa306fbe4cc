// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// arity is the number of text operands per shape.
var arity = map[shape]int{
	shapeNone:     0,
	shapeLiteral:  1,
	shapeRegPair:  2,
	shapeReg:      1,
	shapeConstReg: 2,
	shapeShift:    2,
	shapeConst:    1,
}

// mnemonicMap maps instruction names to operations.
var mnemonicMap = func() map[string]Op {
	ops := make(map[string]Op, len(opTable))
	for _, op := range Ops() {
		ops[op.String()] = op
	}
	return ops
}()

// String returns the assembly text of the instruction, source operand first.
func (inst Instruction) String() string {
	name := inst.op.String()

	switch inst.op.info().shape {
	case shapeLiteral, shapeConst:
		return fmt.Sprintf("%v %v", name, inst.value)
	case shapeRegPair:
		return fmt.Sprintf("%v %v, %v", name, inst.src, inst.dest)
	case shapeReg:
		return fmt.Sprintf("%v %v", name, inst.src)
	case shapeConstReg, shapeShift:
		return fmt.Sprintf("%v %v, %v", name, inst.value, inst.dest)
	}
	return name
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// expand replaces character literals and $() expressions with numbers.
func expand(line string) (out string, err error) {
	out = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	out = reExpression.ReplaceAllStringFunc(out, func(str string) string {
		value, _err := evalExpression(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})

	return
}

// evalExpression evaluates a constant Starlark expression.
func evalExpression(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, starlark.StringDict{})
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseValue parses an immediate of the given width. Negative numbers
// are stored in two's complement.
func parseValue(word string, width Width) (value Value, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	bits := width.Bits()
	if v64 >= int64(1)<<bits || v64 < -(int64(1)<<(bits-1)) {
		err = ErrValueRange
		return
	}

	magnitude := uint16(v64)
	if width == WIDTH_BYTE {
		value = ByteValue(uint8(magnitude))
	} else {
		value = WordValue(magnitude)
	}
	return
}

// ParseInstruction parses the assembly text of a single instruction.
func ParseInstruction(text string) (inst Instruction, err error) {
	line, err := expand(text)
	if err != nil {
		return
	}

	words := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	op, ok := mnemonicMap[strings.ToLower(words[0])]
	if !ok {
		err = ErrMnemonic(words[0])
		return
	}

	info := op.info()
	args := words[1:]
	switch {
	case len(args) < arity[info.shape]:
		err = ErrOpcodeValueMissing
		return
	case len(args) > arity[info.shape]:
		err = ErrOpcodeExtraArgs
		return
	}

	var value Value
	var src, dest Register

	switch info.shape {
	case shapeLiteral:
		value, err = parseValue(args[0], WIDTH_BYTE)
	case shapeConst:
		value, err = parseValue(args[0], WIDTH_WORD)
	case shapeRegPair:
		src, err = ParseRegister(args[0])
		if err == nil {
			dest, err = ParseRegister(args[1])
		}
	case shapeReg:
		src, err = ParseRegister(args[0])
	case shapeConstReg, shapeShift:
		dest, err = ParseRegister(args[1])
		if err == nil {
			value, err = parseValue(args[0], dest.Width())
		}
	}
	if err != nil {
		return
	}

	return build(op, value, src, dest)
}
