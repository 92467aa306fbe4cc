package isa

import (
	"bufio"
	"io"
	"iter"
	"log"
	"strings"
)

// ADDR_LIMIT is the size of the 16-bit address space.
const ADDR_LIMIT = 0x10000

// Statement is a line of program text and the instruction it encodes to.
type Statement struct {
	LineNo      int
	Addr        int
	Text        string
	Instruction Instruction
}

// Program is an ordered list of statements at consecutive addresses.
type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Offset int
}

// Size returns the encoded size of the program in bytes.
func (prog *Program) Size() int {
	if len(prog.Statements) == 0 {
		return 0
	}

	last := prog.Statements[len(prog.Statements)-1]
	return last.Addr + last.Instruction.Len()
}

// Append adds an instruction to the end of the program.
func (prog *Program) Append(lineno int, text string, inst Instruction) (err error) {
	addr := prog.Size()
	if addr+inst.Len() > ADDR_LIMIT {
		err = ErrProgramFull
		return
	}

	prog.Statements = append(prog.Statements, Statement{
		LineNo:      lineno,
		Addr:        addr,
		Text:        text,
		Instruction: inst,
	})
	return
}

// Debug returns the statement that encodes the byte at addr.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, st := range prog.Statements {
		if int(addr) >= st.Addr && int(addr) < st.Addr+st.Instruction.Len() {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Offset:    int(addr) - st.Addr,
			}
			break
		}
	}

	return
}

// Binary returns the encoded program image.
func (prog *Program) Binary() (bin []byte) {
	bin = make([]byte, 0, prog.Size())
	for _, inst := range prog.Frames() {
		bin = inst.AppendCompile(bin)
	}

	return
}

// Frames yields each instruction with its address.
func (prog *Program) Frames() iter.Seq2[uint16, Instruction] {
	return func(yield func(addr uint16, inst Instruction) bool) {
		for _, st := range prog.Statements {
			if !yield(uint16(st.Addr), st.Instruction) {
				return
			}
		}
	}
}

// Reader reads program text of one instruction per line.
// Text after a ';' is a comment.
type Reader struct {
	Verbose bool // If set, verbosely logs each line.
}

// Parse parses an input stream into a Program.
func (rd *Reader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if rd.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		var inst Instruction
		inst, err = ParseInstruction(line)
		if err != nil {
			return
		}

		err = prog.Append(lineno, line, inst)
		if err != nil {
			return
		}

		if rd.Verbose {
			log.Printf("%04x: % x", prog.Size()-inst.Len(), inst.Compile())
		}
	}

	err = scanner.Err()
	if err != nil {
		// The failing line was never returned by the scanner.
		lineno += 1
		line = ""
	}
	return
}
