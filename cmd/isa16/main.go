// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/ezrec/isa16/isa"
	"github.com/ezrec/isa16/translate"
)

// printTable writes the opcode table, ordered by opcode.
func printTable(out io.Writer) (err error) {
	insts := slices.Collect(isa.All())
	slices.SortFunc(insts, func(a, b isa.Instruction) int {
		return cmp.Compare(a.Opcode(), b.Opcode())
	})

	for _, inst := range insts {
		_, err = fmt.Fprintf(out, "0x%02x %-6v %-4v %d %v\n", inst.Opcode(), inst.Op(), inst.Width(), inst.Len(), inst)
		if err != nil {
			return
		}
	}

	return
}

func main() {
	var compile string
	var output string
	var table bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".s file to encode, or - for stdin")
	flag.StringVar(&output, "o", "-", "Binary output")
	flag.BoolVar(&table, "t", false, "Print the opcode table")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if verbose {
		log.Printf("%v: messages in %v", os.Args[0], translate.Tag())
	}

	if table {
		err := printTable(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(compile) == 0 {
		if !table {
			flag.Usage()
			os.Exit(2)
		}
		return
	}

	var inf io.Reader = os.Stdin
	if compile != "-" {
		file, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer file.Close()
		inf = file
	}

	rd := &isa.Reader{Verbose: verbose}
	prog, err := rd.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	_, err = ouf.Write(prog.Binary())
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if verbose {
		log.Printf("%v: %d instructions, %d bytes", compile, len(prog.Statements), prog.Size())
	}
}
