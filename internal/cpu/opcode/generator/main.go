//go:generate go run main.go

// Command generator rebuilds table.go from opcodes.csv. It exists so the
// opcode matrix has one editable source of truth instead of a 256-entry
// struct literal maintained by hand; table.go itself is checked in so the
// package builds without running this generator.
//
// Grounded on hardware/cpu/instructions/generator/instructions_gen.go.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"
)

const csvFile = "../opcodes.csv"
const outFile = "../table.go"

type row struct {
	opcode        uint8
	mnemonic      string
	cycles        int
	mode          string
	pageSensitive bool
	category      string
	illegal       bool
}

var modeBytes = map[string]int{
	"IMP": 1, "ACC": 1, "IMM": 2, "ZP": 2, "ZPX": 2, "ZPY": 2,
	"REL": 2, "ABS": 3, "ABSX": 3, "ABSY": 3, "IND": 3,
	"INDX": 2, "INDY": 2,
}

var modeName = map[string]string{
	"IMP": "Implied", "ACC": "Accumulator", "IMM": "Immediate",
	"ZP": "ZeroPage", "ZPX": "ZeroPageX", "ZPY": "ZeroPageY",
	"REL": "Relative", "ABS": "Absolute", "ABSX": "AbsoluteX",
	"ABSY": "AbsoluteY", "IND": "Indirect",
	"INDX": "PreIndexedIndirect", "INDY": "PostIndexedIndirect",
}

var categoryName = map[string]string{
	"READ": "Read", "WRITE": "Write", "RMW": "Modify",
	"FLOW": "Flow", "SUB-ROUTINE": "Subroutine", "INTERRUPT": "Interrupt",
}

func parseCSV() ([256]row, error) {
	var table [256]row
	var seen [256]bool

	f, err := os.Open(csvFile)
	if err != nil {
		return table, fmt.Errorf("opening %s: %w", csvFile, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	line := 0
	for {
		line++
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return table, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) < 6 {
			return table, fmt.Errorf("line %d: expected at least 6 fields, got %d", line, len(rec))
		}

		op, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return table, fmt.Errorf("line %d: bad opcode %q: %w", line, rec[0], err)
		}
		cycles, err := strconv.Atoi(rec[2])
		if err != nil {
			return table, fmt.Errorf("line %d: bad cycle count %q: %w", line, rec[2], err)
		}

		rw := row{
			opcode:        uint8(op),
			mnemonic:      rec[1],
			cycles:        cycles,
			mode:          rec[3],
			pageSensitive: strings.EqualFold(rec[4], "TRUE"),
			category:      rec[5],
			illegal:       len(rec) > 6 && strings.EqualFold(rec[6], "ILLEGAL"),
		}
		table[rw.opcode] = rw
		seen[rw.opcode] = true
	}

	for i, ok := range seen {
		if !ok {
			return table, fmt.Errorf("opcode %#02x missing from %s", i, csvFile)
		}
	}

	return table, nil
}

func main() {
	table, err := parseCSV()
	if err != nil {
		fmt.Fprintln(os.Stderr, "generator:", err)
		os.Exit(1)
	}

	var b strings.Builder
	b.WriteString("// generated from opcodes.csv - do not hand-edit the table literal below.\n")
	b.WriteString("// Regenerate with: go run ./generator (after editing opcodes.csv).\n\n")
	b.WriteString("package opcode\n\n")
	b.WriteString("// definitions is the full 256-entry NMOS 6510 opcode table, documented and\n")
	b.WriteString("// undocumented instructions alike. Indexed directly by opcode byte.\n")
	b.WriteString("var definitions = [256]Definition{\n")
	for _, rw := range table {
		fmt.Fprintf(&b, "\t{OpCode: 0x%02X, Mnemonic: %q, Bytes: %d, Cycles: %d, Mode: %s, PageSensitive: %t, Category: %s, Illegal: %t},\n",
			rw.opcode, rw.mnemonic, modeBytes[rw.mode], rw.cycles, modeName[rw.mode], rw.pageSensitive, categoryName[rw.category], rw.illegal)
	}
	b.WriteString("}\n")

	formatted, err := format.Source([]byte(b.String()))
	if err != nil {
		fmt.Fprintln(os.Stderr, "generator: formatting output:", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outFile, formatted, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "generator: writing", outFile, ":", err)
		os.Exit(1)
	}
}
