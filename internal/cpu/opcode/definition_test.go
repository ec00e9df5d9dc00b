package opcode_test

import (
	"testing"

	"github.com/TimothyRLaMora734/virtualc64/internal/cpu/opcode"
)

func TestTableIsTotal(t *testing.T) {
	for i := 0; i < 256; i++ {
		d := opcode.Lookup(uint8(i))
		if d.OpCode != uint8(i) {
			t.Fatalf("opcode %#02x: table entry has OpCode %#02x", i, d.OpCode)
		}
		if d.Mnemonic == "" {
			t.Fatalf("opcode %#02x: empty mnemonic", i)
		}
	}
}

func TestKnownDocumentedOpcodes(t *testing.T) {
	cases := []struct {
		op     uint8
		mnem   string
		mode   opcode.AddressingMode
		cycles int
	}{
		{0xA9, "LDA", opcode.Immediate, 2},
		{0x8D, "STA", opcode.Absolute, 4},
		{0x4C, "JMP", opcode.Absolute, 3},
		{0x20, "JSR", opcode.Absolute, 6},
		{0x60, "RTS", opcode.Implied, 6},
		{0x00, "BRK", opcode.Implied, 7},
		{0xEA, "NOP", opcode.Implied, 2},
		{0x6C, "JMP", opcode.Indirect, 5},
	}
	for _, c := range cases {
		d := opcode.Lookup(c.op)
		if d.Mnemonic != c.mnem || d.Mode != c.mode || d.Cycles != c.cycles {
			t.Errorf("opcode %#02x: got %s/%s/%d, want %s/%s/%d",
				c.op, d.Mnemonic, d.Mode, d.Cycles, c.mnem, c.mode, c.cycles)
		}
	}
}

func TestIndirectJMPBugOpcodeIsPlainIndirect(t *testing.T) {
	// the table itself only records addressing mode; the page-wrap bug at
	// $xxFF lives in the CPU engine's indirect-fetch micro-step, not here.
	d := opcode.Lookup(0x6C)
	if d.Mode != opcode.Indirect {
		t.Fatalf("JMP (ind) should use Indirect mode, got %s", d.Mode)
	}
}

func TestUndocumentedOpcodesAreMarkedIllegal(t *testing.T) {
	for _, op := range []uint8{0x02, 0x1A, 0xA7, 0x0B, 0xEB} {
		if !opcode.Lookup(op).Illegal {
			t.Errorf("opcode %#02x should be marked illegal", op)
		}
	}
	for _, op := range []uint8{0xA9, 0x00, 0x60} {
		if opcode.Lookup(op).Illegal {
			t.Errorf("opcode %#02x should not be marked illegal", op)
		}
	}
}
