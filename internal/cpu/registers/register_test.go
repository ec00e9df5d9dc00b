package registers_test

import (
	"testing"

	"github.com/TimothyRLaMora734/virtualc64/internal/cpu/registers"
)

func TestRegisterAddition(t *testing.T) {
	r := registers.NewRegister(0, "test")
	if !r.IsZero() {
		t.Fatal("new register should be zero")
	}

	r.Load(127)
	r.Add(2, false)
	if r.Value() != 129 {
		t.Fatalf("127+2 = %d, want 129", r.Value())
	}

	r.Load(255)
	carry, overflow := r.Add(1, false)
	if !carry || overflow {
		t.Fatalf("255+1: carry=%v overflow=%v, want carry=true overflow=false", carry, overflow)
	}
	if !r.IsZero() {
		t.Fatal("255+1 should wrap to zero")
	}

	r.Load(0x7F)
	_, overflow = r.Add(1, false)
	if !overflow {
		t.Fatal("0x7F+1 should set overflow (signed boundary)")
	}
}

func TestRegisterSubtraction(t *testing.T) {
	r := registers.NewRegister(11, "test")
	r.Subtract(1, true)
	if r.Value() != 10 {
		t.Fatalf("11-1 (carry in) = %d, want 10", r.Value())
	}

	r.Load(12)
	r.Subtract(1, false)
	if r.Value() != 10 {
		t.Fatalf("12-1 (no carry in) = %d, want 10", r.Value())
	}
}

func TestRegisterShiftsAndRotates(t *testing.T) {
	r := registers.NewRegister(0x80, "test")
	carry := r.ASL()
	if !carry || r.Value() != 0 {
		t.Fatalf("ASL 0x80 = %#02x carry=%v, want 0x00 carry=true", r.Value(), carry)
	}

	r.Load(0x01)
	carry = r.LSR()
	if !carry || r.Value() != 0 {
		t.Fatalf("LSR 0x01 = %#02x carry=%v, want 0x00 carry=true", r.Value(), carry)
	}

	r.Load(0x80)
	carry = r.ROL(false)
	if !carry || r.Value() != 0 {
		t.Fatalf("ROL 0x80,false = %#02x carry=%v, want 0x00 carry=true", r.Value(), carry)
	}

	r.Load(0x00)
	carry = r.ROR(true)
	if carry || r.Value() != 0x80 {
		t.Fatalf("ROR 0x00,true = %#02x carry=%v, want 0x80 carry=false", r.Value(), carry)
	}
}

func TestRegisterLogic(t *testing.T) {
	r := registers.NewRegister(0xF0, "test")
	r.AND(0x0F)
	if r.Value() != 0 {
		t.Fatalf("0xF0 AND 0x0F = %#02x, want 0", r.Value())
	}
	r.ORA(0x55)
	if r.Value() != 0x55 {
		t.Fatalf("0 ORA 0x55 = %#02x, want 0x55", r.Value())
	}
	r.EOR(0xFF)
	if r.Value() != 0xAA {
		t.Fatalf("0x55 EOR 0xFF = %#02x, want 0xAA", r.Value())
	}
}

func TestProgramCounterWraps(t *testing.T) {
	pc := registers.NewProgramCounter(0xFFFF)
	carry := pc.Add(1)
	if !carry || pc.Address() != 0 {
		t.Fatalf("PC 0xFFFF+1 = %#04x carry=%v, want 0x0000 carry=true", pc.Address(), carry)
	}
}

func TestStatusRegisterRoundTrip(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.N, sr.C, sr.Z = true, true, true
	v := sr.Value()
	if v&0x20 == 0 {
		t.Fatal("unused bit 5 must always read as 1")
	}

	var sr2 registers.StatusRegister
	sr2.FromValue(v)
	if sr2.N != true || sr2.C != true || sr2.Z != true || sr2.V || sr2.B || sr2.D || sr2.I {
		t.Fatalf("round-trip mismatch: %+v", sr2)
	}
}
