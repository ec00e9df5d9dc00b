package cpu_test

import (
	"testing"

	"github.com/TimothyRLaMora734/virtualc64/internal/cpu"
)

// ramBus is a flat 64K array satisfying cpu.Bus, used to drive the engine
// in isolation from the rest of the machine.
type ramBus struct {
	mem [65536]byte
}

func (b *ramBus) Peek(addr uint16) uint8     { return b.mem[addr] }
func (b *ramBus) Poke(addr uint16, v uint8) { b.mem[addr] = v }

func newMachine(program []byte, at uint16) (*cpu.CPU, *ramBus) {
	bus := &ramBus{}
	copy(bus.mem[at:], program)
	bus.mem[0xFFFC] = uint8(at)
	bus.mem[0xFFFD] = uint8(at >> 8)
	c := cpu.New()
	c.Reset(bus)
	return c, bus
}

func TestLDAImmediateLoadsAccumulator(t *testing.T) {
	c, bus := newMachine([]byte{0xA9, 0x42}, 0xC000)
	c.Tick(bus) // fetch
	c.Tick(bus) // immediate read + execute
	if c.Accumulator() != 0x42 {
		t.Fatalf("A = %#02x, want 0x42", c.Accumulator())
	}
}

func TestLDAImmediateSetsZeroFlag(t *testing.T) {
	c, bus := newMachine([]byte{0xA9, 0x00}, 0xC000)
	c.Tick(bus)
	c.Tick(bus)
	if c.StatusByte()&0x02 == 0 {
		t.Fatalf("Z flag not set after LDA #$00")
	}
}

func TestSTAAbsoluteWritesMemory(t *testing.T) {
	// LDA #$7F; STA $0400
	c, bus := newMachine([]byte{0xA9, 0x7F, 0x8D, 0x00, 0x04}, 0xC000)
	for i := 0; i < 2+4; i++ {
		c.Tick(bus)
	}
	if bus.mem[0x0400] != 0x7F {
		t.Fatalf("mem[$0400] = %#02x, want 0x7F", bus.mem[0x0400])
	}
}

func TestINXWraps(t *testing.T) {
	c, bus := newMachine([]byte{0xE8}, 0xC000) // INX
	c.X.Load(0xFF)
	for i := 0; i < 2; i++ {
		c.Tick(bus)
	}
	if c.RegisterX() != 0x00 {
		t.Fatalf("X = %#02x, want 0x00", c.RegisterX())
	}
	if c.StatusByte()&0x02 == 0 {
		t.Fatalf("Z flag not set after INX wraps to zero")
	}
}

func TestJSRThenRTSReturnsToCallSite(t *testing.T) {
	// JSR $C010; NOP (at $C003, the return site); ... ; $C010: RTS
	program := make([]byte, 0x20)
	program[0x00] = 0x20 // JSR
	program[0x01] = 0x10
	program[0x02] = 0xC0
	program[0x03] = 0xEA // NOP, the return site
	program[0x10] = 0x60 // RTS
	c, bus := newMachine(program, 0xC000)

	for i := 0; i < 6; i++ { // JSR: fetch + 5 steps = 6 cycles
		c.Tick(bus)
	}
	if c.ProgramCounter() != 0xC010 {
		t.Fatalf("PC after JSR = %#04x, want 0xc010", c.ProgramCounter())
	}
	if got := c.CallStack(); len(got) != 1 || got[0] != 0xC010 {
		t.Fatalf("call stack after JSR = %v, want [0xc010]", got)
	}

	for i := 0; i < 6; i++ { // RTS: fetch + 5 steps = 6 cycles
		c.Tick(bus)
	}
	if c.ProgramCounter() != 0xC003 {
		t.Fatalf("PC after RTS = %#04x, want 0xc003", c.ProgramCounter())
	}
	if got := c.CallStack(); len(got) != 0 {
		t.Fatalf("call stack after RTS = %v, want empty", got)
	}
}

func TestBranchNotTakenCostsTwoCycles(t *testing.T) {
	// BEQ +2 with Z clear: should not branch.
	c, bus := newMachine([]byte{0xF0, 0x02}, 0xC000)
	c.Tick(bus)
	c.Tick(bus)
	if c.ProgramCounter() != 0xC002 {
		t.Fatalf("PC = %#04x, want 0xc002 (branch not taken)", c.ProgramCounter())
	}
}

func TestBranchTakenSamePageCostsThreeCycles(t *testing.T) {
	// BNE +2 with Z clear: branch taken, same page.
	c, bus := newMachine([]byte{0xD0, 0x02}, 0xC000)
	for i := 0; i < 3; i++ {
		c.Tick(bus)
	}
	if c.ProgramCounter() != 0xC004 {
		t.Fatalf("PC = %#04x, want 0xc004", c.ProgramCounter())
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	// pointer at $30FF; low byte at $30FF, high byte wrongly fetched from
	// $3000 instead of $3100.
	program := make([]byte, 0x200)
	program[0] = 0x6C // JMP (ind)
	program[1] = 0xFF
	program[2] = 0x30
	c, bus := newMachine(program, 0xC000)
	bus.mem[0x30FF] = 0x34
	bus.mem[0x3100] = 0x12 // correct high byte, should NOT be used
	bus.mem[0x3000] = 0x56 // wrapped high byte, SHOULD be used

	for i := 0; i < 5; i++ {
		c.Tick(bus)
	}
	if c.ProgramCounter() != 0x5634 {
		t.Fatalf("PC = %#04x, want 0x5634 (page-wrap bug)", c.ProgramCounter())
	}
}

func TestBRKPushesStatusWithBSetAndDisablesInterrupts(t *testing.T) {
	c, bus := newMachine([]byte{0x00}, 0xC000) // BRK
	bus.mem[0xFFFE] = 0x00
	bus.mem[0xFFFF] = 0xD0
	for i := 0; i < 7; i++ {
		c.Tick(bus)
	}
	if c.ProgramCounter() != 0xD000 {
		t.Fatalf("PC = %#04x, want 0xd000", c.ProgramCounter())
	}
	if c.StatusByte()&0x04 == 0 {
		t.Fatalf("I flag not set after BRK")
	}
	sp := c.StackPointer()
	pushedStatus := bus.mem[0x0100|uint16(sp+1)]
	if pushedStatus&0x10 == 0 {
		t.Fatalf("B flag not set in status pushed by BRK")
	}
}

func TestHardBreakpointHaltsBeforeExecution(t *testing.T) {
	c, bus := newMachine([]byte{0xA9, 0x42}, 0xC000)
	c.SetBreakpoint(0xC000, cpu.HardBreak)
	c.Tick(bus)
	if c.ErrorState() != cpu.HardBreakpoint {
		t.Fatalf("ErrorState = %s, want HARD_BREAKPOINT", c.ErrorState())
	}
	if c.Accumulator() != 0 {
		t.Fatalf("A = %#02x, instruction should not have executed", c.Accumulator())
	}
}

func TestRDYStallsFetch(t *testing.T) {
	c, bus := newMachine([]byte{0xEA}, 0xC000) // NOP
	c.SetRDY(false)
	pc := c.ProgramCounter()
	for i := 0; i < 5; i++ {
		c.Tick(bus)
	}
	if c.ProgramCounter() != pc {
		t.Fatalf("PC advanced while RDY held low: %#04x -> %#04x", pc, c.ProgramCounter())
	}
}
