// Package cpu implements the MOS 6510: an NMOS 6502 core plus the two
// extra on-chip I/O port registers at $0000/$0001. Unlike the teacher's
// ExecuteInstruction, which runs an entire instruction to completion in
// one call and invokes a callback once per cycle, this engine advances
// exactly one bus cycle per call to Tick - the "next micro-step" is held
// as a plain (opcode, step) integer pair rather than a function pointer,
// so a CPU value is itself a complete, directly snapshottable resume
// point.
//
// Grounded on hardware/cpu/cpu.go for the register set, the Reset/Snapshot
// shape, and the RDY/IRQ/NMI semantics; instruction decoding grounds on
// internal/cpu/opcode and internal/cpu/registers.
package cpu

import (
	"github.com/TimothyRLaMora734/virtualc64/internal/cpu/opcode"
	"github.com/TimothyRLaMora734/virtualc64/internal/cpu/registers"
	"github.com/TimothyRLaMora734/virtualc64/internal/curatederr"
)

// Bus is the capability the CPU needs from the rest of the system: a
// single shared address space it can read and write one byte at a time.
type Bus interface {
	Peek(addr uint16) uint8
	Poke(addr uint16, v uint8)
}

// ErrorState records why the CPU is not running normally.
type ErrorState int

const (
	OK ErrorState = iota
	SoftBreakpoint
	HardBreakpoint
	IllegalInstruction
)

func (e ErrorState) String() string {
	switch e {
	case OK:
		return "OK"
	case SoftBreakpoint:
		return "SOFT_BREAKPOINT"
	case HardBreakpoint:
		return "HARD_BREAKPOINT"
	case IllegalInstruction:
		return "ILLEGAL_INSTRUCTION"
	}
	return "UNKNOWN"
}

// BreakpointKind tags an address in the breakpoint table.
type BreakpointKind int

const (
	NoBreakpoint BreakpointKind = iota
	SoftBreak
	HardBreak
)

// interruptKind distinguishes the three ways the generic push-sequence in
// step.go can be entered: a BRK instruction (software), a hardware IRQ,
// or a hardware NMI. Only the vector and the pushed B flag differ.
type interruptKind int

const (
	noInterrupt interruptKind = iota
	brkInterrupt
	irqInterrupt
	nmiInterrupt
)

const (
	irqVector = 0xFFFE
	nmiVector = 0xFFFA
	rstVector = 0xFFFC
)

// microstep is the CPU's entire notion of "where it is" within the
// current instruction: an opcode byte and a step counter. Both are plain
// integers, so a CPU value carries no unresumable state.
type microstep struct {
	Opcode uint8
	Step   int
}

// CPU is the 6510 register file plus pipeline scratch and interrupt
// bookkeeping, per spec.md §3.1.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	next microstep

	// pipeline scratch, named after the real silicon's internal latches.
	addrLo, addrHi uint8
	ptr            uint8
	pcAtFetch      uint16
	overflow       bool // carry-out of an indexed-address low-byte addition
	data           uint8

	// interrupt lines: bitmasks of asserting sources. A source calls
	// AssertIRQ/ClearIRQ or AssertNMI with its own bit.
	irqLine uint8
	nmiLine uint8
	nmiEdge bool // latched 0->1 transition of nmiLine, cleared on service

	nextPossibleIrqCycle uint64
	nextPossibleNmiCycle uint64
	cycleCount           uint64

	rdyLine bool

	// oldI is Status.I sampled before the instruction at PC executes, so
	// that SEI/CLI/PLP/RTI take effect one cycle later than the write to
	// I itself - the classic 6502 "interrupt delay" quirk, extended per
	// SPEC_FULL.md §C to PLP and RTI as well as SEI/CLI.
	oldI bool

	interrupt interruptKind

	errorState  ErrorState
	breakpoints [65536]BreakpointKind

	callStack callStack
}

// New returns a CPU with RDY asserted and all registers zeroed; callers
// should follow with Reset to load the reset vector the way real hardware
// does on power-up.
func New() *CPU {
	c := &CPU{
		SP:      *registers.NewStackPointer(0xFF),
		Status:  registers.NewStatusRegister(),
		rdyLine: true,
	}
	return c
}

// Reset reinitialises registers to their post-RESET state and loads PC
// from the reset vector. Unlike the teacher's Reset (which leaves PC
// alone, deferring the vector load to LoadPC so debuggers can intervene),
// the core has no debugger in the loop by default, so Reset performs the
// full sequence directly; a host that wants to intervene can read PC
// before calling Reset and restore it afterward.
func (c *CPU) Reset(bus Bus) {
	c.A.Load(0)
	c.X.Load(0)
	c.Y.Load(0)
	c.SP.Load(0xFD)
	c.Status.Reset()
	c.Status.I = true

	c.next = microstep{}
	c.addrLo, c.addrHi, c.ptr, c.data = 0, 0, 0, 0
	c.overflow = false
	c.irqLine, c.nmiLine = 0, 0
	c.nmiEdge = false
	c.rdyLine = true
	c.interrupt = noInterrupt
	c.errorState = OK
	c.callStack.clear()

	lo := bus.Peek(rstVector)
	hi := bus.Peek(rstVector + 1)
	c.PC.Load(uint16(hi)<<8 | uint16(lo))
}

// SetRDY sets the RDY line. While false, CPU read cycles stall; writes
// proceed regardless, matching real 6510 behaviour during VIC-II bad
// lines.
func (c *CPU) SetRDY(v bool) { c.rdyLine = v }

// AssertIRQ/ClearIRQ set or clear source's bit in the level-triggered IRQ
// line. CIA timers and cartridges call these with a bit unique to them so
// multiple sources can share the line without stepping on each other.
func (c *CPU) AssertIRQ(source uint8) { c.irqLine |= source }
func (c *CPU) ClearIRQ(source uint8)  { c.irqLine &^= source }

// AssertNMI/ClearNMI set or clear source's bit in the edge-triggered NMI
// line. Asserting any source while the whole line is clear latches nmiEdge.
func (c *CPU) AssertNMI(source uint8) {
	if c.nmiLine == 0 {
		c.nmiEdge = true
	}
	c.nmiLine |= source
}
func (c *CPU) ClearNMI(source uint8) { c.nmiLine &^= source }

// SetBreakpoint/ClearBreakpoint manage the per-address breakpoint table.
func (c *CPU) SetBreakpoint(addr uint16, kind BreakpointKind) { c.breakpoints[addr] = kind }
func (c *CPU) ClearBreakpoint(addr uint16)                    { c.breakpoints[addr] = NoBreakpoint }

// AtInstructionBoundary reports whether the next Tick will begin fetching
// a new instruction rather than continuing one already in flight - the
// granularity a debugger's "step" command single-steps by.
func (c *CPU) AtInstructionBoundary() bool { return c.next.Step == 0 }

// ErrorState reports why the CPU stopped executing normally, if it did.
func (c *CPU) ErrorState() ErrorState { return c.errorState }

// ClearErrorState resumes execution past a breakpoint.
func (c *CPU) ClearErrorState() { c.errorState = OK }

// PC/registers accessors used by disassemblers, debuggers and snapshot
// code without exposing the registers subpackage's method set directly.
func (c *CPU) ProgramCounter() uint16 { return c.PC.Address() }
func (c *CPU) Accumulator() uint8     { return c.A.Value() }
func (c *CPU) RegisterX() uint8       { return c.X.Value() }
func (c *CPU) RegisterY() uint8       { return c.Y.Value() }
func (c *CPU) StackPointer() uint8    { return c.SP.Value() }
func (c *CPU) StatusByte() uint8      { return c.Status.Value() }

// CallStack returns the debug call-stack ring buffer's current contents,
// oldest first.
func (c *CPU) CallStack() []uint16 { return c.callStack.entries() }

// Restore loads the register file from a snapshot. It does not touch
// pipeline scratch, interrupt lines, or breakpoints - a restored CPU
// always resumes at the start of a fresh instruction fetch.
func (c *CPU) Restore(pc uint16, a, x, y, sp, status uint8) {
	c.PC.Load(pc)
	c.A.Load(a)
	c.X.Load(x)
	c.Y.Load(y)
	c.SP.Load(sp)
	c.Status.FromValue(status)
	c.next = microstep{}
}

// Tick advances the CPU by exactly one bus cycle. It is the core's only
// entry point into CPU execution; the system clock calls it once per
// tick, after the VIC-II has done its Phi1/Phi2 work for the cycle.
func (c *CPU) Tick(bus Bus) {
	c.cycleCount++

	if c.errorState != OK {
		return
	}

	if c.next.Step == 0 {
		c.fetch(bus)
		return
	}

	def := opcode.Lookup(c.next.Opcode)
	done := runStep(c, bus, def, c.next.Step)
	if done {
		c.next.Step = 0
	} else {
		c.next.Step++
	}
}

// fetch is step 0 of every instruction: it samples pending interrupts,
// checks breakpoints, and either begins servicing an interrupt or reads
// the next opcode.
func (c *CPU) fetch(bus Bus) {
	if !c.rdyLine {
		return
	}

	pc := c.PC.Address()
	switch c.breakpoints[pc] {
	case HardBreak:
		c.errorState = HardBreakpoint
		return
	case SoftBreak:
		c.errorState = SoftBreakpoint
		c.breakpoints[pc] = NoBreakpoint
	}

	if c.nmiEdge && c.cycleCount >= c.nextPossibleNmiCycle {
		c.nmiEdge = false
		c.interrupt = nmiInterrupt
		c.nextPossibleNmiCycle = c.cycleCount + 1
		c.next = microstep{Opcode: 0x00, Step: 1}
		return
	}
	if c.irqLine != 0 && !c.oldI && c.cycleCount >= c.nextPossibleIrqCycle {
		c.interrupt = irqInterrupt
		c.nextPossibleIrqCycle = c.cycleCount + 1
		c.next = microstep{Opcode: 0x00, Step: 1}
		return
	}

	c.pcAtFetch = pc
	c.oldI = c.Status.I

	op := bus.Peek(pc)
	c.PC.Add(1)

	def := opcode.Lookup(op)
	if def.Mnemonic == "JAM" {
		c.errorState = IllegalInstruction
		return
	}

	c.interrupt = noInterrupt
	c.next = microstep{Opcode: op, Step: 1}
}

// BreakpointError reports curatederr-flavoured errors for host code that
// wants to surface a stopped CPU as a regular error value instead of
// polling ErrorState.
func (c *CPU) BreakpointError() error {
	switch c.errorState {
	case SoftBreakpoint:
		return curatederr.Errorf(curatederr.SoftBreakpoint, c.PC.Address())
	case HardBreakpoint:
		return curatederr.Errorf(curatederr.HardBreakpoint, c.PC.Address())
	case IllegalInstruction:
		return curatederr.Errorf(curatederr.IllegalOpcode, c.next.Opcode, c.pcAtFetch)
	}
	return nil
}
