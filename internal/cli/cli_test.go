package cli_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/TimothyRLaMora734/virtualc64/internal/cli"
	"github.com/TimothyRLaMora734/virtualc64/internal/config"
	"github.com/TimothyRLaMora734/virtualc64/internal/container"
	"github.com/TimothyRLaMora734/virtualc64/internal/cpu"
	"github.com/TimothyRLaMora734/virtualc64/internal/system"
)

func newTestSystem(t *testing.T) *system.System {
	t.Helper()
	s := system.New(config.NewPreferences())
	kernal := make([]byte, 8192)
	kernal[0x1FFC&0x1FFF] = 0x00
	kernal[0x1FFD&0x1FFF] = 0xE0
	kernal[0x0000] = 0xA9 // LDA #$42
	kernal[0x0001] = 0x42
	kernal[0x0002] = 0x4C // JMP $E000
	kernal[0x0003] = 0x00
	kernal[0x0004] = 0xE0
	s.LoadROMs(make([]byte, 8192), make([]byte, 4096), kernal)
	s.Reset()
	return s
}

func TestStepInstructionStopsAtBoundary(t *testing.T) {
	s := newTestSystem(t)
	c := cli.New(s, &bytes.Buffer{})
	c.StepInstruction()
	if s.CPU.Accumulator() != 0x42 {
		t.Fatalf("A = %#02x, want 0x42 after one instruction", s.CPU.Accumulator())
	}
	if !s.CPU.AtInstructionBoundary() {
		t.Fatalf("CPU not at an instruction boundary after StepInstruction")
	}
}

func TestRunThenHaltStopsTheMachine(t *testing.T) {
	s := newTestSystem(t)
	c := cli.New(s, &bytes.Buffer{})
	c.Run()
	time.Sleep(5 * time.Millisecond)
	c.Halt()
	cycles := s.TotalCycles()
	time.Sleep(5 * time.Millisecond)
	if s.TotalCycles() != cycles {
		t.Fatalf("machine kept running after Halt")
	}
}

func TestBreakpointHaltsStepInstruction(t *testing.T) {
	s := newTestSystem(t)
	c := cli.New(s, &bytes.Buffer{})
	c.SetBreakpoint(0xE002, cpu.HardBreak)
	c.StepInstruction() // executes LDA #$42, leaving PC at $E002
	c.StepInstruction() // fetch at $E002 now hits the breakpoint
	if s.CPU.ErrorState() != cpu.HardBreakpoint {
		t.Fatalf("ErrorState = %v, want HardBreakpoint", s.CPU.ErrorState())
	}
}

func TestInsertTapeAndSelectItem(t *testing.T) {
	s := newTestSystem(t)
	c := cli.New(s, &bytes.Buffer{})

	payload := []byte{0xAA, 0xBB}
	hdr := make([]byte, 0x40)
	copy(hdr, "C64 tape image file")
	hdr[0x22] = 1
	entry := make([]byte, 32)
	entry[0] = 1 // used
	entry[2], entry[3] = 0x01, 0x08
	entry[4], entry[5] = 0x03, 0x08
	entry[8] = 0x60
	copy(entry[16:], "PRG")
	raw := append(append(hdr, entry...), payload...)

	tp, err := container.ParseT64(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseT64: %v", err)
	}
	c.InsertTape(tp)

	name, dest, err := c.SelectTapeItem(0)
	if err != nil {
		t.Fatalf("SelectTapeItem: %v", err)
	}
	if name != "PRG" || dest != 0x0801 {
		t.Fatalf("name=%q dest=%#04x", name, dest)
	}

	var got []byte
	for {
		b, ok := c.ReadTapeItem()
		if !ok {
			break
		}
		got = append(got, b)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("ReadTapeItem = %v, want %v", got, payload)
	}
}
