package snapshot_test

import (
	"bytes"
	"testing"

	"github.com/TimothyRLaMora734/virtualc64/internal/cartridge"
	"github.com/TimothyRLaMora734/virtualc64/internal/config"
	"github.com/TimothyRLaMora734/virtualc64/internal/snapshot"
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
	kernal[0x0002] = 0xEA // NOP
	s.LoadROMs(make([]byte, 8192), make([]byte, 4096), kernal)
	s.Reset()
	return s
}

func TestSaveThenLoadAppliesRoundTripsRegisterState(t *testing.T) {
	s := newTestSystem(t)
	for i := 0; i < 2; i++ {
		s.Step()
	}
	if s.CPU.Accumulator() != 0x42 {
		t.Fatalf("setup: A = %#02x, want 0x42", s.CPU.Accumulator())
	}

	var buf bytes.Buffer
	shot := snapshot.Screenshot{Width: 2, Height: 1, Pixels: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	if err := snapshot.Save(&buf, s, shot, 1700000000); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// mutate the live machine so restoring is actually observable.
	s.Bus.RAM()[0] = 0xFF
	s.Reset()
	if s.CPU.Accumulator() == 0x42 {
		t.Fatalf("setup: Reset should have cleared A")
	}

	snap, err := snapshot.Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Screenshot.Width != 2 || snap.Screenshot.Height != 1 {
		t.Fatalf("screenshot dims = %dx%d", snap.Screenshot.Width, snap.Screenshot.Height)
	}
	if !bytes.Equal(snap.Screenshot.Pixels, shot.Pixels) {
		t.Fatalf("screenshot pixels not round-tripped")
	}

	if err := snap.Apply(s); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.CPU.Accumulator() != 0x42 {
		t.Fatalf("A after Apply = %#02x, want 0x42", s.CPU.Accumulator())
	}
	if s.CPU.ProgramCounter() != 0xE002 {
		t.Fatalf("PC after Apply = %#04x, want 0xE002", s.CPU.ProgramCounter())
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	if _, err := snapshot.Load(bytes.NewReader([]byte("NOPE................"))); err == nil {
		t.Fatalf("expected error for bad magic")
	}
}

func TestApplyRejectsMismatchedCartridgeKind(t *testing.T) {
	s := newTestSystem(t)

	var buf bytes.Buffer
	if err := snapshot.Save(&buf, s, snapshot.Screenshot{}, 0); err != nil {
		t.Fatalf("Save: %v", err)
	}

	snap, err := snapshot.Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cart, err := cartridge.New(cartridge.EasyFlash, true, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.AttachCartridge(cart)

	if err := snap.Apply(s); err == nil {
		t.Fatalf("expected error applying a snapshot taken with no cartridge onto an EasyFlash-equipped machine")
	}
}
