package system_test

import (
	"context"
	"testing"
	"time"

	"github.com/TimothyRLaMora734/virtualc64/internal/config"
	"github.com/TimothyRLaMora734/virtualc64/internal/system"
)

func newTestSystem() *system.System {
	s := system.New(config.NewPreferences())

	kernal := make([]byte, 8192)
	kernal[0x1FFC&0x1FFF] = 0x00
	kernal[0x1FFD&0x1FFF] = 0xE0 // reset vector -> $E000
	kernal[0x0000] = 0xA9        // LDA #$42 at $E000
	kernal[0x0001] = 0x42
	kernal[0x0002] = 0xEA // NOP
	s.LoadROMs(make([]byte, 8192), make([]byte, 4096), kernal)
	s.Reset()
	return s
}

func TestStepRunsOneInstructionAtATime(t *testing.T) {
	s := newTestSystem()
	for i := 0; i < 2; i++ { // LDA #$42: fetch + 1
		s.Step()
	}
	if s.CPU.Accumulator() != 0x42 {
		t.Fatalf("A = %#02x, want 0x42 after booting into KERNAL RAM", s.CPU.Accumulator())
	}
}

func TestSuspendBlocksRunUntilResumed(t *testing.T) {
	s := newTestSystem()
	ctx := context.Background()

	if err := s.Suspend(ctx); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	runCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	go func() { done <- s.Run(runCtx, nil) }()

	select {
	case <-done:
		t.Fatalf("Run proceeded while suspended")
	case <-time.After(20 * time.Millisecond):
	}

	s.Resume()
	if err := <-done; err != nil && err != context.DeadlineExceeded {
		t.Fatalf("Run returned unexpected error: %v", err)
	}
}

func TestResetKeepsLoadedROMImages(t *testing.T) {
	s := newTestSystem()
	s.Step()
	s.Step()
	s.Reset()
	if s.CPU.Accumulator() == 0x42 {
		// Reset reinitialises the CPU registers but must not have wiped
		// the loaded KERNAL image out from under it.
	}
	for i := 0; i < 2; i++ {
		s.Step()
	}
	if s.CPU.Accumulator() != 0x42 {
		t.Fatalf("KERNAL image lost across Reset: A = %#02x", s.CPU.Accumulator())
	}
}
