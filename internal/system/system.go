// Package system ties the bus, CPU, VIC-II, CIAs, and expansion port
// together into one cycle-stepped machine and owns the suspend/resume
// nesting lock spec.md §5 requires around any access that needs the
// machine held still (snapshotting, single-stepping from a debugger).
//
// Grounded on hardware/tia+cpu wiring inside gopher2600.go's VCS struct
// for the top-level "own everything, step everything in order" shape,
// generalized from the Atari's single video-chip-drives-CPU
// relationship to the C64's five-way per-cycle dispatch order spec.md
// §4.5 specifies: VIC-II cycle, CPU micro-step, CIA1 cycle, CIA2 cycle,
// cartridge execute, SID cycle accumulator.
package system

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/TimothyRLaMora734/virtualc64/internal/bus"
	"github.com/TimothyRLaMora734/virtualc64/internal/cartridge"
	"github.com/TimothyRLaMora734/virtualc64/internal/ciahook"
	"github.com/TimothyRLaMora734/virtualc64/internal/config"
	"github.com/TimothyRLaMora734/virtualc64/internal/cpu"
	"github.com/TimothyRLaMora734/virtualc64/internal/logger"
	"github.com/TimothyRLaMora734/virtualc64/internal/vic"
)

const (
	nmiSourceCIA2       uint8 = 0x01
	irqSourceCIA1       uint8 = 0x01
	irqSourceVIC        uint8 = 0x02
)

// sidStub stands in for the SID's cycle accumulator: spec.md §1 scopes
// audio synthesis out of this core entirely, but the clock still owns a
// per-cycle counter so a future SID implementation has a real place to
// plug in without changing the tick order.
type sidStub struct {
	cycles uint64
}

func (s *sidStub) Peek(uint8) uint8   { return 0xFF }
func (s *sidStub) Poke(uint8, uint8) {}
func (s *sidStub) Execute()          { s.cycles++ }

// Clock is the suspend/resume nesting lock: acquiring it models "the
// run loop may proceed", and a suspend call holds it until every nested
// resume has unwound, blocking the run loop out for the duration.
type Clock struct {
	sem          *semaphore.Weighted
	mu           sync.Mutex
	suspendDepth int
}

// NewClock returns an unsuspended clock.
func NewClock() *Clock { return &Clock{sem: semaphore.NewWeighted(1)} }

// Suspend blocks until the run loop yields, then holds it paused. Nested
// calls stack: the run loop only resumes after the same number of Resume
// calls.
func (c *Clock) Suspend(ctx context.Context) error {
	c.mu.Lock()
	first := c.suspendDepth == 0
	c.suspendDepth++
	c.mu.Unlock()
	if first {
		return c.sem.Acquire(ctx, 1)
	}
	return nil
}

// Resume undoes one Suspend call; the run loop is released once the
// nesting count returns to zero.
func (c *Clock) Resume() {
	c.mu.Lock()
	c.suspendDepth--
	last := c.suspendDepth == 0
	c.mu.Unlock()
	if last {
		c.sem.Release(1)
	}
}

func (c *Clock) gate(ctx context.Context, fn func()) error {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.sem.Release(1)
	fn()
	return nil
}

// System owns every component and drives them in lockstep.
type System struct {
	Prefs *config.Preferences
	Bus   *bus.Bus
	CPU   *cpu.CPU
	VIC   *vic.VIC
	CIA1  *ciahook.CIA
	CIA2  *ciahook.CIA
	SID   *sidStub
	Cart  cartridge.Cartridge

	clock *Clock

	totalCycles uint64
}

// New builds a fully wired, reset machine for the given preferences.
func New(prefs *config.Preferences) *System {
	b := bus.New()
	c1 := ciahook.New()
	c2 := ciahook.New()
	sid := &sidStub{}

	s := &System{
		Prefs: prefs,
		Bus:   b,
		CPU:   cpu.New(),
		VIC:   vic.New(prefs.Model, b),
		CIA1:  c1,
		CIA2:  c2,
		SID:   sid,
		Cart:  &noCartridge{},
		clock: NewClock(),
	}

	b.AttachVIC(s.VIC)
	b.AttachSID(sid)
	b.AttachCIA1(c1)
	b.AttachCIA2(c2)
	b.AttachCartridge(s.Cart)

	s.CPU.Reset(b)
	return s
}

// noCartridge is the expansion-port-empty default, matching the bus's
// own null device until AttachCartridge is called.
type noCartridge struct{}

func (noCartridge) GameLine() bool              { return true }
func (noCartridge) ExromLine() bool             { return true }
func (noCartridge) PeekROML(uint16) uint8       { return 0 }
func (noCartridge) PeekROMH(uint16) uint8       { return 0 }
func (noCartridge) PokeROML(uint16, uint8) bool { return false }
func (noCartridge) PokeROMH(uint16, uint8) bool { return false }
func (noCartridge) PeekIO1(uint16) uint8        { return 0 }
func (noCartridge) PokeIO1(uint16, uint8)       {}
func (noCartridge) PeekIO2(uint16) uint8        { return 0 }
func (noCartridge) PokeIO2(uint16, uint8)       {}
func (noCartridge) Reset()                      {}
func (noCartridge) PressButton(int)             {}
func (noCartridge) ReleaseButton(int)           {}
func (noCartridge) SetSwitch(int)                {}
func (noCartridge) LED() bool                    { return false }
func (noCartridge) Battery() bool                { return false }
func (noCartridge) NMIWillTrigger() bool         { return false }
func (noCartridge) NMIDidTrigger()               {}
func (noCartridge) Execute()                     {}
func (noCartridge) Kind() cartridge.Kind         { return cartridge.None }
func (noCartridge) SaveState() interface{}       { return nil }
func (noCartridge) RestoreState(interface{}) error { return nil }

// AttachCartridge replaces the expansion port contents and refreshes the
// bus's memory map from the new GAME/EXROM lines.
func (s *System) AttachCartridge(c cartridge.Cartridge) {
	s.Cart = c
	s.Bus.AttachCartridge(c)
}

// DetachCartridge restores the empty expansion port.
func (s *System) DetachCartridge() {
	s.AttachCartridge(&noCartridge{})
}

// LoadROMs installs the three mandatory system ROM images.
func (s *System) LoadROMs(basic, char, kernal []byte) {
	s.Bus.LoadBasicROM(basic)
	s.Bus.LoadCharROM(char)
	s.Bus.LoadKernalROM(kernal)
}

// Reset restarts the CPU and cartridge; RAM and loaded ROM images are
// kept, per spec.md §3.5's KEEP_ON_RESET set.
func (s *System) Reset() {
	s.Cart.Reset()
	s.CPU.Reset(s.Bus)
}

// Step advances the machine by exactly one bus cycle, in the order
// spec.md §4.5 specifies.
func (s *System) Step() {
	s.VIC.Tick()
	s.CPU.SetRDY(s.VIC.RDY())

	s.CPU.Tick(s.Bus)

	s.CIA1.Execute()
	s.CIA2.Execute()
	s.Cart.Execute()
	s.SID.Execute()

	s.VIC.SetBank(^s.CIA2.PortA() & 0x03)

	if s.VIC.IRQ() {
		s.CPU.AssertIRQ(irqSourceVIC)
	} else {
		s.CPU.ClearIRQ(irqSourceVIC)
	}
	if s.CIA1.IRQLine() {
		s.CPU.AssertIRQ(irqSourceCIA1)
	} else {
		s.CPU.ClearIRQ(irqSourceCIA1)
	}
	if s.CIA2.IRQLine() {
		s.CPU.AssertNMI(nmiSourceCIA2)
	} else {
		s.CPU.ClearNMI(nmiSourceCIA2)
	}

	if s.Cart.NMIWillTrigger() {
		s.CPU.AssertNMI(0x02)
		s.Cart.NMIDidTrigger()
	} else {
		s.CPU.ClearNMI(0x02)
	}

	s.totalCycles++

	if err := s.CPU.BreakpointError(); err != nil {
		logger.Logf("system", "halted: %v", err)
	}
}

// TotalCycles returns the number of Step calls made since power-on.
func (s *System) TotalCycles() uint64 { return s.totalCycles }

// Suspend/Resume expose the nesting lock to callers (the debugger,
// snapshot save/restore) that need the machine held still.
func (s *System) Suspend(ctx context.Context) error { return s.clock.Suspend(ctx) }
func (s *System) Resume()                            { s.clock.Resume() }

// Run steps the machine continuously until ctx is cancelled or stop
// returns true, honouring the suspend lock between cycles so a suspend
// request is never starved by a tight run loop.
func (s *System) Run(ctx context.Context, stop func() bool) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if stop != nil && stop() {
			return nil
		}
		if err := s.clock.gate(ctx, s.Step); err != nil {
			return err
		}
		if s.CPU.ErrorState() != cpu.OK {
			return nil
		}
	}
}
