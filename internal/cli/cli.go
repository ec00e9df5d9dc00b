//go:build !windows

// Package cli implements the host-facing control surface spec.md §6
// names: run/halt, single-step by cycle or by instruction, breakpoint
// set/clear, attach/detach the expansion port, insert/eject a tape, and
// press/release a cartridge's physical controls - plus a raw-mode
// terminal binding for driving all of it interactively from a keyboard.
//
// The raw-mode stdin loop grounds on terminal_host.go's
// golang.org/x/term.MakeRaw/Restore pattern (non-blocking fd, a reader
// goroutine routing bytes into a device, Stop() restoring the terminal);
// the run/halt/step vocabulary it sits on top of grounds on
// debugger/quantum.go's step-granularity distinction, generalized from
// instruction-vs-video-cycle quanta to this core's cycle-vs-instruction
// pair.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/TimothyRLaMora734/virtualc64/internal/cartridge"
	"github.com/TimothyRLaMora734/virtualc64/internal/container"
	"github.com/TimothyRLaMora734/virtualc64/internal/cpu"
	"github.com/TimothyRLaMora734/virtualc64/internal/curatederr"
	"github.com/TimothyRLaMora734/virtualc64/internal/system"
)

// CLI drives a System from either direct method calls (a test, a script,
// another UI) or the raw-keyboard binding Start/Stop install.
type CLI struct {
	Sys *system.System
	Out io.Writer

	tape   *container.T64
	tapeAt container.ItemSource

	fd           int
	oldTermState *term.State
	nonblockSet  bool
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once

	runCancel context.CancelFunc
	runDone   chan struct{}
}

// New returns a CLI bound to sys, writing any output (prompts, status
// lines) to out.
func New(sys *system.System, out io.Writer) *CLI {
	return &CLI{Sys: sys, Out: out}
}

// Run starts the machine running freely in the background until Halt is
// called or the CPU enters an error state. It returns immediately; the
// run loop's eventual error (if any) is written to Out.
func (c *CLI) Run() {
	if c.runCancel != nil {
		return // already running
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.runCancel = cancel
	done := make(chan struct{})
	c.runDone = done
	go func() {
		defer close(done)
		if err := c.Sys.Run(ctx, nil); err != nil && err != context.Canceled {
			fmt.Fprintf(c.Out, "run stopped: %v\n", err)
		}
	}()
}

// Halt stops a Run started above. It is a no-op if the machine was not
// running.
func (c *CLI) Halt() {
	if c.runCancel == nil {
		return
	}
	c.runCancel()
	<-c.runDone
	c.runCancel = nil
}

// Step advances the machine by exactly one bus cycle (the "video" quantum).
func (c *CLI) Step() { c.Sys.Step() }

// StepInstruction advances until the CPU has completed one whole
// instruction (the "instruction" quantum), or until it halts on a
// breakpoint or error first.
func (c *CLI) StepInstruction() {
	c.Sys.Step()
	for !c.Sys.CPU.AtInstructionBoundary() && c.Sys.CPU.ErrorState() == cpu.OK {
		c.Sys.Step()
	}
}

// StepOver behaves like StepInstruction, except a JSR is run to
// completion rather than stepped into: it advances until the call stack
// returns to its depth at the start of the call.
func (c *CLI) StepOver() {
	depth := len(c.Sys.CPU.CallStack())
	c.StepInstruction()
	for len(c.Sys.CPU.CallStack()) > depth && c.Sys.CPU.ErrorState() == cpu.OK {
		c.StepInstruction()
	}
}

// SetBreakpoint/ClearBreakpoint manage the CPU's per-address breakpoint
// table.
func (c *CLI) SetBreakpoint(addr uint16, kind cpu.BreakpointKind) { c.Sys.CPU.SetBreakpoint(addr, kind) }
func (c *CLI) ClearBreakpoint(addr uint16)                        { c.Sys.CPU.ClearBreakpoint(addr) }

// AttachCartridge/DetachCartridge manage the expansion port.
func (c *CLI) AttachCartridge(cart cartridge.Cartridge) { c.Sys.AttachCartridge(cart) }
func (c *CLI) DetachCartridge()                         { c.Sys.DetachCartridge() }

// InsertTape makes a parsed T64 archive's items available to SelectTapeItem.
func (c *CLI) InsertTape(t *container.T64) {
	c.tape = t
	c.tapeAt = t.Cursor()
}

// EjectTape removes the currently inserted tape.
func (c *CLI) EjectTape() {
	c.tape = nil
	c.tapeAt = nil
}

// SelectTapeItem chooses one directory entry of the inserted tape to
// read from, returning its name and destination address.
func (c *CLI) SelectTapeItem(i int) (name string, destAddr uint16, err error) {
	if c.tapeAt == nil {
		return "", 0, curatederr.Errorf(curatederr.InvariantViolation, "cli: no tape inserted")
	}
	if err := c.tapeAt.SelectItem(i); err != nil {
		return "", 0, err
	}
	return c.tapeAt.NameOfItem(), c.tapeAt.DestinationAddrOfItem(), nil
}

// ReadTapeItem reads the next byte of the currently selected tape item.
func (c *CLI) ReadTapeItem() (b byte, ok bool) {
	if c.tapeAt == nil {
		return 0, false
	}
	return c.tapeAt.ReadItem()
}

// PressButton/ReleaseButton/SetSwitch forward to the attached cartridge's
// physical controls.
func (c *CLI) PressButton(n int)   { c.Sys.Cart.PressButton(n) }
func (c *CLI) ReleaseButton(n int) { c.Sys.Cart.ReleaseButton(n) }
func (c *CLI) SetSwitch(pos int)   { c.Sys.Cart.SetSwitch(pos) }

// Start puts stdin into raw mode and begins routing single keystrokes to
// commands in a background goroutine. Call Stop to restore the terminal.
// Only meant for interactive use - never called from a test.
func (c *CLI) Start() error {
	c.fd = int(os.Stdin.Fd())
	c.stopCh = make(chan struct{})
	c.done = make(chan struct{})

	oldState, err := term.MakeRaw(c.fd)
	if err != nil {
		close(c.done)
		return curatederr.Errorf(curatederr.InvariantViolation, fmt.Sprintf("cli: raw mode: %v", err))
	}
	c.oldTermState = oldState

	if err := syscall.SetNonblock(c.fd, true); err != nil {
		_ = term.Restore(c.fd, c.oldTermState)
		c.oldTermState = nil
		close(c.done)
		return curatederr.Errorf(curatederr.InvariantViolation, fmt.Sprintf("cli: nonblocking stdin: %v", err))
	}
	c.nonblockSet = true

	go c.readLoop()
	return nil
}

// Done returns a channel that closes once the keyboard loop has quit,
// either because 'q' was pressed or Stop was called. A host's main
// routine blocks on this after Start to stay alive until the user is
// finished, without reaching into the loop's own stop plumbing.
func (c *CLI) Done() <-chan struct{} { return c.stopCh }

// Stop restores stdin to its original mode and stops the key-reading
// goroutine. Halts a running machine first.
func (c *CLI) Stop() {
	c.Halt()
	c.stopped.Do(func() {
		if c.stopCh != nil {
			close(c.stopCh)
		}
	})
	if c.done != nil {
		<-c.done
	}
	if c.nonblockSet {
		_ = syscall.SetNonblock(c.fd, false)
		c.nonblockSet = false
	}
	if c.oldTermState != nil {
		_ = term.Restore(c.fd, c.oldTermState)
		c.oldTermState = nil
	}
}

// readLoop is the raw-keystroke dispatch table: r=run, h=halt, s=step
// one cycle, i=step one instruction, o=step over, q=quit (stops the
// loop; does not touch the terminal, that is Stop's job).
func (c *CLI) readLoop() {
	defer close(c.done)
	buf := make([]byte, 1)
	for {
		select {
		case <-c.stopCh:
			return
		default:
		}

		n, err := syscall.Read(c.fd, buf)
		if n > 0 {
			c.dispatch(buf[0])
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func (c *CLI) dispatch(key byte) {
	switch key {
	case 'r':
		c.Run()
	case 'h':
		c.Halt()
	case 's':
		c.Step()
	case 'i':
		c.StepInstruction()
	case 'o':
		c.StepOver()
	case 'q':
		c.stopped.Do(func() { close(c.stopCh) })
	}
}
