// Package config holds the in-memory preferences that shape how the core
// is constructed and reset. There is no persistent storage here -
// persistent configuration is explicitly out of scope (see spec.md
// Non-goals) - but the ambient notion of "preferences the host can set
// before constructing a System" is carried, in the style of the teacher's
// hardware/preferences package.
package config

import (
	"math/rand"
	"time"
)

// Model selects the video timing standard, which in turn determines the
// VIC-II cycle table, lines-per-frame, and clock frequency.
type Model int

const (
	PAL Model = iota
	NTSC
)

func (m Model) String() string {
	if m == NTSC {
		return "NTSC"
	}
	return "PAL"
}

// CyclesPerLine is 63 for PAL, 65 for NTSC (spec.md §2).
func (m Model) CyclesPerLine() int {
	if m == NTSC {
		return 65
	}
	return 63
}

// LinesPerFrame is 312 for PAL (0..311), 263 for NTSC (0..262).
func (m Model) LinesPerFrame() int {
	if m == NTSC {
		return 263
	}
	return 312
}

// ClockHz is the system clock frequency driving one CPU cycle per tick.
func (m Model) ClockHz() float64 {
	if m == NTSC {
		return 1022727
	}
	return 985248
}

// RAMInitPattern selects the deterministic (or pseudo-random) fill used for
// unpowered DRAM at reset, per spec.md §3.2.
type RAMInitPattern int

const (
	// RAMInitAllZero fills RAM with 0x00.
	RAMInitAllZero RAMInitPattern = iota
	// RAMInitAllOnes fills RAM with 0xFF.
	RAMInitAllOnes
	// RAMInitRandom fills RAM from the preferences' random source.
	RAMInitRandom
	// RAMInitC64ChipPattern reproduces the characteristic 64-byte repeating
	// pattern real C64 DRAM powers on with (64 bytes of 0x00 followed by 64
	// bytes of 0xFF, repeating across the 64K address space).
	RAMInitC64ChipPattern
)

// Preferences collects the values that affect emulation behaviour but are
// not part of the reachable, snapshotted core state.
type Preferences struct {
	Model          Model
	RAMInit        RAMInitPattern
	RandomState    bool
	RandSeed       int64
	RandSrc        *rand.Rand
}

// NewPreferences returns preferences with sensible defaults: PAL timing,
// the characteristic chip RAM-init pattern, and a time-seeded random
// source used only when RandomState is true.
func NewPreferences() *Preferences {
	p := &Preferences{
		Model:   PAL,
		RAMInit: RAMInitC64ChipPattern,
	}
	p.Reseed(0)
	return p
}

// Reseed reinitialises the random source. A seed of zero seeds from the
// current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p.RandSeed = seed
	p.RandSrc = rand.New(rand.NewSource(seed))
}
