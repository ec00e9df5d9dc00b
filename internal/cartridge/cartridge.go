// Package cartridge implements the expansion-port capability set: a
// tagged set of mapper variants behind one interface, each translating
// ROML/ROMH/IO1/IO2 bus activity into its own bank-switching and
// write-protect behaviour.
//
// Grounded on hardware/memory/cartridge/mapper.go's cartMapper interface
// (Read/Write/Poke/Patch/Step/GetRAM/SaveState/RestoreState); per-variant
// structs ground on mapper_atari.go's tagged-struct-with-bank-slice
// pattern. FlashRom is new (supplemented, spec §C.1), built in the same
// struct-plus-method style as supercharger/fastload.go's capacitor/timeout
// state fields.
package cartridge

import (
	"encoding/gob"

	"github.com/TimothyRLaMora734/virtualc64/internal/curatederr"
)

// SaveState boxes whatever it returns inside an interface{}, so gob (the
// encoding internal/snapshot serializes a machine with) needs every
// concrete type that can appear there registered up front.
func init() {
	gob.Register([]interface{}{})
	gob.Register(uint8(0))
	gob.Register(bool(true))
	gob.Register(int(0))
	gob.Register([]byte{})
	gob.Register(flashState(0))
}

// Kind identifies a mapper variant, for both construction and snapshot
// round-tripping.
type Kind int

const (
	None Kind = iota
	Generic8K
	Generic16K
	ActionReplayV3
	ActionReplayV4Plus
	AtomicPower
	FinalCartridgeIII
	EpyxFastload
	StarDos
	EasyFlash
)

// ChipPacket is one CRT "CHIP" record: a bank of ROM data destined for a
// specific load address.
type ChipPacket struct {
	Type        uint16
	LoadAddress uint16
	BankNumber  uint16
	Data        []byte
}

// Cartridge is the full capability set the expansion port exposes, a
// superset of bus.CartridgePort adding lifecycle, physical controls, and
// the per-cycle hook the system clock drives every mapper through.
type Cartridge interface {
	GameLine() bool
	ExromLine() bool

	PeekROML(addr uint16) uint8
	PeekROMH(addr uint16) uint8
	PokeROML(addr uint16, v uint8) bool
	PokeROMH(addr uint16, v uint8) bool

	PeekIO1(addr uint16) uint8
	PokeIO1(addr uint16, v uint8)
	PeekIO2(addr uint16) uint8
	PokeIO2(addr uint16, v uint8)

	Reset()
	PressButton(n int)
	ReleaseButton(n int)
	SetSwitch(pos int)
	LED() bool
	Battery() bool

	// NMIWillTrigger/NMIDidTrigger let a mapper observe and react to the
	// CPU's own NMI line, for cartridges (Final Cartridge III) whose
	// internal flip-flop is cleared by the acknowledged NMI rather than
	// by any bus cycle.
	NMIWillTrigger() bool
	NMIDidTrigger()

	// Execute is the per-cycle hook, for mappers with their own clocked
	// state (capacitor discharge timers, the FlashRom erase-timeout
	// window).
	Execute()

	Kind() Kind

	// SaveState and RestoreState let a snapshot capture and replay a
	// mapper's own register/RAM state without the snapshot package
	// needing to know every variant's shape; each mapper returns
	// whatever slice of its own fields it needs back.
	SaveState() interface{}
	RestoreState(interface{}) error
}

// New constructs a mapper of the given kind from its CRT chip packets.
func New(kind Kind, game, exrom bool, chips []ChipPacket) (Cartridge, error) {
	switch kind {
	case None:
		return &none{}, nil
	case Generic8K, Generic16K:
		return newGenericROM(kind, game, exrom, chips)
	case ActionReplayV3:
		return newActionReplay(false, chips)
	case ActionReplayV4Plus:
		return newActionReplay(true, chips)
	case AtomicPower:
		return newAtomicPower(chips)
	case FinalCartridgeIII:
		return newFinalCartridgeIII(chips)
	case EpyxFastload:
		return newFastload(chips)
	case StarDos:
		return newStarDos(chips)
	case EasyFlash:
		return newFlashRom(chips)
	default:
		return nil, curatederr.Errorf(curatederr.MalformedContainer, "crt", "unknown cartridge kind")
	}
}

// none is the attached-but-empty expansion port.
type none struct{}

func (none) GameLine() bool              { return true }
func (none) ExromLine() bool             { return true }
func (none) PeekROML(uint16) uint8       { return 0 }
func (none) PeekROMH(uint16) uint8       { return 0 }
func (none) PokeROML(uint16, uint8) bool { return false }
func (none) PokeROMH(uint16, uint8) bool { return false }
func (none) PeekIO1(uint16) uint8        { return 0 }
func (none) PokeIO1(uint16, uint8)       {}
func (none) PeekIO2(uint16) uint8        { return 0 }
func (none) PokeIO2(uint16, uint8)       {}
func (none) Reset()                      {}
func (none) PressButton(int)             {}
func (none) ReleaseButton(int)           {}
func (none) SetSwitch(int)               {}
func (none) LED() bool                   { return false }
func (none) Battery() bool               { return false }
func (none) NMIWillTrigger() bool        { return false }
func (none) NMIDidTrigger()              {}
func (none) Execute()                    {}
func (none) Kind() Kind                  { return None }
func (none) SaveState() interface{}      { return nil }
func (none) RestoreState(interface{}) error { return nil }

func concatBanks(chips []ChipPacket, bankSize int) []byte {
	maxBank := 0
	for _, c := range chips {
		if int(c.BankNumber) > maxBank {
			maxBank = int(c.BankNumber)
		}
	}
	data := make([]byte, (maxBank+1)*bankSize)
	for _, c := range chips {
		off := int(c.BankNumber) * bankSize
		n := copy(data[off:off+bankSize], c.Data)
		_ = n
	}
	return data
}
