package cartridge

import "github.com/TimothyRLaMora734/virtualc64/internal/curatederr"

// starDosBankSize is the 8K ROM window StarDos maps at ROML while its
// capacitor is charged.
const starDosBankSize = 8192

// starDos models the StarDos fastloader: a two-terminal capacitor with
// no natural leakage, charged by any IO1 access and discharged by any
// IO2 access, gating ROML visibility, per spec.md §4.4.
type starDos struct {
	rom     [starDosBankSize]byte
	charged bool
}

func newStarDos(chips []ChipPacket) (*starDos, error) {
	s := &starDos{}
	for _, c := range chips {
		off := int(c.LoadAddress) & 0x1FFF
		copy(s.rom[off:], c.Data)
	}
	return s, nil
}

func (s *starDos) GameLine() bool  { return false }
func (s *starDos) ExromLine() bool { return false }

func (s *starDos) PeekROML(addr uint16) uint8 {
	if !s.charged {
		return 0
	}
	return s.rom[addr&0x1FFF]
}

func (s *starDos) PeekROMH(uint16) uint8 { return 0 }

func (s *starDos) PokeROML(uint16, uint8) bool { return false }
func (s *starDos) PokeROMH(uint16, uint8) bool { return false }

func (s *starDos) PeekIO1(uint16) uint8 {
	s.charged = true
	return 0
}

func (s *starDos) PokeIO1(uint16, uint8) { s.charged = true }

func (s *starDos) PeekIO2(uint16) uint8 {
	s.charged = false
	return 0
}

func (s *starDos) PokeIO2(uint16, uint8) { s.charged = false }

func (s *starDos) Reset() { s.charged = false }

func (s *starDos) PressButton(int)   {}
func (s *starDos) ReleaseButton(int) {}
func (s *starDos) SetSwitch(int)     {}
func (s *starDos) LED() bool         { return s.charged }
func (s *starDos) Battery() bool     { return false }

func (s *starDos) NMIWillTrigger() bool { return false }
func (s *starDos) NMIDidTrigger()       {}
func (s *starDos) Execute()             {}

func (s *starDos) Kind() Kind { return StarDos }

func (s *starDos) SaveState() interface{} { return s.charged }

func (s *starDos) RestoreState(state interface{}) error {
	charged, ok := state.(bool)
	if !ok {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "cartridge", "stardos state shape")
	}
	s.charged = charged
	return nil
}
