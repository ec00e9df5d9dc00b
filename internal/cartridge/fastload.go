package cartridge

import "github.com/TimothyRLaMora734/virtualc64/internal/curatederr"

// fastloadCapacitorCycles is how long, in Execute() calls (bus cycles),
// the Epyx Fastload's capacitor stays charged after a ROML read or IO1
// access before it discharges and its ROM reads as 0.
const fastloadCapacitorCycles = 512

// fastload models the Epyx Fastload: an 8K ROM whose contents are
// readable only while a capacitor stays charged by bus activity. A ROML
// read while charged, any IO1 access and reset recharge it; absent that
// activity it discharges after a fixed number of cycles, and from then
// on ROML reads return 0 until an IO1 access recharges it. GAME and
// EXROM are held low at all times, so the memory map itself does not
// change when the capacitor discharges.
type fastload struct {
	rom     [8192]byte
	charge  int
}

func newFastload(chips []ChipPacket) (*fastload, error) {
	f := &fastload{}
	for _, c := range chips {
		off := int(c.LoadAddress) & 0x1FFF
		copy(f.rom[off:], c.Data)
	}
	return f, nil
}

func (f *fastload) charged() bool { return f.charge > 0 }

func (f *fastload) GameLine() bool  { return false }
func (f *fastload) ExromLine() bool { return false }

func (f *fastload) PeekROML(addr uint16) uint8 {
	if !f.charged() {
		return 0
	}
	f.charge = fastloadCapacitorCycles
	return f.rom[addr&0x1FFF]
}

func (f *fastload) PeekROMH(uint16) uint8 { return 0 }

func (f *fastload) PokeROML(uint16, uint8) bool { return false }
func (f *fastload) PokeROMH(uint16, uint8) bool { return false }

func (f *fastload) PeekIO1(addr uint16) uint8 {
	f.charge = fastloadCapacitorCycles
	return 0
}

func (f *fastload) PokeIO1(uint16, uint8) { f.charge = fastloadCapacitorCycles }
func (f *fastload) PeekIO2(uint16) uint8  { return 0 }
func (f *fastload) PokeIO2(uint16, uint8) {}

func (f *fastload) Reset() { f.charge = fastloadCapacitorCycles }

func (f *fastload) PressButton(int)   {}
func (f *fastload) ReleaseButton(int) {}
func (f *fastload) SetSwitch(int)     {}
func (f *fastload) LED() bool         { return f.charged() }
func (f *fastload) Battery() bool     { return false }

func (f *fastload) NMIWillTrigger() bool { return false }
func (f *fastload) NMIDidTrigger()       {}

// Execute discharges the capacitor by one cycle's worth of leakage;
// called once per bus cycle regardless of whether the cartridge was
// accessed that cycle.
func (f *fastload) Execute() {
	if f.charge > 0 {
		f.charge--
	}
}

func (f *fastload) Kind() Kind { return EpyxFastload }

func (f *fastload) SaveState() interface{} { return f.charge }

func (f *fastload) RestoreState(state interface{}) error {
	charge, ok := state.(int)
	if !ok {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "cartridge", "fastload state shape")
	}
	f.charge = charge
	return nil
}
