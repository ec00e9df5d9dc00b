package cartridge

import "github.com/TimothyRLaMora734/virtualc64/internal/curatederr"

const finalCartridgeIIIBankSize = 16384

// finalCartridgeIII models the Final Cartridge III: 4 banks of 16K ROM
// (ROML+ROMH), a bank-select register written through IO1 plus a "qD" latch that gates whether
// the cartridge is visible at all. The freeze button pulls NMI; if the
// button is still held when the NMI is acknowledged, qD is cleared,
// hiding the cartridge until the next bank-select write - this is the
// one quirk spec.md §4.4 calls out by name.
type finalCartridgeIII struct {
	banks [][]byte
	bank  int
	qd    bool
	held  bool
	pulse bool
}

func newFinalCartridgeIII(chips []ChipPacket) (*finalCartridgeIII, error) {
	data := concatBanks(chips, finalCartridgeIIIBankSize)
	f := &finalCartridgeIII{qd: true}
	for off := 0; off < len(data); off += finalCartridgeIIIBankSize {
		end := off + finalCartridgeIIIBankSize
		if end > len(data) {
			end = len(data)
		}
		bank := make([]byte, finalCartridgeIIIBankSize)
		copy(bank, data[off:end])
		f.banks = append(f.banks, bank)
	}
	if len(f.banks) == 0 {
		f.banks = append(f.banks, make([]byte, finalCartridgeIIIBankSize))
	}
	return f, nil
}

func (f *finalCartridgeIII) GameLine() bool  { return false }
func (f *finalCartridgeIII) ExromLine() bool { return false }

func (f *finalCartridgeIII) PeekROML(addr uint16) uint8 {
	if !f.qd {
		return 0
	}
	return f.banks[f.bank][addr&0x1FFF]
}

func (f *finalCartridgeIII) PeekROMH(addr uint16) uint8 {
	if !f.qd {
		return 0
	}
	return f.banks[f.bank][0x2000+addr&0x1FFF]
}

func (f *finalCartridgeIII) PokeROML(uint16, uint8) bool { return false }
func (f *finalCartridgeIII) PokeROMH(uint16, uint8) bool { return false }

func (f *finalCartridgeIII) PeekIO1(uint16) uint8 { return 0 }

func (f *finalCartridgeIII) PokeIO1(addr uint16, v uint8) {
	f.bank = int(v&0x03) % len(f.banks)
	f.qd = true
}

func (f *finalCartridgeIII) PeekIO2(uint16) uint8  { return 0 }
func (f *finalCartridgeIII) PokeIO2(uint16, uint8) {}

func (f *finalCartridgeIII) Reset() {
	f.bank = 0
	f.qd = true
	f.held = false
	f.pulse = false
}

func (f *finalCartridgeIII) PressButton(n int) {
	if n == 0 {
		f.pulse = true
		f.held = true
	}
}

func (f *finalCartridgeIII) ReleaseButton(n int) {
	if n == 0 {
		f.held = false
	}
}

func (f *finalCartridgeIII) SetSwitch(int) {}
func (f *finalCartridgeIII) LED() bool     { return f.qd }
func (f *finalCartridgeIII) Battery() bool { return false }

func (f *finalCartridgeIII) NMIWillTrigger() bool { return f.pulse }

func (f *finalCartridgeIII) NMIDidTrigger() {
	f.pulse = false
	if f.held {
		f.qd = false
	}
}

func (f *finalCartridgeIII) Execute() {}
func (f *finalCartridgeIII) Kind() Kind { return FinalCartridgeIII }

func (f *finalCartridgeIII) SaveState() interface{} {
	return []interface{}{f.bank, f.qd, f.held, f.pulse}
}

func (f *finalCartridgeIII) RestoreState(state interface{}) error {
	s, ok := state.([]interface{})
	if !ok || len(s) != 4 {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "cartridge", "final cartridge iii state shape")
	}
	f.bank = s[0].(int)
	f.qd = s[1].(bool)
	f.held = s[2].(bool)
	f.pulse = s[3].(bool)
	return nil
}
