package cartridge

import "github.com/TimothyRLaMora734/virtualc64/internal/curatederr"

const atomicPowerBankSize = 8192

// atomicPower is the Nordic Power / Atomic Power variant: like Action
// Replay but a specific control-bit pattern remaps its onboard RAM onto
// ROMH instead of ROML, per spec.md §4.4.
type atomicPower struct {
	banks [][]byte
	ram   [8192]byte

	ctrl     uint8
	disabled bool
	freeze   bool
}

func newAtomicPower(chips []ChipPacket) (*atomicPower, error) {
	data := concatBanks(chips, atomicPowerBankSize)
	a := &atomicPower{}
	for off := 0; off < len(data); off += atomicPowerBankSize {
		end := off + atomicPowerBankSize
		if end > len(data) {
			end = len(data)
		}
		bank := make([]byte, atomicPowerBankSize)
		copy(bank, data[off:end])
		a.banks = append(a.banks, bank)
	}
	if len(a.banks) == 0 {
		a.banks = append(a.banks, make([]byte, atomicPowerBankSize))
	}
	return a, nil
}

func (a *atomicPower) bankNumber() int {
	n := int(a.ctrl & 0x07)
	if n >= len(a.banks) {
		n = n % len(a.banks)
	}
	return n
}

// ramToROMH is the "specific control-bit pattern" remap: bits 4 and 5
// both set swaps onboard RAM onto the ROMH window.
func (a *atomicPower) ramToROMH() bool { return a.ctrl&0x30 == 0x30 }
func (a *atomicPower) ramToROML() bool { return a.ctrl&0x20 != 0 && a.ctrl&0x10 == 0 }

func (a *atomicPower) GameLine() bool {
	if a.disabled {
		return true
	}
	return a.ctrl&0x01 == 0
}

func (a *atomicPower) ExromLine() bool {
	if a.disabled {
		return true
	}
	return false
}

func (a *atomicPower) PeekROML(addr uint16) uint8 {
	if a.ramToROML() {
		return a.ram[addr&0x1FFF]
	}
	return a.banks[a.bankNumber()][addr&0x1FFF]
}

func (a *atomicPower) PeekROMH(addr uint16) uint8 {
	if a.ramToROMH() {
		return a.ram[addr&0x1FFF]
	}
	return 0
}

func (a *atomicPower) PokeROML(addr uint16, v uint8) bool {
	if a.ramToROML() {
		a.ram[addr&0x1FFF] = v
		return true
	}
	return false
}

func (a *atomicPower) PokeROMH(addr uint16, v uint8) bool {
	if a.ramToROMH() {
		a.ram[addr&0x1FFF] = v
		return true
	}
	return false
}

func (a *atomicPower) PeekIO1(uint16) uint8 { return a.ctrl }

func (a *atomicPower) PokeIO1(addr uint16, v uint8) {
	if a.disabled {
		return
	}
	a.ctrl = v
	if v&0x04 != 0 {
		a.disabled = true
	}
}

func (a *atomicPower) PeekIO2(uint16) uint8  { return 0 }
func (a *atomicPower) PokeIO2(uint16, uint8) {}

func (a *atomicPower) Reset() {
	a.ctrl = 0
	a.disabled = false
	a.freeze = false
}

func (a *atomicPower) PressButton(n int) {
	if n == 0 {
		a.freeze = true
	}
}

func (a *atomicPower) ReleaseButton(int) {}
func (a *atomicPower) SetSwitch(int)     {}
func (a *atomicPower) LED() bool         { return !a.disabled }
func (a *atomicPower) Battery() bool     { return false }

func (a *atomicPower) NMIWillTrigger() bool { return a.freeze }

func (a *atomicPower) NMIDidTrigger() {
	a.freeze = false
	a.disabled = false
	a.ctrl = 0
}

func (a *atomicPower) Execute() {}
func (a *atomicPower) Kind() Kind { return AtomicPower }

func (a *atomicPower) SaveState() interface{} {
	ram := make([]byte, len(a.ram))
	copy(ram, a.ram[:])
	return []interface{}{a.ctrl, a.disabled, a.freeze, ram}
}

func (a *atomicPower) RestoreState(state interface{}) error {
	s, ok := state.([]interface{})
	if !ok || len(s) != 4 {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "cartridge", "atomic power state shape")
	}
	a.ctrl = s[0].(uint8)
	a.disabled = s[1].(bool)
	a.freeze = s[2].(bool)
	copy(a.ram[:], s[3].([]byte))
	return nil
}
