package cartridge

import "github.com/TimothyRLaMora734/virtualc64/internal/curatederr"

const actionReplayBankSize = 8192

// actionReplay models the Action Replay freeze cartridge, versions 3
// (8 ROM banks, no onboard RAM) and 4+ (adds 8K RAM bankable into ROML).
// The freeze button pulls NMI and forces the cartridge back to bank 0,
// ROM-visible, per spec.md §4.4.
type actionReplay struct {
	v4plus bool
	banks  [][]byte
	ram    [8192]byte

	ctrl     uint8
	disabled bool
	freeze   bool
}

func newActionReplay(v4plus bool, chips []ChipPacket) (*actionReplay, error) {
	data := concatBanks(chips, actionReplayBankSize)
	a := &actionReplay{v4plus: v4plus}
	for off := 0; off < len(data); off += actionReplayBankSize {
		end := off + actionReplayBankSize
		if end > len(data) {
			end = len(data)
		}
		bank := make([]byte, actionReplayBankSize)
		copy(bank, data[off:end])
		a.banks = append(a.banks, bank)
	}
	if len(a.banks) == 0 {
		a.banks = append(a.banks, make([]byte, actionReplayBankSize))
	}
	return a, nil
}

func (a *actionReplay) bankNumber() int {
	n := int(a.ctrl & 0x07)
	if n >= len(a.banks) {
		n = n % len(a.banks)
	}
	return n
}

func (a *actionReplay) ramEnabled() bool { return a.v4plus && a.ctrl&0x20 != 0 }

func (a *actionReplay) GameLine() bool {
	if a.disabled {
		return true
	}
	return a.ctrl&0x01 == 0
}

func (a *actionReplay) ExromLine() bool {
	if a.disabled {
		return true
	}
	return false
}

func (a *actionReplay) PeekROML(addr uint16) uint8 {
	if a.ramEnabled() {
		return a.ram[addr&0x1FFF]
	}
	return a.banks[a.bankNumber()][addr&0x1FFF]
}

func (a *actionReplay) PeekROMH(uint16) uint8 { return 0 }

func (a *actionReplay) PokeROML(addr uint16, v uint8) bool {
	if a.ramEnabled() {
		a.ram[addr&0x1FFF] = v
		return true
	}
	return false
}

func (a *actionReplay) PokeROMH(uint16, uint8) bool { return false }

func (a *actionReplay) PeekIO1(uint16) uint8 { return a.ctrl }

func (a *actionReplay) PokeIO1(addr uint16, v uint8) {
	if a.disabled {
		return
	}
	a.ctrl = v
	if v&0x04 != 0 {
		a.disabled = true
	}
}

func (a *actionReplay) PeekIO2(addr uint16) uint8 {
	if a.ramEnabled() {
		return a.ram[0x1E00+addr&0x00FF]
	}
	return 0
}

func (a *actionReplay) PokeIO2(addr uint16, v uint8) {
	if a.ramEnabled() {
		a.ram[0x1E00+addr&0x00FF] = v
	}
}

func (a *actionReplay) Reset() {
	a.ctrl = 0
	a.disabled = false
	a.freeze = false
}

func (a *actionReplay) PressButton(n int) {
	if n == 0 {
		a.freeze = true
	}
}

func (a *actionReplay) ReleaseButton(int) {}
func (a *actionReplay) SetSwitch(int)     {}
func (a *actionReplay) LED() bool         { return !a.disabled }
func (a *actionReplay) Battery() bool     { return false }

func (a *actionReplay) NMIWillTrigger() bool { return a.freeze }

func (a *actionReplay) NMIDidTrigger() {
	a.freeze = false
	a.disabled = false
	a.ctrl = 0
}

func (a *actionReplay) Execute() {}

func (a *actionReplay) Kind() Kind {
	if a.v4plus {
		return ActionReplayV4Plus
	}
	return ActionReplayV3
}

func (a *actionReplay) SaveState() interface{} {
	ram := make([]byte, len(a.ram))
	copy(ram, a.ram[:])
	return []interface{}{a.ctrl, a.disabled, a.freeze, ram}
}

func (a *actionReplay) RestoreState(state interface{}) error {
	s, ok := state.([]interface{})
	if !ok || len(s) != 4 {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "cartridge", "action replay state shape")
	}
	a.ctrl = s[0].(uint8)
	a.disabled = s[1].(bool)
	a.freeze = s[2].(bool)
	copy(a.ram[:], s[3].([]byte))
	return nil
}
