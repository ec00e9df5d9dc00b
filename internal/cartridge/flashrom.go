package cartridge

import "github.com/TimothyRLaMora734/virtualc64/internal/curatederr"

// flashState is one of the Am29F040 command-sequence states. Named after
// the datasheet's own state diagram rather than abbreviated, since the
// cartridge's entire value is in exercising every one of these
// transitions rather than leaving the erase path stubbed (spec §C.1).
type flashState int

const (
	flashRead flashState = iota
	flashMagic1
	flashMagic2
	flashAutoselect
	flashByteProgram
	flashByteProgramError
	flashEraseMagic1
	flashEraseMagic2
	flashEraseSelect
	flashChipErase
	flashSectorErase
	flashSectorEraseTimeout
	flashSectorEraseSuspend
)

const (
	flashMagicAddr1 = 0x1555 // $5555 masked into an 8K window
	flashMagicAddr2 = 0x0AAA // $2AAA masked into an 8K window

	flashSectorSize = 0x10000 // Am29F040: 8 x 64K sectors per 512K chip

	flashChipEraseCycles   = 2_000_000 // busy-window lengths, in Execute() calls
	flashSectorEraseCycles = 250_000
)

// flashChip is one Am29F040 device: 512K of flash addressed as 64 banks
// of 8K, with the full command/erase state machine.
type flashChip struct {
	data  []byte
	state flashState
	timer int

	sectorAddr int // absolute chip offset of the sector currently erasing

	lastProgramError bool // set when a program tried to set an already-cleared bit
}

func newFlashChip() *flashChip {
	c := &flashChip{data: make([]byte, 512*1024)}
	for i := range c.data {
		c.data[i] = 0xFF
	}
	return c
}

// Read services a CPU read at a bank-relative offset plus the bank's
// absolute base.
func (c *flashChip) Read(base, addr int) uint8 {
	abs := base + addr
	switch c.state {
	case flashAutoselect:
		switch addr & 0x01 {
		case 0:
			return 0x01 // AMD manufacturer ID
		default:
			return 0xA4 // Am29F040 device ID
		}
	default:
		return c.data[abs]
	}
}

// LastProgramError reports whether the most recent byte-program tried to
// set a bit the flash had already cleared - an AND-only device can only
// clear bits, never set them, until the containing sector is erased.
func (c *flashChip) LastProgramError() bool { return c.lastProgramError }

// Write drives the command state machine, or performs a byte-program if
// one was just armed.
func (c *flashChip) Write(base, addr int, v uint8) {
	abs := base + addr
	rel := addr & 0x1FFF

	switch c.state {
	case flashRead:
		if rel == flashMagicAddr1 && v == 0xAA {
			c.state = flashMagic1
		}
	case flashMagic1:
		if rel == flashMagicAddr2 && v == 0x55 {
			c.state = flashMagic2
		} else {
			c.state = flashRead
		}
	case flashMagic2:
		switch v {
		case 0x90:
			c.state = flashAutoselect
		case 0x80:
			c.state = flashEraseMagic1
		case 0xA0:
			c.state = flashByteProgram
		default:
			c.state = flashRead
		}
	case flashAutoselect:
		if v == 0xF0 {
			c.state = flashRead
		}
	case flashByteProgram:
		old := c.data[abs]
		programmed := old & v
		c.data[abs] = programmed
		c.lastProgramError = programmed != v
		if c.lastProgramError {
			c.state = flashByteProgramError
		} else {
			c.state = flashRead
		}
	case flashByteProgramError:
		if v == 0xF0 {
			c.state = flashRead
		}
	case flashEraseMagic1:
		if rel == flashMagicAddr1 && v == 0xAA {
			c.state = flashEraseMagic2
		} else {
			c.state = flashRead
		}
	case flashEraseMagic2:
		if rel == flashMagicAddr2 && v == 0x55 {
			c.state = flashEraseSelect
		} else {
			c.state = flashRead
		}
	case flashEraseSelect:
		switch {
		case v == 0x10 && rel == flashMagicAddr1:
			for i := range c.data {
				c.data[i] = 0xFF
			}
			c.state = flashChipErase
			c.timer = flashChipEraseCycles
		case v == 0x30:
			c.sectorAddr = doSectorErase(abs, flashSectorSize)
			c.eraseSector()
			c.state = flashSectorEraseTimeout
			c.timer = flashSectorEraseCycles
		default:
			c.state = flashRead
		}
	case flashSectorEraseTimeout:
		if v == 0x30 {
			extra := doSectorErase(abs, flashSectorSize)
			if extra != c.sectorAddr {
				c.sectorAddr = extra
				c.eraseSector()
			}
		} else {
			c.state = flashSectorEraseSuspend
		}
	case flashSectorEraseSuspend:
		if v == 0x30 {
			c.state = flashSectorEraseTimeout
		}
	}
}

func (c *flashChip) eraseSector() {
	end := c.sectorAddr + flashSectorSize
	if end > len(c.data) {
		end = len(c.data)
	}
	for i := c.sectorAddr; i < end; i++ {
		c.data[i] = 0xFF
	}
}

// doSectorErase returns the sector-aligned base address containing addr.
// The original routine masked with the wrong operand, clipping to the
// wrong boundary on any sector but the first; spec.md §9 calls this out
// as an open question, resolved here as the evidently-intended mask.
func doSectorErase(addr, sectorSize int) int {
	return addr &^ (sectorSize - 1)
}

func (c *flashChip) Execute() {
	if c.timer <= 0 {
		return
	}
	c.timer--
	if c.timer == 0 {
		c.state = flashRead
	}
}

// flashRom is the EasyFlash cartridge: two Am29F040 chips (ROML bank and
// ROMH bank), a bank-select register and a mode register at IO1, per
// spec.md §4.4.
type flashRom struct {
	roml *flashChip
	romh *flashChip

	bank int
	mode uint8 // bit0: 0 = 16K mode (GAME=EXROM=0), 1 = 8K mode (GAME=1, EXROM=0)
	led  bool
}

func newFlashRom(chips []ChipPacket) (*flashRom, error) {
	f := &flashRom{roml: newFlashChip(), romh: newFlashChip()}
	for _, c := range chips {
		chip := f.roml
		if c.Type == 1 {
			chip = f.romh
		}
		off := int(c.BankNumber) * 0x2000
		if off+len(c.Data) <= len(chip.data) {
			copy(chip.data[off:], c.Data)
		}
	}
	return f, nil
}

func (f *flashRom) GameLine() bool {
	return f.mode&0x01 != 0
}

func (f *flashRom) ExromLine() bool { return false }

func (f *flashRom) bankBase() int { return (f.bank % 64) * 0x2000 }

func (f *flashRom) PeekROML(addr uint16) uint8 {
	return f.roml.Read(f.bankBase(), int(addr&0x1FFF))
}

func (f *flashRom) PeekROMH(addr uint16) uint8 {
	if f.mode&0x01 != 0 { // 8K mode: ROMH window not mapped
		return 0
	}
	return f.romh.Read(f.bankBase(), int(addr&0x1FFF))
}

func (f *flashRom) PokeROML(addr uint16, v uint8) bool {
	f.roml.Write(f.bankBase(), int(addr&0x1FFF), v)
	return true
}

func (f *flashRom) PokeROMH(addr uint16, v uint8) bool {
	if f.mode&0x01 != 0 {
		return false
	}
	f.romh.Write(f.bankBase(), int(addr&0x1FFF), v)
	return true
}

func (f *flashRom) PeekIO1(addr uint16) uint8 {
	switch addr & 0x02 {
	case 0x00:
		return uint8(f.bank)
	default:
		return f.mode
	}
}

func (f *flashRom) PokeIO1(addr uint16, v uint8) {
	switch addr & 0x02 {
	case 0x00:
		f.bank = int(v)
	default:
		f.mode = v
		f.led = v&0x80 != 0
	}
}

func (f *flashRom) PeekIO2(uint16) uint8  { return 0 }
func (f *flashRom) PokeIO2(uint16, uint8) {}

func (f *flashRom) Reset() {
	f.bank = 0
	f.mode = 0
}

func (f *flashRom) PressButton(int)   {}
func (f *flashRom) ReleaseButton(int) {}
func (f *flashRom) SetSwitch(int)     {}
func (f *flashRom) LED() bool         { return f.led }
func (f *flashRom) Battery() bool     { return true }

func (f *flashRom) NMIWillTrigger() bool { return false }
func (f *flashRom) NMIDidTrigger()       {}

func (f *flashRom) Execute() {
	f.roml.Execute()
	f.romh.Execute()
}

func (f *flashRom) Kind() Kind { return EasyFlash }

func (c *flashChip) saveState() interface{} {
	data := make([]byte, len(c.data))
	copy(data, c.data)
	return []interface{}{data, c.state, c.timer, c.sectorAddr, c.lastProgramError}
}

func (c *flashChip) restoreState(state interface{}) error {
	s, ok := state.([]interface{})
	if !ok || len(s) != 5 {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "cartridge", "flash chip state shape")
	}
	copy(c.data, s[0].([]byte))
	c.state = s[1].(flashState)
	c.timer = s[2].(int)
	c.sectorAddr = s[3].(int)
	c.lastProgramError = s[4].(bool)
	return nil
}

func (f *flashRom) SaveState() interface{} {
	return []interface{}{f.roml.saveState(), f.romh.saveState(), f.bank, f.mode, f.led}
}

func (f *flashRom) RestoreState(state interface{}) error {
	s, ok := state.([]interface{})
	if !ok || len(s) != 5 {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "cartridge", "flashrom state shape")
	}
	if err := f.roml.restoreState(s[0]); err != nil {
		return err
	}
	if err := f.romh.restoreState(s[1]); err != nil {
		return err
	}
	f.bank = s[2].(int)
	f.mode = s[3].(uint8)
	f.led = s[4].(bool)
	return nil
}
