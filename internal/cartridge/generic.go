package cartridge

// genericROM is a plain, unbanked 8K (ROML only) or 16K (ROML+ROMH)
// cartridge: no registers, no RAM, GAME/EXROM fixed at load time.
type genericROM struct {
	kind  Kind
	game  bool
	exrom bool
	rom   []byte // 8K or 16K, ROML at [0:8192], ROMH (if present) at [8192:16384]
}

func newGenericROM(kind Kind, game, exrom bool, chips []ChipPacket) (*genericROM, error) {
	size := 8192
	if kind == Generic16K {
		size = 16384
	}
	rom := make([]byte, size)
	for _, c := range chips {
		off := int(c.LoadAddress) & 0x3FFF
		copy(rom[off:], c.Data)
	}
	return &genericROM{kind: kind, game: game, exrom: exrom, rom: rom}, nil
}

func (g *genericROM) GameLine() bool  { return g.game }
func (g *genericROM) ExromLine() bool { return g.exrom }

func (g *genericROM) PeekROML(addr uint16) uint8 { return g.rom[addr&0x1FFF] }

func (g *genericROM) PeekROMH(addr uint16) uint8 {
	if len(g.rom) < 16384 {
		return 0
	}
	return g.rom[0x2000+addr&0x1FFF]
}

func (g *genericROM) PokeROML(uint16, uint8) bool { return false }
func (g *genericROM) PokeROMH(uint16, uint8) bool { return false }
func (g *genericROM) PeekIO1(uint16) uint8        { return 0 }
func (g *genericROM) PokeIO1(uint16, uint8)       {}
func (g *genericROM) PeekIO2(uint16) uint8        { return 0 }
func (g *genericROM) PokeIO2(uint16, uint8)       {}
func (g *genericROM) Reset()                      {}
func (g *genericROM) PressButton(int)              {}
func (g *genericROM) ReleaseButton(int)            {}
func (g *genericROM) SetSwitch(int)                {}
func (g *genericROM) LED() bool                    { return false }
func (g *genericROM) Battery() bool                { return false }
func (g *genericROM) NMIWillTrigger() bool         { return false }
func (g *genericROM) NMIDidTrigger()               {}
func (g *genericROM) Execute()                     {}
func (g *genericROM) Kind() Kind                   { return g.kind }

// SaveState/RestoreState are no-ops: a genericROM has no mutable state,
// its image is fixed at load time.
func (g *genericROM) SaveState() interface{}           { return nil }
func (g *genericROM) RestoreState(interface{}) error   { return nil }
