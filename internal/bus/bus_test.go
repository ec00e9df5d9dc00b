package bus

import "testing"

func TestProcessorPortInterceptsZeroPage(t *testing.T) {
	b := New()
	b.Poke(0x0000, 0x2F) // standard C64 DDR
	b.Poke(0x0001, 0x37) // standard C64 data register (LORAM=HIRAM=CHAREN=1)

	if got := b.Peek(0x0000); got != 0x2F {
		t.Fatalf("$0000 = %#02x, want %#02x", got, 0x2F)
	}
	if got := b.ram[0x0000]; got != 0 {
		t.Fatalf("processor port write leaked into DRAM: ram[0] = %#02x", got)
	}
}

func TestProcessorPortWriteRefreshesMap(t *testing.T) {
	b := New()
	b.Poke(0x0000, 0xFF)
	b.Poke(0x0001, 0x37) // LORAM=HIRAM=CHAREN=1 -> BASIC visible at $A000
	if r := b.Region(0xA000); r != RegionBasicROM {
		t.Fatalf("expected BASIC at $A000, got %v", r)
	}

	b.Poke(0x0001, 0x36) // LORAM=0 -> $A000 becomes RAM
	if r := b.Region(0xA000); r != RegionRAM {
		t.Fatalf("expected RAM at $A000 after LORAM cleared, got %v", r)
	}
}

func TestColorRAMUpperNibbleFloats(t *testing.T) {
	b := New()
	b.Poke(0xD800, 0x07) // color RAM write: only the low nibble is stored
	b.Poke(0x1000, 0xA5) // put 0xA5 on the bus via an ordinary RAM write

	got := b.Peek(0xD800)
	if got&0x0F != 0x07 {
		t.Fatalf("color RAM low nibble = %#x, want 0x7", got&0x0F)
	}
	if got&0xF0 != 0xA0 {
		t.Fatalf("color RAM upper nibble = %#x, want 0xA0 from the last bus value", got&0xF0)
	}
}

func TestColorRAMAlwaysWritableEvenUnderIO(t *testing.T) {
	b := New()
	// default map has IO visible at $D000-$DFFF; color RAM writes must
	// still land regardless, per the §3.2 invariant.
	b.Poke(0xD801, 0x0A)
	if b.colorRam[1] != 0x0A {
		t.Fatalf("colorRam[1] = %#x, want 0xa", b.colorRam[1])
	}
}

func TestOpenBusReadsFloatingLatch(t *testing.T) {
	b := New()
	// force ultimax so $A000 resolves to NONE
	cart := &fakeCart{game: false, exrom: true}
	b.AttachCartridge(cart)

	b.Poke(0x1000, 0x42)
	if got := b.Peek(0xA000); got != 0x42 {
		t.Fatalf("NONE region read %#02x, want floating-bus value %#02x", got, 0x42)
	}
}

func TestWritesToROMFallThroughToRAM(t *testing.T) {
	b := New()
	b.Poke(0x0000, 0xFF)
	b.Poke(0x0001, 0x37) // BASIC visible at $A000
	b.Poke(0xA000, 0x99)
	if b.ram[0xA000] != 0x99 {
		t.Fatalf("write to BASIC ROM window did not fall through to RAM")
	}
}

func TestVICMirroring(t *testing.T) {
	b := New()
	dev := &captureDevice{}
	b.AttachVIC(dev)
	b.Poke(0xD000, 0x11)
	b.Poke(0xD040, 0x22) // mirrors $D000 (every $40)
	if len(dev.regs) != 2 || dev.regs[0] != 0 || dev.regs[1] != 0 {
		t.Fatalf("VIC mirroring: got regs %v, want [0 0]", dev.regs)
	}
}

type fakeCart struct {
	game, exrom bool
}

func (c *fakeCart) GameLine() bool              { return c.game }
func (c *fakeCart) ExromLine() bool             { return c.exrom }
func (c *fakeCart) PeekROML(uint16) uint8       { return 0 }
func (c *fakeCart) PeekROMH(uint16) uint8       { return 0 }
func (c *fakeCart) PokeROML(uint16, uint8) bool { return false }
func (c *fakeCart) PokeROMH(uint16, uint8) bool { return false }
func (c *fakeCart) PeekIO1(uint16) uint8        { return 0 }
func (c *fakeCart) PokeIO1(uint16, uint8)       {}
func (c *fakeCart) PeekIO2(uint16) uint8        { return 0 }
func (c *fakeCart) PokeIO2(uint16, uint8)       {}

type captureDevice struct {
	regs []uint8
}

func (d *captureDevice) Peek(reg uint8) uint8 { return 0 }
func (d *captureDevice) Poke(reg uint8, v uint8) {
	d.regs = append(d.regs, reg)
}
