package bus

import "github.com/TimothyRLaMora734/virtualc64/internal/logger"

// IODevice is the capability a chip needs to sit behind the I/O region
// decoder: VIC-II, SID, CIA1 and CIA2 are all plugged in as an IODevice,
// each seeing only its own mirrored register window.
//
// Grounded on hardware/memory/memory.go's per-chip Read/Write dispatch,
// generalized from the VCS's flat chip-select to the C64's mirrored
// $D000-$DFFF windows.
type IODevice interface {
	Peek(reg uint8) uint8
	Poke(reg uint8, v uint8)
}

// CartridgePort is the subset of cartridge behaviour the bus needs to
// resolve ROML/ROMH/IO1/IO2 accesses and the GAME/EXROM lines that feed
// the bank mapper. The full per-variant capability set (reset, buttons,
// switches, callbacks) lives in internal/cartridge; the bus only needs
// enough to route bytes.
//
// Grounded on hardware/memory/cartridge/mapper.go's cartMapper interface.
type CartridgePort interface {
	GameLine() bool
	ExromLine() bool

	PeekROML(addr uint16) uint8
	PeekROMH(addr uint16) uint8
	// PokeROML/PokeROMH report whether the cartridge intercepted the
	// write; if false, the bus falls through to the underlying RAM cell,
	// per the write-through guarantee in spec.md §4.1.
	PokeROML(addr uint16, v uint8) bool
	PokeROMH(addr uint16, v uint8) bool

	PeekIO1(addr uint16) uint8
	PokeIO1(addr uint16, v uint8)
	PeekIO2(addr uint16) uint8
	PokeIO2(addr uint16, v uint8)
}

// nullCartridge is plugged in when no cartridge is attached: GAME=1,
// EXROM=1 (no cartridge present on a real expansion port), every access
// open-bus.
type nullCartridge struct{}

func (nullCartridge) GameLine() bool                { return true }
func (nullCartridge) ExromLine() bool               { return true }
func (nullCartridge) PeekROML(uint16) uint8         { return 0 }
func (nullCartridge) PeekROMH(uint16) uint8         { return 0 }
func (nullCartridge) PokeROML(uint16, uint8) bool   { return false }
func (nullCartridge) PokeROMH(uint16, uint8) bool   { return false }
func (nullCartridge) PeekIO1(uint16) uint8          { return 0 }
func (nullCartridge) PokeIO1(uint16, uint8)         {}
func (nullCartridge) PeekIO2(uint16) uint8          { return 0 }
func (nullCartridge) PokeIO2(uint16, uint8)         {}

// nullDevice is plugged in for any IODevice slot not yet wired by the
// host (e.g. a bus built for bus-level testing without a live CIA/SID).
type nullDevice struct{}

func (nullDevice) Peek(uint8) uint8  { return 0 }
func (nullDevice) Poke(uint8, uint8) {}

// Bus is the C64 address-space mapper: it owns RAM and color RAM, holds
// the three ROM images, and dispatches every peek/poke through the
// control-bit-indexed bank map to whichever backing store, device, or
// cartridge window the current mapping resolves to.
type Bus struct {
	ram      [65536]byte
	colorRam [1024]byte // low nibble significant, per §3.2

	basicROM  [8192]byte
	charROM   [4096]byte
	kernalROM [8192]byte

	// processor port, intercepted before DRAM per §4.1 rule 2.
	ddr  uint8
	port uint8

	// floating-bus latch: the last byte placed on the bus by any access,
	// returned verbatim by any NONE-region read (§4.1 "Guarantees").
	data uint8

	vic  IODevice
	sid  IODevice
	cia1 IODevice
	cia2 IODevice
	cart CartridgePort

	ctrl      int // cached ctrlIndex(), recomputed by refreshMap
	peekSrc   [16]Region
	pokeSrc   [16]Region
}

// New returns a Bus with no cartridge and stub I/O devices attached; the
// host wires real devices in with AttachVIC/AttachSID/AttachCIA1/AttachCIA2/
// AttachCartridge before running the system.
func New() *Bus {
	b := &Bus{
		vic:  nullDevice{},
		sid:  nullDevice{},
		cia1: nullDevice{},
		cia2: nullDevice{},
		cart: nullCartridge{},
	}
	b.refreshMap()
	return b
}

func (b *Bus) AttachVIC(d IODevice)            { b.vic = d }
func (b *Bus) AttachSID(d IODevice)            { b.sid = d }
func (b *Bus) AttachCIA1(d IODevice)           { b.cia1 = d }
func (b *Bus) AttachCIA2(d IODevice)           { b.cia2 = d }
func (b *Bus) AttachCartridge(c CartridgePort) { b.cart = c; b.refreshMap() }

// LoadBasicROM, LoadCharROM, LoadKernalROM install a ROM image verbatim.
// Images shorter than the target are zero-padded; longer images are
// truncated. Loading ROMs is the host's responsibility (file I/O is
// explicitly out of scope for the core); internal/rom provides the
// loader that calls these.
func (b *Bus) LoadBasicROM(data []byte)  { copy(b.basicROM[:], data) }
func (b *Bus) LoadCharROM(data []byte)   { copy(b.charROM[:], data) }
func (b *Bus) LoadKernalROM(data []byte) { copy(b.kernalROM[:], data) }

func portBitHigh(port, ddr, mask uint8) bool {
	if ddr&mask == 0 {
		return true
	}
	return port&mask != 0
}

// refreshMap recomputes peekSrc/pokeSrc from the five live control bits.
// Must run before the next access whenever any of LORAM/HIRAM/CHAREN
// (processor port) or GAME/EXROM (cartridge) changes, per invariant P9.
func (b *Bus) refreshMap() {
	// A pin whose DDR bit is 0 (input) floats high on the real 6510's
	// internal pull-ups rather than reading as 0 - this is what lets
	// the reset vector fetch see BASIC/KERNAL/IO before any software
	// has driven the port at all.
	loram := portBitHigh(b.port, b.ddr, 0x01)
	hiram := portBitHigh(b.port, b.ddr, 0x02)
	charen := portBitHigh(b.port, b.ddr, 0x04)
	game := b.cart.GameLine()
	exrom := b.cart.ExromLine()

	b.ctrl = ctrlIndex(loram, hiram, charen, game, exrom)
	row := bankMap[b.ctrl]
	b.peekSrc = row
	for i, r := range row {
		b.pokeSrc[i] = pokeTargetForRegion(r)
	}
}

// RefreshMap is the public hook the cartridge uses after asserting new
// GAME/EXROM lines (e.g. entering ultimax mode on a freeze button press).
func (b *Bus) RefreshMap() { b.refreshMap() }

// Peek performs a CPU or VIC-II read. It always returns a byte - open-bus
// reads return the floating latch rather than erroring, per §4.1's
// totality guarantee.
func (b *Bus) Peek(addr uint16) uint8 {
	if addr == 0x0000 {
		b.data = b.ddr
		return b.data
	}
	if addr == 0x0001 {
		b.data = b.readPort()
		return b.data
	}

	region := b.peekSrc[addr>>12]
	if region == RegionIO {
		b.data = b.peekIO(addr)
		return b.data
	}
	b.data = b.peekRegion(region, addr)
	return b.data
}

// PeekDebug reads without disturbing the floating-bus latch or any
// side-effecting device register (e.g. CIA timer latches). It is used by
// disassemblers and snapshot inspection, matching the teacher's
// distinction between peek (side-effecting) and a debug-only read.
func (b *Bus) PeekDebug(addr uint16) uint8 {
	saved := b.data
	v := b.Peek(addr)
	b.data = saved
	return v
}

func (b *Bus) peekRegion(region Region, addr uint16) uint8 {
	switch region {
	case RegionRAM:
		return b.ram[addr]
	case RegionBasicROM:
		return b.basicROM[addr-0xA000]
	case RegionKernalROM:
		return b.kernalROM[addr-0xE000]
	case RegionCharROM:
		return b.charROM[addr-0xD000]
	case RegionCartLo:
		return b.cart.PeekROML(addr)
	case RegionCartHi:
		return b.cart.PeekROMH(addr)
	case RegionNone:
		return b.data
	default:
		return b.data
	}
}

// peekIO implements the $D000-$DFFF sub-decode of §4.1 rule 3.
func (b *Bus) peekIO(addr uint16) uint8 {
	switch {
	case addr < 0xD400:
		return b.vic.Peek(uint8(addr & 0x3F))
	case addr < 0xD800:
		return b.sid.Peek(uint8(addr & 0x1F))
	case addr < 0xDC00:
		// color RAM is nibble-wide; the upper nibble is unconnected and
		// reads back whatever was last on the bus.
		v := b.colorRam[addr&0x03FF] & 0x0F
		return v | (b.data & 0xF0)
	case addr < 0xDD00:
		return b.cia1.Peek(uint8(addr & 0xFF))
	case addr < 0xDE00:
		return b.cia2.Peek(uint8(addr & 0xFF))
	case addr < 0xDF00:
		return b.cart.PeekIO1(addr)
	default:
		return b.cart.PeekIO2(addr)
	}
}

// Poke performs a CPU write. Writes to $D800-$DBFF always also hit color
// RAM even when I/O is mapped elsewhere by a cartridge override, per the
// §3.2 invariant.
func (b *Bus) Poke(addr uint16, v uint8) {
	b.data = v

	if addr == 0x0000 {
		if b.ddr != v {
			b.ddr = v
			b.refreshMap()
		}
		return
	}
	if addr == 0x0001 {
		if b.port != v {
			b.port = v
			b.refreshMap()
		}
		return
	}

	if addr >= 0xD800 && addr < 0xDC00 {
		b.colorRam[addr&0x03FF] = v & 0x0F
	}

	region := b.pokeSrc[addr>>12]
	if region == RegionIO {
		b.pokeIO(addr, v)
		return
	}
	b.pokeRegion(region, addr, v)
}

func (b *Bus) pokeRegion(region Region, addr uint16, v uint8) {
	switch region {
	case RegionRAM:
		b.ram[addr] = v
	case RegionCartLo:
		if !b.cart.PokeROML(addr, v) {
			b.ram[addr] = v
		}
	case RegionCartHi:
		if !b.cart.PokeROMH(addr, v) {
			b.ram[addr] = v
		}
	case RegionNone:
		// nothing listens; the byte was already latched onto the bus.
	default:
		logger.Logf("bus", "unexpected poke region %s at %#04x", region, addr)
	}
}

func (b *Bus) pokeIO(addr uint16, v uint8) {
	switch {
	case addr < 0xD400:
		b.vic.Poke(uint8(addr&0x3F), v)
	case addr < 0xD800:
		b.sid.Poke(uint8(addr&0x1F), v)
	case addr < 0xDC00:
		// already handled in Poke: color RAM always receives this write.
	case addr < 0xDD00:
		b.cia1.Poke(uint8(addr&0xFF), v)
	case addr < 0xDE00:
		b.cia2.Poke(uint8(addr&0xFF), v)
	case addr < 0xDF00:
		b.cart.PokeIO1(addr, v)
	default:
		b.cart.PokeIO2(addr, v)
	}
}

// readPort reconstructs the processor-port data register read value:
// output bits read the data register, and input bits read whatever
// floatingInputBits reports (see SPEC_FULL.md §C.3). No decay over time
// is modeled. Bits 6 and 7 (tape sense/motor) have no external driver
// modeled here and always read back as last written.
func (b *Bus) readPort() uint8 {
	return (b.port & b.ddr) | (b.floatingInputBits() &^ b.ddr)
}

// floatingInputBits returns the value of input-configured or undriven
// processor-port bits. Real 6510 DDR=0 bits slowly discharge toward 1;
// since the core has no continuous-time capacitor model, input bits read
// back the last value written to the port data register, which is what
// essentially every piece of C64 software observes in practice.
func (b *Bus) floatingInputBits() uint8 {
	return b.port
}

// Region reports the bank-mapper's current resolution for addr, for
// debuggers and snapshot consumers that want to display the active
// mapping without performing a read.
func (b *Bus) Region(addr uint16) Region {
	if addr == 0x0000 || addr == 0x0001 {
		return RegionRAM
	}
	return b.peekSrc[addr>>12]
}

// VICPeek services the VIC-II's own 14-bit address bus, which is wired
// directly to RAM and character ROM rather than going through the CPU's
// bank mapper: bank selects one of four 16KB windows (from CIA2 port A
// bits 0-1, set by the caller), and banks 0 and 2 shadow character ROM at
// offset $1000-$1FFF within the bank regardless of CHAREN, per
// SPEC_FULL.md §C.4.
func (b *Bus) VICPeek(bank uint8, addr uint16) uint8 {
	rel := addr & 0x3FFF
	if (bank == 0 || bank == 2) && rel >= 0x1000 && rel < 0x2000 {
		return b.charROM[rel-0x1000]
	}
	base := uint16(bank) * 0x4000
	return b.ram[base+rel]
}

// VICColorNibble returns the low nibble of color RAM at a character-matrix
// offset (0-999), for the VIC-II's c-access. Color RAM is not bank-relative
// - it sits outside the 64KB address space proper.
func (b *Bus) VICColorNibble(offset uint16) uint8 {
	return b.colorRam[offset&0x03FF] & 0x0F
}

// LatchedData returns the current floating-bus value.
func (b *Bus) LatchedData() uint8 { return b.data }

// RAM exposes the underlying 64K array for snapshotting and RAM-init
// filling; callers must not retain the slice past a Reset.
func (b *Bus) RAM() []byte { return b.ram[:] }

// ColorRAM exposes the 1K color RAM array for snapshotting.
func (b *Bus) ColorRAM() []byte { return b.colorRam[:] }

// ProcessorPort returns the raw DDR and data register values, for
// snapshotting and for the VIC-II's bank-base calculation (via CIA2, not
// this port - the processor port only gates LORAM/HIRAM/CHAREN).
func (b *Bus) ProcessorPort() (ddr, port uint8) { return b.ddr, b.port }

// SetProcessorPort restores DDR/port from a snapshot without triggering
// the normal "changed" detection semantics (the map is refreshed
// unconditionally afterward).
func (b *Bus) SetProcessorPort(ddr, port uint8) {
	b.ddr, b.port = ddr, port
	b.refreshMap()
}
