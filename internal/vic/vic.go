// Package vic implements the MOS 6569/6567 (VIC-II) video chip: the
// per-cycle raster/sprite state machine, its $D000-$D02E register file,
// and the BA line the bus arbiter stalls the CPU with on bad lines.
//
// Grounded on hardware/tia/step.go for the phase-ordered per-cycle Step
// shape (frame logic -> fetch -> BA/RDY interaction -> pixel output) and
// hardware/tia/polycounter/polycounter.go for the raster/phase counter
// idiom; sprite DMA and collision detection ground on
// hardware/tia/video/sprite.go and collisions.go.
package vic

import "github.com/TimothyRLaMora734/virtualc64/internal/config"

// Memory is the capability the VIC-II needs from the rest of the
// machine: its own 14-bit address bus, wired directly to RAM and
// character ROM rather than through the CPU's bank mapper.
type Memory interface {
	VICPeek(bank uint8, addr uint16) uint8
	VICColorNibble(offset uint16) uint8
}

// register offsets within the $D000-$D02E block, mirrored every 64 bytes
// across $D000-$D3FF by the bus.
const (
	regSpriteX0    = 0x00
	regSpriteY0    = 0x01
	regSpriteXMSB  = 0x10
	regControl1    = 0x11
	regRaster      = 0x12
	regLightpenX   = 0x13
	regLightpenY   = 0x14
	regSpriteEnab  = 0x15
	regControl2    = 0x16
	regSpriteYExp  = 0x17
	regMemPointers = 0x18
	regIRQ         = 0x19
	regIRQMask     = 0x1A
	regSpritePri   = 0x1B
	regSpriteMC    = 0x1C
	regSpriteXExp  = 0x1D
	regCollSS      = 0x1E
	regCollSB      = 0x1F
	regBorder      = 0x20
	regBackground0 = 0x21
	regSpriteMC0   = 0x25
	regSpriteMC1   = 0x26
	regSpriteColor = 0x27
)

// IRQ source bits in $D019/$D01A, and the bit the CPU line is ORed from.
const (
	IRQRaster     uint8 = 0x01
	IRQSpriteBG   uint8 = 0x02
	IRQSpriteColl uint8 = 0x04
	IRQLightpen   uint8 = 0x08
	irqAny        uint8 = 0x80
)

// IRQSourceVIC is the bit System asserts on the CPU's IRQ line while the
// chip's own IRQ output is high.
const IRQSourceVIC uint8 = 0x02

type spriteState struct {
	mc        uint8
	mcbase    uint8
	expFlip   bool
	shiftReg  uint32
	shiftCnt  int
	active    bool
	x         int
	dmaLatch  bool
}

// VIC holds the chip's full per-cycle state.
type VIC struct {
	model config.Model
	mem   Memory

	reg [0x30]uint8

	bank uint8 // 0-3, set by System from CIA2 port A bits 0-1

	cycle     int // 1..CyclesPerLine
	yCounter  int
	rc        uint8 // character row counter, 0-7
	badLine   bool
	displayOn bool // latched display-window flip-flop (DEN seen active this frame)

	verticalBorder bool
	mainBorder     bool

	videoMatrix [40]uint8
	colorLine   [40]uint8

	baAsserted   bool
	baLowCycles  int
	rdyOut       bool

	rasterIRQFired bool // edge-latch: only once per matching line

	sprites [8]spriteState

	frame    []byte // RGBA, width*height*4
	width    int
	height   int

	fgMask [640]bool // foreground (non-border, bit-set) pixels this line, for sprite-background collision
}

const displayLeftX = 24

// New returns a VIC-II reset to power-on state for the given model.
func New(model config.Model, mem Memory) *VIC {
	v := &VIC{
		model: model,
		mem:   mem,
	}
	v.width = model.CyclesPerLine() * 8
	v.height = model.LinesPerFrame()
	v.frame = make([]byte, v.width*v.height*4)
	v.rdyOut = true
	return v
}

// SetBank sets the 16KB window (0-3) the chip's own address bus reads
// through, derived by System from CIA2 port A bits 0-1.
func (v *VIC) SetBank(bank uint8) { v.bank = bank & 0x03 }

// State is everything a snapshot needs to resume the raster/sprite state
// machine exactly where it left off: the register file plus the cycle
// position within the current frame. It deliberately excludes the frame
// buffer itself, which a restored chip repaints within one frame.
type State struct {
	Registers      [0x30]uint8
	Bank           uint8
	Cycle          int
	YCounter       int
	RC             uint8
	BadLine        bool
	DisplayOn      bool
	VerticalBorder bool
	MainBorder     bool
	BALowCycles    int
	RasterIRQFired bool
}

// Snapshot captures the chip's resumable state.
func (v *VIC) Snapshot() State {
	return State{
		Registers:      v.reg,
		Bank:           v.bank,
		Cycle:          v.cycle,
		YCounter:       v.yCounter,
		RC:             v.rc,
		BadLine:        v.badLine,
		DisplayOn:      v.displayOn,
		VerticalBorder: v.verticalBorder,
		MainBorder:     v.mainBorder,
		BALowCycles:    v.baLowCycles,
		RasterIRQFired: v.rasterIRQFired,
	}
}

// Restore loads a previously captured State.
func (v *VIC) Restore(s State) {
	v.reg = s.Registers
	v.bank = s.Bank
	v.cycle = s.Cycle
	v.yCounter = s.YCounter
	v.rc = s.RC
	v.badLine = s.BadLine
	v.displayOn = s.DisplayOn
	v.verticalBorder = s.VerticalBorder
	v.mainBorder = s.MainBorder
	v.baLowCycles = s.BALowCycles
	v.rasterIRQFired = s.RasterIRQFired
}

// RDY reports the chip's RDY output to the CPU: false stalls the next
// fetch. Asserted low three cycles after BA goes low, per §4.3.
func (v *VIC) RDY() bool { return v.rdyOut }

// IRQ reports whether the chip's masked IRQ output is currently high.
func (v *VIC) IRQ() bool { return v.reg[regIRQ]&v.reg[regIRQMask]&0x0F != 0 }

// FrameBuffer returns the last fully rendered raw frame (including
// border and blanking), as 8-bit RGBA.
func (v *VIC) FrameBuffer() []byte { return v.frame }

// Dimensions returns the raw frame's width and height in pixels.
func (v *VIC) Dimensions() (int, int) { return v.width, v.height }

func (v *VIC) rasterLine() int {
	return v.yCounter
}

func (v *VIC) rasterCompare() int {
	hi := 0
	if v.reg[regControl1]&0x80 != 0 {
		hi = 0x100
	}
	return hi | int(v.reg[regRaster])
}

// Peek implements bus.IODevice.
func (v *VIC) Peek(regAddr uint8) uint8 {
	r := regAddr & 0x3F
	switch {
	case r == regRaster:
		return uint8(v.yCounter)
	case r == regControl1:
		v.reg[r] &^= 0x80
		if v.yCounter > 0xFF {
			v.reg[r] |= 0x80
		}
		return v.reg[r]
	case r == regIRQ:
		val := v.reg[r] & 0x0F
		if val != 0 {
			val |= irqAny
		}
		return val | 0x70
	case r == regCollSS:
		val := v.reg[r]
		v.reg[r] = 0
		return val
	case r == regCollSB:
		val := v.reg[r]
		v.reg[r] = 0
		return val
	case r > regSpriteColor+7:
		return 0xFF
	case r >= regSpriteColor:
		return v.reg[r] | 0xF0
	case r == regSpriteMC0, r == regSpriteMC1:
		return v.reg[r] | 0xF0
	case r == regBorder || (r >= regBackground0 && r < regSpriteMC0):
		return v.reg[r] | 0xF0
	default:
		return v.reg[r]
	}
}

// Poke implements bus.IODevice.
func (v *VIC) Poke(regAddr uint8, val uint8) {
	r := regAddr & 0x3F
	if r >= 0x30 {
		return
	}
	switch r {
	case regIRQ:
		v.reg[r] &^= val & 0x0F
	case regRaster:
		v.reg[r] = val
	case regCollSS, regCollSB:
		// read-only, writes have no effect
	default:
		v.reg[r] = val
	}
}

func (v *VIC) spriteEnabled(n int) bool  { return v.reg[regSpriteEnab]&(1<<n) != 0 }
func (v *VIC) spriteYExpand(n int) bool  { return v.reg[regSpriteYExp]&(1<<n) != 0 }
func (v *VIC) spriteXExpand(n int) bool  { return v.reg[regSpriteXExp]&(1<<n) != 0 }
func (v *VIC) spriteMulticolor(n int) bool { return v.reg[regSpriteMC]&(1<<n) != 0 }
func (v *VIC) spritePriority(n int) bool { return v.reg[regSpritePri]&(1<<n) != 0 }

func (v *VIC) spriteX(n int) int {
	lo := int(v.reg[regSpriteX0+2*n])
	msb := v.reg[regSpriteXMSB]&(1<<n) != 0
	if msb {
		return lo | 0x100
	}
	return lo
}

func (v *VIC) spriteY(n int) int { return int(v.reg[regSpriteY0+2*n]) }

func (v *VIC) den() bool    { return v.reg[regControl1]&0x10 != 0 }
func (v *VIC) rsel() bool   { return v.reg[regControl1]&0x08 != 0 }
func (v *VIC) csel() bool   { return v.reg[regControl2]&0x08 != 0 }
func (v *VIC) ecm() bool    { return v.reg[regControl1]&0x40 != 0 }
func (v *VIC) bmm() bool    { return v.reg[regControl1]&0x20 != 0 }
func (v *VIC) mcm() bool    { return v.reg[regControl2]&0x10 != 0 }
func (v *VIC) yScroll() int { return int(v.reg[regControl1] & 0x07) }
func (v *VIC) xScroll() int { return int(v.reg[regControl2] & 0x07) }

func (v *VIC) screenBase() uint16 {
	return uint16(v.reg[regMemPointers]&0xF0) << 6
}

func (v *VIC) charBase() uint16 {
	return uint16(v.reg[regMemPointers]&0x0E) << 10
}

func (v *VIC) bitmapBase() uint16 {
	return uint16(v.reg[regMemPointers]&0x08) << 10
}

func (v *VIC) spritePointerBase() uint16 { return v.screenBase() + 0x3F8 }
