package vic

// palette is the standard 16-colour C64 RGB set (Pepto's commonly used
// values), indexed by the 4-bit colour codes stored in every VIC-II
// colour register.
var palette = [16][3]byte{
	{0x00, 0x00, 0x00}, // black
	{0xFF, 0xFF, 0xFF}, // white
	{0x68, 0x37, 0x2B}, // red
	{0x70, 0xA4, 0xB2}, // cyan
	{0x6F, 0x3D, 0x86}, // purple
	{0x58, 0x8D, 0x43}, // green
	{0x35, 0x28, 0x79}, // blue
	{0xB8, 0xC7, 0x6F}, // yellow
	{0x6F, 0x4F, 0x25}, // orange
	{0x43, 0x39, 0x00}, // brown
	{0x9A, 0x67, 0x59}, // light red
	{0x44, 0x44, 0x44}, // dark grey
	{0x6C, 0x6C, 0x6C}, // grey
	{0x9A, 0xD2, 0x84}, // light green
	{0x6C, 0x5E, 0xB5}, // light blue
	{0x95, 0x95, 0x95}, // light grey
}

func (v *VIC) setPixel(x, y int, colorIndex uint8) {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return
	}
	off := (y*v.width + x) * 4
	c := palette[colorIndex&0x0F]
	v.frame[off] = c[0]
	v.frame[off+1] = c[1]
	v.frame[off+2] = c[2]
	v.frame[off+3] = 0xFF
}
