package vic

// spritePrepare fetches a sprite's three data bytes for the current
// scanline, once per line, when the sprite's Y range covers it. Real
// silicon schedules this as a p-access plus two s-accesses spread across
// a fixed cycle pair per sprite; here the whole row's worth of data is
// fetched in one shot at the start of the line, which produces the same
// pixels without modelling the exact DMA cycle-pair table.
func (v *VIC) spritePrepare() {
	for n := 0; n < 8; n++ {
		s := &v.sprites[n]
		if !v.spriteEnabled(n) || !v.spriteDMAActive(n) {
			s.active = false
			continue
		}

		s.active = true
		s.x = v.spriteX(n)

		row := v.yCounter - v.spriteY(n)
		if v.spriteYExpand(n) {
			row /= 2
		}
		if row < 0 {
			row = 0
		}

		pointer := v.mem.VICPeek(v.bank, v.spritePointerBase()+uint16(n))
		base := uint16(pointer)*64 + uint16(row)*3

		b0 := v.mem.VICPeek(v.bank, base)
		b1 := v.mem.VICPeek(v.bank, base+1)
		b2 := v.mem.VICPeek(v.bank, base+2)
		s.shiftReg = uint32(b0)<<16 | uint32(b1)<<8 | uint32(b2)
	}
}

// compositeSprites draws every active sprite's pixels for the line just
// finished onto the frame buffer, in priority order (sprite 0 highest),
// and updates the sprite-sprite and sprite-background collision
// registers with edge-triggered IRQ sources.
func (v *VIC) compositeSprites() {
	var drawnBy [640]int8
	for i := range drawnBy {
		drawnBy[i] = -1
	}

	var ssMask, sbMask uint8

	for n := 0; n < 8; n++ {
		s := &v.sprites[n]
		if !s.active {
			continue
		}

		width := 24
		step := 1
		if v.spriteXExpand(n) {
			width = 48
			step = 2
		}

		bit := 23
		for i := 0; i < width; i += step {
			if bit < 0 {
				break
			}
			on := s.shiftReg&(1<<uint(bit)) != 0
			bit--

			if !on {
				continue
			}
			px := s.x + i
			if px < 0 || px >= len(drawnBy) {
				continue
			}

			for k := 0; k < step && px+k < len(drawnBy); k++ {
				p := px + k
				if drawnBy[p] >= 0 {
					ssMask |= 1 << uint(drawnBy[p])
					ssMask |= 1 << uint(n)
				} else {
					drawnBy[p] = int8(n)
					if !v.spritePriority(n) || !v.fgMask[p] {
						v.setPixel(p, v.yCounter, v.spriteColorIndex(n))
					}
				}
				if v.fgMask[p] {
					sbMask |= 1 << uint(n)
				}
			}
		}
	}

	if ssMask != 0 {
		if v.reg[regCollSS] == 0 {
			v.reg[regIRQ] |= IRQSpriteColl
		}
		v.reg[regCollSS] |= ssMask
	}
	if sbMask != 0 {
		if v.reg[regCollSB] == 0 {
			v.reg[regIRQ] |= IRQSpriteBG
		}
		v.reg[regCollSB] |= sbMask
	}
}

func (v *VIC) spriteColorIndex(n int) uint8 {
	return v.reg[regSpriteColor+n] & 0x0F
}
