package cpu

import "github.com/TimothyRLaMora734/virtualc64/internal/cpu/opcode"

// runStep executes one sub-instruction cycle. It is a pure function of
// (cpu scratch state, opcode definition, step number) - nothing here is
// stored as a closure, so CPU.next fully determines where execution will
// resume. It returns true when the instruction has completed this cycle.
func runStep(c *CPU, bus Bus, def opcode.Definition, step int) bool {
	switch def.Mnemonic {
	case "JSR":
		return stepJSR(c, bus, step)
	case "RTS":
		return stepRTS(c, bus, step)
	case "RTI":
		return stepRTI(c, bus, step)
	case "BRK":
		return stepInterruptPush(c, bus, step)
	case "PHA", "PHP":
		return stepPush(c, bus, def, step)
	case "PLA", "PLP":
		return stepPull(c, bus, def, step)
	case "JMP":
		if def.Mode == opcode.Indirect {
			return stepJMPIndirect(c, bus, step)
		}
		return stepJMPAbsolute(c, bus, step)
	}

	if def.IsBranch() {
		return stepBranch(c, bus, def, step)
	}

	switch def.Mode {
	case opcode.Implied:
		return stepImplied(c, def, step)
	case opcode.Accumulator:
		return stepAccumulator(c, def, step)
	case opcode.Immediate:
		return stepImmediate(c, bus, def, step)
	case opcode.ZeroPage:
		return stepZeroPage(c, bus, def, step)
	case opcode.ZeroPageX:
		return stepZeroPageIndexed(c, bus, def, step, c.X.Value())
	case opcode.ZeroPageY:
		return stepZeroPageIndexed(c, bus, def, step, c.Y.Value())
	case opcode.Absolute:
		return stepAbsolute(c, bus, def, step)
	case opcode.AbsoluteX:
		return stepAbsoluteIndexed(c, bus, def, step, c.X.Value())
	case opcode.AbsoluteY:
		return stepAbsoluteIndexed(c, bus, def, step, c.Y.Value())
	case opcode.PreIndexedIndirect:
		return stepPreIndexedIndirect(c, bus, def, step)
	case opcode.PostIndexedIndirect:
		return stepPostIndexedIndirect(c, bus, def, step)
	}
	return true
}

// --- Implied / Accumulator --------------------------------------------

func stepImplied(c *CPU, def opcode.Definition, step int) bool {
	// step 1: dummy read of the following byte, then apply the op. Real
	// silicon performs the dummy read with a bus access; since implied
	// ops never touch an operand we skip the Peek and just consume the
	// cycle, matching the register-only side effect.
	applyImplied(c, def.Mnemonic)
	return true
}

func stepAccumulator(c *CPU, def opcode.Definition, step int) bool {
	applyAccumulatorModify(c, def.Mnemonic)
	return true
}

// --- Immediate -----------------------------------------------------------

func stepImmediate(c *CPU, bus Bus, def opcode.Definition, step int) bool {
	v := bus.Peek(c.PC.Address())
	c.PC.Add(1)
	applyRead(c, def.Mnemonic, v)
	return true
}

// --- Zero page -------------------------------------------------------------

func stepZeroPage(c *CPU, bus Bus, def opcode.Definition, step int) bool {
	switch step {
	case 1:
		c.addrLo = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		return false
	case 2:
		ea := uint16(c.addrLo)
		switch def.Category {
		case opcode.Read:
			applyRead(c, def.Mnemonic, bus.Peek(ea))
			return true
		case opcode.Write:
			bus.Poke(ea, applyWriteValue(c, def.Mnemonic, 0))
			return true
		case opcode.Modify:
			c.data = bus.Peek(ea)
			return false
		}
	case 3:
		bus.Poke(uint16(c.addrLo), c.data) // dummy write-back
		return false
	case 4:
		ea := uint16(c.addrLo)
		bus.Poke(ea, applyModify(c, def.Mnemonic, c.data))
		return true
	}
	return true
}

func stepZeroPageIndexed(c *CPU, bus Bus, def opcode.Definition, step int, index uint8) bool {
	switch step {
	case 1:
		c.addrLo = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		return false
	case 2:
		bus.Peek(uint16(c.addrLo)) // dummy read of unindexed address
		c.ptr = c.addrLo + index
		return false
	case 3:
		ea := uint16(c.ptr)
		switch def.Category {
		case opcode.Read:
			applyRead(c, def.Mnemonic, bus.Peek(ea))
			return true
		case opcode.Write:
			bus.Poke(ea, applyWriteValue(c, def.Mnemonic, 0))
			return true
		case opcode.Modify:
			c.data = bus.Peek(ea)
			return false
		}
	case 4:
		bus.Poke(uint16(c.ptr), c.data)
		return false
	case 5:
		ea := uint16(c.ptr)
		bus.Poke(ea, applyModify(c, def.Mnemonic, c.data))
		return true
	}
	return true
}

// --- Absolute --------------------------------------------------------------

func stepAbsolute(c *CPU, bus Bus, def opcode.Definition, step int) bool {
	switch step {
	case 1:
		c.addrLo = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		return false
	case 2:
		c.addrHi = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		return false
	case 3:
		ea := uint16(c.addrHi)<<8 | uint16(c.addrLo)
		switch def.Category {
		case opcode.Read:
			applyRead(c, def.Mnemonic, bus.Peek(ea))
			return true
		case opcode.Write:
			bus.Poke(ea, applyWriteValue(c, def.Mnemonic, c.addrHi))
			return true
		case opcode.Modify:
			c.data = bus.Peek(ea)
			return false
		}
	case 4:
		ea := uint16(c.addrHi)<<8 | uint16(c.addrLo)
		bus.Poke(ea, c.data)
		return false
	case 5:
		ea := uint16(c.addrHi)<<8 | uint16(c.addrLo)
		bus.Poke(ea, applyModify(c, def.Mnemonic, c.data))
		return true
	}
	return true
}

func stepJMPAbsolute(c *CPU, bus Bus, step int) bool {
	switch step {
	case 1:
		c.addrLo = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		return false
	case 2:
		c.addrHi = bus.Peek(c.PC.Address())
		c.PC.Load(uint16(c.addrHi)<<8 | uint16(c.addrLo))
		return true
	}
	return true
}

func stepJMPIndirect(c *CPU, bus Bus, step int) bool {
	switch step {
	case 1:
		c.addrLo = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		return false
	case 2:
		c.addrHi = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		return false
	case 3:
		ptr := uint16(c.addrHi)<<8 | uint16(c.addrLo)
		c.data = bus.Peek(ptr)
		return false
	case 4:
		ptr := uint16(c.addrHi)<<8 | uint16(c.addrLo)
		// the famous $xxFF bug: the high byte is fetched from the start
		// of the same page instead of the next page.
		hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		hi := bus.Peek(hiAddr)
		c.PC.Load(uint16(hi)<<8 | uint16(c.data))
		return true
	}
	return true
}

// --- Absolute,X / Absolute,Y -----------------------------------------------

func stepAbsoluteIndexed(c *CPU, bus Bus, def opcode.Definition, step int, index uint8) bool {
	switch step {
	case 1:
		c.addrLo = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		return false
	case 2:
		c.addrHi = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		sum := uint16(c.addrLo) + uint16(index)
		c.ptr = uint8(sum)
		c.overflow = sum > 0xFF
		return false
	case 3:
		uncorrected := uint16(c.addrHi)<<8 | uint16(c.ptr)
		switch def.Category {
		case opcode.Read:
			v := bus.Peek(uncorrected)
			if !c.overflow {
				applyRead(c, def.Mnemonic, v)
				return true
			}
			return false
		case opcode.Write, opcode.Modify:
			bus.Peek(uncorrected) // dummy
			return false
		}
	case 4:
		hi := c.addrHi
		if c.overflow {
			hi++
		}
		ea := uint16(hi)<<8 | uint16(c.ptr)
		switch def.Category {
		case opcode.Read:
			applyRead(c, def.Mnemonic, bus.Peek(ea))
			return true
		case opcode.Write:
			bus.Poke(ea, applyWriteValue(c, def.Mnemonic, hi))
			return true
		case opcode.Modify:
			c.data = bus.Peek(ea)
			return false
		}
	case 5:
		hi := c.addrHi
		if c.overflow {
			hi++
		}
		ea := uint16(hi)<<8 | uint16(c.ptr)
		bus.Poke(ea, c.data)
		return false
	case 6:
		hi := c.addrHi
		if c.overflow {
			hi++
		}
		ea := uint16(hi)<<8 | uint16(c.ptr)
		bus.Poke(ea, applyModify(c, def.Mnemonic, c.data))
		return true
	}
	return true
}

// --- (zp,X) ------------------------------------------------------------

func stepPreIndexedIndirect(c *CPU, bus Bus, def opcode.Definition, step int) bool {
	switch step {
	case 1:
		c.ptr = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		return false
	case 2:
		bus.Peek(uint16(c.ptr)) // dummy read of unindexed pointer
		c.ptr += c.X.Value()
		return false
	case 3:
		c.addrLo = bus.Peek(uint16(c.ptr))
		return false
	case 4:
		c.addrHi = bus.Peek(uint16(uint8(c.ptr + 1)))
		return false
	case 5:
		ea := uint16(c.addrHi)<<8 | uint16(c.addrLo)
		switch def.Category {
		case opcode.Read:
			applyRead(c, def.Mnemonic, bus.Peek(ea))
			return true
		case opcode.Write:
			bus.Poke(ea, applyWriteValue(c, def.Mnemonic, c.addrHi))
			return true
		case opcode.Modify:
			c.data = bus.Peek(ea)
			return false
		}
	case 6:
		ea := uint16(c.addrHi)<<8 | uint16(c.addrLo)
		bus.Poke(ea, c.data)
		return false
	case 7:
		ea := uint16(c.addrHi)<<8 | uint16(c.addrLo)
		bus.Poke(ea, applyModify(c, def.Mnemonic, c.data))
		return true
	}
	return true
}

// --- (zp),Y --------------------------------------------------------------

func stepPostIndexedIndirect(c *CPU, bus Bus, def opcode.Definition, step int) bool {
	switch step {
	case 1:
		c.ptr = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		return false
	case 2:
		c.addrLo = bus.Peek(uint16(c.ptr))
		return false
	case 3:
		c.addrHi = bus.Peek(uint16(uint8(c.ptr + 1)))
		sum := uint16(c.addrLo) + uint16(c.Y.Value())
		c.ptr = uint8(sum)
		c.overflow = sum > 0xFF
		return false
	case 4:
		uncorrected := uint16(c.addrHi)<<8 | uint16(c.ptr)
		switch def.Category {
		case opcode.Read:
			v := bus.Peek(uncorrected)
			if !c.overflow {
				applyRead(c, def.Mnemonic, v)
				return true
			}
			return false
		case opcode.Write, opcode.Modify:
			bus.Peek(uncorrected)
			return false
		}
	case 5:
		hi := c.addrHi
		if c.overflow {
			hi++
		}
		ea := uint16(hi)<<8 | uint16(c.ptr)
		switch def.Category {
		case opcode.Read:
			applyRead(c, def.Mnemonic, bus.Peek(ea))
			return true
		case opcode.Write:
			bus.Poke(ea, applyWriteValue(c, def.Mnemonic, hi))
			return true
		case opcode.Modify:
			c.data = bus.Peek(ea)
			return false
		}
	case 6:
		hi := c.addrHi
		if c.overflow {
			hi++
		}
		ea := uint16(hi)<<8 | uint16(c.ptr)
		bus.Poke(ea, c.data)
		return false
	case 7:
		hi := c.addrHi
		if c.overflow {
			hi++
		}
		ea := uint16(hi)<<8 | uint16(c.ptr)
		bus.Poke(ea, applyModify(c, def.Mnemonic, c.data))
		return true
	}
	return true
}

// --- Branches ------------------------------------------------------------

func stepBranch(c *CPU, bus Bus, def opcode.Definition, step int) bool {
	switch step {
	case 1:
		offset := bus.Peek(c.PC.Address())
		c.PC.Add(1)
		if !branchTaken(c, def.Mnemonic) {
			return true
		}
		base := c.PC.Address()
		target := base + uint16(int8(offset))
		c.addrLo = uint8(target)
		c.addrHi = uint8(target >> 8)
		c.overflow = (target & 0xFF00) != (base & 0xFF00)
		return false
	case 2:
		bus.Peek(c.PC.Address()) // dummy read
		if !c.overflow {
			c.PC.Load(uint16(c.addrHi)<<8 | uint16(c.addrLo))
			return true
		}
		return false
	case 3:
		bus.Peek(c.PC.Address()) // dummy read on the wrong page
		c.PC.Load(uint16(c.addrHi)<<8 | uint16(c.addrLo))
		return true
	}
	return true
}

// --- JSR / RTS / RTI / BRK -------------------------------------------------

func stepJSR(c *CPU, bus Bus, step int) bool {
	switch step {
	case 1:
		c.addrLo = bus.Peek(c.PC.Address())
		c.PC.Add(1)
		return false
	case 2:
		bus.Peek(c.SP.Address()) // internal stack-peek cycle
		return false
	case 3:
		bus.Poke(c.SP.Address(), uint8(c.PC.Address()>>8))
		c.SP.Push()
		return false
	case 4:
		bus.Poke(c.SP.Address(), uint8(c.PC.Address()))
		c.SP.Push()
		return false
	case 5:
		c.addrHi = bus.Peek(c.PC.Address())
		c.PC.Load(uint16(c.addrHi)<<8 | uint16(c.addrLo))
		c.callStack.push(c.PC.Address())
		return true
	}
	return true
}

func stepRTS(c *CPU, bus Bus, step int) bool {
	switch step {
	case 1:
		bus.Peek(c.PC.Address())
		return false
	case 2:
		bus.Peek(c.SP.Address())
		return false
	case 3:
		c.SP.Pull()
		c.addrLo = bus.Peek(c.SP.Address())
		return false
	case 4:
		c.SP.Pull()
		c.addrHi = bus.Peek(c.SP.Address())
		c.PC.Load(uint16(c.addrHi)<<8 | uint16(c.addrLo))
		return false
	case 5:
		bus.Peek(c.PC.Address())
		c.PC.Add(1)
		c.callStack.pop()
		return true
	}
	return true
}

func stepRTI(c *CPU, bus Bus, step int) bool {
	switch step {
	case 1:
		bus.Peek(c.PC.Address())
		return false
	case 2:
		bus.Peek(c.SP.Address())
		return false
	case 3:
		c.SP.Pull()
		c.Status.FromValue(bus.Peek(c.SP.Address()))
		return false
	case 4:
		c.SP.Pull()
		c.addrLo = bus.Peek(c.SP.Address())
		return false
	case 5:
		c.SP.Pull()
		c.addrHi = bus.Peek(c.SP.Address())
		c.PC.Load(uint16(c.addrHi)<<8 | uint16(c.addrLo))
		c.callStack.pop()
		return true
	}
	return true
}

func stepPush(c *CPU, bus Bus, def opcode.Definition, step int) bool {
	switch step {
	case 1:
		bus.Peek(c.PC.Address())
		return false
	case 2:
		var v uint8
		if def.Mnemonic == "PHA" {
			v = c.A.Value()
		} else {
			sr := c.Status
			sr.B = true
			v = sr.Value()
		}
		bus.Poke(c.SP.Address(), v)
		c.SP.Push()
		return true
	}
	return true
}

func stepPull(c *CPU, bus Bus, def opcode.Definition, step int) bool {
	switch step {
	case 1:
		bus.Peek(c.PC.Address())
		return false
	case 2:
		bus.Peek(c.SP.Address())
		return false
	case 3:
		c.SP.Pull()
		v := bus.Peek(c.SP.Address())
		if def.Mnemonic == "PLA" {
			c.A.Load(v)
			setNZ(c, v)
		} else {
			c.Status.FromValue(v)
		}
		return true
	}
	return true
}

func stepInterruptPush(c *CPU, bus Bus, step int) bool {
	switch step {
	case 1:
		bus.Peek(c.PC.Address())
		if c.interrupt == brkInterrupt || c.interrupt == noInterrupt {
			c.interrupt = brkInterrupt
			c.PC.Add(1)
		}
		return false
	case 2:
		bus.Poke(c.SP.Address(), uint8(c.PC.Address()>>8))
		c.SP.Push()
		return false
	case 3:
		bus.Poke(c.SP.Address(), uint8(c.PC.Address()))
		c.SP.Push()
		return false
	case 4:
		sr := c.Status
		sr.B = c.interrupt == brkInterrupt
		bus.Poke(c.SP.Address(), sr.Value())
		c.SP.Push()
		return false
	case 5:
		vector := uint16(irqVector)
		if c.interrupt == nmiInterrupt {
			vector = nmiVector
		}
		c.data = bus.Peek(vector)
		c.ptr = uint8(vector) // remember which vector, for step 6
		c.addrHi = uint8(vector >> 8)
		return false
	case 6:
		vector := uint16(c.addrHi)<<8 | uint16(c.ptr)
		hi := bus.Peek(vector + 1)
		c.PC.Load(uint16(hi)<<8 | uint16(c.data))
		c.Status.I = true
		c.interrupt = noInterrupt
		c.callStack.push(c.PC.Address())
		return true
	}
	return true
}
