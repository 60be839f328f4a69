package cpu

// logicFlags recomputes SF and ZF from v and clears CF/OF, matching the
// F8's "logical" flag-update rule used by the load/AND/OR/XOR family.
// Returns v unchanged so it can be used inline as a fold.
func (c *CPU) logicFlags(v uint8) uint8 {
	c.Flags = 0
	if v < 0x80 {
		c.Flags |= FlagSign
	}
	if v == 0 {
		c.Flags |= FlagZero
	}
	return v
}

// add computes v1 + v2 + carryIn as a byte result, setting all four flags
// from the full arithmetic result (the "add" flag-update rule used by
// every ALU add/subtract/compare/increment/decrement instruction).
func (c *CPU) add(v1, v2, carryIn uint8) uint8 {
	full := uint16(v1) + uint16(v2) + uint16(carryIn)
	res := uint8(full)

	c.Flags = 0
	if res < 0x80 {
		c.Flags |= FlagSign
	}
	if res == 0 {
		c.Flags |= FlagZero
	}
	if full&0x100 != 0 {
		c.Flags |= FlagCarry
	}
	if (v1^res)&(v2^res)&0x80 != 0 {
		c.Flags |= FlagOverflow
	}
	return res
}

// addDecimal implements AMD/ASD's BCD correction (AMD in the F8 Guide to
// Programming): flags are set from the pre-correction binary sum of v1
// and v2, then a correction nibble is folded in based on the high and
// low nibble carries, with any carry out of the low nibble suppressed.
func (c *CPU) addDecimal(v1, v2 uint8) uint8 {
	tmp := v1 + v2

	highCarry := (uint16(v1)+uint16(v2))&0xff0 > 0xf0
	lowCarry := (v1&0x0f)+(v2&0x0f) > 0x0f

	c.add(v1, v2, 0)

	switch {
	case !highCarry && !lowCarry:
		tmp = ((tmp + 0xa0) & 0xf0) + ((tmp + 0x0a) & 0x0f)
	case !highCarry && lowCarry:
		tmp = ((tmp + 0xa0) & 0xf0) + (tmp & 0x0f)
	case highCarry && !lowCarry:
		tmp = (tmp & 0xf0) + ((tmp + 0x0a) & 0x0f)
	}

	return tmp
}

// compare sets flags as if v2 - v1 were computed, without storing a
// result, by adding the ones' complement of v1 to v2 with a forced carry-in.
func (c *CPU) compare(v1, v2 uint8) {
	c.add(v2, v1^0xff, 1)
}
