package cpu

// instruction is a single dispatch-table entry: every implementation
// receives the opcode byte that selected it, even when it ignores it,
// so the whole table can share one function shape.
type instruction func(c *CPU, opcode uint8)

// fixed adapts a zero-argument implementation (one that doesn't need the
// opcode byte, because it has exactly one encoding) to the instruction
// shape.
func fixed(f func(c *CPU)) instruction {
	return func(c *CPU, _ uint8) { f(c) }
}

// dispatch is the 256-entry opcode table. A nil entry marks an opcode
// outside the defined F8 instruction set; Step panics on those.
var dispatch = buildDispatch()

func buildDispatch() [256]instruction {
	var t [256]instruction

	fillRange(&t, 0x00, 0x03, op0x00to03)
	fillRange(&t, 0x04, 0x07, op0x04to07)
	t[0x08] = fixed(op0x08)
	t[0x09] = fixed(op0x09)
	t[0x0a] = fixed(op0x0A)
	t[0x0b] = fixed(op0x0B)
	t[0x0c] = fixed(op0x0C)
	t[0x0d] = fixed(op0x0D)
	t[0x0e] = fixed(op0x0E)
	t[0x0f] = fixed(op0x0F)
	t[0x10] = fixed(op0x10)
	t[0x11] = fixed(op0x11)
	t[0x12] = fixed(op0x12)
	t[0x13] = fixed(op0x13)
	t[0x14] = fixed(op0x14)
	t[0x15] = fixed(op0x15)
	t[0x16] = fixed(op0x16)
	t[0x17] = fixed(op0x17)
	t[0x18] = fixed(op0x18)
	t[0x19] = fixed(op0x19)
	t[0x1a] = fixed(op0x1A)
	t[0x1b] = fixed(op0x1B)
	t[0x1c] = fixed(op0x1C)
	t[0x1d] = fixed(op0x1D)
	t[0x1e] = fixed(op0x1E)
	t[0x1f] = fixed(op0x1F)
	t[0x20] = fixed(op0x20)
	t[0x21] = fixed(op0x21)
	t[0x22] = fixed(op0x22)
	t[0x23] = fixed(op0x23)
	t[0x24] = fixed(op0x24)
	t[0x25] = fixed(op0x25)
	t[0x26] = fixed(op0x26)
	t[0x27] = fixed(op0x27)
	t[0x28] = fixed(op0x28)
	t[0x29] = fixed(op0x29)
	t[0x2a] = fixed(op0x2A)
	t[0x2b] = fixed(op0x2B)
	t[0x2c] = fixed(op0x2C)
	// 0x2D-0x2F are not defined by the F8 instruction set.

	fillRange(&t, 0x30, 0x3b, op0x30to3B)
	t[0x3c] = fixed(op0x3C)
	t[0x3d] = fixed(op0x3D)
	t[0x3e] = fixed(op0x3E)
	// 0x3F is not defined.

	fillRange(&t, 0x40, 0x4b, op0x40to4B)
	t[0x4c] = fixed(op0x4C)
	t[0x4d] = fixed(op0x4D)
	t[0x4e] = fixed(op0x4E)
	// 0x4F is not defined.

	fillRange(&t, 0x50, 0x5b, op0x50to5B)
	t[0x5c] = fixed(op0x5C)
	t[0x5d] = fixed(op0x5D)
	t[0x5e] = fixed(op0x5E)
	// 0x5F is not defined.

	fillRange(&t, 0x60, 0x67, op0x60to67)
	fillRange(&t, 0x68, 0x6f, op0x68to6F)
	fillRange(&t, 0x70, 0x7f, op0x70to7F)
	fillRange(&t, 0x80, 0x87, op0x80to87)
	t[0x88] = fixed(op0x88)
	t[0x89] = fixed(op0x89)
	t[0x8a] = fixed(op0x8A)
	t[0x8b] = fixed(op0x8B)
	t[0x8c] = fixed(op0x8C)
	t[0x8d] = fixed(op0x8D)
	t[0x8e] = fixed(op0x8E)
	t[0x8f] = fixed(op0x8F)
	fillRange(&t, 0x90, 0x9f, op0x90to9F)
	fillRange(&t, 0xa0, 0xa1, op0xA0toA1)
	fillRange(&t, 0xa2, 0xaf, op0xA2toAF)
	fillRange(&t, 0xb0, 0xb1, op0xB0toB1)
	fillRange(&t, 0xb2, 0xbf, op0xB2toBF)
	fillRange(&t, 0xc0, 0xcb, op0xC0toCB)
	t[0xcc] = fixed(op0xCC)
	t[0xcd] = fixed(op0xCD)
	t[0xce] = fixed(op0xCE)
	// 0xCF is not defined.

	fillRange(&t, 0xd0, 0xdb, op0xD0toDB)
	t[0xdc] = fixed(op0xDC)
	t[0xdd] = fixed(op0xDD)
	t[0xde] = fixed(op0xDE)
	// 0xDF is not defined.

	fillRange(&t, 0xe0, 0xeb, op0xE0toEB)
	t[0xec] = fixed(op0xEC)
	t[0xed] = fixed(op0xED)
	t[0xee] = fixed(op0xEE)
	// 0xEF is not defined.

	fillRange(&t, 0xf0, 0xfb, op0xF0toFB)
	t[0xfc] = fixed(op0xFC)
	t[0xfd] = fixed(op0xFD)
	t[0xfe] = fixed(op0xFE)
	// 0xFF is not defined.

	return t
}

func fillRange(t *[256]instruction, low, high uint8, f func(c *CPU, opcode uint8)) {
	for op := int(low); op <= int(high); op++ {
		t[op] = f
	}
}
