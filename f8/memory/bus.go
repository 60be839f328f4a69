// Package memory implements the F8's flat address space: two 1KiB BIOS
// banks, a variable-length cartridge ROM, and 2KiB of on-cartridge RAM.
package memory

import "log/slog"

const (
	biosASize = 0x0400
	biosBSize = 0x0400

	biosAStart = 0x0000
	biosBStart = 0x0400
	cartStart  = 0x0800
	ramStart   = 0x2800
	ramEnd     = 0x2FFF
	ramSize    = ramEnd - ramStart + 1

	unmappedByte = 0xFF
)

// Bus dispatches byte reads and writes across the F8's address regions.
// BIOS and cartridge slices are borrowed: the caller must keep them alive
// and must not mutate them for the lifetime of the Bus.
type Bus struct {
	biosA []byte
	biosB []byte
	cart  []byte
	ram   [ramSize]byte
}

// New builds a Bus over the given BIOS and cartridge images. Nil or short
// slices are accepted; reads past their end fall back to 0xFF exactly like
// reads past the end of the cartridge region.
func New(biosA, biosB, cart []byte) *Bus {
	return &Bus{biosA: biosA, biosB: biosB, cart: cart}
}

// Read dispatches a byte read per the F8 memory map. Any address with no
// backing store returns 0xFF.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < biosAStart+biosASize:
		return readAt(b.biosA, addr-biosAStart)
	case addr < biosBStart+biosBSize:
		return readAt(b.biosB, addr-biosBStart)
	case addr < ramStart:
		off := int(addr) - cartStart
		if off < len(b.cart) {
			return b.cart[off]
		}
		slog.Debug("cartridge read out of range", "addr", addr, "cartLen", len(b.cart))
		return unmappedByte
	case addr <= ramEnd:
		return b.ram[addr-ramStart]
	default:
		return unmappedByte
	}
}

// Write targets on-cartridge RAM for addresses in 0x2800-0x2FFF and is a
// silent no-op everywhere else, including the ROM banks — this matches the
// hardware (and the reference emulator's unimplemented ST write path,
// resolved per the on-cartridge-RAM interpretation).
func (b *Bus) Write(addr uint16, value byte) {
	if addr >= ramStart && addr <= ramEnd {
		b.ram[addr-ramStart] = value
	}
}

func readAt(data []byte, off uint16) byte {
	if int(off) < len(data) {
		return data[off]
	}
	return unmappedByte
}
