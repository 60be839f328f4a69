// Package cartridge loads Channel F cartridge images and exposes their
// raw bytes for mapping into the F8 bus. The F8 core never interprets a
// cartridge's header itself — that's the BIOS's job — so this package's
// only responsibilities are recognizing the conventional signature for
// diagnostics and handing back a plain byte slice.
package cartridge

import "log/slog"

const (
	signatureByte      = 0x55
	signatureOffset    = 0
	entryPointOffset   = 2
	minRecognizedLen   = entryPointOffset + 2
)

// Cartridge wraps a loaded image and the metadata recovered from its
// header, if present.
type Cartridge struct {
	data       []byte
	hasHeader  bool
	entryPoint uint16
}

// New wraps raw cartridge bytes. An empty or nil slice is valid — it
// represents no cartridge inserted, and every read through it falls
// back to the bus's unmapped-byte behavior.
func New(data []byte) *Cartridge {
	c := &Cartridge{data: data}
	if len(data) >= minRecognizedLen && data[signatureOffset] == signatureByte {
		c.hasHeader = true
		c.entryPoint = uint16(data[entryPointOffset])<<8 | uint16(data[entryPointOffset+1])
	} else if len(data) > 0 {
		slog.Warn("cartridge missing recognized 0x55 signature", "length", len(data))
	}
	return c
}

// Bytes returns the raw cartridge image, for mapping into a memory.Bus.
func (c *Cartridge) Bytes() []byte {
	return c.data
}

// Len reports the cartridge's length in bytes.
func (c *Cartridge) Len() int {
	return len(c.data)
}

// HasHeader reports whether the cartridge carries the conventional 0x55
// signature byte at its first address.
func (c *Cartridge) HasHeader() bool {
	return c.hasHeader
}

// EntryPoint returns the big-endian entry address recorded after the
// signature, or 0 if the cartridge has no recognized header.
func (c *Cartridge) EntryPoint() uint16 {
	return c.entryPoint
}
