// Package ports implements the F8's 256-entry I/O port bank: the console
// button matrix, the two controller ports, the video pixel emitter, the
// sound tone selector, and the 2102 SRAM serial control ports.
package ports

import (
	"github.com/channelf/f8emu/f8/host"
	"github.com/channelf/f8emu/f8/sram"
)

const (
	portConsole     = 0x00
	portController0 = 0x01
	portColor       = 0x01 // write alias: bits 6-7 select pixel color on write
	portController1 = 0x04
	portX           = 0x04 // write alias: stages pixel X
	portY           = 0x05 // write alias: stages pixel Y + sound select

	portSRAMHighA = 0x20
	portSRAMLowA  = 0x21
	portSRAMHighB = 0x24
	portSRAMLowB  = 0x25
)

// Bank is the 256-port latch array plus the side-effectful controller,
// video, sound and SRAM decoding layered over it.
type Bank struct {
	host  host.Host
	sram  *sram.Chip
	latch [256]uint8

	x, y, color uint8
}

// New builds a Bank wired to the given host collaborator and 2102 chip.
// Neither is owned by the Bank; both must outlive it.
func New(h host.Host, chip *sram.Chip) *Bank {
	return &Bank{host: h, sram: chip}
}

// Latch returns the last value written to port p, for tracing.
func (b *Bank) Latch(p uint8) uint8 {
	return b.latch[p]
}

// Read implements the port read side effects described by the I/O bank
// spec: controller matrices, SRAM register halves, and plain latch reads.
func (b *Bank) Read(p uint8) uint8 {
	switch p {
	case portConsole:
		result := uint8(0x0F)
		if b.host.KeyPressed(host.KeyStart) {
			result &^= 0x1
		}
		if b.host.KeyPressed(host.KeyHold) {
			result &^= 0x2
		}
		if b.host.KeyPressed(host.KeyMode) {
			result &^= 0x4
		}
		if b.host.KeyPressed(host.KeyTime) {
			result &^= 0x8
		}
		return result
	case portController0:
		if b.latch[portConsole]&0x40 == 0 {
			return ^b.readController(0)
		}
		return b.latch[portController0]
	case portController1:
		if b.latch[portConsole]&0x40 == 0 {
			return ^b.readController(1)
		}
		return b.latch[portController1]
	case portSRAMHighA, portSRAMHighB:
		b.sram.Update()
		return bitHigh(b.sram.Register()) | b.latch[p]
	case portSRAMLowA, portSRAMLowB:
		b.sram.Update()
		return bitLow(b.sram.Register()) | b.latch[p]
	default:
		return b.latch[p]
	}
}

// readController packs the 8 directions/actions of controller n (0 or 1)
// into a byte: bit0 Right, bit1 Left, bit2 Back, bit3 Forward, bit4 CCW,
// bit5 CW, bit6 Pull, bit7 Push.
func (b *Bank) readController(n int) uint8 {
	var keys [8]host.Key
	if n == 0 {
		keys = [8]host.Key{host.KeyRight0, host.KeyLeft0, host.KeyBack0, host.KeyForward0, host.KeyCCW0, host.KeyCW0, host.KeyPull0, host.KeyPush0}
	} else {
		keys = [8]host.Key{host.KeyRight1, host.KeyLeft1, host.KeyBack1, host.KeyForward1, host.KeyCCW1, host.KeyCW1, host.KeyPull1, host.KeyPush1}
	}

	var result uint8
	for i, k := range keys {
		if b.host.KeyPressed(k) {
			result |= 1 << uint(i)
		}
	}
	return result
}

// Write implements the port write side effects: latch storage plus
// controller/video/sound/SRAM decoding.
func (b *Bank) Write(p uint8, v uint8) {
	prev := b.latch[p]
	b.latch[p] = v

	switch p {
	case portConsole:
		if prev&0x20 != 0 && v&0x20 == 0 {
			b.host.SetPixel(b.x, b.y, b.color)
		}
	case portColor:
		b.color = (v >> 6) ^ 0x3
	case portX:
		b.x = (v & 0x7F) ^ 0x7F
	case portY:
		b.y = (v & 0x3F) ^ 0x3F
		switch v >> 6 {
		case 0:
			b.host.Sound(host.ToneSilence)
		case 1:
			b.host.Sound(host.Tone1kHz)
		case 2:
			b.host.Sound(host.Tone500Hz)
		case 3:
			b.host.Sound(host.Tone120Hz)
		}
	case portSRAMHighA, portSRAMHighB:
		b.sram.WriteHigh(v)
	case portSRAMLowA, portSRAMLowB:
		b.sram.WriteLow(v)
	}
}

func bitHigh(v uint16) uint8 {
	return uint8(v >> 8)
}

func bitLow(v uint16) uint8 {
	return uint8(v)
}
