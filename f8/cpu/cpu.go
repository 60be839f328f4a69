package cpu

import (
	"fmt"

	"github.com/channelf/f8emu/f8/memory"
	"github.com/channelf/f8emu/f8/ports"
)

// CPU holds the full architectural state of a single F8 (3850) core: the
// accumulator, scratchpad register file, ISAR, flags, the interrupt
// control bit, the two program counters and two data counters, and a
// running count of consumed cycles. It owns no memory or I/O state
// itself — both are injected at construction and shared with whatever
// else composes the console.
type CPU struct {
	A          uint8
	Scratchpad [64]uint8
	ISAR       uint8
	Flags      uint8
	icb        uint8

	PC0, PC1 uint16
	DC0, DC1 uint16

	Cycles uint64

	Bus   *memory.Bus
	Ports *ports.Bank
}

// New builds a CPU wired to the given memory bus and port bank, which the
// caller constructs and may share. All architectural state starts zeroed,
// per hardware power-on.
func New(bus *memory.Bus, portBank *ports.Bank) *CPU {
	return &CPU{Bus: bus, Ports: portBank}
}

// Reset zeroes PC0 and PC1 only. Every other register, the scratchpad,
// and flags persist across a reset, matching the hardware and the BIOS's
// expectations around warm restarts.
func (c *CPU) Reset() {
	c.PC0 = 0
	c.PC1 = 0
}

// ICB reports the interrupt control bit (set by EI, cleared by DI).
func (c *CPU) ICB() bool {
	return c.icb != 0
}

// ResetCycles zeroes the running cycle counter, for hosts that want to
// measure consumption over a window (a frame, a benchmark run) rather
// than since power-on.
func (c *CPU) ResetCycles() {
	c.Cycles = 0
}

// fetch reads the byte at PC0 and advances PC0 past it.
func (c *CPU) fetch() uint8 {
	v := c.Bus.Read(c.PC0)
	c.PC0++
	return v
}

// Step fetches and executes a single instruction, returning the number
// of cycles it consumed. It panics on an opcode outside the defined F8
// instruction set, matching the reference behavior of treating an
// unknown opcode as a fatal decode error.
func (c *CPU) Step() uint64 {
	before := c.Cycles
	opcode := c.fetch()
	impl := dispatch[opcode]
	if impl == nil {
		panic(fmt.Sprintf("cpu: unknown opcode %#02x at pc0=%#04x", opcode, c.PC0-1))
	}
	impl(c, opcode)
	return c.Cycles - before
}

// branch reads one signed displacement byte via PC0 (always, taken or
// not) and, if cond holds, adds (displacement - 1) to PC0 — the F8's
// off-by-one correction for PC0 having already advanced past the
// displacement byte — and charges two extra cycles.
func (c *CPU) branch(cond bool) {
	disp := int16(int8(c.fetch())) - 1
	if cond {
		c.PC0 = uint16(int32(c.PC0) + int32(disp))
		c.Cycles += 2
	}
}
