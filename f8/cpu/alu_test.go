package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/channelf/f8emu/f8/host"
	"github.com/channelf/f8emu/f8/memory"
	"github.com/channelf/f8emu/f8/ports"
	"github.com/channelf/f8emu/f8/sram"
)

func newTestCPU() *CPU {
	bus := memory.New(nil, nil, nil)
	bank := ports.New(host.Null{}, sram.New())
	return New(bus, bank)
}

func TestCPU_add(t *testing.T) {
	c := newTestCPU()

	testCases := []struct {
		desc      string
		v1, v2, c uint8
		want      uint8
		flags     uint8
	}{
		{desc: "simple sum", v1: 0x01, v2: 0x02, c: 0, want: 0x03, flags: FlagSign},
		{desc: "zero result", v1: 0x00, v2: 0x00, c: 0, want: 0x00, flags: FlagSign | FlagZero},
		{desc: "carry out", v1: 0xFF, v2: 0x01, c: 0, want: 0x00, flags: FlagSign | FlagZero | FlagCarry},
		{desc: "signed overflow", v1: 0x7F, v2: 0x01, c: 0, want: 0x80, flags: FlagOverflow},
		{desc: "carry in propagates", v1: 0x01, v2: 0x01, c: 1, want: 0x03, flags: FlagSign},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got := c.add(tC.v1, tC.v2, tC.c)
			assert.Equal(t, tC.want, got)
			assert.Equal(t, tC.flags, c.Flags)
		})
	}
}

func TestCPU_logicFlags(t *testing.T) {
	c := newTestCPU()
	c.Flags = FlagCarry | FlagOverflow

	got := c.logicFlags(0x00)
	assert.Equal(t, uint8(0x00), got)
	assert.Equal(t, FlagSign|FlagZero, c.Flags)

	got = c.logicFlags(0x80)
	assert.Equal(t, uint8(0x80), got)
	assert.Equal(t, uint8(0), c.Flags)

	got = c.logicFlags(0x01)
	assert.Equal(t, uint8(0x01), got)
	assert.Equal(t, FlagSign, c.Flags)
}

func TestCPU_compare(t *testing.T) {
	c := newTestCPU()

	c.compare(0x05, 0x05)
	assert.Equal(t, FlagSign|FlagZero|FlagCarry, c.Flags)

	c.compare(0x05, 0x03)
	assert.Equal(t, uint8(0), c.Flags)

	c.compare(0x03, 0x05)
	assert.Equal(t, FlagSign|FlagCarry, c.Flags)
}

func TestCPU_addDecimal(t *testing.T) {
	c := newTestCPU()

	testCases := []struct {
		desc   string
		v1, v2 uint8
		want   uint8
		flags  uint8
	}{
		// Flags always reflect the pre-correction binary sum, per add().
		{desc: "no carry, no intermediate carry", v1: 0x09, v2: 0x01, want: 0xA4, flags: FlagSign},
		{desc: "no carry, no intermediate carry, larger operands", v1: 0x15, v2: 0x27, want: 0xD6, flags: FlagSign},
		{desc: "no high carry, intermediate carry", v1: 0x49, v2: 0x49, want: 0x32, flags: FlagOverflow},
		{desc: "correction wraps the low nibble", v1: 0x99, v2: 0x01, want: 0x34, flags: 0},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got := c.addDecimal(tC.v1, tC.v2)
			assert.Equal(t, tC.want, got)
			assert.Equal(t, tC.flags, c.Flags)
		})
	}
}

func TestISAR_incDec(t *testing.T) {
	assert.Equal(t, uint8(0x01), incISL(0x00))
	assert.Equal(t, uint8(0x00), incISL(0x07))
	assert.Equal(t, uint8(0x38), incISL(0x3f))
	assert.Equal(t, uint8(0x07), decISL(0x00))
	assert.Equal(t, uint8(0x06), decISL(0x07))
	assert.Equal(t, uint8(0x20), incISL(0x27))
}
