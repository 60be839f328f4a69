package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_Read_regions(t *testing.T) {
	biosA := make([]byte, 0x400)
	biosA[0x10] = 0xAA
	biosB := make([]byte, 0x400)
	biosB[0x10] = 0xBB
	cart := make([]byte, 0x100)
	cart[0x05] = 0xCC

	b := New(biosA, biosB, cart)

	assert.Equal(t, byte(0xAA), b.Read(0x0010))
	assert.Equal(t, byte(0xBB), b.Read(0x0410))
	assert.Equal(t, byte(0xCC), b.Read(0x0805))
}

func TestBus_Read_cartridgeOutOfRangeReturnsFF(t *testing.T) {
	cart := make([]byte, 0x10)
	b := New(nil, nil, cart)

	assert.Equal(t, byte(0xFF), b.Read(0x0900))
}

func TestBus_Read_unmappedReturnsFF(t *testing.T) {
	b := New(nil, nil, nil)

	assert.Equal(t, byte(0xFF), b.Read(0x3000))
	assert.Equal(t, byte(0xFF), b.Read(0xFFFF))
}

func TestBus_ReadWrite_ram(t *testing.T) {
	b := New(nil, nil, nil)

	b.Write(0x2900, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x2900))

	// Writes outside RAM are silently ignored.
	b.Write(0x0000, 0x99)
	assert.Equal(t, byte(0xFF), b.Read(0x0000))
}

func TestBus_nilSlicesReadAsFF(t *testing.T) {
	b := New(nil, nil, nil)

	assert.Equal(t, byte(0xFF), b.Read(0x0000))
	assert.Equal(t, byte(0xFF), b.Read(0x0400))
	assert.Equal(t, byte(0xFF), b.Read(0x0800))
}
