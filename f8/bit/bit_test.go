package bit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	assert.Equal(t, uint16(0x1234), Combine(0x12, 0x34))
}

func TestHighLow(t *testing.T) {
	assert.Equal(t, uint8(0x12), High(0x1234))
	assert.Equal(t, uint8(0x34), Low(0x1234))
}

func TestIsSetSetReset(t *testing.T) {
	var v uint8 = 0

	assert.False(t, IsSet(3, v))
	v = Set(3, v)
	assert.True(t, IsSet(3, v))
	assert.Equal(t, uint8(0x08), v)

	v = Reset(3, v)
	assert.False(t, IsSet(3, v))
	assert.Equal(t, uint8(0x00), v)
}

func TestExtractBits(t *testing.T) {
	assert.Equal(t, uint8(0x3), ExtractBits(0xF3, 3, 0))
	assert.Equal(t, uint8(0x07), ExtractBits(0xF7, 2, 0))
	assert.Equal(t, uint8(0x1F), ExtractBits(0xFF, 7, 3))
}

func TestSignedByte(t *testing.T) {
	testCases := []struct {
		in   uint8
		want int
	}{
		{0x00, 0},
		{0x7F, 127},
		{0x80, -128},
		{0xFF, -1},
	}

	for _, tC := range testCases {
		assert.Equal(t, tC.want, SignedByte(tC.in))
	}
}
