package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameBuffer_SetPixel_andAt(t *testing.T) {
	fb := New()
	fb.SetPixel(10, 20, 2)

	assert.Equal(t, uint8(2), fb.At(10, 20))
}

func TestFrameBuffer_columns125And126AreOrdinaryPixels(t *testing.T) {
	fb := New()
	fb.SetPixel(paletteColumnLeft, 5, 1)
	fb.SetPixel(paletteColumnRight, 5, 2)

	// Unlike a special off-screen latch, these columns are stored and
	// read back exactly like any other column.
	assert.Equal(t, uint8(1), fb.At(paletteColumnLeft, 5))
	assert.Equal(t, uint8(2), fb.At(paletteColumnRight, 5))
}

func TestFrameBuffer_paletteIndex_onlyBit0OfColumn125Counts(t *testing.T) {
	fb := New()

	// col125=2 (bit 1 set, bit 0 clear), col126=0: expression keeps
	// only bit 0 of col125, so this contributes nothing.
	fb.SetPixel(paletteColumnLeft, 0, 2)
	assert.Equal(t, uint8(0), fb.paletteIndex(0))

	// col125=1 (bit 0 set): palette picks up bit 0.
	fb.SetPixel(paletteColumnLeft, 1, 1)
	assert.Equal(t, uint8(1), fb.paletteIndex(1))

	// col126 contributes its full 2-bit value directly (OR'd in, not
	// shifted), so col126=2 alone selects palette 2.
	fb.SetPixel(paletteColumnRight, 2, 2)
	assert.Equal(t, uint8(2), fb.paletteIndex(2))

	// col125=1 and col126=2 together select palette 3.
	fb.SetPixel(paletteColumnLeft, 3, 1)
	fb.SetPixel(paletteColumnRight, 3, 2)
	assert.Equal(t, uint8(3), fb.paletteIndex(3))
}

func TestFrameBuffer_Color_selectsPerRowPalette(t *testing.T) {
	fb := New()
	fb.SetPixel(0, 0, 1) // pixel value 1, default palette 0 -> white

	assert.Equal(t, paletteTable[0][1], fb.Color(0, 0))

	fb.SetPixel(paletteColumnRight, 0, 1) // selects palette 1
	assert.Equal(t, paletteTable[1][1], fb.Color(0, 0))
}

func TestFrameBuffer_Color_everyPixelValueRemapsPerPalette(t *testing.T) {
	fb := New()
	fb.SetPixel(paletteColumnRight, 10, 3) // selects palette 3

	for v := uint8(0); v < 4; v++ {
		fb.SetPixel(0, 10, v)
		assert.Equal(t, paletteTable[3][v], fb.Color(0, 10))
	}
}

func TestFrameBuffer_Clear(t *testing.T) {
	fb := New()
	fb.SetPixel(1, 1, 3)
	fb.Clear()

	assert.Equal(t, uint8(0), fb.At(1, 1))
}

func TestFrameBuffer_RenderHalfBlocks_dimensions(t *testing.T) {
	fb := New()
	lines := fb.RenderHalfBlocks()

	assert.Len(t, lines, Height/2)
	for _, line := range lines {
		assert.Len(t, []rune(line), Width)
	}
}
