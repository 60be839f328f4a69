// Package video implements the host-side framebuffer a Channel F desktop
// backend scans out to: a 128x64 grid of 2-bit pixel values. Columns 125
// and 126 are ordinary pixel storage like every other column, but a
// desktop frontend also reads them back at render time to pick one of
// four hardware color palettes for that scanline.
package video

// Width and Height match the real console's 128x64 pixel-addressable
// grid (x is 7 bits, y is 6 bits, per the port staging registers).
const (
	Width  = 128
	Height = 64

	paletteColumnLeft  = 125
	paletteColumnRight = 126
)

// Color is an RGBA8888 packed color, matching the teacher's GBColor
// representation.
type Color uint32

// paletteTable[p][v] is the displayed color for pixel value v (0-3)
// under palette selection p (0-3), transcribed from the reference
// desktop frontend's 16-entry COLORS table (there given as packed
// 0xAARRGGBB values; re-expressed here as RGBA8888).
var paletteTable = [4][4]Color{
	{0x000000FF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF},
	{0x7777FFFF, 0x0000FFFF, 0xFF0000FF, 0x008800FF},
	{0xCCCCCCFF, 0x0000FFFF, 0xFF0000FF, 0x008800FF},
	{0x77FF77FF, 0x0000FFFF, 0xFF0000FF, 0x008800FF},
}

// FrameBuffer holds one frame's worth of 2-bit pixel values, stored
// exactly as written with no special-cased columns.
type FrameBuffer struct {
	pixels [Width * Height]uint8
}

// New returns a blank (all-black) framebuffer.
func New() *FrameBuffer {
	return &FrameBuffer{}
}

// SetPixel records a 2-bit pixel value at (x, y). Every column,
// including 125 and 126, is stored as plain pixel data.
func (fb *FrameBuffer) SetPixel(x, y, value uint8) {
	if int(x) >= Width || int(y) >= Height {
		return
	}
	fb.pixels[int(y)*Width+int(x)] = value & 0x3
}

// At returns the raw 2-bit pixel value at (x, y).
func (fb *FrameBuffer) At(x, y int) uint8 {
	return fb.pixels[y*Width+x]
}

// Clear resets every pixel to zero.
func (fb *FrameBuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = 0
	}
}

// paletteIndex derives the row's palette selection from the values
// currently stored at columns 125 and 126, transcribed bit-for-bit
// from the reference frontend: `((pixels[125] & 2 >> 1) | pixels[126])
// & 0b11`. Rust binds `>>` tighter than `&`, so that expression is
// `(pixels[125] & 1) | pixels[126]`, not the "bit 1 of each column"
// scheme its neighboring comment describes — this keeps only bit 0 of
// column 125. Ported as written, not as the comment claims it works.
func (fb *FrameBuffer) paletteIndex(y int) uint8 {
	col125 := fb.At(paletteColumnLeft, y)
	col126 := fb.At(paletteColumnRight, y)
	return ((col125 & 1) | col126) & 0x3
}

// Color resolves the displayed color at (x, y) by looking up the
// stored pixel value in the row's selected palette.
func (fb *FrameBuffer) Color(x, y int) Color {
	return paletteTable[fb.paletteIndex(y)][fb.At(x, y)]
}

// ToRGBA renders the full frame as a flat RGBA8888 slice, row-major,
// for handing to a backend that wants raw pixels (SDL2 textures,
// image.RGBA, etc).
func (fb *FrameBuffer) ToRGBA() []uint32 {
	out := make([]uint32, Width*Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			out[y*Width+x] = uint32(fb.Color(x, y))
		}
	}
	return out
}
