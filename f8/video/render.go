package video

// shade buckets a resolved color into one of four brightness levels,
// for terminals that can't show true color. Unlike the teacher's
// PixelToShade (a plain equality switch over a fixed 4-shade
// grayscale palette), the F8's paletteTable holds 8 distinct colors
// across its 4 palettes, so this buckets by standard luminance
// weighting instead of matching literal constants.
func shade(c Color) int {
	r := uint8(c >> 24)
	g := uint8(c >> 16)
	b := uint8(c >> 8)
	lum := (299*int(r) + 587*int(g) + 114*int(b)) / 1000
	switch {
	case lum < 64:
		return 0
	case lum < 128:
		return 1
	case lum < 192:
		return 2
	default:
		return 3
	}
}

// halfBlockChar picks the Unicode half-block glyph that best represents
// a pair of vertically stacked shades in one terminal cell.
func halfBlockChar(top, bottom int) rune {
	switch {
	case top == bottom:
		return '█'
	case top == 3 && bottom != 3:
		return '▄'
	case top != 3 && bottom == 3:
		return '▀'
	default:
		return '▀'
	}
}

// RenderHalfBlocks renders the frame as one string per pair of pixel
// rows, using Unicode half-block characters to pack two rows of
// vertical resolution into one line of terminal output.
func (fb *FrameBuffer) RenderHalfBlocks() []string {
	textHeight := (Height + 1) / 2
	lines := make([]string, textHeight)

	for row := 0; row < textHeight; row++ {
		line := make([]rune, Width)
		y0 := row * 2
		y1 := y0 + 1

		for x := 0; x < Width; x++ {
			top := shade(fb.Color(x, y0))
			bottom := 3
			if y1 < Height {
				bottom = shade(fb.Color(x, y1))
			}
			line[x] = halfBlockChar(top, bottom)
		}

		lines[row] = string(line)
	}

	return lines
}
