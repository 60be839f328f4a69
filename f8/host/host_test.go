package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTone_String(t *testing.T) {
	assert.Equal(t, "silence", ToneSilence.String())
	assert.Equal(t, "1kHz", Tone1kHz.String())
	assert.Equal(t, "500Hz", Tone500Hz.String())
	assert.Equal(t, "120Hz", Tone120Hz.String())
}

func TestNull_isHarmless(t *testing.T) {
	var h Host = Null{}

	assert.False(t, h.KeyPressed(KeyStart))
	assert.NotPanics(t, func() {
		h.Sound(Tone1kHz)
		h.SetPixel(0, 0, 3)
	})
}
