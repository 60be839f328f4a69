package main

import (
	"github.com/channelf/f8emu/f8/audio"
	"github.com/channelf/f8emu/f8/host"
	"github.com/channelf/f8emu/f8/input"
	"github.com/channelf/f8emu/f8/video"
)

// desktopHost implements host.Host over a FrameBuffer, a key tracker,
// and a tone synthesizer, gluing the CPU core to whatever backend is
// driving it.
type desktopHost struct {
	frame *video.FrameBuffer
	keys  *input.Map
	synth *audio.Synth
}

func newDesktopHost(sampleRate int) *desktopHost {
	return &desktopHost{
		frame: video.New(),
		keys:  input.NewMap(nil),
		synth: audio.New(sampleRate),
	}
}

func (h *desktopHost) Sound(t host.Tone) {
	h.synth.Sound(t)
}

func (h *desktopHost) SetPixel(x, y, value uint8) {
	h.frame.SetPixel(x, y, value)
}

func (h *desktopHost) KeyPressed(k host.Key) bool {
	return h.keys.KeyPressed(k)
}
