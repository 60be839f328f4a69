// Package audio turns the F8's sound-port tone selection into PCM
// samples for a host audio device. The core itself never generates
// samples — it only calls host.Sound with one of four fixed
// frequencies (or silence) through the host.Host interface; this
// package is a reference host-side synthesizer that implements that
// call as a square-wave oscillator, the way a desktop backend would.
package audio

import (
	"math"

	"github.com/channelf/f8emu/f8/host"
)

// frequencyHz is the fixed frequency, in Hz, the hardware's sound
// selector can choose, indexed by host.Tone.
var frequencyHz = map[host.Tone]float64{
	host.ToneSilence: 0,
	host.Tone1kHz:    1000,
	host.Tone500Hz:   500,
	host.Tone120Hz:   120,
}

// Synth accumulates a square wave at the currently selected tone and
// renders it into caller-provided sample buffers on demand. It
// implements the Sound half of host.Host; SetPixel and KeyPressed are
// left to whatever embeds a Synth alongside a video/input collaborator.
type Synth struct {
	sampleRate int
	tone       host.Tone
	phase      float64
	amplitude  int16
}

// New returns a Synth generating samples at the given host sample rate
// (e.g. 44100), starting silent.
func New(sampleRate int) *Synth {
	return &Synth{sampleRate: sampleRate, amplitude: math.MaxInt16 / 4}
}

// Sound implements host.Host: selects the oscillator's tone.
func (s *Synth) Sound(t host.Tone) {
	s.tone = t
}

// Render fills buf with the next len(buf) samples of the currently
// selected tone, as a mono square wave.
func (s *Synth) Render(buf []int16) {
	freq := frequencyHz[s.tone]
	if freq == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	step := freq / float64(s.sampleRate)
	for i := range buf {
		if s.phase < 0.5 {
			buf[i] = s.amplitude
		} else {
			buf[i] = -s.amplitude
		}
		s.phase += step
		if s.phase >= 1 {
			s.phase -= 1
		}
	}
}
