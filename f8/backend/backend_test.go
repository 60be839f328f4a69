package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channelf/f8emu/f8/video"
)

func TestHeadless_InitUpdateCleanup(t *testing.T) {
	h := NewHeadless()
	require.NoError(t, h.Init(Config{Title: "test"}))

	frame := video.New()
	events, err := h.Update(frame)
	assert.NoError(t, err)
	assert.Nil(t, events)

	assert.NoError(t, h.Cleanup())
}

func TestHeadless_countsFrames(t *testing.T) {
	h := NewHeadless()
	require.NoError(t, h.Init(Config{}))

	frame := video.New()
	for i := 0; i < 5; i++ {
		_, err := h.Update(frame)
		require.NoError(t, err)
	}

	assert.Equal(t, 5, h.frameCount)
}

func TestSDL2Stub_InitFails(t *testing.T) {
	if !sdl2IsStub {
		t.Skip("built with sdl2 tag, stub not in effect")
	}

	s := NewSDL2()
	err := s.Init(Config{Title: "test"})
	assert.Error(t, err)
}
