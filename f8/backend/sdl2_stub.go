//go:build !sdl2

package backend

import (
	"fmt"

	"github.com/channelf/f8emu/f8/video"
)

// sdl2IsStub lets tests skip SDL2-specific assertions when built
// without the sdl2 tag.
const sdl2IsStub = true

// SDL2 stub used when the binary is built without the sdl2 tag (the
// default), so f8emu links without SDL2's development libraries
// installed.
type SDL2 struct{}

func NewSDL2() *SDL2 {
	return &SDL2{}
}

func (s *SDL2) Init(cfg Config) error {
	return fmt.Errorf("sdl2 backend: not available in this build, rebuild with -tags sdl2")
}

func (s *SDL2) Update(frame *video.FrameBuffer) ([]KeyEvent, error) {
	return nil, fmt.Errorf("sdl2 backend: not available in this build")
}

func (s *SDL2) Cleanup() error {
	return nil
}
