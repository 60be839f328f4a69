package backend

import (
	"log/slog"

	"github.com/channelf/f8emu/f8/video"
)

// Headless renders nothing and reports no input; it exists for
// automated boot tests and benchmarks that only care about CPU and
// port-level side effects, not actual display output.
type Headless struct {
	frameCount int
}

// NewHeadless returns a Headless backend.
func NewHeadless() *Headless {
	return &Headless{}
}

func (h *Headless) Init(cfg Config) error {
	slog.Info("starting headless backend", "title", cfg.Title)
	return nil
}

func (h *Headless) Update(frame *video.FrameBuffer) ([]KeyEvent, error) {
	h.frameCount++
	return nil, nil
}

func (h *Headless) Cleanup() error {
	slog.Info("headless backend done", "frames", h.frameCount)
	return nil
}
