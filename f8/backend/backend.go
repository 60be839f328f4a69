// Package backend abstracts the presentation layer around the F8 core:
// rendering a frame and collecting raw key events, behind one small
// interface each concrete backend (terminal, headless, SDL2) implements.
// No backend plays audio.
package backend

import "github.com/channelf/f8emu/f8/video"

// KeyEvent is a single raw key press or release, named by the backend's
// own string key names (to be resolved through an input.Map).
type KeyEvent struct {
	Key     string
	Pressed bool
}

// Config configures a Backend at Init time.
type Config struct {
	Title string
	Scale int
}

// Backend is a complete presentation platform: it renders frames and
// reports input, leaving all emulation state in the caller's hands.
type Backend interface {
	// Init prepares the backend (opening a window, a terminal screen,
	// and so on) before the first call to Update.
	Init(cfg Config) error

	// Update renders the given frame and returns any key events the
	// backend collected since the previous call.
	Update(frame *video.FrameBuffer) ([]KeyEvent, error)

	// Cleanup releases any resources Init acquired.
	Cleanup() error
}
