//go:build sdl2

package backend

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/channelf/f8emu/f8/video"
)

// sdl2IsStub lets tests skip SDL2-specific assertions when built
// without the sdl2 tag.
const sdl2IsStub = false

// SDL2 renders frames into a hardware-accelerated window, one RGBA
// texture upload per Update, and reports raw SDL keysym names as
// KeyEvents.
type SDL2 struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
}

// NewSDL2 returns an uninitialized SDL2 backend; call Init before the
// first Update.
func NewSDL2() *SDL2 {
	return &SDL2{}
}

func (s *SDL2) Init(cfg Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl2 backend: init: %w", err)
	}

	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}

	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(video.Width*scale),
		int32(video.Height*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl2 backend: create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("sdl2 backend: create renderer: %w", err)
	}
	s.renderer = renderer
	renderer.SetLogicalSize(int32(video.Width), int32(video.Height))

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(video.Width),
		int32(video.Height),
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("sdl2 backend: create texture: %w", err)
	}
	s.texture = texture
	s.pixels = make([]byte, video.Width*video.Height*4)

	slog.Info("sdl2 backend initialized", "title", cfg.Title, "scale", scale)
	return nil
}

func (s *SDL2) Update(frame *video.FrameBuffer) ([]KeyEvent, error) {
	events := s.pollEvents()

	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			c := frame.Color(x, y)
			off := (y*video.Width + x) * 4
			s.pixels[off+0] = byte(c >> 24)
			s.pixels[off+1] = byte(c >> 16)
			s.pixels[off+2] = byte(c >> 8)
			s.pixels[off+3] = byte(c)
		}
	}

	if err := s.texture.Update(nil, s.pixels, video.Width*4); err != nil {
		return events, fmt.Errorf("sdl2 backend: update texture: %w", err)
	}
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()

	return events, nil
}

func (s *SDL2) pollEvents() []KeyEvent {
	var events []KeyEvent
	for {
		event := sdl.PollEvent()
		if event == nil {
			break
		}
		switch e := event.(type) {
		case *sdl.QuitEvent:
			events = append(events, KeyEvent{Key: "Quit", Pressed: true})
		case *sdl.KeyboardEvent:
			name := sdl.GetKeyName(e.Keysym.Sym)
			events = append(events, KeyEvent{Key: name, Pressed: e.Type == sdl.KEYDOWN})
		}
	}
	return events
}

func (s *SDL2) Cleanup() error {
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}
