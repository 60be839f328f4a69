package backend

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/channelf/f8emu/f8/video"
)

// Terminal renders each frame as Unicode half-blocks over a tcell
// screen, and reports every tcell key event it sees as a raw KeyEvent
// for the caller to resolve through an input.Map.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal returns an uninitialized Terminal backend; call Init
// before the first Update.
func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Init(cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal backend: init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal backend: init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	t.screen = screen
	slog.Info("terminal backend initialized", "title", cfg.Title)
	return nil
}

func (t *Terminal) Update(frame *video.FrameBuffer) ([]KeyEvent, error) {
	events := t.pollEvents()

	lines := frame.RenderHalfBlocks()
	for y, line := range lines {
		for x, r := range line {
			t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		}
	}
	t.screen.Show()

	return events, nil
}

func (t *Terminal) pollEvents() []KeyEvent {
	var events []KeyEvent
	for t.screen.HasPendingEvent() {
		ev := t.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			events = append(events, KeyEvent{Key: keyName(e), Pressed: true})
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
	return events
}

func keyName(e *tcell.EventKey) string {
	if e.Key() == tcell.KeyRune {
		return string(e.Rune())
	}
	return e.Name()
}

func (t *Terminal) Cleanup() error {
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}
