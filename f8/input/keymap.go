// Package input maps host key names (e.g. terminal key events, SDL2
// key names) onto the F8 console's 21 named keys, and tracks which are
// currently held so a backend can answer host.Host.KeyPressed.
package input

import "github.com/channelf/f8emu/f8/host"

// DefaultKeyMap is the console's default keyboard layout: arrow keys
// and Z/X/C/V for controller 0, WASD plus Q/E/1/2 for controller 1, and
// Escape/T/M/H/Enter for the five named console buttons.
var DefaultKeyMap = map[string]host.Key{
	"Escape": host.KeyReset,
	"t":      host.KeyTime,
	"m":      host.KeyMode,
	"h":      host.KeyHold,
	"Enter":  host.KeyStart,

	"Right": host.KeyRight0,
	"Left":  host.KeyLeft0,
	"Down":  host.KeyBack0,
	"Up":    host.KeyForward0,
	"z":     host.KeyCCW0,
	"x":     host.KeyCW0,
	"c":     host.KeyPull0,
	"v":     host.KeyPush0,

	"d": host.KeyRight1,
	"a": host.KeyLeft1,
	"s": host.KeyBack1,
	"w": host.KeyForward1,
	"q": host.KeyCCW1,
	"e": host.KeyCW1,
	"1": host.KeyPull1,
	"2": host.KeyPush1,
}

// Map tracks the held/released state of every named key, driven by a
// backend's raw key events and consulted by host.Host.KeyPressed.
type Map struct {
	layout map[string]host.Key
	held   map[host.Key]bool
}

// NewMap builds a key tracker over the given layout. A nil layout
// falls back to DefaultKeyMap.
func NewMap(layout map[string]host.Key) *Map {
	if layout == nil {
		layout = DefaultKeyMap
	}
	return &Map{layout: layout, held: make(map[host.Key]bool)}
}

// Press marks the named raw key as held, if it maps to a console key.
// Reports whether the key was recognized.
func (m *Map) Press(rawKey string) bool {
	k, ok := m.layout[rawKey]
	if ok {
		m.held[k] = true
	}
	return ok
}

// Release marks the named raw key as released.
func (m *Map) Release(rawKey string) bool {
	k, ok := m.layout[rawKey]
	if ok {
		delete(m.held, k)
	}
	return ok
}

// KeyPressed implements the query half of host.Host.
func (m *Map) KeyPressed(k host.Key) bool {
	return m.held[k]
}
