package term

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/tilewalk/internal/render"
)

// DefaultHoldWindow is how long a key counts as held after its last event.
// Terminals repeat a held key roughly every 30-50ms after an initial delay.
const DefaultHoldWindow = 150 * time.Millisecond

// InputManager turns terminal key events into held keys. Terminals only
// report presses, so a key stays down for a hold window after each event.
// It is not safe for concurrent use; feed it from the frame loop.
type InputManager struct {
	hold     time.Duration
	now      func() time.Time
	lastSeen map[render.Key]time.Time
	fresh    map[render.Key]bool
}

// NewInputManager creates an input manager with the given hold window.
func NewInputManager(hold time.Duration) *InputManager {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &InputManager{
		hold:     hold,
		now:      time.Now,
		lastSeen: make(map[render.Key]time.Time),
		fresh:    make(map[render.Key]bool),
	}
}

// Press records a key event.
func (m *InputManager) Press(k render.Key) {
	if !m.IsKeyPressed(k) {
		m.fresh[k] = true
	}
	m.lastSeen[k] = m.now()
}

// HandleEvent records every key an event maps to.
func (m *InputManager) HandleEvent(ev *tcell.EventKey) {
	for _, k := range KeysFromEvent(ev) {
		m.Press(k)
	}
}

// EndFrame clears the just-pressed state. Call it after each Update.
func (m *InputManager) EndFrame() {
	clear(m.fresh)
}

// IsKeyPressed reports whether k had an event within the hold window.
func (m *InputManager) IsKeyPressed(k render.Key) bool {
	last, ok := m.lastSeen[k]
	return ok && m.now().Sub(last) < m.hold
}

// IsKeyJustPressed reports whether k went down since the last EndFrame.
func (m *InputManager) IsKeyJustPressed(k render.Key) bool {
	return m.fresh[k]
}

var runeKeys = map[rune]render.Key{
	'w': render.KeyW,
	'a': render.KeyA,
	's': render.KeyS,
	'd': render.KeyD,
	'y': render.KeyY,
	'q': render.KeyQ,
	' ': render.KeySpace,
}

// KeysFromEvent maps a terminal key event to game keys. Uppercase letters
// and the shift modifier also report KeyShiftLeft so they sprint.
func KeysFromEvent(ev *tcell.EventKey) []render.Key {
	var keys []render.Key
	switch ev.Key() {
	case tcell.KeyUp:
		keys = append(keys, render.KeyUp)
	case tcell.KeyDown:
		keys = append(keys, render.KeyDown)
	case tcell.KeyLeft:
		keys = append(keys, render.KeyLeft)
	case tcell.KeyRight:
		keys = append(keys, render.KeyRight)
	case tcell.KeyEscape:
		keys = append(keys, render.KeyEscape)
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsUpper(r) {
			keys = append(keys, render.KeyShiftLeft)
			r = unicode.ToLower(r)
		}
		if k, ok := runeKeys[r]; ok {
			keys = append(keys, k)
		}
	}
	if ev.Modifiers()&tcell.ModShift != 0 && !containsKey(keys, render.KeyShiftLeft) {
		keys = append(keys, render.KeyShiftLeft)
	}
	return keys
}

func containsKey(keys []render.Key, k render.Key) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}
