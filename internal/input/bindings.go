package input

import (
	"fmt"

	"chosenoffset.com/tilewalk/internal/render"
)

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]render.Key

// DefaultBindings returns WASD/arrows for movement, either shift for sprint,
// space for primary and Y for secondary.
func DefaultBindings() Bindings {
	return Bindings{
		ActionUp:        {render.KeyUp, render.KeyW},
		ActionDown:      {render.KeyDown, render.KeyS},
		ActionLeft:      {render.KeyLeft, render.KeyA},
		ActionRight:     {render.KeyRight, render.KeyD},
		ActionSprint:    {render.KeyShiftLeft, render.KeyShiftRight},
		ActionPrimary:   {render.KeySpace},
		ActionSecondary: {render.KeyY},
	}
}

// ParseBindings applies config overrides ("action" -> key names) on top of
// the defaults. An override replaces all keys of that action.
func ParseBindings(overrides map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for name, keyNames := range overrides {
		a, ok := ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q in key bindings", name)
		}
		keys := make([]render.Key, 0, len(keyNames))
		for _, kn := range keyNames {
			k, ok := render.ParseKey(kn)
			if !ok {
				return nil, fmt.Errorf("unknown key %q bound to %s", kn, name)
			}
			keys = append(keys, k)
		}
		b[a] = keys
	}
	return b, nil
}

// Poller samples an InputManager once per tick.
type Poller struct {
	bindings Bindings
	prev     State
}

// NewPoller creates a poller for the given bindings.
func NewPoller(b Bindings) *Poller {
	return &Poller{bindings: b}
}

// Poll resets every action, then marks those with at least one bound key
// down. Press edges are computed against the previous poll.
func (p *Poller) Poll(im render.InputManager) State {
	var s State
	for a, keys := range p.bindings {
		for _, k := range keys {
			if im.IsKeyPressed(k) {
				s.active[a] = true
				break
			}
		}
	}
	s = s.Since(p.prev)
	p.prev = s
	return s
}
