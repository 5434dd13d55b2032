package input

// State is an immutable snapshot of every action for one tick.
// The zero value has nothing held.
type State struct {
	active  [actionCount]bool
	pressed [actionCount]bool
}

// NewState returns a snapshot with the given actions held. None of them
// count as newly pressed.
func NewState(held ...Action) State {
	var s State
	for _, a := range held {
		if a < actionCount {
			s.active[a] = true
		}
	}
	return s
}

// Since marks actions held in s but not in prev as pressed this tick.
func (s State) Since(prev State) State {
	for i := range s.active {
		s.pressed[i] = s.active[i] && !prev.active[i]
	}
	return s
}

// IsActive reports whether the action is held this tick.
func (s State) IsActive(a Action) bool {
	return a < actionCount && s.active[a]
}

// IsActiveName reports whether the named action is held. Unknown names are never active.
func (s State) IsActiveName(name string) bool {
	a, ok := ParseAction(name)
	return ok && s.active[a]
}

// JustPressed reports whether the action went from released to held this tick.
func (s State) JustPressed(a Action) bool {
	return a < actionCount && s.pressed[a]
}

// Active returns the held actions in declaration order.
func (s State) Active() []Action {
	var held []Action
	for i, on := range s.active {
		if on {
			held = append(held, Action(i))
		}
	}
	return held
}
