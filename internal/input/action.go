// Package input turns platform key state into a per-tick snapshot of game actions.
package input

// Action is a named game action, independent of the physical key bound to it.
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionSprint
	ActionPrimary   // "A" button
	ActionSecondary // "Y" button
	actionCount
)

var actionNames = [actionCount]string{
	ActionUp:        "up",
	ActionDown:      "down",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionSprint:    "sprint",
	ActionPrimary:   "primary",
	ActionSecondary: "secondary",
}

// Actions returns the full action vocabulary in declaration order.
func Actions() []Action {
	all := make([]Action, actionCount)
	for i := range all {
		all[i] = Action(i)
	}
	return all
}

// ParseAction resolves an action name.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}
