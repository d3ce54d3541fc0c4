package core

// Action represents a semantic simulation control, abstracted from physical
// key presses. The platform maps keys to actions; the model consumes them.
type Action int

const (
	ActionNone       Action = iota
	ActionPause             // Space - pause/resume the simulation
	ActionReseed            // R - reseed the grid and restart counters
	ActionSpeedUp           // Up arrow - shorten the inter-tick delay
	ActionSlowDown          // Down arrow - lengthen the inter-tick delay
	ActionSpeedReset        // D - restore the default inter-tick delay
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionReseed:
		return "Reseed"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSlowDown:
		return "SlowDown"
	case ActionSpeedReset:
		return "SpeedReset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
// Keys arrive asynchronously; the model consumes the frame on each tick and
// clears it for the next one.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
