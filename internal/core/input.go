package core

// Action represents a semantic scene action, abstracted from physical
// key presses. Scenes react to high-level intents rather than raw keys,
// which keeps them testable without a terminal.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - nudge upward
	ActionDown            // S, Down arrow - nudge downward
	ActionLeft            // A, Left arrow - nudge left
	ActionRight           // D, Right arrow - nudge right
	ActionGrow            // + - grow the active shape
	ActionShrink          // - - shrink the active shape
	ActionBrighten        // ] - step colors brighter
	ActionDim             // [ - step colors darker
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R - restart the scene
	ActionQuit            // Q, Ctrl+C - exit
	ActionPause           // P - pause/unpause the scene
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionGrow:
		return "Grow"
	case ActionShrink:
		return "Shrink"
	case ActionBrighten:
		return "Brighten"
	case ActionDim:
		return "Dim"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
