package core

// Action represents a semantic action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionForward          // W, Up arrow
	ActionBackward         // S, Down arrow
	ActionTurnLeft         // A, Left arrow
	ActionTurnRight        // D, Right arrow
	ActionPause            // P
	ActionMinimap          // Tab - toggle minimap overlay
	ActionBookmark         // M - save camera position
	ActionQuit             // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionPause:
		return "Pause"
	case ActionMinimap:
		return "Minimap"
	case ActionBookmark:
		return "Bookmark"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intents are the four independent movement flags sampled once per frame.
type Intents struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
}

// Any reports whether any movement flag is set.
func (i Intents) Any() bool {
	return i.Forward || i.Backward || i.TurnLeft || i.TurnRight
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
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

// Intents extracts the movement flags from the frame.
func (f InputFrame) Intents() Intents {
	return Intents{
		Forward:   f.Has(ActionForward),
		Backward:  f.Has(ActionBackward),
		TurnLeft:  f.Has(ActionTurnLeft),
		TurnRight: f.Has(ActionTurnRight),
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
