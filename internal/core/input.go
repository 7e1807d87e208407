package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; games never see raw keys.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A - shift piece left
	ActionRight         // Right arrow, D - shift piece right
	ActionDown          // Down arrow, S - soft drop one row
	ActionRotate        // Up arrow, W, Space - rotate piece
	ActionStart         // Enter - start a new game
	ActionPause         // P - pause/unpause
	ActionReset         // R - back to the not-started state
	ActionBack          // B, Escape - go back to menu
	ActionQuit          // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
