package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the game only sees intents.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, H - move player left
	ActionRight          // Right arrow, L - move player right
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Esc, Ctrl+C - exit game
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
