package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vimkim/dodge/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Unbound keys map to ActionNone and are ignored.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit
	case "left", "h":
		return core.ActionLeft
	case "right", "l":
		return core.ActionRight
	case "p":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	}

	return core.ActionNone
}
