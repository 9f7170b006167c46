package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionForward, false
	case "s", "down":
		return core.ActionBackward, false
	case "a", "left":
		return core.ActionTurnLeft, false
	case "d", "right":
		return core.ActionTurnRight, false
	case "p", " ":
		return core.ActionPause, false
	case "tab":
		return core.ActionMinimap, false
	case "m":
		return core.ActionBookmark, false
	}

	return core.ActionNone, false
}

// IsMovement reports whether the action is one of the four held intents.
func IsMovement(a core.Action) bool {
	switch a {
	case core.ActionForward, core.ActionBackward, core.ActionTurnLeft, core.ActionTurnRight:
		return true
	}
	return false
}

// opposite returns the movement that cancels a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionForward:
		return core.ActionBackward
	case core.ActionBackward:
		return core.ActionForward
	case core.ActionTurnLeft:
		return core.ActionTurnRight
	case core.ActionTurnRight:
		return core.ActionTurnLeft
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionRuns
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionRuns
	}

	return MenuActionNone
}
