package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/palopsee/internal/core"
)

// actionBinding ties a key binding to the game action it produces.
type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// Bindings are checked in order; the first match wins.
type KeyMapper struct {
	quit       key.Binding
	screenshot key.Binding
	game       []actionBinding
	menu       []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		quit:       key.NewBinding(key.WithKeys("ctrl+c", "q")),
		screenshot: key.NewBinding(key.WithKeys("ctrl+s")),
		game: []actionBinding{
			{key.NewBinding(key.WithKeys(" ", "up", "w")), core.ActionJump},
			{key.NewBinding(key.WithKeys("enter")), core.ActionConfirm},
			{key.NewBinding(key.WithKeys("esc")), core.ActionBack},
			{key.NewBinding(key.WithKeys("p")), core.ActionPause},
			{key.NewBinding(key.WithKeys("r")), core.ActionRestart},
		},
		menu: []menuBinding{
			{key.NewBinding(key.WithKeys("ctrl+c", "q")), MenuActionQuit},
			{key.NewBinding(key.WithKeys("w", "up", "k")), MenuActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j")), MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
			{key.NewBinding(key.WithKeys("esc")), MenuActionBack},
			{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
		},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// IsScreenshot reports whether msg asks for a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.screenshot)
}

// MapKeyToFrame updates an input frame based on a key message. Every key
// is also recorded raw so sequences can be matched across frames.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	frame.Press(msg.String())
	switch action {
	case core.ActionNone:
	case core.ActionConfirm:
		// Enter starts and restarts like the jump key.
		frame.Set(core.ActionJump)
	default:
		frame.Set(action)
	}
	return false
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
