package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glider/internal/core"
)

// GameKeyMap holds the in-game bindings. It implements help.KeyMap.
type GameKeyMap struct {
	Fly        key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Fly: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "fly"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fly, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fly, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the in-game bindings.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Fly):
		return core.ActionFly, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
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

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// FlyInput turns fly key presses into the held level the session expects.
// Terminals report presses only, so the level is derived:
//
//   - hold > 0: the key counts as held until hold has passed since the last
//     press. Key repeat keeps it held while the key is down.
//   - hold == 0: each press toggles flying on or off.
type FlyInput struct {
	hold    time.Duration
	on      bool
	lastKey time.Time
}

// NewFlyInput creates a fly input with the given hold window.
func NewFlyInput(hold time.Duration) *FlyInput {
	return &FlyInput{hold: max(0, hold)}
}

// Press records a fly key press at now.
func (f *FlyInput) Press(now time.Time) {
	if f.hold == 0 {
		f.on = !f.on
		return
	}
	f.on = true
	f.lastKey = now
}

// Held reports whether flying is on at now.
func (f *FlyInput) Held(now time.Time) bool {
	if f.hold > 0 && f.on && now.Sub(f.lastKey) > f.hold {
		f.on = false
	}
	return f.on
}

// Release forces flying off, e.g. after a crash so the next press starts
// a new attempt in toggle mode.
func (f *FlyInput) Release() {
	f.on = false
}
