package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

// KeyMap defines the key bindings for the life host.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	Pause    key.Binding
	Step     key.Binding
	Restart  key.Binding
	Clear    key.Binding
	Topology key.Binding
	NextRule key.Binding
	EditRule key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Toggle, k.Topology, k.NextRule, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Toggle},
		{k.Pause, k.Step, k.Faster, k.Slower},
		{k.Restart, k.Clear, k.Topology, k.NextRule, k.EditRule},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", "x"),
			key.WithHelp("enter/x", "toggle cell"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reseed"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Topology: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "topology"),
		),
		NextRule: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "next rule"),
		),
		EditRule: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit rule"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a host action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Toggle):
		return core.ActionToggle
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Step):
		return core.ActionStep
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Clear):
		return core.ActionClear
	case key.Matches(msg, k.Topology):
		return core.ActionCycleTopology
	case key.Matches(msg, k.NextRule):
		return core.ActionNextRule
	case key.Matches(msg, k.EditRule):
		return core.ActionEditRule
	case key.Matches(msg, k.Faster):
		return core.ActionFaster
	case key.Matches(msg, k.Slower):
		return core.ActionSlower
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
