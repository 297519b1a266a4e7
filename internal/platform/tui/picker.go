package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// pickerKeyMap defines key bindings for the preset picker.
type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel lists the registered presets in a table and lets the user
// pick one to start a universe with.
type PickerModel struct {
	presets  []registry.Preset
	table    table.Model
	keys     pickerKeyMap
	help     help.Model
	config   core.RuntimeConfig
	selected *registry.Preset
	quitting bool
}

// NewPickerModel creates a picker over all registered presets.
func NewPickerModel(cfg core.RuntimeConfig) PickerModel {
	m := PickerModel{
		presets: registry.List(),
		keys:    defaultPickerKeyMap(),
		help:    help.New(),
		config:  cfg,
	}
	m.table = m.createTable()
	m.help.Width = cfg.ScreenW
	return m
}

// createTable creates the preset table sized to the terminal.
func (m PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 18},
		{Title: "Title", Width: 22},
		{Title: "Rule", Width: 14},
		{Title: "Topology", Width: 10},
	}

	rows := make([]table.Row, len(m.presets))
	for i, p := range m.presets {
		topo := "any"
		if p.Topology.Valid() {
			topo = p.Topology.String()
		}
		rows[i] = table.Row{p.ID, p.Title, p.Rule, topo}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.config.ScreenH-6, 3)), // Leave room for title and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.presets) {
				p := m.presets[i]
				m.selected = &p
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("CELLULAR AUTOMATA"))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Selected returns the chosen preset, or nil if the user quit.
func (m PickerModel) Selected() *registry.Preset {
	return m.selected
}

// Config returns the runtime config, updated with the latest terminal size.
func (m PickerModel) Config() core.RuntimeConfig {
	return m.config
}

// RunPresetPicker shows the picker and returns the chosen preset, or nil
// if the user quit without choosing.
func RunPresetPicker(cfg core.RuntimeConfig) (*registry.Preset, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewPickerModel(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}
	m, ok := final.(PickerModel)
	if !ok {
		return nil, cfg, nil
	}
	return m.Selected(), m.Config(), nil
}
