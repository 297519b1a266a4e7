package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/registry"
)

func updatePicker(t *testing.T, m PickerModel, msgs ...tea.Msg) (PickerModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(PickerModel)
		if !ok {
			t.Fatalf("Update returned %T, want PickerModel", next)
		}
	}
	return m, cmd
}

func newTestPicker() PickerModel {
	return NewPickerModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10})
}

func TestPickerSelectsPresetUnderCursor(t *testing.T) {
	presets := registry.List()
	if len(presets) < 2 {
		t.Fatalf("need at least 2 presets, got %d", len(presets))
	}

	m, cmd := updatePicker(t, newTestPicker(), runeKey('j'), tea.KeyMsg{Type: tea.KeyEnter})

	got := m.Selected()
	if got == nil {
		t.Fatal("Selected() = nil after enter")
	}
	if got.ID != presets[1].ID {
		t.Errorf("Selected().ID = %q, want %q", got.ID, presets[1].ID)
	}
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("enter did not quit the picker")
	}
	if m.View() != "" {
		t.Error("View should be empty once a preset is selected")
	}
}

func TestPickerSelectsFirstByDefault(t *testing.T) {
	m, _ := updatePicker(t, newTestPicker(), tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Selected(); got == nil || got.ID != registry.List()[0].ID {
		t.Errorf("Selected() = %+v, want first preset", got)
	}
}

func TestPickerQuit(t *testing.T) {
	m, cmd := updatePicker(t, newTestPicker(), runeKey('j'), runeKey('q'))

	if m.Selected() != nil {
		t.Errorf("Selected() = %+v after quit, want nil", m.Selected())
	}
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit the picker")
	}
}

func TestPickerResize(t *testing.T) {
	m, _ := updatePicker(t, newTestPicker(),
		runeKey('j'),
		tea.WindowSizeMsg{Width: 120, Height: 40},
	)

	cfg := m.Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
	if got := m.table.Cursor(); got != 1 {
		t.Errorf("cursor after resize = %d, want 1", got)
	}
}
