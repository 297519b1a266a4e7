package tui

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// chromeRows is the number of terminal rows used by the status line and the
// help or rule input line.
const chromeRows = 2

// Model is the Bubble Tea model hosting one universe. Bubble Tea calls
// Update from a single goroutine, which gives the universe the single
// writer it requires.
type Model struct {
	universe  *life.Universe
	config    core.RuntimeConfig
	screen    *core.Screen
	styles    Styles
	glyphs    Glyphs
	keys      KeyMap
	help      help.Model
	ruleInput textinput.Model
	fps       fpsMeter
	logger    *log.Logger
	cursor    life.Coord
	fitW      bool // universe width follows the terminal
	fitH      bool // universe height follows the terminal
	paused    bool
	editing   bool // rule input has focus
	quitting  bool
	lastErr   error
}

// NewModel creates a model and its universe. Zero width or height in cfg
// means the universe fills the terminal in that direction.
func NewModel(cfg config.LifeConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Run.TickRate
	}
	if rt.Seed != 0 {
		cfg.Run.Seed = rt.Seed
	}

	m := Model{
		config:    rt,
		styles:    NewStyles(cfg.Render),
		glyphs:    GlyphsFrom(cfg.Render),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		ruleInput: newRuleInput(),
		logger:    logger,
		fitW:      cfg.Universe.Width == 0,
		fitH:      cfg.Universe.Height == 0,
		paused:    cfg.Run.StartPaused,
	}
	m.help.Width = rt.ScreenW

	w, h := m.fittedSize(cfg.Universe.Topology, cfg.Universe.Width, cfg.Universe.Height)
	u, err := cfg.NewUniverse(w, h)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot create universe: %w", err)
	}
	m.universe = u
	sw, sh := m.footprint()
	m.screen = core.NewScreen(sw, sh+1)

	logger.Info("universe created",
		"size", fmt.Sprintf("%dx%d", w, h),
		"topology", u.Topology(),
		"rule", u.Rules(),
		"population", u.Population(),
	)
	return m, nil
}

func newRuleInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "rule: "
	ti.Placeholder = "B3/S23"
	ti.CharLimit = 24
	return ti
}

// fittedSize replaces the dimensions that follow the terminal.
func (m Model) fittedSize(topo life.Topology, w, h int) (int, int) {
	fw, fh := GridSize(topo, m.config.ScreenW, m.config.ScreenH-chromeRows)
	if m.fitW {
		w = fw
	}
	if m.fitH {
		h = fh
	}
	return w, h
}

// footprint returns the screen area the universe occupies.
func (m Model) footprint() (int, int) {
	w := m.universe.Width() * cellWidth(m.universe.Topology())
	if m.universe.Topology() == life.Hexagon {
		w++
	}
	return w, m.universe.Height()
}

// Universe returns the hosted universe.
func (m Model) Universe() *life.Universe {
	return m.universe
}

// Cursor returns the cell under the cursor.
func (m Model) Cursor() life.Coord {
	return m.cursor
}

// Paused reports whether the tick loop is paused.
func (m Model) Paused() bool {
	return m.paused
}

// TickRate returns the current generations per second.
func (m Model) TickRate() int {
	return m.config.TickRate
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey applies the action bound to the key.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleRuleInput(msg)
	}
	m.lastErr = nil

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		m.moveCursor(0, -1)
	case core.ActionDown:
		m.moveCursor(0, 1)
	case core.ActionLeft:
		m.moveCursor(-1, 0)
	case core.ActionRight:
		m.moveCursor(1, 0)
	case core.ActionToggle:
		_, m.lastErr = m.universe.Toggle(m.cursor.X, m.cursor.Y)
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionStep:
		m.step()
	case core.ActionRestart:
		u := m.universe
		m.lastErr = u.Restart(u.BornDigits(), u.SurvivesDigits(), u.Width(), u.Height(), u.Topology())
		m.logger.Info("universe reseeded", "population", u.Population())
	case core.ActionClear:
		m.universe.Clear()
	case core.ActionCycleTopology:
		m.cycleTopology()
	case core.ActionNextRule:
		m.nextPreset()
	case core.ActionEditRule:
		m.editing = true
		m.ruleInput.SetValue(m.universe.Rules().String())
		m.ruleInput.CursorEnd()
		return m, m.ruleInput.Focus()
	case core.ActionFaster:
		m.config.TickRate = core.ClampTickRate(m.config.TickRate * 2)
	case core.ActionSlower:
		m.config.TickRate = core.ClampTickRate(m.config.TickRate / 2)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleRuleInput feeds keys to the rule input. Enter applies the rule,
// esc cancels.
func (m Model) handleRuleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.editing = false
		m.ruleInput.Blur()
		return m, nil
	case tea.KeyEnter:
		if err := m.applyRule(m.ruleInput.Value()); err != nil {
			m.lastErr = err
			return m, nil
		}
		m.lastErr = nil
		m.editing = false
		m.ruleInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.ruleInput, cmd = m.ruleInput.Update(msg)
	return m, cmd
}

// applyRule parses a B<digits>/S<digits> rule and switches the universe to
// it. Cells and generation are kept.
func (m *Model) applyRule(rule string) error {
	rules, err := life.ParseRuleString(rule)
	if err != nil {
		return err
	}
	if err := m.universe.SetRules(rules.BornDigits(), rules.SurvivesDigits()); err != nil {
		return err
	}
	m.logger.Info("rule changed", "rule", m.universe.Rules())
	return nil
}

// nextPreset switches to the preset after the one matching the current
// rule, or to the first preset. Presets tied to a topology switch it too.
func (m *Model) nextPreset() {
	presets := registry.List()
	if len(presets) == 0 {
		return
	}

	current := m.universe.Rules().String()
	next := 0
	for i, p := range presets {
		if p.Rule == current && (!p.Topology.Valid() || p.Topology == m.universe.Topology()) {
			next = (i + 1) % len(presets)
			break
		}
	}

	p := presets[next]
	if err := m.applyRule(p.Rule); err != nil {
		m.lastErr = err
		return
	}
	if p.Topology.Valid() && p.Topology != m.universe.Topology() {
		if err := m.universe.SetTopology(p.Topology); err != nil {
			m.lastErr = err
			return
		}
		m.resizeUniverse()
	}
	m.logger.Info("preset selected", "preset", p.ID)
}

// moveCursor moves the cursor with toroidal wrap-around.
func (m *Model) moveCursor(dx, dy int) {
	m.cursor.X = core.Wrap(m.cursor.X+dx, m.universe.Width())
	m.cursor.Y = core.Wrap(m.cursor.Y+dy, m.universe.Height())
}

func (m *Model) clampCursor() {
	m.cursor.X = core.Clamp(m.cursor.X, 0, max(m.universe.Width()-1, 0))
	m.cursor.Y = core.Clamp(m.cursor.Y, 0, max(m.universe.Height()-1, 0))
}

func (m *Model) cycleTopology() {
	next := m.universe.Topology().Next()
	if err := m.universe.SetTopology(next); err != nil {
		m.lastErr = err
		return
	}
	m.resizeUniverse()
	m.logger.Info("topology changed", "topology", next)
}

// resizeUniverse refits the universe to the terminal where it follows it.
func (m *Model) resizeUniverse() {
	if !m.fitW && !m.fitH {
		return
	}
	w, h := m.fittedSize(m.universe.Topology(), m.universe.Width(), m.universe.Height())
	if err := m.universe.Resize(w, h); err != nil {
		m.lastErr = err
		return
	}
	m.clampCursor()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.resizeUniverse()
	return m, nil
}

// step advances one generation and logs how long it took.
func (m *Model) step() {
	start := time.Now()
	gen := m.universe.Tick()
	m.logger.Debug("tick", "generation", gen, "took", time.Since(start))
}

// handleTick advances the universe unless paused and schedules the next tick.
// Only running ticks feed the rate meter.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.paused {
		m.fps.Reset()
	} else {
		m.fps.Record(time.Time(msg))
		m.step()
	}
	return m, tickCmd(m.config.TickRate)
}

// FPS returns the floored mean, min and max measured generation rate over
// the last frames. ok is false until a rate has been measured.
func (m Model) FPS() (mean, lo, hi int, ok bool) {
	return m.fps.Stats()
}

// View renders the universe and status line through the screen buffer,
// followed by the help or the rule input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status, rate := m.statusLine(), m.rateLine()
	statusW := utf8.RuneCountInString(status)
	w, h := m.footprint()

	m.screen.Resize(max(w, statusW+2+utf8.RuneCountInString(rate)), h+1)
	m.screen.Clear()
	DrawUniverse(m.screen, m.universe, m.glyphs, m.cursor, true)
	m.screen.DrawText(0, h, status, core.ColorStatus)
	m.screen.DrawText(statusW+2, h, rate, core.ColorMuted)

	footer := m.help.View(m.keys)
	if m.editing {
		footer = m.ruleInput.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen, m.styles), footer)
}

func (m Model) statusLine() string {
	u := m.universe
	status := fmt.Sprintf("%s  %s  gen %d  pop %d  %d/s",
		u.Topology(), u.Rules(), u.Generation(), u.Population(), m.config.TickRate)
	if m.paused {
		status += "  [paused]"
	}
	if m.lastErr != nil {
		status += "  error: " + m.lastErr.Error()
	}
	return status
}

// rateLine shows the measured rate as mean (min-max).
func (m Model) rateLine() string {
	mean, lo, hi, ok := m.fps.Stats()
	if !ok {
		return ""
	}
	return fmt.Sprintf("fps %d (%d-%d)", mean, lo, hi)
}

// Run starts the Bubble Tea program hosting a universe built from cfg.
func Run(cfg config.LifeConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
