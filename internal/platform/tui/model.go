package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// The grid fills the viewport minus the status and help rows.
const chromeRows = 2

// Minimum viewport below which the simulation is not drawn.
const (
	minViewportW = 16
	minViewportH = 5
)

// Theme controls how cells are drawn.
type Theme struct {
	LiveRune  rune
	DeadRune  rune
	LiveColor core.Color
}

// DefaultTheme returns the standard green-block theme.
func DefaultTheme() Theme {
	return Theme{LiveRune: '█', DeadRune: ' ', LiveColor: core.ColorGreen}
}

// Options configures an interactive simulation session.
type Options struct {
	// Runtime carries the initial viewport size, tick delay and RNG seed.
	// A zero seed means time-based.
	Runtime core.RuntimeConfig

	// GridWidth and GridHeight pin the grid size. Zero means fit the
	// viewport, resizing the grid with the terminal.
	GridWidth  int
	GridHeight int

	// Density is the live probability for random seeding.
	Density float64

	// Pattern optionally starts from a named pattern instead of a random
	// seed. Reseeding returns to random.
	Pattern string

	// DelayStep and MinDelay bound the arrow-key speed adjustments.
	DelayStep time.Duration
	MinDelay  time.Duration

	// Theme controls cell rendering. Zero value means DefaultTheme.
	Theme Theme

	// Store, if non-nil, receives a run record when the session ends or
	// the grid is reseeded.
	Store *storage.Store
}

// Model is the Bubble Tea model driving one simulation session.
type Model struct {
	sim    *life.Simulation
	screen *core.Screen
	store  *storage.Store
	rng    *rand.Rand

	opts         Options
	seed         int64
	delay        time.Duration
	defaultDelay time.Duration

	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates a session model. The simulation is built immediately when
// the grid size is pinned, otherwise on the first window size message.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.Delay <= 0 {
		opts.Runtime.Delay = core.DefaultDelay
	}
	if opts.DelayStep <= 0 {
		opts.DelayStep = 50 * time.Millisecond
	}
	if opts.MinDelay <= 0 {
		opts.MinDelay = 50 * time.Millisecond
	}
	if opts.Theme == (Theme{}) {
		opts.Theme = DefaultTheme()
	}

	m := Model{
		store:        opts.Store,
		rng:          rand.New(rand.NewSource(opts.Runtime.Seed)),
		opts:         opts,
		seed:         opts.Runtime.Seed,
		delay:        opts.Runtime.Delay,
		defaultDelay: opts.Runtime.Delay,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		inputFrame:   core.NewInputFrame(),
		// The last terminal row belongs to the help footer.
		screen: core.NewScreen(opts.Runtime.ScreenW, core.Max(opts.Runtime.ScreenH-1, 0)),
	}

	gw, gh := m.gridSize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	if gw > 0 && gh > 0 {
		if err := m.buildSim(gw, gh); err != nil {
			return Model{}, err
		}
	}
	return m, nil
}

// gridSize returns the grid dimensions for a viewport, honoring pinned sizes.
func (m *Model) gridSize(viewW, viewH int) (int, int) {
	gw, gh := m.opts.GridWidth, m.opts.GridHeight
	if gw == 0 {
		gw = viewW
	}
	if gh == 0 {
		gh = viewH - chromeRows
	}
	return gw, gh
}

// buildSim allocates a fresh simulation for the given grid dimensions.
func (m *Model) buildSim(gridW, gridH int) error {
	sim, err := life.New(life.Params{
		Width:   gridW,
		Height:  gridH,
		Density: m.opts.Density,
		Rand:    m.rng,
	})
	if err != nil {
		return err
	}
	if m.opts.Pattern != "" {
		if err := sim.ResetWithPattern(m.opts.Pattern); err != nil {
			return err
		}
	}
	m.sim = sim
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers actions into the input frame for the next tick.
// Quit and help take effect immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adjusts the screen and, for viewport-fit grids, rebuilds the
// simulation at the new size. A resized grid is a new run; the old one is
// discarded without saving.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
	m.help.Width = msg.Width
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height

	if m.opts.GridWidth != 0 && m.opts.GridHeight != 0 && m.sim != nil {
		return m, nil
	}

	gw, gh := m.gridSize(msg.Width, msg.Height)
	if gw <= 0 || gh <= 0 {
		return m, nil
	}
	if m.sim != nil {
		cur := m.sim.Current()
		if cur.Width() == gw && cur.Height() == gh {
			return m, nil
		}
	}
	//nolint:errcheck // Dimensions are positive here; keep the old sim on failure
	m.buildSim(gw, gh)
	return m, nil
}

// handleTick consumes the buffered actions, advances the simulation and
// schedules the next tick at the current delay.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.sim == nil {
		return m, tickCmd(m.delay)
	}

	if m.inputFrame.Has(core.ActionReseed) {
		m.saveRun()
		m.sim.Reset()
	}
	if m.inputFrame.Has(core.ActionPause) {
		m.sim.TogglePause()
	}
	if m.inputFrame.Has(core.ActionSpeedUp) {
		m.delay = max(m.delay-m.opts.DelayStep, m.opts.MinDelay)
	}
	if m.inputFrame.Has(core.ActionSlowDown) {
		m.delay += m.opts.DelayStep
	}
	if m.inputFrame.Has(core.ActionSpeedReset) {
		m.delay = m.defaultDelay
	}
	m.inputFrame.Clear()

	m.sim.Tick()
	return m, tickCmd(m.delay)
}

// saveRun records the finished run. Best effort; the UI never blocks on it.
func (m *Model) saveRun() {
	if m.store == nil || m.sim == nil || m.sim.Generation() == 0 {
		return
	}
	cur := m.sim.Current()
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveRun(storage.RunRecord{
		Seed:            m.seed,
		Width:           cur.Width(),
		Height:          cur.Height(),
		Generations:     m.sim.Generation(),
		TotalBirths:     m.sim.TotalBirths(),
		TotalDeaths:     m.sim.TotalDeaths(),
		FinalPopulation: cur.Population(),
	})
}

// statusLine formats the generation counter line.
func (m Model) statusLine() string {
	s := fmt.Sprintf("generation %d, %d died and %d were born | population %d",
		m.sim.Generation(), m.sim.Deaths(), m.sim.Births(), m.sim.Current().Population())
	if m.sim.Paused() {
		s += " - PAUSED -"
	}
	return s
}

// View renders the grid, the status line and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.sim == nil {
		return "starting..."
	}

	w, h := m.screen.Width(), m.screen.Height()
	if w < minViewportW || h < minViewportH {
		return "terminal too small"
	}

	m.screen.Clear()

	cur := m.sim.Current()
	gridRows := core.Min(cur.Height(), h-1)
	gridCols := core.Min(cur.Width(), w)
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			if cur.Get(row, col) {
				m.screen.SetColored(col, row, m.opts.Theme.LiveRune, m.opts.Theme.LiveColor)
			} else {
				m.screen.Set(col, row, m.opts.Theme.DeadRune)
			}
		}
	}

	m.screen.DrawTextColored(0, h-1, m.statusLine(), core.ColorGray)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for an interactive session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
