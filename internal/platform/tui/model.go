package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glider/internal/core"
	"github.com/vovakirdan/glider/internal/registry"
	"github.com/vovakirdan/glider/internal/storage"
)

// Options tune a game session beyond the runtime config.
type Options struct {
	// Hold is how long a fly key press counts as held. Zero makes each
	// press toggle flying.
	Hold time.Duration
	// Observer receives every state event, e.g. an audio manager.
	Observer core.Observer
	// Embedded models run inside another program: going back to the menu
	// is reported through BackToMenu instead of quitting.
	Embedded bool
}

// Model is the Bubble Tea model for running the glider.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	fixedSeed  bool
	keys       *KeyMapper
	fly        *FlyInput
	observer   core.Observer
	embedded   bool
	clock      func() time.Time
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for current game over
	best       attempt
}

// attempt is the best-scoring attempt of the current game, the one stored
// when the game ends.
type attempt struct {
	score    int
	distance float64
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		fixedSeed:  fixed,
		keys:       NewKeyMapper(),
		fly:        NewFlyInput(opts.Hold),
		observer:   opts.Observer,
		embedded:   opts.Embedded,
		clock:      time.Now,
		inputFrame: core.NewInputFrame(),
	}
	m.loadBestScore()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// loadBestScore seeds the game with the persisted best score.
func (m Model) loadBestScore() {
	setter, ok := m.game.(registry.BestScoreSetter)
	if !ok || m.store == nil {
		return
	}
	if best, err := m.store.BestScore(m.game.ID()); err == nil {
		setter.SetBestScore(best)
	}
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionFly:
		m.fly.Press(m.clock())
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// handleResize processes window resize events. Games that can resize keep
// their progress; others are reset as long as the game is not over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = now.UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.best = attempt{}
		m.fly.Release()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.fly.Held(now) {
		m.inputFrame.Set(core.ActionFly)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleEvents reacts to state events and forwards them to the observer.
func (m *Model) handleEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventNewBestScore:
			m.recordAttempt(ev.Value)
		case core.EventCollision:
			m.recordAttempt(m.gameState.Score)
			// The next press must start a new attempt in toggle mode
			m.fly.Release()
		case core.EventGameOver:
			m.recordAttempt(ev.Value)
			m.saveRun()
		}
	}
	core.Dispatch(events, m.observer)
}

// recordAttempt keeps the current attempt as the game's best if it scores
// higher, or equal but further. The score resets with every attempt, so the
// last attempt is not necessarily the best.
func (m *Model) recordAttempt(score int) {
	var distance float64
	if d, ok := m.game.(registry.DistanceReporter); ok {
		distance = d.Distance()
	}
	if score < m.best.score || (score == m.best.score && distance <= m.best.distance) {
		return
	}
	m.best = attempt{score: score, distance: distance}
}

// saveRun stores the game's best attempt once per game over.
func (m *Model) saveRun() {
	if m.scoreSaved || m.best.score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID:   m.game.ID(),
		Score:    m.best.score,
		Distance: m.best.distance,
		Seed:     m.config.Seed,
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(run)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".glider", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
