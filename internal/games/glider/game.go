// Package glider adapts the glider engine to the arcade platform: it maps
// terminal cells to field units, feeds input actions to the session and
// rasterizes scenes into a core.Screen.
package glider

import (
	"github.com/vovakirdan/glider/internal/config"
	"github.com/vovakirdan/glider/internal/core"
	"github.com/vovakirdan/glider/internal/games/glider/engine"
	"github.com/vovakirdan/glider/internal/registry"
)

// Minimum terminal size; smaller windows suspend the simulation.
const (
	MinScreenW = 30
	MinScreenH = 8
)

// Variant selects a rule set.
type Variant int

const (
	VariantStandard Variant = iota // altitude speed, windowed gaps, silhouette collision
	VariantClassic                 // constant speed, rejection-sampled gaps, band collision
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// DifficultyPreset returns the preset set via SetDifficultyPreset, or ""
// when none or an unknown one was given.
func DifficultyPreset() config.DifficultyPreset {
	return difficultyPreset
}

// LoadConfig loads the configuration for a variant, applying the CLI
// preset. On error the defaults are returned along with the error.
func LoadConfig(v Variant) (config.GliderConfig, error) {
	cfg, err := config.LoadGlider(configPath)
	if difficultyPreset != "" {
		config.ApplyGliderPreset(&cfg, difficultyPreset)
	}
	if v == VariantClassic {
		config.ApplyClassic(&cfg)
	}
	return cfg, err
}

// Game implements registry.Game on top of an engine.Session.
type Game struct {
	variant Variant
	cfg     config.GliderConfig
	runtime core.RuntimeConfig
	session *engine.Session
	scene   engine.Scene

	paused    bool
	tooSmall  bool
	bestScore int
}

// New creates a standard glider game.
func New() *Game {
	return &Game{variant: VariantStandard}
}

// NewClassic creates a glider game with the first prototype's rules.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "glider_classic"
	}
	return "glider"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Glider (Classic)"
	}
	return "Glider"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.session != nil {
		g.bestScore = max(g.bestScore, g.session.BestScore())
	}

	// Load game config; LoadConfig falls back to defaults on error
	cfg, _ := LoadConfig(g.variant)
	g.cfg = cfg

	g.paused = false
	g.session = engine.NewSession(cfg, engine.Field{}, runtime.Seed)
	g.session.SetBestScore(g.bestScore)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize maps a new terminal size onto the field without losing progress.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < MinScreenW || h < MinScreenH
	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.session.Resize(0, 0)
		return
	}
	f := FieldForScreen(g.cfg, w, h)
	g.session.Resize(f.W, f.H)
	g.scene = g.session.Last()
}

// FieldForScreen returns the field a terminal of w x h cells maps to.
func FieldForScreen(cfg config.GliderConfig, w, h int) engine.Field {
	rows := h - cfg.Field.HUDRows
	return engine.Field{
		W: float64(w) * cfg.Field.CellWidth,
		H: float64(rows) * cfg.Field.CellHeight,
	}
}

// SetBestScore seeds the persisted best score.
func (g *Game) SetBestScore(score int) {
	g.bestScore = score
	if g.session != nil {
		g.session.SetBestScore(score)
	}
}

// Distance returns how far the body has travelled this round.
func (g *Game) Distance() float64 {
	if g.session == nil {
		return 0
	}
	return g.session.Distance()
}

// Step advances the game by one tick. ActionFly is read as a level: the
// session sees a rising edge when it first appears.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.session.Phase() == engine.PhaseGameOver {
		g.session.Restart()
		g.scene = g.session.Last()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.session.Phase() != engine.PhaseGameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.session.SetFlyingIntent(in.Has(core.ActionFly))
	res := g.session.Tick()
	g.scene = res.Scene
	events = append(events, res.Events...)

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.session.Score(),
		BestScore: g.session.BestScore(),
		Life:      g.session.Life(),
		Playing:   g.session.Phase() == engine.PhaseFlying,
		GameOver:  g.session.Phase() == engine.PhaseGameOver,
		Paused:    g.paused,
	}
}

var (
	_ registry.Resizer          = (*Game)(nil)
	_ registry.BestScoreSetter  = (*Game)(nil)
	_ registry.DistanceReporter = (*Game)(nil)
)

// Register the game variants with the registry
func init() {
	registry.Register("glider", func() registry.Game {
		return New()
	})
	registry.Register("glider_classic", func() registry.Game {
		return NewClassic()
	})
}
