package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glider/internal/core"
	"github.com/vovakirdan/glider/internal/storage"
)

// fakeGame records what the model feeds it and replays scripted events.
type fakeGame struct {
	resets   int
	resized  [2]int
	best     int
	flying   []bool
	script   map[int][]core.Event
	state    core.GameState
	distance float64
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.flying = nil
	g.state = core.GameState{Life: 3, BestScore: g.best}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.flying = append(g.flying, in.Has(core.ActionFly))
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	events := g.script[len(g.flying)]
	for _, ev := range events {
		if ev.Kind == core.EventGameOver {
			g.state.GameOver = true
			g.state.Score = ev.Value
		}
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) SetBestScore(score int) { g.best = score }
func (g *fakeGame) Distance() float64 { return g.distance }

type eventLog []core.Event

func (l *eventLog) OnRoundStart() { *l = append(*l, core.Event{Kind: core.EventRoundStart}) }
func (l *eventLog) OnCollision(life int) { *l = append(*l, core.Event{Kind: core.EventCollision, Value: life}) }
func (l *eventLog) OnGameOver(score int) { *l = append(*l, core.Event{Kind: core.EventGameOver, Value: score}) }
func (l *eventLog) OnNewBestScore(score int) { *l = append(*l, core.Event{Kind: core.EventNewBestScore, Value: score}) }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelToggleFly(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), Options{})
	now := time.Unix(100, 0)
	m.clock = func() time.Time { return now }

	m = update(t, m, TickMsg(now))
	m = update(t, m, keyMsg(" "))
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now.Add(time.Second)))
	m = update(t, m, keyMsg(" "))
	m = update(t, m, TickMsg(now))

	want := []bool{false, true, true, false}
	if len(game.flying) != len(want) {
		t.Fatalf("steps = %v", game.flying)
	}
	for i := range want {
		if game.flying[i] != want[i] {
			t.Errorf("tick %d: flying = %v, want %v", i, game.flying[i], want[i])
		}
	}
}

func TestModelCollisionReleasesFly(t *testing.T) {
	game := &fakeGame{script: map[int][]core.Event{
		2: {{Kind: core.EventCollision, Value: 2}},
	}}
	var log eventLog
	m := NewModel(game, nil, testConfig(), Options{Observer: &log})
	now := time.Unix(100, 0)
	m.clock = func() time.Time { return now }

	m = update(t, m, keyMsg(" "))
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now))

	if !game.flying[0] || !game.flying[1] || game.flying[2] {
		t.Errorf("flying = %v, want released after collision", game.flying)
	}
	if len(log) != 1 || log[0].Kind != core.EventCollision {
		t.Errorf("observer got %v", log)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	store.SaveScore("fake", 4) //nolint:errcheck

	game := &fakeGame{
		distance: 1234,
		script: map[int][]core.Event{
			1: {{Kind: core.EventCollision, Value: 0}, {Kind: core.EventGameOver, Value: 9}},
		},
	}
	m := NewModel(game, store, testConfig(), Options{})
	if game.best != 4 {
		t.Errorf("best score not loaded: %d", game.best)
	}

	now := time.Unix(100, 0)
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now))

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %+v, want 2", runs)
	}
	if runs[0].Score != 9 || runs[0].Distance != 1234 || runs[0].Seed != 7 {
		t.Errorf("saved run = %+v", runs[0])
	}

	// Restart keeps the fixed seed and resets the game
	m = update(t, m, keyMsg("r"))
	m = update(t, m, TickMsg(now))
	if game.resets != 2 || m.config.Seed != 7 {
		t.Errorf("resets=%d seed=%d", game.resets, m.config.Seed)
	}
	if m.State().GameOver {
		t.Error("still game over after restart")
	}
}

func TestModelSavesBestAttempt(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	// The third attempt sets the best, the last one scores less
	game := &fakeGame{
		script: map[int][]core.Event{
			3: {{Kind: core.EventNewBestScore, Value: 12}},
			4: {{Kind: core.EventCollision, Value: 1}},
			6: {{Kind: core.EventCollision, Value: 0}, {Kind: core.EventGameOver, Value: 2}},
		},
	}
	m := NewModel(game, store, testConfig(), Options{})
	now := time.Unix(100, 0)

	for tick := 1; tick <= 6; tick++ {
		if tick == 3 {
			game.distance = 640
		}
		if tick == 6 {
			game.distance = 90
		}
		m = update(t, m, TickMsg(now))
	}

	best, err := store.BestScore("fake")
	if err != nil {
		t.Fatalf("BestScore: %v", err)
	}
	if best != 12 {
		t.Errorf("persisted best = %d, want 12", best)
	}
	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Distance != 640 {
		t.Errorf("runs = %+v, want one run at distance 640", runs)
	}

	// A restart starts the tally again
	m = update(t, m, keyMsg("r"))
	m = update(t, m, TickMsg(now))
	if m.best != (attempt{}) {
		t.Errorf("best attempt not cleared on restart: %+v", m.best)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resize reset the game: resets=%d", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackToMenu(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), Options{Embedded: true})
	now := time.Unix(100, 0)

	// Back is ignored while playing
	m = update(t, m, keyMsg("b"))
	if m.BackToMenu() {
		t.Fatal("back honoured while playing")
	}

	m = update(t, m, keyMsg("p"))
	m = update(t, m, TickMsg(now))
	m = update(t, m, keyMsg("b"))
	if !m.BackToMenu() || m.IsQuitting() {
		t.Errorf("back=%v quitting=%v", m.BackToMenu(), m.IsQuitting())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig(), Options{})
	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("q did not quit")
	}
	if next.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig(), Options{})
	if !strings.Contains(m.View(), "fake") {
		t.Errorf("view = %q", m.View())
	}
}
