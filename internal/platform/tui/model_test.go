package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/timefighter/internal/config"
	"github.com/vovakirdan/timefighter/internal/core"
	"github.com/vovakirdan/timefighter/internal/game"
	"github.com/vovakirdan/timefighter/internal/storage"
)

var start = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func testOptions(seconds int) Options {
	cfg := config.DefaultConfig()
	cfg.Countdown.InitialSeconds = seconds
	return Options{
		Game:    cfg,
		Runtime: core.DefaultConfig(),
		Player:  "tester",
	}
}

// send feeds a message to the model and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func tickAt(d time.Duration) TickMsg {
	return TickMsg(start.Add(d))
}

func TestModelTapStartsRound(t *testing.T) {
	m := NewModel(testOptions(10))

	m, _ = send(t, m, runeKey("t"))
	m, _ = send(t, m, runeKey("t"))
	m, cmd := send(t, m, tickAt(0))
	if cmd == nil {
		t.Error("tick should schedule the next frame")
	}

	state := m.Session().State()
	if state.Phase != game.PhaseRunning || state.Score != 2 {
		t.Fatalf("State() = %+v, expected running with score 2", state)
	}

	m, _ = send(t, m, tickAt(3*time.Second))
	if got := m.Session().State().TimeLeft; got != 7 {
		t.Errorf("TimeLeft = %d after 3s, expected 7", got)
	}
}

func TestModelResizeKeepsRunningRound(t *testing.T) {
	m := NewModel(testOptions(10))

	m, _ = send(t, m, runeKey("t"))
	m, _ = send(t, m, tickAt(0))
	m, _ = send(t, m, tickAt(4*time.Second))
	before := m.Session()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.Session() == before {
		t.Fatal("resize should rebuild the session")
	}
	want := game.State{Score: 1, TimeLeft: 6, Phase: game.PhaseRunning}
	if got := m.Session().State(); got != want {
		t.Fatalf("State() after resize = %+v, expected %+v", got, want)
	}

	// The old session must not tick any more
	if before.Step(core.NewInputFrame(), time.Minute).GameOver {
		t.Error("saved session still owns a timer")
	}

	// The restored countdown finishes on schedule
	m, _ = send(t, m, tickAt(9*time.Second))
	if got := m.Session().State().TimeLeft; got != 1 {
		t.Errorf("TimeLeft = %d, expected 1", got)
	}
	m, _ = send(t, m, tickAt(10*time.Second))
	if got := m.Session().State(); got.Phase != game.PhaseIdle || got.Score != 0 {
		t.Errorf("round should be over and reset, got %+v", got)
	}
}

func TestModelSameSizeKeepsSession(t *testing.T) {
	m := NewModel(testOptions(10))
	before := m.Session()

	rt := core.DefaultConfig()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: rt.ScreenW, Height: rt.ScreenH})

	if m.Session() != before {
		t.Error("a resize to the same size should keep the session")
	}
}

func TestModelSuspendAndResume(t *testing.T) {
	opts := testOptions(10)
	opts.AllowSuspend = true
	m := NewModel(opts)

	m, _ = send(t, m, runeKey("t"))
	m, _ = send(t, m, tickAt(0))
	m, _ = send(t, m, tickAt(2*time.Second))

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if cmd == nil {
		t.Fatal("ctrl+z should return the suspend command")
	}
	if m.Session() != nil {
		t.Fatal("session should be dropped while suspended")
	}

	// Ticks while suspended are harmless
	m, _ = send(t, m, tickAt(time.Hour))

	m, _ = send(t, m, tea.ResumeMsg{})
	want := game.State{Score: 1, TimeLeft: 8, Phase: game.PhaseRunning}
	if got := m.Session().State(); got != want {
		t.Fatalf("State() after resume = %+v, expected %+v", got, want)
	}

	// The first tick after resume does not count the suspended time
	m, _ = send(t, m, tickAt(2*time.Hour))
	if got := m.Session().State().TimeLeft; got != 8 {
		t.Errorf("TimeLeft = %d after resume, expected 8", got)
	}
}

func TestModelSuspendDisabled(t *testing.T) {
	m := NewModel(testOptions(10))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if m.Session() == nil {
		t.Error("ctrl+z must be ignored when suspend is disabled")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testOptions(10))
	m, _ = send(t, m, runeKey("t"))
	m, _ = send(t, m, tickAt(0))

	m, cmd := send(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return the quit command")
	}
	if m.Session() != nil {
		t.Error("session should be released on quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelRecordsFinishedRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	opts := testOptions(1)
	opts.Store = store
	m := NewModel(opts)

	for i := 0; i < 3; i++ {
		m, _ = send(t, m, runeKey("t"))
	}
	m, _ = send(t, m, tickAt(0))
	m, _ = send(t, m, tickAt(2*time.Second))

	scores, err := store.TopScores(game.ID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 3 || scores[0].Player != "tester" {
		t.Fatalf("recorded scores = %+v, expected one 3-point round by tester", scores)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(testOptions(10))

	view := m.View()
	for _, want := range []string{"Your score: 0", "Time left: 10", "tap", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModelIdleGameStaysIdleAcrossLifecycle(t *testing.T) {
	opts := testOptions(10)
	opts.AllowSuspend = true
	m := NewModel(opts)
	idle := game.State{Score: 0, TimeLeft: 10, Phase: game.PhaseIdle}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = send(t, m, tickAt(0))
	m, _ = send(t, m, tickAt(5*time.Second))
	if got := m.Session().State(); got != idle {
		t.Fatalf("State() after resizing an idle game = %+v, expected %+v", got, idle)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	m, _ = send(t, m, tea.ResumeMsg{})
	m, _ = send(t, m, tickAt(6*time.Second))
	m, _ = send(t, m, tickAt(8*time.Second))
	if got := m.Session().State(); got != idle {
		t.Fatalf("State() after resuming an idle game = %+v, expected %+v", got, idle)
	}

	// The first tap still starts a full round
	m, _ = send(t, m, runeKey("t"))
	m, _ = send(t, m, tickAt(8*time.Second))
	want := game.State{Score: 1, TimeLeft: 10, Phase: game.PhaseRunning}
	if got := m.Session().State(); got != want {
		t.Errorf("State() after first tap = %+v, expected %+v", got, want)
	}
}
