package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/timefighter/internal/config"
	"github.com/vovakirdan/timefighter/internal/core"
	"github.com/vovakirdan/timefighter/internal/countdown"
)

// ID is the identifier used for score storage.
const ID = "timefighter"

// Title is the display name of the game.
const Title = "Timefighter"

// State is the game state reported to the platform after each step.
type State struct {
	Score    int
	TimeLeft int
	Phase    Phase
}

// StepResult is returned by Session.Step.
type StepResult struct {
	State      State
	GameOver   bool // A round ended during this step
	FinalScore int  // Score of the round that ended, if GameOver
}

// display is the text and notification state driven by controller events.
type display struct {
	score         int
	timeLeft      int
	toast         string
	toastLeft     time.Duration
	toastDuration time.Duration
	gameOver      bool
	finalScore    int
}

func (d *display) ScoreChanged(score int) {
	d.score = score
}

func (d *display) TimeChanged(secondsLeft int) {
	d.timeLeft = secondsLeft
}

func (d *display) GameOver(finalScore int) {
	d.gameOver = true
	d.finalScore = finalScore
	d.toast = fmt.Sprintf(gameOverFormat, finalScore)
	d.toastLeft = d.toastDuration
}

// Session is one screen's lifetime of the game: a controller, the clock that
// paces it and what is currently shown. A shell creates a new Session after
// each teardown (resize, suspend) and passes the previous session's snapshot.
type Session struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	clock   *countdown.Clock
	ctrl    *Controller
	view    *display

	bounceLeft time.Duration
	showAbout  bool
	closed     bool
}

// NewSession creates a session. With a saved snapshot the round resumes
// where it stopped; without one the game starts fresh.
func NewSession(cfg config.GameConfig, rt core.RuntimeConfig, saved *Snapshot, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	view := &display{toastDuration: cfg.Display.ToastDuration()}
	clock := countdown.NewClock()
	ctrl := NewController(clock, view, Options{
		InitialSeconds: cfg.Countdown.InitialSeconds,
		TickInterval:   cfg.Countdown.TickInterval(),
		Logger:         logger,
	})

	if saved != nil {
		ctrl.Restore(*saved)
	} else {
		ctrl.Reset(ctrl.InitialSeconds())
	}

	return &Session{
		cfg:     cfg,
		runtime: rt,
		logger:  logger,
		clock:   clock,
		ctrl:    ctrl,
		view:    view,
	}
}

// Step applies one frame of input and advances the countdown by dt.
// Input is applied at the start of the frame, before the clock moves: a tap
// in a frame during which the round runs out still scores for that round.
func (s *Session) Step(in core.InputFrame, dt time.Duration) StepResult {
	s.view.gameOver = false
	s.view.finalScore = 0

	if s.closed {
		return StepResult{State: s.State()}
	}

	if in.Has(core.ActionAbout) {
		s.showAbout = !s.showAbout
	}
	if in.Has(core.ActionBack) {
		s.showAbout = false
	}

	// The about dialog is modal; input behind it is dropped.
	if !s.showAbout {
		if in.Has(core.ActionReset) {
			s.ctrl.Reset(s.cfg.Countdown.InitialSeconds)
			s.view.toastLeft = 0
		}
		if taps := in.Count(core.ActionTap); taps > 0 {
			for i := 0; i < taps; i++ {
				s.ctrl.OnTap()
			}
			s.bounceLeft = s.cfg.Display.BounceDuration()
		}
	}

	if dt > 0 {
		s.bounceLeft = max(s.bounceLeft-dt, 0)
		s.view.toastLeft = max(s.view.toastLeft-dt, 0)
	}
	s.clock.Advance(dt)

	return StepResult{
		State:      s.State(),
		GameOver:   s.view.gameOver,
		FinalScore: s.view.finalScore,
	}
}

// Save stops the countdown and returns the state to hand to the next
// session. The session ignores further steps.
func (s *Session) Save() Snapshot {
	s.ctrl.CancelTimer()
	snap := s.ctrl.Snapshot()
	s.closed = true
	s.logger.Debug("saving session", "score", snap.Score, "timeLeft", snap.TimeLeftSeconds)
	return snap
}

// State returns the controller's current state.
func (s *Session) State() State {
	return State{
		Score:    s.ctrl.Score(),
		TimeLeft: s.ctrl.TimeLeft(),
		Phase:    s.ctrl.Phase(),
	}
}

// AboutVisible reports whether the about dialog is open.
func (s *Session) AboutVisible() bool {
	return s.showAbout
}
