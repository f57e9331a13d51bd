// Package game implements Timefighter: tap as often as possible before the
// countdown runs out.
//
// Controller owns the rules and the round state. Session is the screen built
// around it: it turns controller events into the text, animation and
// notifications the platform renders.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/timefighter/internal/core"
	"github.com/vovakirdan/timefighter/internal/countdown"
)

// DefaultInitialSeconds is the round length used when none is configured.
const DefaultInitialSeconds = 10

// Phase is the controller's current mode.
type Phase int

const (
	// PhaseIdle means no round is running; the next tap starts one.
	PhaseIdle Phase = iota
	// PhaseRunning means the countdown is active.
	PhaseRunning
	// PhaseEnded is only observable while the game-over event is delivered.
	// The controller resets to PhaseIdle before OnTimerFinished returns.
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Snapshot is the state carried across a teardown: a shell saves it before
// discarding a controller and hands it to the next one.
type Snapshot struct {
	Score           int `yaml:"score"`
	TimeLeftSeconds int `yaml:"time_left_seconds"`
}

// Observer receives the controller's display events.
type Observer interface {
	ScoreChanged(score int)
	TimeChanged(secondsLeft int)
	GameOver(finalScore int)
}

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	InitialSeconds int           // Round length (default 10)
	TickInterval   time.Duration // Countdown refresh interval (default 1s)
	Logger         *log.Logger   // Lifecycle logging (default: discarded)
}

// Controller holds the game rules. It is the only code that changes the
// score, the remaining time or the phase.
//
// All methods must be called from one goroutine; the countdown Scheduler is
// expected to deliver its callbacks on that goroutine as well.
type Controller struct {
	scheduler      countdown.Scheduler
	observer       Observer
	logger         *log.Logger
	interval       time.Duration
	initialSeconds int

	score    int
	timeLeft int
	phase    Phase
	timer    countdown.Timer // at most one; replaced, never shared
}

// NewController creates an idle controller with a zero score and a full
// countdown. No events are emitted until Reset or Restore is called.
func NewController(scheduler countdown.Scheduler, observer Observer, opts Options) *Controller {
	if opts.InitialSeconds <= 0 {
		opts.InitialSeconds = DefaultInitialSeconds
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = countdown.DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Controller{
		scheduler:      scheduler,
		observer:       observer,
		logger:         opts.Logger,
		interval:       opts.TickInterval,
		initialSeconds: opts.InitialSeconds,
		timeLeft:       opts.InitialSeconds,
		phase:          PhaseIdle,
	}
}

// Score returns the current score.
func (c *Controller) Score() int { return c.score }

// TimeLeft returns the whole seconds left in the round.
func (c *Controller) TimeLeft() int { return c.timeLeft }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// InitialSeconds returns the length of a round.
func (c *Controller) InitialSeconds() int { return c.initialSeconds }

// HasTimer reports whether a countdown is attached to the controller.
func (c *Controller) HasTimer() bool { return c.timer != nil }

// Reset starts over: score zero, a full countdown of initialSeconds and no
// timer until the next tap. initialSeconds also becomes the round length
// used by later resets. Negative values are treated as zero.
func (c *Controller) Reset(initialSeconds int) {
	if initialSeconds < 0 {
		initialSeconds = 0
	}

	c.CancelTimer()
	c.initialSeconds = initialSeconds
	c.score = 0
	c.timeLeft = initialSeconds
	c.phase = PhaseIdle

	c.logger.Debug("game reset", "seconds", initialSeconds)
	c.observer.ScoreChanged(c.score)
	c.observer.TimeChanged(c.timeLeft)
}

// OnTap scores one point, starting the countdown first if the game is idle.
// Taps delivered while the game-over event is being handled are ignored.
func (c *Controller) OnTap() {
	switch c.phase {
	case PhaseEnded:
		return
	case PhaseIdle:
		c.phase = PhaseRunning
		c.startTimer(time.Duration(c.initialSeconds) * time.Second)
		c.logger.Debug("game started", "seconds", c.initialSeconds)
	}

	c.score++
	c.observer.ScoreChanged(c.score)
}

// OnTick updates the remaining time from a countdown tick.
// Ticks are ignored unless a round is running.
func (c *Controller) OnTick(remaining time.Duration) {
	if c.phase != PhaseRunning {
		return
	}
	c.timeLeft = core.Clamp(int(remaining/time.Second), 0, c.initialSeconds)
	c.observer.TimeChanged(c.timeLeft)
}

// OnTimerFinished ends the round: it announces the final score and resets to
// a fresh idle game before returning.
func (c *Controller) OnTimerFinished() {
	if c.phase != PhaseRunning {
		return
	}

	c.phase = PhaseEnded
	c.CancelTimer()
	final := c.score

	c.logger.Info("game over", "score", final)
	c.observer.GameOver(final)
	c.Reset(c.initialSeconds)
}

// Snapshot returns the score and remaining time without changing anything.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Score: c.score, TimeLeftSeconds: c.timeLeft}
}

// Restore resumes a saved round: the countdown continues from the saved
// remaining time instead of restarting the full round. Any existing timer is
// replaced. The controller is always Running afterwards; a shell with nothing
// in progress should call Reset instead.
func (c *Controller) Restore(s Snapshot) {
	score := max(s.Score, 0)
	timeLeft := max(s.TimeLeftSeconds, 0)
	if timeLeft > c.initialSeconds {
		c.initialSeconds = timeLeft
	}

	c.CancelTimer()
	c.score = score
	c.timeLeft = timeLeft
	c.phase = PhaseRunning
	c.startTimer(time.Duration(timeLeft) * time.Second)

	c.logger.Debug("game restored", "score", score, "timeLeft", timeLeft)
	c.observer.ScoreChanged(c.score)
	c.observer.TimeChanged(c.timeLeft)
}

// CancelTimer stops and discards the active countdown, if any. Call it before
// dropping the controller so that no tick reaches a discarded game.
func (c *Controller) CancelTimer() {
	if c.timer == nil {
		return
	}
	c.timer.Cancel()
	c.timer = nil
	c.logger.Debug("timer cancelled", "score", c.score, "timeLeft", c.timeLeft)
}

// startTimer replaces the current timer with a new countdown of total length.
func (c *Controller) startTimer(total time.Duration) {
	c.CancelTimer()
	c.timer = c.scheduler.Start(total, c.interval, timerListener{c})
}

// timerListener forwards countdown callbacks to the controller.
type timerListener struct {
	c *Controller
}

func (l timerListener) Tick(remaining time.Duration) { l.c.OnTick(remaining) }
func (l timerListener) Finish()                      { l.c.OnTimerFinished() }
