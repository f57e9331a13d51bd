package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/timefighter/internal/core"
)

// Screen text.
const (
	scoreFormat    = "Your score: %d"
	timeLeftFormat = "Time left: %d"
	gameOverFormat = "Time's up! Your score was %d"
	buttonLabel    = "TAP ME"
	idleHint       = "Tap to start the clock"
	aboutFormat    = Title + " %s"
	aboutMessage   = "Tap the button as many times as you can before the clock runs out."
)

// Button sizes (width, height) at rest and while bouncing.
const (
	buttonW       = 14
	buttonH       = 3
	bounceButtonW = 20
	bounceButtonH = 5
)

// lowTimeSeconds is the threshold below which the countdown turns red.
const lowTimeSeconds = 3

// Render draws the current game state into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(scoreFormat, s.view.score), core.ColorBrightWhite)
	timeText := fmt.Sprintf(timeLeftFormat, s.view.timeLeft)
	timeColor := core.ColorCyan
	if s.ctrl.Phase() == PhaseRunning && s.view.timeLeft <= lowTimeSeconds {
		timeColor = core.ColorRed
	}
	dst.DrawText(dst.Width()-utf8.RuneCountInString(timeText)-2, 0, timeText, timeColor)

	s.drawButton(dst)

	if s.ctrl.Phase() == PhaseIdle && s.view.toastLeft == 0 {
		dst.DrawTextCentered(dst.Height()*3/4, idleHint, core.ColorGray)
	}

	if s.view.toastLeft > 0 {
		s.drawToast(dst)
	}

	if s.showAbout {
		s.drawAbout(dst)
	}
}

// drawButton draws the tap target, enlarged while the bounce animation runs.
func (s *Session) drawButton(dst *core.Screen) {
	w, h, color := buttonW, buttonH, core.ColorYellow
	if s.bounceLeft > 0 {
		w, h, color = bounceButtonW, bounceButtonH, core.ColorBrightYellow
	}

	box := dst.Bounds().Centered(w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	labelX := box.X + (box.W-utf8.RuneCountInString(buttonLabel))/2
	dst.DrawText(labelX, box.Y+box.H/2, buttonLabel, color)
}

// drawToast draws the game-over notification near the bottom of the screen.
func (s *Session) drawToast(dst *core.Screen) {
	text := " " + s.view.toast + " "
	w := utf8.RuneCountInString(text) + 2
	y := core.Clamp(dst.Height()-4, 0, dst.Height())
	box := core.NewRect((dst.Width()-w)/2, y, w, 3)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorOrange)
	dst.DrawText(box.X+1, box.Y+1, text, core.ColorOrange)
}

// drawAbout draws the about dialog in the center of the screen.
func (s *Session) drawAbout(dst *core.Screen) {
	title := fmt.Sprintf(aboutFormat, s.runtime.Version)
	footer := "Press Esc to close"

	w := max(utf8.RuneCountInString(title), utf8.RuneCountInString(aboutMessage), utf8.RuneCountInString(footer)) + 4
	w = min(w, dst.Width())
	box := dst.Bounds().Centered(w, 7)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGreen)
	dst.DrawText(box.X+(box.W-utf8.RuneCountInString(title))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawText(box.X+2, box.Y+3, aboutMessage, core.ColorDefault)
	dst.DrawText(box.X+(box.W-utf8.RuneCountInString(footer))/2, box.Y+5, footer, core.ColorGray)
}
