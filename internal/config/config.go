// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all configuration for the game.
type GameConfig struct {
	Countdown CountdownConfig `yaml:"countdown"`
	Display   DisplayConfig   `yaml:"display"`
}

// CountdownConfig defines round pacing.
type CountdownConfig struct {
	InitialSeconds int `yaml:"initial_seconds"`
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// DisplayConfig defines presentation timings.
type DisplayConfig struct {
	ToastMS  int `yaml:"toast_ms"`
	BounceMS int `yaml:"bounce_ms"`
}

// Limits accepted by Validate.
const (
	MinInitialSeconds = 1
	MaxInitialSeconds = 3600
	MinTickIntervalMS = 10
	MaxTickIntervalMS = 60000
)

// TickInterval returns the countdown refresh interval.
func (c CountdownConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// ToastDuration returns how long the game-over notification is shown.
func (c DisplayConfig) ToastDuration() time.Duration {
	return time.Duration(c.ToastMS) * time.Millisecond
}

// BounceDuration returns the length of the tap animation.
func (c DisplayConfig) BounceDuration() time.Duration {
	return time.Duration(c.BounceMS) * time.Millisecond
}

// Validate checks that all values are within their accepted ranges.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Countdown.InitialSeconds < MinInitialSeconds || c.Countdown.InitialSeconds > MaxInitialSeconds {
		errs = append(errs, fmt.Errorf("countdown.initial_seconds must be in [%d, %d], got %d",
			MinInitialSeconds, MaxInitialSeconds, c.Countdown.InitialSeconds))
	}
	if c.Countdown.TickIntervalMS < MinTickIntervalMS || c.Countdown.TickIntervalMS > MaxTickIntervalMS {
		errs = append(errs, fmt.Errorf("countdown.tick_interval_ms must be in [%d, %d], got %d",
			MinTickIntervalMS, MaxTickIntervalMS, c.Countdown.TickIntervalMS))
	}
	if c.Display.ToastMS < 0 {
		errs = append(errs, fmt.Errorf("display.toast_ms must not be negative, got %d", c.Display.ToastMS))
	}
	if c.Display.BounceMS < 0 {
		errs = append(errs, fmt.Errorf("display.bounce_ms must not be negative, got %d", c.Display.BounceMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
