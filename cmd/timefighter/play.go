package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/timefighter/internal/config"
	"github.com/vovakirdan/timefighter/internal/core"
	"github.com/vovakirdan/timefighter/internal/platform/tui"
	"github.com/vovakirdan/timefighter/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeconds    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the game on this terminal.

The first tap starts the countdown. Every tap scores a point until the time
runs out, then the game resets and waits for the next tap.

Controls:
  Space/Enter/T  - Tap
  R              - Reset
  A/?            - About
  Esc/B          - Close about
  Ctrl+Z         - Suspend (the round resumes where it was)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - 20 second rounds
  normal - 10 second rounds
  hard   - 5 second rounds

Examples:
  timefighter play
  timefighter play --difficulty easy
  timefighter play --seconds 30
  timefighter play --config ./my-timefighter.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagSeconds, "seconds", 0, "Round length in seconds (overrides config and difficulty)")
}

// loadGameConfig resolves the round configuration from the config file,
// the difficulty preset and --seconds, in that order.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagSeconds != 0 {
		cfg.Countdown.InitialSeconds = flagSeconds
	}

	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, err
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Version:  version,
	}

	// Open score storage
	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			logger.Warn("playing without high scores", "error", err)
			// Continue without storage - game still works
			store = nil
		}
	}

	logger.Info("starting game", "seconds", gameCfg.Countdown.InitialSeconds, "tick", gameCfg.Countdown.TickInterval())

	runErr := tui.Run(tui.Options{
		Game:    gameCfg,
		Runtime: runtime,
		Store:   store,
		Logger:  logger,
		Player:  playerName(),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName returns the local user name recorded with scores.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
