// timefighter is a tap-counter game against a countdown, played in the terminal.
//
// Usage:
//
//	timefighter play          - Play a round on this terminal
//	timefighter serve         - Start SSH server for remote play
//	timefighter scores        - Show high scores
//	timefighter about         - Show version information
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.timefighter/scores.db)
//	--log-file <path>     - Set log file for local play (default: ~/.timefighter/timefighter.log)
//	--log-level <level>   - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "timefighter",
	Short:   "Timefighter - tap as fast as you can before the clock runs out",
	Version: version,
	Long: `Timefighter is a terminal tap-counter game. The first tap starts a
countdown; every tap scores a point until time runs out.

Available commands:
  play     - Play a round on this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  about    - Show version information

Examples:
  timefighter play
  timefighter play --difficulty hard
  timefighter serve --ssh :2222
  timefighter scores --limit 5`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.timefighter/scores.db", "Path to scores database (empty disables scores)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file for local play")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(aboutCmd)
}
