package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/timefighter/internal/game"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("%s %s\n", game.Title, version)
		fmt.Println("Tap as many times as you can before the countdown reaches zero.")
	},
}
