package cmd

import (
	"fmt"

	"github.com/meteorinca/cartesian/internal/app"
	"github.com/meteorinca/cartesian/internal/problemgen"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp reads the shared flags and launches the TUI.
func runApp(cmd *cobra.Command) error {
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")

	difficulty, err := problemgen.ParseDifficulty(difficultyVal)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	return app.Run(app.Options{
		Difficulty: difficulty,
		Count:      count,
		Seed:       seed,
	})
}
