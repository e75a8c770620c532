package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cartesian",
	Short: "Coordinate plane practice in the terminal",
	Long:  "Cartesian — interactive practice for plotting points, reading coordinates, naming quadrants, and computing distances on the coordinate plane.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("difficulty", "easy", "Difficulty preset: easy, medium, or hard")
	rootCmd.PersistentFlags().Int("count", 5, "Problems per batch")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for reproducible batches (0 = time-seeded)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}
