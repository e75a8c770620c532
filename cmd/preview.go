package cmd

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/meteorinca/cartesian/internal/problemgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated problems without starting the UI",
	Long: `Generate a batch and print each problem with its canonical answer.

This is a stateless developer tool, useful for eyeballing problem
quality per difficulty and for producing reproducible fixtures with
--seed.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("mode", "", "Problem mode: plot-point, identify-point, find-quadrant, or distance (required)")
	previewCmd.Flags().Bool("records", false, "Also print each problem's flat key-value record")
	_ = previewCmd.MarkFlagRequired("mode")
}

func runPreview(cmd *cobra.Command, args []string) error {
	modeVal, _ := cmd.Flags().GetString("mode")
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")
	showRecords, _ := cmd.Flags().GetBool("records")

	mode, err := problemgen.ParseKind(modeVal)
	if err != nil {
		return err
	}
	difficulty, err := problemgen.ParseDifficulty(difficultyVal)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sampler := problemgen.NewSampler(rand.New(rand.NewSource(seed)))
	gen := problemgen.New(problemgen.ProfileFor(difficulty), sampler, problemgen.DefaultConfig())

	fmt.Printf("mode=%s difficulty=%s seed=%d\n\n", mode, difficulty, seed)
	for i, p := range gen.Batch(mode, count) {
		fmt.Printf("%2d. %s\n", i+1, p.Prompt())
		fmt.Printf("    answer: %s\n", p.CanonicalAnswer())
		if showRecords {
			printRecord(p.Record())
		}
	}
	return nil
}

// printRecord dumps a problem record with stable key order.
func printRecord(rec map[string]string) {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("    %s=%s\n", k, rec[k])
	}
}
