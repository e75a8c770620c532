package quiz

import "github.com/meteorinca/cartesian/internal/problemgen"

// ProblemResult pairs one problem with its verdict for the summary view.
type ProblemResult struct {
	Prompt    string
	Canonical string
	Verdict   problemgen.Verdict
}

// Summary holds the data displayed when a batch completes.
type Summary struct {
	Mode       problemgen.Kind
	Difficulty problemgen.Difficulty
	Total      int
	Correct    int
	Accuracy   float64
	Results    []ProblemResult
}

// BuildSummary aggregates the session into its final score. The batch
// verdict is correct count over total; identify-point axis marks earn
// no partial credit here.
func BuildSummary(s *Session) *Summary {
	results := make([]ProblemResult, 0, len(s.Problems))
	for i := range s.Problems {
		p := &s.Problems[i]
		results = append(results, ProblemResult{
			Prompt:    p.Prompt(),
			Canonical: p.CanonicalAnswer(),
			Verdict:   s.Verdicts[i],
		})
	}

	correctCount, total := problemgen.Score(s.Verdicts)
	var accuracy float64
	if total > 0 {
		accuracy = float64(correctCount) / float64(total)
	}

	return &Summary{
		Mode:       s.Mode,
		Difficulty: s.Difficulty,
		Total:      total,
		Correct:    correctCount,
		Accuracy:   accuracy,
		Results:    results,
	}
}
