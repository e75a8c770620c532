package quiz

import (
	"math/rand"
	"testing"

	"github.com/meteorinca/cartesian/internal/geometry"
	"github.com/meteorinca/cartesian/internal/problemgen"
)

func newTestSession(mode problemgen.Kind, count int) *Session {
	profile := problemgen.ProfileFor(problemgen.DifficultyMedium)
	gen := problemgen.New(profile, problemgen.NewSampler(rand.New(rand.NewSource(9))), problemgen.DefaultConfig())
	return NewSession(mode, problemgen.DifficultyMedium, count, gen)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestSession(problemgen.KindPlotPoint, 3)

	if len(s.Problems) != 3 {
		t.Fatalf("batch size = %d, want 3", len(s.Problems))
	}
	if s.Phase != PhaseActive {
		t.Fatalf("phase = %v, want PhaseActive", s.Phase)
	}
	if s.ID == "" {
		t.Fatal("session has no ID")
	}

	// Answer every problem correctly by plotting its own target.
	for i := 0; i < 3; i++ {
		p := s.Current()
		if p == nil {
			t.Fatalf("problem %d: Current() = nil", i)
		}
		target := p.Target
		v := s.Submit(problemgen.Answer{Plotted: &target})
		if !v.Correct {
			t.Fatalf("problem %d graded wrong: %+v", i, v)
		}
		if s.Phase != PhaseFeedback {
			t.Fatalf("problem %d: phase = %v after submit", i, s.Phase)
		}
		s.Advance()
	}

	if s.Phase != PhaseDone {
		t.Fatalf("phase = %v after last advance, want PhaseDone", s.Phase)
	}
	if s.Current() != nil {
		t.Fatal("Current() non-nil after batch done")
	}

	correct, answered := s.Score()
	if correct != 3 || answered != 3 {
		t.Fatalf("Score() = %d/%d, want 3/3", correct, answered)
	}
}

func TestRegenerateReplacesBatch(t *testing.T) {
	s := newTestSession(problemgen.KindDistance, 2)

	s.Submit(problemgen.Answer{Text: "nonsense"})
	s.Advance()

	s.Regenerate(4)

	if len(s.Problems) != 4 {
		t.Fatalf("batch size = %d after regenerate, want 4", len(s.Problems))
	}
	if s.Index != 0 || s.Phase != PhaseActive {
		t.Fatalf("index=%d phase=%v after regenerate", s.Index, s.Phase)
	}
	if _, answered := s.Score(); answered != 0 {
		t.Fatalf("answered = %d after regenerate, want 0", answered)
	}
}

func TestSummaryAggregation(t *testing.T) {
	s := newTestSession(problemgen.KindFindQuadrant, 4)

	// Two right, one wrong, one skipped selection.
	answers := []string{
		string(s.Problems[0].Quadrant),
		string(s.Problems[1].Quadrant),
		wrongQuadrant(s.Problems[2].Quadrant),
		"",
	}
	for _, a := range answers {
		s.Submit(problemgen.Answer{Selection: a})
		s.Advance()
	}

	sum := BuildSummary(s)
	if sum.Total != 4 || sum.Correct != 2 {
		t.Fatalf("summary = %d/%d, want 2/4", sum.Correct, sum.Total)
	}
	if sum.Accuracy != 0.5 {
		t.Fatalf("accuracy = %v, want 0.5", sum.Accuracy)
	}
	if len(sum.Results) != 4 {
		t.Fatalf("results = %d, want 4", len(sum.Results))
	}
	if sum.Results[3].Verdict.Failure != problemgen.FailureMissing {
		t.Fatalf("skipped selection failure = %q", sum.Results[3].Verdict.Failure)
	}
}

func TestEvaluationOrderIndependent(t *testing.T) {
	s := newTestSession(problemgen.KindIdentifyPoint, 3)

	// Grading one problem must not affect another: evaluate the same
	// problems directly, in reverse, and compare verdicts.
	var direct []problemgen.Verdict
	for i := len(s.Problems) - 1; i >= 0; i-- {
		p := s.Problems[i]
		direct = append(direct, problemgen.EvaluateIdentify(&p, "0", "0"))
	}

	for range s.Problems {
		s.Submit(problemgen.Answer{XText: "0", YText: "0"})
		s.Advance()
	}

	for i := range s.Problems {
		want := direct[len(direct)-1-i]
		if s.Verdicts[i] != want {
			t.Fatalf("problem %d: verdict %+v, want %+v", i, s.Verdicts[i], want)
		}
	}
}

func wrongQuadrant(q geometry.Quadrant) string {
	if q == geometry.QuadrantI {
		return string(geometry.QuadrantII)
	}
	return string(geometry.QuadrantI)
}
