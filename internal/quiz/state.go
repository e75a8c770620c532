package quiz

import (
	"github.com/google/uuid"

	"github.com/meteorinca/cartesian/internal/problemgen"
)

// Phase represents where the session is in its lifecycle.
type Phase int

const (
	PhaseActive   Phase = iota // serving problems
	PhaseFeedback              // showing the verdict for the last answer
	PhaseDone                  // batch finished, summary available
)

// Session is the controller for one generated batch. The active mode
// and difficulty live here, scoped to the session rather than shared
// process-wide. Problems are read-only once generated; regenerating
// replaces the batch wholesale and discards unsubmitted answers.
type Session struct {
	// ID identifies this batch, e.g. for log lines and test fixtures.
	ID string

	// Mode selects which generator/evaluator pair the session uses.
	Mode problemgen.Kind

	// Difficulty names the active preset.
	Difficulty problemgen.Difficulty

	// Problems is the current batch, generated up front.
	Problems []problemgen.Problem

	// Verdicts holds the grading result per problem. Entries stay zero
	// until the matching problem is answered.
	Verdicts []problemgen.Verdict

	// Answered marks which problems have been submitted.
	Answered []bool

	// Index is the problem currently being worked.
	Index int

	// Phase is the session lifecycle phase.
	Phase Phase

	generator *problemgen.Generator
}

// NewSession generates a fresh batch and returns its controller.
func NewSession(mode problemgen.Kind, difficulty problemgen.Difficulty, count int, gen *problemgen.Generator) *Session {
	s := &Session{
		ID:         uuid.New().String(),
		Mode:       mode,
		Difficulty: difficulty,
		generator:  gen,
	}
	s.Regenerate(count)
	return s
}

// Regenerate replaces the batch with count fresh problems and resets
// all answer state. The previous batch and any in-flight answers are
// simply discarded.
func (s *Session) Regenerate(count int) {
	s.Problems = s.generator.Batch(s.Mode, count)
	s.Verdicts = make([]problemgen.Verdict, len(s.Problems))
	s.Answered = make([]bool, len(s.Problems))
	s.Index = 0
	s.Phase = PhaseActive
}

// Current returns the problem being worked, or nil when the batch is done.
func (s *Session) Current() *problemgen.Problem {
	if s.Index < 0 || s.Index >= len(s.Problems) {
		return nil
	}
	return &s.Problems[s.Index]
}

// Submit grades the answer snapshot for the current problem and moves
// the session into the feedback phase. Returns the verdict.
func (s *Session) Submit(ans problemgen.Answer) problemgen.Verdict {
	p := s.Current()
	if p == nil {
		return problemgen.Verdict{}
	}
	v := problemgen.Evaluate(p, ans)
	s.Verdicts[s.Index] = v
	s.Answered[s.Index] = true
	s.Phase = PhaseFeedback
	return v
}

// Advance moves to the next problem after feedback. Returns false when
// the batch is exhausted, in which case the session is done.
func (s *Session) Advance() bool {
	s.Index++
	if s.Index >= len(s.Problems) {
		s.Phase = PhaseDone
		return false
	}
	s.Phase = PhaseActive
	return true
}

// Score returns the running correct and answered counts.
func (s *Session) Score() (correct, answered int) {
	for i, done := range s.Answered {
		if !done {
			continue
		}
		answered++
		if s.Verdicts[i].Correct {
			correct++
		}
	}
	return correct, answered
}
