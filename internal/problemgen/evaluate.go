package problemgen

import (
	"errors"
	"math"

	"github.com/meteorinca/cartesian/internal/geometry"
)

// distanceTolerance is the acceptance window for distance answers.
// It is deliberately an order of magnitude looser than epsilon: learners
// typically round square roots by hand, so anything within 0.1 passes.
const distanceTolerance = 0.1

// epsilon is the general tolerance for float comparisons where only
// representation noise is expected.
const epsilon = 0.01

// Failure classifies why an answer did not grade as correct.
type Failure string

const (
	// FailureNone: the answer was correct.
	FailureNone Failure = ""

	// FailureMissing: a required field or selection was left empty.
	FailureMissing Failure = "missing"

	// FailureUnparsable: text was entered but is not a number.
	FailureUnparsable Failure = "unparsable"

	// FailureWrong: a valid answer that does not match the stored one.
	FailureWrong Failure = "wrong"
)

// FieldMark grades a single free-text field of a multi-field answer.
type FieldMark string

const (
	MarkCorrect    FieldMark = "correct"
	MarkWrong      FieldMark = "wrong"
	MarkMissing    FieldMark = "missing"
	MarkUnparsable FieldMark = "unparsable"
)

// Verdict is the structured result of grading one answer. Evaluators
// always return a Verdict, never an error: missing and unparsable input
// are verdict states, not failures of the evaluator.
type Verdict struct {
	// Correct is the overall pass/fail result.
	Correct bool

	// Failure classifies the miss when Correct is false.
	Failure Failure

	// Canonical is the stored correct answer in display form, for
	// feedback regardless of outcome.
	Canonical string

	// XMark and YMark carry the per-axis grades for identify-point
	// answers, where each axis is graded independently.
	XMark FieldMark
	YMark FieldMark
}

// Answer is the learner's input for one problem, snapshotted by the UI
// controller at submit time. Only the fields relevant to the problem's
// kind are read.
type Answer struct {
	// Plotted is the grid position chosen for a plot-point problem,
	// already snapped to integers and clamped to the display range by
	// the input layer. Nil when nothing was plotted.
	Plotted *geometry.Coordinate

	// XText and YText are the free-text fields of an identify-point answer.
	XText string
	YText string

	// Selection is the chosen quadrant label for a find-quadrant
	// problem. Empty string means no selection was made.
	Selection string

	// Text is the free-text field of a distance answer.
	Text string
}

// Evaluate grades an answer snapshot against its problem. Dispatches on
// the problem's kind; evaluators are independent and side-effect free,
// so problems in a batch can be graded in any order.
func Evaluate(p *Problem, ans Answer) Verdict {
	switch p.Kind {
	case KindPlotPoint:
		if ans.Plotted == nil {
			return Verdict{Failure: FailureMissing, Canonical: p.CanonicalAnswer()}
		}
		return EvaluatePlot(p, *ans.Plotted)
	case KindIdentifyPoint:
		return EvaluateIdentify(p, ans.XText, ans.YText)
	case KindFindQuadrant:
		return EvaluateQuadrant(p, ans.Selection)
	case KindDistance:
		return EvaluateDistance(p, ans.Text)
	default:
		return Verdict{Failure: FailureWrong}
	}
}

// EvaluatePlot grades a plotted coordinate by exact integer equality
// with the target. No tolerance: adjacent grid points are wrong.
func EvaluatePlot(p *Problem, plotted geometry.Coordinate) Verdict {
	v := Verdict{Canonical: p.Target.String()}
	if plotted == p.Target {
		v.Correct = true
		return v
	}
	v.Failure = FailureWrong
	return v
}

// EvaluateIdentify grades the two coordinate fields of an
// identify-point answer. Each axis is parsed and graded independently;
// the overall verdict is correct only when both axes are. A missing or
// unparsable field is reported per axis, distinct from a wrong value.
func EvaluateIdentify(p *Problem, xText, yText string) Verdict {
	v := Verdict{
		Canonical: p.Point.String(),
		XMark:     gradeField(xText, p.Point.X),
		YMark:     gradeField(yText, p.Point.Y),
	}

	if v.XMark == MarkCorrect && v.YMark == MarkCorrect {
		v.Correct = true
		return v
	}

	// Input failures take precedence over wrong values in the overall
	// classification.
	switch {
	case v.XMark == MarkMissing || v.YMark == MarkMissing:
		v.Failure = FailureMissing
	case v.XMark == MarkUnparsable || v.YMark == MarkUnparsable:
		v.Failure = FailureUnparsable
	default:
		v.Failure = FailureWrong
	}
	return v
}

// gradeField parses one coordinate field and compares it to the stored
// integer component by exact equality ("3", "3.0" and "+3" all match 3).
func gradeField(text string, want int) FieldMark {
	val, err := ParseNumber(text)
	switch {
	case errors.Is(err, ErrMissing):
		return MarkMissing
	case errors.Is(err, ErrUnparsable):
		return MarkUnparsable
	case val == float64(want):
		return MarkCorrect
	default:
		return MarkWrong
	}
}

// EvaluateQuadrant grades a quadrant selection by exact label match.
// An empty selection is a missing answer, not a wrong one.
func EvaluateQuadrant(p *Problem, selection string) Verdict {
	v := Verdict{Canonical: string(p.Quadrant)}
	switch {
	case selection == "":
		v.Failure = FailureMissing
	case selection == string(p.Quadrant):
		v.Correct = true
	default:
		v.Failure = FailureWrong
	}
	return v
}

// EvaluateDistance grades a distance answer against the stored value.
// Accepts anything within distanceTolerance of the stored two-decimal
// distance.
func EvaluateDistance(p *Problem, text string) Verdict {
	v := Verdict{Canonical: FormatDistance(p.Distance)}
	val, err := ParseNumber(text)
	switch {
	case errors.Is(err, ErrMissing):
		v.Failure = FailureMissing
	case errors.Is(err, ErrUnparsable):
		v.Failure = FailureUnparsable
	case math.Abs(val-p.Distance) < distanceTolerance:
		v.Correct = true
	default:
		v.Failure = FailureWrong
	}
	return v
}

// Score tallies a batch of verdicts into correct and total counts.
// Only fully-correct verdicts count; identify-point answers earn no
// partial credit beyond their per-axis marks.
func Score(verdicts []Verdict) (correct, total int) {
	for _, v := range verdicts {
		if v.Correct {
			correct++
		}
	}
	return correct, len(verdicts)
}
