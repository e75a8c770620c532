package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/meteorinca/cartesian/internal/geometry"
	"github.com/meteorinca/cartesian/internal/problemgen"
	"github.com/meteorinca/cartesian/internal/quiz"
	"github.com/meteorinca/cartesian/internal/ui/components"
	"github.com/meteorinca/cartesian/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}

	p := s.session.Current()
	if p == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nBatch complete.")
	}

	var sections []string

	// Progress line.
	done := s.session.Index
	total := len(s.session.Problems)
	bar := components.NewProgressBar(
		fmt.Sprintf("Problem %d/%d", done+1, total),
		float64(done)/float64(total),
		false, 40,
	)
	sections = append(sections, bar.View())

	// Prompt.
	sections = append(sections, theme.Title.Render(p.Prompt()))

	// Grid.
	sections = append(sections, s.renderGrid(p))

	// Answer area or feedback.
	if s.session.Phase == quiz.PhaseFeedback {
		sections = append(sections, s.renderFeedback(p))
	} else {
		sections = append(sections, s.renderAnswerArea(p))
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderGrid draws the plane with whatever the mode reveals: the
// cursor for plotting, the mystery point for identify/quadrant, both
// endpoints for distance.
func (s *PracticeScreen) renderGrid(p *problemgen.Problem) string {
	gv := components.GridView{Transform: s.transform}

	switch p.Kind {
	case problemgen.KindPlotPoint:
		cursor := s.transform.FromCell(s.cursorCol, s.cursorRow)
		gv.Cursor = &cursor
		if s.session.Phase == quiz.PhaseFeedback {
			target := p.Target
			gv.Points = []geometry.Coordinate{target}
		}
	case problemgen.KindIdentifyPoint, problemgen.KindFindQuadrant:
		gv.Points = []geometry.Coordinate{p.Point}
	case problemgen.KindDistance:
		gv.Points = []geometry.Coordinate{p.A, p.B}
	}

	return gv.View()
}

// renderAnswerArea draws the mode-specific input controls.
func (s *PracticeScreen) renderAnswerArea(p *problemgen.Problem) string {
	switch p.Kind {
	case problemgen.KindPlotPoint:
		pos := s.transform.FromCell(s.cursorCol, s.cursorRow)
		return theme.Body.Render("Cursor at ") + theme.Selected.Render(pos.String())
	case problemgen.KindIdentifyPoint:
		return theme.Body.Render("x: ") + s.xInput.View() + "   " +
			theme.Body.Render("y: ") + s.yInput.View()
	case problemgen.KindFindQuadrant:
		return s.picker.View()
	case problemgen.KindDistance:
		return theme.Body.Render("Distance: ") + s.xInput.View()
	}
	return ""
}

// renderFeedback draws the verdict for the answer just submitted.
func (s *PracticeScreen) renderFeedback(p *problemgen.Problem) string {
	v := s.lastVerdict

	var headline string
	if v.Correct {
		headline = theme.Correct.Render("Correct!")
	} else {
		headline = theme.Incorrect.Render(feedbackHeadline(v))
	}

	lines := []string{headline}

	if !v.Correct {
		lines = append(lines,
			theme.Body.Render("The answer was ")+theme.Selected.Render(v.Canonical))
	}
	if p.Kind == problemgen.KindIdentifyPoint {
		lines = append(lines, axisMarks(v))
	}
	lines = append(lines, theme.Hint.Render("press any key to continue"))

	return theme.Card.Render(strings.Join(lines, "\n"))
}

// feedbackHeadline picks the message for a missed answer. Missing and
// unparsable input get their own wording so the learner knows the
// value never graded.
func feedbackHeadline(v problemgen.Verdict) string {
	switch v.Failure {
	case problemgen.FailureMissing:
		return "No answer given"
	case problemgen.FailureUnparsable:
		return "That's not a number"
	default:
		return "Not quite"
	}
}

// axisMarks renders the independent x/y grades of an identify answer.
func axisMarks(v problemgen.Verdict) string {
	return theme.Body.Render("x ") + markGlyph(v.XMark) +
		theme.Body.Render("   y ") + markGlyph(v.YMark)
}

func markGlyph(m problemgen.FieldMark) string {
	switch m {
	case problemgen.MarkCorrect:
		return theme.Correct.Render("✓")
	case problemgen.MarkMissing:
		return theme.Incorrect.Render("∅")
	case problemgen.MarkUnparsable:
		return theme.Incorrect.Render("?")
	default:
		return theme.Incorrect.Render("✗")
	}
}

func renderQuitConfirm(width, height int) string {
	card := theme.Card.Render(
		theme.Body.Render("Leave this batch?") + "\n" +
			theme.Hint.Render("Unanswered problems are discarded.") + "\n\n" +
			theme.Selected.Render("Y") + theme.Body.Render(" yes    ") +
			theme.Selected.Render("N") + theme.Body.Render(" no"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
