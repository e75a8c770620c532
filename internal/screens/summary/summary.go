package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meteorinca/cartesian/internal/problemgen"
	"github.com/meteorinca/cartesian/internal/quiz"
	"github.com/meteorinca/cartesian/internal/router"
	"github.com/meteorinca/cartesian/internal/screen"
	"github.com/meteorinca/cartesian/internal/ui/layout"
	"github.com/meteorinca/cartesian/internal/ui/theme"
)

// PracticeFactory rebuilds a practice screen for a session. Injected
// by the practice package so the two screens can hand off in both
// directions without importing each other.
type PracticeFactory func(*quiz.Session) screen.Screen

// SummaryScreen shows the final score for a finished batch.
type SummaryScreen struct {
	summary  *quiz.Summary
	session  *quiz.Session
	practice PracticeFactory
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen. The session is kept so "play again"
// can regenerate a fresh batch with the same mode and difficulty.
func New(summary *quiz.Summary, session *quiz.Session, practice PracticeFactory) *SummaryScreen {
	return &SummaryScreen{summary: summary, session: session, practice: practice}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "P", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc", "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "p", "P":
		return s, s.playAgain()
	}
	return s, nil
}

// playAgain regenerates the batch and swaps back to a practice screen.
func (s *SummaryScreen) playAgain() tea.Cmd {
	if s.practice == nil {
		return nil
	}
	s.session.Regenerate(len(s.session.Problems))
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s.practice(s.session)}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	title := theme.Title.Render("Batch complete!")
	score := theme.Body.Render("Score: ") +
		theme.Selected.Render(fmt.Sprintf("%d/%d", sum.Correct, sum.Total)) +
		theme.Hint.Render(fmt.Sprintf("  (%.0f%%)", sum.Accuracy*100))

	var rows []string
	for i, r := range sum.Results {
		glyph := theme.Incorrect.Render("✗")
		if r.Verdict.Correct {
			glyph = theme.Correct.Render("✓")
		}
		detail := theme.Hint.Render(fmt.Sprintf("answer: %s", r.Canonical))
		if note := failureNote(r.Verdict.Failure); note != "" && !r.Verdict.Correct {
			detail += theme.Hint.Render("  " + note)
		}
		rows = append(rows, fmt.Sprintf("%s %2d. %s  %s", glyph, i+1, theme.Body.Render(r.Prompt), detail))
	}

	content := strings.Join([]string{
		title,
		"",
		score,
		"",
		strings.Join(rows, "\n"),
	}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// failureNote annotates non-graded outcomes so a missing answer reads
// differently from a wrong one.
func failureNote(f problemgen.Failure) string {
	switch f {
	case problemgen.FailureMissing:
		return "(no answer)"
	case problemgen.FailureUnparsable:
		return "(not a number)"
	default:
		return ""
	}
}
