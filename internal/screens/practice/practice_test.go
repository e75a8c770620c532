package practice

import (
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/meteorinca/cartesian/internal/problemgen"
	"github.com/meteorinca/cartesian/internal/quiz"
	"github.com/meteorinca/cartesian/internal/router"
	"github.com/meteorinca/cartesian/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen(t *testing.T, mode problemgen.Kind, count int) (*PracticeScreen, *quiz.Session) {
	t.Helper()
	profile := problemgen.ProfileFor(problemgen.DifficultyMedium)
	gen := problemgen.New(profile, problemgen.NewSampler(rand.New(rand.NewSource(21))), problemgen.DefaultConfig())
	session := quiz.NewSession(mode, problemgen.DifficultyMedium, count, gen)
	return New(session), session
}

func TestPlotSubmitGradesCursorPosition(t *testing.T) {
	scr, session := newTestScreen(t, problemgen.KindPlotPoint, 1)

	// Two cells right is one world unit with 2-column cells.
	var s screen.Screen = scr
	s, _ = s.Update(specialKey(tea.KeyRight))
	s, _ = s.Update(specialKey(tea.KeyRight))
	s, _ = s.Update(specialKey(tea.KeyUp))

	ps := s.(*PracticeScreen)
	cursor := ps.transform.FromCell(ps.cursorCol, ps.cursorRow)
	if cursor.X != 1 || cursor.Y != 1 {
		t.Fatalf("cursor at %v, want (1, 1)", cursor)
	}

	s, _ = s.Update(specialKey(tea.KeyEnter))

	if session.Phase != quiz.PhaseFeedback {
		t.Fatalf("phase = %v after submit", session.Phase)
	}
	p := &session.Problems[0]
	want := problemgen.EvaluatePlot(p, cursor)
	if session.Verdicts[0] != want {
		t.Fatalf("verdict = %+v, want %+v", session.Verdicts[0], want)
	}
}

func TestCursorStaysInsideGrid(t *testing.T) {
	scr, _ := newTestScreen(t, problemgen.KindPlotPoint, 1)

	var s screen.Screen = scr
	for i := 0; i < 200; i++ {
		s, _ = s.Update(specialKey(tea.KeyLeft))
	}
	ps := s.(*PracticeScreen)
	if !ps.transform.Contains(ps.cursorCol, ps.cursorRow) {
		t.Fatalf("cursor escaped the grid: (%d, %d)", ps.cursorCol, ps.cursorRow)
	}
	c := ps.transform.FromCell(ps.cursorCol, ps.cursorRow)
	if c.X != -6 {
		t.Fatalf("cursor world x = %d, want clamped -6", c.X)
	}
}

func TestQuadrantNoSelectionIsMissing(t *testing.T) {
	scr, session := newTestScreen(t, problemgen.KindFindQuadrant, 1)

	var s screen.Screen = scr
	s, _ = s.Update(specialKey(tea.KeyEnter))

	v := session.Verdicts[0]
	if v.Correct {
		t.Fatal("empty selection graded correct")
	}
	if v.Failure != problemgen.FailureMissing {
		t.Fatalf("failure = %q, want missing", v.Failure)
	}
}

func TestQuadrantNumberKeySelects(t *testing.T) {
	scr, session := newTestScreen(t, problemgen.KindFindQuadrant, 1)

	var s screen.Screen = scr
	s, _ = s.Update(keyPress('2'))
	s, _ = s.Update(specialKey(tea.KeyEnter))

	p := &session.Problems[0]
	want := problemgen.EvaluateQuadrant(p, "II")
	if session.Verdicts[0] != want {
		t.Fatalf("verdict = %+v, want %+v", session.Verdicts[0], want)
	}
}

func TestIdentifyEmptyFieldsGradeMissing(t *testing.T) {
	scr, session := newTestScreen(t, problemgen.KindIdentifyPoint, 1)

	var s screen.Screen = scr
	s, _ = s.Update(specialKey(tea.KeyEnter))

	v := session.Verdicts[0]
	if v.Failure != problemgen.FailureMissing {
		t.Fatalf("failure = %q, want missing", v.Failure)
	}
	if v.XMark != problemgen.MarkMissing || v.YMark != problemgen.MarkMissing {
		t.Fatalf("marks = %q/%q, want missing/missing", v.XMark, v.YMark)
	}
}

func TestFeedbackDismissAdvancesBatch(t *testing.T) {
	scr, session := newTestScreen(t, problemgen.KindFindQuadrant, 2)

	var s screen.Screen = scr
	s, _ = s.Update(specialKey(tea.KeyEnter)) // submit problem 1
	s, _ = s.Update(keyPress(' '))            // dismiss feedback

	if session.Index != 1 {
		t.Fatalf("index = %d after dismiss, want 1", session.Index)
	}
	if session.Phase != quiz.PhaseActive {
		t.Fatalf("phase = %v, want PhaseActive", session.Phase)
	}
}

func TestLastFeedbackReplacesWithSummary(t *testing.T) {
	scr, session := newTestScreen(t, problemgen.KindFindQuadrant, 1)

	var s screen.Screen = scr
	s, _ = s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(keyPress(' '))

	if cmd == nil {
		t.Fatal("no command after final dismiss")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("msg = %T, want router.ReplaceScreenMsg", msg)
	}
	if session.Phase != quiz.PhaseDone {
		t.Fatalf("phase = %v, want PhaseDone", session.Phase)
	}
}

func TestEscConfirmsBeforeLeaving(t *testing.T) {
	scr, _ := newTestScreen(t, problemgen.KindPlotPoint, 1)

	var s screen.Screen = scr
	s, _ = s.Update(specialKey(tea.KeyEscape))
	ps := s.(*PracticeScreen)
	if !ps.confirmQuit {
		t.Fatal("esc did not raise the confirm dialog")
	}

	s, _ = s.Update(keyPress('n'))
	ps = s.(*PracticeScreen)
	if ps.confirmQuit {
		t.Fatal("'n' did not cancel the confirm dialog")
	}

	s, _ = s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("'y' produced no command")
	}
	if msg := cmd(); msg != (router.PopScreenMsg{}) {
		t.Fatalf("msg = %T, want router.PopScreenMsg", msg)
	}
}

func TestRegenerateKeyReplacesBatch(t *testing.T) {
	scr, session := newTestScreen(t, problemgen.KindPlotPoint, 3)

	var s screen.Screen = scr
	s, _ = s.Update(specialKey(tea.KeyEnter)) // answer one
	s, _ = s.Update(keyPress(' '))            // dismiss
	s, _ = s.Update(keyPress('r'))

	if session.Index != 0 {
		t.Fatalf("index = %d after regenerate, want 0", session.Index)
	}
	if _, answered := session.Score(); answered != 0 {
		t.Fatalf("answered = %d after regenerate, want 0", answered)
	}
}
