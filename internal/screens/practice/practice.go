package practice

import (
	tea "charm.land/bubbletea/v2"

	"github.com/meteorinca/cartesian/internal/geometry"
	"github.com/meteorinca/cartesian/internal/grid"
	"github.com/meteorinca/cartesian/internal/problemgen"
	"github.com/meteorinca/cartesian/internal/quiz"
	"github.com/meteorinca/cartesian/internal/router"
	"github.com/meteorinca/cartesian/internal/screen"
	"github.com/meteorinca/cartesian/internal/screens/summary"
	"github.com/meteorinca/cartesian/internal/ui/components"
	"github.com/meteorinca/cartesian/internal/ui/layout"
)

// focusedField identifies which identify-point input has focus.
type focusedField int

const (
	focusX focusedField = iota
	focusY
)

// PracticeScreen runs one batch of problems. The answer being built is
// kept here, on the controller, and snapshotted into a
// problemgen.Answer only at submit time.
type PracticeScreen struct {
	session *quiz.Session

	// transform maps the grid cells of the current problem's range.
	transform grid.Transform

	// cursorCol/cursorRow track the plot-mode cursor in cell space.
	// The snapped world position is derived through the transform, so
	// submission always goes through the same snap-and-clamp path a
	// pointer click would.
	cursorCol int
	cursorRow int

	xInput  components.TextInput
	yInput  components.TextInput
	focused focusedField
	picker  components.QuadrantPicker

	lastVerdict problemgen.Verdict
	confirmQuit bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.ScoreProvider = (*PracticeScreen)(nil)

// New creates a practice screen for an already-generated session.
func New(session *quiz.Session) *PracticeScreen {
	s := &PracticeScreen{session: session}
	s.setupProblem()
	return s
}

// setupProblem resets the per-problem input state.
func (s *PracticeScreen) setupProblem() {
	p := s.session.Current()
	if p == nil {
		return
	}

	s.transform = grid.NewTransform(p.Range)
	s.cursorCol, s.cursorRow = s.transform.ToCell(geometry.Coordinate{})

	switch p.Kind {
	case problemgen.KindIdentifyPoint:
		s.xInput = components.NewTextInput("x", true, 6)
		s.yInput = components.NewTextInput("y", true, 6)
		s.focused = focusX
		s.yInput.Blur()
	case problemgen.KindDistance:
		s.xInput = components.NewTextInput("distance", true, 8)
	case problemgen.KindFindQuadrant:
		s.picker = components.NewQuadrantPicker()
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	p := s.session.Current()
	if p == nil {
		return nil
	}
	switch p.Kind {
	case problemgen.KindIdentifyPoint, problemgen.KindDistance:
		return s.xInput.Init()
	}
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// Score feeds the running tally into the header.
func (s *PracticeScreen) Score() (correct, answered int) {
	return s.session.Score()
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave batch"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.session.Phase == quiz.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}

	hints := []layout.KeyHint{}
	if p := s.session.Current(); p != nil {
		switch p.Kind {
		case problemgen.KindPlotPoint:
			hints = append(hints, layout.KeyHint{Key: "↑↓←→", Description: "Move"})
		case problemgen.KindIdentifyPoint:
			hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Switch field"})
		case problemgen.KindFindQuadrant:
			hints = append(hints, layout.KeyHint{Key: "1-4", Description: "Choose"})
		}
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Submit"},
		layout.KeyHint{Key: "R", Description: "New batch"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forwardToInput(msg)
	}
	key := kmsg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	// Feedback overlay: any key moves on.
	if s.session.Phase == quiz.PhaseFeedback {
		return s.dismissFeedback()
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submit()
	}

	p := s.session.Current()
	if p == nil {
		return s, nil
	}

	// Regenerate is only available where it cannot eat a typed "r".
	if key == "r" || key == "R" {
		switch p.Kind {
		case problemgen.KindPlotPoint, problemgen.KindFindQuadrant:
			s.session.Regenerate(len(s.session.Problems))
			s.setupProblem()
			return s, s.Init()
		}
	}

	switch p.Kind {
	case problemgen.KindPlotPoint:
		return s.moveCursor(key)
	case problemgen.KindIdentifyPoint:
		if key == "tab" || key == "shift+tab" {
			s.toggleFocus()
			return s, nil
		}
		return s.forwardToInput(msg)
	case problemgen.KindFindQuadrant:
		var cmd tea.Cmd
		s.picker, cmd = s.picker.Update(msg)
		return s, cmd
	case problemgen.KindDistance:
		return s.forwardToInput(msg)
	}

	return s, nil
}

// moveCursor shifts the plot cursor one cell, staying inside the grid.
func (s *PracticeScreen) moveCursor(key string) (screen.Screen, tea.Cmd) {
	col, row := s.cursorCol, s.cursorRow
	switch key {
	case "left", "h":
		col--
	case "right", "l":
		col++
	case "up", "k":
		row--
	case "down", "j":
		row++
	default:
		return s, nil
	}
	if s.transform.Contains(col, row) {
		s.cursorCol, s.cursorRow = col, row
	}
	return s, nil
}

func (s *PracticeScreen) toggleFocus() {
	if s.focused == focusX {
		s.focused = focusY
		s.xInput.Blur()
		s.yInput.Focus()
	} else {
		s.focused = focusX
		s.yInput.Blur()
		s.xInput.Focus()
	}
}

// forwardToInput routes a message to whichever text input has focus.
func (s *PracticeScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	p := s.session.Current()
	if p == nil || s.session.Phase != quiz.PhaseActive {
		return s, nil
	}

	var cmd tea.Cmd
	switch p.Kind {
	case problemgen.KindIdentifyPoint:
		if s.focused == focusX {
			s.xInput, cmd = s.xInput.Update(msg)
		} else {
			s.yInput, cmd = s.yInput.Update(msg)
		}
	case problemgen.KindDistance:
		s.xInput, cmd = s.xInput.Update(msg)
	}
	return s, cmd
}

// answerSnapshot captures the learner's current input as a value object.
func (s *PracticeScreen) answerSnapshot(p *problemgen.Problem) problemgen.Answer {
	switch p.Kind {
	case problemgen.KindPlotPoint:
		plotted := s.transform.FromCell(s.cursorCol, s.cursorRow)
		return problemgen.Answer{Plotted: &plotted}
	case problemgen.KindIdentifyPoint:
		return problemgen.Answer{XText: s.xInput.Value(), YText: s.yInput.Value()}
	case problemgen.KindFindQuadrant:
		return problemgen.Answer{Selection: s.picker.Value()}
	case problemgen.KindDistance:
		return problemgen.Answer{Text: s.xInput.Value()}
	}
	return problemgen.Answer{}
}

// submit grades the current answer and shows feedback.
func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	p := s.session.Current()
	if p == nil {
		return s, nil
	}

	ans := s.answerSnapshot(p)
	s.lastVerdict = s.session.Submit(ans)

	if p.Kind == problemgen.KindIdentifyPoint {
		s.xInput.Submit(s.lastVerdict.XMark == problemgen.MarkCorrect)
		s.yInput.Submit(s.lastVerdict.YMark == problemgen.MarkCorrect)
	}

	return s, nil
}

// dismissFeedback advances past the feedback overlay, pushing the
// summary when the batch is done.
func (s *PracticeScreen) dismissFeedback() (screen.Screen, tea.Cmd) {
	if s.session.Advance() {
		s.setupProblem()
		return s, s.Init()
	}

	sum := quiz.BuildSummary(s.session)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, s.session, func(sess *quiz.Session) screen.Screen {
			return New(sess)
		})}
	}
}
