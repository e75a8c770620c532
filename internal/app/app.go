package app

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meteorinca/cartesian/internal/problemgen"
	"github.com/meteorinca/cartesian/internal/router"
	"github.com/meteorinca/cartesian/internal/screen"
	"github.com/meteorinca/cartesian/internal/screens/home"
	"github.com/meteorinca/cartesian/internal/ui/layout"
)

// Options configures the app at startup. Difficulty and Count seed the
// home screen's defaults; Seed pins the random source for reproducible
// batches (0 means time-seeded).
type Options struct {
	Difficulty problemgen.Difficulty
	Count      int
	Seed       int64
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sampler := problemgen.NewSampler(rand.New(rand.NewSource(seed)))

	newGenerator := func(d problemgen.Difficulty) *problemgen.Generator {
		return problemgen.New(problemgen.ProfileFor(d), sampler, problemgen.DefaultConfig())
	}

	homeScreen := home.New(newGenerator, opts.Difficulty, opts.Count)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var correct, answered int
	if sp, ok := active.(screen.ScoreProvider); ok {
		correct, answered = sp.Score()
	}

	header := layout.RenderHeader(title, correct, answered, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
