package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meteorinca/cartesian/internal/problemgen"
	"github.com/meteorinca/cartesian/internal/quiz"
	"github.com/meteorinca/cartesian/internal/router"
	"github.com/meteorinca/cartesian/internal/screen"
	"github.com/meteorinca/cartesian/internal/screens/practice"
	"github.com/meteorinca/cartesian/internal/ui/components"
	"github.com/meteorinca/cartesian/internal/ui/layout"
	"github.com/meteorinca/cartesian/internal/ui/theme"
)

const (
	minCount     = 1
	maxCount     = 20
	defaultCount = 5
)

// GeneratorFactory builds a problem generator for a difficulty. The
// home screen defers construction until the learner starts, so the
// chosen difficulty always wins.
type GeneratorFactory func(problemgen.Difficulty) *problemgen.Generator

// HomeScreen is the mode-select screen of the application.
type HomeScreen struct {
	menu       components.Menu
	factory    GeneratorFactory
	difficulty problemgen.Difficulty
	count      int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(factory GeneratorFactory, difficulty problemgen.Difficulty, count int) *HomeScreen {
	if difficulty == "" {
		difficulty = problemgen.DifficultyEasy
	}
	if count < minCount || count > maxCount {
		count = defaultCount
	}

	h := &HomeScreen{
		factory:    factory,
		difficulty: difficulty,
		count:      count,
	}

	labels := map[problemgen.Kind]string{
		problemgen.KindPlotPoint:     "PLOT THE POINT",
		problemgen.KindIdentifyPoint: "NAME THE POINT",
		problemgen.KindFindQuadrant:  "FIND THE QUADRANT",
		problemgen.KindDistance:      "MEASURE THE DISTANCE",
	}

	var items []components.MenuItem
	for _, kind := range problemgen.Kinds() {
		kind := kind
		items = append(items, components.MenuItem{
			Label: labels[kind],
			Action: func() tea.Cmd {
				return h.startSession(kind)
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "QUIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)
	return h
}

// startSession builds a fresh batch and pushes the practice screen.
func (h *HomeScreen) startSession(kind problemgen.Kind) tea.Cmd {
	gen := h.factory(h.difficulty)
	session := quiz.NewSession(kind, h.difficulty, h.count, gen)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: practice.New(session)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Difficulty"},
		{Key: "+/-", Description: "Problems"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			h.difficulty = cycleDifficulty(h.difficulty, -1)
			return h, nil
		case "right", "l":
			h.difficulty = cycleDifficulty(h.difficulty, 1)
			return h, nil
		case "+", "=":
			if h.count < maxCount {
				h.count++
			}
			return h, nil
		case "-", "_":
			if h.count > minCount {
				h.count--
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("C A R T E S I A N")
	subtitle := theme.Subtitle.Render("coordinate plane practice")

	settings := theme.Body.Render("Difficulty: ") +
		theme.Selected.Render(string(h.difficulty)) +
		theme.Body.Render("    Problems: ") +
		theme.Selected.Render(fmt.Sprintf("%d", h.count))

	profile := problemgen.ProfileFor(h.difficulty)
	bounds := theme.Hint.Render(fmt.Sprintf("coordinates from %d to %d", profile.MinCoord, profile.MaxCoord))

	content := strings.Join([]string{
		title,
		subtitle,
		"",
		settings,
		bounds,
		"",
		h.menu.View(),
	}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// cycleDifficulty steps through the presets, wrapping at both ends.
func cycleDifficulty(d problemgen.Difficulty, step int) problemgen.Difficulty {
	all := problemgen.Difficulties()
	for i, cand := range all {
		if cand == d {
			next := (i + step + len(all)) % len(all)
			return all[next]
		}
	}
	return all[0]
}
