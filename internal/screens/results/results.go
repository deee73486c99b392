package results

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/daxquiz/internal/quiz"
	"github.com/abhisek/daxquiz/internal/report"
	"github.com/abhisek/daxquiz/internal/router"
	"github.com/abhisek/daxquiz/internal/screen"
	"github.com/abhisek/daxquiz/internal/ui/layout"
	"github.com/abhisek/daxquiz/internal/ui/theme"
)

const maxReportWidth = 96

// ResultsScreen displays an evaluated Result.
type ResultsScreen struct {
	result *quiz.Result
	retake func() screen.Screen
	offset int
	keys   keyMap
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Back   key.Binding
	Retake key.Binding
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. retake builds a fresh quiz screen; it may
// be nil, which disables retaking.
func New(result *quiz.Result, retake func() screen.Screen) *ResultsScreen {
	keys := keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Scroll")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Back:   key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("Esc", "Change answers")),
		Retake: key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Retake")),
	}
	keys.Retake.SetEnabled(retake != nil)

	return &ResultsScreen{
		result: result,
		retake: retake,
		keys:   keys,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) Status() string {
	return fmt.Sprintf("%d/%d correct", s.result.CorrectCount, s.result.TotalCount)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(s.keys.Up, s.keys.Back, s.keys.Retake)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Up):
		if s.offset > 0 {
			s.offset--
		}
	case key.Matches(kmsg, s.keys.Down):
		s.offset++
	case key.Matches(kmsg, s.keys.Back):
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case key.Matches(kmsg, s.keys.Retake):
		fresh := s.retake()
		return s, func() tea.Msg { return router.ResetScreenMsg{Screen: fresh} }
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.result == nil {
		return ""
	}

	reportWidth := min(width-4, maxReportWidth)
	body := theme.Title.Render("Your results") + "\n\n" + report.Render(s.result, reportWidth)
	page := lipgloss.PlaceHorizontal(width, lipgloss.Center, body)

	visible, offset := layout.Window(page, s.offset, height)
	s.offset = offset
	return visible
}
