package quiz

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/daxquiz/internal/logger"
	qz "github.com/abhisek/daxquiz/internal/quiz"
	"github.com/abhisek/daxquiz/internal/router"
	"github.com/abhisek/daxquiz/internal/screen"
	"github.com/abhisek/daxquiz/internal/screens/results"
	"github.com/abhisek/daxquiz/internal/ui/components"
	"github.com/abhisek/daxquiz/internal/ui/layout"
)

// QuizScreen shows every question on one scrolling page and feeds the
// user's picks into a qz.Session.
type QuizScreen struct {
	set     *qz.QuestionSet
	session *qz.Session
	baseLog *logger.Logger
	log     *logger.Logger
	keys    keyMap

	choices []components.Choice
	button  components.Button

	// focus indexes choices; len(choices) means the submit button.
	focus  int
	offset int
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Resumer = (*QuizScreen)(nil)

// New creates a QuizScreen with a fresh session over set.
func New(set *qz.QuestionSet, log *logger.Logger) *QuizScreen {
	session := qz.NewSession(set)
	s := &QuizScreen{
		set:     set,
		session: session,
		baseLog: log,
		log:     log.With("session", session.ID),
		keys:    defaultKeys(),
	}

	for _, q := range set.All() {
		s.choices = append(s.choices, components.NewChoice(q.ID, q.Options))
	}
	s.button = components.NewButton("Check my answers ✅", false, s.submit)
	s.setFocus(0)

	s.log.Info("session started", "questions", set.Len())
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.set.Title()
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("%d/%d answered", s.session.Answered(), s.set.Len())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	keys := components.DefaultChoiceKeys()
	hints := layout.HintsFromBindings(keys.Up, keys.Pick, keys.Clear, s.keys.Next, s.keys.Submit)
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Resume runs when the results screen is closed. The selection is kept
// so answers can be changed and checked again.
func (s *QuizScreen) Resume() tea.Cmd {
	s.errMsg = ""
	s.offset = 0
	s.setFocus(0)
	s.log.Debug("answers reopened", "answered", s.session.Answered())
	return nil
}

// Session exposes the screen's session.
func (s *QuizScreen) Session() *qz.Session {
	return s.session
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.PickedMsg:
		return s.handlePicked(msg)

	case components.ClearedMsg:
		return s.handleCleared(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Next):
		s.setFocus(s.focus + 1)
		return s, nil
	case key.Matches(msg, s.keys.Prev):
		s.setFocus(s.focus - 1)
		return s, nil
	case key.Matches(msg, s.keys.Submit):
		return s, s.submit()
	}

	var cmd tea.Cmd
	if s.focus == len(s.choices) {
		s.button, cmd = s.button.Update(msg)
		return s, cmd
	}
	s.choices[s.focus], cmd = s.choices[s.focus].Update(msg)
	return s, cmd
}

func (s *QuizScreen) handlePicked(msg components.PickedMsg) (screen.Screen, tea.Cmd) {
	i := s.indexOf(msg.ID)
	if err := s.session.SetAnswer(msg.ID, msg.Option); err != nil {
		s.reportError(err)
		return s, nil
	}
	s.errMsg = ""
	if i >= 0 {
		s.choices[i].Chosen = msg.Option
	}
	s.log.Debug("answer set", "question", msg.ID, "option", msg.Option)

	if i == s.focus {
		s.setFocus(s.focus + 1)
	}
	return s, nil
}

func (s *QuizScreen) handleCleared(msg components.ClearedMsg) (screen.Screen, tea.Cmd) {
	if err := s.session.ClearAnswer(msg.ID); err != nil {
		s.reportError(err)
		return s, nil
	}
	if i := s.indexOf(msg.ID); i >= 0 {
		s.choices[i].Chosen = components.NoChoice
	}
	s.log.Debug("answer cleared", "question", msg.ID)
	return s, nil
}

// reportError surfaces integration errors instead of dropping them.
func (s *QuizScreen) reportError(err error) {
	var invalid *qz.InvalidOptionError
	var notFound *qz.NotFoundError
	switch {
	case errors.As(err, &invalid):
		s.log.Error("invalid option from renderer", "question", invalid.QuestionID, "option", invalid.Option, "options", invalid.NumOptions)
	case errors.As(err, &notFound):
		s.log.Error("unknown question from renderer", "question", notFound.QuestionID)
	default:
		s.log.Error("answer rejected", "error", err)
	}
	s.errMsg = err.Error()
}

// submit evaluates the current answers and shows the results.
func (s *QuizScreen) submit() tea.Cmd {
	res := s.session.Evaluate(s.set)
	s.log.Info("answers evaluated",
		"correct", res.CorrectCount,
		"total", res.TotalCount,
		"skipped", res.SkippedCount())

	set, log := s.set, s.baseLog
	retake := func() screen.Screen { return New(set, log) }
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(res, retake)}
	}
}

func (s *QuizScreen) setFocus(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(s.choices) {
		i = len(s.choices)
	}
	s.focus = i
	for j := range s.choices {
		s.choices[j].Focused = j == i
	}
	s.button.Active = i == len(s.choices)
}

func (s *QuizScreen) indexOf(questionID int) int {
	for i, c := range s.choices {
		if c.ID == questionID {
			return i
		}
	}
	return -1
}
