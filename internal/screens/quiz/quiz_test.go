package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/daxquiz/internal/logger"
	qz "github.com/abhisek/daxquiz/internal/quiz"
	"github.com/abhisek/daxquiz/internal/router"
	"github.com/abhisek/daxquiz/internal/screens/results"
	"github.com/abhisek/daxquiz/internal/ui/components"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuizScreen(t *testing.T) *QuizScreen {
	t.Helper()
	set, err := qz.Default()
	if err != nil {
		t.Fatalf("load default set: %v", err)
	}
	return New(set, logger.Nop())
}

// press sends a key and feeds any resulting message back to the screen,
// the way the router would.
func press(s *QuizScreen, msg tea.Msg) tea.Msg {
	_, cmd := s.Update(msg)
	if cmd == nil {
		return nil
	}
	out := cmd()
	switch out.(type) {
	case components.PickedMsg, components.ClearedMsg:
		s.Update(out)
	}
	return out
}

func TestQuizScreen_Initial(t *testing.T) {
	s := testQuizScreen(t)

	if s.Title() != qz.DefaultTitle {
		t.Errorf("Title = %q, want %q", s.Title(), qz.DefaultTitle)
	}
	if s.Status() != "0/3 answered" {
		t.Errorf("Status = %q, want %q", s.Status(), "0/3 answered")
	}
	if s.focus != 0 {
		t.Errorf("focus = %d, want 0", s.focus)
	}
	if !s.choices[0].Focused {
		t.Error("first question should be focused")
	}
	if s.button.Active {
		t.Error("button should not be active initially")
	}
	if s.Session().ID == "" {
		t.Error("session should have an id")
	}
}

func TestQuizScreen_DigitPicksAndAdvances(t *testing.T) {
	s := testQuizScreen(t)

	msg := press(s, keyPress('2'))
	picked, ok := msg.(components.PickedMsg)
	if !ok {
		t.Fatalf("expected PickedMsg, got %T", msg)
	}
	if picked.ID != 1 || picked.Option != 1 {
		t.Errorf("picked = %+v, want {ID:1 Option:1}", picked)
	}

	if got, ok := s.Session().Answer(1); !ok || got != 1 {
		t.Errorf("Answer(1) = %d, %v; want 1, true", got, ok)
	}
	if s.choices[0].Chosen != 1 {
		t.Errorf("Chosen = %d, want 1", s.choices[0].Chosen)
	}
	if s.focus != 1 {
		t.Errorf("focus = %d, want 1 after pick", s.focus)
	}
	if s.Status() != "1/3 answered" {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestQuizScreen_CursorAndEnterPick(t *testing.T) {
	s := testQuizScreen(t)

	press(s, specialKey(tea.KeyDown))
	if s.choices[0].Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", s.choices[0].Cursor)
	}
	press(s, specialKey(tea.KeyEnter))

	if got, ok := s.Session().Answer(1); !ok || got != 1 {
		t.Errorf("Answer(1) = %d, %v; want 1, true", got, ok)
	}
}

func TestQuizScreen_Repick(t *testing.T) {
	s := testQuizScreen(t)

	press(s, keyPress('1'))
	press(s, keyPress('h'))
	press(s, keyPress('2'))

	if got, _ := s.Session().Answer(1); got != 1 {
		t.Errorf("Answer(1) = %d, want 1 (last write wins)", got)
	}
	if s.Status() != "1/3 answered" {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestQuizScreen_Clear(t *testing.T) {
	s := testQuizScreen(t)

	press(s, keyPress('1'))
	press(s, keyPress('h'))
	msg := press(s, keyPress('x'))
	if _, ok := msg.(components.ClearedMsg); !ok {
		t.Fatalf("expected ClearedMsg, got %T", msg)
	}

	if _, ok := s.Session().Answer(1); ok {
		t.Error("question 1 should be unanswered after clear")
	}
	if s.choices[0].Chosen != components.NoChoice {
		t.Errorf("Chosen = %d, want NoChoice", s.choices[0].Chosen)
	}
}

func TestQuizScreen_FocusNavigation(t *testing.T) {
	s := testQuizScreen(t)

	for i := 0; i < 10; i++ {
		press(s, specialKey(tea.KeyTab))
	}
	if s.focus != len(s.choices) {
		t.Errorf("focus = %d, want %d (button)", s.focus, len(s.choices))
	}
	if !s.button.Active {
		t.Error("button should be active when focused")
	}

	for i := 0; i < 10; i++ {
		press(s, keyPress('h'))
	}
	if s.focus != 0 {
		t.Errorf("focus = %d, want 0", s.focus)
	}
	if s.button.Active {
		t.Error("button should be inactive")
	}
}

func TestQuizScreen_InvalidOptionSurfaced(t *testing.T) {
	s := testQuizScreen(t)

	s.Update(components.PickedMsg{ID: 1, Option: 7})

	if s.errMsg == "" {
		t.Fatal("invalid option should set an error message")
	}
	if !strings.Contains(s.errMsg, "option 7 out of range") {
		t.Errorf("errMsg = %q", s.errMsg)
	}
	if _, ok := s.Session().Answer(1); ok {
		t.Error("selection must not change on an invalid option")
	}
	if !strings.Contains(s.View(100, 200), "option 7 out of range") {
		t.Error("view should show the error")
	}

	press(s, keyPress('1'))
	if s.errMsg != "" {
		t.Errorf("errMsg should clear after a valid pick, got %q", s.errMsg)
	}
}

func TestQuizScreen_UnknownQuestionSurfaced(t *testing.T) {
	s := testQuizScreen(t)

	s.Update(components.PickedMsg{ID: 42, Option: 0})
	if !strings.Contains(s.errMsg, "question 42 not found") {
		t.Errorf("errMsg = %q", s.errMsg)
	}
}

func TestQuizScreen_SubmitPushesResults(t *testing.T) {
	s := testQuizScreen(t)

	// 1→1, 2→0, 3→1 answers everything correctly.
	press(s, keyPress('2'))
	press(s, keyPress('1'))
	press(s, keyPress('2'))

	msg := press(s, keyPress('c'))
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	rs, ok := push.Screen.(*results.ResultsScreen)
	if !ok {
		t.Fatalf("expected ResultsScreen, got %T", push.Screen)
	}
	if rs.Status() != "3/3 correct" {
		t.Errorf("results Status = %q, want %q", rs.Status(), "3/3 correct")
	}
}

func TestQuizScreen_SubmitWithSkipped(t *testing.T) {
	s := testQuizScreen(t)

	press(s, keyPress('1'))
	msg := press(s, keyPress('c'))
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if got := push.Screen.(*results.ResultsScreen).Status(); got != "0/3 correct" {
		t.Errorf("results Status = %q, want %q", got, "0/3 correct")
	}

	// Evaluation leaves the selection in place for another attempt.
	if got, ok := s.Session().Answer(1); !ok || got != 0 {
		t.Errorf("Answer(1) = %d, %v; want 0, true", got, ok)
	}
}

func TestQuizScreen_ButtonSubmits(t *testing.T) {
	s := testQuizScreen(t)

	for i := 0; i < len(s.choices); i++ {
		press(s, specialKey(tea.KeyTab))
	}
	msg := press(s, specialKey(tea.KeyEnter))
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg from button, got %T", msg)
	}
}

func TestQuizScreen_View(t *testing.T) {
	s := testQuizScreen(t)

	view := s.View(100, 200)
	for _, want := range []string{"SUM vs SUMX", "A)", "B)", "Check my answers"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuizScreen_ViewFitsHeight(t *testing.T) {
	s := testQuizScreen(t)

	for i := 0; i < len(s.choices); i++ {
		press(s, specialKey(tea.KeyTab))
	}
	view := s.View(100, 12)
	if got := strings.Count(view, "\n") + 1; got != 12 {
		t.Errorf("view has %d lines, want 12", got)
	}
	if !strings.Contains(view, "Check my answers") {
		t.Error("focused button should be scrolled into view")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := testQuizScreen(t)

	hints := s.KeyHints()
	if len(hints) == 0 {
		t.Fatal("expected key hints")
	}
	last := hints[len(hints)-1]
	if last.Key != "Ctrl+C" {
		t.Errorf("last hint = %q, want Ctrl+C", last.Key)
	}
}

func TestQuizScreen_ResumeKeepsAnswers(t *testing.T) {
	s := testQuizScreen(t)

	press(s, keyPress('2'))
	press(s, keyPress('1'))
	s.Update(components.PickedMsg{ID: 3, Option: 9})
	press(s, keyPress('c'))

	if cmd := s.Resume(); cmd != nil {
		t.Error("Resume should not return a command")
	}
	if s.focus != 0 || !s.choices[0].Focused {
		t.Errorf("focus = %d, want first question after resume", s.focus)
	}
	if s.errMsg != "" {
		t.Errorf("errMsg = %q, want cleared after resume", s.errMsg)
	}
	if s.Status() != "2/3 answered" {
		t.Errorf("Status = %q, want %q", s.Status(), "2/3 answered")
	}
}
