package quiz

import (
	"maps"

	"github.com/google/uuid"
)

// Unanswered is the Outcome.Chosen value for a skipped question.
const Unanswered = -1

// Selection maps question ids to the chosen option index. A missing key
// means the question is unanswered.
type Selection map[int]int

// Session tracks one user's in-progress answers against a QuestionSet.
// A Session is owned by a single user and is not safe for concurrent use;
// run one Session per connected user.
type Session struct {
	// ID identifies the session in logs.
	ID string

	set       *QuestionSet
	selection Selection
}

// NewSession starts a session with every question unanswered.
func NewSession(set *QuestionSet) *Session {
	return &Session{
		ID:        uuid.New().String(),
		set:       set,
		selection: make(Selection),
	}
}

// Set returns the QuestionSet the session was started with.
func (s *Session) Set() *QuestionSet {
	return s.set
}

// SetAnswer records or overwrites the chosen option for a question.
func (s *Session) SetAnswer(questionID, option int) error {
	q, ok := s.set.lookup(questionID)
	if !ok {
		return &NotFoundError{QuestionID: questionID}
	}
	if !q.ValidOption(option) {
		return &InvalidOptionError{
			QuestionID: questionID,
			Option:     option,
			NumOptions: q.NumOptions(),
		}
	}
	s.selection[questionID] = option
	return nil
}

// ClearAnswer resets a question to unanswered.
func (s *Session) ClearAnswer(questionID int) error {
	if _, ok := s.set.lookup(questionID); !ok {
		return &NotFoundError{QuestionID: questionID}
	}
	delete(s.selection, questionID)
	return nil
}

// Answer returns the current choice for a question and whether one exists.
func (s *Session) Answer(questionID int) (int, bool) {
	opt, ok := s.selection[questionID]
	return opt, ok
}

// Answered returns the number of questions with a recorded choice.
func (s *Session) Answered() int {
	return len(s.selection)
}

// Selection returns a snapshot of the current answers.
func (s *Session) Selection() Selection {
	return maps.Clone(s.selection)
}

// Evaluate grades the current selection against set. It never mutates the
// session and returns an equal Result on repeated calls with unchanged
// answers.
func (s *Session) Evaluate(set *QuestionSet) *Result {
	return Evaluate(set, s.selection)
}

// Evaluate grades a selection against a question set. Choices that do not
// fit the set are reported as skipped.
func Evaluate(set *QuestionSet, sel Selection) *Result {
	res := &Result{
		Outcomes:   make([]Outcome, 0, set.Len()),
		TotalCount: set.Len(),
	}

	for i := range set.questions {
		q := &set.questions[i]
		out := Outcome{
			QuestionID: q.ID,
			Title:      q.Title,
			Chosen:     Unanswered,
			Status:     StatusSkipped,
		}

		chosen, ok := sel[q.ID]
		if ok && q.ValidOption(chosen) {
			out.Chosen = chosen
			out.ChosenOption = q.Options[chosen]
			out.Explanation = q.Explanations[chosen]
			if chosen == q.Correct {
				out.Status = StatusCorrect
				res.CorrectCount++
			} else {
				out.Status = StatusIncorrect
				out.Remember = q.Explanations[q.Correct]
			}
		}

		res.Outcomes = append(res.Outcomes, out)
	}

	return res
}
