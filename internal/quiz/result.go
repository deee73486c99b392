package quiz

import "fmt"

// Status is the grading outcome of a single question.
type Status int

const (
	StatusSkipped   Status = iota // No answer recorded
	StatusCorrect                 // Chosen option is the right one
	StatusIncorrect               // Chosen option is wrong
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is the graded result for one question.
type Outcome struct {
	QuestionID int
	Title      string

	// Chosen is the selected option index, or Unanswered.
	Chosen       int
	ChosenOption string

	Status Status

	// Explanation belongs to the chosen option; empty when skipped.
	Explanation string

	// Remember is the correct option's explanation, set only on a miss.
	Remember string
}

// IsCorrect reports whether the chosen option was the right one.
func (o Outcome) IsCorrect() bool { return o.Status == StatusCorrect }

// Skipped reports whether the question had no answer.
func (o Outcome) Skipped() bool { return o.Status == StatusSkipped }

// Result is the report produced by an evaluation.
type Result struct {
	Outcomes     []Outcome
	CorrectCount int
	TotalCount   int
}

// Outcome returns the outcome for a question id.
func (r *Result) Outcome(questionID int) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.QuestionID == questionID {
			return o, true
		}
	}
	return Outcome{}, false
}

// SkippedCount returns the number of unanswered questions.
func (r *Result) SkippedCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Skipped() {
			n++
		}
	}
	return n
}

// IncorrectCount returns the number of wrongly answered questions.
func (r *Result) IncorrectCount() int {
	return r.TotalCount - r.CorrectCount - r.SkippedCount()
}

// Summary returns the final score line.
func (r *Result) Summary() string {
	return fmt.Sprintf("You got %d / %d correct.", r.CorrectCount, r.TotalCount)
}
