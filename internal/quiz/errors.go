package quiz

import (
	"fmt"
	"strings"
)

// MalformedQuestionError indicates question data that violates the
// QuestionSet invariants. It is raised at construction time only.
type MalformedQuestionError struct {
	Problems []string
}

func (e *MalformedQuestionError) Error() string {
	if len(e.Problems) == 1 {
		return "malformed question data: " + e.Problems[0]
	}
	return fmt.Sprintf("malformed question data:\n  %s", strings.Join(e.Problems, "\n  "))
}

// InvalidOptionError indicates an option index outside a question's range.
// It points at a renderer bug, not a user mistake.
type InvalidOptionError struct {
	QuestionID int
	Option     int
	NumOptions int
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("question %d: option %d out of range [0, %d)", e.QuestionID, e.Option, e.NumOptions)
}

// NotFoundError indicates a lookup for a question id the set does not hold.
type NotFoundError struct {
	QuestionID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("question %d not found", e.QuestionID)
}
