package quiz

import "slices"

// QuestionSet is an ordered, immutable collection of questions. It is safe
// to share between goroutines once constructed.
type QuestionSet struct {
	title     string
	intro     string
	questions []Question
	byID      map[int]int
}

// NewQuestionSet validates the questions and builds a set ordered by
// ascending id. Any invariant violation yields a *MalformedQuestionError
// listing every problem found.
func NewQuestionSet(title, intro string, questions []Question) (*QuestionSet, error) {
	if problems := validateQuestions(questions); len(problems) > 0 {
		return nil, &MalformedQuestionError{Problems: problems}
	}

	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = q.clone()
	}
	slices.SortFunc(qs, func(a, b Question) int { return a.ID - b.ID })

	byID := make(map[int]int, len(qs))
	for i, q := range qs {
		byID[q.ID] = i
	}

	return &QuestionSet{
		title:     title,
		intro:     intro,
		questions: qs,
		byID:      byID,
	}, nil
}

// Title returns the quiz title.
func (s *QuestionSet) Title() string { return s.title }

// Intro returns the text shown above the first question.
func (s *QuestionSet) Intro() string { return s.intro }

// Len returns the number of questions.
func (s *QuestionSet) Len() int { return len(s.questions) }

// Get returns the question with the given id.
func (s *QuestionSet) Get(id int) (Question, error) {
	i, ok := s.byID[id]
	if !ok {
		return Question{}, &NotFoundError{QuestionID: id}
	}
	return s.questions[i].clone(), nil
}

// All returns a copy of every question in ascending id order.
func (s *QuestionSet) All() []Question {
	out := make([]Question, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.clone()
	}
	return out
}

// IDs returns the question ids in set order.
func (s *QuestionSet) IDs() []int {
	ids := make([]int, len(s.questions))
	for i, q := range s.questions {
		ids[i] = q.ID
	}
	return ids
}

// lookup returns the stored question without copying. Callers must not
// modify the returned slices.
func (s *QuestionSet) lookup(id int) (*Question, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.questions[i], true
}
