package quiz

// Question is a single multiple-choice quiz item.
type Question struct {
	// ID is a unique positive integer; questions are ordered by it.
	ID int

	// Title is the short label shown next to the question number.
	Title string

	// Description is the question body. It may contain markup the
	// renderer understands; the core never inspects it.
	Description string

	// Options are the distinct answer choices, at least two.
	Options []string

	// Correct is the index into Options of the right answer.
	Correct int

	// Explanations holds one explanation per option, indexed like Options.
	Explanations []string
}

// NumOptions returns the number of answer choices.
func (q Question) NumOptions() int {
	return len(q.Options)
}

// ValidOption reports whether i indexes one of the question's options.
func (q Question) ValidOption(i int) bool {
	return i >= 0 && i < len(q.Options)
}

// clone returns a deep copy so callers cannot mutate the set's slices.
func (q Question) clone() Question {
	c := q
	c.Options = append([]string(nil), q.Options...)
	c.Explanations = append([]string(nil), q.Explanations...)
	return c
}
