package quiz

import "fmt"

// validateQuestions checks every QuestionSet invariant and returns all
// problems found, or nil if the questions are well formed.
func validateQuestions(questions []Question) []string {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "question set is empty")
	}

	seen := make(map[int]bool, len(questions))
	for i, q := range questions {
		prefix := fmt.Sprintf("question %d", q.ID)
		if q.ID <= 0 {
			errs = append(errs, fmt.Sprintf("entry %d: id must be positive, got %d", i, q.ID))
		} else if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question id: %d", q.ID))
		}
		seen[q.ID] = true

		if q.Title == "" {
			errs = append(errs, prefix+": title is empty")
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(q.Options)))
		}

		opts := make(map[string]bool, len(q.Options))
		for j, opt := range q.Options {
			if opt == "" {
				errs = append(errs, fmt.Sprintf("%s: option %d is empty", prefix, j))
			}
			if opts[opt] {
				errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, opt))
			}
			opts[opt] = true
		}

		if len(q.Explanations) != len(q.Options) {
			errs = append(errs, fmt.Sprintf("%s: %d explanations for %d options",
				prefix, len(q.Explanations), len(q.Options)))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("%s: correct index %d out of range [0, %d)",
				prefix, q.Correct, len(q.Options)))
		}
	}

	return errs
}
