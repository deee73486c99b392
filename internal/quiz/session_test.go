package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSession(t *testing.T) (*QuestionSet, *Session) {
	t.Helper()
	set, err := Default()
	require.NoError(t, err)
	return set, NewSession(set)
}

func TestEvaluate_AllUnanswered(t *testing.T) {
	set, s := defaultSession(t)

	res := s.Evaluate(set)

	assert.Equal(t, 0, res.CorrectCount)
	assert.Equal(t, set.Len(), res.TotalCount)
	require.Len(t, res.Outcomes, set.Len())
	for _, o := range res.Outcomes {
		assert.True(t, o.Skipped(), "question %d should be skipped", o.QuestionID)
		assert.Equal(t, Unanswered, o.Chosen)
		assert.Empty(t, o.Explanation)
		assert.Empty(t, o.Remember)
	}
	assert.Equal(t, set.Len(), res.SkippedCount())
}

func TestEvaluate_CorrectAnswerForEveryQuestion(t *testing.T) {
	set, _ := defaultSession(t)

	for _, q := range set.All() {
		s := NewSession(set)
		require.NoError(t, s.SetAnswer(q.ID, q.Correct))

		o, ok := s.Evaluate(set).Outcome(q.ID)
		require.True(t, ok)
		assert.True(t, o.IsCorrect(), "question %d", q.ID)
		assert.Equal(t, q.Explanations[q.Correct], o.Explanation)
		assert.Empty(t, o.Remember)
	}
}

func TestEvaluate_WrongAnswerShowsBothExplanations(t *testing.T) {
	set, _ := defaultSession(t)

	for _, q := range set.All() {
		for opt := range q.Options {
			if opt == q.Correct {
				continue
			}
			s := NewSession(set)
			require.NoError(t, s.SetAnswer(q.ID, opt))

			o, _ := s.Evaluate(set).Outcome(q.ID)
			assert.Equal(t, StatusIncorrect, o.Status)
			assert.False(t, o.IsCorrect())
			assert.Equal(t, q.Explanations[opt], o.Explanation)
			assert.Equal(t, q.Explanations[q.Correct], o.Remember)
			assert.Equal(t, q.Options[opt], o.ChosenOption)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	set, s := defaultSession(t)
	require.NoError(t, s.SetAnswer(1, 0))
	require.NoError(t, s.SetAnswer(3, 1))

	first := s.Evaluate(set)
	second := s.Evaluate(set)

	assert.Equal(t, first, second)
}

func TestEvaluate_DoesNotMutateSelection(t *testing.T) {
	set, s := defaultSession(t)
	require.NoError(t, s.SetAnswer(2, 1))
	before := s.Selection()

	s.Evaluate(set)

	assert.Equal(t, before, s.Selection())
}

func TestSetAnswer_LastWriteWins(t *testing.T) {
	set, s := defaultSession(t)
	require.NoError(t, s.SetAnswer(1, 0))
	require.NoError(t, s.SetAnswer(1, 1))

	only := NewSession(set)
	require.NoError(t, only.SetAnswer(1, 1))

	assert.Equal(t, only.Evaluate(set), s.Evaluate(set))
	assert.Equal(t, only.Selection(), s.Selection())
}

func TestSetAnswer_InvalidOption(t *testing.T) {
	_, s := defaultSession(t)

	for _, opt := range []int{-1, 2, 10} {
		err := s.SetAnswer(1, opt)
		var invalid *InvalidOptionError
		require.ErrorAs(t, err, &invalid, "option %d", opt)
		assert.Equal(t, 1, invalid.QuestionID)
		assert.Equal(t, opt, invalid.Option)
		assert.Equal(t, 2, invalid.NumOptions)
	}

	_, answered := s.Answer(1)
	assert.False(t, answered, "invalid option must not be recorded")
}

func TestSetAnswer_UnknownQuestion(t *testing.T) {
	_, s := defaultSession(t)

	var nf *NotFoundError
	require.ErrorAs(t, s.SetAnswer(99, 0), &nf)
	assert.Equal(t, 99, nf.QuestionID)
}

func TestClearAnswer(t *testing.T) {
	set, s := defaultSession(t)
	require.NoError(t, s.SetAnswer(2, 0))
	require.NoError(t, s.ClearAnswer(2))

	_, ok := s.Answer(2)
	assert.False(t, ok)
	o, _ := s.Evaluate(set).Outcome(2)
	assert.True(t, o.Skipped())

	var nf *NotFoundError
	assert.ErrorAs(t, s.ClearAnswer(7), &nf)
}

func TestTotalCountIndependentOfAnswers(t *testing.T) {
	set, s := defaultSession(t)
	assert.Equal(t, 3, s.Evaluate(set).TotalCount)

	require.NoError(t, s.SetAnswer(1, 1))
	assert.Equal(t, 3, s.Evaluate(set).TotalCount)

	require.NoError(t, s.SetAnswer(2, 0))
	require.NoError(t, s.SetAnswer(3, 0))
	assert.Equal(t, 3, s.Evaluate(set).TotalCount)
}

func TestScenario_AllCorrect(t *testing.T) {
	set, s := defaultSession(t)
	require.NoError(t, s.SetAnswer(1, 1))
	require.NoError(t, s.SetAnswer(2, 0))
	require.NoError(t, s.SetAnswer(3, 1))

	res := s.Evaluate(set)

	assert.Equal(t, 3, res.CorrectCount)
	assert.Equal(t, 3, res.TotalCount)
	assert.Equal(t, "You got 3 / 3 correct.", res.Summary())
}

func TestScenario_OneWrongTwoSkipped(t *testing.T) {
	set, s := defaultSession(t)
	require.NoError(t, s.SetAnswer(1, 0))

	res := s.Evaluate(set)

	assert.Equal(t, 0, res.CorrectCount)
	assert.Equal(t, 3, res.TotalCount)

	q1, _ := res.Outcome(1)
	assert.Equal(t, StatusIncorrect, q1.Status)
	assert.NotEmpty(t, q1.Explanation)
	assert.NotEmpty(t, q1.Remember)

	for _, id := range []int{2, 3} {
		o, _ := res.Outcome(id)
		assert.True(t, o.Skipped(), "question %d", id)
	}
	assert.Equal(t, 1, res.IncorrectCount())
	assert.Equal(t, 2, res.SkippedCount())
}

func TestEvaluate_OrderFollowsSet(t *testing.T) {
	set, s := defaultSession(t)
	require.NoError(t, s.SetAnswer(3, 1))
	require.NoError(t, s.SetAnswer(1, 1))

	res := s.Evaluate(set)
	var ids []int
	for _, o := range res.Outcomes {
		ids = append(ids, o.QuestionID)
	}
	assert.Equal(t, set.IDs(), ids)
}

func TestEvaluate_ForeignSetTreatsMisfitAsSkipped(t *testing.T) {
	_, s := defaultSession(t)
	require.NoError(t, s.SetAnswer(1, 1))

	other, err := NewQuestionSet("other", "", []Question{{
		ID:           1,
		Title:        "one option short",
		Options:      []string{"x", "y"},
		Correct:      0,
		Explanations: []string{"x", "y"},
	}, {
		ID:           5,
		Title:        "not in the default set",
		Options:      []string{"x", "y"},
		Correct:      1,
		Explanations: []string{"x", "y"},
	}})
	require.NoError(t, err)

	res := s.Evaluate(other)
	assert.Equal(t, 2, res.TotalCount)
	o1, _ := res.Outcome(1)
	assert.Equal(t, StatusIncorrect, o1.Status)
	o5, _ := res.Outcome(5)
	assert.True(t, o5.Skipped())
}

func TestSessionsAreIsolated(t *testing.T) {
	set, a := defaultSession(t)
	b := NewSession(set)

	require.NoError(t, a.SetAnswer(1, 1))

	_, ok := b.Answer(1)
	assert.False(t, ok)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "skipped", StatusSkipped.String())
	assert.Equal(t, "correct", StatusCorrect.String())
	assert.Equal(t, "incorrect", StatusIncorrect.String())
}
