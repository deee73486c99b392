package cmd

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/daxquiz/internal/quiz"
)

func singleQuestionSet(t *testing.T, title string) *quiz.QuestionSet {
	t.Helper()
	set, err := quiz.NewQuestionSet("Wide", "", []quiz.Question{{
		ID:           1,
		Title:        title,
		Options:      []string{"SUM", "SUMX"},
		Correct:      1,
		Explanations: []string{"no", "yes"},
	}})
	require.NoError(t, err)
	return set
}

func tableRow(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "   1  ") {
			return line
		}
	}
	t.Fatalf("no row for question 1 in:\n%s", out)
	return ""
}

func TestWriteQuestionTable_WideTitleTruncatedByWidth(t *testing.T) {
	title := strings.Repeat("Σ × ÷ ", 15)
	var out bytes.Buffer
	writeQuestionTable(&out, singleQuestionSet(t, title))

	require.True(t, utf8.ValidString(out.String()), "output split a rune")

	row := tableRow(t, out.String())
	assert.Contains(t, row, "...")
	// ID(4) + gap(2) + title(50) + gap(2) + options(7) + gap(2) + answer(1)
	assert.Equal(t, 68, ansi.StringWidth(row))
	assert.True(t, strings.HasSuffix(row, "B"), "row = %q", row)
}

func TestWriteQuestionTable_ShortTitlePadded(t *testing.T) {
	var out bytes.Buffer
	writeQuestionTable(&out, singleQuestionSet(t, "Σ of a column"))

	row := tableRow(t, out.String())
	assert.NotContains(t, row, "...")
	assert.Equal(t, 68, ansi.StringWidth(row))
}

func TestWriteQuestionTable_Count(t *testing.T) {
	var out bytes.Buffer
	writeQuestionTable(&out, singleQuestionSet(t, "Only one"))
	assert.True(t, strings.HasSuffix(out.String(), "\n1 question\n"), "got %q", out.String())

	set, err := quiz.Default()
	require.NoError(t, err)
	out.Reset()
	writeQuestionTable(&out, set)
	assert.True(t, strings.HasSuffix(out.String(), "\n3 questions\n"), "got %q", out.String())
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 questions"},
		{1, "1 question"},
		{2, "2 questions"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pluralize(tt.n, "question", "questions"))
	}
}
