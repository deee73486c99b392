// Package report renders an evaluation Result as styled text blocks. The
// TUI results screen and the check command share it.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/daxquiz/internal/quiz"
	"github.com/abhisek/daxquiz/internal/ui/markup"
	"github.com/abhisek/daxquiz/internal/ui/theme"
)

// SkippedMessage is shown for a question with no answer.
const SkippedMessage = "You didn't select an answer for this question."

// Kind classifies a rendered block.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
	KindInfo
	KindWarning
)

// Block is one styled message in the report.
type Block struct {
	Kind Kind
	Text string
}

// Section is the report for a single question.
type Section struct {
	Heading    string
	YourAnswer string // empty when skipped
	Blocks     []Block
}

// Build turns a Result into sections plus the final summary block.
func Build(res *quiz.Result) ([]Section, Block) {
	sections := make([]Section, 0, len(res.Outcomes))
	for _, o := range res.Outcomes {
		sec := Section{Heading: fmt.Sprintf("%d. %s", o.QuestionID, o.Title)}

		switch o.Status {
		case quiz.StatusSkipped:
			sec.Blocks = []Block{{Kind: KindWarning, Text: SkippedMessage}}
		case quiz.StatusCorrect:
			sec.YourAnswer = o.ChosenOption
			sec.Blocks = []Block{{Kind: KindSuccess, Text: o.Explanation}}
		case quiz.StatusIncorrect:
			sec.YourAnswer = o.ChosenOption
			sec.Blocks = []Block{
				{Kind: KindError, Text: o.Explanation},
				{Kind: KindInfo, Text: "**Remember:** " + o.Remember},
			}
		}

		sections = append(sections, sec)
	}

	summary := Block{
		Kind: KindSuccess,
		Text: fmt.Sprintf("🎉 You got **%d / %d** correct.", res.CorrectCount, res.TotalCount),
	}
	return sections, summary
}

// Render draws the full report at the given width.
func Render(res *quiz.Result, width int) string {
	sections, summary := Build(res)
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width, 1)))

	var b strings.Builder
	for _, sec := range sections {
		b.WriteString(rule)
		b.WriteString("\n")
		b.WriteString(RenderSection(sec, width))
		b.WriteString("\n")
	}
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(RenderBlock(summary, width))

	return b.String()
}

// RenderSection draws one question's heading, answer line, and blocks.
func RenderSection(sec Section, width int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render(sec.Heading))
	b.WriteString("\n")

	if sec.YourAnswer != "" {
		b.WriteString(theme.Body.Bold(true).Render("Your answer: "))
		b.WriteString(markup.Render(sec.YourAnswer, theme.Body))
		b.WriteString("\n")
	}

	for i, blk := range sec.Blocks {
		b.WriteString(RenderBlock(blk, width))
		if i < len(sec.Blocks)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderBlock draws a single alert block.
func RenderBlock(blk Block, width int) string {
	style := blockStyle(blk.Kind)
	if width > 4 {
		style = style.Width(width)
	}
	return style.Render(markup.Render(blk.Text, lipgloss.NewStyle().Foreground(style.GetForeground())))
}

func blockStyle(k Kind) lipgloss.Style {
	switch k {
	case KindSuccess:
		return theme.SuccessBlock
	case KindError:
		return theme.ErrorBlock
	case KindInfo:
		return theme.InfoBlock
	default:
		return theme.WarningBlock
	}
}
