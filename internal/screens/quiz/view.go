package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/daxquiz/internal/ui/components"
	"github.com/abhisek/daxquiz/internal/ui/layout"
	"github.com/abhisek/daxquiz/internal/ui/markup"
	"github.com/abhisek/daxquiz/internal/ui/theme"
)

const maxPageWidth = 96

// View renders the page and scrolls it so the focused block is visible.
func (s *QuizScreen) View(width, height int) string {
	pageWidth := min(width-4, maxPageWidth)

	var blocks []string
	blocks = append(blocks, s.renderIntro(pageWidth))

	questions := s.set.All()
	for i, q := range questions {
		style := theme.Card
		if i == s.focus {
			style = theme.FocusedCard
		}

		var b strings.Builder
		b.WriteString(theme.Heading.Render(fmt.Sprintf("%d. %s", q.ID, markup.Plain(q.Title))))
		b.WriteString("\n")
		if q.Description != "" {
			b.WriteString(markup.Render(strings.TrimSpace(q.Description), theme.Body))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(s.choices[i].View())

		blocks = append(blocks, style.Width(pageWidth).Render(b.String()))
	}

	footer := s.button.View()
	if s.errMsg != "" {
		footer += "\n\n" + theme.ErrorBlock.Render("Error: "+s.errMsg)
	}
	blocks = append(blocks, footer)

	// Track where each block starts so the focused one can be kept in view.
	starts := make([]int, len(blocks))
	line := 0
	for i, blk := range blocks {
		starts[i] = line
		line += lipgloss.Height(blk) + 1
	}

	// blocks[0] is the intro, so question i is blocks[i+1].
	focused := s.focus + 1
	focusStart := starts[focused]
	focusEnd := focusStart + lipgloss.Height(blocks[focused])
	if s.focus == 0 {
		s.offset = 0
	}
	if focusEnd > s.offset+height {
		s.offset = focusEnd - height
	}
	if focusStart < s.offset {
		s.offset = focusStart
	}

	page := lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(blocks, "\n\n"))
	visible, offset := layout.Window(page, s.offset, height)
	s.offset = offset
	return visible
}

func (s *QuizScreen) renderIntro(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("📊 " + s.set.Title()))
	if intro := s.set.Intro(); intro != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Render(markup.Render(intro, theme.Body)))
	}
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("Answered", s.session.Answered(), s.set.Len(), width).View())
	return lipgloss.NewStyle().Width(width).Render(b.String())
}
