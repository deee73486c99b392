// Package markup renders the small markdown subset used in question text
// (bold, inline code, bullet lines) as terminal styles.
package markup

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/daxquiz/internal/ui/theme"
)

// Render styles s with base, turning **bold** and `code` spans into
// terminal styles and "- " list markers into bullets.
func Render(s string, base lipgloss.Style) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " ")
		if rest, ok := strings.CutPrefix(trimmed, "- "); ok {
			lines[i] = base.Render("  • ") + renderInline(rest, base)
			continue
		}
		lines[i] = renderInline(trimmed, base)
	}
	return strings.Join(lines, "\n")
}

// Plain strips markup, keeping the text.
func Plain(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	return strings.ReplaceAll(s, "`", "")
}

// renderInline walks a single line, toggling bold on "**" and code on "`".
// Unterminated spans run to the end of the line.
func renderInline(line string, base lipgloss.Style) string {
	var b strings.Builder
	var seg strings.Builder
	bold, code := false, false

	flush := func() {
		if seg.Len() == 0 {
			return
		}
		style := base
		if code {
			style = theme.Code.Bold(bold)
		} else if bold {
			style = base.Bold(true)
		}
		b.WriteString(style.Render(seg.String()))
		seg.Reset()
	}

	for i := 0; i < len(line); i++ {
		switch {
		case !code && strings.HasPrefix(line[i:], "**"):
			flush()
			bold = !bold
			i++
		case line[i] == '`':
			flush()
			code = !code
		default:
			seg.WriteByte(line[i])
		}
	}
	flush()

	return b.String()
}
