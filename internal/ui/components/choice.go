package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/daxquiz/internal/ui/markup"
	"github.com/abhisek/daxquiz/internal/ui/theme"
)

// NoChoice marks a Choice with nothing picked.
const NoChoice = -1

// PickedMsg reports that the user picked an option in a Choice.
type PickedMsg struct {
	ID     int
	Option int
}

// ClearedMsg reports that the user cleared a Choice.
type ClearedMsg struct {
	ID int
}

// ChoiceKeyMap holds the bindings a Choice responds to.
type ChoiceKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Pick  key.Binding
	Clear key.Binding
}

// DefaultChoiceKeys returns the standard single-choice bindings.
func DefaultChoiceKeys() ChoiceKeyMap {
	return ChoiceKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Option")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		Pick:  key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Pick")),
		Clear: key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("X", "Clear")),
	}
}

// Choice is a single-choice selector. It only reports picks; the owner
// decides whether to accept them and sets Chosen accordingly.
type Choice struct {
	ID      int
	Options []string
	Cursor  int
	Chosen  int
	Focused bool
	Keys    ChoiceKeyMap
}

// NewChoice creates a Choice with nothing picked.
func NewChoice(id int, options []string) Choice {
	return Choice{
		ID:      id,
		Options: options,
		Chosen:  NoChoice,
		Keys:    DefaultChoiceKeys(),
	}
}

// Update handles cursor movement and emits PickedMsg / ClearedMsg.
// Digit keys pick an option directly.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if !c.Focused {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(kmsg, c.Keys.Up):
		if c.Cursor > 0 {
			c.Cursor--
		}
	case key.Matches(kmsg, c.Keys.Down):
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case key.Matches(kmsg, c.Keys.Pick):
		return c, c.pick(c.Cursor)
	case key.Matches(kmsg, c.Keys.Clear):
		id := c.ID
		return c, func() tea.Msg { return ClearedMsg{ID: id} }
	default:
		if n, err := strconv.Atoi(kmsg.String()); err == nil && n >= 1 && n <= len(c.Options) {
			c.Cursor = n - 1
			return c, c.pick(n - 1)
		}
	}

	return c, nil
}

func (c Choice) pick(option int) tea.Cmd {
	id := c.ID
	return func() tea.Msg { return PickedMsg{ID: id, Option: option} }
}

// View renders the options as a radio list.
func (c Choice) View() string {
	var b strings.Builder

	for i, opt := range c.Options {
		prefix := "  "
		if c.Focused && i == c.Cursor {
			prefix = "▸ "
		}
		radio := "( )"
		if i == c.Chosen {
			radio = "(•)"
		}

		label := fmt.Sprintf("%s%s %s)  ", prefix, radio, OptionLabel(i))
		style := theme.Unselected
		switch {
		case c.Focused && i == c.Cursor:
			style = theme.Selected
		case i == c.Chosen:
			style = theme.Chosen
		}

		b.WriteString(style.Render(label) + markup.Render(opt, style))
		if i < len(c.Options)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// OptionLabel returns the letter shown for option i ("A", "B", ...).
func OptionLabel(i int) string {
	if i < 0 || i >= 26 {
		return strconv.Itoa(i + 1)
	}
	return string(rune('A' + i))
}
