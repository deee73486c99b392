package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("Tab", "Next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
		Submit: key.NewBinding(key.WithKeys("c"), key.WithHelp("C", "Check answers")),
	}
}
