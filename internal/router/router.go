package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/daxquiz/internal/screen"
)

// PushScreenMsg shows Screen on top of the current one, e.g. the results
// of an evaluation over the quiz that produced them.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg returns to the screen below the active one.
type PopScreenMsg struct{}

// ResetScreenMsg drops every screen and starts over with Screen as the
// only one, e.g. a retake with a fresh session.
type ResetScreenMsg struct {
	Screen screen.Screen
}

// Router owns the screen stack. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a Router with root as the bottom screen.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push shows s on top and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop drops the active screen. The screen it uncovers is resumed if it
// implements screen.Resumer. No-op at the bottom of the stack.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]

	if rs, ok := r.Active().(screen.Resumer); ok {
		return rs.Resume()
	}
	return nil
}

// Reset replaces the whole stack with s and runs its Init.
func (r *Router) Reset(s screen.Screen) tea.Cmd {
	clear(r.stack)
	r.stack = append(r.stack[:0], s)
	return s.Init()
}

// Active returns the screen on top.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update handles navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ResetScreenMsg:
		return r.Reset(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
