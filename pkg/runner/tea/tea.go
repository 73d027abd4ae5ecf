package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/termenv"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/runner/tea/internal/theme"
)

// UI runs the full screen planner.
type UI struct {
	Service *app.Service
}

// Do blocks until the user quits. Unsaved edits are dropped on exit unless
// the user saved them.
func (u *UI) Do(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(u.Service)
	m.ctx = ctx
	m.theme = theme.ForBackground(termenv.HasDarkBackground())
	m.footer = newFooter(m.theme)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
