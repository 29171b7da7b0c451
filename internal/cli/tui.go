package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/courtside/internal/tui"
)

func runTUI(s *Session, start string) error {
	app := tui.NewApp(tui.Deps{
		Backend:    s.Backend,
		News:       s.News,
		Images:     s.Images,
		Router:     s.Router,
		Normalizer: s.Normalizer,
		Log:        s.Log,
		Start:      start,
	})

	s.Log.Info("tui start", "path", start)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
