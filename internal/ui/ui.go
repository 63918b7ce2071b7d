package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lowpass/chime/internal/state"
)

// Run starts the terminal UI and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, store *state.Store, dispatcher *state.AsyncDispatcher, tracks *SavedTracksModel, themeName string, autoscroll bool) error {
	model := NewModel(store, dispatcher, tracks, themeName, autoscroll)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
