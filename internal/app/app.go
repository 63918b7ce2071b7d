package app

import (
	"context"
	"fmt"

	"github.com/lowpass/chime/internal/api"
	"github.com/lowpass/chime/internal/config"
	"github.com/lowpass/chime/internal/prefs"
	"github.com/lowpass/chime/internal/state"
	"github.com/lowpass/chime/internal/ui"
)

// Options configure the Chime application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/chime/prefs.toml
	PageSize   int    // zero uses the configured page size
}

// Run boots the Chime TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	client, err := api.NewClient(cfg.APIURL, cfg.APIToken)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	pageSize := cfg.PageSize
	if opts.PageSize > 0 {
		pageSize = opts.PageSize
	}

	store := state.NewStore()
	dispatcher := state.NewDispatcher(ctx, store)
	tracks := ui.NewSavedTracksModel(store, dispatcher, client, pageSize)

	return ui.Run(ctx, store, dispatcher, tracks, userPrefs.Theme, userPrefs.AutoscrollEnabled())
}
