package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lowpass/chime/internal/app"
)

var version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	var opts app.Options

	root := &cobra.Command{
		Use:           "chime",
		Short:         "Browse and play your saved music library from the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	root.Flags().StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "override preferences path (optional)")
	root.Flags().IntVar(&opts.PageSize, "page-size", 0, "songs fetched per page (optional)")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "chime: %v\n", err)
		return 1
	}
	return 0
}
