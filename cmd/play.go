package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/phantomledger/internal/app"
	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/screens/home"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session against the Ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	playerID, err := d.player(nil)
	if err != nil {
		return err
	}
	catalog, err := d.catalog(ctx)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	_, err = d.store.Get(ctx, playerID)
	firstVisit := errors.Is(err, progress.ErrNotFound)
	if err != nil && !firstVisit {
		d.log.Warn("could not load player record", "player_id", playerID, "error", err)
	}

	d.log.Info("starting session UI", "player_id", playerID, "mode", d.cfg.Mode, "questions", catalog.Len())
	return app.Run(app.Options{
		Home: home.Options{
			PlayerID:  playerID,
			Store:     d.store,
			Events:    d.events,
			NewEngine: d.engineFactory(playerID, catalog),
		},
		Intro: firstVisit,
	})
}
