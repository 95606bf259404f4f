package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/phantomledger/internal/bank"
	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/store"
)

// recentEvents is how many log entries stats prints.
const recentEvents = 10

var statsCmd = &cobra.Command{
	Use:   "stats [address]",
	Short: "Show a player's lives, scores and recent activity",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		playerID, err := d.player(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		p, err := d.store.Get(ctx, playerID)
		switch {
		case errors.Is(err, progress.ErrNotFound):
			fmt.Fprintln(out, progress.Welcome(nil))
			return nil
		case err != nil:
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Fprintln(out, progress.Welcome(p))
		s := p.Stats()
		fmt.Fprintf(out, "Current tier: %s\n", s.CurrentTier.Name())
		fmt.Fprintf(out, "Questions per game: %d\n", s.QuestionsPerGame)
		if p.Complete() {
			fmt.Fprintf(out, "Rank: %s\n", bank.Rank(p.HighestScore))
		}

		if d.events == nil {
			return nil
		}
		events, err := d.events.Recent(ctx, playerID, store.QueryOpts{Limit: recentEvents})
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}
		printEvents(out, events)
		return nil
	},
}

func printEvents(out io.Writer, events []store.Event) {
	if len(events) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent activity:")
	for _, e := range events {
		line := fmt.Sprintf("  %s  %-9s", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Kind)
		if e.QuestionID != "" {
			line += "  " + e.QuestionID
		}
		if e.Amount != 0 {
			line += fmt.Sprintf("  %+d", e.Amount)
		}
		fmt.Fprintln(out, line)
	}
}
