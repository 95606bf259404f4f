package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/phantomledger/internal/bank"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upload the question set to the Redis collection for the current mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if d.redis == nil {
			return errors.New("seed needs a Redis address: pass --redis-addr or set PHANTOM_REDIS_ADDR")
		}

		var catalog *bank.Catalog
		if d.cfg.QuestionsFile != "" {
			catalog, err = bank.FileSource{Path: d.cfg.QuestionsFile}.Load(ctx)
		} else {
			catalog, err = bank.ForMode(d.cfg.Mode)
		}
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}

		src := bank.RedisSource{Client: d.redis, Collection: d.cfg.Mode}
		if err := src.Save(ctx, catalog); err != nil {
			return fmt.Errorf("seed collection: %w", err)
		}
		d.log.Info("seeded question collection", "collection", d.cfg.Mode, "questions", catalog.Len())
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d questions into %q\n", catalog.Len(), d.cfg.Mode)
		return nil
	},
}
