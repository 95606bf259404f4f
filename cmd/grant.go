package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var grantCmd = &cobra.Command{
	Use:   "grant <address> [lives]",
	Short: "Add lives to a player's record",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 2 {
			v, err := strconv.Atoi(args[1])
			if err != nil || v <= 0 {
				return fmt.Errorf("lives must be a positive number, got %q", args[1])
			}
			n = v
		}

		ctx := cmd.Context()
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.store.GrantLives(ctx, args[0], n); err != nil {
			return fmt.Errorf("grant lives: %w", err)
		}
		p, err := d.store.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("reload progress: %w", err)
		}
		d.log.Info("granted lives", "player_id", args[0], "lives", n)
		fmt.Fprintf(cmd.OutOrStdout(), "Granted %d. Lives now: %d\n", n, p.Lives)
		return nil
	},
}
