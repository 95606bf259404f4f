package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "phantom",
	Short: "The Phantom Ledger cipher challenge",
	Long:  "Phantom Ledger: twenty ciphers across four tiers, a shared pool of lives and a persistent score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides PHANTOM_DB env var)")
	flags.String("player", "", "Wallet address to play as (overrides PHANTOM_PLAYER)")
	flags.String("mode", "", "Question mode: cipher or trivia (overrides PHANTOM_MODE)")
	flags.String("questions", "", "Load questions from a JSON file instead of the built-in set")
	flags.String("redis-addr", "", "Use Redis at this address for progress and questions (overrides PHANTOM_REDIS_ADDR)")
	flags.String("log-file", "", "Write logs to this file (overrides PHANTOM_LOG_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}
