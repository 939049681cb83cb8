// Package cli implements the pulsedash command line client for the
// analytics API.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pulsedash",
		Short: "CLI tool for the player analytics API",
		Long: `pulsedash is a CLI tool for interacting with the player analytics JSON API.

It supports listing and filtering snapshots, reading the population summary,
creating and seeding snapshots, and streaming live refresh events.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewClient(cfg.ServerURL)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: PULSEDASH_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
