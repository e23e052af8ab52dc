package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/marketmarket/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ marketmarket: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "marketmarket",
		Short: "МаркетМаркет - classified ads browser",
		Long: `marketmarket serves a classified-ads catalog through a search box,
a category filter, favorites and a profile page.

It runs either as a terminal UI (browse) or as a JSON API whose sessions
each keep their own search, category, favorites and active tab (serve).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		newServeCmd(),
		newBrowseCmd(),
		newListCmd(),
		newVersionCmd(),
	)
	return root
}

// loadConfig turns the configuration panics on invalid settings into an error.
func loadConfig() (cfg *config.Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid configuration: %v", r)
		}
	}()
	return config.Load(), nil
}
