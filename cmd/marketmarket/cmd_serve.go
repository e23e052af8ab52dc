package main

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/marketmarket/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP JSON API",
		Long: `Starts the HTTP server. Sessions are kept in memory unless
MARKET_SESSION_BACKEND=redis, in which case they are shared through Redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.Run()
		},
	}
}
