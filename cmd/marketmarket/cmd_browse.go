package main

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/marketmarket/internal/app"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Browse(cmd.Context(), cfg)
		},
	}
}
