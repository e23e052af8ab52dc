package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/marketmarket/internal/catalog"
	"github.com/MrSnakeDoc/marketmarket/internal/domain"
	"github.com/MrSnakeDoc/marketmarket/internal/view"
)

type listOptions struct {
	search   string
	category string
	catalog  string
	asJSON   bool
}

func newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the listings matching a search and category",
		Example: `  marketmarket list --category auto
  marketmarket list --search iphone --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.catalog == "" {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				opts.catalog = cfg.CatalogFile
			}
			return runList(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "case-insensitive substring of the title")
	cmd.Flags().StringVarP(&opts.category, "category", "c", string(domain.CategoryAll), "category id")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "catalog yaml (defaults to MARKET_CATALOG_FILE or the embedded seed)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print cards as JSON")
	return cmd
}

func runList(w io.Writer, opts listOptions) error {
	store, err := catalog.Open(opts.catalog)
	if err != nil {
		return err
	}

	state, err := domain.RestoreViewState(opts.search, domain.CategoryID(opts.category), nil)
	if err != nil {
		return err
	}

	grid := view.NewBuilder(nil).ListingsGrid(store.All(), state)

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(grid)
	}

	if grid.Empty != nil {
		_, err := fmt.Fprintf(w, "%s\n%s\n", grid.Empty.Title, grid.Empty.Hint)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tLOCATION\tSELLER")
	for _, c := range grid.Cards {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s (%.1f)\n", c.ID, c.Title, c.PriceText, c.Location, c.SellerName, c.SellerRating)
	}
	return tw.Flush()
}
