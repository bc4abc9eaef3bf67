package cmd

import (
	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List one page of catalog products",
		Example: `  product-browser products
  product-browser products --page 3 --limit 10
  product-browser products --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListProducts(cmd.Context(), page, limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}
			return printProductsTable(resp)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")
	cmd.Flags().IntVar(&limit, "limit", 0, "products per page (0 = server default)")

	return cmd
}
