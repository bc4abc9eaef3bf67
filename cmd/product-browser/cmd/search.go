package cmd

import (
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var searchLimit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog for products",
		Example: `  product-browser search phone
  product-browser search "leather wallet" --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().SearchProducts(cmd.Context(), args[0], searchLimit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}
			return printSearchTable(resp)
		},
	}
	cmd.Flags().IntVar(&searchLimit, "limit", 5, "maximum number of results")

	return cmd
}
