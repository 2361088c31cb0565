package cli

import (
	"os"

	"github.com/ChintyaPuja/technical/internal/utils"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ids, err := parseIDs(args)
		if err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}

		env := mustOpen()
		product, ok := env.catalog.Get(ids[0])
		if !ok {
			utils.PrintError("Product %d not found", ids[0])
			os.Exit(1)
		}
		renderProduct(cmd.OutOrStdout(), product)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
