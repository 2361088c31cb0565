package cli

import (
	"os"

	"github.com/ChintyaPuja/technical/internal/editor"
	"github.com/ChintyaPuja/technical/internal/utils"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	Long:  "Adds a product with a freshly generated id",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env := mustOpen()

		name, _ := cmd.Flags().GetString("name")
		price, _ := cmd.Flags().GetString("price")
		category, _ := cmd.Flags().GetString("category")

		product, err := env.session.Submit(editor.Form{Name: name, Price: price, Category: category})
		if err != nil {
			utils.PrintError("Failed to add product: %v", err)
			os.Exit(1)
		}

		utils.FprintSuccess(cmd.OutOrStdout(), "Added product %d", product.ID)
		renderProduct(cmd.OutOrStdout(), product)
	},
}

func init() {
	addCmd.Flags().StringP("name", "n", "", "Product name (required)")
	addCmd.Flags().StringP("price", "p", "", "Product price, blank means 0")
	addCmd.Flags().StringP("category", "k", "", "Product category")
	_ = addCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(addCmd)
}
