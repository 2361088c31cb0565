package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChintyaPuja/technical/internal/editor"
	"github.com/ChintyaPuja/technical/internal/models"
	"github.com/ChintyaPuja/technical/internal/utils"
	"github.com/spf13/cobra"
)

var errProductNotFound = errors.New("product not found")

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a product",
	Long:  "Loads the product into the form, applies the given fields and saves it under the same id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ids, err := parseIDs(args)
		if err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}

		env := mustOpen()
		product, err := editProduct(env, ids[0], func(form *editor.Form) {
			if cmd.Flags().Changed("name") {
				form.Name, _ = cmd.Flags().GetString("name")
			}
			if cmd.Flags().Changed("price") {
				form.Price, _ = cmd.Flags().GetString("price")
			}
			if cmd.Flags().Changed("category") {
				form.Category, _ = cmd.Flags().GetString("category")
			}
		})
		if err != nil {
			utils.PrintError("Failed to edit product: %v", err)
			os.Exit(1)
		}

		utils.FprintSuccess(cmd.OutOrStdout(), "Updated product %d", product.ID)
		renderProduct(cmd.OutOrStdout(), product)
	},
}

// editProduct pre-populates the form from the stored product, lets apply
// change fields, and submits it
func editProduct(env *environment, id int64, apply func(*editor.Form)) (models.Product, error) {
	product, ok := env.catalog.Get(id)
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %d", errProductNotFound, id)
	}

	env.session.RequestEdit(product)
	form := env.session.EditForm()
	if apply != nil {
		apply(&form)
	}
	return env.session.Submit(form)
}

func init() {
	editCmd.Flags().StringP("name", "n", "", "New product name")
	editCmd.Flags().StringP("price", "p", "", "New product price")
	editCmd.Flags().StringP("category", "k", "", "New product category")
	rootCmd.AddCommand(editCmd)
}
