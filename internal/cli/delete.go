package cli

import (
	"fmt"
	"os"

	"github.com/ChintyaPuja/technical/internal/utils"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id...]",
	Aliases: []string{"rm"},
	Short:   "Delete products",
	Long:    "Deletes the given product ids. With --all-on-page every product on the chosen page (after --search) is deleted as well.",
	Run: func(cmd *cobra.Command, args []string) {
		ids, err := parseIDs(args)
		if err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}

		allOnPage, _ := cmd.Flags().GetBool("all-on-page")
		query, _ := cmd.Flags().GetString("search")
		page, _ := cmd.Flags().GetInt("page")
		yes, _ := cmd.Flags().GetBool("yes")

		if len(ids) == 0 && !allOnPage {
			utils.PrintError("Give at least one product id or --all-on-page")
			os.Exit(1)
		}

		env := mustOpen()
		out := cmd.OutOrStdout()

		selected := selectForDeletion(env, ids, allOnPage, query, page)
		if len(selected) == 0 {
			utils.FprintWarning(out, "No products selected")
			return
		}

		if allOnPage {
			renderPage(out, env.session.Page(), env.session.IsSelected)
		}

		question := fmt.Sprintf("Are you sure you want to delete %d selected product(s)?", len(selected))
		if !yes && !utils.Confirm(cmd.InOrStdin(), out, question) {
			utils.FprintInfo(out, "Aborted")
			return
		}

		n, err := env.session.DeleteSelected()
		if err != nil {
			utils.PrintError("Failed to delete products: %v", err)
			os.Exit(1)
		}
		utils.FprintSuccess(out, "Deleted %d product(s)", n)
	},
}

// selectForDeletion builds the selection from explicit ids and, if asked,
// every product on the given page of the search results. Unknown ids are
// skipped.
func selectForDeletion(env *environment, ids []int64, allOnPage bool, query string, page int) []int64 {
	session := env.session
	session.SelectPage(false)

	if allOnPage {
		session.Search(query)
		session.GoTo(page)
		session.SelectPage(true)
	}
	for _, id := range ids {
		if _, ok := env.catalog.Get(id); !ok {
			continue
		}
		if !session.IsSelected(id) {
			session.Toggle(id)
		}
	}
	return session.Selected()
}

func init() {
	deleteCmd.Flags().Bool("all-on-page", false, "Select every product on the page")
	deleteCmd.Flags().StringP("search", "s", "", "Filter used with --all-on-page")
	deleteCmd.Flags().IntP("page", "p", 1, "Page used with --all-on-page")
	deleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(deleteCmd)
}
