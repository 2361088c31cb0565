package cli

import (
	"io"

	"github.com/ChintyaPuja/technical/internal/editor"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List products",
	Long:    "Lists products one page at a time, optionally filtered by a case-insensitive search on name or category",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env := mustOpen()

		query, _ := cmd.Flags().GetString("search")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		listProducts(cmd.OutOrStdout(), env, query, page, pageSize)
	},
}

// listProducts renders one page of the (filtered) catalog. Out-of-range pages
// are clamped.
func listProducts(w io.Writer, env *environment, query string, page, pageSize int) editor.PageView {
	session := env.session
	if pageSize > 0 {
		session = editor.New(env.catalog, pageSize)
	}

	session.Search(query)
	session.GoTo(page)
	view := session.Page()
	renderPage(w, view, nil)
	return view
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "Filter by name or category")
	listCmd.Flags().IntP("page", "p", 1, "Page number")
	listCmd.Flags().Int("page-size", 0, "Rows per page (defaults to page_size from the config)")
	rootCmd.AddCommand(listCmd)
}
