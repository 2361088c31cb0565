package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ChintyaPuja/technical/internal/editor"
	"github.com/ChintyaPuja/technical/internal/models"
	"github.com/shopspring/decimal"
)

// renderPage prints the visible rows as a table followed by the page footer
func renderPage(w io.Writer, page editor.PageView, selected func(int64) bool) {
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " \tID\tNAME\tPRICE\tCATEGORY")
	for _, p := range page.Items {
		mark := " "
		if selected != nil && selected(p.ID) {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", mark, p.ID, p.Name, formatPrice(p.Price), p.Category)
	}
	tw.Flush()

	fmt.Fprintln(w, strings.Repeat("-", 40))
	footer := fmt.Sprintf("page %d / %d  (%d product(s))", page.Number, page.Total, page.Matches)
	if page.Query != "" {
		footer += fmt.Sprintf("  search: %q", page.Query)
	}
	fmt.Fprintln(w, footer)
}

// renderProduct prints a single product as labelled fields
func renderProduct(w io.Writer, p models.Product) {
	fmt.Fprintf(w, "ID:       %d\n", p.ID)
	fmt.Fprintf(w, "Name:     %s\n", p.Name)
	fmt.Fprintf(w, "Price:    %s\n", formatPrice(p.Price))
	fmt.Fprintf(w, "Category: %s\n", p.Category)
}

func formatPrice(price float64) string {
	return decimal.NewFromFloat(price).String()
}
