package cli

import (
	"github.com/ChintyaPuja/technical/internal/config"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Local product catalog editor",
	Long:  "catalog keeps a product list (name, price, category) in a local key-value store and lets you add, edit, search, page through and delete products",
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the catalog configuration file")
}
