package cli

import (
	"os"

	"github.com/ChintyaPuja/technical/internal/config"
	"github.com/ChintyaPuja/technical/internal/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a catalog",
	Long:  "Creates a catalog.yml configuration file pointing at a local SQLite store",
	Run: func(cmd *cobra.Command, args []string) {
		if utils.FileExists(configPath) {
			utils.PrintWarning("%s already exists", configPath)
			return
		}

		cfg := config.Default()
		if err := cfg.Write(configPath); err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}

		utils.PrintSuccess("Initialized catalog")
		utils.PrintInfo("Created %s", configPath)
		utils.PrintInfo("Products will be stored under key %q in %s", cfg.StorageKey, cfg.DatabaseURL)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
