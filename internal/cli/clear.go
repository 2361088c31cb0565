package cli

import (
	"os"

	"github.com/ChintyaPuja/technical/internal/utils"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every product",
	Long:  "Deletes the stored product collection key",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env := mustOpen()
		out := cmd.OutOrStdout()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !utils.Confirm(cmd.InOrStdin(), out, "Remove all products?") {
			utils.FprintInfo(out, "Aborted")
			return
		}

		count := env.catalog.Len()
		if err := env.catalog.Clear(); err != nil {
			utils.PrintError("Failed to clear catalog: %v", err)
			os.Exit(1)
		}
		utils.FprintSuccess(out, "Removed %d product(s)", count)
	},
}

func init() {
	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(clearCmd)
}
