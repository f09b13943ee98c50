package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd starts the server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "xlplot",
	Short: "xlplot - plot the first two columns of an Excel sheet",
	Long: "xlplot reads the first sheet of an .xls or .xlsx workbook and plots its\n" +
		"second column against its first.\n\n" +
		"Without a subcommand it serves the upload page and the JSON API.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default /config/config.yaml, or ./config/config.yaml with LOCAL=true)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(renderCmd)
}
