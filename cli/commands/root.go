package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/parsekit/jsondiag/internal/debug"
)

var (
	flagDebug   bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "jsondiag",
	Short: "Check JSON files and explain parse failures",
	Long: `jsondiag parses JSON files with a strict parser and, when parsing
fails, prints a precise diagnostic: the failing line and column, a code
frame excerpt of the source with a caret under the offending character,
and the Unicode code point of an unexpected token.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.Init(flagDebug)
		if flagNoColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// Execute is the main entry point for the CLI.
func Execute() error {
	return rootCmd.Execute()
}
