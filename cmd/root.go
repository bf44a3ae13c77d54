package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "silly",
	Short: "Silly CLI — lexer, parser, and REPL for the Silly language",
	Long: `Silly is the front end for the Silly expression language.

Commands:
  parse  Parse a (.silly) source file and report each top-level construct
  repl   Start an interactive read-parse-print loop
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(ParseCmd, ReplCmd)
}
