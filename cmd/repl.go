package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/sillylang/silly/internal/compiler/driver"
)

const (
	historyFile = ".silly_history"
	prompt      = "ready> "
)

var (
	errLine = color.New(color.FgRed)
	okLine  = color.New(color.FgGreen)
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-parse-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Silly REPL. Ctrl+D exits.")

		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		histPath := historyPath()
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()

		for {
			line, err := ln.Prompt(prompt)
			if err != nil {
				// Ctrl+D or Ctrl+C ends the session.
				fmt.Println()
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			ln.AppendHistory(line)

			// Each line is a fresh stream; definitions do not persist
			// across lines because no evaluation backend exists.
			driver.NewSession(line).Run(func(res driver.Result) {
				if res.Err != nil {
					errLine.Fprintf(os.Stderr, "Error: %v\n", res.Err)
					return
				}
				okLine.Println(res.Kind.Message())
				if showAST {
					fmt.Printf("  %s\n", res.Node.String())
				}
			})
		}
	},
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func init() {
	ReplCmd.Flags().BoolVar(&showAST, "ast", false, "print the parsed AST for each construct")
}
