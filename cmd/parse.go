package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sillylang/silly/internal/compiler/driver"
)

var showAST bool

var ParseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a .silly source file and report each top-level construct",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}

		failed := 0
		driver.NewSession(src).Run(func(res driver.Result) {
			if res.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "Error: %v\n", res.Err)
				return
			}
			fmt.Println(res.Kind.Message())
			if showAST {
				fmt.Printf("  %s\n", res.Node.String())
			}
		})

		if failed > 0 {
			return fmt.Errorf("%d construct(s) failed to parse", failed)
		}
		return nil
	},
}

func readSource(path string) (string, error) {
	if filepath.Ext(path) != ".silly" {
		return "", fmt.Errorf("source must have .silly extension")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(b), nil
}

func init() {
	ParseCmd.Flags().BoolVar(&showAST, "ast", false, "print the parsed AST for each construct")
}
