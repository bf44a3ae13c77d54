package main

import (
	"os"

	"github.com/sillylang/silly/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
