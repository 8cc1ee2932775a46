// Package main is the habits API server.
package main

import (
	"fmt"
	"os"

	"github.com/ncobase/habits/cmd/habits/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
