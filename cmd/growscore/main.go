// Package main provides the entry point for the GrowScore HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "growscore",
	Short: "GrowScore candidate evaluation API server",
	Long:  "GrowScore scores candidates against job descriptions, walks them through a structured evaluation wizard, and ranks them by a quality-of-hire composite via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
