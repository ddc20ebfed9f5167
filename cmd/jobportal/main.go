// Package main provides the entry point for the job portal matching engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobportal",
	Short: "Job portal matching engine",
	Long:  "Job portal matching engine ranks jobs for a candidate's skill profile and produces skill-gap reports with learning guidance.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
