package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RAJVEER42/ai-job-portal/internal/extract"
	"github.com/RAJVEER42/ai-job-portal/internal/ingest"
)

var (
	extractFile string
	extractURL  string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skill tokens from a job description",
	Long:  `Run the skill extractor over a job description read from a text file or fetched from a URL.`,
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFile, "file", "", "Path to job description text file")
	extractCmd.Flags().StringVar(&extractURL, "url", "", "Job posting URL to fetch")
	extractCmd.MarkFlagsMutuallyExclusive("file", "url")
	extractCmd.MarkFlagsOneRequired("file", "url")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	var text string
	switch {
	case extractFile != "":
		data, err := os.ReadFile(extractFile)
		if err != nil {
			return fmt.Errorf("failed to read description file %s: %w", extractFile, err)
		}
		text = string(data)
	case extractURL != "":
		fetched, err := ingest.FetchDescription(context.Background(), extractURL, nil)
		if err != nil {
			return err
		}
		text = fetched
	}

	tokens := extract.New(nil).Extract(text)
	if len(tokens) == 0 {
		fmt.Println("No known skills found")
		return nil
	}

	fmt.Println(strings.Join(extract.DisplayAll(tokens), ", "))
	return nil
}
