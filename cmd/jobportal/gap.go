package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RAJVEER42/ai-job-portal/internal/gap"
	"github.com/RAJVEER42/ai-job-portal/internal/observability"
)

var (
	gapCandidate string
	gapJob       string
	gapJSON      bool
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze the skill gap between a candidate and a job",
	Long:  `Compare a candidate profile fixture against one job fixture and print the gap report with learning guidance.`,
	RunE:  runGap,
}

func init() {
	gapCmd.Flags().StringVar(&gapCandidate, "candidate", "", "Path to candidate profile JSON (required)")
	gapCmd.Flags().StringVar(&gapJob, "job", "", "Path to job JSON (required)")
	gapCmd.Flags().BoolVar(&gapJSON, "json", false, "Print raw JSON instead of formatted output")
	_ = gapCmd.MarkFlagRequired("candidate")
	_ = gapCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(gapCmd)
}

func runGap(_ *cobra.Command, _ []string) error {
	candidate, err := loadCandidate(gapCandidate)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(gapJob)
	if err != nil {
		return err
	}
	if len(jobs) != 1 {
		return fmt.Errorf("gap analysis expects exactly one job, got %d", len(jobs))
	}

	analyzer := gap.NewAnalyzer(nil, nil, gap.Config{})
	report := analyzer.Analyze(candidate, &jobs[0])

	if gapJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintGapReport(&report)
	return nil
}
