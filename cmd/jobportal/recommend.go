package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RAJVEER42/ai-job-portal/internal/matching"
	"github.com/RAJVEER42/ai-job-portal/internal/observability"
	"github.com/RAJVEER42/ai-job-portal/internal/recommend"
	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

var (
	recommendCandidate string
	recommendJobs      string
	recommendLimit     int
	recommendJSON      bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank jobs for a candidate from fixture files",
	Long:  `Score a candidate profile against a pool of jobs and print the ranked recommendations.`,
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendCandidate, "candidate", "", "Path to candidate profile JSON (required)")
	recommendCmd.Flags().StringVar(&recommendJobs, "jobs", "", "Path to job pool JSON (required)")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", recommend.DefaultLimit, "Maximum recommendations to return")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print raw JSON instead of formatted output")
	_ = recommendCmd.MarkFlagRequired("candidate")
	_ = recommendCmd.MarkFlagRequired("jobs")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	candidate, err := loadCandidate(recommendCandidate)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(recommendJobs)
	if err != nil {
		return err
	}

	ranker := recommend.NewRanker(matching.NewScorer(nil), 0)
	results, err := ranker.Rank(context.Background(), candidate, jobs, recommendLimit)
	if err != nil {
		return err
	}

	return printResults(results)
}

func printResults(results []types.MatchResult) error {
	if recommendJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchResults(results)
	fmt.Printf("%d matching jobs\n", len(results))
	return nil
}
