package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

// loadCandidate reads a candidate profile fixture from a JSON file.
func loadCandidate(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}
	var candidate types.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("failed to parse candidate JSON: %w", err)
	}
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("invalid candidate profile: %w", err)
	}
	return &candidate, nil
}

// loadJobs reads a job requirement fixture from a JSON file. The file may
// contain either a single job object or an array of jobs.
func loadJobs(path string) ([]types.JobRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}

	var jobs []types.JobRequirement
	if err := json.Unmarshal(data, &jobs); err == nil {
		return jobs, nil
	}

	var job types.JobRequirement
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse jobs JSON: %w", err)
	}
	return []types.JobRequirement{job}, nil
}
