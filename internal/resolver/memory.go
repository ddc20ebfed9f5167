package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

// Memory is an in-memory Resolver backed by fixture data. It serves tests
// and the file-based CLI commands.
type Memory struct {
	candidates map[uuid.UUID]types.CandidateProfile
	jobs       []types.JobRequirement
	jobsByID   map[uuid.UUID]types.JobRequirement
}

// NewMemory builds a Memory resolver from fixture slices. Job order is
// preserved for AvailableJobs.
func NewMemory(candidates []types.CandidateProfile, jobs []types.JobRequirement) *Memory {
	m := &Memory{
		candidates: make(map[uuid.UUID]types.CandidateProfile, len(candidates)),
		jobs:       make([]types.JobRequirement, len(jobs)),
		jobsByID:   make(map[uuid.UUID]types.JobRequirement, len(jobs)),
	}
	for _, candidate := range candidates {
		m.candidates[candidate.ID] = candidate
	}
	copy(m.jobs, jobs)
	for _, job := range jobs {
		m.jobsByID[job.ID] = job
	}
	return m
}

// CandidateProfile implements Resolver.
func (m *Memory) CandidateProfile(_ context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error) {
	candidate, ok := m.candidates[candidateID]
	if !ok {
		return nil, &CandidateNotFoundError{ID: candidateID}
	}
	return &candidate, nil
}

// JobRequirement implements Resolver.
func (m *Memory) JobRequirement(_ context.Context, jobID uuid.UUID) (*types.JobRequirement, error) {
	job, ok := m.jobsByID[jobID]
	if !ok {
		return nil, &JobNotFoundError{ID: jobID}
	}
	return &job, nil
}

// AvailableJobs implements Resolver.
func (m *Memory) AvailableJobs(_ context.Context) ([]types.JobRequirement, error) {
	jobs := make([]types.JobRequirement, len(m.jobs))
	copy(jobs, m.jobs)
	return jobs, nil
}
