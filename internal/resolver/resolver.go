// Package resolver supplies candidate profiles and job requirements to the
// matching core. It is the only boundary behind which blocking I/O may
// occur; the core treats resolved values as already materialized inputs.
package resolver

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

// Resolver supplies candidate and job data to the matching core.
type Resolver interface {
	// CandidateProfile returns the profile for a candidate, or a
	// *CandidateNotFoundError when the candidate does not exist.
	CandidateProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error)
	// JobRequirement returns the requirements for a job, or a
	// *JobNotFoundError when the job does not exist.
	JobRequirement(ctx context.Context, jobID uuid.UUID) (*types.JobRequirement, error)
	// AvailableJobs returns the job pool to rank for recommendations.
	// The result may be empty.
	AvailableJobs(ctx context.Context) ([]types.JobRequirement, error)
}

// CandidateNotFoundError indicates the candidate ID did not resolve.
type CandidateNotFoundError struct {
	ID uuid.UUID
}

func (e *CandidateNotFoundError) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.ID)
}

// JobNotFoundError indicates the job ID did not resolve.
type JobNotFoundError struct {
	ID uuid.UUID
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job not found: %s", e.ID)
}

// IsNotFound reports whether err is either resolver not-found error.
func IsNotFound(err error) bool {
	switch err.(type) {
	case *CandidateNotFoundError, *JobNotFoundError:
		return true
	}
	return false
}
