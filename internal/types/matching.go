// Package types provides type definitions for structured data used throughout the job portal matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CandidateProfile represents a candidate's skill and experience profile
// as supplied by the profile resolver. It is built fresh per request and
// never persisted by the matching core.
type CandidateProfile struct {
	ID              uuid.UUID `json:"id"`
	Skills          []string  `json:"skills"`
	YearsExperience int       `json:"years_experience" validate:"gte=0"`
	Location        string    `json:"location,omitempty"`
}

// JobRequirement represents a job posting's requirements as seen by the
// matching core. Skills holds the tokens extracted from the description
// and may be empty.
type JobRequirement struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	Location        string    `json:"location,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
}

// JobSummary is the job identification carried on match and gap results.
type JobSummary struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	RequiredSkills  []string  `json:"required_skills,omitempty"`
}

// MatchResult represents the scored relevance of one job for one candidate.
// Results are created once per scoring call and never mutated afterwards.
// MatchReasons preserves discovery order: skills, then location, then experience.
type MatchResult struct {
	Job           JobSummary `json:"job"`
	Score         int        `json:"match_score"`
	MatchReasons  []string   `json:"match_reasons"`
	MissingSkills []string   `json:"missing_skills"`
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
