//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// MatchStatus describes how a candidate's skill compares to a job requirement.
type MatchStatus string

// MatchStatus values.
const (
	// StatusExceeds is reserved for proficiency-level comparison once the
	// resolver supplies per-skill levels. It is never produced today.
	StatusExceeds MatchStatus = "EXCEEDS"
	StatusMatches MatchStatus = "MATCHES"
	StatusBelow   MatchStatus = "BELOW"
)

// Valid reports whether the status is one of the closed set of values.
func (s MatchStatus) Valid() bool {
	switch s {
	case StatusExceeds, StatusMatches, StatusBelow:
		return true
	}
	return false
}

// Describe returns a short human-readable description of the status.
// The switch is exhaustive over the closed set; unknown values panic so a
// new status forces every switch site to be revisited.
func (s MatchStatus) Describe() string {
	switch s {
	case StatusExceeds:
		return "exceeds the required level"
	case StatusMatches:
		return "meets the required level"
	case StatusBelow:
		return "below the required level"
	default:
		panic(fmt.Sprintf("unknown match status: %q", string(s)))
	}
}

// SkillPriority is the learning priority assigned to a missing skill.
type SkillPriority string

// SkillPriority values, ordered from most to least urgent.
const (
	PriorityHigh   SkillPriority = "HIGH"
	PriorityMedium SkillPriority = "MEDIUM"
	PriorityLow    SkillPriority = "LOW"
)

// Valid reports whether the priority is one of the closed set of values.
func (p SkillPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank returns a numeric ordering for the priority (lower is more urgent).
func (p SkillPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		panic(fmt.Sprintf("unknown skill priority: %q", string(p)))
	}
}

// ResourceType categorizes a learning resource.
type ResourceType string

// ResourceType values.
const (
	ResourceCourse        ResourceType = "COURSE"
	ResourceVideo         ResourceType = "VIDEO"
	ResourceDocumentation ResourceType = "DOCUMENTATION"
	ResourceTutorial      ResourceType = "TUTORIAL"
)

// Valid reports whether the resource type is one of the closed set of values.
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceCourse, ResourceVideo, ResourceDocumentation, ResourceTutorial:
		return true
	}
	return false
}

// LearningResource is a curated pointer to learning material for a skill.
type LearningResource struct {
	Title    string       `json:"title"`
	URL      string       `json:"url"`
	Duration string       `json:"duration"`
	Type     ResourceType `json:"type"`
}

// SkillMatch records a required skill the candidate already has.
type SkillMatch struct {
	Skill          string      `json:"skill"`
	CandidateLevel string      `json:"user_level"`
	RequiredLevel  string      `json:"required_level"`
	Status         MatchStatus `json:"status"`
}

// MissingSkillGap records a required skill the candidate lacks, with
// learning guidance attached.
type MissingSkillGap struct {
	Skill                 string             `json:"skill"`
	RequiredLevel         string             `json:"required_level"`
	Priority              SkillPriority      `json:"priority"`
	LearningResources     []LearningResource `json:"learning_resources"`
	EstimatedLearningTime string             `json:"estimated_learning_time"`
}

// GapReport is the structured comparison of a candidate's skills against
// one job's requirements. One report is produced per (candidate, job)
// request and never mutated afterwards.
//
// For a given job, MatchingSkills and MissingSkills partition the job's
// extracted skill set: every required skill appears in exactly one of the
// two lists.
type GapReport struct {
	MatchPercentage int               `json:"match_percentage"`
	MatchingSkills  []SkillMatch      `json:"matching_skills"`
	MissingSkills   []MissingSkillGap `json:"missing_skills"`
	Recommendations []string          `json:"recommendations"`
	Job             JobSummary        `json:"job_info"`
}
