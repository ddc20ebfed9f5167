// Package matching computes candidate↔job relevance scores with
// human-readable match reasons.
package matching

import (
	"fmt"
	"strings"

	"github.com/RAJVEER42/ai-job-portal/internal/extract"
	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

// Factor weights for the three-factor scoring model. The maxima sum to 100,
// so the total score is capped by construction.
const (
	maxSkillPoints        = 60
	maxLocationPoints     = 20
	remoteLocationPoints  = 15
	maxExperiencePoints   = 20
	closeExperiencePoints = 10

	// closeExperienceGapYears is the largest bucket-midpoint distance that
	// still earns partial experience credit.
	closeExperienceGapYears = 2

	// maxReasonSkills caps how many matched skills a reason string names.
	maxReasonSkills = 3
)

// Scorer computes a 0-100 relevance score for a (candidate, job) pair.
// It is a pure function over its inputs and safe for concurrent use.
type Scorer struct {
	extractor *extract.Extractor
}

// NewScorer creates a Scorer backed by the given skill extractor.
// A nil extractor uses the default vocabulary.
func NewScorer(extractor *extract.Extractor) *Scorer {
	if extractor == nil {
		extractor = extract.New(nil)
	}
	return &Scorer{extractor: extractor}
}

// Score computes the weighted three-factor relevance of job for candidate.
// It is total over well-formed inputs: a job with no description and no
// skills simply scores low, it never fails.
func (s *Scorer) Score(candidate *types.CandidateProfile, job *types.JobRequirement) types.MatchResult {
	jobSkills := s.requiredSkills(job)
	candidateSkills := extract.SkillSet(candidate.Skills)

	reasons := make([]string, 0, 3)
	total := 0

	// 1. Skill factor (max 60). Skipped entirely when the job has no
	// extracted skills: no points and no reason.
	matched, missing := partitionSkills(jobSkills, candidateSkills)
	if len(jobSkills) > 0 {
		total += len(matched) * maxSkillPoints / len(jobSkills)
		if len(matched) > 0 {
			reasons = append(reasons, skillReason(matched, len(jobSkills)))
		}
	}

	// 2. Location factor (max 20).
	jobText := strings.ToLower(job.Description + " " + job.Location)
	switch {
	case candidate.Location != "" && strings.Contains(jobText, strings.ToLower(candidate.Location)):
		total += maxLocationPoints
		reasons = append(reasons, fmt.Sprintf("Location match: %s", candidate.Location))
	case strings.Contains(jobText, "remote"):
		total += remoteLocationPoints
		reasons = append(reasons, "Remote work available")
	}

	// 3. Experience factor (max 20). An unrecognized descriptor is an
	// automatic match.
	bucket := parseExperienceBucket(job.ExperienceLevel)
	if bucket.contains(candidate.YearsExperience) {
		total += maxExperiencePoints
		reasons = append(reasons, fmt.Sprintf("Experience level matches: %s", job.ExperienceLevel))
	} else if bucket.gapYears(candidate.YearsExperience) <= closeExperienceGapYears {
		total += closeExperiencePoints
		reasons = append(reasons, "Close experience match")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "No specific matches found")
	}

	return types.MatchResult{
		Job: types.JobSummary{
			ID:              job.ID,
			Title:           job.Title,
			ExperienceLevel: job.ExperienceLevel,
			RequiredSkills:  extract.DisplayAll(jobSkills),
		},
		Score:         total,
		MatchReasons:  reasons,
		MissingSkills: extract.DisplayAll(missing),
	}
}

// RequiredSkills exposes the skill set the scorer would evaluate the job
// against: the job's own tokens when present, otherwise tokens extracted
// from its description.
func (s *Scorer) RequiredSkills(job *types.JobRequirement) []string {
	return s.requiredSkills(job)
}

func (s *Scorer) requiredSkills(job *types.JobRequirement) []string {
	if len(job.Skills) > 0 {
		tokens := make([]string, 0, len(job.Skills))
		for _, skill := range job.Skills {
			normalized := extract.Normalize(skill)
			if normalized != "" {
				tokens = append(tokens, normalized)
			}
		}
		return tokens
	}
	return s.extractor.Extract(job.Description)
}

// partitionSkills splits the job's skills into matched and missing against
// the candidate set, preserving job-skill discovery order in both halves.
func partitionSkills(jobSkills []string, candidateSkills map[string]bool) (matched, missing []string) {
	matched = make([]string, 0, len(jobSkills))
	missing = make([]string, 0, len(jobSkills))
	for _, skill := range jobSkills {
		if candidateSkills[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

// skillReason builds the skill-factor reason string, naming up to three
// matched skills.
func skillReason(matched []string, required int) string {
	shown := matched
	if len(shown) > maxReasonSkills {
		shown = shown[:maxReasonSkills]
	}
	return fmt.Sprintf("Skills match: %d/%d required skills (%s)",
		len(matched), required, strings.Join(extract.DisplayAll(shown), ", "))
}
