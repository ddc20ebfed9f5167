// Package gap classifies a job's required skills against a candidate's
// profile and attaches learning guidance for every gap.
package gap

import (
	"math"
	"strings"

	"github.com/RAJVEER42/ai-job-portal/internal/catalog"
	"github.com/RAJVEER42/ai-job-portal/internal/extract"
	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

// DefaultFallbackSkills substitutes for an empty extraction so sparse job
// descriptions still get a useful gap report. This is a heuristic, not a
// statement about the job: the report reflects these assumed skills, not
// extracted ones. Setting Config.FallbackSkills to an empty non-nil slice
// disables the substitution.
var DefaultFallbackSkills = []string{"java", "spring boot", "aws", "docker"}

// DefaultCriticalSkills always rate a High learning priority when missing.
var DefaultCriticalSkills = []string{"java", "python", "javascript", "aws", "spring boot", "react"}

// defaultSkillLevel stands in for per-skill proficiency until the resolver
// supplies real levels.
// TODO: produce StatusExceeds once proficiency levels are resolved.
const defaultSkillLevel = "Advanced"

// mentionThreshold is the description mention count above which a missing
// skill rates Medium priority.
const mentionThreshold = 2

// Config carries the tunable policy values of the analyzer. Zero values
// select the package defaults.
type Config struct {
	// FallbackSkills replaces an empty extraction result. nil selects
	// DefaultFallbackSkills; an empty non-nil slice disables the fallback.
	FallbackSkills []string
	// CriticalSkills are always High priority when missing. nil selects
	// DefaultCriticalSkills.
	CriticalSkills []string
}

// Analyzer produces gap reports for (candidate, job) pairs. It is a pure
// function over its inputs and safe for concurrent use.
type Analyzer struct {
	extractor *extract.Extractor
	catalog   *catalog.Catalog
	fallback  []string
	critical  map[string]bool
}

// NewAnalyzer creates an Analyzer. A nil extractor uses the default
// vocabulary; a nil catalog uses the embedded curated tables.
func NewAnalyzer(extractor *extract.Extractor, cat *catalog.Catalog, cfg Config) *Analyzer {
	if extractor == nil {
		extractor = extract.New(nil)
	}
	if cat == nil {
		cat = catalog.Default()
	}
	fallback := cfg.FallbackSkills
	if fallback == nil {
		fallback = DefaultFallbackSkills
	}
	critical := cfg.CriticalSkills
	if critical == nil {
		critical = DefaultCriticalSkills
	}
	return &Analyzer{
		extractor: extractor,
		catalog:   cat,
		fallback:  normalizeAll(fallback),
		critical:  extract.SkillSet(critical),
	}
}

// Analyze classifies every required skill of the job as matched or missing
// for the candidate and builds the full gap report.
func (a *Analyzer) Analyze(candidate *types.CandidateProfile, job *types.JobRequirement) types.GapReport {
	required := a.extractor.Extract(job.Description)
	if len(required) == 0 {
		required = a.fallback
	}

	candidateSkills := extract.SkillSet(candidate.Skills)

	matching := make([]types.SkillMatch, 0, len(required))
	missing := make([]types.MissingSkillGap, 0, len(required))
	for _, skill := range required {
		if candidateSkills[skill] {
			matching = append(matching, types.SkillMatch{
				Skill:          extract.Display(skill),
				CandidateLevel: defaultSkillLevel,
				RequiredLevel:  defaultSkillLevel,
				Status:         types.StatusMatches,
			})
		} else {
			missing = append(missing, types.MissingSkillGap{
				Skill:                 extract.Display(skill),
				RequiredLevel:         defaultSkillLevel,
				Priority:              a.priority(skill, job),
				LearningResources:     a.catalog.Resources(skill),
				EstimatedLearningTime: a.catalog.LearningTime(skill),
			})
		}
	}

	matchPercentage := 100
	if len(required) > 0 {
		matchPercentage = int(math.Round(100 * float64(len(matching)) / float64(len(required))))
	}

	return types.GapReport{
		MatchPercentage: matchPercentage,
		MatchingSkills:  matching,
		MissingSkills:   missing,
		Recommendations: buildRecommendations(matchPercentage, matching, missing),
		Job: types.JobSummary{
			ID:              job.ID,
			Title:           job.Title,
			ExperienceLevel: job.ExperienceLevel,
			RequiredSkills:  extract.DisplayAll(required),
		},
	}
}

// priority assigns the learning priority for a missing skill. Rules are
// evaluated in precedence order; the first match wins:
//
//  1. the skill appears in the job title
//  2. the skill is on the critical list
//  3. the description mentions the skill more than twice
//  4. otherwise Low
func (a *Analyzer) priority(skill string, job *types.JobRequirement) types.SkillPriority {
	if strings.Contains(strings.ToLower(job.Title), skill) {
		return types.PriorityHigh
	}
	if a.critical[skill] {
		return types.PriorityHigh
	}
	if strings.Count(strings.ToLower(job.Description), skill) > mentionThreshold {
		return types.PriorityMedium
	}
	return types.PriorityLow
}

func normalizeAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		normalized := extract.Normalize(skill)
		if normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}
