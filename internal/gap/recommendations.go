package gap

import (
	"strings"

	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

// Thresholds for the match-percentage brackets used by recommendation text.
const (
	strongMatchThreshold   = 80
	goodMatchThreshold     = 60
	moderateMatchThreshold = 40
)

// Caps on the detail lines appended after the bracket messages.
const (
	maxStrengthSkills = 3
	maxPrioritySkills = 2
)

// buildRecommendations turns a gap classification into ordered guidance
// strings. Line order is fixed: bracket messages first, then a strengths
// line when anything matched, then a priority line when High-priority gaps
// exist.
func buildRecommendations(matchPercentage int, matching []types.SkillMatch, missing []types.MissingSkillGap) []string {
	recommendations := make([]string, 0, 4)

	switch {
	case matchPercentage >= strongMatchThreshold:
		recommendations = append(recommendations,
			"Excellent match! You meet most requirements for this role.",
			"Apply now - you're well-qualified for this position!")
	case matchPercentage >= goodMatchThreshold:
		recommendations = append(recommendations,
			"Good match! You have a solid foundation for this role.",
			"Consider learning the missing skills to become a perfect fit.")
	case matchPercentage >= moderateMatchThreshold:
		recommendations = append(recommendations,
			"Moderate match. You have some relevant skills.",
			"Focus on gaining the high-priority missing skills before applying.")
	default:
		recommendations = append(recommendations,
			"This role may be challenging with your current skillset.",
			"Consider roles that better match your current skills.")
	}

	if len(matching) > 0 {
		count := len(matching)
		if count > maxStrengthSkills {
			count = maxStrengthSkills
		}
		strengths := make([]string, 0, count)
		for _, match := range matching[:count] {
			strengths = append(strengths, match.Skill)
		}
		recommendations = append(recommendations, "Your strengths: "+strings.Join(strengths, ", "))
	}

	highPriority := make([]string, 0, maxPrioritySkills)
	for _, skill := range missing {
		if skill.Priority != types.PriorityHigh {
			continue
		}
		highPriority = append(highPriority, skill.Skill)
		if len(highPriority) == maxPrioritySkills {
			break
		}
	}
	if len(highPriority) > 0 {
		recommendations = append(recommendations, "Priority skills to learn: "+strings.Join(highPriority, ", "))
	}

	return recommendations
}
