package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

func matches(skills ...string) []types.SkillMatch {
	out := make([]types.SkillMatch, 0, len(skills))
	for _, skill := range skills {
		out = append(out, types.SkillMatch{Skill: skill, Status: types.StatusMatches})
	}
	return out
}

func gaps(priority types.SkillPriority, skills ...string) []types.MissingSkillGap {
	out := make([]types.MissingSkillGap, 0, len(skills))
	for _, skill := range skills {
		out = append(out, types.MissingSkillGap{Skill: skill, Priority: priority})
	}
	return out
}

func TestBuildRecommendations_Brackets(t *testing.T) {
	tests := []struct {
		percentage int
		wantFirst  string
	}{
		{100, "Excellent match! You meet most requirements for this role."},
		{80, "Excellent match! You meet most requirements for this role."},
		{79, "Good match! You have a solid foundation for this role."},
		{60, "Good match! You have a solid foundation for this role."},
		{59, "Moderate match. You have some relevant skills."},
		{40, "Moderate match. You have some relevant skills."},
		{39, "This role may be challenging with your current skillset."},
		{0, "This role may be challenging with your current skillset."},
	}

	for _, tt := range tests {
		recommendations := buildRecommendations(tt.percentage, nil, nil)

		require.Len(t, recommendations, 2, "percentage %d", tt.percentage)
		assert.Equal(t, tt.wantFirst, recommendations[0], "percentage %d", tt.percentage)
	}
}

func TestBuildRecommendations_LineOrderIsFixed(t *testing.T) {
	recommendations := buildRecommendations(50,
		matches("Java", "Git"),
		gaps(types.PriorityHigh, "React"))

	require.Len(t, recommendations, 4)
	assert.Equal(t, "Moderate match. You have some relevant skills.", recommendations[0])
	assert.Equal(t, "Focus on gaining the high-priority missing skills before applying.", recommendations[1])
	assert.Equal(t, "Your strengths: Java, Git", recommendations[2])
	assert.Equal(t, "Priority skills to learn: React", recommendations[3])
}

func TestBuildRecommendations_StrengthsCappedAtThree(t *testing.T) {
	recommendations := buildRecommendations(90,
		matches("Java", "Python", "Git", "Docker", "Aws"), nil)

	assert.Contains(t, recommendations, "Your strengths: Java, Python, Git")
}

func TestBuildRecommendations_PriorityLineCapsAtTwoHighs(t *testing.T) {
	missing := append(gaps(types.PriorityLow, "Mongodb"),
		gaps(types.PriorityHigh, "React", "Aws", "Python")...)

	recommendations := buildRecommendations(20, nil, missing)

	assert.Contains(t, recommendations, "Priority skills to learn: React, Aws")
}

func TestBuildRecommendations_NoDetailLinesWithoutData(t *testing.T) {
	recommendations := buildRecommendations(20, nil, gaps(types.PriorityLow, "Mongodb"))

	// No strengths line without matches, no priority line without High gaps.
	require.Len(t, recommendations, 2)
}
