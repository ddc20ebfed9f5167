package engine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAJVEER42/ai-job-portal/internal/recommend"
	"github.com/RAJVEER42/ai-job-portal/internal/resolver"
	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

var testCandidateID = uuid.New()

func testEngine(jobs []types.JobRequirement) *Engine {
	candidates := []types.CandidateProfile{{
		ID:              testCandidateID,
		Skills:          []string{"Java", "Spring Boot", "PostgreSQL"},
		YearsExperience: 3,
		Location:        "Bengaluru",
	}}
	return New(resolver.NewMemory(candidates, jobs), Options{})
}

func TestGetRecommendations_RanksJobPool(t *testing.T) {
	jobs := []types.JobRequirement{
		{ID: uuid.New(), Title: "Weak", Description: "java, react, aws"},
		{ID: uuid.New(), Title: "Strong", Description: "java and postgresql in Bengaluru"},
	}
	eng := testEngine(jobs)

	results, err := eng.GetRecommendations(context.Background(), testCandidateID, 10)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Strong", results[0].Job.Title)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestGetRecommendations_ZeroLimitUsesDefault(t *testing.T) {
	jobs := make([]types.JobRequirement, 0, 15)
	for i := 0; i < 15; i++ {
		jobs = append(jobs, types.JobRequirement{ID: uuid.New(), Title: "job", Description: "java"})
	}
	eng := testEngine(jobs)

	results, err := eng.GetRecommendations(context.Background(), testCandidateID, 0)

	require.NoError(t, err)
	assert.Len(t, results, recommend.DefaultLimit)
}

func TestGetRecommendations_NegativeLimitRejected(t *testing.T) {
	eng := testEngine(nil)

	_, err := eng.GetRecommendations(context.Background(), testCandidateID, -3)

	var invalidLimit *recommend.InvalidLimitError
	require.ErrorAs(t, err, &invalidLimit)
}

func TestGetRecommendations_UnknownCandidate(t *testing.T) {
	eng := testEngine(nil)

	_, err := eng.GetRecommendations(context.Background(), uuid.New(), 10)

	var notFound *resolver.CandidateNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetRecommendations_EmptyJobPool(t *testing.T) {
	eng := testEngine(nil)

	results, err := eng.GetRecommendations(context.Background(), testCandidateID, 10)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAnalyzeGap_BuildsReport(t *testing.T) {
	jobID := uuid.New()
	jobs := []types.JobRequirement{{
		ID:          jobID,
		Title:       "Backend Engineer",
		Description: "Looking for engineers with java, react, aws",
	}}
	eng := testEngine(jobs)

	report, err := eng.AnalyzeGap(context.Background(), testCandidateID, jobID)

	require.NoError(t, err)
	assert.Equal(t, 33, report.MatchPercentage)
	assert.Equal(t, jobID, report.Job.ID)
	assert.Len(t, report.MissingSkills, 2)
}

func TestAnalyzeGap_UnknownJob(t *testing.T) {
	eng := testEngine(nil)

	_, err := eng.AnalyzeGap(context.Background(), testCandidateID, uuid.New())

	var notFound *resolver.JobNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAnalyzeGap_UnknownCandidate(t *testing.T) {
	eng := testEngine(nil)

	_, err := eng.AnalyzeGap(context.Background(), uuid.New(), uuid.New())

	var notFound *resolver.CandidateNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestEngineOptions_CustomVocabularyAndFallback(t *testing.T) {
	candidateID := uuid.New()
	jobID := uuid.New()
	candidates := []types.CandidateProfile{{ID: candidateID, Skills: []string{"Erlang"}}}
	jobs := []types.JobRequirement{{ID: jobID, Title: "BEAM Engineer", Description: "erlang and elixir"}}
	eng := New(resolver.NewMemory(candidates, jobs), Options{
		Vocabulary: []string{"erlang", "elixir"},
	})

	report, err := eng.AnalyzeGap(context.Background(), candidateID, jobID)

	require.NoError(t, err)
	assert.Equal(t, 50, report.MatchPercentage)
	assert.Equal(t, []string{"Erlang", "Elixir"}, report.Job.RequiredSkills)
}
