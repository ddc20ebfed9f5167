package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAJVEER42/ai-job-portal/internal/engine"
	"github.com/RAJVEER42/ai-job-portal/internal/resolver"
	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

var (
	testCandidateID = uuid.New()
	testJobID       = uuid.New()
)

func newTestHandler() http.Handler {
	candidates := []types.CandidateProfile{{
		ID:              testCandidateID,
		Skills:          []string{"Java", "Spring Boot", "PostgreSQL"},
		YearsExperience: 3,
		Location:        "Bengaluru",
	}}
	jobs := []types.JobRequirement{{
		ID:          testJobID,
		Title:       "Backend Engineer",
		Description: "Looking for engineers with java, react, aws",
	}}
	eng := engine.New(resolver.NewMemory(candidates, jobs), engine.Options{})
	return newServer(eng, 0).httpServer.Handler
}

func TestHandleHealth(t *testing.T) {
	handler := newTestHandler()
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status": "ok"}`, recorder.Body.String())
}

func TestHandleRecommendations(t *testing.T) {
	handler := newTestHandler()
	recorder := httptest.NewRecorder()
	url := fmt.Sprintf("/candidates/%s/recommendations", testCandidateID)

	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var results []types.MatchResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, 40, results[0].Score)
	assert.Equal(t, []string{"React", "Aws"}, results[0].MissingSkills)
}

func TestHandleRecommendations_InvalidID(t *testing.T) {
	handler := newTestHandler()
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/candidates/not-a-uuid/recommendations", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleRecommendations_UnknownCandidate(t *testing.T) {
	handler := newTestHandler()
	recorder := httptest.NewRecorder()
	url := fmt.Sprintf("/candidates/%s/recommendations", uuid.New())

	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandleRecommendations_BadLimit(t *testing.T) {
	handler := newTestHandler()

	for _, limit := range []string{"abc", "-1"} {
		recorder := httptest.NewRecorder()
		url := fmt.Sprintf("/candidates/%s/recommendations?limit=%s", testCandidateID, limit)

		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, url, nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "limit %q", limit)
	}
}

func TestHandleGapAnalysis(t *testing.T) {
	handler := newTestHandler()
	recorder := httptest.NewRecorder()
	url := fmt.Sprintf("/candidates/%s/jobs/%s/gap", testCandidateID, testJobID)

	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var report types.GapReport
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &report))
	assert.Equal(t, 33, report.MatchPercentage)
	assert.Equal(t, testJobID, report.Job.ID)
}

func TestHandleGapAnalysis_UnknownJob(t *testing.T) {
	handler := newTestHandler()
	recorder := httptest.NewRecorder()
	url := fmt.Sprintf("/candidates/%s/jobs/%s/gap", testCandidateID, uuid.New())

	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "job not found")
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler()
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodOptions, "/health", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
