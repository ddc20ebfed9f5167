package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRecommendations serves GET /candidates/{id}/recommendations?limit=N.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	results, err := s.engine.GetRecommendations(r.Context(), candidateID, limit)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, results)
}

// handleGapAnalysis serves GET /candidates/{candidate_id}/jobs/{job_id}/gap.
func (s *Server) handleGapAnalysis(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("candidate_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("job_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	report, err := s.engine.AnalyzeGap(r.Context(), candidateID, jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
