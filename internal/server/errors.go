package server

import (
	"net/http"

	"github.com/RAJVEER42/ai-job-portal/internal/recommend"
	"github.com/RAJVEER42/ai-job-portal/internal/resolver"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *resolver.CandidateNotFoundError, *resolver.JobNotFoundError:
		return http.StatusNotFound
	case *recommend.InvalidLimitError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
