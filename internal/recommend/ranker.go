// Package recommend ranks a candidate's available job pool by match score.
package recommend

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/RAJVEER42/ai-job-portal/internal/matching"
	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

// DefaultLimit is the number of recommendations returned when the caller
// does not specify one.
const DefaultLimit = 10

// defaultConcurrency bounds the parallel scoring phase when no explicit
// bound is configured.
const defaultConcurrency = 4

// InvalidLimitError indicates a non-positive recommendation limit.
type InvalidLimitError struct {
	Limit int
}

func (e *InvalidLimitError) Error() string {
	return fmt.Sprintf("invalid recommendation limit: %d (must be positive)", e.Limit)
}

// Ranker applies a match scorer across a job pool, filters non-matches,
// and returns the top results sorted by score.
type Ranker struct {
	scorer      *matching.Scorer
	concurrency int
}

// NewRanker creates a Ranker. concurrency bounds the parallel scoring
// phase; values below 1 use a small default.
func NewRanker(scorer *matching.Scorer, concurrency int) *Ranker {
	if scorer == nil {
		scorer = matching.NewScorer(nil)
	}
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Ranker{scorer: scorer, concurrency: concurrency}
}

// Rank scores every job for the candidate, discards zero scores, sorts
// descending by score, and truncates to limit. Jobs with equal scores keep
// their relative input order: the sort is deliberately stable so that
// parallel scoring cannot perturb the result. The input slice is not
// mutated.
//
// A limit <= 0 is rejected before any scoring work begins.
func (r *Ranker) Rank(ctx context.Context, candidate *types.CandidateProfile, jobs []types.JobRequirement, limit int) ([]types.MatchResult, error) {
	if limit <= 0 {
		return nil, &InvalidLimitError{Limit: limit}
	}

	// Score in parallel, indexed by input position so ordering is decided
	// only by the final sort, never by goroutine completion order.
	scored := make([]types.MatchResult, len(jobs))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i := range jobs {
		g.Go(func() error {
			scored[i] = r.scorer.Score(candidate, &jobs[i])
			return nil
		})
	}
	// Scoring is pure and never fails; Wait only synchronizes.
	_ = g.Wait()

	results := make([]types.MatchResult, 0, len(scored))
	for _, result := range scored {
		if result.Score > 0 {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
