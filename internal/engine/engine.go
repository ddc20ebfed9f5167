// Package engine wires the resolver, scorer, ranker, and gap analyzer into
// the two operations the surrounding service consumes.
package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/RAJVEER42/ai-job-portal/internal/catalog"
	"github.com/RAJVEER42/ai-job-portal/internal/extract"
	"github.com/RAJVEER42/ai-job-portal/internal/gap"
	"github.com/RAJVEER42/ai-job-portal/internal/matching"
	"github.com/RAJVEER42/ai-job-portal/internal/recommend"
	"github.com/RAJVEER42/ai-job-portal/internal/resolver"
	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

// Options configures engine construction. Zero values select defaults.
type Options struct {
	// Vocabulary overrides the skill extraction vocabulary.
	Vocabulary []string
	// FallbackSkills overrides the gap analyzer's empty-extraction
	// fallback; an empty non-nil slice disables it.
	FallbackSkills []string
	// Concurrency bounds the parallel scoring phase of ranking.
	Concurrency int
	// Catalog overrides the embedded learning-resource catalog.
	Catalog *catalog.Catalog
}

// Engine exposes candidate↔job matching and skill-gap analysis over a
// profile resolver. All computation is synchronous and deterministic; the
// resolver is the only dependency that may block.
type Engine struct {
	resolver resolver.Resolver
	ranker   *recommend.Ranker
	analyzer *gap.Analyzer
}

// New creates an Engine over the given resolver.
func New(res resolver.Resolver, opts Options) *Engine {
	extractor := extract.New(opts.Vocabulary)
	scorer := matching.NewScorer(extractor)
	return &Engine{
		resolver: res,
		ranker:   recommend.NewRanker(scorer, opts.Concurrency),
		analyzer: gap.NewAnalyzer(extractor, opts.Catalog, gap.Config{
			FallbackSkills: opts.FallbackSkills,
		}),
	}
}

// GetRecommendations ranks the available job pool for a candidate and
// returns the top limit results. A limit of 0 selects the default; a
// negative limit is rejected. Resolver not-found errors are surfaced
// unchanged.
func (e *Engine) GetRecommendations(ctx context.Context, candidateID uuid.UUID, limit int) ([]types.MatchResult, error) {
	if limit == 0 {
		limit = recommend.DefaultLimit
	}

	candidate, err := e.resolver.CandidateProfile(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	jobs, err := e.resolver.AvailableJobs(ctx)
	if err != nil {
		return nil, err
	}

	return e.ranker.Rank(ctx, candidate, jobs, limit)
}

// AnalyzeGap builds the skill-gap report for a (candidate, job) pair.
// Resolver not-found errors are surfaced unchanged.
func (e *Engine) AnalyzeGap(ctx context.Context, candidateID, jobID uuid.UUID) (*types.GapReport, error) {
	candidate, err := e.resolver.CandidateProfile(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	job, err := e.resolver.JobRequirement(ctx, jobID)
	if err != nil {
		return nil, err
	}

	report := e.analyzer.Analyze(candidate, job)
	return &report, nil
}
