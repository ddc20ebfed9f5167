package resolver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

// Postgres resolves candidate profiles and job requirements from the job
// portal database.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// CandidateProfile implements Resolver.
func (p *Postgres) CandidateProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error) {
	var profile types.CandidateProfile
	err := p.pool.QueryRow(ctx,
		`SELECT id, skills, years_experience, location
		 FROM candidates WHERE id = $1`,
		candidateID,
	).Scan(&profile.ID, &profile.Skills, &profile.YearsExperience, &profile.Location)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &CandidateNotFoundError{ID: candidateID}
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &profile, nil
}

// JobRequirement implements Resolver.
func (p *Postgres) JobRequirement(ctx context.Context, jobID uuid.UUID) (*types.JobRequirement, error) {
	var job types.JobRequirement
	err := p.pool.QueryRow(ctx,
		`SELECT id, title, description, experience_level, location
		 FROM jobs WHERE id = $1`,
		jobID,
	).Scan(&job.ID, &job.Title, &job.Description, &job.ExperienceLevel, &job.Location)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &JobNotFoundError{ID: jobID}
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// AvailableJobs implements Resolver.
func (p *Postgres) AvailableJobs(ctx context.Context) ([]types.JobRequirement, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, title, description, experience_level, location
		 FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]types.JobRequirement, 0)
	for rows.Next() {
		var job types.JobRequirement
		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.ExperienceLevel, &job.Location); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, nil
}
