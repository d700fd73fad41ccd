package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Screening schema. job_matches deliberately carries no uniqueness
// constraint on (job_id, candidate_id): every scoring call appends a row
// and recomputation is an explicit separate path. The score CHECK rejects
// out-of-range values instead of clamping them.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS job_descriptions (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		summary TEXT NOT NULL DEFAULT '',
		required_skills TEXT NOT NULL DEFAULT '[]',
		experience_level TEXT NOT NULL DEFAULT '',
		raw_jd TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		resume_path TEXT NOT NULL DEFAULT '',
		resume_text TEXT NOT NULL DEFAULT '',
		skills TEXT NOT NULL DEFAULT '[]',
		experience TEXT NOT NULL DEFAULT '[]',
		education TEXT NOT NULL DEFAULT '[]',
		match_scores TEXT NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS job_matches (
		id BIGSERIAL PRIMARY KEY,
		job_id BIGINT NOT NULL REFERENCES job_descriptions(id),
		candidate_id BIGINT NOT NULL REFERENCES candidates(id),
		match_score DOUBLE PRECISION NOT NULL
			CHECK (match_score >= 0 AND match_score <= 1),
		status TEXT NOT NULL DEFAULT 'pending'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_job_matches_pair
		ON job_matches (job_id, candidate_id, id DESC)`,
	`CREATE TABLE IF NOT EXISTS candidate_matches (
		candidate_name TEXT PRIMARY KEY,
		match_score REAL NOT NULL
			CHECK (match_score >= 0 AND match_score <= 1),
		cv_path TEXT NOT NULL
	)`,
}

// EnsureSchema creates the screening tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
