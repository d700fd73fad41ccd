package postgres

import (
	"context"
	"errors"

	"go-screening-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgCheckViolation      = "23514"
	pgForeignKeyViolation = "23503"
)

// latestMatchPerPair selects the most recent score for every
// (job, candidate) pair of a job. Scoring appends rows, so plain joins
// would surface stale duplicates.
const latestMatchPerPair = `
	SELECT DISTINCT ON (candidate_id) candidate_id, match_score
	FROM job_matches
	WHERE job_id = $1
	ORDER BY candidate_id, id DESC`

type matchRepo struct {
	db *pgxpool.Pool
}

func NewMatchRepository(db *pgxpool.Pool) domain.MatchRepository {
	return &matchRepo{db: db}
}

func (r *matchRepo) Create(ctx context.Context, record *domain.MatchRecord) error {
	if record.Status == "" {
		record.Status = domain.MatchStatusPending
	}

	query := `
		INSERT INTO job_matches (job_id, candidate_id, match_score, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		record.JobID, record.CandidateID, record.Score, record.Status,
	).Scan(&record.ID)
	if err != nil {
		return wrapMatchWriteError(err)
	}
	return nil
}

func (r *matchRepo) RecomputeLatest(ctx context.Context, record *domain.MatchRecord) error {
	if record.Status == "" {
		record.Status = domain.MatchStatusPending
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return &domain.PersistenceError{Op: "begin recompute", Err: err}
	}
	defer tx.Rollback(ctx)

	update := `
		UPDATE job_matches
		SET match_score = $3, status = $4
		WHERE id = (
			SELECT id FROM job_matches
			WHERE job_id = $1 AND candidate_id = $2
			ORDER BY id DESC LIMIT 1
		)
		RETURNING id`

	err = tx.QueryRow(ctx, update,
		record.JobID, record.CandidateID, record.Score, record.Status,
	).Scan(&record.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		insert := `
			INSERT INTO job_matches (job_id, candidate_id, match_score, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id`
		err = tx.QueryRow(ctx, insert,
			record.JobID, record.CandidateID, record.Score, record.Status,
		).Scan(&record.ID)
	}
	if err != nil {
		return wrapMatchWriteError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return &domain.PersistenceError{Op: "commit recompute", Err: err}
	}
	return nil
}

func (r *matchRepo) ShortlistedCandidates(ctx context.Context, jobID int64, threshold float64) ([]domain.ShortlistedCandidate, error) {
	query := `
		SELECT c.id, c.name, c.email, c.resume_path, jm.match_score
		FROM candidates c
		JOIN (` + latestMatchPerPair + `) jm ON c.id = jm.candidate_id
		WHERE jm.match_score >= $2
		ORDER BY jm.match_score DESC, c.id ASC`

	rows, err := r.db.Query(ctx, query, jobID, threshold)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "query shortlisted candidates", Err: err}
	}
	defer rows.Close()

	shortlisted := make([]domain.ShortlistedCandidate, 0)
	for rows.Next() {
		var sc domain.ShortlistedCandidate
		if err := rows.Scan(&sc.CandidateID, &sc.Name, &sc.Email, &sc.ResumePath, &sc.Score); err != nil {
			return nil, &domain.PersistenceError{Op: "scan shortlisted candidate", Err: err}
		}
		shortlisted = append(shortlisted, sc)
	}
	return shortlisted, rows.Err()
}

func (r *matchRepo) PublishTopMatches(ctx context.Context, jobID int64, topN int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return &domain.PersistenceError{Op: "begin dashboard publish", Err: err}
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_matches`); err != nil {
		return &domain.PersistenceError{Op: "clear dashboard snapshot", Err: err}
	}

	insert := `
		INSERT INTO candidate_matches (candidate_name, match_score, cv_path)
		SELECT c.name, jm.match_score::real, c.resume_path
		FROM candidates c
		JOIN (` + latestMatchPerPair + `) jm ON c.id = jm.candidate_id
		ORDER BY jm.match_score DESC, c.id ASC
		LIMIT $2
		ON CONFLICT (candidate_name) DO NOTHING`

	if _, err := tx.Exec(ctx, insert, jobID, topN); err != nil {
		return wrapMatchWriteError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return &domain.PersistenceError{Op: "commit dashboard publish", Err: err}
	}
	return nil
}

func (r *matchRepo) DashboardRows(ctx context.Context, limit int) ([]domain.DashboardRow, error) {
	query := `
		SELECT candidate_name, match_score, cv_path
		FROM candidate_matches
		ORDER BY match_score DESC, candidate_name ASC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "query dashboard rows", Err: err}
	}
	defer rows.Close()

	result := make([]domain.DashboardRow, 0)
	for rows.Next() {
		var row domain.DashboardRow
		if err := rows.Scan(&row.CandidateName, &row.MatchScore, &row.CVPath); err != nil {
			return nil, &domain.PersistenceError{Op: "scan dashboard row", Err: err}
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func wrapMatchWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCheckViolation:
			return &domain.PersistenceError{Op: "insert match (score outside [0,1])", Err: err}
		case pgForeignKeyViolation:
			return &domain.PersistenceError{Op: "insert match (unknown job or candidate)", Err: err}
		}
	}
	return &domain.PersistenceError{Op: "write match", Err: err}
}
