package postgres

import (
	"context"
	"errors"

	"go-screening-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobDescription) error {
	query := `
		INSERT INTO job_descriptions (title, company, summary, required_skills, experience_level, raw_jd)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		job.Title,
		job.Company,
		job.Summary,
		encodeStrings(job.RequiredSkills),
		job.ExperienceLevel,
		job.RawJD,
	).Scan(&job.ID)
	if err != nil {
		return &domain.PersistenceError{Op: "insert job description", Err: err}
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobDescription, error) {
	query := `
		SELECT id, title, company, summary, required_skills, experience_level, raw_jd
		FROM job_descriptions WHERE id = $1`

	var job domain.JobDescription
	var skillsJSON string

	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Company, &job.Summary,
		&skillsJSON, &job.ExperienceLevel, &job.RawJD,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &domain.PersistenceError{Op: "get job description", Err: err}
	}

	job.RequiredSkills = decodeStrings(skillsJSON)
	return &job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobDescription, error) {
	query := `
		SELECT id, title, company, summary, required_skills, experience_level, raw_jd
		FROM job_descriptions ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "fetch job descriptions", Err: err}
	}
	defer rows.Close()

	jobs := make([]domain.JobDescription, 0)
	for rows.Next() {
		var job domain.JobDescription
		var skillsJSON string
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Summary,
			&skillsJSON, &job.ExperienceLevel, &job.RawJD,
		); err != nil {
			return nil, &domain.PersistenceError{Op: "scan job description", Err: err}
		}
		job.RequiredSkills = decodeStrings(skillsJSON)
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
