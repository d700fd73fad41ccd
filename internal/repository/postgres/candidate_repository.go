package postgres

import (
	"context"
	"errors"

	"go-screening-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (name, email, resume_path, resume_text, skills, experience, education, match_scores)
		VALUES ($1, $2, $3, $4, $5, $6, $7, '{}')
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		candidate.Name,
		candidate.Email,
		candidate.ResumePath,
		candidate.ResumeText,
		encodeStrings(candidate.Skills),
		encodeExperiences(candidate.Experiences),
		encodeEducation(candidate.Education),
	).Scan(&candidate.ID)
	if err != nil {
		return &domain.PersistenceError{Op: "insert candidate", Err: err}
	}
	return nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `
		SELECT id, name, email, resume_path, resume_text, skills, experience, education
		FROM candidates WHERE id = $1`

	var candidate domain.Candidate
	var skillsJSON, experienceJSON, educationJSON string

	err := r.db.QueryRow(ctx, query, id).Scan(
		&candidate.ID, &candidate.Name, &candidate.Email,
		&candidate.ResumePath, &candidate.ResumeText,
		&skillsJSON, &experienceJSON, &educationJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &domain.PersistenceError{Op: "get candidate", Err: err}
	}

	candidate.Skills = decodeStrings(skillsJSON)
	candidate.Experiences = decodeExperiences(experienceJSON)
	candidate.Education = decodeEducation(educationJSON)
	return &candidate, nil
}

func (r *candidateRepository) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM candidates ORDER BY id`)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list candidate ids", Err: err}
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, &domain.PersistenceError{Op: "scan candidate id", Err: err}
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *candidateRepository) Fetch(ctx context.Context, limit, offset int) ([]domain.Candidate, error) {
	query := `
		SELECT id, name, email, resume_path, resume_text, skills, experience, education
		FROM candidates ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "fetch candidates", Err: err}
	}
	defer rows.Close()

	candidates := make([]domain.Candidate, 0)
	for rows.Next() {
		var candidate domain.Candidate
		var skillsJSON, experienceJSON, educationJSON string
		if err := rows.Scan(
			&candidate.ID, &candidate.Name, &candidate.Email,
			&candidate.ResumePath, &candidate.ResumeText,
			&skillsJSON, &experienceJSON, &educationJSON,
		); err != nil {
			return nil, &domain.PersistenceError{Op: "scan candidate", Err: err}
		}
		candidate.Skills = decodeStrings(skillsJSON)
		candidate.Experiences = decodeExperiences(experienceJSON)
		candidate.Education = decodeEducation(educationJSON)
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}
