package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// JobDescription is an ingested job posting. Immutable after creation:
// re-ingesting the same raw text produces a new row.
type JobDescription struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Summary         string   `json:"summary"`
	RequiredSkills  []string `json:"required_skills"`
	ExperienceLevel string   `json:"experience_level"`
	RawJD           string   `json:"raw_jd"`
}

// JobSummary is the structured output of the summarization service.
// All fields may be empty when the service response is malformed.
type JobSummary struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Summary         string   `json:"summary"`
	RequiredSkills  []string `json:"required_skills"`
	ExperienceLevel string   `json:"experience_level"`
}

// Summarizer turns raw job description text into structured fields.
type Summarizer interface {
	Summarize(ctx context.Context, rawJD string) (*JobSummary, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *JobDescription) error
	GetByID(ctx context.Context, id int64) (*JobDescription, error)
	Fetch(ctx context.Context, limit, offset int) ([]JobDescription, error)
}

type JobUsecase interface {
	ProcessJobDescription(ctx context.Context, rawJD string) (int64, error)
	GetJobDetails(ctx context.Context, id int64) (*JobDescription, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]JobDescription, error)
}
