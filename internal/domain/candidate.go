package domain

import "context"

// UnknownSentinel fills optional extraction captures that the heuristic
// patterns did not pick up (e.g. a role with no duration).
const UnknownSentinel = "Unknown"

// Experience is a single employment record mined from resume text.
type Experience struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

// Education is a single education record mined from resume text.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Candidate is an ingested resume. Append-only: ingestion never updates
// an existing row. Skills falls back to the role of each Experience when
// no explicit skill list is supplied.
type Candidate struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name" validate:"required"`
	Email       string       `json:"email" validate:"omitempty,email"`
	ResumePath  string       `json:"resume_path"`
	ResumeText  string       `json:"resume_text"`
	Skills      []string     `json:"skills"`
	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	ListIDs(ctx context.Context) ([]int64, error)
	Fetch(ctx context.Context, limit, offset int) ([]Candidate, error)
}

type CandidateUsecase interface {
	IngestResume(ctx context.Context, resumePath, name, email string) (int64, error)
	IngestDirectory(ctx context.Context, dir string) (*BatchReport, error)
	GetCandidate(ctx context.Context, id int64) (*Candidate, error)
}
