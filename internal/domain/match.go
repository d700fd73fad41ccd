package domain

import "context"

// MatchStatusPending is the initial status of every match record. The
// screening core never transitions it; downstream collaborators own the
// invited/scheduled states.
const MatchStatusPending = "pending"

// MatchRecord joins a job and a candidate with a similarity score in [0,1].
type MatchRecord struct {
	ID          int64   `json:"id"`
	JobID       int64   `json:"job_id"`
	CandidateID int64   `json:"candidate_id"`
	Score       float64 `json:"match_score"`
	Status      string  `json:"status"`
}

// ShortlistEntry is one ranked shortlist row returned by the matching engine.
type ShortlistEntry struct {
	CandidateID int64   `json:"candidate_id"`
	Score       float64 `json:"match_score"`
}

// ShortlistedCandidate carries the candidate details the notification
// collaborator needs alongside the score.
type ShortlistedCandidate struct {
	CandidateID int64   `json:"candidate_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	ResumePath  string  `json:"resume_path"`
	Score       float64 `json:"match_score"`
}

// DashboardRow is the query contract exposed to the dashboard collaborator.
type DashboardRow struct {
	CandidateName string  `json:"candidate_name"`
	MatchScore    float64 `json:"match_score"`
	CVPath        string  `json:"cv_path"`
}

// Embedder is the external embedding capability consumed by the matching
// engine. Embed must be deterministic for a fixed model version; Similarity
// is the cosine of the two texts' embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	Similarity(ctx context.Context, textA, textB string) (float64, error)
}

type MatchRepository interface {
	Create(ctx context.Context, record *MatchRecord) error
	// RecomputeLatest replaces the most recent record for the (job, candidate)
	// pair, inserting when none exists yet.
	RecomputeLatest(ctx context.Context, record *MatchRecord) error
	ShortlistedCandidates(ctx context.Context, jobID int64, threshold float64) ([]ShortlistedCandidate, error)
	PublishTopMatches(ctx context.Context, jobID int64, topN int) error
	DashboardRows(ctx context.Context, limit int) ([]DashboardRow, error)
}

type MatchingUsecase interface {
	ScoreMatch(ctx context.Context, jobID, candidateID int64) (float64, error)
	RecomputeMatch(ctx context.Context, jobID, candidateID int64) (float64, error)
	Shortlist(ctx context.Context, jobID int64) ([]ShortlistEntry, *BatchReport, error)
	PublishDashboard(ctx context.Context, jobID int64) error
	TopMatches(ctx context.Context, limit int) ([]DashboardRow, error)
}

// InviteSender delivers one templated interview invitation.
type InviteSender interface {
	SendInvite(candidate ShortlistedCandidate, jobTitle, company string) error
}

type SchedulerUsecase interface {
	InviteShortlisted(ctx context.Context, jobID int64) (*BatchReport, error)
}
