package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/logger"
)

type matchingUsecase struct {
	jobRepo       domain.JobRepository
	candidateRepo domain.CandidateRepository
	matchRepo     domain.MatchRepository
	embedder      domain.Embedder
	threshold     float64
	topN          int
}

func NewMatchingUsecase(
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	matchRepo domain.MatchRepository,
	embedder domain.Embedder,
	threshold float64,
	topN int,
) domain.MatchingUsecase {
	return &matchingUsecase{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		matchRepo:     matchRepo,
		embedder:      embedder,
		threshold:     threshold,
		topN:          topN,
	}
}

func (u *matchingUsecase) ScoreMatch(ctx context.Context, jobID, candidateID int64) (float64, error) {
	return u.score(ctx, jobID, candidateID, u.matchRepo.Create)
}

func (u *matchingUsecase) RecomputeMatch(ctx context.Context, jobID, candidateID int64) (float64, error) {
	return u.score(ctx, jobID, candidateID, u.matchRepo.RecomputeLatest)
}

func (u *matchingUsecase) score(ctx context.Context, jobID, candidateID int64, persist func(context.Context, *domain.MatchRecord) error) (float64, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return 0, err
	}
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return 0, err
	}
	// A missing job or candidate is a no-match, not an error: score 0.0
	// and nothing is written.
	if job == nil || candidate == nil {
		return 0, nil
	}

	score, err := u.embedder.Similarity(ctx, jobCompositeText(job), candidateCompositeText(candidate))
	if err != nil {
		return 0, &domain.EmbeddingError{Err: err}
	}
	score = clamp01(score)

	record := &domain.MatchRecord{
		JobID:       jobID,
		CandidateID: candidateID,
		Score:       score,
		Status:      domain.MatchStatusPending,
	}
	if err := persist(ctx, record); err != nil {
		return score, err
	}
	return score, nil
}

func (u *matchingUsecase) Shortlist(ctx context.Context, jobID int64) ([]domain.ShortlistEntry, *domain.BatchReport, error) {
	ids, err := u.candidateRepo.ListIDs(ctx)
	if err != nil {
		return nil, nil, err
	}

	report := &domain.BatchReport{}
	var entries []domain.ShortlistEntry
	for _, id := range ids {
		score, err := u.ScoreMatch(ctx, jobID, id)
		if err != nil {
			if logger.Log != nil {
				logger.Log.Warn("candidate scoring failed", "job_id", jobID, "candidate_id", id, "error", err)
			}
			report.AddFailure(fmt.Sprintf("candidate %d", id), err)
			continue
		}
		report.AddSuccess()
		if score >= u.threshold {
			entries = append(entries, domain.ShortlistEntry{CandidateID: id, Score: score})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].CandidateID < entries[j].CandidateID
	})
	return entries, report, nil
}

func (u *matchingUsecase) PublishDashboard(ctx context.Context, jobID int64) error {
	return u.matchRepo.PublishTopMatches(ctx, jobID, u.topN)
}

func (u *matchingUsecase) TopMatches(ctx context.Context, limit int) ([]domain.DashboardRow, error) {
	if limit <= 0 {
		limit = u.topN
	}
	return u.matchRepo.DashboardRows(ctx, limit)
}

func jobCompositeText(job *domain.JobDescription) string {
	parts := []string{job.Title, job.Summary, strings.Join(job.RequiredSkills, " ")}
	return joinNonEmpty(parts)
}

func candidateCompositeText(candidate *domain.Candidate) string {
	parts := []string{candidate.Name, strings.Join(candidate.Skills, " ")}
	for _, exp := range candidate.Experiences {
		parts = append(parts, fmt.Sprintf("%s at %s (%s)", exp.Role, exp.Company, exp.Duration))
	}
	return joinNonEmpty(parts)
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
