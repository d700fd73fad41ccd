package usecase

import (
	"context"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/logger"
)

type schedulerUsecase struct {
	jobRepo   domain.JobRepository
	matchRepo domain.MatchRepository
	sender    domain.InviteSender
	threshold float64
}

func NewSchedulerUsecase(
	jobRepo domain.JobRepository,
	matchRepo domain.MatchRepository,
	sender domain.InviteSender,
	threshold float64,
) domain.SchedulerUsecase {
	return &schedulerUsecase{
		jobRepo:   jobRepo,
		matchRepo: matchRepo,
		sender:    sender,
		threshold: threshold,
	}
}

func (u *schedulerUsecase) InviteShortlisted(ctx context.Context, jobID int64) (*domain.BatchReport, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("job description not found")
	}

	shortlisted, err := u.matchRepo.ShortlistedCandidates(ctx, jobID, u.threshold)
	if err != nil {
		return nil, err
	}

	// One bounced invite never blocks the rest of the batch.
	report := &domain.BatchReport{}
	for _, candidate := range shortlisted {
		if err := u.sender.SendInvite(candidate, job.Title, job.Company); err != nil {
			if logger.Log != nil {
				logger.Log.Warn("interview invite failed",
					"candidate_id", candidate.CandidateID, "email", candidate.Email, "error", err)
			}
			report.AddFailure(candidate.Email, err)
			continue
		}
		report.AddSuccess()
	}
	return report, nil
}
