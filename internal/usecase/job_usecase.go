package usecase

import (
	"context"
	"strings"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/logger"
)

type jobUsecase struct {
	jobRepo    domain.JobRepository
	summarizer domain.Summarizer
}

func NewJobUsecase(jobRepo domain.JobRepository, summarizer domain.Summarizer) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:    jobRepo,
		summarizer: summarizer,
	}
}

func (u *jobUsecase) ProcessJobDescription(ctx context.Context, rawJD string) (int64, error) {
	if strings.TrimSpace(rawJD) == "" {
		return 0, apperror.BadRequest("job description text is empty")
	}

	summary, err := u.summarizer.Summarize(ctx, rawJD)
	if err != nil {
		if logger.Log != nil {
			logger.Log.Warn("job summarization degraded", "error", err)
		}
		summary = &domain.JobSummary{}
	}

	job := &domain.JobDescription{
		Title:           summary.Title,
		Company:         summary.Company,
		Summary:         summary.Summary,
		RequiredSkills:  summary.RequiredSkills,
		ExperienceLevel: summary.ExperienceLevel,
		RawJD:           rawJD,
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return 0, err
	}
	return job.ID, nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobDescription, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("job description not found")
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.JobDescription, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return u.jobRepo.Fetch(ctx, pageSize, (page-1)*pageSize)
}
