package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
)

func TestProcessJobDescription(t *testing.T) {
	ctx := context.Background()

	t.Run("persists summarized job", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		summarizer := new(mockSummarizer)
		uc := NewJobUsecase(jobRepo, summarizer)

		summarizer.On("Summarize", ctx, "raw jd text").Return(&domain.JobSummary{
			Title:           "Backend Engineer",
			Company:         "Acme",
			Summary:         "Build APIs",
			RequiredSkills:  []string{"Go", "PostgreSQL"},
			ExperienceLevel: "Senior",
		}, nil)
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobDescription")).
			Run(func(args mock.Arguments) {
				job := args.Get(1).(*domain.JobDescription)
				job.ID = 7
			}).Return(nil)

		id, err := uc.ProcessJobDescription(ctx, "raw jd text")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
		job := jobRepo.Calls[0].Arguments.Get(1).(*domain.JobDescription)
		assert.Equal(t, "Backend Engineer", job.Title)
		assert.Equal(t, "raw jd text", job.RawJD)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, job.RequiredSkills)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		uc := NewJobUsecase(new(mockJobRepo), new(mockSummarizer))

		_, err := uc.ProcessJobDescription(ctx, "   ")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("degrades when summarization fails", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		summarizer := new(mockSummarizer)
		uc := NewJobUsecase(jobRepo, summarizer)

		summarizer.On("Summarize", ctx, "raw jd").Return(nil, errors.New("model unavailable"))
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobDescription")).Return(nil)

		_, err := uc.ProcessJobDescription(ctx, "raw jd")

		assert.NoError(t, err)
		job := jobRepo.Calls[0].Arguments.Get(1).(*domain.JobDescription)
		assert.Empty(t, job.Title)
		assert.Equal(t, "raw jd", job.RawJD)
	})
}

func TestGetJobDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		uc := NewJobUsecase(jobRepo, new(mockSummarizer))
		jobRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.GetJobDetails(ctx, 99)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("found", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		uc := NewJobUsecase(jobRepo, new(mockSummarizer))
		jobRepo.On("GetByID", ctx, int64(3)).Return(&domain.JobDescription{ID: 3, Title: "SRE"}, nil)

		job, err := uc.GetJobDetails(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, "SRE", job.Title)
	})
}
