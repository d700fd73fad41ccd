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

func TestInviteShortlisted(t *testing.T) {
	ctx := context.Background()

	t.Run("one bounced invite does not stop the batch", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		matchRepo := new(mockMatchRepo)
		sender := new(mockInviteSender)
		uc := NewSchedulerUsecase(jobRepo, matchRepo, sender, 0.80)

		jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.JobDescription{ID: 1, Title: "Backend Engineer", Company: "Acme"}, nil)
		matchRepo.On("ShortlistedCandidates", ctx, int64(1), 0.80).Return([]domain.ShortlistedCandidate{
			{CandidateID: 1, Name: "Alice", Email: "alice@example.com", Score: 0.95},
			{CandidateID: 2, Name: "Bob", Email: "bob@example.com", Score: 0.88},
		}, nil)
		sender.On("SendInvite", mock.MatchedBy(func(c domain.ShortlistedCandidate) bool {
			return c.Email == "alice@example.com"
		}), "Backend Engineer", "Acme").Return(errors.New("smtp refused"))
		sender.On("SendInvite", mock.MatchedBy(func(c domain.ShortlistedCandidate) bool {
			return c.Email == "bob@example.com"
		}), "Backend Engineer", "Acme").Return(nil)

		report, err := uc.InviteShortlisted(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 2, report.Processed)
		assert.Equal(t, 1, report.Succeeded)
		assert.Equal(t, 1, report.Failed)
		assert.Equal(t, "alice@example.com", report.Failures[0].Item)
		sender.AssertNumberOfCalls(t, "SendInvite", 2)
	})

	t.Run("unknown job", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		uc := NewSchedulerUsecase(jobRepo, new(mockMatchRepo), new(mockInviteSender), 0.80)
		jobRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.InviteShortlisted(ctx, 99)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("empty shortlist sends nothing", func(t *testing.T) {
		jobRepo := new(mockJobRepo)
		matchRepo := new(mockMatchRepo)
		sender := new(mockInviteSender)
		uc := NewSchedulerUsecase(jobRepo, matchRepo, sender, 0.80)

		jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.JobDescription{ID: 1, Title: "SRE"}, nil)
		matchRepo.On("ShortlistedCandidates", ctx, int64(1), 0.80).Return([]domain.ShortlistedCandidate{}, nil)

		report, err := uc.InviteShortlisted(ctx, 1)

		assert.NoError(t, err)
		assert.Zero(t, report.Processed)
		sender.AssertNotCalled(t, "SendInvite")
	})
}
