package usecase

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) Create(ctx context.Context, job *domain.JobDescription) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *mockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobDescription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobDescription), args.Error(1)
}

func (m *mockJobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobDescription, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobDescription), args.Error(1)
}

type mockCandidateRepo struct {
	mock.Mock
}

func (m *mockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	args := m.Called(ctx, candidate)
	return args.Error(0)
}

func (m *mockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *mockCandidateRepo) ListIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *mockCandidateRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Candidate, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

type mockMatchRepo struct {
	mock.Mock
}

func (m *mockMatchRepo) Create(ctx context.Context, record *domain.MatchRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockMatchRepo) RecomputeLatest(ctx context.Context, record *domain.MatchRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockMatchRepo) ShortlistedCandidates(ctx context.Context, jobID int64, threshold float64) ([]domain.ShortlistedCandidate, error) {
	args := m.Called(ctx, jobID, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShortlistedCandidate), args.Error(1)
}

func (m *mockMatchRepo) PublishTopMatches(ctx context.Context, jobID int64, topN int) error {
	args := m.Called(ctx, jobID, topN)
	return args.Error(0)
}

func (m *mockMatchRepo) DashboardRows(ctx context.Context, limit int) ([]domain.DashboardRow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DashboardRow), args.Error(1)
}

type mockEmbedder struct {
	mock.Mock
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *mockEmbedder) Similarity(ctx context.Context, a, b string) (float64, error) {
	args := m.Called(ctx, a, b)
	return args.Get(0).(float64), args.Error(1)
}

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Summarize(ctx context.Context, rawJD string) (*domain.JobSummary, error) {
	args := m.Called(ctx, rawJD)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSummary), args.Error(1)
}

type mockInviteSender struct {
	mock.Mock
}

func (m *mockInviteSender) SendInvite(candidate domain.ShortlistedCandidate, jobTitle, company string) error {
	args := m.Called(candidate, jobTitle, company)
	return args.Error(0)
}
