package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
)

func writeResume(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIngestResume(t *testing.T) {
	ctx := context.Background()

	t.Run("extracts fields from resume text", func(t *testing.T) {
		path := writeResume(t, t.TempDir(), "jane.txt",
			"Jane Doe. Engineer at Acme 2019 - 2021. Masters degree from MIT.")
		repo := new(mockCandidateRepo)
		uc := NewCandidateUsecase(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Candidate).ID = 11
			}).Return(nil)

		id, err := uc.IngestResume(ctx, path, "Jane Doe", "jane@example.com")

		assert.NoError(t, err)
		assert.Equal(t, int64(11), id)
		candidate := repo.Calls[0].Arguments.Get(1).(*domain.Candidate)
		assert.NotEmpty(t, candidate.ResumeText)
		assert.Len(t, candidate.Experiences, 1)
		assert.Equal(t, "Engineer", candidate.Experiences[0].Role)
		assert.Equal(t, "Acme", candidate.Experiences[0].Company)
		assert.Len(t, candidate.Education, 1)
		assert.Equal(t, []string{"Engineer"}, candidate.Skills)
	})

	t.Run("missing resume file still records candidate", func(t *testing.T) {
		repo := new(mockCandidateRepo)
		uc := NewCandidateUsecase(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil)

		_, err := uc.IngestResume(ctx, "/nonexistent/resume.txt", "Bob", "bob@example.com")

		assert.NoError(t, err)
		candidate := repo.Calls[0].Arguments.Get(1).(*domain.Candidate)
		assert.Empty(t, candidate.ResumeText)
		assert.Empty(t, candidate.Experiences)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		uc := NewCandidateUsecase(new(mockCandidateRepo))

		_, err := uc.IngestResume(ctx, "resume.txt", "Bob", "not-an-email")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := NewCandidateUsecase(new(mockCandidateRepo))

		_, err := uc.IngestResume(ctx, "resume.txt", "", "bob@example.com")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
	})
}

func TestIngestDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("ingests supported files only", func(t *testing.T) {
		dir := t.TempDir()
		writeResume(t, dir, "alice.txt", "Alice. Engineer at Globex 2020.")
		writeResume(t, dir, "bob.txt", "Bob. Baker at Sweet 2018.")
		writeResume(t, dir, "photo.png", "binary junk")

		repo := new(mockCandidateRepo)
		uc := NewCandidateUsecase(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil)

		report, err := uc.IngestDirectory(ctx, dir)

		assert.NoError(t, err)
		assert.Equal(t, 2, report.Processed)
		assert.Equal(t, 2, report.Succeeded)
		assert.Equal(t, 0, report.Failed)
		repo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("missing directory", func(t *testing.T) {
		uc := NewCandidateUsecase(new(mockCandidateRepo))

		_, err := uc.IngestDirectory(ctx, "/nonexistent/resumes")

		var ingErr *domain.IngestionError
		assert.ErrorAs(t, err, &ingErr)
	})

	t.Run("one bad row does not stop the batch", func(t *testing.T) {
		dir := t.TempDir()
		writeResume(t, dir, "alice.txt", "Alice. Engineer at Globex 2020.")
		writeResume(t, dir, "bob.txt", "Bob. Baker at Sweet 2018.")

		repo := new(mockCandidateRepo)
		uc := NewCandidateUsecase(repo)
		repo.On("Create", ctx, mock.MatchedBy(func(c *domain.Candidate) bool {
			return c.Name == "alice"
		})).Return(&domain.PersistenceError{Op: "insert candidate"})
		repo.On("Create", ctx, mock.MatchedBy(func(c *domain.Candidate) bool {
			return c.Name == "bob"
		})).Return(nil)

		report, err := uc.IngestDirectory(ctx, dir)

		assert.NoError(t, err)
		assert.Equal(t, 2, report.Processed)
		assert.Equal(t, 1, report.Succeeded)
		assert.Equal(t, 1, report.Failed)
		assert.Len(t, report.Failures, 1)
	})
}
