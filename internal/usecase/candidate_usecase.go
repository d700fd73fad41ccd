package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-screening-backend/internal/domain"
	"go-screening-backend/internal/extraction"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/logger"
)

var resumeExtensions = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".docx": true,
	".doc":  true,
}

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		validate:      validator.New(),
	}
}

func (u *candidateUsecase) IngestResume(ctx context.Context, resumePath, name, email string) (int64, error) {
	candidate := &domain.Candidate{
		Name:       name,
		Email:      email,
		ResumePath: resumePath,
	}
	if err := u.validate.Struct(candidate); err != nil {
		return 0, apperror.BadRequest(fmt.Sprintf("invalid candidate: %v", err))
	}

	// Unreadable or corrupted resumes still produce a candidate row, just
	// with empty text and no extracted fields.
	text, err := extraction.ExtractText(resumePath)
	if err != nil {
		if logger.Log != nil {
			logger.Log.Warn("resume text extraction failed", "path", resumePath, "error", err)
		}
		text = ""
	}

	candidate.ResumeText = text
	candidate.Experiences = extraction.ExtractExperiences(text)
	candidate.Education = extraction.ExtractEducation(text)
	candidate.Skills = deriveSkills(candidate)

	if err := u.candidateRepo.Create(ctx, candidate); err != nil {
		return 0, err
	}
	return candidate.ID, nil
}

func (u *candidateUsecase) IngestDirectory(ctx context.Context, dir string) (*domain.BatchReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.IngestionError{Path: dir, Reason: "cannot read resume directory", Err: err}
	}

	report := &domain.BatchReport{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !resumeExtensions[ext] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if _, err := u.IngestResume(ctx, path, name, ""); err != nil {
			if logger.Log != nil {
				logger.Log.Warn("resume ingestion failed", "path", path, "error", err)
			}
			report.AddFailure(path, err)
			continue
		}
		report.AddSuccess()
	}
	return report, nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("candidate not found")
	}
	return candidate, nil
}

// deriveSkills falls back to experience roles when no explicit skill list
// was extracted, so the matching composite never loses the role signal.
func deriveSkills(candidate *domain.Candidate) []string {
	if len(candidate.Skills) > 0 {
		return candidate.Skills
	}
	var skills []string
	for _, exp := range candidate.Experiences {
		if exp.Role != "" && exp.Role != domain.UnknownSentinel {
			skills = append(skills, exp.Role)
		}
	}
	return skills
}
