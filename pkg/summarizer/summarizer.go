package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/logger"
)

const summarizePrompt = `Analyze the following job description and extract key details.

%s

Respond with a single JSON object containing exactly these fields:
- "title": the job title
- "company": the hiring company
- "summary": a short summary of the role
- "required_skills": a JSON array of skill strings
- "experience_level": e.g. "junior", "mid", "senior"

Respond with JSON only, no prose.`

type generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service summarizes raw job description text into structured fields.
// Malformed or failed generations degrade to an all-empty-fields summary
// rather than failing the caller.
type Service struct {
	gen generator
}

func newService(gen generator) *Service {
	return &Service{gen: gen}
}

func (s *Service) Summarize(ctx context.Context, rawJD string) (*domain.JobSummary, error) {
	if strings.TrimSpace(rawJD) == "" {
		return nil, errors.New("job description text must not be empty")
	}

	output, err := s.gen.GenerateContent(ctx, fmt.Sprintf(summarizePrompt, rawJD))
	if err != nil {
		logDegrade("generation failed", err)
		return &domain.JobSummary{}, nil
	}

	summary, err := parseSummary(CleanJSON(output))
	if err != nil {
		logDegrade("non-structured response", err)
		return &domain.JobSummary{}, nil
	}
	return summary, nil
}

func parseSummary(payload string) (*domain.JobSummary, error) {
	var raw struct {
		Title           string          `json:"title"`
		Company         string          `json:"company"`
		Summary         string          `json:"summary"`
		RequiredSkills  json.RawMessage `json:"required_skills"`
		ExperienceLevel string          `json:"experience_level"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}

	return &domain.JobSummary{
		Title:           raw.Title,
		Company:         raw.Company,
		Summary:         raw.Summary,
		RequiredSkills:  parseSkills(raw.RequiredSkills),
		ExperienceLevel: raw.ExperienceLevel,
	}, nil
}

// parseSkills accepts either a JSON array of strings or a single
// comma-separated string, since models return both shapes.
func parseSkills(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		skills := make([]string, 0)
		for _, s := range strings.Split(joined, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
		return skills
	}

	return []string{}
}

// CleanJSON strips markdown code fences that models wrap JSON output in.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

func logDegrade(reason string, err error) {
	if logger.Log == nil {
		return
	}
	logger.Log.Warn("job description summarization degraded to empty fields", "reason", reason, "error", err)
}
