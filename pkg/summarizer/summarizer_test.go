package summarizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	output string
	err    error
}

func (s *stubGenerator) GenerateContent(context.Context, string) (string, error) {
	return s.output, s.err
}

func TestSummarize(t *testing.T) {
	t.Run("Should parse a structured response", func(t *testing.T) {
		svc := newService(&stubGenerator{output: "```json\n" +
			`{"title":"Backend Engineer","company":"Acme","summary":"Build services","required_skills":["Go","SQL"],"experience_level":"senior"}` +
			"\n```"})

		summary, err := svc.Summarize(context.Background(), "raw jd text")

		assert.NoError(t, err)
		assert.Equal(t, "Backend Engineer", summary.Title)
		assert.Equal(t, "Acme", summary.Company)
		assert.Equal(t, []string{"Go", "SQL"}, summary.RequiredSkills)
		assert.Equal(t, "senior", summary.ExperienceLevel)
	})

	t.Run("Should accept comma-separated skills", func(t *testing.T) {
		svc := newService(&stubGenerator{output: `{"title":"Dev","required_skills":"Go, SQL, Docker"}`})

		summary, err := svc.Summarize(context.Background(), "raw jd text")

		assert.NoError(t, err)
		assert.Equal(t, []string{"Go", "SQL", "Docker"}, summary.RequiredSkills)
	})

	t.Run("Should degrade to empty fields on malformed output", func(t *testing.T) {
		svc := newService(&stubGenerator{output: "I could not parse that job description, sorry."})

		summary, err := svc.Summarize(context.Background(), "raw jd text")

		assert.NoError(t, err)
		assert.Empty(t, summary.Title)
		assert.Empty(t, summary.Company)
		assert.Empty(t, summary.RequiredSkills)
	})

	t.Run("Should degrade to empty fields when generation fails", func(t *testing.T) {
		svc := newService(&stubGenerator{err: errors.New("rate limited")})

		summary, err := svc.Summarize(context.Background(), "raw jd text")

		assert.NoError(t, err)
		assert.Empty(t, summary.Title)
	})

	t.Run("Should reject empty input", func(t *testing.T) {
		svc := newService(&stubGenerator{})
		_, err := svc.Summarize(context.Background(), "  ")
		assert.Error(t, err)
	})
}

func TestCleanJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSON(`{"a":1}`))
}
