package embedding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubBackend struct {
	vectors map[string][]float64
	calls   int
}

func (s *stubBackend) Embed(_ context.Context, text string) ([]float64, error) {
	s.calls++
	return s.vectors[text], nil
}

func TestCosine(t *testing.T) {
	t.Run("Self similarity is 1", func(t *testing.T) {
		v := []float64{0.3, -0.2, 0.9}
		assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
	})

	t.Run("Orthogonal vectors score 0", func(t *testing.T) {
		assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	})

	t.Run("Opposite vectors score -1", func(t *testing.T) {
		assert.InDelta(t, -1.0, Cosine([]float64{1, 2}, []float64{-1, -2}), 1e-9)
	})

	t.Run("Zero or mismatched vectors score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}))
		assert.Equal(t, 0.0, Cosine([]float64{1}, []float64{1, 1}))
		assert.Equal(t, 0.0, Cosine(nil, nil))
	})
}

func TestServiceSimilarity(t *testing.T) {
	backend := &stubBackend{vectors: map[string][]float64{
		"go backend":  {1, 0, 0},
		"go services": {1, 0, 0},
		"pastry chef": {0, 1, 0},
	}}
	svc := newService(backend, time.Second, nil)

	t.Run("Self similarity is within epsilon of 1", func(t *testing.T) {
		score, err := svc.Similarity(context.Background(), "go backend", "go backend")
		assert.NoError(t, err)
		assert.InDelta(t, 1.0, score, 1e-6)
	})

	t.Run("Unrelated texts score lower than related ones", func(t *testing.T) {
		related, err := svc.Similarity(context.Background(), "go backend", "go services")
		assert.NoError(t, err)
		unrelated, err := svc.Similarity(context.Background(), "go backend", "pastry chef")
		assert.NoError(t, err)
		assert.Greater(t, related, unrelated)
	})

	t.Run("Rejects empty text", func(t *testing.T) {
		_, err := svc.Similarity(context.Background(), "", "go backend")
		assert.Error(t, err)
	})
}

func TestServiceMemoization(t *testing.T) {
	backend := &stubBackend{vectors: map[string][]float64{"repeated": {1, 1}}}
	svc := newService(backend, time.Second, nil)

	for i := 0; i < 3; i++ {
		_, err := svc.Embed(context.Background(), "repeated")
		assert.NoError(t, err)
	}

	assert.Equal(t, 1, backend.calls)
}
