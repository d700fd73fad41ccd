package embedding

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

// Cache is an optional second-tier vector store keyed by content hash.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]float64, bool)
	Set(ctx context.Context, key string, vector []float64)
}

type backend interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Service computes embeddings and cosine similarities. Every vector is
// memoized process-locally by content hash, with an optional external cache
// tier, so repeated shortlist runs do not recompute the job embedding or
// previously seen candidate embeddings.
type Service struct {
	backend backend
	timeout time.Duration
	cache   Cache

	mu      sync.RWMutex
	vectors map[string][]float64
}

func newService(b backend, timeout time.Duration, cache Cache) *Service {
	return &Service{
		backend: b,
		timeout: timeout,
		cache:   cache,
		vectors: make(map[string][]float64),
	}
}

// Embed returns the embedding vector for the given text.
func (s *Service) Embed(ctx context.Context, text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text must not be empty")
	}

	key := contentKey(text)

	s.mu.RLock()
	vector, ok := s.vectors[key]
	s.mu.RUnlock()
	if ok {
		return vector, nil
	}

	if s.cache != nil {
		if vector, ok := s.cache.Get(ctx, key); ok {
			s.remember(key, vector)
			return vector, nil
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	vector, err := s.backend.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("encode text: %w", err)
	}

	s.remember(key, vector)
	if s.cache != nil {
		s.cache.Set(ctx, key, vector)
	}
	return vector, nil
}

// Similarity returns the cosine similarity of the two texts' embeddings.
// The theoretical range is [-1, 1]; clamping is the caller's decision.
func (s *Service) Similarity(ctx context.Context, textA, textB string) (float64, error) {
	vectorA, err := s.Embed(ctx, textA)
	if err != nil {
		return 0, err
	}
	vectorB, err := s.Embed(ctx, textB)
	if err != nil {
		return 0, err
	}
	return Cosine(vectorA, vectorB), nil
}

func (s *Service) remember(key string, vector []float64) {
	s.mu.Lock()
	s.vectors[key] = vector
	s.mu.Unlock()
}

// Cosine computes the cosine similarity of two vectors. Mismatched or
// zero-magnitude vectors yield 0.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func contentKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x", sum[:])
}
