package matcher

import (
	"context"
	"fmt"
	"math"

	"github.com/nvkalyan/case_intelligence_system/internal/embedding"
)

// Scorer computes semantic closeness between two texts via the embedding
// provider.
type Scorer struct {
	provider embedding.Provider
}

// NewScorer creates a Scorer backed by the given embedding provider.
func NewScorer(provider embedding.Provider) *Scorer {
	return &Scorer{provider: provider}
}

// Score returns the cosine similarity of the two texts in [0.0, 1.0].
// Either input being empty yields 0.0 without calling the provider. Negative
// cosine similarity is floored to 0.0: the score only ever signals how alike
// two texts are, never how opposite.
func (s *Scorer) Score(ctx context.Context, textA, textB string) (float64, error) {
	if textA == "" || textB == "" {
		return 0.0, nil
	}

	vecA, err := s.provider.Embed(ctx, textA)
	if err != nil {
		return 0.0, fmt.Errorf("failed to embed text: %w", err)
	}
	vecB, err := s.provider.Embed(ctx, textB)
	if err != nil {
		return 0.0, fmt.Errorf("failed to embed text: %w", err)
	}

	sim := cosineSimilarity(vecA, vecB)
	if sim < 0 {
		return 0.0, nil
	}
	if sim > 1 {
		return 1.0, nil
	}
	return sim, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
