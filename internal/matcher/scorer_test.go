package matcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns canned vectors per text. Unknown texts get a zero
// vector so an unexpected lookup shows up as a zero score, not a panic.
type stubProvider struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (p *stubProvider) Embed(_ context.Context, text string) ([]float32, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	if vec, ok := p.vectors[text]; ok {
		return vec, nil
	}
	return []float32{0, 0, 0}, nil
}

func TestScore_SelfSimilarity(t *testing.T) {
	provider := &stubProvider{vectors: map[string][]float32{
		"violent assaults at night": {0.3, 0.5, 0.1},
	}}
	scorer := NewScorer(provider)

	score, err := scorer.Score(context.Background(), "violent assaults at night", "violent assaults at night")

	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScore_EmptyInput(t *testing.T) {
	provider := &stubProvider{}
	scorer := NewScorer(provider)

	score, err := scorer.Score(context.Background(), "", "anything")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	score, err = scorer.Score(context.Background(), "anything", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	// No comparison attempted, so the provider is never called
	assert.Equal(t, 0, provider.calls)
}

func TestScore_NegativeCosineFloored(t *testing.T) {
	provider := &stubProvider{vectors: map[string][]float32{
		"a": {1, 0, 0},
		"b": {-1, 0, 0},
	}}
	scorer := NewScorer(provider)

	score, err := scorer.Score(context.Background(), "a", "b")

	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestScore_ProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("embedding service unavailable")}
	scorer := NewScorer(provider)

	_, err := scorer.Score(context.Background(), "a", "b")

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to embed text")
}

func TestCosineSimilarity_MismatchedLengths(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}
