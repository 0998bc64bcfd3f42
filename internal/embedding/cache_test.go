package embedding

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider struct {
	vector []float32
	calls  int
}

func (p *staticProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	p.calls++
	return p.vector, nil
}

func TestCachedProvider_FallsThroughWhenCacheDown(t *testing.T) {
	// Nothing listens here; every cache operation fails
	deadCache := redis.NewClient(&redis.Options{
		Addr:        "localhost:1",
		DialTimeout: 100 * time.Millisecond,
	})
	inner := &staticProvider{vector: []float32{0.5, 0.5}}

	provider := NewCachedProvider(inner, deadCache, time.Hour)
	vector, err := provider.Embed(context.Background(), "robbery downtown")

	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, vector)
	assert.Equal(t, 1, inner.calls)
}

func TestEmbeddingCacheKey_Deterministic(t *testing.T) {
	assert.Equal(t, embeddingCacheKey("same text"), embeddingCacheKey("same text"))
	assert.NotEqual(t, embeddingCacheKey("text a"), embeddingCacheKey("text b"))
}
