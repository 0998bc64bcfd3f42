package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedProvider wraps a Provider with a Redis cache. The underlying model is
// deterministic, so cached vectors never go stale; the TTL only bounds memory.
type CachedProvider struct {
	inner       Provider
	redisClient *redis.Client
	ttl         time.Duration
}

// NewCachedProvider creates a CachedProvider around inner.
func NewCachedProvider(inner Provider, redisClient *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner:       inner,
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Embed returns the cached vector for text, or fetches and caches it.
// Cache failures fall through to the inner provider.
func (p *CachedProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	key := embeddingCacheKey(text)

	val, err := p.redisClient.Get(ctx, key).Bytes()
	if err == nil {
		var vector []float32
		if err := json.Unmarshal(val, &vector); err == nil && len(vector) > 0 {
			return vector, nil
		}
	}
	// redis.Nil and cache read failures both fall through to the provider

	vector, err := p.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(vector); err == nil {
		// Best effort: a failed cache write must not fail the embedding
		p.redisClient.Set(ctx, key, payload, p.ttl)
	}

	return vector, nil
}

func embeddingCacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("embedding:%s", hex.EncodeToString(sum[:]))
}
