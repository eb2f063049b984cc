package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of cached prompt/response pairs.
const DefaultCacheSize = 128

// CachedClient decorates a Client with an in-process LRU cache keyed by
// prompt hash, so identical prompts within one process are billed once.
// Only successful responses are cached.
type CachedClient struct {
	inner Client
	cache *lru.Cache[string, string]
}

// NewCachedClient wraps a client with an LRU response cache.
func NewCachedClient(inner Client, size int) (*CachedClient, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedClient{inner: inner, cache: cache}, nil
}

// GenerateContent serves a repeat prompt from cache when possible.
func (c *CachedClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, false)
}

// GenerateJSON serves a repeat prompt from cache when possible.
func (c *CachedClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, true)
}

// Close closes the wrapped client.
func (c *CachedClient) Close() error {
	return c.inner.Close()
}

// Len reports the number of cached responses.
func (c *CachedClient) Len() int {
	return c.cache.Len()
}

func (c *CachedClient) generate(ctx context.Context, prompt string, tier ModelTier, asJSON bool) (string, error) {
	key := cacheKey(prompt, tier, asJSON)
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	var text string
	var err error
	if asJSON {
		text, err = c.inner.GenerateJSON(ctx, prompt, tier)
	} else {
		text, err = c.inner.GenerateContent(ctx, prompt, tier)
	}
	if err != nil {
		return "", err
	}

	c.cache.Add(key, text)
	return text, nil
}

func cacheKey(prompt string, tier ModelTier, asJSON bool) string {
	h := sha256.New()
	h.Write([]byte(tier))
	if asJSON {
		h.Write([]byte{'j'})
	} else {
		h.Write([]byte{'t'})
	}
	h.Write([]byte(prompt))
	return hex.EncodeToString(h.Sum(nil))
}
