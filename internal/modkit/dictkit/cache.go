package dictkit

import (
	"context"
	"sync"
)

// Cached wraps a Provider and memoizes resolved dictionaries by tag
// loads are serialized; resolution happens once per tag
func Cached(inner Provider) Provider {
	return &cachedProvider{inner: inner, dicts: map[string]Dictionary{}}
}

type cachedProvider struct {
	inner Provider
	mu    sync.Mutex
	dicts map[string]Dictionary
}

// Dictionary resolves through the cache, loading from inner on first use
func (c *cachedProvider) Dictionary(ctx context.Context, lang string) (Dictionary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.dicts[lang]; ok {
		return d, nil
	}
	d, err := c.inner.Dictionary(ctx, lang)
	if err != nil {
		return nil, err
	}
	c.dicts[lang] = d
	return d, nil
}

// Languages delegates to the wrapped provider
func (c *cachedProvider) Languages() []string { return c.inner.Languages() }
