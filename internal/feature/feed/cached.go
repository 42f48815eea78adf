package feed

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-feed-reader/internal/capability"
	"github.com/MKhiriev/go-feed-reader/internal/utils"
	"github.com/MKhiriev/go-feed-reader/models"
	"github.com/patrickmn/go-cache"
)

// Cached decorates load with c. The last successful result is kept under the
// value returned by key and served without calling load until it expires.
// An empty key bypasses the cache. Errors are never cached.
//
// A nil load yields a nil capability; a nil c or key returns load unchanged.
func Cached(load capability.LoadFeeds, c *cache.Cache, key func() string) capability.LoadFeeds {
	if load == nil {
		return nil
	}
	if c == nil || key == nil {
		return load
	}

	return func(ctx context.Context, done func([]models.FeedItem, error)) {
		done = utils.OnceCompletion(done, nil)

		k := key()
		if k != "" {
			if v, ok := c.Get(k); ok {
				if items, ok := v.([]models.FeedItem); ok {
					done(slices.Clone(items), nil)
					return
				}
			}
		}

		load(ctx, func(items []models.FeedItem, err error) {
			if err == nil && k != "" {
				c.SetDefault(k, slices.Clone(items))
			}
			done(items, err)
		})
	}
}
