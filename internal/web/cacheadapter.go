package web

import (
	"time"

	"github.com/adhok/NASA-Data-Visualization-App/internal/cache"
	"github.com/adhok/NASA-Data-Visualization-App/internal/imagecache"
)

// byteCache enables the use of the generic response cache with imagecache.
// Image entries already carry an "image-" key prefix, so they can not
// collide with the dataset entries.
type byteCache struct {
	c *cache.Cache
}

var _ imagecache.CacheService = byteCache{}

func (b byteCache) Get(key string) ([]byte, bool) {
	v, ok := b.c.Get(key)
	if !ok {
		return nil, false
	}
	dat, ok := v.([]byte)
	return dat, ok
}

func (b byteCache) Set(key string, dat []byte, timeout time.Duration) {
	b.c.Set(key, dat, timeout)
}
