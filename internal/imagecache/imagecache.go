// Package imagecache fetches and caches remote images.
//
// The EPIC archive serves multi megabyte PNGs and every download counts
// against the API key's upstream rate limit, so image bytes are cached
// and concurrent requests for the same image are collapsed into a single
// download.
package imagecache

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"
)

var ErrNoImage = errors.New("no image from server")

// CacheService defines a cache service.
type CacheService interface {
	Get(string) ([]byte, bool)
	Set(string, []byte, time.Duration)
}

// HTTPError represents a HTTP response with status code >= 400.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (r HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %s", r.Status)
}

// ImageCache represents a service which caches downloaded images.
type ImageCache struct {
	cache      CacheService
	httpClient *http.Client
	sfg        *singleflight.Group
}

// New returns a new ImageCache.
//
// When no httpClient (nil) is provided it will use the default client.
func New(cache CacheService, httpClient *http.Client) *ImageCache {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	s := &ImageCache{
		cache:      cache,
		httpClient: httpClient,
		sfg:        new(singleflight.Group),
	}
	return s
}

// Image returns the image at url.
// It returns it from cache or - if not found - will try to fetch it from the server.
func (s *ImageCache) Image(url string, timeout time.Duration) ([]byte, error) {
	key := "image-" + makeMD5Hash(url)
	dat, found := s.cache.Get(key)
	if !found {
		x, err, _ := s.sfg.Do(key, func() (any, error) {
			byt, err := loadDataFromURL(url, s.httpClient)
			if err != nil {
				return nil, err
			}
			s.cache.Set(key, byt, timeout)
			return byt, nil
		})
		if err != nil {
			return nil, err
		}
		dat = x.([]byte)
	}
	return dat, nil
}

func loadDataFromURL(url string, client *http.Client) ([]byte, error) {
	r, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()
	if r.StatusCode >= 400 {
		err := HTTPError{StatusCode: r.StatusCode, Status: r.Status}
		return nil, err
	}
	dat, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(dat) == 0 {
		return nil, fmt.Errorf("%s: %w", url, ErrNoImage)
	}
	return dat, nil
}

func makeMD5Hash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}
