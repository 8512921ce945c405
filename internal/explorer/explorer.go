// Package explorer provides the dataset pipelines behind the dashboard pages.
//
// Each pipeline fetches a raw payload from the NASA API, normalizes it into
// flat records and memoizes the result. Responses are cached per dataset and
// query for a fixed TTL so repeated page loads inside the window do not
// consume upstream rate limit quota. Cache keys are hashed and include the
// API key, so switching keys never serves another key's results and the key
// itself never appears in logs or cache dumps.
package explorer

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adhok/NASA-Data-Visualization-App/internal/dataset"
	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
)

// cache timeouts per dataset
const (
	photosTimeout  = time.Hour
	neoTimeout     = time.Hour
	epicTimeout    = time.Hour
	weatherTimeout = time.Hour * 24
)

// CacheService defines a cache service.
type CacheService interface {
	Get(string) (any, bool)
	Set(string, any, time.Duration)
}

// Service provides normalized NASA datasets with response memoization.
type Service struct {
	client *nasa.Client
	cache  CacheService
}

// New returns a new Service.
func New(client *nasa.Client, cache CacheService) *Service {
	return &Service{client: client, cache: cache}
}

// MarsPhotos returns the photos one rover took on one earth date.
// A day without photos yields an empty slice, which is a normal result.
func (s *Service) MarsPhotos(ctx context.Context, rover string, date time.Time) ([]dataset.PhotoRecord, error) {
	key := s.makeKey("photos", rover, date.Format("2006-01-02"))
	if v, ok := s.cache.Get(key); ok {
		slog.Debug("photo cache hit", "rover", rover, "date", date.Format("2006-01-02"))
		return v.([]dataset.PhotoRecord), nil
	}
	photos, err := s.client.MarsPhotos(ctx, rover, date)
	if err != nil {
		return nil, fmt.Errorf("fetch mars photos: %w", err)
	}
	records := dataset.NewPhotoRecords(photos)
	s.cache.Set(key, records, photosTimeout)
	return records, nil
}

// NeoFeed returns the near earth objects approaching within a date range,
// flattened to one record per object and date.
//
// The range is clamped to the feed's 7 day maximum before the request.
func (s *Service) NeoFeed(ctx context.Context, start, end time.Time) ([]dataset.NeoRecord, error) {
	end, _ = dataset.ClampNeoRange(start, end)
	key := s.makeKey("neo", start.Format("2006-01-02"), end.Format("2006-01-02"))
	if v, ok := s.cache.Get(key); ok {
		slog.Debug("neo cache hit", "start", start.Format("2006-01-02"), "end", end.Format("2006-01-02"))
		return v.([]dataset.NeoRecord), nil
	}
	feed, err := s.client.NeoFeed(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch neo feed: %w", err)
	}
	records := dataset.FlattenNeoFeed(feed)
	s.cache.Set(key, records, neoTimeout)
	return records, nil
}

// WeatherResult is the outcome of the weather pipeline.
// Degraded reports that the archived snapshot was substituted because the
// live service did not deliver usable data.
type WeatherResult struct {
	Records  []dataset.WeatherRecord
	Degraded bool
}

// Weather returns the InSight weather records sorted by sol.
//
// The InSight weather service was discontinued, so this pipeline never
// fails: when the live feed is unreachable, malformed or empty it degrades
// to the archived snapshot instead of returning an error.
func (s *Service) Weather(ctx context.Context) WeatherResult {
	key := s.makeKey("weather")
	if v, ok := s.cache.Get(key); ok {
		slog.Debug("weather cache hit")
		return v.(WeatherResult)
	}
	var result WeatherResult
	feed, err := s.client.InsightWeather(ctx)
	if err != nil || len(feed.Sols) == 0 {
		if err != nil {
			slog.Warn("InSight weather service unavailable, using archived snapshot", "error", err)
		} else {
			slog.Warn("InSight weather feed is empty, using archived snapshot")
		}
		feed = dataset.FallbackInsightFeed()
		result.Degraded = true
	}
	result.Records = dataset.NewWeatherRecords(feed)
	s.cache.Set(key, result, weatherTimeout)
	return result
}

// EpicImages returns the Earth imagery for a collection and day.
// A zero date returns the most recent available set.
//
// The API leaves image URLs to the client, so callers supply the builder
// that turns a descriptor into a URL. Results are cached per collection
// and date, the builder must be deterministic.
func (s *Service) EpicImages(ctx context.Context, collection nasa.EpicCollection, date time.Time, imageURL func(nasa.EpicImage) string) ([]dataset.EpicImageRecord, error) {
	day := "latest"
	if !date.IsZero() {
		day = date.Format("2006-01-02")
	}
	key := s.makeKey("epic", string(collection), day)
	if v, ok := s.cache.Get(key); ok {
		slog.Debug("epic cache hit", "collection", collection, "date", day)
		return v.([]dataset.EpicImageRecord), nil
	}
	images, err := s.client.EpicImages(ctx, collection, date)
	if err != nil {
		return nil, fmt.Errorf("fetch epic images: %w", err)
	}
	records := dataset.NewEpicImageRecords(images, imageURL)
	s.cache.Set(key, records, epicTimeout)
	return records, nil
}

// EpicImageURL returns the upstream archive URL for one image.
func (s *Service) EpicImageURL(collection nasa.EpicCollection, identifier string, date time.Time) string {
	return s.client.EpicImageURL(collection, identifier, date)
}

// makeKey builds a cache key from a dataset tag and its query parameters.
// The parameters are hashed together with the API key.
func (s *Service) makeKey(tag string, params ...string) string {
	h := md5.Sum([]byte(strings.Join(params, "|") + "|" + s.client.APIKey()))
	return tag + "-" + hex.EncodeToString(h[:])
}
