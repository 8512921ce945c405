package explorer_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/adhok/NASA-Data-Visualization-App/internal/cache"
	"github.com/adhok/NASA-Data-Visualization-App/internal/dataset"
	"github.com/adhok/NASA-Data-Visualization-App/internal/explorer"
	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
)

func newService() (*explorer.Service, *cache.Cache) {
	c := cache.NewWithTimeout(0)
	s := explorer.New(nasa.New("", http.DefaultClient), c)
	return s, c
}

func TestMarsPhotos(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2023, 7, 14, 0, 0, 0, 0, time.UTC)

	t.Run("can fetch and normalize photos", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s, _ := newService()
		fixture := `{
			"photos": [
				{
					"id": 1228854,
					"sol": 3892,
					"camera": {"name": "FHAZ", "full_name": "Front Hazard Avoidance Camera"},
					"img_src": "https://mars.nasa.gov/photo.jpg",
					"earth_date": "2023-07-14",
					"rover": {"name": "Curiosity", "status": "active"}
				}
			]
		}`
		httpmock.RegisterResponder(
			"GET",
			"https://api.nasa.gov/mars-photos/api/v1/rovers/curiosity/photos?api_key=DEMO_KEY&earth_date=2023-07-14",
			httpmock.NewStringResponder(200, fixture),
		)
		// when
		got, err := s.MarsPhotos(ctx, "Curiosity", date)
		// then
		if assert.NoError(t, err) {
			if assert.Len(t, got, 1) {
				assert.Equal(t, "FHAZ", got[0].Camera)
				assert.Equal(t, "active", got[0].RoverStatus)
			}
		}
	})
	t.Run("should serve repeated request from cache", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s, _ := newService()
		httpmock.RegisterResponder(
			"GET",
			"https://api.nasa.gov/mars-photos/api/v1/rovers/curiosity/photos?api_key=DEMO_KEY&earth_date=2023-07-14",
			httpmock.NewStringResponder(200, `{"photos": []}`),
		)
		// when
		_, err1 := s.MarsPhotos(ctx, "Curiosity", date)
		_, err2 := s.MarsPhotos(ctx, "Curiosity", date)
		// then
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Equal(t, 1, httpmock.GetTotalCallCount())
	})
	t.Run("should return error when upstream fails", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s, _ := newService()
		httpmock.RegisterResponder(
			"GET",
			"https://api.nasa.gov/mars-photos/api/v1/rovers/curiosity/photos?api_key=DEMO_KEY&earth_date=2023-07-14",
			httpmock.NewStringResponder(500, `{}`),
		)
		// when
		_, err := s.MarsPhotos(ctx, "Curiosity", date)
		// then
		assert.Error(t, err)
	})
}

func TestNeoFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("should flatten objects across the date range", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s, _ := newService()
		fixture := `{
			"element_count": 3,
			"near_earth_objects": {
				"2024-01-01": [
					{
						"id": "1", "name": "a",
						"estimated_diameter": {"kilometers": {"estimated_diameter_min": 0.1, "estimated_diameter_max": 0.3}},
						"is_potentially_hazardous_asteroid": true,
						"close_approach_data": [
							{
								"close_approach_date": "2024-01-01",
								"relative_velocity": {"kilometers_per_hour": "28885.19"},
								"miss_distance": {"kilometers": "45290298.22"}
							}
						]
					},
					{
						"id": "2", "name": "b",
						"estimated_diameter": {"kilometers": {"estimated_diameter_min": 0.01, "estimated_diameter_max": 0.02}},
						"is_potentially_hazardous_asteroid": false,
						"close_approach_data": []
					}
				],
				"2024-01-03": [
					{
						"id": "3", "name": "c",
						"estimated_diameter": {"kilometers": {"estimated_diameter_min": 0.2, "estimated_diameter_max": 0.4}},
						"is_potentially_hazardous_asteroid": false,
						"close_approach_data": []
					}
				]
			}
		}`
		httpmock.RegisterResponder(
			"GET",
			"https://api.nasa.gov/neo/rest/v1/feed?api_key=DEMO_KEY&end_date=2024-01-03&start_date=2024-01-01",
			httpmock.NewStringResponder(200, fixture),
		)
		// when
		got, err := s.NeoFeed(
			ctx,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		)
		// then
		if assert.NoError(t, err) {
			if assert.Len(t, got, 3) {
				hazardous := dataset.FilterHazardous(got)
				if assert.Len(t, hazardous, 1) {
					assert.Equal(t, "1", hazardous[0].ID)
				}
			}
		}
	})
	t.Run("should clamp ranges over the feed maximum", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s, _ := newService()
		httpmock.RegisterResponder(
			"GET",
			"https://api.nasa.gov/neo/rest/v1/feed?api_key=DEMO_KEY&end_date=2024-01-08&start_date=2024-01-01",
			httpmock.NewStringResponder(200, `{"element_count": 0, "near_earth_objects": {}}`),
		)
		// when
		got, err := s.NeoFeed(
			ctx,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		)
		// then
		if assert.NoError(t, err) {
			assert.Len(t, got, 0)
		}
	})
}

func TestWeather(t *testing.T) {
	ctx := context.Background()

	t.Run("can normalize the live feed", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s, _ := newService()
		fixture := `{
			"259": {
				"AT": {"av": -77.064, "ct": 152488, "mn": -99.429, "mx": -13.668},
				"First_UTC": "2019-08-19T08:03:59Z",
				"Last_UTC": "2019-08-20T08:43:34Z",
				"Season": "winter"
			},
			"sol_keys": ["259"]
		}`
		httpmock.RegisterResponder(
			"GET",
			"https://api.nasa.gov/insight_weather/?api_key=DEMO_KEY&feedtype=json&ver=1.0",
			httpmock.NewStringResponder(200, fixture),
		)
		// when
		got := s.Weather(ctx)
		// then
		assert.False(t, got.Degraded)
		if assert.Len(t, got.Records, 1) {
			assert.Equal(t, 259, got.Records[0].Sol)
		}
	})
	t.Run("should degrade to archived snapshot when service fails", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s, _ := newService()
		httpmock.RegisterResponder(
			"GET",
			"https://api.nasa.gov/insight_weather/?api_key=DEMO_KEY&feedtype=json&ver=1.0",
			httpmock.NewStringResponder(503, `{}`),
		)
		// when
		got := s.Weather(ctx)
		// then
		assert.True(t, got.Degraded)
		if assert.Len(t, got.Records, 1) {
			assert.Equal(t, 259, got.Records[0].Sol)
		}
	})
	t.Run("should degrade when live feed has no sols", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s, _ := newService()
		httpmock.RegisterResponder(
			"GET",
			"https://api.nasa.gov/insight_weather/?api_key=DEMO_KEY&feedtype=json&ver=1.0",
			httpmock.NewStringResponder(200, `{"sol_keys": []}`),
		)
		// when
		got := s.Weather(ctx)
		// then
		assert.True(t, got.Degraded)
		assert.NotEmpty(t, got.Records)
	})
	t.Run("should cache the degraded result", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s, _ := newService()
		httpmock.RegisterResponder(
			"GET",
			"https://api.nasa.gov/insight_weather/?api_key=DEMO_KEY&feedtype=json&ver=1.0",
			httpmock.NewStringResponder(503, `{}`),
		)
		// when
		s.Weather(ctx)
		s.Weather(ctx)
		// then
		assert.Equal(t, 1, httpmock.GetTotalCallCount())
	})
}

func TestEpicImages(t *testing.T) {
	ctx := context.Background()
	urlOf := func(img nasa.EpicImage) string {
		return "/epic/image/natural/" + img.Identifier + ".png"
	}

	t.Run("can fetch and normalize descriptors", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s, _ := newService()
		fixture := `[
			{
				"identifier": "20230714001751",
				"image": "epic_1b_20230714001751",
				"centroid_coordinates": {"lat": 4.975586, "lon": 159.51416},
				"dscovr_j2000_position": {"x": -648898.934, "y": -1280720.884, "z": -555894.774},
				"date": "2023-07-14 00:13:03"
			}
		]`
		httpmock.RegisterResponder(
			"GET",
			"https://api.nasa.gov/EPIC/api/natural?api_key=DEMO_KEY&date=2023-07-14",
			httpmock.NewStringResponder(200, fixture),
		)
		// when
		got, err := s.EpicImages(ctx, nasa.EpicNatural, time.Date(2023, 7, 14, 0, 0, 0, 0, time.UTC), urlOf)
		// then
		if assert.NoError(t, err) {
			if assert.Len(t, got, 1) {
				assert.Equal(t, "/epic/image/natural/20230714001751.png", got[0].ImageURL)
				assert.False(t, got[0].Position.IsEmpty())
			}
		}
	})
	t.Run("should return empty result for day without imagery", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s, _ := newService()
		httpmock.RegisterResponder(
			"GET",
			"https://api.nasa.gov/EPIC/api/natural?api_key=DEMO_KEY&date=2030-01-01",
			httpmock.NewStringResponder(200, `[]`),
		)
		// when
		got, err := s.EpicImages(ctx, nasa.EpicNatural, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), urlOf)
		// then
		if assert.NoError(t, err) {
			assert.Len(t, got, 0)
		}
	})
}
