package nasa_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
)

func TestNeoFeed(t *testing.T) {
	c := nasa.New("", http.DefaultClient)
	ctx := context.Background()

	t.Run("can fetch a feed for a date range", func(t *testing.T) {
		// given
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		fixture := `{
			"element_count": 2,
			"near_earth_objects": {
				"2024-01-01": [
					{
						"id": "3542519",
						"neo_reference_id": "3542519",
						"name": "(2010 PK9)",
						"nasa_jpl_url": "https://ssd.jpl.nasa.gov/tools/sbdb_lookup.html#/?sstr=3542519",
						"absolute_magnitude_h": 21.87,
						"estimated_diameter": {
							"kilometers": {"estimated_diameter_min": 0.1010543415, "estimated_diameter_max": 0.2259643771}
						},
						"is_potentially_hazardous_asteroid": true,
						"close_approach_data": [
							{
								"close_approach_date": "2024-01-01",
								"close_approach_date_full": "2024-Jan-01 10:47",
								"epoch_date_close_approach": 1704106020000,
								"relative_velocity": {
									"kilometers_per_second": "8.0236652449",
									"kilometers_per_hour": "28885.1948818054",
									"miles_per_hour": "17948.4451784884"
								},
								"miss_distance": {
									"astronomical": "0.3027469593",
									"lunar": "117.7685671677",
									"kilometers": "45290298.225725691",
									"miles": "28142086.3515817758"
								},
								"orbiting_body": "Earth"
							}
						],
						"is_sentry_object": false
					}
				],
				"2024-01-02": [
					{
						"id": "54339874",
						"neo_reference_id": "54339874",
						"name": "(2023 BU)",
						"nasa_jpl_url": "https://ssd.jpl.nasa.gov/tools/sbdb_lookup.html#/?sstr=54339874",
						"absolute_magnitude_h": 29.7,
						"estimated_diameter": {
							"kilometers": {"estimated_diameter_min": 0.0038420168, "estimated_diameter_max": 0.0085909125}
						},
						"is_potentially_hazardous_asteroid": false,
						"close_approach_data": [],
						"is_sentry_object": false
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
		feed, err := c.NeoFeed(
			ctx,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		)
		// then
		if assert.NoError(t, err) {
			assert.Equal(t, 2, feed.ElementCount)
			assert.Len(t, feed.NearEarthObjects, 2)
			objs := feed.NearEarthObjects["2024-01-01"]
			if assert.Len(t, objs, 1) {
				o := objs[0]
				assert.Equal(t, "(2010 PK9)", o.Name)
				assert.True(t, o.IsPotentiallyHazardousAsteroid)
				assert.Equal(t, 0.1010543415, o.EstimatedDiameter.Kilometers.Min)
				assert.Equal(t, 0.2259643771, o.EstimatedDiameter.Kilometers.Max)
				if assert.Len(t, o.CloseApproachData, 1) {
					ca := o.CloseApproachData[0]
					assert.Equal(t, "45290298.225725691", ca.MissDistance.Kilometers)
					assert.Equal(t, "28885.1948818054", ca.RelativeVelocity.KilometersPerHour)
					assert.Equal(t, "Earth", ca.OrbitingBody)
				}
			}
			assert.Empty(t, feed.NearEarthObjects["2024-01-02"][0].CloseApproachData)
		}
	})
}
