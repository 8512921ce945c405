package nasa

import (
	"context"
	"net/url"
	"time"
)

// NeoFeed is the response of the near earth object feed endpoint.
// Objects are grouped by approach date. The feed accepts date ranges
// of at most 7 days, which callers must enforce before the request.
type NeoFeed struct {
	ElementCount     int              `json:"element_count"`
	NearEarthObjects map[string][]Neo `json:"near_earth_objects"`
}

// A Neo describes one near earth object on one approach date.
type Neo struct {
	ID                             string            `json:"id"`
	NeoReferenceID                 string            `json:"neo_reference_id"`
	Name                           string            `json:"name"`
	NasaJplURL                     string            `json:"nasa_jpl_url"`
	AbsoluteMagnitudeH             float64           `json:"absolute_magnitude_h"`
	EstimatedDiameter              EstimatedDiameter `json:"estimated_diameter"`
	IsPotentiallyHazardousAsteroid bool              `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData              []CloseApproach   `json:"close_approach_data"`
	IsSentryObject                 bool              `json:"is_sentry_object"`
}

// EstimatedDiameter holds the estimated size bounds of an object per unit.
type EstimatedDiameter struct {
	Kilometers DiameterRange `json:"kilometers"`
	Meters     DiameterRange `json:"meters"`
	Miles      DiameterRange `json:"miles"`
	Feet       DiameterRange `json:"feet"`
}

// DiameterRange is an estimated min/max size bound.
type DiameterRange struct {
	Min float64 `json:"estimated_diameter_min"`
	Max float64 `json:"estimated_diameter_max"`
}

// CloseApproach describes one close approach event.
//
// The API returns the numeric distance and velocity fields as strings.
type CloseApproach struct {
	CloseApproachDate      string           `json:"close_approach_date"`
	CloseApproachDateFull  string           `json:"close_approach_date_full"`
	EpochDateCloseApproach int64            `json:"epoch_date_close_approach"`
	RelativeVelocity       RelativeVelocity `json:"relative_velocity"`
	MissDistance           MissDistance     `json:"miss_distance"`
	OrbitingBody           string           `json:"orbiting_body"`
}

// RelativeVelocity is the speed of an object relative to Earth.
type RelativeVelocity struct {
	KilometersPerSecond string `json:"kilometers_per_second"`
	KilometersPerHour   string `json:"kilometers_per_hour"`
	MilesPerHour        string `json:"miles_per_hour"`
}

// MissDistance is the closest distance between an object and Earth.
type MissDistance struct {
	Astronomical string `json:"astronomical"`
	Lunar        string `json:"lunar"`
	Kilometers   string `json:"kilometers"`
	Miles        string `json:"miles"`
}

// NeoFeed returns all near earth objects approaching within a date range.
func (c *Client) NeoFeed(ctx context.Context, start, end time.Time) (NeoFeed, error) {
	q := url.Values{}
	q.Set("start_date", start.Format(dateFormat))
	q.Set("end_date", end.Format(dateFormat))
	return getJSON[NeoFeed](ctx, c, "/neo/rest/v1/feed", q)
}
