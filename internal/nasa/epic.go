package nasa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// EpicCollection selects between the two EPIC imagery collections.
type EpicCollection string

const (
	EpicNatural  EpicCollection = "natural"
	EpicEnhanced EpicCollection = "enhanced"
)

var ErrUnknownCollection = errors.New("unknown EPIC collection")

// ParseEpicCollection converts a string into an EpicCollection.
func ParseEpicCollection(s string) (EpicCollection, error) {
	switch c := EpicCollection(strings.ToLower(s)); c {
	case EpicNatural, EpicEnhanced:
		return c, nil
	}
	return "", fmt.Errorf("%s: %w", s, ErrUnknownCollection)
}

// An EpicImage describes one full disk Earth capture by the EPIC camera.
type EpicImage struct {
	Identifier          string      `json:"identifier"`
	Caption             string      `json:"caption"`
	Image               string      `json:"image"`
	Version             string      `json:"version"`
	CentroidCoordinates Coordinates `json:"centroid_coordinates"`
	DscovrJ2000Position Position    `json:"dscovr_j2000_position"`
	LunarJ2000Position  Position    `json:"lunar_j2000_position"`
	SunJ2000Position    Position    `json:"sun_j2000_position"`
	Date                EpicTime    `json:"date"`
}

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Position is a J2000 coordinate vector in km.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

const epicTimeLayout = "2006-01-02 15:04:05"

// EpicTime handles the timestamp format of the EPIC API,
// a combined date and time with optional fractional seconds.
type EpicTime struct {
	time.Time
}

func (t *EpicTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := time.Parse(epicTimeLayout, s)
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}

func (t EpicTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(epicTimeLayout))
}

// EpicImages returns the image descriptors for a collection and date.
// A zero date requests the most recent available set.
func (c *Client) EpicImages(ctx context.Context, collection EpicCollection, date time.Time) ([]EpicImage, error) {
	q := url.Values{}
	if !date.IsZero() {
		q.Set("date", date.Format(dateFormat))
	}
	return getJSON[[]EpicImage](ctx, c, fmt.Sprintf("/EPIC/api/%s", collection), q)
}

// EpicImageURL returns the archive URL for an image in the png format.
//
// The API does not return image URLs. They must be constructed from the
// collection, the capture date and the image identifier. The path carries
// the date as zero padded yyyy/mm/dd segments.
func (c *Client) EpicImageURL(collection EpicCollection, identifier string, date time.Time) string {
	return fmt.Sprintf(
		"%s/EPIC/archive/%s/%04d/%02d/%02d/png/%s.png?api_key=%s",
		baseURL,
		collection,
		date.Year(),
		int(date.Month()),
		date.Day(),
		identifier,
		url.QueryEscape(c.apiKey),
	)
}
