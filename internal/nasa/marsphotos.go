package nasa

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// A RoverPhoto is a single photograph taken by a Mars rover.
type RoverPhoto struct {
	ID        int         `json:"id"`
	Sol       int         `json:"sol"`
	Camera    RoverCamera `json:"camera"`
	ImgSrc    string      `json:"img_src"`
	EarthDate string      `json:"earth_date"`
	Rover     Rover       `json:"rover"`
}

// A RoverCamera identifies the instrument a photo was taken with.
type RoverCamera struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	RoverID  int    `json:"rover_id"`
	FullName string `json:"full_name"`
}

// A Rover describes a Mars rover mission.
type Rover struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	LandingDate string `json:"landing_date"`
	LaunchDate  string `json:"launch_date"`
	Status      string `json:"status"`
}

type marsPhotosPage struct {
	Photos []RoverPhoto `json:"photos"`
}

// MarsPhotos returns all photos taken by a rover on a given earth date.
//
// A day on which the rover did not image returns an empty slice,
// which is a normal result and not an error.
func (c *Client) MarsPhotos(ctx context.Context, rover string, earthDate time.Time) ([]RoverPhoto, error) {
	q := url.Values{}
	q.Set("earth_date", earthDate.Format(dateFormat))
	p := fmt.Sprintf("/mars-photos/api/v1/rovers/%s/photos", url.PathEscape(strings.ToLower(rover)))
	page, err := getJSON[marsPhotosPage](ctx, c, p, q)
	if err != nil {
		return nil, err
	}
	return page.Photos, nil
}
