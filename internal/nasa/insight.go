package nasa

import (
	"context"
	"encoding/json"
	"net/url"
)

// InsightFeed is the payload of the InSight Mars weather service.
//
// The per sol data blocks appear at the top level of the JSON object keyed
// by sol number, next to the sol_keys index. A sol listed in SolKeys may
// have no corresponding data block.
//
// The InSight mission stopped returning telemetry when the lander's solar
// panels degraded, so the live service may serve an empty or truncated feed.
type InsightFeed struct {
	SolKeys []string
	Sols    map[string]InsightSol
}

// InsightSol holds the sensor aggregates for one sol.
// A nil sensor means the instrument did not report for that sol.
type InsightSol struct {
	AT       *InsightSensor `json:"AT"`
	HWS      *InsightSensor `json:"HWS"`
	PRE      *InsightSensor `json:"PRE"`
	FirstUTC string         `json:"First_UTC"`
	LastUTC  string         `json:"Last_UTC"`
	Season   string         `json:"Season"`
}

// InsightSensor holds the aggregates of one sensor over one sol.
type InsightSensor struct {
	Average float64 `json:"av"`
	Count   int     `json:"ct"`
	Minimum float64 `json:"mn"`
	Maximum float64 `json:"mx"`
}

func (f *InsightFeed) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.SolKeys = []string{}
	if v, ok := raw["sol_keys"]; ok {
		if err := json.Unmarshal(v, &f.SolKeys); err != nil {
			return err
		}
	}
	f.Sols = make(map[string]InsightSol)
	for _, k := range f.SolKeys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		var s InsightSol
		if err := json.Unmarshal(v, &s); err != nil {
			return err
		}
		f.Sols[k] = s
	}
	return nil
}

// InsightWeather returns the most recent sols of the InSight weather archive.
func (c *Client) InsightWeather(ctx context.Context) (InsightFeed, error) {
	q := url.Values{}
	q.Set("feedtype", "json")
	q.Set("ver", "1.0")
	return getJSON[InsightFeed](ctx, c, "/insight_weather/", q)
}
