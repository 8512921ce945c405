package dataset

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strconv"
	"time"

	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
	"github.com/adhok/NASA-Data-Visualization-App/internal/optional"
)

// A WeatherRecord holds the sensor aggregates of one sol.
//
// A measurement can be absent when the instrument did not report.
// Absent measurements stay empty and are never coerced to zero.
type WeatherRecord struct {
	Sol           int                        `json:"sol"`
	FirstUTC      time.Time                  `json:"first_utc"`
	Season        string                     `json:"season"`
	TempAvgC      optional.Optional[float64] `json:"temp_avg_c"`
	TempMinC      optional.Optional[float64] `json:"temp_min_c"`
	TempMaxC      optional.Optional[float64] `json:"temp_max_c"`
	PressureAvgPa optional.Optional[float64] `json:"pressure_avg_pa"`
	WindAvgMS     optional.Optional[float64] `json:"wind_avg_ms"`
	WindMaxMS     optional.Optional[float64] `json:"wind_max_ms"`
}

// EarthDate returns the day the sol started on Earth.
func (r WeatherRecord) EarthDate() string {
	if r.FirstUTC.IsZero() {
		return "Unknown"
	}
	return r.FirstUTC.Format("2006-01-02")
}

// NewWeatherRecords converts an InSight feed into per sol records
// sorted by sol number.
//
// Sol keys without a data block are skipped rather than reported as
// empty records. Sol keys that are not numeric are skipped as well
// since sols are plotted on a numeric axis.
func NewWeatherRecords(feed nasa.InsightFeed) []WeatherRecord {
	records := make([]WeatherRecord, 0, len(feed.Sols))
	for _, key := range feed.SolKeys {
		s, ok := feed.Sols[key]
		if !ok {
			continue
		}
		sol, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		r := WeatherRecord{Sol: sol, Season: s.Season}
		if t, err := time.Parse(time.RFC3339, s.FirstUTC); err == nil {
			r.FirstUTC = t
		}
		if s.AT != nil {
			r.TempAvgC = optional.New(s.AT.Average)
			r.TempMinC = optional.New(s.AT.Minimum)
			r.TempMaxC = optional.New(s.AT.Maximum)
		}
		if s.PRE != nil {
			r.PressureAvgPa = optional.New(s.PRE.Average)
		}
		if s.HWS != nil {
			r.WindAvgMS = optional.New(s.HWS.Average)
			r.WindMaxMS = optional.New(s.HWS.Maximum)
		}
		records = append(records, r)
	}
	slices.SortFunc(records, func(a, b WeatherRecord) int {
		return a.Sol - b.Sol
	})
	return records
}

// insightFallbackJSON is a snapshot from when the InSight weather service
// was still reporting. The mission ended in December 2022 and the live
// feed has been unreliable since, so this snapshot keeps the weather page
// working in degraded mode.
//
//go:embed insight_fallback.json
var insightFallbackJSON []byte

// FallbackInsightFeed returns the static archived InSight feed.
func FallbackInsightFeed() nasa.InsightFeed {
	var feed nasa.InsightFeed
	if err := json.Unmarshal(insightFallbackJSON, &feed); err != nil {
		panic("insight fallback: " + err.Error())
	}
	return feed
}
