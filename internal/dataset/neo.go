package dataset

import (
	"maps"
	"slices"
	"time"

	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
	"github.com/adhok/NASA-Data-Visualization-App/internal/xslices"
)

// MaxNeoRangeDays is the maximum date range the NEO feed accepts.
const MaxNeoRangeDays = 7

// A NeoRecord is one near earth object on one approach date.
//
// The approach fields come from the first close approach entry only.
// An object approaching several times within the window surfaces just
// its first event.
type NeoRecord struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Date              string  `json:"date"`
	DiameterMinKM     float64 `json:"diameter_min_km"`
	DiameterMaxKM     float64 `json:"diameter_max_km"`
	AvgDiameterKM     float64 `json:"avg_diameter_km"`
	Hazardous         bool    `json:"is_hazardous"`
	CloseApproachDate string  `json:"close_approach_date"`
	MissDistanceKM    float64 `json:"miss_distance_km"`
	VelocityKPH       float64 `json:"relative_velocity_kph"`
}

// FlattenNeoFeed flattens a NEO feed into one record per object and date.
//
// Date keys are processed in sorted order so the result is deterministic.
// Objects without close approach entries keep zero values for the
// approach fields instead of being dropped.
func FlattenNeoFeed(feed nasa.NeoFeed) []NeoRecord {
	dates := slices.Sorted(maps.Keys(feed.NearEarthObjects))
	records := make([]NeoRecord, 0, feed.ElementCount)
	for _, date := range dates {
		for _, o := range feed.NearEarthObjects[date] {
			r := NeoRecord{
				ID:            o.ID,
				Name:          o.Name,
				Date:          date,
				DiameterMinKM: o.EstimatedDiameter.Kilometers.Min,
				DiameterMaxKM: o.EstimatedDiameter.Kilometers.Max,
				Hazardous:     o.IsPotentiallyHazardousAsteroid,
			}
			r.AvgDiameterKM = (r.DiameterMinKM + r.DiameterMaxKM) / 2
			if len(o.CloseApproachData) > 0 {
				ca := o.CloseApproachData[0]
				r.CloseApproachDate = ca.CloseApproachDate
				r.MissDistanceKM = parseFloat(ca.MissDistance.Kilometers)
				r.VelocityKPH = parseFloat(ca.RelativeVelocity.KilometersPerHour)
			}
			records = append(records, r)
		}
	}
	return records
}

// FilterHazardous returns only the potentially hazardous objects.
func FilterHazardous(records []NeoRecord) []NeoRecord {
	return xslices.Filter(records, func(r NeoRecord) bool {
		return r.Hazardous
	})
}

// FilterBySize returns the objects whose estimated diameter range
// overlaps the interval [minKM, maxKM].
func FilterBySize(records []NeoRecord, minKM, maxKM float64) []NeoRecord {
	return xslices.Filter(records, func(r NeoRecord) bool {
		return r.DiameterMaxKM >= minKM && r.DiameterMinKM <= maxKM
	})
}

// MaxDiameterKM returns the largest maximum diameter across records,
// used as the upper bound of the size filter.
func MaxDiameterKM(records []NeoRecord) float64 {
	diameters := xslices.Map(records, func(r NeoRecord) float64 {
		return r.DiameterMaxKM
	})
	return xslices.Reduce(diameters, func(a, b float64) float64 {
		return max(a, b)
	})
}

// ClampNeoRange enforces the feed's maximum date range of 7 days.
//
// When end is more than 7 days after start it is moved to start + 7 days.
// An end before start is moved to start. It also reports whether the
// end date was adjusted.
func ClampNeoRange(start, end time.Time) (time.Time, bool) {
	if end.Before(start) {
		return start, true
	}
	if limit := start.AddDate(0, 0, MaxNeoRangeDays); end.After(limit) {
		return limit, true
	}
	return end, false
}
