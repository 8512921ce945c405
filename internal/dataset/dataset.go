// Package dataset turns raw NASA API payloads into flat records
// ready for tabular display, image grids and charting.
//
// Records are immutable once built. Every normalizer is a pure function
// so a request always produces a fresh sequence.
package dataset

import "strconv"

// parseFloat converts one of the API's numeric strings.
// Malformed values become 0.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
