package dataset

import (
	"time"

	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
	"github.com/adhok/NASA-Data-Visualization-App/internal/optional"
	"github.com/adhok/NASA-Data-Visualization-App/internal/xslices"
)

// An EpicImageRecord is one full disk Earth capture with its archive URL.
//
// The archive URL is not part of the API payload and is constructed by
// the caller supplied builder, which knows the collection and API key.
type EpicImageRecord struct {
	Identifier string                           `json:"identifier"`
	Caption    string                           `json:"caption"`
	Taken      time.Time                        `json:"taken"`
	Lat        float64                          `json:"lat"`
	Lon        float64                          `json:"lon"`
	Position   optional.Optional[nasa.Position] `json:"position"`
	ImageURL   string                           `json:"image_url"`
}

// TakenTime returns the capture time of day with seconds precision.
func (r EpicImageRecord) TakenTime() string {
	return r.Taken.Format("15:04:05")
}

// NewEpicImageRecords converts EPIC image descriptors into flat records.
// The input order is kept, it reflects capture time within the day.
//
// A descriptor without a satellite position vector keeps an empty
// Position rather than a zero vector.
func NewEpicImageRecords(images []nasa.EpicImage, imageURL func(nasa.EpicImage) string) []EpicImageRecord {
	return xslices.Map(images, func(img nasa.EpicImage) EpicImageRecord {
		r := EpicImageRecord{
			Identifier: img.Identifier,
			Caption:    img.Caption,
			Taken:      img.Date.Time,
			Lat:        img.CentroidCoordinates.Lat,
			Lon:        img.CentroidCoordinates.Lon,
			ImageURL:   imageURL(img),
		}
		if img.DscovrJ2000Position != (nasa.Position{}) {
			r.Position = optional.New(img.DscovrJ2000Position)
		}
		return r
	})
}
