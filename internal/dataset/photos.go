package dataset

import (
	"strings"

	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
	"github.com/adhok/NASA-Data-Visualization-App/internal/xslices"
)

// CameraAll is the camera filter value that matches every camera.
const CameraAll = "All"

// A PhotoRecord is a flattened rover photo.
type PhotoRecord struct {
	ID             int    `json:"id"`
	Sol            int    `json:"sol"`
	Camera         string `json:"camera"`
	CameraFullName string `json:"camera_full_name"`
	ImgSrc         string `json:"img_src"`
	EarthDate      string `json:"earth_date"`
	RoverStatus    string `json:"rover_status"`
}

// NewPhotoRecords converts rover photos into flat records.
func NewPhotoRecords(photos []nasa.RoverPhoto) []PhotoRecord {
	return xslices.Map(photos, func(p nasa.RoverPhoto) PhotoRecord {
		return PhotoRecord{
			ID:             p.ID,
			Sol:            p.Sol,
			Camera:         p.Camera.Name,
			CameraFullName: p.Camera.FullName,
			ImgSrc:         p.ImgSrc,
			EarthDate:      p.EarthDate,
			RoverStatus:    p.Rover.Status,
		}
	})
}

// CameraNames returns the distinct camera names present in photos
// in order of first occurrence.
func CameraNames(photos []PhotoRecord) []string {
	return xslices.Deduplicate(xslices.Map(photos, func(p PhotoRecord) string {
		return p.Camera
	}))
}

// FilterByCamera returns the photos taken with the given camera.
// The CameraAll value in any casing (or an empty string) returns the
// input unchanged.
func FilterByCamera(photos []PhotoRecord, camera string) []PhotoRecord {
	if camera == "" || strings.EqualFold(camera, CameraAll) {
		return photos
	}
	return xslices.Filter(photos, func(p PhotoRecord) bool {
		return p.Camera == camera
	})
}
