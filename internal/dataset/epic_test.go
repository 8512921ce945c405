package dataset_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adhok/NASA-Data-Visualization-App/internal/dataset"
	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
)

func TestNewEpicImageRecords(t *testing.T) {
	urlOf := func(img nasa.EpicImage) string {
		return fmt.Sprintf("https://example.com/%s.png", img.Identifier)
	}

	t.Run("can convert descriptors and keep their order", func(t *testing.T) {
		// given
		images := []nasa.EpicImage{
			{
				Identifier:          "20230714001751",
				Caption:             "first",
				CentroidCoordinates: nasa.Coordinates{Lat: 4.975586, Lon: 159.51416},
				DscovrJ2000Position: nasa.Position{X: -648898.934, Y: -1280720.884, Z: -555894.774},
				Date:                nasa.EpicTime{Time: time.Date(2023, 7, 14, 0, 17, 51, 0, time.UTC)},
			},
			{
				Identifier: "20230714015950",
				Caption:    "second",
				Date:       nasa.EpicTime{Time: time.Date(2023, 7, 14, 1, 59, 50, 0, time.UTC)},
			},
		}
		// when
		got := dataset.NewEpicImageRecords(images, urlOf)
		// then
		if assert.Len(t, got, 2) {
			r := got[0]
			assert.Equal(t, "20230714001751", r.Identifier)
			assert.Equal(t, 4.975586, r.Lat)
			assert.Equal(t, 159.51416, r.Lon)
			assert.Equal(t, "https://example.com/20230714001751.png", r.ImageURL)
			pos := r.Position.MustValue()
			assert.Equal(t, -648898.934, pos.X)
			assert.Equal(t, "20230714015950", got[1].Identifier)
		}
	})
	t.Run("should keep missing satellite position empty", func(t *testing.T) {
		// given
		images := []nasa.EpicImage{
			{Identifier: "x", Date: nasa.EpicTime{Time: time.Date(2023, 7, 14, 0, 0, 0, 0, time.UTC)}},
		}
		// when
		got := dataset.NewEpicImageRecords(images, urlOf)
		// then
		assert.True(t, got[0].Position.IsEmpty())
	})
	t.Run("can process empty input", func(t *testing.T) {
		got := dataset.NewEpicImageRecords(nil, urlOf)
		assert.Len(t, got, 0)
	})
}

func TestEpicImageRecordTakenTime(t *testing.T) {
	r := dataset.EpicImageRecord{Taken: time.Date(2023, 7, 14, 0, 17, 51, 0, time.UTC)}
	assert.Equal(t, "00:17:51", r.TakenTime())
}
