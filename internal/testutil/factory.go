// Package testutil contains factories for creating test records.
package testutil

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/icrowley/fake"

	"github.com/adhok/NASA-Data-Visualization-App/internal/dataset"
	"github.com/adhok/NASA-Data-Visualization-App/internal/optional"
)

type Factory struct{}

func NewFactory() Factory {
	return Factory{}
}

// RandomTime returns a random time in the recent past.
func (f Factory) RandomTime() time.Time {
	hours := time.Duration(rand.IntN(100_000))
	seconds := time.Duration(rand.IntN(3600))
	d := hours*time.Hour + seconds*time.Second
	return time.Now().Add(-d).UTC()
}

// RandomDate returns a random day in the recent past at midnight UTC.
func (f Factory) RandomDate() time.Time {
	return f.RandomTime().Truncate(24 * time.Hour)
}

// CreateNeoRecord creates and returns a new near earth object record. Zero fields are filled in.
func (f Factory) CreateNeoRecord(args ...dataset.NeoRecord) dataset.NeoRecord {
	var arg dataset.NeoRecord
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.ID == "" {
		arg.ID = fmt.Sprintf("%d", 2_000_001+rand.IntN(1_000_000))
	}
	if arg.Name == "" {
		arg.Name = fmt.Sprintf("(%d %s%d)", 1990+rand.IntN(35), fake.CharactersN(2), rand.IntN(100))
	}
	if arg.Date == "" {
		arg.Date = f.RandomDate().Format("2006-01-02")
	}
	if arg.DiameterMinKM == 0 {
		arg.DiameterMinKM = rand.Float64() * 0.5
	}
	if arg.DiameterMaxKM == 0 {
		arg.DiameterMaxKM = arg.DiameterMinKM * (1 + rand.Float64())
	}
	if arg.AvgDiameterKM == 0 {
		arg.AvgDiameterKM = (arg.DiameterMinKM + arg.DiameterMaxKM) / 2
	}
	if arg.CloseApproachDate == "" {
		arg.CloseApproachDate = arg.Date
	}
	if arg.MissDistanceKM == 0 {
		arg.MissDistanceKM = 1_000_000 + rand.Float64()*70_000_000
	}
	if arg.VelocityKPH == 0 {
		arg.VelocityKPH = 10_000 + rand.Float64()*90_000
	}
	return arg
}

// CreatePhotoRecord creates and returns a new rover photo record. Zero fields are filled in.
func (f Factory) CreatePhotoRecord(args ...dataset.PhotoRecord) dataset.PhotoRecord {
	var arg dataset.PhotoRecord
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.ID == 0 {
		arg.ID = 1_000_001 + rand.IntN(1_000_000)
	}
	if arg.Sol == 0 {
		arg.Sol = 1 + rand.IntN(4000)
	}
	if arg.Camera == "" {
		arg.Camera = "FHAZ"
	}
	if arg.CameraFullName == "" {
		arg.CameraFullName = "Front Hazard Avoidance Camera"
	}
	if arg.ImgSrc == "" {
		arg.ImgSrc = fmt.Sprintf("https://mars.nasa.gov/photos/%d.jpg", arg.ID)
	}
	if arg.EarthDate == "" {
		arg.EarthDate = f.RandomDate().Format("2006-01-02")
	}
	if arg.RoverStatus == "" {
		arg.RoverStatus = "active"
	}
	return arg
}

// CreateWeatherRecord creates and returns a new weather record with all
// measurements present. Zero fields are filled in.
func (f Factory) CreateWeatherRecord(args ...dataset.WeatherRecord) dataset.WeatherRecord {
	var arg dataset.WeatherRecord
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.Sol == 0 {
		arg.Sol = 1 + rand.IntN(1000)
	}
	if arg.FirstUTC.IsZero() {
		arg.FirstUTC = f.RandomTime()
	}
	if arg.Season == "" {
		arg.Season = "winter"
	}
	if arg.TempAvgC.IsEmpty() {
		arg.TempAvgC = optional.New(-90 + rand.Float64()*40)
	}
	if arg.TempMinC.IsEmpty() {
		arg.TempMinC = optional.New(arg.TempAvgC.ValueOrZero() - rand.Float64()*20)
	}
	if arg.TempMaxC.IsEmpty() {
		arg.TempMaxC = optional.New(arg.TempAvgC.ValueOrZero() + rand.Float64()*20)
	}
	if arg.PressureAvgPa.IsEmpty() {
		arg.PressureAvgPa = optional.New(700 + rand.Float64()*100)
	}
	if arg.WindAvgMS.IsEmpty() {
		arg.WindAvgMS = optional.New(rand.Float64() * 10)
	}
	if arg.WindMaxMS.IsEmpty() {
		arg.WindMaxMS = optional.New(arg.WindAvgMS.ValueOrZero() + rand.Float64()*10)
	}
	return arg
}

// CreateEpicImageRecord creates and returns a new EPIC image record. Zero fields are filled in.
func (f Factory) CreateEpicImageRecord(args ...dataset.EpicImageRecord) dataset.EpicImageRecord {
	var arg dataset.EpicImageRecord
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.Taken.IsZero() {
		arg.Taken = f.RandomTime()
	}
	if arg.Identifier == "" {
		arg.Identifier = arg.Taken.Format("20060102150405")
	}
	if arg.Caption == "" {
		arg.Caption = fake.Sentence()
	}
	if arg.Lat == 0 {
		arg.Lat = -90 + rand.Float64()*180
	}
	if arg.Lon == 0 {
		arg.Lon = -180 + rand.Float64()*360
	}
	if arg.ImageURL == "" {
		arg.ImageURL = fmt.Sprintf("/epic/image/natural/%s/%s.png", arg.Taken.Format("2006-01-02"), arg.Identifier)
	}
	return arg
}
