package dataset

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/adhok/NASA-Data-Visualization-App/internal/xslices"
)

// A RoverMission describes one Mars rover covered by the photo archive.
type RoverMission struct {
	Name        string        `yaml:"name" json:"name"`
	LaunchDate  string        `yaml:"launch_date" json:"launch_date"`
	LandingDate string        `yaml:"landing_date" json:"landing_date"`
	Status      string        `yaml:"status" json:"status"`
	Cameras     []RoverCamera `yaml:"cameras" json:"cameras"`
}

// A RoverCamera is one instrument of a rover.
type RoverCamera struct {
	Name     string `yaml:"name" json:"name"`
	FullName string `yaml:"full_name" json:"full_name"`
}

//go:embed rovers.yaml
var roversYAML []byte

var loadRovers = sync.OnceValue(func() []RoverMission {
	var catalog struct {
		Rovers []RoverMission `yaml:"rovers"`
	}
	if err := yaml.Unmarshal(roversYAML, &catalog); err != nil {
		panic("rover catalog: " + err.Error())
	}
	return catalog.Rovers
})

// Rovers returns the catalog of supported rover missions.
func Rovers() []RoverMission {
	return loadRovers()
}

// RoverNames returns the names of all supported rovers.
func RoverNames() []string {
	return xslices.Map(Rovers(), func(r RoverMission) string {
		return r.Name
	})
}

// FindRover returns the mission with the given name, ignoring case.
func FindRover(name string) (RoverMission, bool) {
	for _, r := range Rovers() {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return RoverMission{}, false
}
