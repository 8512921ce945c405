package dataset

import (
	_ "embed"
	"sync"

	"github.com/goccy/go-yaml"
)

// A PlanetFact is one row of the Mars vs Earth comparison table.
type PlanetFact struct {
	Factor string `yaml:"factor" json:"factor"`
	Mars   string `yaml:"mars" json:"mars"`
	Earth  string `yaml:"earth" json:"earth"`
}

//go:embed planets.yaml
var planetsYAML []byte

var loadPlanetFacts = sync.OnceValue(func() []PlanetFact {
	var table struct {
		Facts []PlanetFact `yaml:"facts"`
	}
	if err := yaml.Unmarshal(planetsYAML, &table); err != nil {
		panic("planet facts: " + err.Error())
	}
	return table.Facts
})

// PlanetFacts returns the static Mars vs Earth comparison rows.
func PlanetFacts() []PlanetFact {
	return loadPlanetFacts()
}
