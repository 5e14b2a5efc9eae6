package building

import (
	"fmt"
	"time"
)

// Type is the catalog key identifying a kind of structure (e.g. HOUSE)
type Type string

const (
	TypeHouse      Type = "HOUSE"
	TypeFactory    Type = "FACTORY"
	TypePark       Type = "PARK"
	TypeOffice     Type = "OFFICE"
	TypeSolarPlant Type = "SOLAR_PLANT"
)

func (t Type) String() string {
	return string(t)
}

// Cost is the one-time spend required to start construction
type Cost struct {
	Economy int `yaml:"economy" json:"economy"`
}

// Effects are signed per-hour resource deltas contributed by one owned instance
type Effects struct {
	Population  int `yaml:"population" json:"population"`
	Economy     int `yaml:"economy" json:"economy"`
	Environment int `yaml:"environment" json:"environment"`
}

// Requirements are the minimum resource levels a country needs before the
// building becomes available. They are thresholds, not costs.
type Requirements struct {
	Population int `yaml:"population" json:"population"`
	Economy    int `yaml:"economy" json:"economy"`
}

// Definition is an immutable catalog entry
type Definition struct {
	Name         string       `yaml:"name" json:"name"`
	Description  string       `yaml:"description" json:"description"`
	Cost         Cost         `yaml:"cost" json:"cost"`
	Effects      Effects      `yaml:"effects" json:"effects"`
	BuildTime    int          `yaml:"build_time" json:"buildTime"` // hours
	Requirements Requirements `yaml:"requirements" json:"requirements"`
}

// BuildDuration returns the construction time as a duration
func (d Definition) BuildDuration() time.Duration {
	return time.Duration(d.BuildTime) * time.Hour
}

// Validate checks the structural invariants of a definition
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.BuildTime < 1 {
		return fmt.Errorf("build_time must be at least 1 hour, got %d", d.BuildTime)
	}
	if d.Cost.Economy < 0 {
		return fmt.Errorf("cost.economy cannot be negative, got %d", d.Cost.Economy)
	}
	if d.Requirements.Population < 0 || d.Requirements.Economy < 0 {
		return fmt.Errorf("requirements cannot be negative")
	}
	return nil
}
