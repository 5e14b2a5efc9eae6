package helpers

import (
	"time"

	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// DefaultFlag is a valid flag for fixtures
func DefaultFlag() country.Flag {
	return country.Flag{BackgroundColor: "#003399", Pattern: "cross", PatternColor: "#ffcc00"}
}

// CountryFixture describes a stored country for tests
type CountryFixture struct {
	ID         string
	UserID     string
	Name       string
	Resources  country.Resources
	Buildings  []country.OwnedBuilding
	Queue      []country.ConstructionOrder
	LastUpdate time.Time
}

// BuildCountry reconstructs a country from the fixture, filling defaults
func BuildCountry(f CountryFixture) *country.Country {
	if f.ID == "" {
		f.ID = "country-" + f.UserID
	}
	if f.Name == "" {
		f.Name = "Country of " + f.UserID
	}
	if f.Resources == (country.Resources{}) {
		f.Resources = country.DefaultResources()
	}
	return country.ReconstructCountry(
		f.ID,
		shared.MustNewUserID(f.UserID),
		f.Name,
		country.GovernmentDemocracy,
		[]country.Value{"Freedom"},
		DefaultFlag(),
		f.Resources,
		f.Buildings,
		f.Queue,
		f.LastUpdate,
		f.LastUpdate,
	)
}
