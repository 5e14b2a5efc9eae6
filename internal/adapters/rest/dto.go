package rest

import (
	"time"

	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
)

// CountryDTO is the JSON shape of a country returned to clients
type CountryDTO struct {
	ID                 string                      `json:"id"`
	UserID             string                      `json:"userId"`
	Name               string                      `json:"name"`
	Government         string                      `json:"government"`
	Values             []string                    `json:"values"`
	Flag               country.Flag                `json:"flag"`
	Resources          country.Resources           `json:"resources"`
	Buildings          []country.OwnedBuilding     `json:"buildings"`
	ConstructionQueue  []country.ConstructionOrder `json:"constructionQueue"`
	LastResourceUpdate time.Time                   `json:"lastResourceUpdate"`
	CreatedAt          time.Time                   `json:"createdAt"`
}

// BuildingStatusDTO is returned by the status and construct endpoints
type BuildingStatusDTO struct {
	Buildings         []country.OwnedBuilding     `json:"buildings"`
	ConstructionQueue []country.ConstructionOrder `json:"constructionQueue"`
	Resources         *country.Resources          `json:"resources,omitempty"`
}

type messageDTO struct {
	Message string `json:"message"`
}

type constructRequest struct {
	BuildingType string `json:"buildingType"`
}

func toCountryDTO(c *country.Country) CountryDTO {
	values := make([]string, 0, len(c.Values()))
	for _, v := range c.Values() {
		values = append(values, string(v))
	}

	return CountryDTO{
		ID:                 c.ID(),
		UserID:             c.UserID().Value(),
		Name:               c.Name(),
		Government:         string(c.Government()),
		Values:             values,
		Flag:               c.Flag(),
		Resources:          c.Resources(),
		Buildings:          nonNilBuildings(c.Buildings()),
		ConstructionQueue:  nonNilQueue(c.ConstructionQueue()),
		LastResourceUpdate: c.LastResourceUpdate(),
		CreatedAt:          c.CreatedAt(),
	}
}

// encoding/json writes nil slices as null; clients iterate these
func nonNilBuildings(b []country.OwnedBuilding) []country.OwnedBuilding {
	if b == nil {
		return []country.OwnedBuilding{}
	}
	return b
}

func nonNilQueue(q []country.ConstructionOrder) []country.ConstructionOrder {
	if q == nil {
		return []country.ConstructionOrder{}
	}
	return q
}

func buildingTypesDTO(defs map[building.Type]building.Definition) map[string]building.Definition {
	out := make(map[string]building.Definition, len(defs))
	for t, def := range defs {
		out[string(t)] = def
	}
	return out
}
