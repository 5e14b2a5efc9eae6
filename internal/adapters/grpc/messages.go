package grpc

import (
	"time"

	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
)

// GetCountryRequest asks for a user's country, advanced to now
type GetCountryRequest struct {
	UserID string `json:"user_id"`
}

// GetProductionRequest asks for a user's hourly production
type GetProductionRequest struct {
	UserID string `json:"user_id"`
}

// ConstructBuildingRequest queues a building on behalf of a user
type ConstructBuildingRequest struct {
	UserID       string `json:"user_id"`
	BuildingType string `json:"building_type"`
}

// ListBuildingTypesRequest has no parameters
type ListBuildingTypesRequest struct{}

// ResourcesMessage mirrors country.Resources
type ResourcesMessage struct {
	Population  int `json:"population"`
	Economy     int `json:"economy"`
	Environment int `json:"environment"`
}

// BuildingCountMessage is one owned building type
type BuildingCountMessage struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// OrderMessage is one pending construction order
type OrderMessage struct {
	ID           string    `json:"id"`
	BuildingType string    `json:"building_type"`
	StartedAt    time.Time `json:"started_at"`
	CompletesAt  time.Time `json:"completes_at"`
}

// CountryReply is a country snapshot
type CountryReply struct {
	ID                 string                 `json:"id"`
	UserID             string                 `json:"user_id"`
	Name               string                 `json:"name"`
	Government         string                 `json:"government"`
	Values             []string               `json:"values"`
	Resources          ResourcesMessage       `json:"resources"`
	Buildings          []BuildingCountMessage `json:"buildings"`
	ConstructionQueue  []OrderMessage         `json:"construction_queue"`
	LastResourceUpdate time.Time              `json:"last_resource_update"`
}

// ProductionReply is the signed per-hour change of each resource
type ProductionReply struct {
	Population  int `json:"population"`
	Economy     int `json:"economy"`
	Environment int `json:"environment"`
}

// ConstructBuildingReply describes the accepted order and the resulting state
type ConstructBuildingReply struct {
	Order             OrderMessage           `json:"order"`
	Resources         ResourcesMessage       `json:"resources"`
	Buildings         []BuildingCountMessage `json:"buildings"`
	ConstructionQueue []OrderMessage         `json:"construction_queue"`
}

// BuildingTypeMessage summarises one catalog entry
type BuildingTypeMessage struct {
	Type               string           `json:"type"`
	Name               string           `json:"name"`
	CostEconomy        int              `json:"cost_economy"`
	BuildTimeHours     int              `json:"build_time_hours"`
	RequiredPopulation int              `json:"required_population"`
	RequiredEconomy    int              `json:"required_economy"`
	Effects            ResourcesMessage `json:"effects"`
}

// ListBuildingTypesReply lists the catalog in type order
type ListBuildingTypesReply struct {
	Types []BuildingTypeMessage `json:"types"`
}

func toResourcesMessage(r country.Resources) ResourcesMessage {
	return ResourcesMessage{Population: r.Population, Economy: r.Economy, Environment: r.Environment}
}

func toBuildingMessages(owned []country.OwnedBuilding) []BuildingCountMessage {
	out := make([]BuildingCountMessage, 0, len(owned))
	for _, b := range owned {
		out = append(out, BuildingCountMessage{Type: string(b.Type), Count: b.Count})
	}
	return out
}

func toOrderMessage(o country.ConstructionOrder) OrderMessage {
	return OrderMessage{
		ID:           o.ID,
		BuildingType: string(o.BuildingType),
		StartedAt:    o.StartedAt,
		CompletesAt:  o.CompletesAt,
	}
}

func toOrderMessages(queue []country.ConstructionOrder) []OrderMessage {
	out := make([]OrderMessage, 0, len(queue))
	for _, o := range queue {
		out = append(out, toOrderMessage(o))
	}
	return out
}

func toCountryReply(c *country.Country) *CountryReply {
	values := make([]string, 0, len(c.Values()))
	for _, v := range c.Values() {
		values = append(values, string(v))
	}
	return &CountryReply{
		ID:                 c.ID(),
		UserID:             c.UserID().Value(),
		Name:               c.Name(),
		Government:         string(c.Government()),
		Values:             values,
		Resources:          toResourcesMessage(c.Resources()),
		Buildings:          toBuildingMessages(c.Buildings()),
		ConstructionQueue:  toOrderMessages(c.ConstructionQueue()),
		LastResourceUpdate: c.LastResourceUpdate(),
	}
}

func toBuildingTypeMessage(t building.Type, def building.Definition) BuildingTypeMessage {
	return BuildingTypeMessage{
		Type:               string(t),
		Name:               def.Name,
		CostEconomy:        def.Cost.Economy,
		BuildTimeHours:     def.BuildTime,
		RequiredPopulation: def.Requirements.Population,
		RequiredEconomy:    def.Requirements.Economy,
		Effects: ResourcesMessage{
			Population:  def.Effects.Population,
			Economy:     def.Effects.Economy,
			Environment: def.Effects.Environment,
		},
	}
}
