package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/domain/building"
)

// ListBuildingTypesQuery lists every buildable type
type ListBuildingTypesQuery struct{}

// ListBuildingTypesResponse holds the catalog, Types in stable order
type ListBuildingTypesResponse struct {
	Types       []building.Type
	Definitions map[building.Type]building.Definition
}

// ListBuildingTypesHandler handles the ListBuildingTypes query
type ListBuildingTypesHandler struct {
	catalog *building.Catalog
}

// NewListBuildingTypesHandler creates a new ListBuildingTypesHandler
func NewListBuildingTypesHandler(catalog *building.Catalog) *ListBuildingTypesHandler {
	return &ListBuildingTypesHandler{catalog: catalog}
}

// Handle executes the ListBuildingTypes query
func (h *ListBuildingTypesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*ListBuildingTypesQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListBuildingTypesQuery")
	}

	return &ListBuildingTypesResponse{
		Types:       h.catalog.Types(),
		Definitions: h.catalog.All(),
	}, nil
}
