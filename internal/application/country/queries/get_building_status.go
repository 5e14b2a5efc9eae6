package queries

import (
	"context"
	"fmt"

	appCountry "github.com/andrescamacho/nations-go/internal/application/country"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// GetBuildingStatusQuery fetches owned buildings and the pending queue
type GetBuildingStatusQuery struct {
	UserID string
}

// GetBuildingStatusResponse is the building state after advancement
type GetBuildingStatusResponse struct {
	Buildings         []country.OwnedBuilding
	ConstructionQueue []country.ConstructionOrder
}

// GetBuildingStatusHandler handles the GetBuildingStatus query
type GetBuildingStatusHandler struct {
	reconciler *appCountry.Reconciler
}

// NewGetBuildingStatusHandler creates a new GetBuildingStatusHandler
func NewGetBuildingStatusHandler(reconciler *appCountry.Reconciler) *GetBuildingStatusHandler {
	return &GetBuildingStatusHandler{reconciler: reconciler}
}

// Handle executes the GetBuildingStatus query
func (h *GetBuildingStatusHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetBuildingStatusQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetBuildingStatusQuery")
	}

	userID, err := shared.NewUserID(query.UserID)
	if err != nil {
		return nil, shared.NewValidationError("user_id", err.Error())
	}

	c, err := h.reconciler.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &GetBuildingStatusResponse{
		Buildings:         c.Buildings(),
		ConstructionQueue: c.ConstructionQueue(),
	}, nil
}
