package queries

import (
	"context"
	"fmt"

	appCountry "github.com/andrescamacho/nations-go/internal/application/country"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// GetProductionQuery fetches the caller's hourly production rate
type GetProductionQuery struct {
	UserID string
}

// GetProductionResponse is the per-hour change for each resource
type GetProductionResponse struct {
	Production country.Production
}

// GetProductionHandler handles the GetProduction query
type GetProductionHandler struct {
	reconciler *appCountry.Reconciler
}

// NewGetProductionHandler creates a new GetProductionHandler
func NewGetProductionHandler(reconciler *appCountry.Reconciler) *GetProductionHandler {
	return &GetProductionHandler{reconciler: reconciler}
}

// Handle executes the GetProduction query
func (h *GetProductionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetProductionQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetProductionQuery")
	}

	userID, err := shared.NewUserID(query.UserID)
	if err != nil {
		return nil, shared.NewValidationError("user_id", err.Error())
	}

	c, err := h.reconciler.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &GetProductionResponse{
		Production: h.reconciler.Engine().Production().HourlyProduction(c),
	}, nil
}
