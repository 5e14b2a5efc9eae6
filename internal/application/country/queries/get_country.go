package queries

import (
	"context"
	"fmt"

	appCountry "github.com/andrescamacho/nations-go/internal/application/country"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// GetCountryQuery fetches the caller's country, advanced to now
type GetCountryQuery struct {
	UserID string
}

// GetCountryResponse carries the up-to-date country
type GetCountryResponse struct {
	Country *country.Country
}

// GetCountryHandler handles the GetCountry query
type GetCountryHandler struct {
	reconciler *appCountry.Reconciler
}

// NewGetCountryHandler creates a new GetCountryHandler
func NewGetCountryHandler(reconciler *appCountry.Reconciler) *GetCountryHandler {
	return &GetCountryHandler{reconciler: reconciler}
}

// Handle executes the GetCountry query
func (h *GetCountryHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetCountryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetCountryQuery")
	}

	userID, err := shared.NewUserID(query.UserID)
	if err != nil {
		return nil, shared.NewValidationError("user_id", err.Error())
	}

	c, err := h.reconciler.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &GetCountryResponse{Country: c}, nil
}
