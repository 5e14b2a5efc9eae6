package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/nations-go/internal/application/logging"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// DeleteCountryCommand removes a country owned by the caller
type DeleteCountryCommand struct {
	UserID    string
	CountryID string
}

// DeleteCountryResponse confirms the deletion
type DeleteCountryResponse struct {
	CountryID string
}

// DeleteCountryHandler handles the DeleteCountry command
type DeleteCountryHandler struct {
	countryRepo country.CountryRepository
	users       country.UserDirectory
}

// NewDeleteCountryHandler creates a new DeleteCountryHandler
func NewDeleteCountryHandler(countryRepo country.CountryRepository, users country.UserDirectory) *DeleteCountryHandler {
	return &DeleteCountryHandler{
		countryRepo: countryRepo,
		users:       users,
	}
}

// Handle executes the DeleteCountry command
func (h *DeleteCountryHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*DeleteCountryCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteCountryCommand")
	}

	userID, err := shared.NewUserID(cmd.UserID)
	if err != nil {
		return nil, shared.NewValidationError("user_id", err.Error())
	}
	logger := logging.FromContext(ctx).With("user_id", userID.Value())

	if err := h.countryRepo.Delete(ctx, cmd.CountryID, userID); err != nil {
		if !shared.IsNotFoundError(err) {
			logger.Error("failed to delete country", "country_id", cmd.CountryID, "error", err)
		}
		return nil, fmt.Errorf("failed to delete country: %w", err)
	}

	if err := h.users.SetHasCountry(ctx, userID, false); err != nil {
		logger.Warn("failed to clear has-country flag", "error", err)
	}

	logger.Info("country deleted", "country_id", cmd.CountryID)

	return &DeleteCountryResponse{CountryID: cmd.CountryID}, nil
}
