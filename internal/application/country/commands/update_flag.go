package commands

import (
	"context"
	"fmt"

	appCountry "github.com/andrescamacho/nations-go/internal/application/country"
	"github.com/andrescamacho/nations-go/internal/application/logging"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// UpdateFlagCommand replaces the flag of a country owned by the caller
type UpdateFlagCommand struct {
	UserID    string
	CountryID string
	Flag      *FlagInput `validate:"required"`
}

// UpdateFlagResponse carries the updated country
type UpdateFlagResponse struct {
	Country *country.Country
}

// UpdateFlagHandler handles the UpdateFlag command
type UpdateFlagHandler struct {
	countryRepo country.CountryRepository
	reconciler  *appCountry.Reconciler
}

// NewUpdateFlagHandler creates a new UpdateFlagHandler
func NewUpdateFlagHandler(countryRepo country.CountryRepository, reconciler *appCountry.Reconciler) *UpdateFlagHandler {
	return &UpdateFlagHandler{
		countryRepo: countryRepo,
		reconciler:  reconciler,
	}
}

// Handle executes the UpdateFlag command
func (h *UpdateFlagHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*UpdateFlagCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdateFlagCommand")
	}

	userID, err := shared.NewUserID(cmd.UserID)
	if err != nil {
		return nil, shared.NewValidationError("user_id", err.Error())
	}

	if cmd.Flag == nil {
		return nil, shared.NewValidationError("flag", "All flag properties are required")
	}
	if err := validateInput(cmd); err != nil {
		return nil, err
	}

	c, err := h.countryRepo.FindByID(ctx, cmd.CountryID, userID)
	if err != nil {
		if !shared.IsNotFoundError(err) {
			logging.FromContext(ctx).Error("failed to load country", "user_id", userID.Value(), "error", err)
		}
		return nil, fmt.Errorf("failed to load country: %w", err)
	}

	result := h.reconciler.Engine().Advance(c, h.reconciler.Clock().Now())
	h.reconciler.Recorder().RecordAdvancement(result)

	if err := c.UpdateFlag(cmd.Flag.ToFlag()); err != nil {
		return nil, err
	}
	if err := h.reconciler.Save(ctx, c); err != nil {
		return nil, err
	}

	return &UpdateFlagResponse{Country: c}, nil
}
