package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrescamacho/nations-go/internal/application/logging"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// CreateCountryCommand founds the caller's country
type CreateCountryCommand struct {
	UserID     string     `validate:"-"`
	Name       string     `validate:"required"`
	Government string     `validate:"required,government"`
	Values     []string   `validate:"required,min=1,max=3,dive,country_value"`
	Flag       *FlagInput `validate:"required"`
}

// CreateCountryResponse carries the founded country
type CreateCountryResponse struct {
	Country *country.Country
}

// CreateCountryHandler handles the CreateCountry command
type CreateCountryHandler struct {
	countryRepo country.CountryRepository
	users       country.UserDirectory
	clock       shared.Clock
}

// NewCreateCountryHandler creates a new CreateCountryHandler
func NewCreateCountryHandler(
	countryRepo country.CountryRepository,
	users country.UserDirectory,
	clock shared.Clock,
) *CreateCountryHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &CreateCountryHandler{
		countryRepo: countryRepo,
		users:       users,
		clock:       clock,
	}
}

// Handle executes the CreateCountry command
func (h *CreateCountryHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*CreateCountryCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateCountryCommand")
	}

	userID, err := shared.NewUserID(cmd.UserID)
	if err != nil {
		return nil, shared.NewValidationError("user_id", err.Error())
	}
	logger := logging.FromContext(ctx).With("user_id", userID.Value())

	// One country per user is checked before anything about the input
	existing, err := h.countryRepo.FindByUserID(ctx, userID)
	if err != nil && !shared.IsNotFoundError(err) {
		logger.Error("failed to look up existing country", "error", err)
		return nil, fmt.Errorf("failed to look up existing country: %w", err)
	}
	if existing != nil {
		return nil, country.ErrAlreadyHasCountry
	}

	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := validateInput(cmd); err != nil {
		return nil, err
	}

	taken, err := h.countryRepo.ExistsByName(ctx, cmd.Name)
	if err != nil {
		logger.Error("failed to check country name", "error", err)
		return nil, fmt.Errorf("failed to check country name: %w", err)
	}
	if taken {
		return nil, country.ErrNameTaken
	}

	values := make([]country.Value, len(cmd.Values))
	for i, v := range cmd.Values {
		values[i] = country.Value(v)
	}

	c, err := country.NewCountry(
		userID,
		cmd.Name,
		country.Government(cmd.Government),
		values,
		cmd.Flag.ToFlag(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := h.countryRepo.Create(ctx, c); err != nil {
		if shared.IsValidationError(err) {
			return nil, err
		}
		logger.Error("failed to create country", "error", err)
		return nil, fmt.Errorf("failed to create country: %w", err)
	}

	if err := h.users.SetHasCountry(ctx, userID, true); err != nil {
		logger.Warn("failed to set has-country flag", "country_id", c.ID(), "error", err)
	}

	logger.Info("country founded", "country_id", c.ID(), "name", c.Name())

	return &CreateCountryResponse{Country: c}, nil
}
