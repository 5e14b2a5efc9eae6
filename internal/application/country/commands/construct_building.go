package commands

import (
	"context"
	"errors"
	"fmt"

	appCountry "github.com/andrescamacho/nations-go/internal/application/country"
	"github.com/andrescamacho/nations-go/internal/application/logging"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// ConstructBuildingCommand queues one building for the caller's country
type ConstructBuildingCommand struct {
	UserID       string
	BuildingType string
}

// ConstructBuildingResponse is the state after a successful admission
type ConstructBuildingResponse struct {
	Order             country.ConstructionOrder
	Buildings         []country.OwnedBuilding
	ConstructionQueue []country.ConstructionOrder
	Resources         country.Resources
}

// ConstructBuildingHandler handles the ConstructBuilding command
type ConstructBuildingHandler struct {
	reconciler *appCountry.Reconciler
	controller *country.AdmissionController
}

// NewConstructBuildingHandler creates a new ConstructBuildingHandler
func NewConstructBuildingHandler(
	reconciler *appCountry.Reconciler,
	controller *country.AdmissionController,
) *ConstructBuildingHandler {
	return &ConstructBuildingHandler{
		reconciler: reconciler,
		controller: controller,
	}
}

// Handle executes the ConstructBuilding command
func (h *ConstructBuildingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ConstructBuildingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ConstructBuildingCommand")
	}

	userID, err := shared.NewUserID(cmd.UserID)
	if err != nil {
		return nil, shared.NewValidationError("user_id", err.Error())
	}
	buildingType := building.Type(cmd.BuildingType)
	recorder := h.reconciler.Recorder()

	// Unknown types are refused before the country is even loaded
	if _, err := h.controller.Resolve(buildingType); err != nil {
		recorder.RecordAdmission(buildingType, string(country.ReasonInvalidBuildingType))
		return nil, err
	}

	c, err := h.reconciler.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, admitErr := h.controller.Construct(c, buildingType, h.reconciler.Clock().Now())

	var rejection *country.AdmissionError
	if admitErr != nil && !errors.As(admitErr, &rejection) {
		return nil, admitErr
	}

	if rejection != nil {
		recorder.RecordAdmission(buildingType, string(rejection.Reason))
		logging.FromContext(ctx).Info("construction rejected",
			"user_id", userID.Value(),
			"building_type", buildingType,
			"reason", rejection.Reason,
		)
		// resources still moved forward; keep them even though nothing was queued
		if err := h.reconciler.Commit(ctx, c, result.Advancement); err != nil {
			return nil, err
		}
		return nil, rejection
	}

	recorder.RecordAdvancement(result.Advancement)
	if err := h.reconciler.Save(ctx, c); err != nil {
		return nil, err
	}
	recorder.RecordAdmission(buildingType, appCountry.OutcomeAccepted)

	logging.FromContext(ctx).Info("construction queued",
		"user_id", userID.Value(),
		"building_type", buildingType,
		"completes_at", result.Order.CompletesAt,
	)

	return &ConstructBuildingResponse{
		Order:             result.Order,
		Buildings:         c.Buildings(),
		ConstructionQueue: c.ConstructionQueue(),
		Resources:         c.Resources(),
	}, nil
}
