package grpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/andrescamacho/nations-go/internal/application/country/commands"
	"github.com/andrescamacho/nations-go/internal/application/country/queries"
	"github.com/andrescamacho/nations-go/internal/application/logging"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// adminService implements AdminServiceServer on top of the mediator
type adminService struct {
	mediator mediator.Mediator
}

func newAdminService(m mediator.Mediator) *adminService {
	return &adminService{mediator: m}
}

func (s *adminService) GetCountry(ctx context.Context, req *GetCountryRequest) (*CountryReply, error) {
	resp, err := dispatch[*queries.GetCountryResponse](ctx, s.mediator, &queries.GetCountryQuery{UserID: req.UserID})
	if err != nil {
		return nil, err
	}
	return toCountryReply(resp.Country), nil
}

func (s *adminService) GetProduction(ctx context.Context, req *GetProductionRequest) (*ProductionReply, error) {
	resp, err := dispatch[*queries.GetProductionResponse](ctx, s.mediator, &queries.GetProductionQuery{UserID: req.UserID})
	if err != nil {
		return nil, err
	}
	return &ProductionReply{
		Population:  resp.Production.Population,
		Economy:     resp.Production.Economy,
		Environment: resp.Production.Environment,
	}, nil
}

func (s *adminService) ConstructBuilding(ctx context.Context, req *ConstructBuildingRequest) (*ConstructBuildingReply, error) {
	resp, err := dispatch[*commands.ConstructBuildingResponse](ctx, s.mediator, &commands.ConstructBuildingCommand{
		UserID:       req.UserID,
		BuildingType: req.BuildingType,
	})
	if err != nil {
		return nil, err
	}
	return &ConstructBuildingReply{
		Order:             toOrderMessage(resp.Order),
		Resources:         toResourcesMessage(resp.Resources),
		Buildings:         toBuildingMessages(resp.Buildings),
		ConstructionQueue: toOrderMessages(resp.ConstructionQueue),
	}, nil
}

func (s *adminService) ListBuildingTypes(ctx context.Context, req *ListBuildingTypesRequest) (*ListBuildingTypesReply, error) {
	resp, err := dispatch[*queries.ListBuildingTypesResponse](ctx, s.mediator, &queries.ListBuildingTypesQuery{})
	if err != nil {
		return nil, err
	}
	reply := &ListBuildingTypesReply{Types: make([]BuildingTypeMessage, 0, len(resp.Types))}
	for _, t := range resp.Types {
		reply.Types = append(reply.Types, toBuildingTypeMessage(t, resp.Definitions[t]))
	}
	return reply, nil
}

// dispatch sends through the mediator and converts domain errors to gRPC statuses
func dispatch[T any](ctx context.Context, m mediator.Mediator, request mediator.Request) (T, error) {
	resp, err := mediator.SendTyped[T](ctx, m, request)
	if err != nil {
		return resp, toStatus(ctx, err)
	}
	return resp, nil
}

func toStatus(ctx context.Context, err error) error {
	var admissionErr *country.AdmissionError
	var validationErr *shared.ValidationError
	var notFoundErr *shared.NotFoundError

	switch {
	case errors.As(err, &admissionErr):
		return status.Error(codes.FailedPrecondition, admissionErr.Message())
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Message)
	case errors.As(err, &notFoundErr):
		return status.Error(codes.NotFound, fmt.Sprintf("country not found for %s", notFoundErr.Key))
	default:
		logging.FromContext(ctx).Error("admin request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
