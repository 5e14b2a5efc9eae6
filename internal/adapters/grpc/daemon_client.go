package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// RemoteError is a failure reported by the daemon
type RemoteError struct {
	Method  string
	Code    codes.Code
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// DaemonClient talks to a running daemon over its unix socket
type DaemonClient struct {
	conn *grpc.ClientConn
}

// NewDaemonClient creates a client for the socket at socketPath.
// The connection is established lazily on the first call.
func NewDaemonClient(socketPath string) (*DaemonClient, error) {
	conn, err := grpc.NewClient(
		"unix:"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon socket: %w", err)
	}
	return &DaemonClient{conn: conn}, nil
}

// Close closes the connection
func (c *DaemonClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *DaemonClient) invoke(ctx context.Context, method string, in, out any) error {
	wireIn, err := toWire(in)
	if err != nil {
		return err
	}
	wireOut := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, "/"+adminServiceName+"/"+method, wireIn, wireOut); err != nil {
		st := status.Convert(err)
		return &RemoteError{Method: method, Code: st.Code(), Message: st.Message()}
	}
	return fromWire(wireOut, out)
}

// GetCountry fetches the user's country, advanced to now
func (c *DaemonClient) GetCountry(ctx context.Context, userID string) (*CountryReply, error) {
	out := new(CountryReply)
	if err := c.invoke(ctx, "GetCountry", &GetCountryRequest{UserID: userID}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduction fetches the user's hourly production
func (c *DaemonClient) GetProduction(ctx context.Context, userID string) (*ProductionReply, error) {
	out := new(ProductionReply)
	if err := c.invoke(ctx, "GetProduction", &GetProductionRequest{UserID: userID}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConstructBuilding queues a building for the user
func (c *DaemonClient) ConstructBuilding(ctx context.Context, userID, buildingType string) (*ConstructBuildingReply, error) {
	out := new(ConstructBuildingReply)
	req := &ConstructBuildingRequest{UserID: userID, BuildingType: buildingType}
	if err := c.invoke(ctx, "ConstructBuilding", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListBuildingTypes fetches the building catalog
func (c *DaemonClient) ListBuildingTypes(ctx context.Context) (*ListBuildingTypesReply, error) {
	out := new(ListBuildingTypesReply)
	if err := c.invoke(ctx, "ListBuildingTypes", &ListBuildingTypesRequest{}, out); err != nil {
		return nil, err
	}
	return out, nil
}
