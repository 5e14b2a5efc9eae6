package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const adminServiceName = "nations.v1.AdminService"

// AdminServiceServer is the server API for the admin service
type AdminServiceServer interface {
	GetCountry(ctx context.Context, req *GetCountryRequest) (*CountryReply, error)
	GetProduction(ctx context.Context, req *GetProductionRequest) (*ProductionReply, error)
	ConstructBuilding(ctx context.Context, req *ConstructBuildingRequest) (*ConstructBuildingReply, error)
	ListBuildingTypes(ctx context.Context, req *ListBuildingTypesRequest) (*ListBuildingTypesReply, error)
}

// unaryHandler adapts a typed method to grpc.MethodHandler, converting
// both directions between the Go message and its wire Struct
func unaryHandler[Req any, Resp any](
	method string,
	call func(srv AdminServiceServer, ctx context.Context, req *Req) (*Resp, error),
) grpc.MethodHandler {
	fullMethod := "/" + adminServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		wireIn := &structpb.Struct{}
		if err := dec(wireIn); err != nil {
			return nil, err
		}
		in := new(Req)
		if err := fromWire(wireIn, in); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		handle := func(ctx context.Context, req any) (any, error) {
			out, err := call(srv.(AdminServiceServer), ctx, req.(*Req))
			if err != nil {
				return nil, err
			}
			wireOut, err := toWire(out)
			if err != nil {
				return nil, status.Error(codes.Internal, err.Error())
			}
			return wireOut, nil
		}

		if interceptor == nil {
			return handle(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, handle)
	}
}

var adminServiceDesc = grpc.ServiceDesc{
	ServiceName: adminServiceName,
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCountry",
			Handler: unaryHandler("GetCountry", func(s AdminServiceServer, ctx context.Context, r *GetCountryRequest) (*CountryReply, error) {
				return s.GetCountry(ctx, r)
			}),
		},
		{
			MethodName: "GetProduction",
			Handler: unaryHandler("GetProduction", func(s AdminServiceServer, ctx context.Context, r *GetProductionRequest) (*ProductionReply, error) {
				return s.GetProduction(ctx, r)
			}),
		},
		{
			MethodName: "ConstructBuilding",
			Handler: unaryHandler("ConstructBuilding", func(s AdminServiceServer, ctx context.Context, r *ConstructBuildingRequest) (*ConstructBuildingReply, error) {
				return s.ConstructBuilding(ctx, r)
			}),
		},
		{
			MethodName: "ListBuildingTypes",
			Handler: unaryHandler("ListBuildingTypes", func(s AdminServiceServer, ctx context.Context, r *ListBuildingTypesRequest) (*ListBuildingTypesReply, error) {
				return s.ListBuildingTypes(ctx, r)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "nations/v1/admin.proto",
}

// RegisterAdminServiceServer registers srv on s
func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	s.RegisterService(&adminServiceDesc, srv)
}
