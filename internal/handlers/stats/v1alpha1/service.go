package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "pathfinder.stats.v1alpha1.StatsService"

// Full method names
const (
	GetEnrichedCharacterMethod = "/" + ServiceName + "/GetEnrichedCharacter"
	EnrichCharacterMethod      = "/" + ServiceName + "/EnrichCharacter"
	RollCheckMethod            = "/" + ServiceName + "/RollCheck"
)

// StatsServiceServer is the server API for the stats service.
// Requests and responses are google.protobuf.Struct documents.
type StatsServiceServer interface {
	GetEnrichedCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	EnrichCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RollCheck(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterStatsServiceServer registers the stats service on a gRPC server
func RegisterStatsServiceServer(s grpc.ServiceRegistrar, srv StatsServiceServer) {
	s.RegisterService(&StatsServiceDesc, srv)
}

type unaryCall func(srv StatsServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := new(structpb.Struct)
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StatsServiceServer), ctx, req)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StatsServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, req, info, handler)
	}
}

// StatsServiceDesc describes the stats service for grpc.Server
var StatsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StatsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetEnrichedCharacter",
			Handler: unaryHandler(GetEnrichedCharacterMethod,
				func(srv StatsServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
					return srv.GetEnrichedCharacter(ctx, req)
				}),
		},
		{
			MethodName: "EnrichCharacter",
			Handler: unaryHandler(EnrichCharacterMethod,
				func(srv StatsServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
					return srv.EnrichCharacter(ctx, req)
				}),
		},
		{
			MethodName: "RollCheck",
			Handler: unaryHandler(RollCheckMethod,
				func(srv StatsServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
					return srv.RollCheck(ctx, req)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pathfinder/stats/v1alpha1/stats.proto",
}

// StatsServiceClient is the client API for the stats service
type StatsServiceClient interface {
	GetEnrichedCharacter(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	EnrichCharacter(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RollCheck(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type statsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewStatsServiceClient creates a stats client on an existing connection
func NewStatsServiceClient(cc grpc.ClientConnInterface) StatsServiceClient {
	return &statsServiceClient{cc: cc}
}

func (c *statsServiceClient) invoke(
	ctx context.Context,
	method string,
	req *structpb.Struct,
	opts []grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statsServiceClient) GetEnrichedCharacter(
	ctx context.Context,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, GetEnrichedCharacterMethod, req, opts)
}

func (c *statsServiceClient) EnrichCharacter(
	ctx context.Context,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, EnrichCharacterMethod, req, opts)
}

func (c *statsServiceClient) RollCheck(
	ctx context.Context,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, RollCheckMethod, req, opts)
}
