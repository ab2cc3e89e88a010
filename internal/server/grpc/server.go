// Package grpc exposes the listings services over gRPC, plus the standard
// health service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/unity/internal/logging"
	pb "github.com/dmitrijs2005/unity/internal/proto"
	"github.com/dmitrijs2005/unity/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type GRPCServer struct {
	pb.UnimplementedListingsServiceServer
	address  string
	logger   logging.Logger
	services services.Set
}

func NewGRPCServer(address string, l logging.Logger, set services.Set) *GRPCServer {
	return &GRPCServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		services: set,
	}
}

// build creates the grpc.Server with interceptors, the listings service and
// the health service registered.
func (s *GRPCServer) build() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterListingsServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.ListingsService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.build()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
