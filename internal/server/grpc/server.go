// Package grpc serves the template catalog over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/stackpick/internal/logging"
	pb "github.com/dmitrijs2005/stackpick/internal/proto"
	"github.com/dmitrijs2005/stackpick/internal/server/metrics"
	"github.com/dmitrijs2005/stackpick/internal/stack"
	"google.golang.org/grpc"
)

// CatalogService is the part of services.CatalogService the handlers use.
type CatalogService interface {
	List(ctx context.Context) ([]stack.Template, error)
	DownloadURL(ctx context.Context, slug string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedCatalogServiceServer
	address string
	catalog CatalogService
	metrics *metrics.Metrics
	logger  logging.Logger
}

// NewGRPCServer builds a server for address. m may be nil to disable
// instrumentation.
func NewGRPCServer(a string, l logging.Logger, cs CatalogService, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		catalog: cs,
		metrics: m,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestIDInterceptor,
		s.loggingInterceptor,
		s.metricsInterceptor,
	))
	pb.RegisterCatalogServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
