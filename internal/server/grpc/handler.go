package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/stackpick/internal/common"
	pb "github.com/dmitrijs2005/stackpick/internal/proto"
	"github.com/dmitrijs2005/stackpick/internal/rpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) ListTemplates(ctx context.Context, _ *pb.ListTemplatesRequest) (*pb.ListTemplatesResponse, error) {
	templates, err := s.catalog.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "list templates", "error", err)
		return nil, toStatus(err)
	}
	return &pb.ListTemplatesResponse{Templates: rpc.TemplatesToProto(templates)}, nil
}

func (s *GRPCServer) GetDownloadURL(ctx context.Context, req *pb.GetDownloadURLRequest) (*pb.GetDownloadURLResponse, error) {
	slug := req.GetSlug()
	if slug == "" {
		return nil, status.Error(codes.InvalidArgument, "slug is required")
	}

	url, err := s.catalog.DownloadURL(ctx, slug)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "download url", "slug", slug, "error", err)
		}
		return nil, toStatus(err)
	}
	return &pb.GetDownloadURLResponse{Url: url}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrEmptyCatalog):
		return status.Error(codes.FailedPrecondition, "catalog is empty")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
