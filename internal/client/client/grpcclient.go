package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/stackpick/internal/common"
	pb "github.com/dmitrijs2005/stackpick/internal/proto"
	"github.com/dmitrijs2005/stackpick/internal/requestid"
	"github.com/dmitrijs2005/stackpick/internal/rpc"
	"github.com/dmitrijs2005/stackpick/internal/stack"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.CatalogServiceClient
}

func withRequestID(ctx context.Context, id string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.RequestIDHeaderName, id)

	return metadata.NewOutgoingContext(ctx, md)
}

// requestIDInterceptor sends the context's request id, or a fresh one, with
// every call so client and server log lines can be correlated.
func (s *GRPCClient) requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	id, ok := requestid.FromContext(ctx)
	if !ok {
		id = requestid.New()
	}
	return invoker(withRequestID(ctx, id), method, req, reply, cc, opts...)
}

func NewCatalogClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// InitGRPCClient creates the connection. Extra options are appended to the
// defaults (insecure transport and the request id interceptor).
func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewCatalogServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) ListTemplates(ctx context.Context) ([]stack.Template, error) {
	resp, err := s.client.ListTemplates(ctx, &pb.ListTemplatesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return rpc.TemplatesFromProto(resp.GetTemplates())
}

func (s *GRPCClient) GetDownloadURL(ctx context.Context, slug string) (string, error) {
	resp, err := s.client.GetDownloadURL(ctx, &pb.GetDownloadURLRequest{Slug: slug})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
