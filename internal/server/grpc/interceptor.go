package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/unity/internal/common"
	pb "github.com/dmitrijs2005/unity/internal/proto"
	"github.com/dmitrijs2005/unity/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// protectedMethods need a resolved caller identity.
var protectedMethods = map[string]struct{}{
	pb.ListingsService_MyListings_FullMethodName:         {},
	pb.ListingsService_CreateListing_FullMethodName:      {},
	pb.ListingsService_ToggleAvailableNow_FullMethodName: {},
	pb.ListingsService_PurchaseUpgrade_FullMethodName:    {},
	pb.ListingsService_PurchaseHistory_FullMethodName:    {},
}

// tokenFromMetadata reads the access_token entry, falling back to an
// "authorization: Bearer" header.
func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 && v[0] != "" {
		return v[0]
	}
	if v := md.Get("authorization"); len(v) > 0 {
		if tok, ok := strings.CutPrefix(v[0], "Bearer "); ok {
			return strings.TrimSpace(tok)
		}
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if _, ok := protectedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	accessToken := tokenFromMetadata(ctx)
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := s.services.Identity.Resolve(ctx, accessToken)
	if err != nil {
		return nil, toStatus(ctx, s.logger, err)
	}

	return handler(services.WithIdentity(ctx, id), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start))
	return resp, err
}
