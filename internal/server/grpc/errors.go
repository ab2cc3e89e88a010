package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/logging"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC codes. Unknown errors are logged
// and reported as Internal without detail.
func toStatus(ctx context.Context, logger logging.Logger, err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, common.ErrorNotFound):
		code = codes.NotFound
	case errors.Is(err, common.ErrorForbidden), errors.Is(err, common.ErrorNotEntertainer):
		code = codes.PermissionDenied
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "token expired")
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "invalid token")
	case errors.Is(err, common.ErrorValidation), errors.Is(err, common.ErrorUnknownUpgradeKind):
		code = codes.InvalidArgument
	case errors.Is(err, common.ErrorBackend):
		code = codes.Unavailable
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	default:
		logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}
