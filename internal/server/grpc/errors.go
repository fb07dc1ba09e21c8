package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gratilog/internal/common"
	"github.com/dmitrijs2005/gratilog/internal/journal"
)

var statusCodes = []struct {
	err  error
	code codes.Code
}{
	{journal.ErrEmptyTitle, codes.InvalidArgument},
	{journal.ErrEmptyContent, codes.InvalidArgument},
	{journal.ErrInvalidMood, codes.InvalidArgument},
	{journal.ErrInvalidCategory, codes.InvalidArgument},
	{common.ErrorInvalidLoginFormat, codes.InvalidArgument},
	{common.ErrorEntryNotFound, codes.NotFound},
	{common.ErrorAlreadyAppreciated, codes.AlreadyExists},
	{common.ErrorLoginAlreadyExists, codes.AlreadyExists},
	{common.ErrorSelfAppreciation, codes.FailedPrecondition},
	{common.ErrorExportNotConfigured, codes.FailedPrecondition},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrRefreshTokenExpired, codes.Unauthenticated},
}

// toStatus maps service errors to gRPC statuses. Rule violations keep their
// message for the user; anything unknown is logged and hidden.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	for _, m := range statusCodes {
		if errors.Is(err, m.err) {
			return status.Error(m.code, m.err.Error())
		}
	}
	s.logger.Error(ctx, op+" failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func (s *GRPCServer) caller(ctx context.Context) (string, error) {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}
