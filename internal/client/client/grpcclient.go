package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gratilog/internal/common"
	"github.com/dmitrijs2005/gratilog/internal/journal"
	"github.com/dmitrijs2005/gratilog/internal/wire"
)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// requestIDInterceptor tags every call with a fresh correlation id, which
// the server logs.
func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
	return invoker(ctx, method, req, reply, cc, opts...)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	used := c.Tokens().AccessToken
	if used == "" {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	err := invoker(withAccessToken(ctx, used), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) || method == wire.JournalService_RefreshToken_FullMethodName {
		return err
	}

	fresh, rerr := c.refreshAfterExpiry(ctx, used)
	if rerr != nil {
		c.log.Warn(ctx, "token refresh failed", "method", method, "error", rerr)
		return err
	}

	return invoker(withAccessToken(ctx, fresh), method, req, reply, cc, opts...)
}

// refreshAfterExpiry exchanges the refresh token once per expired access
// token: callers that lost the race reuse the pair the winner obtained.
func (c *GRPCClient) refreshAfterExpiry(ctx context.Context, expired string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	cur := c.Tokens()
	if cur.AccessToken != expired {
		return cur.AccessToken, nil
	}
	if cur.RefreshToken == "" {
		return "", ErrUnauthorized
	}

	resp, err := c.client.RefreshToken(ctx, &wire.RefreshTokenRequest{RefreshToken: cur.RefreshToken})
	if err != nil {
		return "", err
	}

	c.setTokens(Tokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken})
	return resp.AccessToken, nil
}

func (c *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument, codes.NotFound, codes.AlreadyExists, codes.PermissionDenied, codes.FailedPrecondition:
		return &RejectedError{Reason: st.Message()}
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (c *GRPCClient) Register(ctx context.Context, username string, salt, verifier []byte) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	req := &wire.RegisterUserRequest{Username: username, Salt: salt, Verifier: verifier}
	if _, err := c.client.RegisterUser(ctx, req); err != nil {
		return c.mapError(err)
	}
	return nil
}

func (c *GRPCClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.GetSalt(ctx, &wire.GetSaltRequest{Username: username})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp.Salt, nil
}

// Login returns a fresh token pair and the user id. The client itself stays
// bound to whatever identity it was built with.
func (c *GRPCClient) Login(ctx context.Context, username string, verifier []byte) (Tokens, string, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.Login(ctx, &wire.LoginRequest{Username: username, VerifierCandidate: verifier})
	if err != nil {
		return Tokens{}, "", c.mapError(err)
	}
	return Tokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, resp.UserID, nil
}

func (c *GRPCClient) Refresh(ctx context.Context, refreshToken string) (Tokens, string, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.RefreshToken(ctx, &wire.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return Tokens{}, "", c.mapError(err)
	}
	return Tokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, resp.UserID, nil
}

func (c *GRPCClient) Logout(ctx context.Context, refreshToken string) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	if _, err := c.client.Logout(ctx, &wire.RefreshTokenRequest{RefreshToken: refreshToken}); err != nil {
		return c.mapError(err)
	}
	return nil
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.Ping(ctx, &wire.Empty{})
	if err != nil {
		return c.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) GetMyEntries(ctx context.Context) ([]journal.Entry, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.GetMyEntries(ctx, &wire.Empty{})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp.ToDomain(), nil
}

func (c *GRPCClient) GetPublicEntries(ctx context.Context) ([]journal.Entry, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.GetPublicEntries(ctx, &wire.Empty{})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp.ToDomain(), nil
}

func (c *GRPCClient) CreateEntry(ctx context.Context, in journal.EntryInput) (uint64, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.CreateEntry(ctx, wire.CreateEntryRequestFromInput(in))
	if err != nil {
		return 0, c.mapError(err)
	}
	return resp.ID, nil
}

func (c *GRPCClient) AppreciateEntry(ctx context.Context, id uint64) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	if _, err := c.client.AppreciateEntry(ctx, &wire.EntryID{ID: id}); err != nil {
		return c.mapError(err)
	}
	return nil
}

func (c *GRPCClient) DeleteEntry(ctx context.Context, id uint64) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	if _, err := c.client.DeleteEntry(ctx, &wire.EntryID{ID: id}); err != nil {
		return c.mapError(err)
	}
	return nil
}

func (c *GRPCClient) GetMyStats(ctx context.Context) (journal.UserStats, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.GetMyStats(ctx, &wire.Empty{})
	if err != nil {
		return journal.UserStats{}, c.mapError(err)
	}
	return resp.ToDomain(), nil
}

func (c *GRPCClient) GetSystemStats(ctx context.Context) (journal.SystemStats, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.GetSystemStats(ctx, &wire.Empty{})
	if err != nil {
		return journal.SystemStats{}, c.mapError(err)
	}
	return resp.ToDomain(), nil
}

// ExportMyEntries asks the service to publish a JSON dump of the caller's
// journal and returns a time-limited download URL.
func (c *GRPCClient) ExportMyEntries(ctx context.Context) (string, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.ExportMyEntries(ctx, &wire.Empty{})
	if err != nil {
		return "", c.mapError(err)
	}
	return resp.URL, nil
}
