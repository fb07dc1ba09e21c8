// Package grpc serves the JournalService over gRPC: token checks in an
// interceptor, thin handlers over the services and sentinel errors mapped
// to status codes.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/gratilog/internal/journal"
	"github.com/dmitrijs2005/gratilog/internal/logging"
	"github.com/dmitrijs2005/gratilog/internal/server/models"
	"github.com/dmitrijs2005/gratilog/internal/server/services"
	"github.com/dmitrijs2005/gratilog/internal/wire"
)

type userSvc interface {
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type entrySvc interface {
	Create(ctx context.Context, userID string, in journal.EntryInput) (uint64, error)
	ListMine(ctx context.Context, userID string) ([]journal.Entry, error)
	ListPublic(ctx context.Context) ([]journal.Entry, error)
	Delete(ctx context.Context, userID string, id uint64) error
	Appreciate(ctx context.Context, userID string, id uint64) (uint64, error)
}

type statsSvc interface {
	UserStats(ctx context.Context, userID string) (journal.UserStats, error)
	SystemStats(ctx context.Context) (journal.SystemStats, error)
}

type exportSvc interface {
	Export(ctx context.Context, userID string) (*services.ExportResult, error)
}

type GRPCServer struct {
	wire.UnimplementedJournalServiceServer
	address   string
	users     userSvc
	entries   entrySvc
	stats     statsSvc
	exports   exportSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, es entrySvc, ss statsSvc, xs exportSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		entries:   es,
		stats:     ss,
		exports:   xs,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	wire.RegisterJournalServiceServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
