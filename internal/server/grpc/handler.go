package grpc

import (
	"context"

	"github.com/dmitrijs2005/gratilog/internal/server/services"
	"github.com/dmitrijs2005/gratilog/internal/wire"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *wire.Empty) (*wire.PingResponse, error) {
	return &wire.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *wire.RegisterUserRequest) (*wire.RegisterUserResponse, error) {
	user, err := s.users.Register(ctx, req.Username, req.Salt, req.Verifier)
	if err != nil {
		return nil, s.toStatus(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName, "user_id", user.ID)
	return &wire.RegisterUserResponse{UserID: user.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *wire.GetSaltRequest) (*wire.GetSaltResponse, error) {
	salt, err := s.users.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, "get salt", err)
	}
	return &wire.GetSaltResponse{Salt: salt}, nil
}

func tokenResponse(p *services.TokenPair) *wire.TokenResponse {
	return &wire.TokenResponse{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken, UserID: p.UserID}
}

func (s *GRPCServer) Login(ctx context.Context, req *wire.LoginRequest) (*wire.TokenResponse, error) {
	tokens, err := s.users.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		return nil, s.toStatus(ctx, "login", err)
	}
	return tokenResponse(tokens), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *wire.RefreshTokenRequest) (*wire.TokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "refresh token", err)
	}
	return tokenResponse(tokens), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *wire.RefreshTokenRequest) (*wire.Empty, error) {
	if err := s.users.Logout(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, "logout", err)
	}
	return &wire.Empty{}, nil
}

func (s *GRPCServer) GetMyEntries(ctx context.Context, _ *wire.Empty) (*wire.EntryList, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListMine(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "list entries", err)
	}
	return wire.EntryListFromDomain(entries), nil
}

func (s *GRPCServer) GetPublicEntries(ctx context.Context, _ *wire.Empty) (*wire.EntryList, error) {
	entries, err := s.entries.ListPublic(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "list public entries", err)
	}
	return wire.EntryListFromDomain(entries), nil
}

func (s *GRPCServer) CreateEntry(ctx context.Context, req *wire.CreateEntryRequest) (*wire.EntryID, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.entries.Create(ctx, userID, req.ToInput())
	if err != nil {
		return nil, s.toStatus(ctx, "create entry", err)
	}
	return &wire.EntryID{ID: id}, nil
}

func (s *GRPCServer) AppreciateEntry(ctx context.Context, req *wire.EntryID) (*wire.Empty, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.entries.Appreciate(ctx, userID, req.ID); err != nil {
		return nil, s.toStatus(ctx, "appreciate entry", err)
	}
	return &wire.Empty{}, nil
}

func (s *GRPCServer) DeleteEntry(ctx context.Context, req *wire.EntryID) (*wire.Empty, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.entries.Delete(ctx, userID, req.ID); err != nil {
		return nil, s.toStatus(ctx, "delete entry", err)
	}
	return &wire.Empty{}, nil
}

func (s *GRPCServer) GetMyStats(ctx context.Context, _ *wire.Empty) (*wire.UserStats, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats.UserStats(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "user stats", err)
	}
	return wire.UserStatsFromDomain(stats), nil
}

func (s *GRPCServer) GetSystemStats(ctx context.Context, _ *wire.Empty) (*wire.SystemStats, error) {
	stats, err := s.stats.SystemStats(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "system stats", err)
	}
	return wire.SystemStatsFromDomain(stats), nil
}

func (s *GRPCServer) ExportMyEntries(ctx context.Context, _ *wire.Empty) (*wire.ExportResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.exports.Export(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "export", err)
	}
	return &wire.ExportResponse{URL: res.URL, ExpiresAt: res.ExpiresAt.UnixNano(), Count: uint64(res.Count)}, nil
}
