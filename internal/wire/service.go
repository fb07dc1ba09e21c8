package wire

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "gratilog.JournalService"

const (
	JournalService_Ping_FullMethodName             = "/gratilog.JournalService/Ping"
	JournalService_RegisterUser_FullMethodName     = "/gratilog.JournalService/RegisterUser"
	JournalService_GetSalt_FullMethodName          = "/gratilog.JournalService/GetSalt"
	JournalService_Login_FullMethodName            = "/gratilog.JournalService/Login"
	JournalService_RefreshToken_FullMethodName     = "/gratilog.JournalService/RefreshToken"
	JournalService_Logout_FullMethodName           = "/gratilog.JournalService/Logout"
	JournalService_GetMyEntries_FullMethodName     = "/gratilog.JournalService/GetMyEntries"
	JournalService_GetPublicEntries_FullMethodName = "/gratilog.JournalService/GetPublicEntries"
	JournalService_CreateEntry_FullMethodName      = "/gratilog.JournalService/CreateEntry"
	JournalService_AppreciateEntry_FullMethodName  = "/gratilog.JournalService/AppreciateEntry"
	JournalService_DeleteEntry_FullMethodName      = "/gratilog.JournalService/DeleteEntry"
	JournalService_GetMyStats_FullMethodName       = "/gratilog.JournalService/GetMyStats"
	JournalService_GetSystemStats_FullMethodName   = "/gratilog.JournalService/GetSystemStats"
	JournalService_ExportMyEntries_FullMethodName  = "/gratilog.JournalService/ExportMyEntries"
)

// PublicMethods can be called without an access token.
var PublicMethods = map[string]struct{}{
	JournalService_Ping_FullMethodName:             {},
	JournalService_RegisterUser_FullMethodName:     {},
	JournalService_GetSalt_FullMethodName:          {},
	JournalService_Login_FullMethodName:            {},
	JournalService_RefreshToken_FullMethodName:     {},
	JournalService_GetPublicEntries_FullMethodName: {},
	JournalService_GetSystemStats_FullMethodName:   {},
}

// JournalServiceClient is the client API for JournalService.
type JournalServiceClient interface {
	Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error)
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error)
	GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	Logout(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*Empty, error)
	GetMyEntries(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*EntryList, error)
	GetPublicEntries(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*EntryList, error)
	CreateEntry(ctx context.Context, in *CreateEntryRequest, opts ...grpc.CallOption) (*EntryID, error)
	AppreciateEntry(ctx context.Context, in *EntryID, opts ...grpc.CallOption) (*Empty, error)
	DeleteEntry(ctx context.Context, in *EntryID, opts ...grpc.CallOption) (*Empty, error)
	GetMyStats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*UserStats, error)
	GetSystemStats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SystemStats, error)
	ExportMyEntries(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ExportResponse, error)
}

type journalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJournalServiceClient(cc grpc.ClientConnInterface) JournalServiceClient {
	return &journalServiceClient{cc}
}

func invoke[T Message](ctx context.Context, cc grpc.ClientConnInterface, method string, in Message, out T, opts []grpc.CallOption) (T, error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (c *journalServiceClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke(ctx, c.cc, JournalService_Ping_FullMethodName, in, new(PingResponse), opts)
}

func (c *journalServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	return invoke(ctx, c.cc, JournalService_RegisterUser_FullMethodName, in, new(RegisterUserResponse), opts)
}

func (c *journalServiceClient) GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error) {
	return invoke(ctx, c.cc, JournalService_GetSalt_FullMethodName, in, new(GetSaltResponse), opts)
}

func (c *journalServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke(ctx, c.cc, JournalService_Login_FullMethodName, in, new(TokenResponse), opts)
}

func (c *journalServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke(ctx, c.cc, JournalService_RefreshToken_FullMethodName, in, new(TokenResponse), opts)
}

func (c *journalServiceClient) Logout(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke(ctx, c.cc, JournalService_Logout_FullMethodName, in, new(Empty), opts)
}

func (c *journalServiceClient) GetMyEntries(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*EntryList, error) {
	return invoke(ctx, c.cc, JournalService_GetMyEntries_FullMethodName, in, new(EntryList), opts)
}

func (c *journalServiceClient) GetPublicEntries(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*EntryList, error) {
	return invoke(ctx, c.cc, JournalService_GetPublicEntries_FullMethodName, in, new(EntryList), opts)
}

func (c *journalServiceClient) CreateEntry(ctx context.Context, in *CreateEntryRequest, opts ...grpc.CallOption) (*EntryID, error) {
	return invoke(ctx, c.cc, JournalService_CreateEntry_FullMethodName, in, new(EntryID), opts)
}

func (c *journalServiceClient) AppreciateEntry(ctx context.Context, in *EntryID, opts ...grpc.CallOption) (*Empty, error) {
	return invoke(ctx, c.cc, JournalService_AppreciateEntry_FullMethodName, in, new(Empty), opts)
}

func (c *journalServiceClient) DeleteEntry(ctx context.Context, in *EntryID, opts ...grpc.CallOption) (*Empty, error) {
	return invoke(ctx, c.cc, JournalService_DeleteEntry_FullMethodName, in, new(Empty), opts)
}

func (c *journalServiceClient) GetMyStats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*UserStats, error) {
	return invoke(ctx, c.cc, JournalService_GetMyStats_FullMethodName, in, new(UserStats), opts)
}

func (c *journalServiceClient) GetSystemStats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SystemStats, error) {
	return invoke(ctx, c.cc, JournalService_GetSystemStats_FullMethodName, in, new(SystemStats), opts)
}

func (c *journalServiceClient) ExportMyEntries(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ExportResponse, error) {
	return invoke(ctx, c.cc, JournalService_ExportMyEntries_FullMethodName, in, new(ExportResponse), opts)
}

// JournalServiceServer is the server API for JournalService.
type JournalServiceServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error)
	Login(context.Context, *LoginRequest) (*TokenResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*TokenResponse, error)
	Logout(context.Context, *RefreshTokenRequest) (*Empty, error)
	GetMyEntries(context.Context, *Empty) (*EntryList, error)
	GetPublicEntries(context.Context, *Empty) (*EntryList, error)
	CreateEntry(context.Context, *CreateEntryRequest) (*EntryID, error)
	AppreciateEntry(context.Context, *EntryID) (*Empty, error)
	DeleteEntry(context.Context, *EntryID) (*Empty, error)
	GetMyStats(context.Context, *Empty) (*UserStats, error)
	GetSystemStats(context.Context, *Empty) (*SystemStats, error)
	ExportMyEntries(context.Context, *Empty) (*ExportResponse, error)
}

// UnimplementedJournalServiceServer can be embedded to get forward
// compatible implementations.
type UnimplementedJournalServiceServer struct{}

func (UnimplementedJournalServiceServer) Ping(context.Context, *Empty) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedJournalServiceServer) RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterUser not implemented")
}
func (UnimplementedJournalServiceServer) GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSalt not implemented")
}
func (UnimplementedJournalServiceServer) Login(context.Context, *LoginRequest) (*TokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedJournalServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*TokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedJournalServiceServer) Logout(context.Context, *RefreshTokenRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedJournalServiceServer) GetMyEntries(context.Context, *Empty) (*EntryList, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMyEntries not implemented")
}
func (UnimplementedJournalServiceServer) GetPublicEntries(context.Context, *Empty) (*EntryList, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPublicEntries not implemented")
}
func (UnimplementedJournalServiceServer) CreateEntry(context.Context, *CreateEntryRequest) (*EntryID, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateEntry not implemented")
}
func (UnimplementedJournalServiceServer) AppreciateEntry(context.Context, *EntryID) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method AppreciateEntry not implemented")
}
func (UnimplementedJournalServiceServer) DeleteEntry(context.Context, *EntryID) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteEntry not implemented")
}
func (UnimplementedJournalServiceServer) GetMyStats(context.Context, *Empty) (*UserStats, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMyStats not implemented")
}
func (UnimplementedJournalServiceServer) GetSystemStats(context.Context, *Empty) (*SystemStats, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSystemStats not implemented")
}
func (UnimplementedJournalServiceServer) ExportMyEntries(context.Context, *Empty) (*ExportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportMyEntries not implemented")
}

func RegisterJournalServiceServer(s grpc.ServiceRegistrar, srv JournalServiceServer) {
	s.RegisterService(&JournalService_ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodHandler.
func unary[Req any, PReq interface {
	*Req
	Message
}, Resp Message](method string, call func(JournalServiceServer, context.Context, PReq) (Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		s := srv.(JournalServiceServer)
		if interceptor == nil {
			return call(s, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(s, ctx, req.(PReq))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var JournalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*JournalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unary[Empty](JournalService_Ping_FullMethodName, JournalServiceServer.Ping)},
		{MethodName: "RegisterUser", Handler: unary[RegisterUserRequest](JournalService_RegisterUser_FullMethodName, JournalServiceServer.RegisterUser)},
		{MethodName: "GetSalt", Handler: unary[GetSaltRequest](JournalService_GetSalt_FullMethodName, JournalServiceServer.GetSalt)},
		{MethodName: "Login", Handler: unary[LoginRequest](JournalService_Login_FullMethodName, JournalServiceServer.Login)},
		{MethodName: "RefreshToken", Handler: unary[RefreshTokenRequest](JournalService_RefreshToken_FullMethodName, JournalServiceServer.RefreshToken)},
		{MethodName: "Logout", Handler: unary[RefreshTokenRequest](JournalService_Logout_FullMethodName, JournalServiceServer.Logout)},
		{MethodName: "GetMyEntries", Handler: unary[Empty](JournalService_GetMyEntries_FullMethodName, JournalServiceServer.GetMyEntries)},
		{MethodName: "GetPublicEntries", Handler: unary[Empty](JournalService_GetPublicEntries_FullMethodName, JournalServiceServer.GetPublicEntries)},
		{MethodName: "CreateEntry", Handler: unary[CreateEntryRequest](JournalService_CreateEntry_FullMethodName, JournalServiceServer.CreateEntry)},
		{MethodName: "AppreciateEntry", Handler: unary[EntryID](JournalService_AppreciateEntry_FullMethodName, JournalServiceServer.AppreciateEntry)},
		{MethodName: "DeleteEntry", Handler: unary[EntryID](JournalService_DeleteEntry_FullMethodName, JournalServiceServer.DeleteEntry)},
		{MethodName: "GetMyStats", Handler: unary[Empty](JournalService_GetMyStats_FullMethodName, JournalServiceServer.GetMyStats)},
		{MethodName: "GetSystemStats", Handler: unary[Empty](JournalService_GetSystemStats_FullMethodName, JournalServiceServer.GetSystemStats)},
		{MethodName: "ExportMyEntries", Handler: unary[Empty](JournalService_ExportMyEntries_FullMethodName, JournalServiceServer.ExportMyEntries)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gratilog/journal.proto",
}
