package client

import (
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dmitrijs2005/gratilog/internal/logging"
	"github.com/dmitrijs2005/gratilog/internal/wire"
)

// Option customises a GRPCClient.
type Option func(*GRPCClient)

// WithTokens binds the client to an identity.
func WithTokens(t Tokens) Option {
	return func(c *GRPCClient) {
		c.accessToken = t.AccessToken
		c.refreshToken = t.RefreshToken
	}
}

// WithTokenHook is called after every transparent refresh.
func WithTokenHook(fn func(Tokens)) Option {
	return func(c *GRPCClient) { c.onTokens = fn }
}

// WithTimeout bounds every call; zero means no extra deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *GRPCClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *GRPCClient) { c.log = l }
}

// WithDialOptions appends raw gRPC dial options, e.g. a custom dialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOpts = append(c.dialOpts, opts...) }
}

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	dialOpts    []grpc.DialOption
	log         logging.Logger

	conn   *grpc.ClientConn
	client wire.JournalServiceClient

	refreshMu sync.Mutex

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onTokens     func(Tokens)
}

// New builds a client for endpointURL. The connection is established lazily
// on the first call.
func New(endpointURL string, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, log: logging.Nop{}}
	for _, o := range opts {
		o(c)
	}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(requestIDInterceptor, c.accessTokenInterceptor),
	}, c.dialOpts...)

	conn, err := grpc.NewClient(c.endpointURL, opts...)
	if err != nil {
		return err
	}
	c.conn = conn
	c.client = wire.NewJournalServiceClient(conn)
	return nil
}

func (c *GRPCClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Tokens returns the current credential pair.
func (c *GRPCClient) Tokens() Tokens {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Tokens{AccessToken: c.accessToken, RefreshToken: c.refreshToken}
}

func (c *GRPCClient) setTokens(t Tokens) {
	c.mu.Lock()
	c.accessToken = t.AccessToken
	c.refreshToken = t.RefreshToken
	hook := c.onTokens
	c.mu.Unlock()

	if hook != nil {
		hook(t)
	}
}
