package geyser

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

// Default configuration values.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultCallTimeout    = 10 * time.Second
	DefaultMaxMessageSize = 64 * 1024 * 1024
)

// gRPC method paths of the geyser service.
const (
	methodSubscribe          = "/geyser.Geyser/Subscribe"
	methodPing               = "/geyser.Geyser/Ping"
	methodGetLatestBlockhash = "/geyser.Geyser/GetLatestBlockhash"
	methodGetBlockHeight     = "/geyser.Geyser/GetBlockHeight"
	methodGetSlot            = "/geyser.Geyser/GetSlot"
	methodIsBlockhashValid   = "/geyser.Geyser/IsBlockhashValid"
	methodGetVersion         = "/geyser.Geyser/GetVersion"
)

// Config configures the gRPC transport.
type Config struct {
	// Endpoint is the host:port of the geyser server.
	Endpoint string
	// XToken is sent as x-token metadata on every call when non-empty.
	XToken string
	// UseTLS enables transport security.
	UseTLS bool
	// ConnectTimeout bounds connection establishment.
	ConnectTimeout time.Duration
	// CallTimeout bounds each unary call.
	CallTimeout time.Duration
	// MaxMessageSize caps inbound and outbound message sizes.
	MaxMessageSize int
}

// WithDefaults fills unset fields with default values.
func (c Config) WithDefaults() Config {
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.CallTimeout == 0 {
		c.CallTimeout = DefaultCallTimeout
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = DefaultMaxMessageSize
	}
	return c
}

// GRPCClient implements Transport over a gRPC connection.
type GRPCClient struct {
	config Config
	conn   *grpc.ClientConn
	health grpc_health_v1.HealthClient
}

// Compile-time interface check.
var _ Transport = (*GRPCClient)(nil)

// Connect dials the geyser endpoint and verifies the connection with a
// health check.
func Connect(ctx context.Context, config Config) (*GRPCClient, error) {
	config = config.WithDefaults()
	if config.Endpoint == "" {
		return nil, fmt.Errorf("geyser endpoint is required")
	}

	opts := []grpc.DialOption{
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             10 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(config.MaxMessageSize),
			grpc.MaxCallSendMsgSize(config.MaxMessageSize),
		),
	}

	if config.UseTLS {
		opts = append(opts, grpc.WithTransportCredentials(
			credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}),
		))
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	if config.XToken != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(&tokenAuth{
			token:      config.XToken,
			requireTLS: config.UseTLS,
		}))
	}

	conn, err := grpc.NewClient(config.Endpoint, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial geyser: %w", err)
	}

	c := &GRPCClient{
		config: config,
		conn:   conn,
		health: grpc_health_v1.NewHealthClient(conn),
	}

	// The connection is lazy; a health check forces establishment so that
	// unreachable endpoints fail here, inside the supervisor's retry scope.
	checkCtx, cancel := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cancel()
	if _, err := c.HealthCheck(checkCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("connect geyser: %w", err)
	}

	return c, nil
}

// Subscribe opens the bidirectional update stream.
func (c *GRPCClient) Subscribe(ctx context.Context) (Stream, error) {
	desc := &grpc.StreamDesc{
		StreamName:    "Subscribe",
		ServerStreams: true,
		ClientStreams: true,
	}

	stream, err := c.conn.NewStream(ctx, desc, methodSubscribe)
	if err != nil {
		return nil, fmt.Errorf("open subscribe stream: %w", err)
	}

	return &grpcStream{stream: stream}, nil
}

// Ping asks the server to echo the counter.
func (c *GRPCClient) Ping(ctx context.Context, count int32) (int32, error) {
	var resp PongResponse
	if err := c.invoke(ctx, methodPing, &PingRequest{Count: count}, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// GetLatestBlockhash returns the most recent blockhash.
func (c *GRPCClient) GetLatestBlockhash(ctx context.Context, commitment *CommitmentLevel) (*LatestBlockhash, error) {
	req := &GetLatestBlockhashRequest{Commitment: commitmentValue(commitment)}
	var resp GetLatestBlockhashResponse
	if err := c.invoke(ctx, methodGetLatestBlockhash, req, &resp); err != nil {
		return nil, err
	}
	return &LatestBlockhash{
		Slot:                 resp.Slot,
		Blockhash:            resp.Blockhash,
		LastValidBlockHeight: resp.LastValidBlockHeight,
	}, nil
}

// GetBlockHeight returns the current block height.
func (c *GRPCClient) GetBlockHeight(ctx context.Context, commitment *CommitmentLevel) (uint64, error) {
	req := &GetBlockHeightRequest{Commitment: commitmentValue(commitment)}
	var resp GetBlockHeightResponse
	if err := c.invoke(ctx, methodGetBlockHeight, req, &resp); err != nil {
		return 0, err
	}
	return resp.BlockHeight, nil
}

// GetSlot returns the current slot.
func (c *GRPCClient) GetSlot(ctx context.Context, commitment *CommitmentLevel) (uint64, error) {
	req := &GetSlotRequest{Commitment: commitmentValue(commitment)}
	var resp GetSlotResponse
	if err := c.invoke(ctx, methodGetSlot, req, &resp); err != nil {
		return 0, err
	}
	return resp.Slot, nil
}

// IsBlockhashValid reports whether the blockhash is still usable.
func (c *GRPCClient) IsBlockhashValid(ctx context.Context, blockhash string, commitment *CommitmentLevel) (bool, uint64, error) {
	req := &IsBlockhashValidRequest{
		Blockhash:  blockhash,
		Commitment: commitmentValue(commitment),
	}
	var resp IsBlockhashValidResponse
	if err := c.invoke(ctx, methodIsBlockhashValid, req, &resp); err != nil {
		return false, 0, err
	}
	return resp.Valid, resp.Slot, nil
}

// GetVersion returns the server version string.
func (c *GRPCClient) GetVersion(ctx context.Context) (string, error) {
	var resp GetVersionResponse
	if err := c.invoke(ctx, methodGetVersion, &GetVersionRequest{}, &resp); err != nil {
		return "", err
	}
	return resp.Version, nil
}

// HealthCheck returns the serving status of the geyser service.
func (c *GRPCClient) HealthCheck(ctx context.Context) (string, error) {
	resp, err := c.health.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		return "", fmt.Errorf("health check: %w", err)
	}
	return resp.GetStatus().String(), nil
}

// HealthWatch streams serving status changes until the stream ends.
func (c *GRPCClient) HealthWatch(ctx context.Context, observe func(status string)) error {
	stream, err := c.health.Watch(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		return fmt.Errorf("health watch: %w", err)
	}

	for {
		resp, err := stream.Recv()
		if err != nil {
			return fmt.Errorf("health watch recv: %w", err)
		}
		observe(resp.GetStatus().String())
	}
}

// Close releases the underlying connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) invoke(ctx context.Context, method string, req, resp interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
	defer cancel()

	if err := c.conn.Invoke(ctx, method, req, resp); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func commitmentValue(commitment *CommitmentLevel) *int32 {
	if commitment == nil {
		return nil
	}
	v := int32(*commitment)
	return &v
}

// grpcStream adapts a raw grpc.ClientStream to the Stream interface.
type grpcStream struct {
	stream grpc.ClientStream
}

func (s *grpcStream) Send(req *SubscribeRequest) error {
	return s.stream.SendMsg(req)
}

func (s *grpcStream) Recv() (*SubscribeUpdate, error) {
	update := &SubscribeUpdate{}
	if err := s.stream.RecvMsg(update); err != nil {
		return nil, err
	}
	return update, nil
}

func (s *grpcStream) CloseSend() error {
	return s.stream.CloseSend()
}

// tokenAuth sends the access token as x-token metadata on every call.
type tokenAuth struct {
	token      string
	requireTLS bool
}

func (t *tokenAuth) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	return map[string]string{"x-token": t.token}, nil
}

func (t *tokenAuth) RequireTransportSecurity() bool {
	return t.requireTLS
}
