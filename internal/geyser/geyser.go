// Package geyser defines the Geyser update-subscription transport: the wire
// messages, the Transport/Stream interfaces consumed by the session layer,
// and a gRPC implementation.
package geyser

import "context"

// Stream is one open bidirectional subscription stream.
type Stream interface {
	// Send writes an outbound frame. Callers must serialize Send calls.
	Send(req *SubscribeRequest) error

	// Recv blocks for the next inbound frame. Returns io.EOF when the
	// server closes the stream cleanly.
	Recv() (*SubscribeUpdate, error)

	// CloseSend closes the send side of the stream.
	CloseSend() error
}

// Transport is the Geyser server surface used by the session and the
// one-shot query actions.
type Transport interface {
	// Subscribe opens the bidirectional update stream.
	Subscribe(ctx context.Context) (Stream, error)

	// Ping asks the server to echo the counter.
	Ping(ctx context.Context, count int32) (int32, error)

	// GetLatestBlockhash returns the most recent blockhash at the
	// commitment level, or the default level when nil.
	GetLatestBlockhash(ctx context.Context, commitment *CommitmentLevel) (*LatestBlockhash, error)

	// GetBlockHeight returns the current block height.
	GetBlockHeight(ctx context.Context, commitment *CommitmentLevel) (uint64, error)

	// GetSlot returns the current slot.
	GetSlot(ctx context.Context, commitment *CommitmentLevel) (uint64, error)

	// IsBlockhashValid reports whether the blockhash is still usable, and
	// the slot the check was evaluated at.
	IsBlockhashValid(ctx context.Context, blockhash string, commitment *CommitmentLevel) (bool, uint64, error)

	// GetVersion returns the server version string.
	GetVersion(ctx context.Context) (string, error)

	// HealthCheck returns the serving status of the geyser service.
	HealthCheck(ctx context.Context) (string, error)

	// HealthWatch streams serving status changes to observe until the
	// stream ends or the context is cancelled.
	HealthWatch(ctx context.Context, observe func(status string)) error

	// Close releases the underlying connection.
	Close() error
}

// LatestBlockhash is the result of GetLatestBlockhash.
type LatestBlockhash struct {
	Slot                 uint64
	Blockhash            string
	LastValidBlockHeight uint64
}
