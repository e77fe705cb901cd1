// Package session runs the subscription protocol over one open stream and
// supervises the reconnect lifecycle around it.
package session

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"solana-geyser-client/internal/decode"
	"solana-geyser-client/internal/filter"
	"solana-geyser-client/internal/geyser"
	"solana-geyser-client/internal/observability"
)

// pingAckID is the fixed echo id sent in keepalive acknowledgments.
const pingAckID = 1

// State is the lifecycle of one streaming session.
type State int

// Session states.
const (
	StateOpening State = iota
	StateStreaming
	StateClosed
)

// UpdateHandler receives every decoded data frame together with the filter
// group labels that matched it.
type UpdateHandler func(update decode.Update, filters []string)

// Session owns one open bidirectional stream: it sends the initial request,
// answers keepalive pings, fires the one-shot resubscription, and decodes
// every data frame before handing it to the handler.
type Session struct {
	stream  geyser.Stream
	request *geyser.SubscribeRequest

	// resubAfter is the data-frame count that triggers resubscription,
	// zero disables it.
	resubAfter int

	handler UpdateHandler
	logger  *log.Logger
	metrics *observability.Metrics

	// sendMu serializes outbound frames; two frames must never be
	// written concurrently on the same stream.
	sendMu sync.Mutex

	state State
}

// Config configures a Session.
type Config struct {
	Request          *geyser.SubscribeRequest
	ResubscribeAfter int
	Handler          UpdateHandler
	Logger           *log.Logger
	Metrics          *observability.Metrics
}

// New creates a session over the given stream.
func New(stream geyser.Stream, config Config) *Session {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Session{
		stream:     stream,
		request:    config.Request,
		resubAfter: config.ResubscribeAfter,
		handler:    config.Handler,
		logger:     logger,
		metrics:    config.Metrics,
		state:      StateOpening,
	}
}

// Run sends the subscription request and drives the receive loop until the
// stream ends. It returns nil on a clean end of stream, a permanent error
// for client mistakes, and a transient error otherwise.
func (s *Session) Run(ctx context.Context) error {
	if err := s.send(s.request); err != nil {
		s.state = StateClosed
		return classifyStreamErr("send subscribe request", err)
	}
	s.state = StateStreaming
	s.logger.Printf("stream opened")

	seen := 0
	resubscribed := false

	for {
		update, err := s.stream.Recv()
		if err != nil {
			s.state = StateClosed
			if errors.Is(err, io.EOF) {
				s.logger.Printf("stream closed")
				return nil
			}
			if ctx.Err() != nil {
				s.logger.Printf("stream closed")
				return nil
			}
			s.metrics.IncStreamError()
			return classifyStreamErr("receive update", err)
		}

		record, err := decode.Decode(update)
		if err != nil {
			// A contract violation may be a transient server-side
			// fault; end the session and let the supervisor
			// reconnect rather than present corrupted state.
			s.state = StateClosed
			s.metrics.IncStreamError()
			return classifyStreamErr("decode update", err)
		}

		if record.Kind() == decode.KindPing {
			// The ack must be dispatched before the next frame is
			// read to preserve keepalive timing.
			if err := s.send(&geyser.SubscribeRequest{
				Ping: &geyser.SubscribeRequestPing{Id: pingAckID},
			}); err != nil {
				s.state = StateClosed
				return classifyStreamErr("send ping ack", err)
			}
			s.metrics.IncPingAnswered()
			continue
		}

		if record.Kind() == decode.KindPong {
			s.logger.Printf("pong received: %s", record)
			continue
		}

		seen++
		s.metrics.IncUpdateReceived(record.Kind().String())
		if s.handler != nil {
			s.handler(record, update.Filters)
		}

		if !resubscribed && s.resubAfter > 0 && seen == s.resubAfter {
			if err := s.send(filter.ResubscribeRequest()); err != nil {
				s.state = StateClosed
				return classifyStreamErr("send resubscribe request", err)
			}
			resubscribed = true
			s.metrics.IncResubscription()
			s.logger.Printf("resubscribed to slots after %d updates", seen)
		}
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

func (s *Session) send(req *geyser.SubscribeRequest) error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	return s.stream.Send(req)
}
