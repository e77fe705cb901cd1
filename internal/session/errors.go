package session

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// permanentError marks a failure that must not be retried: invalid
// configuration, or a request the server rejects as a client mistake.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so the supervisor stops instead of retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked permanent, or carries a gRPC
// status code that indicates a client-side mistake.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}

	var p *permanentError
	if errors.As(err, &p) {
		return true
	}

	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.InvalidArgument, codes.Unauthenticated, codes.PermissionDenied, codes.Unimplemented:
			return true
		}
	}

	return false
}

// classifyStreamErr wraps a mid-stream failure with context. Everything that
// is not a client mistake stays transient so the supervisor reconnects.
func classifyStreamErr(op string, err error) error {
	wrapped := fmt.Errorf("%s: %w", op, err)
	if IsPermanent(err) {
		return Permanent(wrapped)
	}
	return wrapped
}
