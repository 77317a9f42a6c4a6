package catalog

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidID indicates a project id that is not a positive integer. It is
// reported without contacting the service.
var ErrInvalidID = errors.New("project id must be a positive integer")

// TransportError covers everything between building the request and
// receiving a 2xx status: unreachable service, timeouts, non-success codes.
type TransportError struct {
	// StatusCode is zero when no response was received.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	}
	if e.Err == nil {
		return "request failed"
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError indicates a 2xx response whose body was not in the expected
// shape, including records that violate the catalog invariants.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Message returns the human-readable text subscribers display for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case isTimeout(err):
		return "request timed out"
	default:
		return err.Error()
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

func errorCode(err error) string {
	var te *TransportError
	var de *DecodeError
	switch {
	case err == nil:
		return ""
	case isTimeout(err):
		return "TIMEOUT"
	case errors.As(err, &te) && te.StatusCode != 0:
		return fmt.Sprintf("HTTP_%d", te.StatusCode)
	case errors.As(err, &te):
		return "TRANSPORT"
	case errors.As(err, &de):
		return "DECODE"
	default:
		return "UNKNOWN"
	}
}
