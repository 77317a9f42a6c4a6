package catalog

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// RequestEvent records metadata about a single catalog request.
type RequestEvent struct {
	Method     string
	Endpoint   string
	RequestID  string
	StatusCode int
	Latency    time.Duration
	Success    bool
	ErrorCode  string
}

// Observer receives events about catalog requests for logging.
type Observer interface {
	OnRequestComplete(ctx context.Context, event RequestEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnRequestComplete(context.Context, RequestEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes request events to w as slog text records.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnRequestComplete(ctx context.Context, event RequestEvent) {
	attrs := []any{
		"method", event.Method,
		"endpoint", event.Endpoint,
		"request_id", event.RequestID,
		"status", event.StatusCode,
		"latency_ms", event.Latency.Milliseconds(),
	}
	if !event.Success {
		attrs = append(attrs, "error_code", event.ErrorCode)
		o.logger.WarnContext(ctx, "catalog_request", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "catalog_request", attrs...)
}
