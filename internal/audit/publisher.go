package audit

import (
	"context"
	"log/slog"

	"todolists/internal/platform/metrics"
	"todolists/pkg/requestcontext"
)

// Publisher buffers audit events for the Worker. Emit never blocks request
// handling: when the buffer is full the event is dropped and counted.
type Publisher struct {
	inbox   chan Event
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewPublisher(size int, logger *slog.Logger, m *metrics.Metrics) *Publisher {
	return &Publisher{
		inbox:   make(chan Event, size),
		logger:  logger,
		metrics: m,
	}
}

// Emit fills in request-scoped fields and enqueues the event.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.SessionID == "" {
		event.SessionID = requestcontext.SessionID(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	select {
	case p.inbox <- event:
	default:
		p.metrics.IncrementAuditDropped()
		p.logger.WarnContext(ctx, "audit buffer full, dropping event",
			"request_id", event.RequestID,
			"action", event.Action,
		)
	}
}

// Inbox is the channel the Worker drains.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}
