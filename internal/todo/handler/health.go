package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"todolists/pkg/platform/httputil"
	"todolists/pkg/requestcontext"
)

const healthTimeout = 2 * time.Second

// HealthChecker is implemented by session stores that can check their
// backend.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health reports readiness. A nil checker always reports ok.
func Health(checker HealthChecker, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := checker.Health(ctx); err != nil {
				logger.ErrorContext(r.Context(), "health check failed",
					"request_id", requestcontext.RequestID(r.Context()),
					"error", err,
				)
				httputil.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
