// Package middleware binds a browser session to each request.
//
// The session id travels in a signed cookie. The state is loaded before the
// handler runs and saved right before the first response byte is written,
// so a redirect is never observed ahead of the state it depends on.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"todolists/internal/platform/metrics"
	"todolists/internal/session/models"
	"todolists/internal/session/store"
	dErrors "todolists/pkg/domain-errors"
	"todolists/pkg/platform/httputil"
	"todolists/pkg/platform/sentinel"
	"todolists/pkg/requestcontext"
)

const CookieName = "todolists_session"

// Config controls cookie and lifetime behavior.
type Config struct {
	Secret       string
	TTL          time.Duration
	SecureCookie bool
}

// Manager loads and persists session state around handlers.
type Manager struct {
	store   store.Store
	tokens  *TokenCodec
	ttl     time.Duration
	secure  bool
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(s store.Store, cfg Config, logger *slog.Logger, m *metrics.Metrics) *Manager {
	return &Manager{
		store:   s,
		tokens:  NewTokenCodec(cfg.Secret, cfg.TTL),
		ttl:     cfg.TTL,
		secure:  cfg.SecureCookie,
		logger:  logger,
		metrics: m,
	}
}

// Middleware attaches the session state to the request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		now := requestcontext.Now(ctx)
		requestID := requestcontext.RequestID(ctx)

		sessionID, known := m.sessionID(r, now)
		state := models.NewState()
		if known {
			loaded, err := m.store.Load(ctx, sessionID)
			switch {
			case err == nil:
				state = loaded
			case errors.Is(err, sentinel.ErrNotFound):
			case errors.Is(err, sentinel.ErrCorrupt):
				m.logger.WarnContext(ctx, "discarding corrupt session",
					"request_id", requestID,
					"error", err,
				)
			default:
				m.logger.ErrorContext(ctx, "failed to load session",
					"request_id", requestID,
					"error", err,
				)
				httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "session store unavailable"))
				return
			}
		} else {
			m.metrics.IncrementSessionsCreated()
		}

		token, err := m.tokens.Issue(sessionID, now)
		if err != nil {
			m.logger.ErrorContext(ctx, "failed to issue session token",
				"request_id", requestID,
				"error", err,
			)
			httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "session token"))
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(m.ttl.Seconds()),
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
		})

		ctx = requestcontext.WithSessionID(ctx, sessionID)
		ctx = models.WithState(ctx, state)
		sw := &savingWriter{ResponseWriter: w, save: func() {
			m.save(ctx, sessionID, state)
		}}
		next.ServeHTTP(sw, r.WithContext(ctx))
		sw.flushSave()
	})
}

func (m *Manager) sessionID(r *http.Request, now time.Time) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return uuid.NewString(), false
	}
	id, err := m.tokens.Parse(cookie.Value, now)
	if err != nil {
		m.logger.WarnContext(r.Context(), "rejected session cookie",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
		return uuid.NewString(), false
	}
	return id, true
}

func (m *Manager) save(ctx context.Context, id string, state *models.State) {
	if err := m.store.Save(context.WithoutCancel(ctx), id, state, m.ttl); err != nil {
		m.logger.ErrorContext(ctx, "failed to save session",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

// savingWriter runs save once, before the first header or body byte.
type savingWriter struct {
	http.ResponseWriter
	save  func()
	saved bool
}

func (w *savingWriter) flushSave() {
	if !w.saved {
		w.saved = true
		w.save()
	}
}

func (w *savingWriter) WriteHeader(code int) {
	w.flushSave()
	w.ResponseWriter.WriteHeader(code)
}

func (w *savingWriter) Write(b []byte) (int, error) {
	w.flushSave()
	return w.ResponseWriter.Write(b)
}

func (w *savingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
