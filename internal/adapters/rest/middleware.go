package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/andrescamacho/nations-go/internal/application/logging"
)

type userIDKey struct{}

func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

// routePattern is the chi pattern matched so far, e.g. /api/countries/{id}
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// withLogger attaches the server logger, tagged with method and path, to the request context
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.With("method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(logging.WithLogger(r.Context(), logger)))
	})
}

// authenticated reads the caller identity set by the upstream auth layer
// and applies the caller's rate limit
func (s *Server) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(s.cfg.UserHeader))
		if userID == "" {
			writeMessage(w, http.StatusUnauthorized, msgUnauthenticated)
			return
		}

		if !s.limiters.allow(userID) {
			if s.httpMetrics != nil {
				s.httpMetrics.RecordRateLimited(routePattern(r))
			}
			writeMessage(w, http.StatusTooManyRequests, msgRateLimited)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With("user_id", userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// instrument labels request metrics with the route pattern resolved by the router
func (s *Server) instrument(next http.Handler) http.Handler {
	if s.httpMetrics == nil {
		return next
	}
	return s.httpMetrics.Middleware(routePattern)(next)
}
