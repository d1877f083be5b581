package server

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/utils/logging"
)

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.Any("request_id", reqID))
		ctx = logging.With(ctx, logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

// authenticate rejects requests without a live session before any handler runs.
func (x *handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sid := sessionIDOf(x.cookie(r))
		session, err := x.uc.Authenticate(ctx, sid)
		if err != nil {
			logging.From(ctx).Debug("authentication failed", slog.Any("error", err))
			writeJSON(w, http.StatusUnauthorized, &errorResponse{
				Error: "User not authenticated. Please log in with GitHub.",
				Kind:  types.KindUnauthenticated,
			})
			return
		}

		ctx = logging.WithAttrs(ctx, slog.String("login", session.Identity.Profile.Login))
		next.ServeHTTP(w, r.WithContext(withSession(ctx, session)))
	})
}

// requireSession returns the session attached by authenticate.
func requireSession(r *http.Request) (*model.Session, error) {
	if s := sessionFrom(r.Context()); s != nil {
		return s, nil
	}
	return nil, goerr.Wrap(types.ErrUnauthenticated, "no session in request context")
}
