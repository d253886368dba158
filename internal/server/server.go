package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/numiflow/website/internal/config"
	"github.com/numiflow/website/internal/tracing"
	"github.com/numiflow/website/pkg/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Log        *slog.Logger
	HTTPLogger *logger.HTTPLogger
}

// NewRouter creates the chi router with the middleware stack every route shares
func NewRouter(p RouterParams) *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		RequestLogger(p.Log, p.HTTPLogger),
		Recoverer(p.Log),
		tracing.Middleware,
	)

	return r
}

// RequestLogger logs one line per request to slog and one to the access log.
// Health checks are skipped.
func RequestLogger(log *slog.Logger, httpLogger *logger.HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			latency := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			requestID := middleware.GetReqID(r.Context())

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.Int("status", status),
				slog.Duration("latency", latency),
				slog.String("request_id", requestID),
			}
			if status >= http.StatusInternalServerError {
				log.Error("request failed", attrs...)
			} else {
				log.Info("request", attrs...)
			}

			httpLogger.LogRequest(ClientIP(r), r.Method, r.RequestURI, status, latency, r.UserAgent(), requestID)
		})
	}
}

// Recoverer turns a handler panic into a 500 and logs it with the stack.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered",
					slog.Any("panic", rec),
					slog.String("path", r.URL.Path),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)
				w.WriteHeader(http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP is the host part of RemoteAddr, which RealIP has already rewritten.
// The rate limiter and lead metadata key on it.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, router *chi.Mux, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
