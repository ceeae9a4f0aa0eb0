package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/adeilh/go-rakh-status/status"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Validator runs before route handlers; return an error to stop the pipeline.
type Validator func(Context) error

type Server struct {
	app      *App
	address  string
	srv      *http.Server
	shutdown time.Duration
	log      *zap.Logger
}

type RouteRegistrar func(*App)

type StartOption func(*Server)

func WithShutdownTimeout(d time.Duration) StartOption {
	return func(s *Server) {
		if d > 0 {
			s.shutdown = d
		}
	}
}

func NewServer(opts ...ServerOption) *Server {
	cfg := defaultServerOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	app := New()
	app.e.HTTPErrorHandler = defaultHTTPErrorHandler
	app.e.Server.ReadTimeout = cfg.ReadTimeout
	app.e.Server.WriteTimeout = cfg.WriteTimeout
	for _, mw := range cfg.Middlewares {
		app.Use(mw)
	}
	if cfg.Logger != nil {
		app.Use(RequestLoggerMiddleware(cfg.Logger))
	}
	if cfg.CORSOrigins != nil {
		app.Use(CORSMiddleware(cfg.CORSOrigins))
	}
	if len(cfg.Validators) > 0 {
		app.Use(validatorMiddleware(cfg.Validators...))
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		app:      app,
		address:  cfg.Address,
		shutdown: 5 * time.Second,
		log:      log,
	}
}

func (s *Server) RegisterRoutes(reg RouteRegistrar) {
	if reg != nil {
		reg(s.app)
	}
}

func (s *Server) Handler() http.Handler {
	return s.app.e
}

// Address returns the listen address the server was configured with.
func (s *Server) Address() string { return s.address }

// Start serves until ctx is cancelled, then shuts down gracefully and returns ctx.Err().
func (s *Server) Start(ctx context.Context, opts ...StartOption) error {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.srv = &http.Server{
		Addr:         s.address,
		Handler:      s.app.e,
		ReadTimeout:  s.app.e.Server.ReadTimeout,
		WriteTimeout: s.app.e.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("address", s.address))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("http server shutdown", zap.Error(err))
		}
		s.log.Info("http server stopped")
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// errorStatus maps a handler error onto the response code and message.
// Table lookup misses become 404 and unclassifiable codes become 422.
func errorStatus(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.Is(err, status.ErrNotFound):
		return StatusNotFound, err.Error()
	case errors.Is(err, status.ErrOutOfRange):
		return StatusUnprocessableEntity, err.Error()
	case errors.As(err, &he):
		return he.Code, fmt.Sprint(he.Message)
	}
	return StatusInternalError, http.StatusText(StatusInternalError)
}

func defaultHTTPErrorHandler(err error, c echo.Context) {
	code, msg := errorStatus(err)
	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]any{"error": msg})
}

func validatorMiddleware(v ...Validator) MiddlewareFunc {
	copied := append([]Validator(nil), v...)
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			for _, validator := range copied {
				if validator == nil {
					continue
				}
				if err := validator(c); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}
