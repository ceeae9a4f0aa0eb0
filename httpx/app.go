package httpx

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Context represents the context of the current HTTP request.
type Context = echo.Context

// HandlerFunc defines a function to handle HTTP requests.
type HandlerFunc = echo.HandlerFunc

// MiddlewareFunc defines a function to process middleware.
type MiddlewareFunc = echo.MiddlewareFunc

// App is the main application instance for handling HTTP requests.
type App struct{ e *echo.Echo }

// New creates a new App instance.
func New() *App {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	return &App{e}
}

// Use attaches middleware to the App instance.
func (a *App) Use(mw ...MiddlewareFunc) { a.e.Use(mw...) }

// Group is shorthand for NewRouter(a, prefix, mw...).
func (a *App) Group(prefix string, mw ...MiddlewareFunc) *Router {
	return NewRouter(a, prefix, mw...)
}

// RecoverMiddleware returns a middleware that recovers from panics.
func RecoverMiddleware() MiddlewareFunc { return middleware.Recover() }

// CORSMiddleware allows cross-origin reads from origins, or from any origin
// when origins is empty. Only GET, HEAD and OPTIONS are advertised.
func CORSMiddleware(origins []string) MiddlewareFunc {
	cfg := middleware.DefaultCORSConfig
	cfg.AllowMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	cfg.ExposeHeaders = []string{"ETag"}
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
	}
	return middleware.CORSWithConfig(cfg)
}

// GET registers a GET route.
func (a *App) GET(path string, h HandlerFunc, mw ...MiddlewareFunc) {
	a.e.GET(path, h, mw...)
}

// HEAD registers a HEAD route.
func (a *App) HEAD(path string, h HandlerFunc, mw ...MiddlewareFunc) {
	a.e.HEAD(path, h, mw...)
}

// POST registers a POST route.
func (a *App) POST(path string, h HandlerFunc, mw ...MiddlewareFunc) {
	a.e.POST(path, h, mw...)
}

// HTTPError constructs an HTTP error for returning from handlers.
func HTTPError(code int, message any) error { return echo.NewHTTPError(code, message) }
