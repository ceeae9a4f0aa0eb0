package httpx

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// readMethods are the verbs a read-only resource answers.
var readMethods = []string{http.MethodGet, http.MethodHead}

// Router mounts read-only handlers under a shared prefix and middleware
// stack. The zero value ignores every registration.
type Router struct {
	g *echo.Group
}

// NewRouter creates a router under prefix with optional middleware.
func NewRouter(a *App, prefix string, mw ...MiddlewareFunc) *Router {
	if a == nil || a.e == nil {
		return &Router{}
	}
	return &Router{g: a.e.Group(prefix, mw...)}
}

func (r *Router) GET(path string, h HandlerFunc, mw ...MiddlewareFunc) *Router {
	return r.match([]string{http.MethodGet}, path, h, mw)
}

// Resource registers h for GET and HEAD. The handler writes its full
// response either way; net/http discards the body on HEAD.
func (r *Router) Resource(path string, h HandlerFunc, mw ...MiddlewareFunc) *Router {
	return r.match(readMethods, path, h, mw)
}

func (r *Router) match(methods []string, path string, h HandlerFunc, mw []MiddlewareFunc) *Router {
	if r.g == nil || h == nil || path == "" {
		return r
	}
	r.g.Match(methods, path, h, mw...)
	return r
}
