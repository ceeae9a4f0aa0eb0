package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
)

// TestServer runs a Server's handler on a loopback listener for tests.
type TestServer struct{ *httptest.Server }

// NewTestServer starts serving handler; callers must Close it.
func NewTestServer(handler http.Handler) *TestServer {
	return &TestServer{httptest.NewServer(handler)}
}

// BaseURL is the scheme and host clients should target.
func (ts *TestServer) BaseURL() string {
	if ts == nil || ts.Server == nil {
		return ""
	}
	return ts.URL
}

// Path joins p onto BaseURL with exactly one slash between them.
func (ts *TestServer) Path(p string) string {
	return strings.TrimRight(ts.BaseURL(), "/") + "/" + strings.TrimLeft(p, "/")
}
