package main

import (
	"context"
	"testing"

	"github.com/adeilh/go-rakh-status/httpx"
	"github.com/adeilh/go-rakh-status/internal/config"
	"github.com/adeilh/go-rakh-status/status"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{Server: config.ServerConfig{Address: "127.0.0.1:0", Prefix: "/v1", CORSOrigins: []string{"https://docs.example.com"}}}
}

func TestServerServesCatalogAndHealth(t *testing.T) {
	server := newServer(testConfig(), zap.NewNop())
	ts := httpx.NewTestServer(server.Handler())
	defer ts.Close()

	client := httpx.NewClient(httpx.WithBaseURL(ts.BaseURL()))
	var health map[string]any
	if _, err := client.Get(context.Background(), "/healthz", &health); err != nil {
		t.Fatalf("healthz error: %v", err)
	}
	if health["status"] != "ok" || int(health["entries"].(float64)) != status.Len() {
		t.Fatalf("unexpected health body: %v", health)
	}

	cc := httpx.NewCatalogClient(client, httpx.WithCatalogPrefix("/v1"))
	code, err := cc.CodeFor(context.Background(), "NO_CONTENT")
	if err != nil || code != status.NoContent {
		t.Fatalf("CodeFor(NO_CONTENT) = %d, %v", code, err)
	}
}

func TestServerAppliesCORS(t *testing.T) {
	server := newServer(testConfig(), zap.NewNop())
	ts := httpx.NewTestServer(server.Handler())
	defer ts.Close()

	client := httpx.NewClient(httpx.WithBaseURL(ts.BaseURL()))
	resp, err := client.Get(context.Background(), "/v1/codes/200", nil,
		httpx.WithRequestHeaders(map[string]string{"Origin": "https://docs.example.com"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "https://docs.example.com" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

func TestPrepareNoopWhenDisabled(t *testing.T) {
	if err := prepare(context.Background(), testConfig(), zap.NewNop()); err != nil {
		t.Fatalf("prepare with nothing enabled: %v", err)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	if err := run(context.Background(), []string{"--no-such-flag"}); err == nil {
		t.Fatalf("expected flag parse error")
	}
}
