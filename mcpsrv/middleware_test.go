package mcpsrv

import (
	"net/http"
	"testing"
	"time"
)

func TestWrapMCPHandler(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		headers map[string]string
		want    int
	}{
		{"no key configured", Config{}, nil, http.StatusOK},
		{"missing key", Config{APIKey: "secret"}, nil, http.StatusUnauthorized},
		{"bearer token", Config{APIKey: "secret"}, map[string]string{"Authorization": "Bearer secret"}, http.StatusOK},
		{"lowercase bearer", Config{APIKey: "secret"}, map[string]string{"Authorization": "bearer secret"}, http.StatusOK},
		{"x-api-key", Config{APIKey: "secret"}, map[string]string{"X-API-Key": "secret"}, http.StatusOK},
		{"wrong key", Config{APIKey: "secret"}, map[string]string{"X-API-Key": "nope"}, http.StatusUnauthorized},
		{"malformed bearer", Config{APIKey: "secret"}, map[string]string{"Authorization": "Bearer"}, http.StatusUnauthorized},
		{"origin without allowlist", Config{}, map[string]string{"Origin": "https://evil.example"}, http.StatusForbidden},
		{"origin not listed", Config{AllowedOrigins: []string{"https://app.example"}}, map[string]string{"Origin": "https://evil.example"}, http.StatusForbidden},
		{"origin listed", Config{AllowedOrigins: []string{"https://app.example"}}, map[string]string{"Origin": "https://app.example"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := startTestServer(newFakeSource(), tt.cfg, &ServerOptions{})
			defer srv.Close()

			resp, err := postInitialize(srv.URL+"/mcp", tt.headers)
			if err != nil {
				t.Fatalf("initialize request failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}
}

func TestOriginAllowlistPreflight(t *testing.T) {
	srv := startTestServer(newFakeSource(), Config{AllowedOrigins: []string{"https://app.example"}}, &ServerOptions{})
	defer srv.Close()

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/mcp", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("unexpected allow-origin header %q", got)
	}
}

func TestRateLimit(t *testing.T) {
	srv := startTestServer(newFakeSource(), Config{RPS: 20, Burst: 1}, &ServerOptions{})
	defer srv.Close()

	statuses := make([]int, 0, 3)
	for i := range 3 {
		if i == 2 {
			time.Sleep(60 * time.Millisecond)
		}
		resp, err := postInitialize(srv.URL+"/mcp", nil)
		if err != nil {
			t.Fatalf("request %d failed: %v", i+1, err)
		}
		resp.Body.Close()
		statuses = append(statuses, resp.StatusCode)
	}

	want := []int{http.StatusOK, http.StatusTooManyRequests, http.StatusOK}
	for i := range want {
		if statuses[i] != want[i] {
			t.Fatalf("request %d: expected %d, got %d", i+1, want[i], statuses[i])
		}
	}
}

func TestTokenBucket(t *testing.T) {
	b := newTokenBucket(1, 2)
	if !b.Allow() || !b.Allow() {
		t.Fatal("burst of 2 should allow two requests")
	}
	if b.Allow() {
		t.Fatal("third request should be limited")
	}
}

func TestSecureEqual(t *testing.T) {
	if !secureEqual("abc", "abc") {
		t.Fatal("equal strings should match")
	}
	if secureEqual("abc", "abd") || secureEqual("abc", "abcd") {
		t.Fatal("different strings should not match")
	}
}
