package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != userAgent {
			t.Errorf("expected user agent %q, got %q", userAgent, ua)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLatest(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		current string
		want    string
		wantErr bool
	}{
		{name: "newer release", status: 200, body: `{"tag_name":"v0.7.0"}`, current: "0.6.7", want: "0.7.0"},
		{name: "tag without prefix", status: 200, body: `{"tag_name":"1.0.0"}`, current: "0.6.7", want: "1.0.0"},
		{name: "same version", status: 200, body: `{"tag_name":"v0.6.7"}`, current: "0.6.7", want: ""},
		{name: "older release", status: 200, body: `{"tag_name":"v0.5.0"}`, current: "0.6.7", want: ""},
		{name: "server error", status: 500, body: `oops`, current: "0.6.7", wantErr: true},
		{name: "malformed payload", status: 200, body: `{"tag_name":`, current: "0.6.7", wantErr: true},
		{name: "unparsable tag", status: 200, body: `{"tag_name":"nightly"}`, current: "0.6.7", wantErr: true},
		{name: "unparsable current", status: 200, body: `{"tag_name":"v1.0.0"}`, current: "dev", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body)
			checker := NewCheckerWithClient(srv.URL, tt.current, srv.Client())
			got, err := checker.Latest(context.Background())
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLatestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	checker := NewCheckerWithClient(url, "0.6.7", http.DefaultClient)
	got, err := checker.Latest(context.Background())
	if err == nil || got != "" {
		t.Fatalf("expected silent degrade with error, got %q, %v", got, err)
	}
}

func TestNewCheckerDefaultsURL(t *testing.T) {
	c := NewChecker("", "0.6.7")
	if c.URL != DefaultURL {
		t.Fatalf("expected default URL, got %q", c.URL)
	}
	if c.Client == nil || c.Client.Timeout != DefaultTimeout {
		t.Fatalf("expected bounded client")
	}
}
