package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/redirect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	sitemap []byte
	err     error
}

func (s staticSource) Sitemap() ([]byte, error) { return s.sitemap, s.err }
func (s staticSource) Robots() []byte           { return []byte("User-agent: *\nAllow: /\n") }

func newTestServer(t *testing.T, upstream string, source staticSource) *Server {
	t.Helper()
	table, err := redirect.NewTable(redirect.DefaultRules())
	require.NoError(t, err)

	cfg := config.NewDefaultServerConfig()
	cfg.UpstreamURL = upstream
	srv, err := New(cfg, table, source, zerolog.Nop())
	require.NoError(t, err)
	return srv
}

func serve(srv *Server, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t, "", staticSource{sitemap: []byte("<urlset/>")})

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{name: "root redirect", path: "/", wantStatus: http.StatusFound, wantLocation: "/tr"},
		{name: "legacy redirect", path: "/insan_kaynaklari_politikamiz", wantStatus: http.StatusMovedPermanently, wantLocation: "/tr/kariyer/insan-kaynaklari-politikamiz"},
		{name: "sitemap", path: "/sitemap.xml", wantStatus: http.StatusOK, wantBody: "<urlset/>"},
		{name: "robots", path: "/robots.txt", wantStatus: http.StatusOK, wantBody: "User-agent: *\nAllow: /\n"},
		{name: "unknown path without upstream", path: "/tr/kariyer", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(srv, http.MethodGet, tt.path)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestServer_Healthz(t *testing.T) {
	srv := newTestServer(t, "", staticSource{})

	rec := serve(srv, http.MethodGet, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(len(redirect.DefaultRules())), body["redirect_rules"])
}

func TestServer_SitemapError(t *testing.T) {
	srv := newTestServer(t, "", staticSource{err: errors.New("content root missing")})

	rec := serve(srv, http.MethodGet, "/sitemap.xml")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_ProxiesToUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "upstream:"+r.URL.Path)
	}))
	defer upstream.Close()

	srv := newTestServer(t, upstream.URL, staticSource{})

	rec := serve(srv, http.MethodGet, "/tr/kariyer")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "upstream:/tr/kariyer", rec.Body.String())

	// redirects are answered before the proxy
	rec = serve(srv, http.MethodGet, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestNew_InvalidUpstream(t *testing.T) {
	table, err := redirect.NewTable(nil)
	require.NoError(t, err)
	cfg := config.NewDefaultServerConfig()
	cfg.UpstreamURL = "not a url"

	_, err = New(cfg, table, staticSource{}, zerolog.Nop())

	assert.Error(t, err)
}

func TestServer_ServeShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, "", staticSource{})
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
