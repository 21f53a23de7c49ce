package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vadim/neo-insight/internal/config"
)

func testConfig(t *testing.T, driver string) config.Config {
	t.Helper()
	return config.Config{
		Server:    config.Server{Host: "127.0.0.1", Port: "0"},
		Instagram: config.Instagram{BaseURL: "https://www.instagram.com"},
		Database: config.Database{
			Driver:     driver,
			SQLitePath: filepath.Join(t.TempDir(), "reports.db"),
		},
		Scheduler: config.Scheduler{Enabled: true, Schedule: "@daily", ReportTTL: 24 * time.Hour},
		Report:    config.Report{MaxDocumentSize: 1 << 20, MaxPosts: 100},
		Log:       config.Log{Level: "error", Format: "json"},
	}
}

func TestNewAppRoutes(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		wantSave int
	}{
		{"sqlite", config.DriverSQLite, http.StatusCreated},
		{"no database", config.DriverNone, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.driver)
			if tt.driver == config.DriverNone {
				cfg.Scheduler.Enabled = false
			}

			a, err := NewApp(context.Background(), cfg)
			if err != nil {
				t.Fatalf("NewApp() error: %v", err)
			}
			defer a.closeInfrastructure()

			checks := []struct {
				method string
				path   string
				body   string
				want   int
			}{
				{http.MethodGet, "/healthz", "", http.StatusOK},
				{http.MethodGet, "/readyz", "", http.StatusOK},
				{http.MethodGet, "/docs", "", http.StatusOK},
				{http.MethodGet, "/docs/openapi.json", "", http.StatusOK},
				{http.MethodPost, "/api/v1/analyses", `{"save":true,"posts":[{"id":"A","alt_text":"Travel to the beach"}]}`, tt.wantSave},
			}
			for _, c := range checks {
				rec := httptest.NewRecorder()
				a.Handler().ServeHTTP(rec, httptest.NewRequest(c.method, c.path, strings.NewReader(c.body)))
				if rec.Code != c.want {
					t.Errorf("%s %s: expected %d, got %d: %s", c.method, c.path, c.want, rec.Code, rec.Body.String())
				}
			}

			if (a.scheduler != nil) != (tt.driver == config.DriverSQLite) {
				t.Errorf("unexpected scheduler presence for %s", tt.driver)
			}
		})
	}
}

func TestOpenAPISpecEmbedded(t *testing.T) {
	if !strings.HasPrefix(string(OpenAPISpec), "openapi: 3.0.3") {
		t.Error("Expected embedded OpenAPI spec")
	}
}
