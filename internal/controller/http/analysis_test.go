package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/neo-insight/internal/domain/analysis/policy"
	"github.com/vadim/neo-insight/internal/domain/analysis/service"
	"github.com/vadim/neo-insight/internal/domain/report/render"
	"github.com/vadim/neo-insight/internal/extractor"
)

const profilePage = `<html><body>
<a href="/p/AAA/"><img alt="Beautiful sunset at the beach, travel vibes"></a>
<a href="/p/BBB/"><img alt="Homemade pizza recipe"></a>
<a href="/reel/CCC/"><img alt="Morning yoga flow"></a>
</body></html>`

func newAnalysisRouter(t *testing.T, maxDocumentSize int64) http.Handler {
	t.Helper()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New() error: %v", err)
	}
	p := policy.New(service.New(nil), extractor.New(), nil, renderer, 10)

	r := chi.NewRouter()
	NewAnalysisHandler(p, maxDocumentSize).RegisterRoutes(r)
	return r
}

func TestAnalyzeHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"valid", `{"posts":[{"id":"A","alt_text":"Amazing homemade pasta recipe"},{"id":"B","type":"reel","text_content":"yoga"}]}`, http.StatusOK},
		{"empty batch", `{"posts":[]}`, http.StatusOK},
		{"invalid json", `{"posts":`, http.StatusBadRequest},
		{"bad type", `{"posts":[{"id":"A","type":"story"}]}`, http.StatusBadRequest},
		{"save without persistence", `{"save":true,"posts":[{"id":"A"}]}`, http.StatusServiceUnavailable},
		{"too many posts", `{"posts":[` + strings.Repeat(`{"id":"x"},`, 10) + `{"id":"y"}]}`, http.StatusRequestEntityTooLarge},
	}

	router := newAnalysisRouter(t, 1<<20)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("Expected status %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAnalyzeHandlerResponse(t *testing.T) {
	router := newAnalysisRouter(t, 1<<20)

	body := `{"posts":[{"id":"A","alt_text":"Sunset beach travel"},{"id":"B","type":"reel","text_content":"yoga fitness"}]}`
	req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp struct {
		Result struct {
			TotalPosts int    `json:"total_posts"`
			PostCount  int    `json:"post_count"`
			ReelCount  int    `json:"reel_count"`
			Summary    string `json:"summary"`
		} `json:"result"`
		Posts []struct {
			ID    string `json:"id"`
			Type  string `json:"type"`
			Index int    `json:"index"`
		} `json:"posts"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.Result.TotalPosts != 2 || resp.Result.PostCount != 1 || resp.Result.ReelCount != 1 {
		t.Errorf("unexpected counts %+v", resp.Result)
	}
	if resp.Result.Summary == "" {
		t.Error("Expected a summary")
	}
	if len(resp.Posts) != 2 || resp.Posts[0].Type != "post" || resp.Posts[0].Index != 1 {
		t.Errorf("Expected normalized posts, got %+v", resp.Posts)
	}
}

func TestAnalyzeDocumentHandler(t *testing.T) {
	router := newAnalysisRouter(t, 1<<20)

	t.Run("raw body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/analyses/document", strings.NewReader(profilePage))
		req.Header.Set("Content-Type", "text/html")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), `"total_posts":3`) {
			t.Errorf("Expected 3 posts in %s", rec.Body.String())
		}
	})

	t.Run("multipart", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("document", "profile.html")
		if err != nil {
			t.Fatalf("CreateFormFile() error: %v", err)
		}
		fw.Write([]byte(profilePage))
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/analyses/document", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("multipart without document", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		mw.WriteField("title", "x")
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/analyses/document", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("no posts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/analyses/document", strings.NewReader("<html><body>empty</body></html>"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("bad save flag", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/analyses/document?save=maybe", strings.NewReader(profilePage))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

func TestAnalyzeDocumentTooLarge(t *testing.T) {
	router := newAnalysisRouter(t, 64)

	page := profilePage + strings.Repeat("<p>padding</p>", 100)
	req := httptest.NewRequest(http.MethodPost, "/analyses/document", strings.NewReader(page))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected status 413, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLatestAndExportHandlers(t *testing.T) {
	router := newAnalysisRouter(t, 1<<20)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analyses/latest", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 before any analysis, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/analyses/document", strings.NewReader(profilePage)))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analyses/latest", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "analyzed_at") {
		t.Errorf("Expected latest analysis, got %d: %s", rec.Code, rec.Body.String())
	}

	tests := []struct {
		query        string
		wantCode     int
		wantFilename string
	}{
		{"", http.StatusOK, "instagram_posts_summary.html"},
		{"?format=json", http.StatusOK, "instagram_posts_summary.json"},
		{"?format=txt", http.StatusOK, "instagram_posts_summary.txt"},
		{"?format=pdf", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analyses/latest/export"+tt.query, nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("Expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if tt.wantFilename == "" {
				return
			}
			if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, tt.wantFilename) {
				t.Errorf("Expected filename %s in %q", tt.wantFilename, cd)
			}
		})
	}
}
