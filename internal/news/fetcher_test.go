package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
)

const sampleResponse = `{
  "code": 200,
  "msg": "success",
  "result": {
    "newslist": [
      {"id": "1", "ctime": "2024-06-01 08:00", "title": "First headline", "description": "desc one", "source": "wire", "url": "http://example.com/a"},
      {"id": "2", "ctime": "2024-06-01 09:00", "title": "Second headline", "description": "desc two", "source": "wire", "url": "http://example.com/b"}
    ]
  }
}`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tx/generalnews" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("unexpected key: %s", r.URL.Query().Get("key"))
		}
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	f := New(config.NewsConfig{
		APIKey:         "test-key",
		BaseURL:        srv.URL,
		TimeoutSeconds: 5,
	}, logger.New("error"))

	items, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Title != "First headline" {
		t.Errorf("title = %q, want %q", items[0].Title, "First headline")
	}
	if items[1].Description != "desc two" {
		t.Errorf("description = %q, want %q", items[1].Description, "desc two")
	}
}

func TestFetchWithContent(t *testing.T) {
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/api/tx/generalnews", func(w http.ResponseWriter, r *http.Request) {
		resp := strings.ReplaceAll(sampleResponse, "http://example.com/a", srv.URL+"/article")
		resp = strings.ReplaceAll(resp, "http://example.com/b", srv.URL+"/missing")
		w.Write([]byte(resp))
	})
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>article body text</p></body></html>"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	f := New(config.NewsConfig{
		APIKey:         "test-key",
		BaseURL:        srv.URL,
		FetchContent:   true,
		TimeoutSeconds: 5,
	}, logger.New("error"))

	items, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.Contains(items[0].RawContent, "article body text") {
		t.Errorf("raw content = %q, want article text", items[0].RawContent)
	}
	// A failed article download must not fail the fetch
	if items[1].RawContent != "" {
		t.Errorf("raw content for failed article = %q, want empty", items[1].RawContent)
	}
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	f := New(config.NewsConfig{APIKey: "k", BaseURL: srv.URL, TimeoutSeconds: 5}, logger.New("error"))
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Error("Fetch() should fail on non-200 status")
	}
}
