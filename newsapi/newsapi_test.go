package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const body = `{
	"status": "ok",
	"articles": [
		{"title": "Apple ships", "url": "https://example.com/a", "source": {"name": "Example"}, "publishedAt": "2026-03-02T09:00:00Z"},
		{"title": "Bitcoin dips", "url": "https://example.com/b", "source": {"name": "Wire"}, "publishedAt": "2026-03-01T18:30:00Z"}
	]
}`

func TestArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/everything" {
			t.Errorf("path = %q, want /everything", r.URL.Path)
		}
		if got := r.Header.Get("X-Api-Key"); got != "secret" {
			t.Errorf("X-Api-Key = %q, want secret", got)
		}
		if got := r.URL.Query().Get("q"); got != "AAPL OR BTC" {
			t.Errorf("q = %q, want keywords joined with OR", got)
		}
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := New("secret", WithBaseURL(srv.URL))
	articles, err := c.Articles(context.Background(), []string{"AAPL", "BTC"})
	if err != nil {
		t.Fatal(err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	if articles[0].Title != "Apple ships" || articles[0].Source != "Example" {
		t.Errorf("first article = %+v", articles[0])
	}
}

func TestArticlesRequiresKey(t *testing.T) {
	c := New("")
	if _, err := c.Articles(context.Background(), []string{"AAPL"}); err == nil {
		t.Error("expected an error without an api key")
	}
}

func TestArticlesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","code":"apiKeyInvalid"}`))
	}))
	defer srv.Close()

	c := New("bad", WithBaseURL(srv.URL))
	if _, err := c.Articles(context.Background(), []string{"AAPL"}); err == nil {
		t.Error("expected an error on a non-ok status")
	}
}
