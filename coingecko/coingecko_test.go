package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSpot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/simple/price" {
			t.Errorf("path = %q, want /simple/price", r.URL.Path)
		}
		if got := r.URL.Query().Get("ids"); got != "bitcoin" {
			t.Errorf("ids = %q, want bitcoin", got)
		}
		if got := r.URL.Query().Get("vs_currencies"); got != "jpy" {
			t.Errorf("vs_currencies = %q, want lowercase jpy", got)
		}
		w.Write([]byte(`{"bitcoin":{"jpy":9876543.21}}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	got, err := c.Spot(context.Background(), "bitcoin", "JPY")
	if err != nil {
		t.Fatal(err)
	}
	if got != 9876543.21 {
		t.Errorf("Spot() = %v, want 9876543.21", got)
	}
}

func TestSpotUnknownCoin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	if _, err := c.Spot(context.Background(), "nonsense", "JPY"); err == nil {
		t.Error("expected an error when the coin is absent from the response")
	}
}
