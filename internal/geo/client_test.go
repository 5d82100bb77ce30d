package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1.2.3.4/json/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"city":"Chennai","region":"Tamil Nadu","country_name":"India"}`))
	}))
	defer srv.Close()

	got := NewClient(srv.URL).Lookup(context.Background(), "1.2.3.4")
	if got != "Chennai, Tamil Nadu, India" {
		t.Fatalf("got %q", got)
	}
}

func TestLookupPartialFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"city":"Singapore","country_name":"Singapore"}`))
	}))
	defer srv.Close()

	got := NewClient(srv.URL).Lookup(context.Background(), "5.6.7.8")
	if got != "Singapore, Singapore" {
		t.Fatalf("got %q", got)
	}
}

func TestLookupFailuresYieldUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if got := c.Lookup(context.Background(), "1.2.3.4"); got != UnknownLocation {
		t.Fatalf("rate-limited lookup: got %q", got)
	}
	if got := c.Lookup(context.Background(), ""); got != UnknownLocation {
		t.Fatalf("empty ip: got %q", got)
	}
	if got := NewClient("http://127.0.0.1:1").Lookup(context.Background(), "1.2.3.4"); got != UnknownLocation {
		t.Fatalf("unreachable host: got %q", got)
	}
}
