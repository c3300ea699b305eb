package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDAssignsWhenMissing(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if seen == "" {
		t.Fatal("expected a request id in context")
	}

	if rr.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected response header to echo the id, got %q", rr.Header().Get(RequestIDHeader))
	}
}

func TestRequestIDKeepsExisting(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if seen != "client-supplied" {
		t.Fatalf("expected client id to be preserved, got %q", seen)
	}
}
