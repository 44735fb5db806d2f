package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestDecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": "hello"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)

	var response struct {
		Message string `json:"message"`
	}
	if err := client.Request("GET", "/test", nil, nil, &response); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if response.Message != "hello" {
		t.Errorf("got %q, want %q", response.Message, "hello")
	}
}

func TestRequestRawReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>page</body></html>"))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)

	body, err := client.RequestRaw("GET", "/page", nil)
	if err != nil {
		t.Fatalf("RequestRaw failed: %v", err)
	}
	if body != "<html><body>page</body></html>" {
		t.Errorf("got %q", body)
	}
}

func TestRequestErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)

	if err := client.Request("GET", "/missing", nil, nil, nil); err == nil {
		t.Error("expected an error for a 404 response")
	}
}

func TestRequestSendsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Test") != "value" {
			t.Errorf("missing header, got %q", r.Header.Get("X-Test"))
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	if err := client.Request("GET", "/", map[string]string{"X-Test": "value"}, nil, nil); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
}
