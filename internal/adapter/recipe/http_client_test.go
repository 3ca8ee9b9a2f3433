package recipe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLookup_QueriesRecipeAPI(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("i")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"FakeAPI","href":"example.org","results":[{"name":"Omelette du Fromage"}]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second)

	result, err := client.Lookup(context.Background(), "eggs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api" {
		t.Errorf("got path %q, want %q", gotPath, "/api")
	}
	if gotQuery != "eggs" {
		t.Errorf("got query %q, want %q", gotQuery, "eggs")
	}
	if result.Title != "FakeAPI" || result.Href != "example.org" {
		t.Errorf("unexpected result: %+v", result)
	}
	if string(result.Results) != `[{"name":"Omelette du Fromage"}]` {
		t.Errorf("results not kept verbatim: %s", result.Results)
	}
}

func TestLookup_EscapesItemName(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("i")
		w.Write([]byte(`{"title":"t","href":"h","results":[]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second)

	if _, err := client.Lookup(context.Background(), "apple pie"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "apple pie" {
		t.Errorf("got query %q, want %q", gotQuery, "apple pie")
	}
}

func TestLookup_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second)

	if _, err := client.Lookup(context.Background(), "eggs"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestLookup_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second)

	if _, err := client.Lookup(context.Background(), "eggs"); err == nil {
		t.Error("expected error for malformed body")
	}
}

func TestLookup_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewHTTPClient(server.URL, time.Second)

	if _, err := client.Lookup(context.Background(), "eggs"); err == nil {
		t.Error("expected error for unreachable server")
	}
}
