package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWikipediaSource_Overview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wiki/New_York" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`<html><body><div class="mw-parser-output">
			<p class="mw-empty-elt"></p>
			<p>   </p>
			<p>New York is a city in the United States.</p>
			<p>Second paragraph.</p>
		</div></body></html>`))
	}))
	defer srv.Close()

	src := NewWikipediaSource(srv.URL)
	facts, err := src.Fetch(context.Background(), "New York")
	if err != nil {
		t.Fatal(err)
	}
	if len(facts) != 1 {
		t.Fatalf("expected 1 fact, got %d", len(facts))
	}
	if facts[0] != "New York is a city in the United States." {
		t.Errorf("overview = %q", facts[0])
	}
}

func TestWikipediaSource_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src := NewWikipediaSource(srv.URL)
	if _, err := src.Fetch(context.Background(), "Nowhere"); err == nil {
		t.Fatal("expected error for missing article")
	}
}

func TestWikipediaSource_NoParagraph(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="mw-parser-output"></div></body></html>`))
	}))
	defer srv.Close()

	src := NewWikipediaSource(srv.URL)
	facts, err := src.Fetch(context.Background(), "Empty")
	if err != nil {
		t.Fatal(err)
	}
	if len(facts) != 0 {
		t.Errorf("expected no facts, got %v", facts)
	}
}
