// Package sources gathers destination facts from pluggable collaborators:
// the SerpAPI search engine, Wikipedia, and local travel notes. Each source
// returns short natural-language snippets about a subject; the knowledge
// builder decides what to do with them.
package sources

import "context"

// Source fetches text facts about a subject. Implementations may go to the
// network, read files, or serve a static dataset.
type Source interface {
	Name() string
	Fetch(ctx context.Context, subject string) ([]string, error)
}

// Outcome records what one source contributed to a knowledge-base build.
// A failed source and a source that legitimately found nothing both degrade
// the corpus the same way, but observability wants to tell them apart.
type Outcome struct {
	Source string   `json:"source"`
	Texts  []string `json:"-"`
	Count  int      `json:"facts"`
	Error  string   `json:"error,omitempty"`
}

// Failed reports whether the source errored.
func (o Outcome) Failed() bool { return o.Error != "" }

// FuncSource adapts a plain fetch function into a Source.
type FuncSource struct {
	name string
	fn   func(ctx context.Context, subject string) ([]string, error)
}

// NewFuncSource wraps fn as a named Source.
func NewFuncSource(name string, fn func(ctx context.Context, subject string) ([]string, error)) *FuncSource {
	return &FuncSource{name: name, fn: fn}
}

// Name returns the source name.
func (s *FuncSource) Name() string { return s.name }

// Fetch calls the wrapped function.
func (s *FuncSource) Fetch(ctx context.Context, subject string) ([]string, error) {
	return s.fn(ctx, subject)
}
