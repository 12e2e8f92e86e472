package knowledge

import (
	"context"
	"fmt"
)

// DefaultTopK is the number of facts a query returns when k is not given.
const DefaultTopK = 3

// Fact is one retrieved snippet with its squared Euclidean distance to the
// query embedding (smaller is more relevant).
type Fact struct {
	Text     string  `json:"text"`
	Distance float64 `json:"distance"`
}

// Query embeds text and returns up to k facts nearest to it, most relevant
// first. k <= 0 uses DefaultTopK. A nil or empty session returns no facts
// and no error: a subject nobody has built facts for is queryable, just
// empty. Embedding failures surface as *QueryEmbeddingError.
func (s *Session) Query(ctx context.Context, text string, k int) ([]Fact, error) {
	if k <= 0 {
		k = DefaultTopK
	}
	if s == nil || s.index == nil || s.index.Len() == 0 {
		return nil, nil
	}

	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, &QueryEmbeddingError{Query: text, Err: err}
	}
	matches, err := s.index.Search(ctx, vec, k)
	if err != nil {
		return nil, fmt.Errorf("search knowledge base: %w", err)
	}

	facts := make([]Fact, len(matches))
	for i, m := range matches {
		facts[i] = Fact{Text: s.corpus[m.Position], Distance: m.Distance}
	}
	return facts, nil
}
