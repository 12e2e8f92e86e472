// Package knowledge builds and queries per-destination knowledge bases: an
// ordered corpus of text facts paired with a vector index over their
// embeddings, kept in lockstep so index position i always resolves to fact i.
package knowledge

import (
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/embedding"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/vector"
)

// Session is the knowledge base for one subject. It is immutable once
// returned by Builder.Build, so concurrent queries need no locking.
// Rebuilding produces a new Session; holders swap the whole value rather
// than mutating the old one.
type Session struct {
	id       string
	subject  string
	corpus   []string
	index    *vector.FlatIndex
	embedder embedding.Embedder
}

// ID returns the unique build ID of this session.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Subject returns the destination this session was built for.
func (s *Session) Subject() string {
	if s == nil {
		return ""
	}
	return s.subject
}

// Len returns the number of facts in the knowledge base.
func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	return len(s.corpus)
}

// Facts returns a copy of the corpus in insertion order.
func (s *Session) Facts() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.corpus))
	copy(out, s.corpus)
	return out
}
