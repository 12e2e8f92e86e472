package knowledge

import "fmt"

// BuildError reports that the indexing step of a knowledge-base build failed
// after facts were gathered. The caller's previously published Session, if
// any, is untouched: builds replace the session all-or-nothing.
type BuildError struct {
	Subject string
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build knowledge base for %q: %v", e.Subject, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// QueryEmbeddingError reports that the query text could not be embedded.
// The session's index is unaffected; there is no lexical fallback.
type QueryEmbeddingError struct {
	Query string
	Err   error
}

func (e *QueryEmbeddingError) Error() string {
	return fmt.Sprintf("embed query %q: %v", e.Query, e.Err)
}

func (e *QueryEmbeddingError) Unwrap() error { return e.Err }
