// Package embedding maps text to fixed-length dense vectors.
package embedding

import (
	"context"
	"errors"
)

// ErrModelUnavailable is returned when the embedding backend cannot be
// reached or fails to run. The package never retries internally; callers
// decide the fallback.
var ErrModelUnavailable = errors.New("embedding model unavailable")

// Embedder produces vector embeddings for text. Implementations must be
// deterministic for a fixed model: identical text yields the same vector
// across calls within a process.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	Close() error
}
