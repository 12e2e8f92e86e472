//go:build !cgo
// +build !cgo

package embedding

import (
	"context"
	"fmt"
)

// ONNXEmbedder stub when built without CGO (see onnx.go for the real one).
// It satisfies Embedder so call sites compile, but every operation fails
// with ErrModelUnavailable.
type ONNXEmbedder struct{}

// NewONNXEmbedder fails when built without CGO: ONNX Runtime needs cgo.
func NewONNXEmbedder(_ string, _, _, _ int) (*ONNXEmbedder, error) {
	return nil, fmt.Errorf("%w: built without CGO; rebuild with CGO_ENABLED=1 and onnxruntime installed", ErrModelUnavailable)
}

// Embed always fails in non-CGO builds.
func (e *ONNXEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return nil, ErrModelUnavailable
}

// EmbedBatch always fails in non-CGO builds.
func (e *ONNXEmbedder) EmbedBatch(_ context.Context, _ []string) ([][]float32, error) {
	return nil, ErrModelUnavailable
}

// Dimensions returns 0 in non-CGO builds.
func (e *ONNXEmbedder) Dimensions() int { return 0 }

// Close is a no-op in non-CGO builds.
func (e *ONNXEmbedder) Close() error { return nil }
