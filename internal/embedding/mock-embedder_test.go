package embedding

import (
	"context"
	"math"
	"testing"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	e := NewMockEmbedder(64)
	defer e.Close()
	ctx := context.Background()

	a, err := e.Embed(ctx, "best pasta in town")
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Embed(ctx, "best pasta in town")
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("embedding not deterministic at %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestMockEmbedder_UnitNorm(t *testing.T) {
	e := NewMockEmbedder(32)
	vec, err := e.Embed(context.Background(), "the museum opens at 9am")
	if err != nil {
		t.Fatal(err)
	}
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if math.Abs(sum-1.0) > 1e-5 {
		t.Errorf("expected unit norm, got squared norm %v", sum)
	}
}

func TestMockEmbedder_SharedWordsAreCloser(t *testing.T) {
	e := NewMockEmbedder(384)
	ctx := context.Background()
	query, _ := e.Embed(ctx, "where to eat pasta")
	pasta, _ := e.Embed(ctx, "Best pasta is at Trattoria Roma.")
	river, _ := e.Embed(ctx, "The river walk is scenic at sunset.")

	if dist(query, pasta) >= dist(query, river) {
		t.Errorf("expected pasta snippet closer to pasta query: %v vs %v",
			dist(query, pasta), dist(query, river))
	}
}

func TestMockEmbedder_EmbedBatchEmpty(t *testing.T) {
	e := NewMockEmbedder(8)
	vecs, err := e.EmbedBatch(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(vecs) != 0 {
		t.Errorf("expected empty batch, got %d vectors", len(vecs))
	}
}

func dist(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i] - b[i])
		sum += d * d
	}
	return sum
}
