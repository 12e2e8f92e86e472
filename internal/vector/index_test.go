package vector

import (
	"context"
	"testing"
)

func TestFlatIndex_InsertSearch(t *testing.T) {
	ix, err := NewFlatIndex(3)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	vecs := [][]float32{
		{1, 0, 0},
		{0.9, 0.1, 0},
		{0, 1, 0},
	}
	if err := ix.Insert(ctx, vecs); err != nil {
		t.Fatal(err)
	}
	if ix.Len() != 3 {
		t.Fatalf("Len=%d", ix.Len())
	}

	matches, err := ix.Search(ctx, []float32{1, 0, 0}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Position != 0 {
		t.Errorf("nearest should be position 0, got %d", matches[0].Position)
	}
	if matches[0].Distance != 0 {
		t.Errorf("exact match should have distance 0, got %v", matches[0].Distance)
	}
	if matches[1].Position != 1 {
		t.Errorf("second nearest should be position 1, got %d", matches[1].Position)
	}
	if matches[0].Distance > matches[1].Distance {
		t.Error("matches not sorted by ascending distance")
	}
}

func TestFlatIndex_KBounding(t *testing.T) {
	ix, _ := NewFlatIndex(2)
	ctx := context.Background()
	_ = ix.Insert(ctx, [][]float32{{1, 0}, {0, 1}})

	matches, err := ix.Search(ctx, []float32{1, 0}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Errorf("k larger than index should return all %d vectors, got %d", ix.Len(), len(matches))
	}
}

func TestFlatIndex_EmptyAndZeroK(t *testing.T) {
	ix, _ := NewFlatIndex(2)
	ctx := context.Background()

	matches, err := ix.Search(ctx, []float32{1, 0}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("empty index should return no matches, got %d", len(matches))
	}

	_ = ix.Insert(ctx, [][]float32{{1, 0}})
	matches, err = ix.Search(ctx, []float32{1, 0}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("k=0 should return no matches, got %d", len(matches))
	}
}

func TestFlatIndex_TiesStableByPosition(t *testing.T) {
	ix, _ := NewFlatIndex(2)
	ctx := context.Background()
	// Both vectors are equidistant from the query.
	_ = ix.Insert(ctx, [][]float32{{0, 1}, {0, -1}, {1, 0}})

	matches, err := ix.Search(ctx, []float32{0, 0}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if matches[0].Position != 0 || matches[1].Position != 1 || matches[2].Position != 2 {
		t.Errorf("equal distances must keep insertion order, got %v", matches)
	}
}

func TestFlatIndex_DimensionMismatchInsertsNothing(t *testing.T) {
	ix, _ := NewFlatIndex(2)
	ctx := context.Background()
	err := ix.Insert(ctx, [][]float32{{1, 0}, {1, 0, 0}})
	if err == nil {
		t.Fatal("expected dimension mismatch error")
	}
	if ix.Len() != 0 {
		t.Errorf("failed insert must not store a partial batch, Len=%d", ix.Len())
	}
}

func TestFlatIndex_SearchDimensionMismatch(t *testing.T) {
	ix, _ := NewFlatIndex(2)
	if _, err := ix.Search(context.Background(), []float32{1, 0, 0}, 1); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestNewFlatIndex_InvalidDimensions(t *testing.T) {
	if _, err := NewFlatIndex(0); err == nil {
		t.Error("expected error for zero dimensions")
	}
}
