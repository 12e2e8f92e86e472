package knowledge

import (
	"context"
	"errors"
	"testing"

	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/embedding"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/sources"
)

func staticSource(name string, texts ...string) sources.Source {
	return sources.NewFuncSource(name, func(context.Context, string) ([]string, error) {
		return texts, nil
	})
}

func failingSource(name string, err error) sources.Source {
	return sources.NewFuncSource(name, func(context.Context, string) ([]string, error) {
		return nil, err
	})
}

// failEmbedder always fails, standing in for an unreachable model.
type failEmbedder struct{ *embedding.MockEmbedder }

func (failEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, embedding.ErrModelUnavailable
}

func (failEmbedder) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return nil, embedding.ErrModelUnavailable
}

func TestBuilder_OrderPreservation(t *testing.T) {
	ctx := context.Background()
	corpus := []string{
		"The museum opens at 9am.",
		"Best pasta is at Trattoria Roma.",
		"The river walk is scenic at sunset.",
	}
	b := NewBuilder(embedding.NewMockEmbedder(384), []sources.Source{
		staticSource("attractions", corpus[0]),
		staticSource("dining", corpus[1], corpus[2]),
	}, nil)

	session, _, err := b.Build(ctx, "Rome")
	if err != nil {
		t.Fatal(err)
	}
	if session.Len() != len(corpus) {
		t.Fatalf("corpus size = %d, want %d", session.Len(), len(corpus))
	}
	// Querying with a corpus entry's exact text must return that entry
	// first at distance 0: position i in the index is fact i.
	for i, text := range corpus {
		facts, err := session.Query(ctx, text, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(facts) != 1 {
			t.Fatalf("entry %d: expected 1 fact, got %d", i, len(facts))
		}
		if facts[0].Text != text {
			t.Errorf("entry %d: got %q, want %q", i, facts[0].Text, text)
		}
		if facts[0].Distance != 0 {
			t.Errorf("entry %d: exact text should be at distance 0, got %v", i, facts[0].Distance)
		}
	}
}

func TestBuilder_EmptyCorpus(t *testing.T) {
	ctx := context.Background()
	b := NewBuilder(embedding.NewMockEmbedder(64), []sources.Source{
		staticSource("attractions"),
		staticSource("dining", "", "   "),
	}, nil)

	session, outcomes, err := b.Build(ctx, "Atlantis")
	if err != nil {
		t.Fatalf("empty corpus must not fail the build: %v", err)
	}
	if session.Len() != 0 {
		t.Errorf("expected empty corpus, got %d facts", session.Len())
	}
	if len(outcomes) != 2 {
		t.Errorf("expected 2 outcomes, got %d", len(outcomes))
	}
	for _, k := range []int{1, 3, 100} {
		facts, err := session.Query(ctx, "anything at all", k)
		if err != nil {
			t.Fatal(err)
		}
		if len(facts) != 0 {
			t.Errorf("k=%d: expected no facts from empty session, got %d", k, len(facts))
		}
	}
}

func TestBuilder_SourceFailureIsolated(t *testing.T) {
	ctx := context.Background()
	b := NewBuilder(embedding.NewMockEmbedder(64), []sources.Source{
		failingSource("attractions", errors.New("search API quota exceeded")),
		staticSource("dining", "Trattoria Roma serves the best carbonara."),
	}, nil)

	session, outcomes, err := b.Build(ctx, "Rome")
	if err != nil {
		t.Fatalf("one failing source must not fail the build: %v", err)
	}
	if session.Len() != 1 {
		t.Fatalf("expected 1 fact from the surviving source, got %d", session.Len())
	}
	if !outcomes[0].Failed() {
		t.Error("expected first outcome to record the failure")
	}
	if outcomes[1].Failed() || outcomes[1].Count != 1 {
		t.Errorf("second outcome = %+v", outcomes[1])
	}
}

func TestBuilder_EmbedFailureIsBuildError(t *testing.T) {
	b := NewBuilder(failEmbedder{embedding.NewMockEmbedder(64)}, []sources.Source{
		staticSource("dining", "some fact"),
	}, nil)

	session, _, err := b.Build(context.Background(), "Rome")
	if session != nil {
		t.Error("failed build must not return a session")
	}
	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("expected *BuildError, got %T: %v", err, err)
	}
	if !errors.Is(err, embedding.ErrModelUnavailable) {
		t.Error("BuildError should wrap the embedding failure")
	}
	if buildErr.Subject != "Rome" {
		t.Errorf("subject = %q", buildErr.Subject)
	}
}

func TestBuilder_Determinism(t *testing.T) {
	ctx := context.Background()
	newBuilder := func() *Builder {
		return NewBuilder(embedding.NewMockEmbedder(384), []sources.Source{
			staticSource("attractions", "The museum opens at 9am.", "The castle tour lasts two hours."),
			staticSource("dining", "Best pasta is at Trattoria Roma."),
		}, nil)
	}

	s1, _, err := newBuilder().Build(ctx, "Rome")
	if err != nil {
		t.Fatal(err)
	}
	s2, _, err := newBuilder().Build(ctx, "Rome")
	if err != nil {
		t.Fatal(err)
	}

	for _, query := range []string{"museum hours", "pasta", "castle"} {
		f1, err := s1.Query(ctx, query, 3)
		if err != nil {
			t.Fatal(err)
		}
		f2, err := s2.Query(ctx, query, 3)
		if err != nil {
			t.Fatal(err)
		}
		if len(f1) != len(f2) {
			t.Fatalf("query %q: result counts differ: %d vs %d", query, len(f1), len(f2))
		}
		for i := range f1 {
			if f1[i].Text != f2[i].Text || f1[i].Distance != f2[i].Distance {
				t.Errorf("query %q: result %d differs: %+v vs %+v", query, i, f1[i], f2[i])
			}
		}
	}
}

func TestBuilder_ReplacementNotAccumulation(t *testing.T) {
	ctx := context.Background()
	emb := embedding.NewMockEmbedder(384)

	bA := NewBuilder(emb, []sources.Source{
		staticSource("attractions", "The Eiffel Tower sparkles at night."),
	}, nil)
	sessionA, _, err := bA.Build(ctx, "Paris")
	if err != nil {
		t.Fatal(err)
	}

	bB := NewBuilder(emb, []sources.Source{
		staticSource("attractions", "The Colosseum predates the Eiffel Tower by centuries."),
	}, nil)
	sessionB, _, err := bB.Build(ctx, "Rome")
	if err != nil {
		t.Fatal(err)
	}
	_ = sessionA

	facts, err := sessionB.Query(ctx, "Eiffel Tower", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(facts) != 1 {
		t.Fatalf("expected only Rome's single fact, got %d", len(facts))
	}
	if facts[0].Text != "The Colosseum predates the Eiffel Tower by centuries." {
		t.Errorf("session B must only contain facts sourced for B, got %q", facts[0].Text)
	}
}
