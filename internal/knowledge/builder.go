package knowledge

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/embedding"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/sources"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/vector"
)

// Builder materializes knowledge bases from a fixed set of fact sources.
type Builder struct {
	embedder embedding.Embedder
	sources  []sources.Source
	logger   *zap.Logger
}

// NewBuilder creates a builder. Sources are consulted in the given order on
// every build.
func NewBuilder(embedder embedding.Embedder, srcs []sources.Source, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{embedder: embedder, sources: srcs, logger: logger}
}

// Build gathers facts about subject from every configured source and returns
// a queryable Session plus a per-source outcome report.
//
// A failing source contributes zero facts and never aborts the build; only a
// failure of the embedding step is fatal, because a half-indexed corpus would
// break the position invariant. An empty corpus is a valid build: the session
// is returned ready and queries against it come back empty.
func (b *Builder) Build(ctx context.Context, subject string) (*Session, []sources.Outcome, error) {
	outcomes := make([]sources.Outcome, 0, len(b.sources))
	var corpus []string
	for _, src := range b.sources {
		texts, err := src.Fetch(ctx, subject)
		if err != nil {
			b.logger.Warn("fact source failed",
				zap.String("source", src.Name()),
				zap.String("subject", subject),
				zap.Error(err))
			outcomes = append(outcomes, sources.Outcome{Source: src.Name(), Error: err.Error()})
			continue
		}
		kept := make([]string, 0, len(texts))
		for _, text := range texts {
			if strings.TrimSpace(text) != "" {
				kept = append(kept, text)
			}
		}
		corpus = append(corpus, kept...)
		outcomes = append(outcomes, sources.Outcome{Source: src.Name(), Texts: kept, Count: len(kept)})
	}

	index, err := vector.NewFlatIndex(b.embedder.Dimensions())
	if err != nil {
		return nil, outcomes, &BuildError{Subject: subject, Err: err}
	}
	session := &Session{
		id:       uuid.NewString(),
		subject:  subject,
		corpus:   corpus,
		index:    index,
		embedder: b.embedder,
	}
	if len(corpus) == 0 {
		b.logger.Info("knowledge base built empty",
			zap.String("subject", subject), zap.String("session", session.id))
		return session, outcomes, nil
	}

	// One batch call for the whole corpus keeps ordering trivial and the
	// embed latency bounded.
	vectors, err := b.embedder.EmbedBatch(ctx, corpus)
	if err != nil {
		return nil, outcomes, &BuildError{Subject: subject, Err: err}
	}
	if err := index.Insert(ctx, vectors); err != nil {
		return nil, outcomes, &BuildError{Subject: subject, Err: err}
	}

	b.logger.Info("knowledge base built",
		zap.String("subject", subject),
		zap.String("session", session.id),
		zap.Int("facts", len(corpus)))
	return session, outcomes, nil
}
