// Package planner orchestrates knowledge building, fact retrieval, and
// LLM-backed itinerary and answer generation.
package planner

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/knowledge"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/models"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/sources"
)

// ChatClient generates a completion from a system and user prompt.
type ChatClient interface {
	Chat(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// MediaSearcher finds destination images and hotel listings. Implemented by
// sources.SerpAPIClient.
type MediaSearcher interface {
	Images(ctx context.Context, query string, limit int) ([]string, error)
	Hotels(ctx context.Context, query string, limit int) ([]models.Hotel, error)
}

// OverviewFetcher returns an encyclopedic overview of a destination.
// Implemented by sources.WikipediaSource.
type OverviewFetcher interface {
	Overview(ctx context.Context, subject string) (string, error)
}

// Config tunes the assistant.
type Config struct {
	TopK               int
	ItineraryMaxTokens int
	AnswerMaxTokens    int
	ImageLimit         int
	HotelLimit         int
}

func (c *Config) applyDefaults() {
	if c.TopK <= 0 {
		c.TopK = knowledge.DefaultTopK
	}
	if c.ItineraryMaxTokens <= 0 {
		c.ItineraryMaxTokens = 4000
	}
	if c.AnswerMaxTokens <= 0 {
		c.AnswerMaxTokens = 2000
	}
	if c.ImageLimit <= 0 {
		c.ImageLimit = 6
	}
	if c.HotelLimit <= 0 {
		c.HotelLimit = 5
	}
}

// Assistant is the travel planning facade. It holds the current knowledge
// session for the most recently built destination; a build publishes a fresh
// session in one pointer swap, so readers never observe a half-built state.
type Assistant struct {
	chat     ChatClient
	builder  *knowledge.Builder
	media    MediaSearcher   // may be nil when no search API key is configured
	overview OverviewFetcher // may be nil
	config   Config
	logger   *zap.Logger

	mu      sync.RWMutex
	session *knowledge.Session
}

// NewAssistant creates an assistant. chat and builder are required; media
// and overview are optional collaborators that degrade to absent data.
func NewAssistant(chat ChatClient, builder *knowledge.Builder, media MediaSearcher, overview OverviewFetcher, cfg Config, logger *zap.Logger) (*Assistant, error) {
	if chat == nil {
		return nil, fmt.Errorf("planner: chat client is required")
	}
	if builder == nil {
		return nil, fmt.Errorf("planner: knowledge builder is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.applyDefaults()
	return &Assistant{
		chat:     chat,
		builder:  builder,
		media:    media,
		overview: overview,
		config:   cfg,
		logger:   logger,
	}, nil
}

// Session returns the currently published knowledge session, which may be
// nil before the first successful build.
func (a *Assistant) Session() *knowledge.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

// BuildKnowledgeBase builds and publishes a fresh knowledge session for
// destination, replacing whatever was published before. On failure the
// previous session stays published and queryable.
func (a *Assistant) BuildKnowledgeBase(ctx context.Context, destination string) ([]sources.Outcome, error) {
	session, outcomes, err := a.builder.Build(ctx, destination)
	if err != nil {
		return outcomes, err
	}
	a.mu.Lock()
	a.session = session
	a.mu.Unlock()
	return outcomes, nil
}

// RetrieveFacts returns the top-k facts for query from the current session.
// Before any build this returns no facts and no error.
func (a *Assistant) RetrieveFacts(ctx context.Context, query string, k int) ([]knowledge.Fact, error) {
	if k <= 0 {
		k = a.config.TopK
	}
	return a.Session().Query(ctx, query, k)
}

// DestinationInfo gathers the presentation data for a destination: overview,
// images, and hotels. Each collaborator failure degrades to absent data
// rather than failing the whole call.
func (a *Assistant) DestinationInfo(ctx context.Context, destination string) *models.DestinationInfo {
	info := &models.DestinationInfo{Destination: destination}
	if a.overview != nil {
		overview, err := a.overview.Overview(ctx, destination)
		if err != nil {
			a.logger.Warn("overview fetch failed", zap.String("destination", destination), zap.Error(err))
		} else {
			info.Overview = overview
		}
	}
	if a.media != nil {
		images, err := a.media.Images(ctx, destination+" tourist attractions", a.config.ImageLimit)
		if err != nil {
			a.logger.Warn("image search failed", zap.String("destination", destination), zap.Error(err))
		} else {
			info.Images = images
		}
		hotels, err := a.media.Hotels(ctx, "top hotels in "+destination, a.config.HotelLimit)
		if err != nil {
			a.logger.Warn("hotel search failed", zap.String("destination", destination), zap.Error(err))
		} else {
			info.Hotels = hotels
		}
	}
	return info
}

// PlanTrip generates a personalized itinerary and rebuilds the knowledge
// base for the destination so follow-up questions are grounded in it. A
// knowledge build failure is logged but does not sink the itinerary.
func (a *Assistant) PlanTrip(ctx context.Context, prefs models.Preferences) (*models.Itinerary, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	content, err := a.chat.Chat(ctx, itinerarySystemPrompt, itineraryUserPrompt(prefs), a.config.ItineraryMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	if _, err := a.BuildKnowledgeBase(ctx, prefs.Destination); err != nil {
		a.logger.Warn("knowledge base build failed", zap.String("destination", prefs.Destination), zap.Error(err))
	}

	itinerary := &models.Itinerary{Destination: prefs.Destination, Content: content}
	if a.media != nil {
		images, err := a.media.Images(ctx, prefs.Destination+" tourist attractions", a.config.ImageLimit)
		if err != nil {
			a.logger.Warn("image search failed", zap.String("destination", prefs.Destination), zap.Error(err))
		} else {
			itinerary.Images = images
		}
	}
	return itinerary, nil
}

// Ask answers a free-text question about the current destination, grounded
// in the facts retrieved from the knowledge base.
func (a *Assistant) Ask(ctx context.Context, query string) (*models.Answer, error) {
	session := a.Session()
	facts, err := session.Query(ctx, query, a.config.TopK)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(facts))
	for i, f := range facts {
		texts[i] = f.Text
	}
	subject := session.Subject()

	content, err := a.chat.Chat(ctx, answerSystemPrompt, answerUserPrompt(query, subject, texts), a.config.AnswerMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("answer query: %w", err)
	}

	answer := &models.Answer{Query: query, Subject: subject, Content: content, Facts: texts}
	if a.media != nil {
		images, err := a.media.Images(ctx, subject+" "+query, a.config.ImageLimit)
		if err != nil {
			a.logger.Warn("image search failed", zap.String("query", query), zap.Error(err))
		} else {
			answer.Images = images
		}
	}
	return answer, nil
}
