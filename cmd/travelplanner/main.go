// Package main is the travel planner CLI entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/cli"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/config"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/embedding"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/knowledge"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/llm"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/models"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/planner"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/server"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/sources"
	"github.com/Prateekkumar12345/AI-Travel-Planner/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/travelplanner/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used.
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		// Missing config file is fine; run on defaults.
		if errors.Is(err, os.ErrNotExist) {
			cfg = &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, "", nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "plan":
		runPlan()
	case "ask":
		runAsk()
	case "facts":
		runFacts()
	case "build":
		runBuild()
	case "version", "--version", "-v":
		fmt.Printf("travelplanner version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// Components holds initialized services.
type Components struct {
	Embedder  embedding.Embedder
	Builder   *knowledge.Builder
	Assistant *planner.Assistant
}

func (c *Components) Close() {
	if c.Embedder != nil {
		_ = c.Embedder.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	var embedder embedding.Embedder
	onnxEmbedder, err := embedding.NewONNXEmbedder(
		cfg.Embedding.ModelPath,
		cfg.Embedding.Dimensions,
		cfg.Embedding.MaxTokens,
		cfg.Embedding.CacheSize,
	)
	if err != nil {
		logger.Warn("ONNX embedder unavailable, using mock embedder", zap.Error(err))
		embedder = embedding.NewMockEmbedder(cfg.Embedding.Dimensions)
	} else {
		embedder = onnxEmbedder
	}

	var srcs []sources.Source
	var media planner.MediaSearcher
	var overview planner.OverviewFetcher

	if key := cfg.SerpAPI.APIKey(); key != "" {
		client, err := sources.NewSerpAPIClient(sources.SerpAPIConfig{
			APIKey:            key,
			BaseURL:           cfg.SerpAPI.BaseURL,
			Timeout:           cfg.SerpAPI.Timeout,
			RequestsPerSecond: cfg.SerpAPI.RequestsPerSecond,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize search client: %w", err)
		}
		srcs = append(srcs,
			sources.NewAttractionsSource(client, cfg.SerpAPI.SnippetLimit),
			sources.NewDiningSource(client, cfg.SerpAPI.SnippetLimit),
		)
		media = client
	} else {
		logger.Warn("search API key not set, web search sources disabled",
			zap.String("env", cfg.SerpAPI.APIKeyEnv))
	}

	if cfg.Sources.WikipediaEnabled() {
		wiki := sources.NewWikipediaSource("")
		srcs = append(srcs, wiki)
		overview = wiki
	}
	if cfg.Sources.NotesDir != "" {
		srcs = append(srcs, sources.NewNotesSource(cfg.Sources.NotesDir))
	}

	builder := knowledge.NewBuilder(embedder, srcs, logger)

	chatKey := cfg.LLM.APIKey()
	if chatKey == "" {
		return nil, fmt.Errorf("chat API key not set; export %s", cfg.LLM.APIKeyEnv)
	}
	chat, err := llm.NewClient(llm.Config{
		APIKey:  chatKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chat client: %w", err)
	}

	assistant, err := planner.NewAssistant(chat, builder, media, overview, planner.Config{
		TopK:               cfg.Retrieval.TopK,
		ItineraryMaxTokens: cfg.LLM.ItineraryMaxTokens,
		AnswerMaxTokens:    cfg.LLM.AnswerMaxTokens,
		ImageLimit:         cfg.SerpAPI.ImageLimit,
		HotelLimit:         cfg.SerpAPI.HotelLimit,
	}, logger)
	if err != nil {
		return nil, err
	}

	return &Components{
		Embedder:  embedder,
		Builder:   builder,
		Assistant: assistant,
	}, nil
}

func setup(configPath string, debugFlag bool) (*config.Config, *zap.Logger, *Components) {
	cfg, resolvedPath, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || debugFlag
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	if resolvedPath != "" {
		logger.Debug("config loaded", zap.String("config_path", resolvedPath))
	}
	components, err := initializeComponents(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger, components
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, logger, components := setup(*configPath, *debug)
	defer logger.Sync()
	defer components.Close()

	srv := server.NewServer(components.Assistant, &cfg.Server, &cfg.Retrieval, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runPlan() {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	destination := fs.String("destination", "", "destination city or region (required)")
	days := fs.Int("days", 7, "trip duration in days")
	style := fs.String("style", "", "travel style (e.g. Relaxed, Adventure, Cultural Exploration)")
	interests := fs.String("interests", "", "comma-separated interests (e.g. History,Food)")
	budget := fs.String("budget", "", "budget level (e.g. Budget, Mid-range, Luxury)")
	travelers := fs.String("travelers", "", "who is traveling (e.g. Solo, Couple, Family)")
	month := fs.String("month", "", "travel month or season")
	activities := fs.String("activities", "", "specific activities of interest")
	dietary := fs.String("dietary", "", "dietary restrictions")
	mobility := fs.String("mobility", "", "mobility considerations")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if *destination == "" {
		fmt.Println("Usage: travelplanner plan --destination <place> [flags]")
		fs.PrintDefaults()
		os.Exit(1)
	}
	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_, logger, components := setup(*configPath, false)
	defer logger.Sync()
	defer components.Close()

	prefs := models.Preferences{
		Destination:            *destination,
		DurationDays:           *days,
		TravelStyle:            *style,
		Budget:                 *budget,
		Travelers:              *travelers,
		TravelMonth:            *month,
		SpecificActivities:     *activities,
		DietaryRestrictions:    *dietary,
		MobilityConsiderations: *mobility,
	}
	if *interests != "" {
		for _, it := range strings.Split(*interests, ",") {
			if it = strings.TrimSpace(it); it != "" {
				prefs.Interests = append(prefs.Interests, it)
			}
		}
	}

	itinerary, err := components.Assistant.PlanTrip(context.Background(), prefs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Planning failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteItinerary(os.Stdout, itinerary, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runAsk() {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	destination := fs.String("destination", "", "destination to build the knowledge base for (required)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if *destination == "" || fs.NArg() < 1 {
		fmt.Println("Usage: travelplanner ask --destination <place> <question>")
		os.Exit(1)
	}
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_, logger, components := setup(*configPath, false)
	defer logger.Sync()
	defer components.Close()

	ctx := context.Background()
	if _, err := components.Assistant.BuildKnowledgeBase(ctx, *destination); err != nil {
		fmt.Fprintf(os.Stderr, "Knowledge base build failed: %v\n", err)
		os.Exit(1)
	}
	answer, err := components.Assistant.Ask(ctx, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ask failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteAnswer(os.Stdout, answer, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runFacts() {
	fs := flag.NewFlagSet("facts", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	destination := fs.String("destination", "", "destination to build the knowledge base for (required)")
	topK := fs.Int("top-k", 0, "number of facts to retrieve (default from config)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if *destination == "" || fs.NArg() < 1 {
		fmt.Println("Usage: travelplanner facts --destination <place> <query>")
		os.Exit(1)
	}
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, logger, components := setup(*configPath, false)
	defer logger.Sync()
	defer components.Close()

	k := *topK
	if k > cfg.Retrieval.MaxTopK {
		k = cfg.Retrieval.MaxTopK
	}

	ctx := context.Background()
	if _, err := components.Assistant.BuildKnowledgeBase(ctx, *destination); err != nil {
		fmt.Fprintf(os.Stderr, "Knowledge base build failed: %v\n", err)
		os.Exit(1)
	}
	facts, err := components.Assistant.RetrieveFacts(ctx, query, k)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Retrieval failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteFacts(os.Stdout, query, *destination, facts, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runBuild() {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: travelplanner build <destination>")
		os.Exit(1)
	}
	destination := strings.TrimSpace(strings.Join(fs.Args(), " "))
	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_, logger, components := setup(*configPath, false)
	defer logger.Sync()
	defer components.Close()

	outcomes, err := components.Assistant.BuildKnowledgeBase(context.Background(), destination)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Build failed: %v\n", err)
		os.Exit(1)
	}
	session := components.Assistant.Session()
	if err := cli.WriteBuildSummary(os.Stdout, destination, session.Len(), outcomes, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`travelplanner - AI travel planning assistant

Usage:
  travelplanner server [flags]                           Start the HTTP server
  travelplanner plan --destination <place> [flags]       Generate a personalized itinerary
  travelplanner ask --destination <place> <question>     Ask a question about a destination
  travelplanner facts --destination <place> <query>      Retrieve knowledge-base facts
  travelplanner build <destination>                      Build and summarize a knowledge base
  travelplanner version                                  Show version
  travelplanner help                                     Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/travelplanner/config.yaml)
  --debug            Enable debug logging

Plan Flags:
  --destination string   Destination city or region (required)
  --days int             Trip duration in days (default: 7)
  --style string         Travel style
  --interests string     Comma-separated interests
  --budget string        Budget level
  --travelers string     Who is traveling
  --month string         Travel month or season
  --output string        Output format: text or json (default: text)

Environment:
  GROQ_API_KEY       Chat completion API key (required)
  SERPAPI_KEY        Web search API key (optional; enables attractions, dining, images, hotels)

Examples:
  travelplanner server
  travelplanner plan --destination Rome --days 5 --interests History,Food
  travelplanner ask --destination Rome "where should I eat pasta"
  travelplanner facts --destination Rome --top-k 5 "best museums"
  travelplanner build Kyoto`)
}
