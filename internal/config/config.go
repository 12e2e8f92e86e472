// Package config provides configuration loading and structs for the travel planner.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Sources   SourcesConfig   `yaml:"sources"`
	SerpAPI   SerpAPIConfig   `yaml:"serpapi"`
	LLM       LLMConfig       `yaml:"llm"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// EmbeddingConfig holds ONNX embedder settings.
type EmbeddingConfig struct {
	ModelPath  string `yaml:"model_path"`
	Dimensions int    `yaml:"dimensions"`
	MaxTokens  int    `yaml:"max_tokens"`
	CacheSize  int    `yaml:"cache_size"`
}

// RetrievalConfig holds fact retrieval settings.
type RetrievalConfig struct {
	TopK    int `yaml:"top_k"`
	MaxTopK int `yaml:"max_top_k"`
}

// SourcesConfig selects which knowledge sources contribute facts.
type SourcesConfig struct {
	NotesDir  string `yaml:"notes_dir"`
	Wikipedia *bool  `yaml:"wikipedia"`
}

// WikipediaEnabled reports whether the Wikipedia source is on; defaults to
// true when unset.
func (s *SourcesConfig) WikipediaEnabled() bool {
	if s.Wikipedia != nil {
		return *s.Wikipedia
	}
	return true
}

// SerpAPIConfig holds web search settings. The API key itself comes from the
// environment variable named by APIKeyEnv, never from the config file.
type SerpAPIConfig struct {
	APIKeyEnv         string        `yaml:"api_key_env"`
	BaseURL           string        `yaml:"base_url"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Timeout           time.Duration `yaml:"timeout"`
	SnippetLimit      int           `yaml:"snippet_limit"`
	ImageLimit        int           `yaml:"image_limit"`
	HotelLimit        int           `yaml:"hotel_limit"`
}

// APIKey reads the search API key from the environment.
func (s *SerpAPIConfig) APIKey() string {
	return os.Getenv(s.APIKeyEnv)
}

// LLMConfig holds chat completion settings. The API key comes from the
// environment variable named by APIKeyEnv.
type LLMConfig struct {
	APIKeyEnv          string        `yaml:"api_key_env"`
	BaseURL            string        `yaml:"base_url"`
	Model              string        `yaml:"model"`
	Timeout            time.Duration `yaml:"timeout"`
	ItineraryMaxTokens int           `yaml:"itinerary_max_tokens"`
	AnswerMaxTokens    int           `yaml:"answer_max_tokens"`
}

// APIKey reads the chat API key from the environment.
func (l *LLMConfig) APIKey() string {
	return os.Getenv(l.APIKeyEnv)
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Embedding.ModelPath = expandPath(cfg.Embedding.ModelPath, configDir)
	if cfg.Sources.NotesDir != "" {
		cfg.Sources.NotesDir = expandPath(cfg.Sources.NotesDir, configDir)
	}

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
