package config

import "time"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Embedding.ModelPath == "" {
		cfg.Embedding.ModelPath = "/usr/local/var/travelplanner/models/all-MiniLM-L6-v2.onnx"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 384
	}
	if cfg.Embedding.MaxTokens == 0 {
		cfg.Embedding.MaxTokens = 256
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 3
	}
	if cfg.Retrieval.MaxTopK == 0 {
		cfg.Retrieval.MaxTopK = 20
	}
	if cfg.SerpAPI.APIKeyEnv == "" {
		cfg.SerpAPI.APIKeyEnv = "SERPAPI_KEY"
	}
	if cfg.SerpAPI.RequestsPerSecond == 0 {
		cfg.SerpAPI.RequestsPerSecond = 1
	}
	if cfg.SerpAPI.Timeout == 0 {
		cfg.SerpAPI.Timeout = 15 * time.Second
	}
	if cfg.SerpAPI.SnippetLimit == 0 {
		cfg.SerpAPI.SnippetLimit = 5
	}
	if cfg.SerpAPI.ImageLimit == 0 {
		cfg.SerpAPI.ImageLimit = 6
	}
	if cfg.SerpAPI.HotelLimit == 0 {
		cfg.SerpAPI.HotelLimit = 5
	}
	if cfg.LLM.APIKeyEnv == "" {
		cfg.LLM.APIKeyEnv = "GROQ_API_KEY"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "mixtral-8x7b-32768"
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}
	if cfg.LLM.ItineraryMaxTokens == 0 {
		cfg.LLM.ItineraryMaxTokens = 4000
	}
	if cfg.LLM.AnswerMaxTokens == 0 {
		cfg.LLM.AnswerMaxTokens = 2000
	}
}
