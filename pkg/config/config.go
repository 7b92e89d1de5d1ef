package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath  = "config.yaml"
	defaultProvider    = "openai"
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultStrategy    = "fast"
	defaultTemperature = 0.7
	defaultTimeoutSec  = 30
	defaultParallelism = 2
	defaultAddr        = ":8000"
)

type Config struct {
	OpenAIAPIKey string
	GroqAPIKey   string

	LLM        LLMConfig        `yaml:"llm"`
	Generation GenerationConfig `yaml:"generation"`
	Server     ServerConfig     `yaml:"server"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"` // "openai" or "groq"
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

type GenerationConfig struct {
	Strategy    string  `yaml:"strategy"` // "fast" or "sections"
	Temperature float64 `yaml:"temperature"`
	TimeoutSec  int     `yaml:"timeout_sec"`
	Parallelism int     `yaml:"parallelism"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
	}

	loadYAMLConfig(cfg)
	applyDefaults(cfg)

	return cfg
}

func loadYAMLConfig(cfg *Config) {
	data, err := os.ReadFile(defaultConfigPath)
	if err != nil {
		slog.Warn("No config.yaml found, using defaults")
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Error("Failed to parse config.yaml", "error", err)
	}
}

func applyDefaults(cfg *Config) {
	applyLLMDefaults(cfg)
	applyGenerationDefaults(cfg)
	applyServerDefaults(cfg)
}

func applyLLMDefaults(cfg *Config) {
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = defaultProvider
	}
	if cfg.LLM.Model == "" {
		switch cfg.LLM.Provider {
		case "groq":
			cfg.LLM.Model = defaultGroqModel
		default:
			cfg.LLM.Model = defaultOpenAIModel
		}
	}
}

func applyGenerationDefaults(cfg *Config) {
	if cfg.Generation.Strategy == "" {
		cfg.Generation.Strategy = defaultStrategy
	}
	if cfg.Generation.Temperature == 0 {
		cfg.Generation.Temperature = defaultTemperature
	}
	if cfg.Generation.TimeoutSec == 0 {
		cfg.Generation.TimeoutSec = defaultTimeoutSec
	}
	if cfg.Generation.Parallelism == 0 {
		cfg.Generation.Parallelism = defaultParallelism
	}
}

func applyServerDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultAddr
	}
}
