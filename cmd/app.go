package cmd

import (
	"fmt"
	"time"

	"vidassist/internal/llm"
	"vidassist/internal/production"
	"vidassist/pkg/config"
	"vidassist/pkg/httputil"
	"vidassist/pkg/prompts"
)

func buildAssembler(cfg *config.Config) (*production.Assembler, error) {
	client, err := buildLLMClient(cfg)
	if err != nil {
		return nil, err
	}

	p, err := prompts.Load()
	if err != nil {
		return nil, fmt.Errorf("load prompts: %w", err)
	}

	gen := production.NewSectionGenerator(
		client,
		p,
		cfg.Generation.Temperature,
		time.Duration(cfg.Generation.TimeoutSec)*time.Second,
	)
	return production.NewAssembler(gen, cfg.Generation.Parallelism), nil
}

func buildLLMClient(cfg *config.Config) (llm.Client, error) {
	httpClient := httputil.NewRetryClient(time.Duration(cfg.Generation.TimeoutSec) * time.Second)

	switch cfg.LLM.Provider {
	case "groq":
		return llm.NewGroqClient(llm.GroqOptions{
			APIKey:     cfg.GroqAPIKey,
			Model:      cfg.LLM.Model,
			BaseURL:    cfg.LLM.BaseURL,
			HTTPClient: httpClient,
		})
	case "openai":
		return llm.NewOpenAIClient(llm.OpenAIOptions{
			APIKey:     cfg.OpenAIAPIKey,
			Model:      cfg.LLM.Model,
			BaseURL:    cfg.LLM.BaseURL,
			HTTPClient: httpClient,
		})
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
