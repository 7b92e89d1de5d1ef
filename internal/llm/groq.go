package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/conneroisu/groq-go"
)

// GroqClient implements Client against the Groq chat completion API.
type GroqClient struct {
	client *groq.Client
	model  groq.ChatModel
}

type GroqOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewGroqClient(opts GroqOptions) (*GroqClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("groq api key missing; set GROQ_API_KEY")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("groq model is required")
	}

	var clientOpts []groq.Opts
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, groq.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, groq.WithClient(opts.HTTPClient))
	}

	client, err := groq.NewClient(opts.APIKey, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	return &GroqClient{
		client: client,
		model:  groq.ChatModel(opts.Model),
	}, nil
}

func (c *GroqClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: c.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: req.System},
			{Role: groq.RoleUser, Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices", ErrUnavailable)
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	return content, nil
}
