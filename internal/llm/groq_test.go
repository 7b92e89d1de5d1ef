package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGroqClient(t *testing.T, serverURL string) *GroqClient {
	t.Helper()
	client, err := NewGroqClient(GroqOptions{
		APIKey:  "test-api-key",
		Model:   "llama-3.3-70b-versatile",
		BaseURL: serverURL + "/",
	})
	if err != nil {
		t.Fatalf("NewGroqClient() error: %v", err)
	}
	return client
}

func TestGroqComplete(t *testing.T) {
	tests := []struct {
		name         string
		responseBody string
		statusCode   int
		wantErr      bool
		wantContent  string
	}{
		{
			name:         "successfulCompletion",
			responseBody: mustJSON(makeChatResponse("Scene by scene breakdown.")),
			statusCode:   http.StatusOK,
			wantContent:  "Scene by scene breakdown.",
		},
		{
			name:         "emptyContent",
			responseBody: mustJSON(makeChatResponse("")),
			statusCode:   http.StatusOK,
			wantErr:      true,
		},
		{
			name:         "httpErrorBadRequest",
			responseBody: `{"error": {"message": "bad request", "type": "invalid_request_error"}}`,
			statusCode:   http.StatusBadRequest,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := newTestGroqClient(t, server.URL)
			got, err := client.Complete(context.Background(), Request{
				System:      "You are a screenwriter.",
				User:        "Write scenes.",
				MaxTokens:   800,
				Temperature: 0.7,
			})

			if tt.wantErr {
				if err == nil {
					t.Fatal("Complete() expected error, got nil")
				}
				if !errors.Is(err, ErrUnavailable) {
					t.Errorf("Complete() error = %v, want ErrUnavailable", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Complete() unexpected error: %v", err)
			}
			if got != tt.wantContent {
				t.Errorf("Complete() = %q, want %q", got, tt.wantContent)
			}
		})
	}
}

func TestNewGroqClientValidation(t *testing.T) {
	if _, err := NewGroqClient(GroqOptions{Model: "m"}); err == nil {
		t.Error("expected api key error, got nil")
	}
	if _, err := NewGroqClient(GroqOptions{APIKey: "k"}); err == nil {
		t.Error("expected model error, got nil")
	}
}
