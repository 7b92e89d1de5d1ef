// Package llm is the boundary to the external text-generation service. The
// caller hands over a role-tagged prompt and a token budget and gets raw,
// wholly untrusted text back.
package llm

import (
	"context"
	"errors"
)

// ErrUnavailable means the generation service could not be reached, timed
// out, or returned nothing usable. Callers branch on it with errors.Is.
var ErrUnavailable = errors.New("generation service unavailable")

// Request is one completion call: a fixed system instruction, a rendered
// user instruction, and the call's budget.
type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Client is implemented per backend; swapping providers must not touch any
// logic above this interface.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
