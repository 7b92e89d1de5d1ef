// Package server exposes the production assembler over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"vidassist/internal/production"
)

// Generator is the part of the assembler the server needs.
type Generator interface {
	Assemble(ctx context.Context, in production.Input, strategy string) (*production.Package, error)
}

type Server struct {
	gen Generator
}

func New(gen Generator) (*Server, error) {
	if gen == nil {
		return nil, errors.New("generator required")
	}
	return &Server{gen: gen}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate-video-production", s.handleGenerate)
	mux.HandleFunc("/", s.handleInfo)
	return logMiddleware(mux)
}

// --- Handlers ---

type generateReq struct {
	Idea           string `json:"idea"`
	Platform       string `json:"platform"`
	Duration       string `json:"duration"`
	TargetAudience string `json:"target_audience"`
	Tone           string `json:"tone"`
	Mode           string `json:"mode"`
}

type errorResp struct {
	Error string `json:"error"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	pkg, err := s.gen.Assemble(r.Context(), production.Input{
		Idea:           req.Idea,
		Platform:       req.Platform,
		Duration:       req.Duration,
		TargetAudience: req.TargetAudience,
		Tone:           req.Tone,
	}, req.Mode)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service":   "vidassist",
		"endpoints": []string{"POST /generate-video-production"},
		"modes":     []string{"fast", "sections"},
	})
}

// statusFor maps assembler failures onto the boundary: a bad request is the
// caller's fault, everything else surfaces as a failed upstream generation.
func statusFor(err error) int {
	if errors.Is(err, production.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResp{Error: msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		requestID := uuid.NewString()
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
