// Package server exposes a small preview surface: generate today's lesson
// and look at the composed email without sending anything or touching
// history.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"daily_finance_mailer/mailer"
	"daily_finance_mailer/pipeline"
)

type Server struct {
	gen    pipeline.ContentGenerator
	charts pipeline.ChartRenderer
	store  pipeline.HistoryStore
}

func New(gen pipeline.ContentGenerator, charts pipeline.ChartRenderer, store pipeline.HistoryStore) (*Server, error) {
	if gen == nil {
		return nil, errors.New("content generator required")
	}
	if charts == nil {
		return nil, errors.New("chart renderer required")
	}
	if store == nil {
		return nil, errors.New("history store required")
	}
	return &Server{gen: gen, charts: charts, store: store}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/preview", s.handlePreviewJSON)
	mux.HandleFunc("/preview", s.handlePreviewHTML)
	return logMiddleware(mux)
}

// --- Handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handlePreviewJSON generates a lesson against the current history and
// returns it raw, for inspecting what the model produces.
func (s *Server) handlePreviewJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	lesson, err := s.gen.NextLesson(ctx, s.store.Load())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, lesson)
}

// handlePreviewHTML runs generation, chart rendering, and composition, then
// returns the finished email document for the browser to render.
func (s *Server) handlePreviewHTML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	lesson, err := s.gen.NextLesson(ctx, s.store.Load())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	var chartURL string
	if lesson.HasChart() {
		chartURL, _ = s.charts.Render(ctx, lesson.ChartConfig)
	}

	html, err := mailer.Compose(lesson, chartURL, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	})
}
