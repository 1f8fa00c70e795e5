// Package server exposes the travel planner over HTTP.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rs/xid"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/agent"
)

type Planner interface {
	Plan(ctx context.Context, question string) ([]agent.Message, error)
}

type Server struct {
	planner Planner
	log     *slog.Logger
}

func New(planner Planner, log *slog.Logger) *Server {
	return &Server{planner: planner, log: log}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/query", s.handleQuery)
	return mux
}

type queryRequest struct {
	Question string `json:"question"`
}

type queryResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: "method not allowed"})
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "bad payload"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "question must not be empty"})
		return
	}

	run := xid.New().String()
	s.log.Info("query received", "run", run, "question", preview(req.Question, 120))

	// The planner recovers expected failures itself; anything escaping it is
	// an internal error and must not take the process down.
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("panic while planning", "run", run, "panic", rec)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
		}
	}()

	conv, err := s.planner.Plan(r.Context(), req.Question)
	if err != nil {
		s.log.Error("planning failed", "run", run, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
		return
	}

	s.log.Info("query answered", "run", run, "messages", len(conv))
	writeJSON(w, http.StatusOK, queryResponse{Answer: agent.FinalAnswer(conv)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func preview(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > n {
		return s[:n] + "…"
	}
	return s
}
