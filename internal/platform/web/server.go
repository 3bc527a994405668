// Package web serves the arcade leaderboard over HTTP as JSON.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Error types reported in ErrorResponse.Type.
const (
	ErrTypeNotFound    = "not_found"
	ErrTypeBadRequest  = "bad_request"
	ErrTypeUnavailable = "unavailable"
	ErrTypeInternal    = "internal"
)

// Server handles leaderboard requests.
type Server struct {
	store     *storage.Store
	logger    *log.Logger
	startTime time.Time
	http      *http.Server
}

// NewServer creates a leaderboard server. A nil store makes every score
// endpoint answer 503.
func NewServer(store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:     store,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Routes sets up the HTTP routes with their middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/games", s.handleListGames)
		r.Route("/games/{gameID}", func(r chi.Router) {
			r.Use(s.requireGame)
			r.Get("/scores", s.handleScores)
			r.Get("/stats", s.handleStats)
		})
	})

	return r
}

// ListenAndServe serves on addr until Shutdown is called.
func (s *Server) ListenAndServe(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info("starting leaderboard API", "address", addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops a running server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// requireGame rejects ids nobody registered and checks the store is open.
func (s *Server) requireGame(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		if !registry.Exists(gameID) {
			s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, "unknown game "+strconv.Quote(gameID))
			return
		}
		if s.store == nil {
			s.writeError(w, r, http.StatusServiceUnavailable, ErrTypeUnavailable, "no score database")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if s.store == nil {
		status = "degraded"
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: status,
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
		Games:  len(registry.List()),
	})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	infos := registry.List()
	games := make([]GameJSON, 0, len(infos))
	for _, info := range infos {
		g := GameJSON{ID: info.ID, Title: info.Title}
		if s.store != nil {
			if best, err := s.store.HighScore(info.ID); err == nil {
				g.Best = best
			}
		}
		games = append(games, g)
	}
	s.writeJSON(w, http.StatusOK, GamesResponse{Games: games})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, r, http.StatusBadRequest, ErrTypeBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLimit)
	}

	entries, err := s.store.TopScores(gameID, limit)
	if err != nil {
		s.logger.Error("cannot load scores", "game", gameID, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, "cannot load scores")
		return
	}

	scores := make([]ScoreJSON, len(entries))
	for i, e := range entries {
		scores[i] = ScoreJSON{
			Rank:      i + 1,
			Score:     e.Score,
			RunID:     e.RunID,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	s.writeJSON(w, http.StatusOK, ScoresResponse{Game: gameID, Scores: scores})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	stats, err := s.store.GetGameStats(gameID)
	if err != nil {
		s.logger.Error("cannot load stats", "game", gameID, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, "cannot load stats")
		return
	}

	resp := StatsResponse{
		Game:    gameID,
		Runs:    stats.GamesCount,
		Best:    stats.HighScore,
		Average: stats.AvgScore,
		Total:   stats.TotalScore,
	}
	if !stats.LastPlayed.IsZero() {
		resp.LastPlayed = stats.LastPlayed.UTC().Format(time.RFC3339)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("cannot encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errType, message string) {
	s.writeJSON(w, status, ErrorResponse{
		Type:      errType,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}
