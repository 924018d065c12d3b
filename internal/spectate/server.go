package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-dash/internal/storage"
)

// ScoreSource serves the top scores of a profile.
type ScoreSource interface {
	TopScores(profile string, limit int) ([]storage.ScoreEntry, error)
}

// Server exposes the feed over HTTP.
type Server struct {
	hub    *Hub
	scores ScoreSource
	r      *chi.Mux
	srv    *http.Server
}

// NewServer wires the router. scores may be nil, in which case the scores
// route answers 503.
func NewServer(hub *Hub, scores ScoreSource) *Server {
	s := &Server{hub: hub, scores: scores, r: chi.NewRouter()}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)

	s.r.Get("/ws", hub.ServeWS)

	// Websocket connections are long-lived; only the JSON routes get a timeout.
	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second))
		r.Use(jsonContentType)
		r.Get("/health", s.handleHealth)
		r.Get("/scores/{profile}", s.handleScores)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start listens on addr in the background. The returned address is the
// bound one, so ":0" works.
func (s *Server) Start(addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}
	s.srv = &http.Server{Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.hub.logger.Error("spectate server error", "error", err)
		}
	}()
	s.hub.logger.Info("spectator feed listening", "address", ln.Addr().String())
	return ln.Addr().String(), nil
}

// Shutdown disconnects watchers and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "watchers": s.hub.Watchers()})
}

type scoreView struct {
	Rank      int       `json:"rank"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if s.scores == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no_storage"})
		return
	}

	profile := chi.URLParam(r, "profile")
	entries, err := s.scores.TopScores(profile, 5)
	if err != nil {
		s.hub.logger.Warn("score query failed", "profile", profile, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage"})
		return
	}

	out := make([]scoreView, 0, len(entries))
	for i, e := range entries {
		out = append(out, scoreView{Rank: i + 1, Score: e.Score, CreatedAt: e.CreatedAt})
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": profile, "scores": out})
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
