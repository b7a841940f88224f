// Package http exposes the conversation engine as a JSON API. Sessions are
// addressed by ID; every mutating route loads the persisted state, replays it
// through a fresh engine, applies the operation, and saves the result under
// the session's lock.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/acrowfliedover/eGainAssignment/internal/engine"
	"github.com/acrowfliedover/eGainAssignment/internal/logging"
	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
	"github.com/acrowfliedover/eGainAssignment/pkg/ports"
	"github.com/acrowfliedover/eGainAssignment/pkg/session"
)

// Server hosts the conversation API over a script and a session manager.
type Server struct {
	manager *session.Manager
	repo    ports.ScriptRepository
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a structured logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithHooks forwards engine lifecycle events, typically to metrics.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// NewServer creates the API server.
func NewServer(manager *session.Manager, repo ports.ScriptRepository, opts ...Option) *Server {
	s := &Server{
		manager: manager,
		repo:    repo,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the chi router for the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/script", s.handleScript)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Get("/", s.handleListSessions)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Post("/select", s.handleSelectOption)
			r.Post("/input", s.handleSubmitInput)
			r.Post("/reset", s.handleReset)
		})
	})

	return r
}

type sessionResponse struct {
	SessionID string        `json:"session_id"`
	State     *domain.State `json:"state"`
}

type createSessionRequest struct {
	SessionID string `json:"session_id,omitempty"`
}

type selectOptionRequest struct {
	OptionID string `json:"option_id"`
}

type submitInputRequest struct {
	Value string `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScript returns the full dialogue script so clients can render the
// graph without a session.
func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"initial_step": s.repo.InitialStepID(),
		"steps":        s.repo.Steps(),
	})
}

// handleCreateSession starts a conversation. The client may propose an ID;
// otherwise one is generated. Creating an existing session returns its
// current state unchanged.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	state, err := s.manager.LoadOrStart(r.Context(), sessionID, func() *domain.State {
		eng, err := engine.New(s.repo, engine.WithLogger(s.logger), engine.WithHooks(s.hooks))
		if err != nil {
			// New only fails on an unresolvable initial step, which script
			// validation rules out before the server starts.
			s.logger.Error("engine init failed", "err", err)
			return domain.NewState(s.repo.InitialStepID())
		}
		return eng.State()
	})
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, sessionResponse{SessionID: sessionID, State: state})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.manager.List(r.Context())
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"sessions": ids})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	state, err := s.manager.Load(r.Context(), sessionID)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{SessionID: sessionID, State: state})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	// Deleting an unknown session is 404 so clients can distinguish a stale
	// ID from a successful teardown.
	if _, err := s.manager.Load(r.Context(), sessionID); err != nil {
		s.writeEngineError(w, err)
		return
	}
	if err := s.manager.Delete(r.Context(), sessionID); err != nil {
		s.writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSelectOption(w http.ResponseWriter, r *http.Request) {
	var req selectOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OptionID == "" {
		s.writeError(w, http.StatusBadRequest, "option_id is required")
		return
	}

	s.mutateSession(w, r, func(eng *engine.Engine) error {
		return eng.SelectOption(req.OptionID)
	})
}

func (s *Server) handleSubmitInput(w http.ResponseWriter, r *http.Request) {
	var req submitInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mutateSession(w, r, func(eng *engine.Engine) error {
		return eng.SubmitNumericInput(req.Value)
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mutateSession(w, r, func(eng *engine.Engine) error {
		eng.Reset()
		return nil
	})
}

// mutateSession runs one engine operation under the session lock and persists
// the outcome. The response is the full post-operation state.
func (s *Server) mutateSession(w http.ResponseWriter, r *http.Request, op func(*engine.Engine) error) {
	sessionID := chi.URLParam(r, "sessionID")

	var snapshot *domain.State
	err := s.manager.WithLock(r.Context(), sessionID, func(ctx context.Context) error {
		state, err := s.manager.Store().Load(ctx, sessionID)
		if err != nil {
			return err
		}

		eng, err := engine.New(s.repo, engine.WithLogger(s.logger), engine.WithHooks(s.hooks))
		if err != nil {
			return err
		}
		if err := eng.Hydrate(state); err != nil {
			return err
		}
		if err := op(eng); err != nil {
			return err
		}

		snapshot = eng.State()
		return s.manager.Store().Save(ctx, sessionID, snapshot)
	})
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, sessionResponse{SessionID: sessionID, State: snapshot})
}

// writeEngineError maps domain errors to status codes.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		s.writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, domain.ErrUnknownOption):
		s.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotAwaitingInput):
		s.writeError(w, http.StatusConflict, "conversation is not awaiting numeric input")
	default:
		s.logger.Error("request failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
