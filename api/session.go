package api

import (
	"encoding/json"
	"net/http"

	"github.com/learnpath/learnpath/internal/chat"
	applog "github.com/learnpath/learnpath/internal/log"
)

// SessionHandler handles session state endpoints.
type SessionHandler struct {
	sessions *registry
	logger   applog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessions *registry, logger applog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

// RegisterRoutes registers session routes on the given mux.
func (h *SessionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/session/history", h.history)
	mux.HandleFunc("GET /api/session/snapshot", h.snapshot)
	mux.HandleFunc("POST /api/session/restore", h.restore)
	mux.HandleFunc("POST /api/session/reset", h.reset)
}

// entryFor resolves the session entry for the request, writing the error
// response itself on failure.
func (h *SessionHandler) entryFor(w http.ResponseWriter, r *http.Request) *entry {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_SESSION_ID", err.Error())
		return nil
	}
	e, err := h.sessions.get(id)
	if err != nil {
		h.logger.Error("failed to create session", "error", err)
		writeError(w, http.StatusInternalServerError, "SESSION_INIT_FAILED", "failed to initialize session")
		return nil
	}
	return e
}

// history returns the full stored transcript, oldest first.
func (h *SessionHandler) history(w http.ResponseWriter, r *http.Request) {
	e := h.entryFor(w, r)
	if e == nil {
		return
	}

	e.mu.Lock()
	messages := e.svc.AllHistory()
	e.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"messages": messages,
		"total":    len(messages),
	})
}

// snapshot returns the serializable session state.
func (h *SessionHandler) snapshot(w http.ResponseWriter, r *http.Request) {
	e := h.entryFor(w, r)
	if e == nil {
		return
	}

	e.mu.Lock()
	snap := e.svc.Snapshot()
	e.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

// restore replaces the session state with the posted snapshot.
func (h *SessionHandler) restore(w http.ResponseWriter, r *http.Request) {
	e := h.entryFor(w, r)
	if e == nil {
		return
	}

	var snap chat.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid snapshot body")
		return
	}

	e.mu.Lock()
	e.svc.Restore(snap)
	e.mu.Unlock()

	h.logger.Info("session restored", "messages", len(snap.History))
	writeJSON(w, http.StatusOK, map[string]any{"restored": len(snap.History)})
}

// reset clears the history and session clock. Idempotent.
func (h *SessionHandler) reset(w http.ResponseWriter, r *http.Request) {
	e := h.entryFor(w, r)
	if e == nil {
		return
	}

	e.mu.Lock()
	e.svc.ResetSession()
	e.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"reset": true})
}
