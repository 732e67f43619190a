package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/learnpath/learnpath/internal/chat"
	"github.com/learnpath/learnpath/internal/i18n"
	applog "github.com/learnpath/learnpath/internal/log"
)

// ChatHandler handles the streaming chat endpoint.
//
// Endpoint:
//   - POST /api/chat/stream - one conversation turn (SSE)
//
// The conversation event stream maps one-to-one onto SSE event types:
// status, chunk, error, session_expired, plus a final done marker. An
// optional hint event fires when the message looks like a roadmap request.
type ChatHandler struct {
	sessions *registry
	intent   *chat.IntentDetector
	messages chat.Messages
	logger   applog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(sessions *registry, intent *chat.IntentDetector, messages chat.Messages, logger applog.Logger) *ChatHandler {
	return &ChatHandler{sessions: sessions, intent: intent, messages: messages, logger: logger}
}

// RegisterRoutes registers chat routes on the given mux.
func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/chat/stream", h.handleStream)
}

// ChatRequest is the request body for a chat turn.
type ChatRequest struct {
	Message string `json:"message"`
}

// SSEChunkData is the data for "chunk" events.
type SSEChunkData struct {
	Text string `json:"text"`
}

// SSEStatusData is the data for "status" events.
type SSEStatusData struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SSEErrorData is the data for "error" and "session_expired" events.
type SSEErrorData struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
}

// SSEDoneData is the data for the final "done" event.
type SSEDoneData struct {
	SessionID string `json:"sessionId"`
}

// SSEHintData is the data for "hint" events.
type SSEHintData struct {
	Intent  string `json:"intent"`
	Message string `json:"message"`
}

// handleStream runs one conversation turn and relays its events as SSE.
//
// Headers: X-Session-ID (required, UUID).
// Request body: {"message": "..."}.
//
// Event types:
//   - status:          {"status": "...", "message": "..."}
//   - chunk:           {"text": "..."}
//   - hint:            {"intent": "roadmap", "message": "..."}
//   - error:           {"type": "...", "message": "..."}
//   - session_expired: {"message": "..."}
//   - done:            {"sessionId": "..."}
func (h *ChatHandler) handleStream(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_SESSION_ID", err.Error())
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", fmt.Sprintf("invalid request body: %v", err))
		return
	}

	e, err := h.sessions.get(id)
	if err != nil {
		h.logger.Error("failed to create session", "error", err)
		writeError(w, http.StatusInternalServerError, "SESSION_INIT_FAILED", "failed to initialize session")
		return
	}

	sse, ok := newSSEWriter(w)
	if !ok {
		h.logger.Error("streaming not supported")
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	h.logger.Info("chat stream started", "sessionId", id)

	e.mu.Lock()
	defer e.mu.Unlock()

	if h.intent != nil && h.intent.IsRoadmapIntent(ctx, req.Message) {
		sse.send("hint", SSEHintData{
			Intent:  string(chat.IntentRoadmap),
			Message: h.messages.Get(i18n.KeyFillProfile),
		})
	}

	for ev := range e.svc.HandleMessage(ctx, req.Message) {
		if ctx.Err() != nil {
			h.logger.Info("client disconnected", "sessionId", id)
			return
		}

		switch ev := ev.(type) {
		case chat.TextChunk:
			sse.send("chunk", SSEChunkData{Text: ev.Text})
		case chat.StatusUpdate:
			sse.send("status", SSEStatusData{Status: string(ev.Status), Message: ev.Message})
		case chat.ErrorOccurred:
			sse.send("error", SSEErrorData{Type: string(ev.Type), Message: ev.UserMessage})
		case chat.SessionExpired:
			sse.send("session_expired", SSEErrorData{Message: ev.Message})
		}
	}

	sse.send("done", SSEDoneData{SessionID: id.String()})
	h.logger.Info("chat stream completed", "sessionId", id)
}
