package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/learnpath/learnpath/internal/chat"
	"github.com/learnpath/learnpath/internal/i18n"
	"github.com/learnpath/learnpath/internal/llm"
	applog "github.com/learnpath/learnpath/internal/log"
	"github.com/learnpath/learnpath/internal/roadmap"
)

// RoadmapHandler handles roadmap generation.
//
// Endpoint:
//   - POST /api/roadmap - generate a learning roadmap (SSE)
//
// Generation takes long enough that the endpoint streams: a status event
// fires immediately, then either the roadmap or an error follows.
type RoadmapHandler struct {
	generator *roadmap.Generator
	messages  chat.Messages
	logger    applog.Logger
}

// NewRoadmapHandler creates a new roadmap handler.
func NewRoadmapHandler(generator *roadmap.Generator, messages chat.Messages, logger applog.Logger) *RoadmapHandler {
	return &RoadmapHandler{generator: generator, messages: messages, logger: logger}
}

// RegisterRoutes registers roadmap routes on the given mux.
func (h *RoadmapHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/roadmap", h.generate)
}

// RoadmapRequest is the request body for roadmap generation.
type RoadmapRequest struct {
	Profile       roadmap.UserProfile `json:"profile"`
	DurationWeeks int                 `json:"duration_weeks,omitempty"`
}

// generate runs one roadmap generation and streams the outcome.
//
// Event types:
//   - status:  {"status": "generating_roadmap", "message": "..."}
//   - roadmap: the validated roadmap JSON
//   - error:   {"type": "...", "message": "..."}
func (h *RoadmapHandler) generate(w http.ResponseWriter, r *http.Request) {
	var req RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", fmt.Sprintf("invalid request body: %v", err))
		return
	}

	sse, ok := newSSEWriter(w)
	if !ok {
		h.logger.Error("streaming not supported")
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	sse.send("status", SSEStatusData{
		Status:  string(chat.StatusGeneratingRoadmap),
		Message: h.messages.Get(i18n.KeyRoadmapLoading),
	})

	rm, err := h.generator.Generate(r.Context(), req.Profile, req.DurationWeeks)
	if err != nil {
		h.logger.Error("roadmap generation failed", "error", err)
		sse.send("error", SSEErrorData{
			Type:    errorType(err),
			Message: h.messages.Get(i18n.KeyRoadmapError),
		})
		return
	}

	sse.send("roadmap", rm)
	h.logger.Info("roadmap generated", "topic", rm.Topic, "weeks", rm.DurationWeeks)
}

// errorType classifies a generation failure for the wire.
func errorType(err error) string {
	if llm.IsValidation(err) {
		return string(chat.ErrorValidation)
	}
	return string(chat.ErrorLLM)
}
