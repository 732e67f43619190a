package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// sseWriter streams named JSON events in Server-Sent Events format.
type sseWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// newSSEWriter sets SSE headers and returns a writer. ok is false when the
// underlying ResponseWriter cannot flush.
func newSSEWriter(w http.ResponseWriter) (*sseWriter, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, false
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // disable nginx buffering

	return &sseWriter{w: w, flusher: flusher}, true
}

// send writes one event with a JSON-encoded payload and flushes it. JSON
// encoding never embeds raw newlines, so a single data line suffices.
// Write failures mean the client went away; they are logged, not returned.
func (s *sseWriter) send(event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to marshal SSE payload", "event", event, "error", err)
		return
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		slog.Debug("failed to write SSE event", "event", event, "error", err)
		return
	}
	s.flusher.Flush()
}
