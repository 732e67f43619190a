package chat

import (
	"context"
	"iter"

	"github.com/learnpath/learnpath/internal/i18n"
	"github.com/learnpath/learnpath/internal/llm"
	applog "github.com/learnpath/learnpath/internal/log"
)

// streamMaxAttempts bounds streaming attempts per exchange: the initial call
// plus at most one immediate retry for non-quota failures that happen before
// any fragment was delivered.
const streamMaxAttempts = 2

// StreamError is the internal failure signal produced by the Orchestrator.
// It carries only a message key: resolving the key to display text is the
// Service's job, which keeps this layer free of presentation concerns.
type StreamError struct {
	Key i18n.Key
}

// StreamItem is one element of the orchestrated stream: either a text
// fragment (Err nil) or a terminal StreamError.
type StreamItem struct {
	Chunk string
	Err   *StreamError
}

// Orchestrator drives one streaming exchange against the LLM client and
// translates any failure into a classified StreamError, without knowing how
// the error will be rendered.
type Orchestrator struct {
	client Client
	logger applog.Logger
}

// NewOrchestrator creates an Orchestrator around the given client.
func NewOrchestrator(client Client, logger applog.Logger) *Orchestrator {
	return &Orchestrator{client: client, logger: logger}
}

// Stream runs the streaming exchange for message with the given context
// window and returns a lazy, single-pass sequence of StreamItems.
//
// Retry policy:
//   - Once the first fragment has been delivered the exchange is committed:
//     later failures end the stream with the interrupted signal, never a
//     retry (a retry would duplicate content the consumer already saw).
//   - A failure before any fragment triggers one immediate retry, unless it
//     is a quota condition or the attempt budget is spent, in which case a
//     single classified StreamError terminates the sequence.
func (o *Orchestrator) Stream(ctx context.Context, message string, history []Message) iter.Seq[StreamItem] {
	return func(yield func(StreamItem) bool) {
		for attempt := 1; attempt <= streamMaxAttempts; attempt++ {
			delivered := false
			var streamErr error

			for chunk, err := range o.client.StreamChat(ctx, history, message) {
				if err != nil {
					streamErr = err
					break
				}
				if chunk == "" {
					continue
				}
				delivered = true
				if !yield(StreamItem{Chunk: chunk}) {
					return
				}
			}

			if streamErr == nil {
				return
			}

			if delivered {
				o.logger.Warn("stream interrupted after partial response",
					"attempt", attempt,
					"error", streamErr)
				yield(StreamItem{Err: &StreamError{Key: i18n.KeyLLMStreamInterrupted}})
				return
			}

			if llm.IsQuota(streamErr) || attempt == streamMaxAttempts {
				o.logger.Error("stream failed",
					"attempt", attempt,
					"quota", llm.IsQuota(streamErr),
					"error", streamErr)
				yield(StreamItem{Err: &StreamError{Key: classifyStreamError(streamErr)}})
				return
			}

			o.logger.Warn("stream failed before first fragment, retrying",
				"attempt", attempt,
				"error", streamErr)
		}
	}
}

// classifyStreamError maps a streaming failure to its message key: a
// recognized service failure resolves to the LLM error template, anything
// else to the unexpected one.
func classifyStreamError(err error) i18n.Key {
	if llm.IsService(err) {
		return i18n.KeyLLMError
	}
	return i18n.KeyUnexpectedError
}
