package chat

import (
	"context"
	"errors"
	"iter"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/learnpath/learnpath/internal/i18n"
	applog "github.com/learnpath/learnpath/internal/log"
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	// DefaultMaxInputLength is the maximum accepted user message length in
	// characters (runes).
	DefaultMaxInputLength = 2000

	// DefaultContextMessages is the number of most recent stored messages
	// passed to the orchestrator as context.
	DefaultContextMessages = 20

	// DefaultSessionTimeout is the inactivity window after which a session
	// expires.
	DefaultSessionTimeout = 30 * time.Minute
)

// Config contains all required parameters for the chat Service.
type Config struct {
	Client   Client
	Messages Messages
	Logger   applog.Logger

	// Optional collaborators; New constructs fresh instances when nil.
	History *History
	Session *Session

	// Configuration values (zero-value uses defaults above).
	MaxInputLength  int
	ContextMessages int
	SessionTimeout  time.Duration
}

// validate checks that all required dependencies are present.
func (cfg Config) validate() error {
	if cfg.Client == nil {
		return errors.New("llm client is required")
	}
	if cfg.Messages == nil {
		return errors.New("message provider is required")
	}
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	return nil
}

// Service is the orchestration core: the single entry point translating one
// raw user message into a fully ordered event sequence, enforcing all
// business rules in a fixed order.
//
// A Service owns one session's History and Session clock. It is not safe
// for concurrent use; deployments serving multiple users give each session
// its own Service.
type Service struct {
	orchestrator *Orchestrator
	history      *History
	session      *Session
	messages     Messages
	logger       applog.Logger

	maxInputLength  int
	contextMessages int
}

// New creates a Service from cfg, applying defaults for zero values.
func New(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	maxInput := cfg.MaxInputLength
	if maxInput <= 0 {
		maxInput = DefaultMaxInputLength
	}
	contextN := cfg.ContextMessages
	if contextN <= 0 {
		contextN = DefaultContextMessages
	}
	timeout := cfg.SessionTimeout
	if timeout <= 0 {
		timeout = DefaultSessionTimeout
	}

	history := cfg.History
	if history == nil {
		history = NewHistory()
	}
	session := cfg.Session
	if session == nil {
		session = NewSession(timeout)
	}

	return &Service{
		orchestrator:    NewOrchestrator(cfg.Client, cfg.Logger),
		history:         history,
		session:         session,
		messages:        cfg.Messages,
		logger:          cfg.Logger,
		maxInputLength:  maxInput,
		contextMessages: contextN,
	}, nil
}

// HandleMessage translates one raw user message into a lazy, single-pass
// sequence of events. The gates run in fixed order, each short-circuiting
// the rest:
//
//  1. empty after trim       → one validation error, store untouched
//  2. over the length limit  → one validation error, store untouched
//  3. session expired        → history cleared, clock reset, one
//     SessionExpired; the triggering input is not stored
//  4. otherwise              → touch clock, store the user turn, emit the
//     thinking status, then stream
//
// Stream fragments are accumulated and re-emitted as TextChunks; a
// StreamError becomes a terminal ErrorOccurred whose resolved text is also
// persisted as an assistant turn, so the transcript always records that a
// response (even an error) was produced. The consumer may abandon the
// sequence at any point.
func (s *Service) HandleMessage(ctx context.Context, userInput string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		s.logger.Info("handling message", "input_len", len(userInput))
		defer s.logger.Debug("handling message done")

		input := strings.TrimSpace(userInput)

		if input == "" {
			yield(ErrorOccurred{Type: ErrorValidation, UserMessage: s.messages.Get(i18n.KeyEmptyInput)})
			return
		}
		if utf8.RuneCountInString(input) > s.maxInputLength {
			yield(ErrorOccurred{
				Type:        ErrorValidation,
				UserMessage: s.messages.Format(i18n.KeyInputTooLong, s.maxInputLength),
			})
			return
		}

		if s.session.IsExpired() {
			s.logger.Info("session expired, resetting history")
			s.history.Clear()
			s.session.Reset()
			yield(SessionExpired{Message: s.messages.Get(i18n.KeySessionExpired)})
			return
		}

		s.session.Touch()
		s.history.Append(NewUserMessage(input))

		if !yield(StatusUpdate{Status: StatusLoading, Message: s.messages.Get(i18n.KeyThinking)}) {
			return
		}

		s.streamResponse(ctx, input, yield)
	}
}

// streamResponse drives the orchestrator for one exchange, forwarding
// fragments and persisting the outcome.
func (s *Service) streamResponse(ctx context.Context, input string, yield func(Event) bool) {
	var full strings.Builder
	window := s.RecentHistory()

	for item := range s.orchestrator.Stream(ctx, input, window) {
		if item.Err != nil {
			msg := s.messages.Get(item.Err.Key)
			yield(ErrorOccurred{Type: errorTypeForKey(item.Err.Key), UserMessage: msg})

			// The transcript keeps whatever the user already saw: partial
			// content plus the interruption notice, or just the error text.
			s.history.Append(NewAssistantMessage(full.String() + msg))
			return
		}

		full.WriteString(item.Chunk)
		if !yield(TextChunk{Text: item.Chunk}) {
			return
		}
	}

	if full.Len() > 0 {
		s.history.Append(NewAssistantMessage(full.String()))
		s.logger.Debug("saved assistant response", "response_len", full.Len())
	}
}

// errorTypeForKey maps a stream-error message key to the surfaced error
// classification.
func errorTypeForKey(key i18n.Key) ErrorType {
	switch key {
	case i18n.KeyLLMError, i18n.KeyLLMStreamInterrupted:
		return ErrorLLM
	default:
		return ErrorUnexpected
	}
}

// RecentHistory returns at most the configured number of most recent stored
// messages, oldest first. This is the exact context window handed to the
// orchestrator, and is reused by the roadmap-generation path.
func (s *Service) RecentHistory() []Message {
	return s.history.Recent(s.contextMessages)
}

// AllHistory returns a copy of the full transcript.
func (s *Service) AllHistory() []Message {
	return s.history.All()
}

// ResetSession clears the history and resets the session clock. Used by an
// explicit "new session" action. Idempotent.
func (s *Service) ResetSession() {
	s.history.Clear()
	s.session.Reset()
	s.logger.Info("session reset")
}

// Snapshot serializes the conversation state for storage in an external
// key/value bag (for example a web framework's session object).
type Snapshot struct {
	History []Message `json:"history"`
	// LastActivity is epoch seconds, or null when the session was never
	// touched.
	LastActivity *int64 `json:"last_activity"`
}

// Snapshot captures the current history and session clock.
func (s *Service) Snapshot() Snapshot {
	snap := Snapshot{History: s.history.All()}
	if la := s.session.LastActivity(); la != nil {
		secs := la.Unix()
		snap.LastActivity = &secs
	}
	return snap
}

// Restore replaces the history and session clock with the snapshot's state.
func (s *Service) Restore(snap Snapshot) {
	s.history.Clear()
	for _, msg := range snap.History {
		s.history.Append(msg)
	}
	if snap.LastActivity == nil {
		s.session.SetLastActivity(nil)
		return
	}
	t := time.Unix(*snap.LastActivity, 0)
	s.session.SetLastActivity(&t)
}
