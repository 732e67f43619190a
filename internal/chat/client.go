package chat

import (
	"context"
	"iter"

	"github.com/learnpath/learnpath/internal/i18n"
)

// Client is the capability set the core requires from an LLM provider.
// Bindings live outside this package (see internal/llm/gemini); the core
// depends only on this interface.
//
// GenerateText performs a one-shot completion. Implementations own the
// retry policy for transient remote failures (bounded exponential backoff)
// and fail with llm.ValidationError for an empty prompt or llm.ServiceError
// for remote failure.
//
// StreamChat starts a streaming exchange: history is the conversation
// context (oldest first), message is the new user turn. The sequence yields
// text fragments; a non-nil error terminates it, either before the first
// fragment or mid-stream. Implementations convert core roles to the remote
// role model with an explicit mapping table and do not retry — streaming
// retry policy belongs to the Orchestrator.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	StreamChat(ctx context.Context, history []Message, message string) iter.Seq2[string, error]
}

// Messages resolves abstract message keys to localized display text.
// Satisfied by i18n.Provider.
type Messages interface {
	Get(key i18n.Key) string
	Format(key i18n.Key, args ...any) string
}
