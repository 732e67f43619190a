package api

import (
	"context"
	"iter"
	"testing"

	"github.com/learnpath/learnpath/internal/chat"
	"github.com/learnpath/learnpath/internal/i18n"
	applog "github.com/learnpath/learnpath/internal/log"
)

// fakeLLM scripts the LLM client for handler tests. Every streaming call
// replays the same chunks then the terminal error, every one-shot call
// returns the same response.
type fakeLLM struct {
	chunks    []string
	streamErr error

	response    string
	generateErr error

	streamCalls   int
	generateCalls int
}

func (f *fakeLLM) GenerateText(context.Context, string) (string, error) {
	f.generateCalls++
	return f.response, f.generateErr
}

func (f *fakeLLM) StreamChat(context.Context, []chat.Message, string) iter.Seq2[string, error] {
	f.streamCalls++
	return func(yield func(string, error) bool) {
		for _, c := range f.chunks {
			if !yield(c, nil) {
				return
			}
		}
		if f.streamErr != nil {
			yield("", f.streamErr)
		}
	}
}

// newTestRegistry builds a registry whose sessions run against client.
func newTestRegistry(t *testing.T, client chat.Client) *registry {
	t.Helper()
	return newRegistry(func() (*chat.Service, error) {
		return chat.New(chat.Config{
			Client:   client,
			Messages: i18n.Provider{},
			Logger:   applog.NewNop(),
		})
	})
}
