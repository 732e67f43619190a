package chat

import (
	"context"
	"iter"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// scriptedStream is one StreamChat invocation's behavior: chunks delivered
// in order, then an optional terminal error.
type scriptedStream struct {
	chunks []string
	err    error
}

// fakeClient scripts the LLM client for tests. Each StreamChat call consumes
// the next scripted stream; calls past the script yield nothing.
type fakeClient struct {
	generateFn func(prompt string) (string, error)
	streams    []scriptedStream

	generateCalls int
	streamCalls   int
	prompts       []string
	histories     [][]Message
	messages      []string
}

func (f *fakeClient) GenerateText(_ context.Context, prompt string) (string, error) {
	f.generateCalls++
	f.prompts = append(f.prompts, prompt)
	if f.generateFn == nil {
		return "", nil
	}
	return f.generateFn(prompt)
}

func (f *fakeClient) StreamChat(_ context.Context, history []Message, message string) iter.Seq2[string, error] {
	idx := f.streamCalls
	f.streamCalls++
	f.histories = append(f.histories, history)
	f.messages = append(f.messages, message)

	var s scriptedStream
	if idx < len(f.streams) {
		s = f.streams[idx]
	}
	return func(yield func(string, error) bool) {
		for _, c := range s.chunks {
			if !yield(c, nil) {
				return
			}
		}
		if s.err != nil {
			yield("", s.err)
		}
	}
}
