package chat

// History is the in-memory, append-only log of conversation turns for one
// session. Ordering is insertion order, oldest first. Operations are total:
// there are no failure modes.
//
// History is not safe for concurrent use. Each session must own its own
// instance; isolation across sessions is the deployment's responsibility.
type History struct {
	messages []Message
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Append adds a message at the end of the log.
func (h *History) Append(msg Message) {
	h.messages = append(h.messages, msg)
}

// All returns a copy of the full log in chronological order. Mutating the
// returned slice cannot corrupt internal state.
func (h *History) All() []Message {
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Recent returns a copy of the most recent n messages, oldest first.
// Returns everything when n exceeds the current length; nil when n <= 0.
func (h *History) Recent(n int) []Message {
	if n <= 0 {
		return nil
	}
	if n > len(h.messages) {
		n = len(h.messages)
	}
	out := make([]Message, n)
	copy(out, h.messages[len(h.messages)-n:])
	return out
}

// Len reports the number of stored messages.
func (h *History) Len() int {
	return len(h.messages)
}

// Clear removes all messages.
func (h *History) Clear() {
	h.messages = nil
}
