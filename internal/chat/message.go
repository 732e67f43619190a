// Package chat implements the conversational core: the message store, the
// session clock, the event taxonomy, the streaming orchestrator and the
// application service that ties them into a single ordered event sequence
// per user turn.
package chat

import "time"

// Role identifies the author of a conversation turn.
//
// Roles are a fixed enumeration in the core. Each LLM-transport binding
// supplies its own explicit mapping table from these roles to the remote
// API's role model; the mapping is never an implicit string comparison in
// the core.
type Role string

// The three conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one conversation turn. Immutable once created; owned by the
// History store. Content is expected to be non-empty at creation time —
// callers are responsible, the store does not re-validate.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserMessage creates a user turn stamped with the current time.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content, Timestamp: time.Now()}
}

// NewAssistantMessage creates an assistant turn stamped with the current time.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content, Timestamp: time.Now()}
}
