package chat

// Event is one item in the ordered sequence produced by
// Service.HandleMessage. The set is closed: consumers switch over the
// concrete types and the unexported marker method keeps external packages
// from adding variants.
//
// Events are immutable values; a StatusUpdate is transient UI state
// superseded by the next event, ErrorOccurred and SessionExpired are
// terminal for the current request.
type Event interface {
	isEvent()
}

// TextChunk is a fragment of generated content.
type TextChunk struct {
	Text string
}

// Status enumerates the transient UI phases reported by StatusUpdate.
type Status string

// Status values.
const (
	StatusLoading            Status = "loading"
	StatusAnalyzingProfile   Status = "analyzing_profile"
	StatusGeneratingRoadmap  Status = "generating_roadmap"
)

// StatusUpdate reports a transient UI-facing state with display text.
type StatusUpdate struct {
	Status  Status
	Message string
}

// ErrorType classifies a surfaced failure.
type ErrorType string

// ErrorType values.
const (
	ErrorValidation ErrorType = "validation"
	ErrorLLM        ErrorType = "llm"
	ErrorUnexpected ErrorType = "unexpected"
)

// ErrorOccurred reports a failure with its classification and the resolved
// user-facing message. Terminal for the current request.
type ErrorOccurred struct {
	Type        ErrorType
	UserMessage string
}

// SessionExpired signals that the session timed out and history was
// cleared. Terminal for the current request.
type SessionExpired struct {
	Message string
}

func (TextChunk) isEvent()      {}
func (StatusUpdate) isEvent()   {}
func (ErrorOccurred) isEvent()  {}
func (SessionExpired) isEvent() {}
