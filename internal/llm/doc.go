// Package llm carries the error taxonomy and retry policy shared by
// LLM-provider bindings.
//
// Three failure classes exist, mirrored across the whole application:
//
//   - ValidationError: caller input or configuration is invalid. Never
//     retried.
//   - ServiceError: the remote call failed, transiently or permanently.
//     Retried per policy, then surfaced.
//   - anything else: unexpected. Never retried, always logged with full
//     context before translation to a user-facing message.
//
// Provider bindings live in subpackages (gemini); the chat core defines the
// client interface it consumes and only sees these error types.
package llm
