// Package gemini binds the chat client contract to the Gemini API via the
// google.golang.org/genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/learnpath/learnpath/internal/chat"
	"github.com/learnpath/learnpath/internal/llm"
	applog "github.com/learnpath/learnpath/internal/log"
)

// Default call timeouts, overridable via Config.
const (
	DefaultRequestTimeout = 60 * time.Second
	DefaultStreamTimeout  = 120 * time.Second
)

// roleMapping is the explicit table from core conversation roles to the
// Gemini two-party role model. Gemini only knows "user" and "model":
// assistant turns map to the model role, everything else speaks as the
// user. Never an implicit string comparison.
var roleMapping = map[chat.Role]genai.Role{
	chat.RoleUser:      genai.RoleUser,
	chat.RoleAssistant: genai.RoleModel,
	chat.RoleSystem:    genai.RoleUser,
}

// Config contains all required parameters for the Gemini client.
type Config struct {
	APIKey       string
	ModelName    string
	SystemPrompt string
	Logger       applog.Logger

	// Temperature for generation; zero keeps the model default.
	Temperature float32

	// Call timeouts (zero-value uses the defaults above). Enforced here via
	// context deadlines; the core passes them through untouched.
	RequestTimeout time.Duration
	StreamTimeout  time.Duration

	// Retry settings for one-shot generation (zero-value uses
	// llm.DefaultRetryConfig). Streaming is never retried here.
	Retry llm.RetryConfig

	// RateLimiter applies proactive rate limiting per attempt
	// (nil = 10 req/s sustained, burst 30).
	RateLimiter *rate.Limiter
}

// validate checks configuration before touching the SDK.
func (cfg Config) validate() error {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return llm.NewValidationError("gemini API key must not be empty")
	}
	if strings.TrimSpace(cfg.ModelName) == "" {
		return llm.NewValidationError("gemini model name must not be empty")
	}
	if strings.TrimSpace(cfg.SystemPrompt) == "" {
		return llm.NewValidationError("system prompt must not be empty")
	}
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	return nil
}

// Client implements chat.Client against the Gemini API.
type Client struct {
	genai          *genai.Client
	model          string
	genConfig      *genai.GenerateContentConfig
	logger         applog.Logger
	requestTimeout time.Duration
	streamTimeout  time.Duration
	retry          llm.RetryConfig
	limiter        *rate.Limiter
}

// New creates a Gemini-backed client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, llm.NewServiceError(llm.CodeInitFailed, "failed to init gemini client", err)
	}

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(cfg.SystemPrompt, genai.RoleUser),
	}
	if cfg.Temperature > 0 {
		genConfig.Temperature = genai.Ptr(cfg.Temperature)
	}

	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	streamTimeout := cfg.StreamTimeout
	if streamTimeout <= 0 {
		streamTimeout = DefaultStreamTimeout
	}
	retryCfg := cfg.Retry
	if retryCfg.MaxAttempts == 0 {
		retryCfg = llm.DefaultRetryConfig()
	}
	limiter := cfg.RateLimiter
	if limiter == nil {
		limiter = rate.NewLimiter(10, 30)
	}

	cfg.Logger.Info("gemini client initialized", "model", cfg.ModelName)

	return &Client{
		genai:          gc,
		model:          cfg.ModelName,
		genConfig:      genConfig,
		logger:         cfg.Logger,
		requestTimeout: requestTimeout,
		streamTimeout:  streamTimeout,
		retry:          retryCfg,
		limiter:        limiter,
	}, nil
}

// GenerateText generates a one-shot completion for prompt. Transient remote
// failures are retried with exponential backoff up to the configured
// attempt ceiling; each attempt waits on the rate limiter and runs under
// the request timeout.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", llm.NewValidationError("prompt must not be empty")
	}

	return llm.Retry(ctx, c.retry, c.logger, llm.Retryable, func(ctx context.Context) (string, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}

		callCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()

		resp, err := c.genai.Models.GenerateContent(callCtx, c.model, genai.Text(prompt), c.genConfig)
		if err != nil {
			return "", llm.NewServiceError(llm.CodeGenerationFailed, "failed to generate content", err)
		}

		text := strings.TrimSpace(resp.Text())
		if text == "" {
			return "", llm.NewServiceError(llm.CodeEmptyResponse, "gemini returned empty response", nil)
		}
		return text, nil
	})
}

// StreamChat streams a chat response for message with the given history as
// context. The sequence yields text fragments as they arrive; any failure
// terminates it with a ServiceError. No retries happen at this layer.
//
// The stream timeout covers the whole exchange. Abandoning the sequence
// cancels the underlying call, releasing the connection.
func (c *Client) StreamChat(ctx context.Context, history []chat.Message, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		msg := strings.TrimSpace(message)
		if msg == "" {
			yield("", llm.NewValidationError("new message must not be empty"))
			return
		}

		streamCtx, cancel := context.WithTimeout(ctx, c.streamTimeout)
		defer cancel()

		if err := c.limiter.Wait(streamCtx); err != nil {
			yield("", fmt.Errorf("rate limit wait: %w", err))
			return
		}

		session, err := c.genai.Chats.Create(streamCtx, c.model, c.genConfig, toGenaiHistory(history))
		if err != nil {
			yield("", llm.NewServiceError(llm.CodeStreamFailed, "failed to start chat stream", err))
			return
		}

		for resp, err := range session.SendMessageStream(streamCtx, genai.Part{Text: msg}) {
			if err != nil {
				yield("", llm.NewServiceError(llm.CodeStreamFailed, "failed to stream response", err))
				return
			}
			if text := resp.Text(); text != "" {
				if !yield(text, nil) {
					return
				}
			}
		}
	}
}

// toGenaiHistory converts core history into Gemini content, applying the
// role mapping table.
func toGenaiHistory(history []chat.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role, ok := roleMapping[m.Role]
		if !ok {
			role = genai.RoleUser
		}
		out = append(out, genai.NewContentFromText(m.Content, role))
	}
	return out
}
