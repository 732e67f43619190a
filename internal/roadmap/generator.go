package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/learnpath/learnpath/internal/llm"
	applog "github.com/learnpath/learnpath/internal/log"
)

// CodeGenerationFailed is the validation-error code raised when no attempt
// produced parseable, schema-valid output.
const CodeGenerationFailed = "ROADMAP_GENERATION_FAILED"

// DefaultMaxAttempts bounds generation attempts per request.
const DefaultMaxAttempts = 2

// DefaultDurationWeeks is the fallback duration when the caller supplies
// none and no custom heuristic is configured.
const DefaultDurationWeeks = 8

// TextGenerator is the one-shot generation capability the generator needs.
// Satisfied by the chat client.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Config contains the parameters for a Generator.
type Config struct {
	Client TextGenerator
	Logger applog.Logger

	// MaxAttempts bounds generation attempts (zero uses DefaultMaxAttempts).
	MaxAttempts int

	// DurationFn derives a duration in weeks from the profile when the
	// caller supplies none. Nil uses the fixed DefaultDurationWeeks.
	DurationFn func(UserProfile) int
}

// Generator builds a structured-output prompt from a user profile, invokes
// one-shot generation, and parses and validates the result into a Roadmap,
// retrying on decode or schema failure up to a bounded attempt count.
type Generator struct {
	client      TextGenerator
	logger      applog.Logger
	maxAttempts int
	durationFn  func(UserProfile) int
}

// NewGenerator creates a Generator from cfg.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.Client == nil {
		return nil, errors.New("text generator is required")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	durationFn := cfg.DurationFn
	if durationFn == nil {
		durationFn = func(UserProfile) int { return DefaultDurationWeeks }
	}

	return &Generator{
		client:      cfg.Client,
		logger:      cfg.Logger,
		maxAttempts: maxAttempts,
		durationFn:  durationFn,
	}, nil
}

// Generate produces a validated Roadmap for profile. durationWeeks <= 0
// derives the duration via the configured heuristic.
//
// Each attempt renders a fresh prompt, calls one-shot generation (which owns
// its own transient-failure retry), decodes the output as JSON and validates
// it against the schema invariants. Decode and schema failures are logged
// and retried up to the attempt bound; the first success returns
// immediately. On exhaustion the terminal failure carries
// CodeGenerationFailed.
func (g *Generator) Generate(ctx context.Context, profile UserProfile, durationWeeks int) (*Roadmap, error) {
	if err := profile.Validate(); err != nil {
		return nil, &llm.ValidationError{Message: fmt.Sprintf("invalid profile: %v", err)}
	}

	duration := durationWeeks
	if duration <= 0 {
		duration = g.durationFn(profile)
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		prompt, err := buildPrompt(profile, duration)
		if err != nil {
			return nil, err
		}

		raw, err := g.client.GenerateText(ctx, prompt)
		if err != nil {
			g.logger.Warn("roadmap generation attempt failed",
				"attempt", attempt,
				"error", err)
			lastErr = err
			continue
		}

		rm, err := parseAndValidate(raw)
		if err != nil {
			g.logger.Warn("roadmap output rejected",
				"attempt", attempt,
				"error", err)
			lastErr = err
			continue
		}

		g.logger.Info("roadmap generated",
			"attempt", attempt,
			"topic", rm.Topic,
			"weeks", rm.DurationWeeks)
		return rm, nil
	}

	vErr := &llm.ValidationError{
		Code:    CodeGenerationFailed,
		Message: fmt.Sprintf("no schema-valid roadmap after %d attempts", g.maxAttempts),
	}
	return nil, fmt.Errorf("%w (last error: %v)", vErr, lastErr)
}

// parseAndValidate decodes raw model output into a Roadmap and checks the
// schema invariants. Stray markdown code fences are stripped before
// decoding; models occasionally wrap JSON despite instructions.
func parseAndValidate(raw string) (*Roadmap, error) {
	cleaned := stripCodeFence(raw)

	var rm Roadmap
	if err := json.Unmarshal([]byte(cleaned), &rm); err != nil {
		return nil, fmt.Errorf("decoding roadmap JSON: %w", err)
	}

	rm.applyDefaults()
	if err := rm.Validate(); err != nil {
		return nil, fmt.Errorf("validating roadmap: %w", err)
	}
	return &rm, nil
}

// stripCodeFence removes a surrounding ```/```json fence, if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
