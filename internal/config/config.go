// Package config provides application configuration management with
// multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (runtime override)
//  2. Config file (~/.learnpath/config.yaml, or ./config.yaml)
//  3. .env file in the working directory (loaded into the environment)
//  4. Default values
//
// Error handling uses sentinel errors checked with errors.Is(); wrap with
// context using fmt.Errorf("%w: details", ErrXxx).
//
// Security: the API key is never stored in the config file, only read from
// the environment, and masked in MarshalJSON/String.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	// ErrConfigNil indicates the configuration is nil.
	ErrConfigNil = errors.New("configuration is nil")

	// ErrMissingAPIKey indicates the Gemini API key is missing.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidAPIKey indicates the Gemini API key has the wrong shape.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrInvalidModelName indicates the model name is invalid.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrInvalidTemperature indicates the temperature value is out of range.
	ErrInvalidTemperature = errors.New("invalid temperature")

	// ErrInvalidLanguage indicates an unsupported interface language.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrInvalidMaxInputLength indicates a non-positive input length limit.
	ErrInvalidMaxInputLength = errors.New("invalid max input length")

	// ErrInvalidContextMessages indicates a non-positive context window size.
	ErrInvalidContextMessages = errors.New("invalid context messages")

	// ErrInvalidTimeout indicates a non-positive timeout.
	ErrInvalidTimeout = errors.New("invalid timeout")

	// ErrInvalidRoadmapWeeks indicates a roadmap duration out of range.
	ErrInvalidRoadmapWeeks = errors.New("invalid roadmap weeks")
)

// Gemini API keys start with this prefix. Checked at validation time to
// fail fast on keys pasted from the wrong console.
const apiKeyPrefix = "AIzaSy"

// API key length bounds.
const (
	minAPIKeyLength = 30
	maxAPIKeyLength = 50
)

// Config stores application configuration.
// SECURITY: sensitive fields are explicitly masked in MarshalJSON().
type Config struct {
	// Model configuration
	ModelName   string  `mapstructure:"model_name" json:"model_name"`
	Temperature float32 `mapstructure:"temperature" json:"temperature"`

	// Interface language ("vi" or "en")
	Language string `mapstructure:"language" json:"language"`

	// Conversation limits
	MaxInputLength  int           `mapstructure:"max_input_length" json:"max_input_length"`
	ContextMessages int           `mapstructure:"context_messages" json:"context_messages"`
	SessionTimeout  time.Duration `mapstructure:"session_timeout" json:"session_timeout"`

	// LLM call timeouts
	RequestTimeout time.Duration `mapstructure:"request_timeout" json:"request_timeout"`
	StreamTimeout  time.Duration `mapstructure:"stream_timeout" json:"stream_timeout"`

	// Roadmap generation
	RoadmapMaxAttempts  int `mapstructure:"roadmap_max_attempts" json:"roadmap_max_attempts"`
	RoadmapDefaultWeeks int `mapstructure:"roadmap_default_weeks" json:"roadmap_default_weeks"`

	// HTTP server (serve mode only)
	HTTPAddr string `mapstructure:"http_addr" json:"http_addr"`

	// Logging
	LogLevel string `mapstructure:"log_level" json:"log_level"`
	LogJSON  bool   `mapstructure:"log_json" json:"log_json"`
	LogFile  string `mapstructure:"log_file" json:"log_file"`

	// GeminiAPIKey comes from the GEMINI_API_KEY environment variable only,
	// never from the config file.
	// SENSITIVE: masked in MarshalJSON.
	GeminiAPIKey string `mapstructure:"-" json:"gemini_api_key"`
}

// Load loads configuration.
// Priority: environment variables > configuration file > .env > defaults.
func Load() (*Config, error) {
	// .env is a convenience for local development; a missing file is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".learnpath"))
	}
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is not an error, defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	cfg.GeminiAPIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("model_name", "gemini-2.5-flash")
	v.SetDefault("temperature", 0.7)
	v.SetDefault("language", "vi")

	v.SetDefault("max_input_length", 2000)
	v.SetDefault("context_messages", 20)
	v.SetDefault("session_timeout", 30*time.Minute)

	v.SetDefault("request_timeout", 60*time.Second)
	v.SetDefault("stream_timeout", 120*time.Second)

	v.SetDefault("roadmap_max_attempts", 2)
	v.SetDefault("roadmap_default_weeks", 8)

	v.SetDefault("http_addr", ":8080")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("log_file", "")
}

// bindEnvVariables binds runtime override variables explicitly.
// GEMINI_API_KEY is read directly from the environment, not via viper.
func bindEnvVariables(v *viper.Viper) {
	// Hardcoded keys cannot fail to bind; a panic here is a bug.
	mustBind := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("model_name", "LEARNPATH_MODEL_NAME")
	mustBind("language", "LEARNPATH_LANG")
	mustBind("http_addr", "LEARNPATH_HTTP_ADDR")
	mustBind("log_level", "LEARNPATH_LOG_LEVEL")
	mustBind("log_json", "LEARNPATH_LOG_JSON")
	mustBind("log_file", "LEARNPATH_LOG_FILE")
}

// Validate validates configuration values.
// Returns sentinel errors that can be checked with errors.Is().
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}

	if c.GeminiAPIKey == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY environment variable is required\n"+
			"Get your API key at: https://ai.google.dev/gemini-api/docs/api-key",
			ErrMissingAPIKey)
	}
	if !strings.HasPrefix(c.GeminiAPIKey, apiKeyPrefix) {
		return fmt.Errorf("%w: expected %q prefix", ErrInvalidAPIKey, apiKeyPrefix)
	}
	if n := len(c.GeminiAPIKey); n < minAPIKeyLength || n > maxAPIKeyLength {
		return fmt.Errorf("%w: length %d outside [%d, %d]",
			ErrInvalidAPIKey, n, minAPIKeyLength, maxAPIKeyLength)
	}

	if c.ModelName == "" {
		return fmt.Errorf("%w: model_name cannot be empty", ErrInvalidModelName)
	}

	// Temperature range per the Gemini API documentation.
	if c.Temperature < 0.0 || c.Temperature > 2.0 {
		return fmt.Errorf("%w: must be between 0.0 and 2.0, got %.2f", ErrInvalidTemperature, c.Temperature)
	}

	if c.Language != "vi" && c.Language != "en" {
		return fmt.Errorf("%w: %q, must be \"vi\" or \"en\"", ErrInvalidLanguage, c.Language)
	}

	if c.MaxInputLength < 1 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidMaxInputLength, c.MaxInputLength)
	}
	if c.ContextMessages < 1 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidContextMessages, c.ContextMessages)
	}

	if c.SessionTimeout <= 0 {
		return fmt.Errorf("%w: session_timeout must be positive, got %s", ErrInvalidTimeout, c.SessionTimeout)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request_timeout must be positive, got %s", ErrInvalidTimeout, c.RequestTimeout)
	}
	if c.StreamTimeout <= 0 {
		return fmt.Errorf("%w: stream_timeout must be positive, got %s", ErrInvalidTimeout, c.StreamTimeout)
	}

	if c.RoadmapDefaultWeeks < 1 || c.RoadmapDefaultWeeks > 52 {
		return fmt.Errorf("%w: must be between 1 and 52, got %d", ErrInvalidRoadmapWeeks, c.RoadmapDefaultWeeks)
	}

	return nil
}

// maskedValue is the placeholder for masked sensitive data. Full-width
// blocks avoid the substring leaks that "****" style placeholders allow.
const maskedValue = "████████"

// maskSecret masks a secret string for safe logging. Secrets of 8 bytes or
// fewer are fully masked; longer ones keep the first and last 2 characters
// for debug utility.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return maskedValue
	}
	return s[:2] + "<" + maskedValue + ">" + s[len(s)-2:]
}

// MarshalJSON implements json.Marshaler with explicit sensitive field
// masking. When adding new sensitive fields, update this method.
func (c Config) MarshalJSON() ([]byte, error) {
	type alias Config
	a := alias(c)
	a.GeminiAPIKey = maskSecret(a.GeminiAPIKey)
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// String implements Stringer to prevent accidental printing of secrets.
func (c Config) String() string {
	data, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(data)
}
