// Package i18n maps abstract message keys to localized user-facing text.
//
// The chat core never hardcodes display strings: it asks for a Key and the
// presentation language decides the wording. Vietnamese is the default
// (the product ships in Vietnamese); English is available for development.
package i18n

import (
	"fmt"
	"os"
	"strings"
)

// Supported languages.
const (
	LangVI = "vi"
	LangEN = "en"
)

// Key identifies a user-facing message template.
type Key string

// Message keys. Every key must have a template in each language table.
const (
	// Errors
	KeyLLMError             Key = "llm_error"
	KeyLLMStreamInterrupted Key = "llm_stream_interrupted"
	KeyUnexpectedError      Key = "unexpected_error"

	// Validation
	KeyEmptyInput     Key = "empty_input"
	KeyInputTooLong   Key = "input_too_long"
	KeySessionExpired Key = "session_expired"
	KeyFillProfile    Key = "fill_profile"

	// UI state
	KeyThinking Key = "thinking"

	// Profile
	KeyProfileAnalyzing Key = "profile_analyzing"
	KeyProfileExtracted Key = "profile_extracted"

	// Roadmap
	KeyRoadmapLoading          Key = "roadmap_loading"
	KeyRoadmapCreated          Key = "roadmap_created"
	KeyRoadmapError            Key = "roadmap_error"
	KeyRoadmapInvalidJSON      Key = "roadmap_invalid_json"
	KeyRoadmapInvalidSchema    Key = "roadmap_invalid_schema"
	KeyRoadmapGenerationFailed Key = "roadmap_generation_failed"
)

// CLI surface keys, used only by cmd/.
const (
	KeyAppName      Key = "app.name"
	KeyAppTagline   Key = "app.tagline"
	KeyWelcome      Key = "welcome"
	KeyWelcomeHelp  Key = "welcome.help"
	KeyGoodbye      Key = "goodbye"
	KeyChatPrompt   Key = "chat.prompt"
	KeyChatCleared  Key = "chat.cleared"
	KeyRoadmapWeek  Key = "roadmap.week"
	KeyRoadmapTitle Key = "roadmap.title"
)

// currentLang holds the active language.
var currentLang = LangVI

// messages stores all translations, keyed by language then message key.
var messages = map[string]map[Key]string{}

// Init selects the active language. Unknown values fall back to Vietnamese.
// The LEARNPATH_LANG environment variable is consulted once at package load.
func Init(lang string) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "vi", "vi-vn", "vietnamese":
		currentLang = LangVI
	case "en", "en-us", "english":
		currentLang = LangEN
	default:
		currentLang = LangVI
	}
	loadMessages()
}

// Language returns the active language code.
func Language() string {
	return currentLang
}

// T returns the translated template for the given key.
// Falls back to Vietnamese, then to the key itself.
func T(key Key) string {
	if msg, ok := messages[currentLang][key]; ok {
		return msg
	}
	if msg, ok := messages[LangVI][key]; ok {
		return msg
	}
	return string(key)
}

// Sprintf returns the translated template formatted with args.
func Sprintf(key Key, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// Provider adapts the package-level tables to the message-provider contract
// consumed by the chat service (Get/Format). A value type: copies are free.
type Provider struct{}

// Get returns the message template for key.
func (Provider) Get(key Key) string { return T(key) }

// Format returns the message for key with args substituted.
func (Provider) Format(key Key, args ...any) string { return Sprintf(key, args...) }

func loadMessages() {
	loadVietnameseMessages()
	loadEnglishMessages()
}

func init() {
	if envLang := os.Getenv("LEARNPATH_LANG"); envLang != "" {
		Init(envLang)
	} else {
		Init(LangVI)
	}
}
