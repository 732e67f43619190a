package i18n

import (
	"strings"
	"testing"
)

// allKeys is the complete key set; every language table must cover it.
var allKeys = []Key{
	KeyLLMError, KeyLLMStreamInterrupted, KeyUnexpectedError,
	KeyEmptyInput, KeyInputTooLong, KeySessionExpired, KeyFillProfile,
	KeyThinking,
	KeyProfileAnalyzing, KeyProfileExtracted,
	KeyRoadmapLoading, KeyRoadmapCreated, KeyRoadmapError,
	KeyRoadmapInvalidJSON, KeyRoadmapInvalidSchema, KeyRoadmapGenerationFailed,
	KeyAppName, KeyAppTagline, KeyWelcome, KeyWelcomeHelp, KeyGoodbye,
	KeyChatPrompt, KeyChatCleared, KeyRoadmapWeek, KeyRoadmapTitle,
}

func TestAllKeysTranslated(t *testing.T) {
	for _, lang := range []string{LangVI, LangEN} {
		for _, key := range allKeys {
			msg, ok := messages[lang][key]
			if !ok || msg == "" {
				t.Errorf("language %s missing key %q", lang, key)
			}
		}
	}
}

func TestInitFallsBackToVietnamese(t *testing.T) {
	defer Init(LangVI)

	tests := []struct {
		input string
		want  string
	}{
		{"vi", LangVI},
		{"VI-vn", LangVI},
		{"en", LangEN},
		{"English", LangEN},
		{"fr", LangVI},
		{"", LangVI},
	}
	for _, tt := range tests {
		Init(tt.input)
		if got := Language(); got != tt.want {
			t.Errorf("Init(%q): Language() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSprintfSubstitutes(t *testing.T) {
	defer Init(LangVI)
	Init(LangVI)

	got := Sprintf(KeyInputTooLong, 2000)
	if !strings.Contains(got, "2000") {
		t.Errorf("Sprintf(KeyInputTooLong) = %q, limit not substituted", got)
	}
}

func TestTUnknownKeyReturnsKey(t *testing.T) {
	if got := T(Key("no_such_key")); got != "no_such_key" {
		t.Errorf("T = %q, want the key itself", got)
	}
}

func TestProviderMatchesPackageFunctions(t *testing.T) {
	p := Provider{}
	if p.Get(KeyThinking) != T(KeyThinking) {
		t.Error("Provider.Get diverges from T")
	}
	if p.Format(KeyInputTooLong, 5) != Sprintf(KeyInputTooLong, 5) {
		t.Error("Provider.Format diverges from Sprintf")
	}
}
