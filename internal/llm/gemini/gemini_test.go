package gemini

import (
	"testing"

	"google.golang.org/genai"

	"github.com/learnpath/learnpath/internal/chat"
	"github.com/learnpath/learnpath/internal/llm"
	applog "github.com/learnpath/learnpath/internal/log"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := Config{
		APIKey:       "AIzaSy-test",
		ModelName:    "gemini-2.5-flash",
		SystemPrompt: DefaultSystemPrompt,
		Logger:       applog.NewNop(),
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"missing api key", func(c *Config) { c.APIKey = "  " }, false},
		{"missing model", func(c *Config) { c.ModelName = "" }, false},
		{"missing system prompt", func(c *Config) { c.SystemPrompt = "" }, false},
		{"missing logger", func(c *Config) { c.Logger = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.ok && err != nil {
				t.Errorf("validate() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("validate() accepted invalid config")
			}
			if !tt.ok && tt.name != "missing logger" && !llm.IsValidation(err) {
				t.Errorf("validate() = %v, want validation error", err)
			}
		})
	}
}

func TestRoleMapping(t *testing.T) {
	t.Parallel()

	history := []chat.Message{
		chat.NewUserMessage("câu hỏi"),
		chat.NewAssistantMessage("câu trả lời"),
		{Role: chat.RoleSystem, Content: "chỉ dẫn"},
		{Role: chat.Role("unknown"), Content: "lạ"},
	}

	contents := toGenaiHistory(history)
	if len(contents) != 4 {
		t.Fatalf("len = %d, want 4", len(contents))
	}

	wantRoles := []genai.Role{genai.RoleUser, genai.RoleModel, genai.RoleUser, genai.RoleUser}
	for i, c := range contents {
		if genai.Role(c.Role) != wantRoles[i] {
			t.Errorf("content %d role = %q, want %q", i, c.Role, wantRoles[i])
		}
	}
}

func TestRoleMappingIsExplicit(t *testing.T) {
	t.Parallel()

	// The table must cover every declared conversation role.
	for _, role := range []chat.Role{chat.RoleUser, chat.RoleAssistant, chat.RoleSystem} {
		if _, ok := roleMapping[role]; !ok {
			t.Errorf("role %q missing from mapping table", role)
		}
	}
	if roleMapping[chat.RoleAssistant] != genai.RoleModel {
		t.Error("assistant must map to the model role")
	}
}
