package chat

import (
	"context"
	"fmt"
	"strings"

	applog "github.com/learnpath/learnpath/internal/log"
)

// Intent classifies what the user wants from a message.
type Intent string

// Intent values.
const (
	IntentChat    Intent = "chat"
	IntentRoadmap Intent = "roadmap"
)

// intentPrompt asks the model for a single-word classification.
const intentPrompt = `Phân loại intent của người dùng. Chỉ trả về MỘT trong các giá trị:

- ROADMAP: người dùng muốn tạo lộ trình học, kế hoạch học, learning path
- CHAT: trò chuyện thông thường

User: %s

Trả về duy nhất 1 từ:`

// IntentDetector classifies a user message as a roadmap request or plain
// chat using one-shot generation. Fail-safe: empty input or any LLM failure
// classifies as chat.
type IntentDetector struct {
	client Client
	logger applog.Logger
}

// NewIntentDetector creates a detector around the given client.
func NewIntentDetector(client Client, logger applog.Logger) *IntentDetector {
	return &IntentDetector{client: client, logger: logger}
}

// Detect classifies text. Never returns an error: failures degrade to
// IntentChat so a broken classifier cannot block the conversation.
func (d *IntentDetector) Detect(ctx context.Context, text string) Intent {
	if d.IsRoadmapIntent(ctx, text) {
		return IntentRoadmap
	}
	return IntentChat
}

// IsRoadmapIntent reports whether text expresses intent to create or get a
// learning roadmap.
func (d *IntentDetector) IsRoadmapIntent(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	response, err := d.client.GenerateText(ctx, fmt.Sprintf(intentPrompt, text))
	if err != nil {
		d.logger.Warn("intent detection failed, treating as chat", "error", err)
		return false
	}

	return strings.Contains(strings.ToUpper(strings.TrimSpace(response)), "ROADMAP")
}
