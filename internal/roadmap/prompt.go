package roadmap

import (
	"fmt"
	"strings"
	"text/template"
)

// notProvided is the placeholder substituted for absent optional profile
// fields, matching the product language.
const notProvided = "Không cung cấp"

// promptTemplate renders the roadmap generation prompt. The model is
// instructed to answer with bare JSON matching the Roadmap schema.
var promptTemplate = template.Must(template.New("roadmap").Parse(`Dựa trên thông tin sau của người dùng:
- Mục tiêu: {{.Goal}}
- Trình độ hiện tại: {{.Level}}
- Thời gian cam kết: {{.TimeCommitment}}
- Phong cách học: {{.LearningStyle}}
- Nền tảng: {{.Background}}
- Ràng buộc: {{.Constraints}}

Hãy tạo một lộ trình học tập chi tiết trong {{.DurationWeeks}} tuần.
YÊU CẦU QUAN TRỌNG:
1. Output phải là chuỗi JSON hợp lệ (không có markdown block ` + "```json" + `)
2. Format JSON phải khớp chính xác với cấu trúc sau:
{
    "topic": "Tên lộ trình",
    "duration_weeks": {{.DurationWeeks}},
    "milestones": [
        {
            "week": 1,
            "topic": "Chủ đề tuần 1",
            "description": "Mô tả ngắn gọn những gì cần học",
            "resources": [
                {
                    "title": "Tên tài liệu",
                    "url": "Link url thực tế (nếu biết) hoặc keyword tìm kiếm",
                    "type": "video/article/course"
                }
            ]
        }
    ]
}
3. Mỗi tuần từ 1 đến {{.DurationWeeks}} phải có đúng một milestone, mỗi milestone có ít nhất một resource
4. Nội dung phải bằng Tiếng Việt
`))

// promptInput is the data rendered into promptTemplate.
type promptInput struct {
	Goal           string
	Level          string
	TimeCommitment string
	LearningStyle  string
	Background     string
	Constraints    string
	DurationWeeks  int
}

// buildPrompt renders the generation prompt for profile and duration,
// substituting explicit "not provided" placeholders for absent optionals.
func buildPrompt(profile UserProfile, durationWeeks int) (string, error) {
	in := promptInput{
		Goal:           profile.Goal,
		Level:          profile.CurrentLevel,
		TimeCommitment: profile.TimeCommitment,
		LearningStyle:  orPlaceholder(profile.LearningStyle),
		Background:     orPlaceholder(profile.Background),
		DurationWeeks:  durationWeeks,
	}
	if len(profile.Constraints) > 0 {
		in.Constraints = strings.Join(profile.Constraints, ", ")
	} else {
		in.Constraints = notProvided
	}

	var sb strings.Builder
	if err := promptTemplate.Execute(&sb, in); err != nil {
		return "", fmt.Errorf("rendering roadmap prompt: %w", err)
	}
	return sb.String(), nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}
