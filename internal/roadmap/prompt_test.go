package roadmap

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	profile := UserProfile{
		Goal:           "Học Go",
		CurrentLevel:   "Trung cấp",
		TimeCommitment: "2 giờ mỗi ngày",
		LearningStyle:  "video",
		Background:     "biết Python",
		Constraints:    []string{"chỉ học buổi tối", "miễn phí"},
	}

	prompt, err := buildPrompt(profile, 6)
	if err != nil {
		t.Fatalf("buildPrompt: %v", err)
	}

	for _, want := range []string{
		"Học Go",
		"Trung cấp",
		"2 giờ mỗi ngày",
		"video",
		"biết Python",
		"chỉ học buổi tối, miễn phí",
		"trong 6 tuần",
		`"duration_weeks": 6`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptPlaceholders(t *testing.T) {
	t.Parallel()

	profile := UserProfile{
		Goal:           "Học Go",
		CurrentLevel:   "Mới",
		TimeCommitment: "1 giờ",
	}

	prompt, err := buildPrompt(profile, 4)
	if err != nil {
		t.Fatalf("buildPrompt: %v", err)
	}
	if got := strings.Count(prompt, notProvided); got != 3 {
		t.Errorf("placeholder count = %d, want 3 (style, background, constraints)", got)
	}
}
