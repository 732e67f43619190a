package roadmap

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validRoadmap(weeks int) *Roadmap {
	rm := &Roadmap{
		Topic:         "Học Python",
		DurationWeeks: weeks,
		CreatedAt:     time.Now(),
	}
	for w := 1; w <= weeks; w++ {
		rm.Milestones = append(rm.Milestones, Milestone{
			Week:        w,
			Topic:       "Chủ đề",
			Description: "Mô tả",
			Resources: []Resource{
				{Title: "Tài liệu", URL: "https://example.com", Type: "article"},
			},
		})
	}
	return rm
}

func TestRoadmapValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Roadmap)
		wantErr error
	}{
		{"valid", func(*Roadmap) {}, nil},
		{"empty topic", func(r *Roadmap) { r.Topic = "" }, ErrEmptyTopic},
		{"topic too long", func(r *Roadmap) { r.Topic = strings.Repeat("a", MaxTopicLength+1) }, ErrTopicTooLong},
		{"zero duration", func(r *Roadmap) { r.DurationWeeks = 0; r.Milestones = nil }, ErrInvalidDuration},
		{"negative duration", func(r *Roadmap) { r.DurationWeeks = -1; r.Milestones = nil }, ErrInvalidDuration},
		{"missing milestone", func(r *Roadmap) { r.Milestones = r.Milestones[:2] }, ErrMilestoneCountMismatch},
		{"weeks skip a number", func(r *Roadmap) { r.Milestones[2].Week = 4 }, ErrNonSequentialWeeks},
		{"weeks start at zero", func(r *Roadmap) {
			for i := range r.Milestones {
				r.Milestones[i].Week = i
			}
		}, ErrNonSequentialWeeks},
		{"duplicate week", func(r *Roadmap) { r.Milestones[1].Week = 1 }, ErrNonSequentialWeeks},
		{"milestone without topic", func(r *Roadmap) { r.Milestones[1].Topic = "" }, ErrEmptyTopic},
		{"milestone without resources", func(r *Roadmap) { r.Milestones[0].Resources = nil }, ErrNoResources},
		{"resource missing url", func(r *Roadmap) { r.Milestones[0].Resources[0].URL = "" }, ErrIncompleteResource},
		{"resource missing type", func(r *Roadmap) { r.Milestones[0].Resources[0].Type = "" }, ErrIncompleteResource},
		{"milestone description too long", func(r *Roadmap) {
			r.Milestones[0].Description = strings.Repeat("a", MaxDescriptionLength+1)
		}, ErrDescriptionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rm := validRoadmap(3)
			tt.mutate(rm)
			err := rm.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRoadmapApplyDefaults(t *testing.T) {
	t.Parallel()

	rm := &Roadmap{Topic: "Go"}
	rm.applyDefaults()
	if rm.Title != "Go" {
		t.Errorf("Title = %q, want topic fallback", rm.Title)
	}
	if rm.CreatedAt.IsZero() {
		t.Error("CreatedAt not defaulted")
	}

	explicit := &Roadmap{Topic: "Go", Title: "Lộ trình Go"}
	explicit.applyDefaults()
	if explicit.Title != "Lộ trình Go" {
		t.Errorf("Title = %q, explicit value overwritten", explicit.Title)
	}
}

func TestUserProfileValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile UserProfile
		wantErr error
	}{
		{"valid", UserProfile{Goal: "học Go", CurrentLevel: "beginner", TimeCommitment: "1h/ngày"}, nil},
		{"missing goal", UserProfile{CurrentLevel: "beginner", TimeCommitment: "1h"}, ErrEmptyGoal},
		{"goal too long", UserProfile{Goal: strings.Repeat("a", MaxGoalLength+1), CurrentLevel: "x", TimeCommitment: "y"}, ErrGoalTooLong},
		{"missing level", UserProfile{Goal: "học Go", TimeCommitment: "1h"}, ErrIncompleteProfile},
		{"missing time", UserProfile{Goal: "học Go", CurrentLevel: "beginner"}, ErrIncompleteProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.profile.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
