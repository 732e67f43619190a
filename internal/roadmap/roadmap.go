// Package roadmap holds the learning-roadmap domain model and the generator
// that produces roadmaps from a user profile via one-shot LLM generation.
package roadmap

import (
	"errors"
	"fmt"
	"time"
)

// Field length bounds, enforced at validation time.
const (
	MaxTopicLength       = 200
	MaxDescriptionLength = 1000
	MaxGoalLength        = 500
)

// Sentinel errors for roadmap validation. Check with errors.Is.
var (
	// ErrEmptyTopic indicates a roadmap or milestone without a topic.
	ErrEmptyTopic = errors.New("empty topic")

	// ErrTopicTooLong indicates a topic over MaxTopicLength characters.
	ErrTopicTooLong = errors.New("topic too long")

	// ErrDescriptionTooLong indicates a description over MaxDescriptionLength.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrInvalidDuration indicates a non-positive duration.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrMilestoneCountMismatch indicates the milestone count differs from
	// the duration in weeks.
	ErrMilestoneCountMismatch = errors.New("milestone count does not match duration")

	// ErrNonSequentialWeeks indicates milestone weeks are not exactly the
	// sequence 1..duration.
	ErrNonSequentialWeeks = errors.New("milestone weeks must be sequential starting from 1")

	// ErrNoResources indicates a milestone without any learning resource.
	ErrNoResources = errors.New("milestone has no resources")

	// ErrIncompleteResource indicates a resource missing title, url or type.
	ErrIncompleteResource = errors.New("incomplete resource")

	// ErrEmptyGoal indicates a profile without a learning goal.
	ErrEmptyGoal = errors.New("empty learning goal")

	// ErrGoalTooLong indicates a goal over MaxGoalLength characters.
	ErrGoalTooLong = errors.New("goal too long")

	// ErrIncompleteProfile indicates a profile missing level or time
	// commitment.
	ErrIncompleteProfile = errors.New("incomplete profile")
)

// Resource is one learning material inside a milestone.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"` // video, article, course, documentation...
}

// Milestone is one week's worth of topic, description and resources.
type Milestone struct {
	Week        int        `json:"week"`
	Topic       string     `json:"topic"`
	Description string     `json:"description"`
	Resources   []Resource `json:"resources"`
}

// Roadmap is a structured, week-indexed learning plan. Created by parsing
// model output; lives only as long as the request that produced it.
type Roadmap struct {
	Topic         string      `json:"topic"`
	Title         string      `json:"title,omitempty"`
	Description   string      `json:"description,omitempty"`
	DurationWeeks int         `json:"duration_weeks"`
	Milestones    []Milestone `json:"milestones"`
	Prerequisites []string    `json:"prerequisites,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// UserProfile is the collected learner information a roadmap is built from.
type UserProfile struct {
	Goal           string   `json:"goal"`
	CurrentLevel   string   `json:"current_level"`
	TimeCommitment string   `json:"time_commitment"`
	LearningStyle  string   `json:"learning_style,omitempty"`
	Background     string   `json:"background,omitempty"`
	Constraints    []string `json:"constraints,omitempty"`
}

// Validate checks the profile invariants: goal present and bounded, level
// and time commitment present.
func (p UserProfile) Validate() error {
	if p.Goal == "" {
		return ErrEmptyGoal
	}
	if len([]rune(p.Goal)) > MaxGoalLength {
		return fmt.Errorf("%w: %d > %d", ErrGoalTooLong, len([]rune(p.Goal)), MaxGoalLength)
	}
	if p.CurrentLevel == "" || p.TimeCommitment == "" {
		return ErrIncompleteProfile
	}
	return nil
}

// applyDefaults fills derivable fields: the display title defaults to the
// topic, the creation time to now.
func (r *Roadmap) applyDefaults() {
	if r.Title == "" {
		r.Title = r.Topic
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
}

// Validate checks the roadmap schema invariants:
//   - topic present and bounded
//   - positive duration
//   - milestone count equals duration
//   - milestone weeks are exactly the sequence 1..duration
//   - every milestone has a topic, a bounded description and at least one
//     complete resource
func (r *Roadmap) Validate() error {
	if r.Topic == "" {
		return ErrEmptyTopic
	}
	if len([]rune(r.Topic)) > MaxTopicLength {
		return fmt.Errorf("roadmap: %w: %d > %d", ErrTopicTooLong, len([]rune(r.Topic)), MaxTopicLength)
	}
	if len([]rune(r.Description)) > MaxDescriptionLength {
		return fmt.Errorf("roadmap: %w", ErrDescriptionTooLong)
	}
	if r.DurationWeeks <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, r.DurationWeeks)
	}
	if len(r.Milestones) != r.DurationWeeks {
		return fmt.Errorf("%w: %d milestones for %d weeks",
			ErrMilestoneCountMismatch, len(r.Milestones), r.DurationWeeks)
	}

	for i, m := range r.Milestones {
		if m.Week != i+1 {
			return fmt.Errorf("%w: position %d has week %d", ErrNonSequentialWeeks, i+1, m.Week)
		}
		if err := m.validate(); err != nil {
			return fmt.Errorf("week %d: %w", m.Week, err)
		}
	}
	return nil
}

func (m Milestone) validate() error {
	if m.Topic == "" {
		return ErrEmptyTopic
	}
	if len([]rune(m.Topic)) > MaxTopicLength {
		return ErrTopicTooLong
	}
	if len([]rune(m.Description)) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if len(m.Resources) == 0 {
		return ErrNoResources
	}
	for _, res := range m.Resources {
		if res.Title == "" || res.URL == "" || res.Type == "" {
			return fmt.Errorf("%w: %q", ErrIncompleteResource, res.Title)
		}
	}
	return nil
}
