package chat

import (
	"testing"
	"time"
)

// fakeClock is an adjustable time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSessionNeverTouchedIsNotExpired(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Now()}
	s := NewSessionWithClock(30*time.Minute, clock.Now)

	clock.Advance(24 * time.Hour)
	if s.IsExpired() {
		t.Error("never-touched session reported expired")
	}
}

func TestSessionExpiresAfterTimeout(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Now()}
	s := NewSessionWithClock(30*time.Minute, clock.Now)
	s.Touch()

	clock.Advance(30 * time.Minute)
	if s.IsExpired() {
		t.Error("expired exactly at the timeout boundary; expiry requires strictly greater")
	}

	clock.Advance(time.Second)
	if !s.IsExpired() {
		t.Error("not expired past the timeout")
	}
}

func TestSessionTouchDefersExpiry(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Now()}
	s := NewSessionWithClock(30*time.Minute, clock.Now)
	s.Touch()

	clock.Advance(29 * time.Minute)
	s.Touch()
	clock.Advance(29 * time.Minute)

	if s.IsExpired() {
		t.Error("session expired despite recent activity")
	}
}

func TestSessionReset(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Now()}
	s := NewSessionWithClock(time.Minute, clock.Now)
	s.Touch()
	clock.Advance(time.Hour)

	s.Reset()
	if s.IsExpired() {
		t.Error("reset session reported expired")
	}
	if s.LastActivity() != nil {
		t.Error("reset session retains last activity")
	}
}

func TestSessionLastActivityRoundTrip(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	s := NewSessionWithClock(time.Minute, clock.Now)
	s.Touch()

	la := s.LastActivity()
	if la == nil {
		t.Fatal("LastActivity = nil after Touch")
	}

	restored := NewSessionWithClock(time.Minute, clock.Now)
	restored.SetLastActivity(la)
	if got := restored.LastActivity(); got == nil || !got.Equal(*la) {
		t.Errorf("restored last activity = %v, want %v", got, la)
	}

	restored.SetLastActivity(nil)
	if restored.LastActivity() != nil {
		t.Error("SetLastActivity(nil) did not clear state")
	}
}
