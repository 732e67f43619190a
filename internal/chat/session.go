package chat

import "time"

// Session tracks the lifetime of one conversation, bounded by an inactivity
// timeout. It holds a single optional timestamp: the last user activity.
// Absence means "never touched", which is not expired.
//
// The clock source is injectable so tests can simulate elapsed time without
// sleeping.
type Session struct {
	timeout      time.Duration
	now          func() time.Time
	lastActivity *time.Time
}

// NewSession creates a session with the given inactivity timeout, using the
// wall clock.
func NewSession(timeout time.Duration) *Session {
	return NewSessionWithClock(timeout, time.Now)
}

// NewSessionWithClock creates a session with an explicit clock source.
func NewSessionWithClock(timeout time.Duration, now func() time.Time) *Session {
	return &Session{timeout: timeout, now: now}
}

// Touch records the current time as the last user activity.
func (s *Session) Touch() {
	t := s.now()
	s.lastActivity = &t
}

// IsExpired reports whether the session has been inactive for longer than
// the timeout. A session that was never touched is not expired.
func (s *Session) IsExpired() bool {
	if s.lastActivity == nil {
		return false
	}
	return s.now().Sub(*s.lastActivity) > s.timeout
}

// Reset clears the last-activity timestamp, returning the session to its
// never-touched state.
func (s *Session) Reset() {
	s.lastActivity = nil
}

// LastActivity returns the last-activity timestamp, or nil if the session
// was never touched. Used to persist session state across process
// boundaries.
func (s *Session) LastActivity() *time.Time {
	if s.lastActivity == nil {
		return nil
	}
	t := *s.lastActivity
	return &t
}

// SetLastActivity restores the last-activity timestamp from persisted
// session state. Passing nil restores the never-touched state.
func (s *Session) SetLastActivity(t *time.Time) {
	if t == nil {
		s.lastActivity = nil
		return
	}
	c := *t
	s.lastActivity = &c
}
