package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/learnpath/learnpath/internal/chat"
)

// sessionIDHeader carries the client's session identity. Must be a UUID;
// unknown IDs lazily get a fresh isolated session.
const sessionIDHeader = "X-Session-ID"

// entry pairs a per-session chat service with a mutex serializing access to
// it. The service itself is not safe for concurrent use.
type entry struct {
	mu  sync.Mutex
	svc *chat.Service
}

// serviceFactory creates a fresh conversation service for a new session.
type serviceFactory func() (*chat.Service, error)

// registry maps session IDs to their conversation services. Sessions are
// created on first use and isolated from each other.
type registry struct {
	newService serviceFactory

	mu      sync.Mutex
	entries map[uuid.UUID]*entry
}

func newRegistry(newService serviceFactory) *registry {
	return &registry{
		newService: newService,
		entries:    make(map[uuid.UUID]*entry),
	}
}

// get returns the entry for id, creating it on first use.
func (r *registry) get(id uuid.UUID) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[id]; ok {
		return e, nil
	}

	svc, err := r.newService()
	if err != nil {
		return nil, fmt.Errorf("creating session %s: %w", id, err)
	}
	e := &entry{svc: svc}
	r.entries[id] = e
	return e, nil
}

// sessionID extracts and validates the session identity header.
func sessionID(req *http.Request) (uuid.UUID, error) {
	raw := req.Header.Get(sessionIDHeader)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s header is required", sessionIDHeader)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a UUID: %w", sessionIDHeader, err)
	}
	return id, nil
}
