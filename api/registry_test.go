package api

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryReusesEntries(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, &fakeLLM{})
	id := uuid.New()

	first, err := reg.get(id)
	require.NoError(t, err)
	second, err := reg.get(id)
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := reg.get(uuid.New())
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestSessionIDValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		ok     bool
	}{
		{"valid uuid", uuid.NewString(), true},
		{"missing", "", false},
		{"garbage", "abc", false},
		{"almost uuid", "123e4567-e89b-12d3-a456-42661417400", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set(sessionIDHeader, tt.header)
			}
			_, err := sessionID(req)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
