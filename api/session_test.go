package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnpath/learnpath/internal/chat"
	"github.com/learnpath/learnpath/internal/i18n"
	applog "github.com/learnpath/learnpath/internal/log"
)

func newSessionServer(t *testing.T, client *fakeLLM) *http.ServeMux {
	t.Helper()
	reg := newTestRegistry(t, client)
	mux := http.NewServeMux()
	NewChatHandler(reg, nil, i18n.Provider{}, applog.NewNop()).RegisterRoutes(mux)
	NewSessionHandler(reg, applog.NewNop()).RegisterRoutes(mux)
	return mux
}

func doSession(mux *http.ServeMux, method, path, id string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(sessionIDHeader, id)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestSessionHistoryAfterTurn(t *testing.T) {
	t.Parallel()

	mux := newSessionServer(t, &fakeLLM{chunks: []string{"Xin chào"}})
	id := uuid.NewString()

	doSession(mux, http.MethodPost, "/api/chat/stream", id, `{"message": "chào bạn"}`)
	rec := doSession(mux, http.MethodGet, "/api/session/history", id, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Messages []chat.Message `json:"messages"`
		Total    int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, chat.RoleUser, resp.Messages[0].Role)
	assert.Equal(t, "chào bạn", resp.Messages[0].Content)
	assert.Equal(t, chat.RoleAssistant, resp.Messages[1].Role)
	assert.Equal(t, "Xin chào", resp.Messages[1].Content)
}

func TestSessionReset(t *testing.T) {
	t.Parallel()

	mux := newSessionServer(t, &fakeLLM{chunks: []string{"ok"}})
	id := uuid.NewString()

	doSession(mux, http.MethodPost, "/api/chat/stream", id, `{"message": "hello"}`)

	rec := doSession(mux, http.MethodPost, "/api/session/reset", id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doSession(mux, http.MethodGet, "/api/session/history", id, "")
	assert.Contains(t, rec.Body.String(), `"total":0`)

	// Reset is idempotent.
	rec = doSession(mux, http.MethodPost, "/api/session/reset", id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionSnapshotRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	mux := newSessionServer(t, &fakeLLM{chunks: []string{"ok"}})
	id := uuid.NewString()

	doSession(mux, http.MethodPost, "/api/chat/stream", id, `{"message": "hello"}`)

	rec := doSession(mux, http.MethodGet, "/api/session/snapshot", id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap chat.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Len(t, snap.History, 2)
	require.NotNil(t, snap.LastActivity)

	// Restore into a fresh session and read it back.
	other := uuid.NewString()
	rec = doSession(mux, http.MethodPost, "/api/session/restore", other, rec.Body.String())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doSession(mux, http.MethodGet, "/api/session/history", other, "")
	assert.Contains(t, rec.Body.String(), `"total":2`)
	assert.Contains(t, rec.Body.String(), "hello")
}

func TestSessionEndpointsRequireID(t *testing.T) {
	t.Parallel()

	mux := newSessionServer(t, &fakeLLM{})
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/session/history"},
		{http.MethodGet, "/api/session/snapshot"},
		{http.MethodPost, "/api/session/reset"},
		{http.MethodPost, "/api/session/restore"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equalf(t, http.StatusBadRequest, rec.Code, "%s %s", tc.method, tc.path)
	}
}
