// File: tahanansafe/services/inbox/inbox_test.go
package inbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tahanansafe/api"
	"tahanansafe/session"
)

func newTestService(t *testing.T, handler http.Handler, token string) *DefaultInboxService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.Open(t.TempDir())
	require.NoError(t, err)
	if token != "" {
		require.NoError(t, store.Save(session.Session{AccessToken: token}))
	}
	return &DefaultInboxService{
		Client:   api.New(server.URL, 5*time.Second, 0),
		Sessions: store,
	}
}

func TestPrecondition_NoTokenNoNetwork(t *testing.T) {
	called := false
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}), "")

	ctx := context.Background()
	_, listErr := svc.List(ctx, 10)
	require.ErrorIs(t, listErr, ErrNotAuthenticated)
	require.ErrorIs(t, svc.MarkAllRead(ctx), ErrNotAuthenticated)
	require.ErrorIs(t, svc.ClearAll(ctx), ErrNotAuthenticated)
	require.ErrorIs(t, svc.ToggleRead(ctx, "n1", false), ErrNotAuthenticated)
	_, threadErr := svc.Thread(ctx, "r1")
	require.ErrorIs(t, threadErr, ErrNotAuthenticated)

	assert.False(t, called, "missing token must not trigger a network call")
}

func TestList(t *testing.T) {
	payload := `{"notifications": [
		{"id": "n1", "type": "alert", "title": "Curfew", "message": "...", "unread": true},
		{"id": "n2", "type": "report", "title": "Update", "message": "...", "unread": false, "incidentId": "inc-1"}
	]}`
	mux := http.NewServeMux()
	mux.HandleFunc("/api/mobile/v1/notifications/my", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer tok1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	})

	svc := newTestService(t, mux, "tok1")
	items, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "n1", items[0].ID)
	assert.True(t, items[0].Unread)
	assert.Equal(t, "inc-1", items[1].IncidentID)
}

func TestList_BareArray(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/mobile/v1/notifications/my", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "n1", "type": "system", "title": "Hi", "message": "..."}]`))
	})

	svc := newTestService(t, mux, "tok1")
	items, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestToggleRead(t *testing.T) {
	var method string
	var body map[string]bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/mobile/v1/notifications/n1/read", func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ok"}`))
	})

	svc := newTestService(t, mux, "tok1")
	require.NoError(t, svc.ToggleRead(context.Background(), "n1", true))
	assert.Equal(t, http.MethodPatch, method)
	assert.True(t, body["unread"])
}

func TestThreadFetchAndPost(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/mobile/reports/r1/threads", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"messages": [
				{"_id": "m1", "reportId": "r1", "senderRole": "staff", "senderName": "Desk", "text": "Received."}
			]}`))
		case http.MethodPost:
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			json.NewEncoder(w).Encode(map[string]string{
				"_id": "m2", "reportId": "r1", "senderRole": "resident", "text": body["text"],
			})
		}
	})

	svc := newTestService(t, mux, "tok1")

	messages, err := svc.Thread(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "staff", messages[0].SenderRole)

	posted, err := svc.PostThreadMessage(context.Background(), "r1", "  thank you  ")
	require.NoError(t, err)
	assert.Equal(t, "m2", posted.ID)
	assert.Equal(t, "thank you", posted.Text, "text is trimmed before posting")

	_, err = svc.PostThreadMessage(context.Background(), "r1", "   ")
	require.Error(t, err)
}
