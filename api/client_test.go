// File: tahanansafe/api/client_test.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return New(server.URL, 5*time.Second, 0), server
}

func TestRequest_AttachesBearerAndJSON(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})
	defer server.Close()

	raw, err := client.Request(context.Background(), http.MethodPost, "/x",
		map[string]string{"a": "b"}, WithBearer("tok1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.Equal(t, "Bearer tok1", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "b", gotBody["a"])
}

func TestRequest_WrapsNonJSONResponse(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("pong"))
	})
	defer server.Close()

	raw, err := client.Request(context.Background(), http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"pong"}`, string(raw))
}

func TestRequest_ErrorMessagePreference(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{"message_field", "application/json", `{"message":"bad otp"}`, "bad otp"},
		{"error_field", "application/json", `{"error":"expired"}`, "expired"},
		{"payload_serialized", "application/json", `{"code":42}`, `{"code":42}`},
		{"raw_text", "text/plain", "gateway timeout", "gateway timeout"},
		{"empty_body", "text/plain", "", "request failed with status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tt.body))
			})
			defer server.Close()

			_, err := client.Request(context.Background(), http.MethodGet, "/x", nil)
			require.Error(t, err)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestRequest_NetworkErrorNamesBaseURL(t *testing.T) {
	// A server that is already closed never answers.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	client := New(base, 2*time.Second, 0)
	_, err := client.Request(context.Background(), http.MethodGet, "/x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), base,
		"transport failures must name the configured base URL")

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "a transport failure is not an API error")
}
