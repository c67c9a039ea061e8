package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, incoming string) (seen string, echoed string) {
	t.Helper()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	return seen, w.Header().Get(RequestIDHeader)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	seen, echoed := serveWithRequestID(t, "")

	assert.Equal(t, seen, echoed)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	seen, echoed := serveWithRequestID(t, "req-abc-123")

	assert.Equal(t, "req-abc-123", seen)
	assert.Equal(t, "req-abc-123", echoed)
}

func TestRequestID_ReplacesMalformed(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "too long", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "contains space", incoming: "bad id"},
		{name: "non ascii", incoming: "idé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen, echoed := serveWithRequestID(t, tt.incoming)
			assert.NotEqual(t, tt.incoming, seen)
			assert.Equal(t, seen, echoed)
		})
	}
}

func TestGetRequestID_NotSet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetRequestID(req))
}
