package reclamation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reclamation-actions/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	return NewClient(baseURL, 5*time.Second, logger.NewTestLogger(t))
}

func TestNewClient_StripsTrailingSlash(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:8000/api/")
	assert.Equal(t, "http://127.0.0.1:8000/api", c.BaseURL())
}

func TestCreate_Created(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reclamations/add/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "amira", payload["username"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"priority":"high","sentiment":"negative"}`))
	}))
	defer backend.Close()

	c := newTestClient(t, backend.URL)
	outcome, err := c.Create(context.Background(), &TicketRequest{
		Username: "amira",
		Message:  "broken order",
		Category: "Rasa Bot",
		Location: "Rasa Chat Interface",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, outcome.StatusCode)
	require.NotNil(t, outcome.Ticket)
	assert.Equal(t, "42", Field(outcome.Ticket, "id", "Unknown"))
	assert.Nil(t, outcome.ErrorBody)
}

func TestCreate_ErrorWithJSONBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"email":["invalid"]}`))
	}))
	defer backend.Close()

	c := newTestClient(t, backend.URL)
	outcome, err := c.Create(context.Background(), &TicketRequest{Username: "x"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, outcome.StatusCode)
	assert.Nil(t, outcome.Ticket)
	require.NotNil(t, outcome.ErrorBody)
	assert.Contains(t, outcome.ErrorBody, "email")
}

func TestCreate_ErrorWithoutJSONBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer backend.Close()

	c := newTestClient(t, backend.URL)
	outcome, err := c.Create(context.Background(), &TicketRequest{Username: "x"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, outcome.StatusCode)
	assert.Nil(t, outcome.ErrorBody)
}

func TestCreate_TransportFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	c := newTestClient(t, backend.URL)
	outcome, err := c.Create(context.Background(), &TicketRequest{Username: "x"})
	assert.Error(t, err)
	assert.Nil(t, outcome)
}

func TestTrack_OK(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reclamations/42/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":42,"status":"open"}`))
	}))
	defer backend.Close()

	c := newTestClient(t, backend.URL)
	outcome, err := c.Track(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, outcome.StatusCode)
	require.NotNil(t, outcome.Ticket)
	assert.Equal(t, "open", Field(outcome.Ticket, "status", "unknown"))
}

func TestTrack_NotFound(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer backend.Close()

	c := newTestClient(t, backend.URL)
	outcome, err := c.Track(context.Background(), "999")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, outcome.StatusCode)
	assert.Nil(t, outcome.Ticket)
}

func TestField(t *testing.T) {
	body := decodeBody([]byte(`{"id":42,"priority":"high","empty":"","nullish":null,"nested":{"a":1}}`))
	require.NotNil(t, body)

	tests := []struct {
		name     string
		key      string
		fallback string
		want     string
	}{
		{name: "number renders plainly", key: "id", fallback: "Unknown", want: "42"},
		{name: "string passes through", key: "priority", fallback: "normal", want: "high"},
		{name: "empty string is kept", key: "empty", fallback: "x", want: ""},
		{name: "null falls back", key: "nullish", fallback: "d", want: "d"},
		{name: "missing falls back", key: "missing", fallback: "d", want: "d"},
		{name: "object is rendered as JSON", key: "nested", fallback: "d", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Field(body, tt.key, tt.fallback))
		})
	}

	assert.Equal(t, "d", Field(nil, "any", "d"))
}

func TestDecodeBody_NotJSON(t *testing.T) {
	assert.Nil(t, decodeBody([]byte("<html>oops</html>")))
	assert.Nil(t, decodeBody([]byte(`[1,2,3]`)))
}
