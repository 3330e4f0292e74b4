package trackreclamation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reclamation-actions/internal/common/logger"
	"reclamation-actions/internal/rasa"
	"reclamation-actions/internal/reclamation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T, baseURL string, timeout time.Duration) *Handler {
	cfg := DefaultConfig()
	cfg.Timeout = timeout
	testLog := logger.NewTestLogger(t)
	client := reclamation.NewClient(baseURL, timeout, testLog)
	return NewHandler(cfg, client, testLog)
}

func createTracker(reclamationID interface{}) *rasa.Tracker {
	slots := map[string]interface{}{}
	if reclamationID != nil {
		slots["reclamation_id"] = reclamationID
	}
	return &rasa.Tracker{
		SenderID: "test-sender",
		Slots:    slots,
	}
}

// ==========================
// Tracking Tests
// ==========================

func TestRun_Found(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/reclamations/42/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"status":"open","priority":"high","sentiment":"negative","message":"my order arrived broken"}`))
	}))
	defer backend.Close()

	h := createTestHandler(t, backend.URL, 5*time.Second)
	dispatcher := rasa.NewCollectingDispatcher("test-sender")

	events, err := h.Run(context.Background(), dispatcher, createTracker("42"))
	require.NoError(t, err)
	assert.Empty(t, events)

	messages := dispatcher.Messages()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Text, "📊 Reclamation #42")
	assert.Contains(t, messages[0].Text, "Status: open")
	assert.Contains(t, messages[0].Text, "Priority: high")
	assert.Contains(t, messages[0].Text, "Sentiment: negative")
	assert.Contains(t, messages[0].Text, "Message: my order arrived broken")
}

func TestRun_FoundWithMissingFields(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	h := createTestHandler(t, backend.URL, 5*time.Second)
	dispatcher := rasa.NewCollectingDispatcher("test-sender")

	_, err := h.Run(context.Background(), dispatcher, createTracker("42"))
	require.NoError(t, err)

	messages := dispatcher.Messages()
	require.Len(t, messages, 1)
	// the slot id fills in for a missing id, the rest use the documented defaults
	assert.Contains(t, messages[0].Text, "📊 Reclamation #42")
	assert.Contains(t, messages[0].Text, "Status: unknown")
	assert.Contains(t, messages[0].Text, "Priority: normal")
	assert.Contains(t, messages[0].Text, "Sentiment: neutral")
}

func TestRun_TruncatesLongMessage(t *testing.T) {
	longMessage := strings.Repeat("complaint ", 30)
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":42,"message":"` + longMessage + `"}`))
	}))
	defer backend.Close()

	h := createTestHandler(t, backend.URL, 5*time.Second)
	dispatcher := rasa.NewCollectingDispatcher("test-sender")

	_, err := h.Run(context.Background(), dispatcher, createTracker("42"))
	require.NoError(t, err)

	messages := dispatcher.Messages()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Text, longMessage[:150])
	assert.NotContains(t, messages[0].Text, longMessage[:151])
}

func TestRun_MissingID(t *testing.T) {
	h := createTestHandler(t, "http://127.0.0.1:1", time.Second)
	dispatcher := rasa.NewCollectingDispatcher("test-sender")

	events, err := h.Run(context.Background(), dispatcher, createTracker(nil))
	require.NoError(t, err)
	assert.Empty(t, events)

	messages := dispatcher.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, msgMissingID, messages[0].Text)
}

func TestRun_NotFound(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found."}`))
	}))
	defer backend.Close()

	h := createTestHandler(t, backend.URL, 5*time.Second)
	dispatcher := rasa.NewCollectingDispatcher("test-sender")

	events, err := h.Run(context.Background(), dispatcher, createTracker("999"))
	require.NoError(t, err)
	assert.Empty(t, events)

	messages := dispatcher.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, msgNotFound, messages[0].Text)
}

func TestRun_BackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer backend.Close()

	h := createTestHandler(t, backend.URL, 5*time.Second)
	dispatcher := rasa.NewCollectingDispatcher("test-sender")

	_, err := h.Run(context.Background(), dispatcher, createTracker("42"))
	require.NoError(t, err)

	messages := dispatcher.Messages()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Text, "Tracking error (HTTP 502)")
}

func TestRun_Timeout(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer backend.Close()

	h := createTestHandler(t, backend.URL, 50*time.Millisecond)
	dispatcher := rasa.NewCollectingDispatcher("test-sender")

	events, err := h.Run(context.Background(), dispatcher, createTracker("42"))
	require.NoError(t, err)
	assert.Empty(t, events)

	messages := dispatcher.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, msgTimeout, messages[0].Text)
}

func TestRun_ConnectionRefused(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	h := createTestHandler(t, backend.URL, 1*time.Second)
	dispatcher := rasa.NewCollectingDispatcher("test-sender")

	_, err := h.Run(context.Background(), dispatcher, createTracker("42"))
	require.NoError(t, err)

	messages := dispatcher.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, msgConnect, messages[0].Text)
}

func TestRun_NumericSlotID(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reclamations/42/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":42,"status":"open"}`))
	}))
	defer backend.Close()

	h := createTestHandler(t, backend.URL, 5*time.Second)
	dispatcher := rasa.NewCollectingDispatcher("test-sender")

	// slot values decoded from JSON numbers still route correctly
	_, err := h.Run(context.Background(), dispatcher, createTracker(float64(42)))
	require.NoError(t, err)
	require.Len(t, dispatcher.Messages(), 1)
}

func TestHandler_Name(t *testing.T) {
	h := createTestHandler(t, "http://127.0.0.1:1", time.Second)
	assert.Equal(t, "action_track_reclamation", h.Name())
}
