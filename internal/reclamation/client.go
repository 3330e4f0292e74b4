package reclamation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	httpx "reclamation-actions/internal/common/http"
	"reclamation-actions/internal/common/logger"
)

// Client talks to the reclamation backend. It performs exactly one HTTP call
// per method, bounded by the configured timeout; retries are the caller's
// problem and the caller never retries.
type Client struct {
	baseURL    string
	logger     logger.Logger
	httpClient *httpx.Client
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     log,
		httpClient: httpx.NewClient(timeout),
	}
}

// BaseURL returns the resolved backend base URL, trailing slash stripped.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Create submits a new reclamation. A non-nil error is a transport failure
// (timeout, refused connection, DNS); every HTTP status, including 4xx/5xx,
// comes back as an outcome for the caller to classify.
func (c *Client) Create(ctx context.Context, ticket *TicketRequest) (*CreateOutcome, error) {
	url := fmt.Sprintf("%s/reclamations/add/", c.baseURL)

	jsonData, err := json.Marshal(ticket)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	outcome := &CreateOutcome{StatusCode: resp.StatusCode}
	if resp.StatusCode == http.StatusCreated {
		outcome.Ticket = decodeBody(body)
	} else {
		outcome.ErrorBody = decodeBody(body)
	}

	c.logger.Debug("Reclamation create call finished", map[string]interface{}{
		"status": resp.StatusCode,
	})

	return outcome, nil
}

// Track fetches a reclamation by id. Error semantics match Create.
func (c *Client) Track(ctx context.Context, id string) (*TrackOutcome, error) {
	url := fmt.Sprintf("%s/reclamations/%s/", c.baseURL, id)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	outcome := &TrackOutcome{StatusCode: resp.StatusCode}
	if resp.StatusCode == http.StatusOK {
		outcome.Ticket = decodeBody(body)
	}

	c.logger.Debug("Reclamation track call finished", map[string]interface{}{
		"status": resp.StatusCode,
		"id":     id,
	})

	return outcome, nil
}

// decodeBody decodes a JSON object body, returning nil when the payload is
// not a JSON object. Numbers are kept as json.Number.
func decodeBody(body []byte) map[string]interface{} {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var parsed map[string]interface{}
	if err := dec.Decode(&parsed); err != nil {
		return nil
	}
	return parsed
}
