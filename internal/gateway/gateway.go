package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TokenHeader is the backend's custom bearer-token header.
const TokenHeader = "auth-token"

const requestTimeout = 30 * time.Second

// Client issues authenticated JSON calls against the REST backend. It keeps
// no state beyond the base URL: the token is handed in per call, and every
// call is fire-once (no retry, no caching).
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Get fetches path and decodes the reply into out.
func (c *Client) Get(ctx context.Context, token, path string, out interface{}) error {
	_, _, err := c.do(ctx, token, http.MethodGet, path, nil, out)
	return err
}

// Post sends payload and decodes the echoed document into out (which may be
// nil). The returned id correlates the call with the audit trail.
func (c *Client) Post(ctx context.Context, token, path string, payload, out interface{}) (string, error) {
	return c.mutate(ctx, token, http.MethodPost, path, payload, out)
}

func (c *Client) Patch(ctx context.Context, token, path string, payload, out interface{}) (string, error) {
	return c.mutate(ctx, token, http.MethodPatch, path, payload, out)
}

func (c *Client) Delete(ctx context.Context, token, path string) (string, error) {
	return c.mutate(ctx, token, http.MethodDelete, path, nil, nil)
}

func (c *Client) mutate(ctx context.Context, token, method, path string, payload, out interface{}) (string, error) {
	body, reqID, err := c.do(ctx, token, method, path, payload, out)
	if err != nil {
		return reqID, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return reqID, ErrNoData
	}
	return reqID, nil
}

func (c *Client) do(ctx context.Context, token, method, path string, payload, out interface{}) ([]byte, string, error) {
	reqID := uuid.NewString()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, reqID, errors.Wrap(err, "gateway: encode payload")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, reqID, errors.Wrap(err, "gateway: build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, reqID, errors.Wrap(err, "gateway: "+method+" "+path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, reqID, errors.Wrap(err, "gateway: read reply")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Status:    resp.StatusCode,
			Message:   serverMessage(body, resp.StatusCode),
			RequestID: reqID,
		}
		log.WithFields(log.Fields{
			"method":     method,
			"path":       path,
			"status":     resp.StatusCode,
			"request_id": reqID,
		}).Warn("backend call failed")
		return nil, reqID, apiErr
	}

	if out != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return nil, reqID, errors.Wrap(err, "gateway: decode reply")
		}
	}
	return body, reqID, nil
}

// serverMessage pulls the backend's "message" field out of an error reply,
// falling back to the status text.
func serverMessage(body []byte, status int) string {
	var reply struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &reply); err == nil && reply.Message != "" {
		return reply.Message
	}
	return http.StatusText(status)
}
