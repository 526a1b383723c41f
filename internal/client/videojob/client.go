// Package videojob is a client for the video job API: it logs in with the
// shared password, creates jobs, polls their status with backoff and downloads
// rendered files.
package videojob

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

// Job is the status document returned by GET /api/v1/videos/{id}
type Job struct {
	ID        uuid.UUID        `json:"id"`
	Status    domain.JobStatus `json:"status"`
	OutputURL *string          `json:"outputUrl"`
	DateFrom  time.Time        `json:"dateFrom"`
	DateTo    time.Time        `json:"dateTo"`
	CreatedAt time.Time        `json:"createdAt"`
}

// StatusError is returned for any non-2xx answer
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
}

// Client talks to the API. Login stores the session cookie in the client's jar.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for baseURL (scheme and host, no trailing path)
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// Login opens a session with the shared password
func (c *Client) Login(ctx context.Context, password string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/login", map[string]string{"password": password}, nil)
}

// CreateJob requests a compilation of [from, to] and returns the job id
func (c *Client) CreateJob(ctx context.Context, from, to time.Time) (uuid.UUID, error) {
	body := map[string]string{
		"dateFrom": from.UTC().Format(time.RFC3339),
		"dateTo":   to.UTC().Format(time.RFC3339),
	}
	var resp struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/videos", body, &resp); err != nil {
		return uuid.Nil, err
	}
	return resp.ID, nil
}

// GetJob fetches the current state of a job
func (c *Client) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodGet, "/api/v1/videos/"+id.String(), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Download copies the rendered file of a job into w
func (c *Client) Download(ctx context.Context, id uuid.UUID, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/videos/file/"+id.String(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return 0, readStatusError(resp)
	}

	return io.Copy(w, resp.Body)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return readStatusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func readStatusError(resp *http.Response) error {
	statusErr := &StatusError{Code: resp.StatusCode}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload); err == nil {
		statusErr.Message = payload.Error
	}
	return statusErr
}

// IsUnauthorized reports whether err is a 401 answer
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusUnauthorized
}
