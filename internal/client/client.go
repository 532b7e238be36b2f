// Package client is a typed HTTP client for the task server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

// Client talks to a running task server
type Client struct {
	baseURL string
	http    *http.Client
}

// HealthStatus mirrors the server's /health body
type HealthStatus struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Tasks   int    `json:"tasks"`
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// New creates a client for baseURL
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// NewFromConfig creates a client from the client section of cfg
func NewFromConfig(cfg *config.Config) *Client {
	return New(cfg.Client.BaseURL, cfg.Client.Timeout)
}

func (c *Client) List(ctx context.Context) ([]*domain.Task, error) {
	tasks := []*domain.Task{}
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) Get(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodGet, taskPath(id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	var task domain.Task
	body := createRequest{Title: title, Description: description}
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update sends only the fields set in patch
func (c *Client) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	var task domain.Task
	body := updateRequest{Title: patch.Title, Description: patch.Description, Completed: patch.Completed}
	if err := c.do(ctx, http.MethodPut, taskPath(id), body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes a task; a missing task is reported as a NotFound error
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func taskPath(id string) string {
	return "/tasks/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.NewInternalError("failed to encode request", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.NewInternalError("failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.Debugf("%s %s\n", method, req.URL)
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewInternalError(fmt.Sprintf("cannot reach task server at %s", c.baseURL), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewInternalError("failed to read response", err)
	}
	logging.Debugf("-> %d %s\n", resp.StatusCode, respBody)

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, respBody)
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.NewInternalError("failed to decode response", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		payload.Message = strings.TrimSpace(string(body))
		if payload.Message == "" {
			payload.Message = http.StatusText(status)
		}
	}
	return errors.FromHTTPStatus(status, payload.Code, payload.Message)
}
