// Package taskapi implements the service.Service interface against the
// taskpad JSON-over-HTTP backend. Every endpoint is a POST carrying the
// session token in the body; any non-2xx status is a failure regardless
// of the body.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"taskpad/internal/config"
	"taskpad/internal/service"
)

// APITimeout is the per-call timeout for backend requests.
const APITimeout = 5 * time.Second

// ErrLoginRejected is returned when the backend answers a login request
// with a 2xx body that carries no session.
var ErrLoginRejected = errors.New("invalid username or password")

// Client implements service.Service against the backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// New creates a client from configuration.
func New(cfg *config.Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = APITimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		timeout:    APITimeout,
	}
}

// post sends one JSON request and returns the raw success body.
func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, wrapError(fmt.Errorf("backend returned %d", resp.StatusCode))
	}
	return data, nil
}

// Login implements service.Service.
func (c *Client) Login(ctx context.Context, username, password string) (service.Session, error) {
	data, err := c.post(ctx, "/user/login", map[string]any{
		"username": username,
		"password": password,
	})
	if err != nil {
		return service.Session{}, err
	}

	var sess service.Session
	// The backend signals bad credentials with a 2xx error-marker body,
	// which simply lacks the session fields.
	if err := json.Unmarshal(data, &sess); err != nil || sess.AccessID == "" {
		return service.Session{}, ErrLoginRejected
	}
	return sess, nil
}

// Signup implements service.Service.
func (c *Client) Signup(ctx context.Context, username, password string) (service.Session, error) {
	data, err := c.post(ctx, "/user/create", map[string]any{
		"username": username,
		"password": password,
	})
	if err != nil {
		return service.Session{}, err
	}

	var sess service.Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.AccessID == "" {
		return service.Session{}, errors.New("signup rejected")
	}
	return sess, nil
}

// DeleteAccount implements service.Service.
func (c *Client) DeleteAccount(ctx context.Context, accessID, username, password string) error {
	_, err := c.post(ctx, "/user/delete", map[string]any{
		"access_id": accessID,
		"username":  username,
		"password":  password,
	})
	return err
}

// ListLists implements service.Service.
func (c *Client) ListLists(ctx context.Context, accessID string) ([]service.List, error) {
	data, err := c.post(ctx, "/list/list", map[string]any{
		"access_id": accessID,
	})
	if err != nil {
		return nil, err
	}
	return decodeLists(data), nil
}

// CreateList implements service.Service.
func (c *Client) CreateList(ctx context.Context, accessID, name, description string) error {
	_, err := c.post(ctx, "/list/create", map[string]any{
		"access_id":   accessID,
		"name":        name,
		"description": description,
		"is_done":     false,
	})
	return err
}

// DeleteList implements service.Service.
func (c *Client) DeleteList(ctx context.Context, accessID string, id int) error {
	_, err := c.post(ctx, "/list/delete", map[string]any{
		"access_id": accessID,
		"id":        id,
	})
	return err
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context, accessID string, listID int) ([]service.Task, error) {
	data, err := c.post(ctx, "/task/list", map[string]any{
		"access_id": accessID,
		"list_id":   listID,
	})
	if err != nil {
		return nil, err
	}
	return decodeTasks(data), nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, accessID string, listID int, name, description string) error {
	_, err := c.post(ctx, "/task/create", map[string]any{
		"access_id":   accessID,
		"name":        name,
		"description": description,
		"list_id":     listID,
		"is_done":     false,
	})
	return err
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, accessID string, id int) error {
	_, err := c.post(ctx, "/task/delete", map[string]any{
		"access_id": accessID,
		"id":        id,
	})
	return err
}

// SetTaskDone implements service.Service.
func (c *Client) SetTaskDone(ctx context.Context, accessID string, id int, done bool) error {
	_, err := c.post(ctx, "/task/isdone", map[string]any{
		"access_id": accessID,
		"id":        id,
		"is_done":   done,
	})
	return err
}

// decodeLists normalizes a collection body. A success body that is not
// a JSON array of lists yields an empty slice, never an error.
func decodeLists(data []byte) []service.List {
	var lists []service.List
	if err := json.Unmarshal(data, &lists); err != nil || lists == nil {
		return []service.List{}
	}
	return lists
}

func decodeTasks(data []byte) []service.Task {
	var tasks []service.Task
	if err := json.Unmarshal(data, &tasks); err != nil || tasks == nil {
		return []service.Task{}
	}
	return tasks
}

// wrapError maps transport errors to user-readable messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "context deadline exceeded") {
		return errors.New("request timed out")
	}
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return errors.New("session expired (log in again)")
	}
	if strings.Contains(errStr, "404") {
		return errors.New("not found")
	}
	if strings.Contains(errStr, "connection refused") {
		return errors.New("backend unreachable")
	}
	return err
}
