// Package service defines the backend-agnostic interface for list and task operations.
package service

// Session identifies an authenticated user to the backend.
type Session struct {
	AccessID    string `json:"access_id"`
	AccessToken string `json:"access_token"`
}

// List represents a task list.
type List struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
}

// Task represents a single task inside a list.
type Task struct {
	ID          int    `json:"id"`
	ListID      int    `json:"list_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
}
