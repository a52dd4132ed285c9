// Package service defines the backend-agnostic interface for list and task operations.
package service

import "context"

// Service defines the interface for backend operations.
// All HTTP API calls go through this interface.
// The UI never constructs requests directly.
type Service interface {
	// Login exchanges credentials for a session.
	// A rejected login is an error, not an empty session.
	Login(ctx context.Context, username, password string) (Session, error)

	// Signup creates a new account and returns its session.
	Signup(ctx context.Context, username, password string) (Session, error)

	// DeleteAccount removes the account. The backend requires the
	// credentials again, not only the session token.
	DeleteAccount(ctx context.Context, accessID, username, password string) error

	// ListLists returns all lists owned by the session's user, in API order.
	// A malformed success body yields an empty slice, not an error.
	ListLists(ctx context.Context, accessID string) ([]List, error)

	// CreateList creates a new list.
	CreateList(ctx context.Context, accessID, name, description string) error

	// DeleteList deletes a list by ID. Tasks in the list are orphaned
	// server-side, not deleted.
	DeleteList(ctx context.Context, accessID string, id int) error

	// ListTasks returns all tasks of a list, in API order.
	// Same malformed-body behavior as ListLists.
	ListTasks(ctx context.Context, accessID string, listID int) ([]Task, error)

	// CreateTask creates a new task in the given list.
	CreateTask(ctx context.Context, accessID string, listID int, name, description string) error

	// DeleteTask deletes a task by ID.
	DeleteTask(ctx context.Context, accessID string, id int) error

	// SetTaskDone sets a task's done flag.
	SetTaskDone(ctx context.Context, accessID string, id int, done bool) error
}
