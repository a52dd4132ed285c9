// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"taskpad/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrBadCredentials is returned for wrong username/password pairs.
var ErrBadCredentials = errors.New("invalid username or password")

type fakeUser struct {
	username string
	password string
	accessID string
}

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	users  []fakeUser
	lists  []service.List
	tasks  []service.Task
	nextID int

	// Call counters for asserting orchestration behavior.
	ListListsCalls int
	ListTasksCalls int

	// Error injection for testing.
	LoginErr         error
	SignupErr        error
	DeleteAccountErr error
	ListListsErr     error
	CreateListErr    error
	DeleteListErr    error
	ListTasksErr     error
	CreateTaskErr    error
	DeleteTaskErr    error
	SetTaskDoneErr   error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddUser seeds an account and returns its access ID.
func (f *FakeService) AddUser(username, password string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	accessID := uuid.NewString()
	f.users = append(f.users, fakeUser{username: username, password: password, accessID: accessID})
	return accessID
}

// AddList seeds a list and returns its ID.
func (f *FakeService) AddList(name, description string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.lists = append(f.lists, service.List{ID: id, Name: name, Description: description})
	return id
}

// AddTask seeds a task in a list and returns its ID.
func (f *FakeService) AddTask(listID int, name, description string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.tasks = append(f.tasks, service.Task{ID: id, ListID: listID, Name: name, Description: description})
	return id
}

// Lists returns a copy of the current lists.
func (f *FakeService) Lists() []service.List {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.List, len(f.lists))
	copy(out, f.lists)
	return out
}

// Tasks returns a copy of the current tasks across all lists.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, username, password string) (service.Session, error) {
	if f.LoginErr != nil {
		return service.Session{}, f.LoginErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.username == username && u.password == password {
			return service.Session{AccessID: u.accessID, AccessToken: "fake-token"}, nil
		}
	}
	return service.Session{}, ErrBadCredentials
}

// Signup implements service.Service.
func (f *FakeService) Signup(ctx context.Context, username, password string) (service.Session, error) {
	if f.SignupErr != nil {
		return service.Session{}, f.SignupErr
	}
	accessID := f.AddUser(username, password)
	return service.Session{AccessID: accessID, AccessToken: "fake-token"}, nil
}

// DeleteAccount implements service.Service.
func (f *FakeService) DeleteAccount(ctx context.Context, accessID, username, password string) error {
	if f.DeleteAccountErr != nil {
		return f.DeleteAccountErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.accessID == accessID && u.username == username && u.password == password {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return ErrBadCredentials
}

// ListLists implements service.Service.
func (f *FakeService) ListLists(ctx context.Context, accessID string) ([]service.List, error) {
	f.mu.Lock()
	f.ListListsCalls++
	f.mu.Unlock()
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	return f.Lists(), nil
}

// CreateList implements service.Service.
func (f *FakeService) CreateList(ctx context.Context, accessID, name, description string) error {
	if f.CreateListErr != nil {
		return f.CreateListErr
	}
	f.AddList(name, description)
	return nil
}

// DeleteList implements service.Service.
func (f *FakeService) DeleteList(ctx context.Context, accessID string, id int) error {
	if f.DeleteListErr != nil {
		return f.DeleteListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.lists {
		if l.ID == id {
			f.lists = append(f.lists[:i], f.lists[i+1:]...)
			// Orphan the list's tasks, matching backend behavior.
			for j := range f.tasks {
				if f.tasks[j].ListID == id {
					f.tasks[j].ListID = 0
				}
			}
			return nil
		}
	}
	return ErrNotFound
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, accessID string, listID int) ([]service.Task, error) {
	f.mu.Lock()
	f.ListTasksCalls++
	f.mu.Unlock()
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := []service.Task{}
	for _, t := range f.tasks {
		if t.ListID == listID {
			out = append(out, t)
		}
	}
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, accessID string, listID int, name, description string) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.AddTask(listID, name, description)
	return nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, accessID string, id int) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// SetTaskDone implements service.Service.
func (f *FakeService) SetTaskDone(ctx context.Context, accessID string, id int, done bool) error {
	if f.SetTaskDoneErr != nil {
		return f.SetTaskDoneErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].IsDone = done
			return nil
		}
	}
	return ErrNotFound
}
