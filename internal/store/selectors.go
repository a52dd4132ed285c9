package store

import "taskpad/internal/service"

// Selectors give each view an explicit, typed slice of the tree instead
// of handing the whole state around.

// SessionInfo is what session-gated views need to know.
type SessionInfo struct {
	AccessID      string
	Username      string
	Authenticated bool
}

// SelectSession reads the authentication slice.
func SelectSession(s State) SessionInfo {
	return SessionInfo{
		AccessID:      s.Login.AccessID,
		Username:      s.Login.Username,
		Authenticated: s.Login.AccessID != "",
	}
}

// ComposeForm is the transient state of a create form.
type ComposeForm struct {
	Visible     bool
	Name        string
	Description string
}

// SelectLists reads the loaded list collection.
func SelectLists(s State) []service.List {
	return s.List.Lists
}

// SelectListForm reads the create-list form state.
func SelectListForm(s State) ComposeForm {
	return ComposeForm{
		Visible:     s.List.ShowAddList,
		Name:        s.List.Name,
		Description: s.List.Description,
	}
}

// SelectTasks reads the loaded task collection.
func SelectTasks(s State) []service.Task {
	return s.Task.Tasks
}

// SelectTaskForm reads the create-task form state.
func SelectTaskForm(s State) ComposeForm {
	return ComposeForm{
		Visible:     s.Task.ShowAddTaskForm,
		Name:        s.Task.Name,
		Description: s.Task.Description,
	}
}

// ActiveList identifies the list whose tasks are being browsed.
type ActiveList struct {
	ID   int
	Name string
}

// SelectActiveList reads the browsed list's identity from the task slice.
func SelectActiveList(s State) ActiveList {
	return ActiveList{ID: s.Task.TaskListID, Name: s.Task.TaskListName}
}
